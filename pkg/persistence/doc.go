// Package persistence snapshots contexts to disk.
//
// A Store keeps one directory with the emitted XML description per
// snapshot plus a JSON index recording when each snapshot was taken.
// Loading a snapshot rebuilds a full context through the XML codec, so
// a loaded context is Equal to the one that was saved.
package persistence
