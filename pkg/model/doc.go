// Package model implements the IIO context data model.
//
// # Hierarchy
//
// An IIO description is a 3-level hierarchy:
//
//	Context > Device > Channel
//
// A Context describes one measurement environment: the devices it exposes
// and a set of free-form (name, value) attributes. Each Device owns its
// Channels and three independent attribute namespaces (device, buffer,
// debug). Each Channel optionally carries a scan element: a sample index,
// a binary DataFormat and a scale factor, describing how raw samples for
// that channel are laid out in a buffer.
//
//	Context (description="linux ...")
//	├── Device iio:device0 (name="ad7124-8")
//	│   ├── Channel voltage0 (input, scan-element)
//	│   ├── Channel voltage1 (input, scan-element)
//	│   └── attrs: sampling_frequency, ...
//	└── Device iio:device1 ...
//
// # Ownership and mutability
//
// A Context exclusively owns its Devices and each Device its Channels;
// entities are never shared between containers. The exported mutators
// (AddDevice, AddChannel, AddAttr, ...) exist for builders such as
// package iioxml and must only be used before Finalize. Once Finalize
// has run, a Context is read-only and safe for concurrent readers.
//
// # Ordering contract
//
// Devices and Channels keep document order. Attribute name registries
// (AttrList) keep insertion order while a context is being built and
// are sorted exactly once by Finalize; Index and Contains use binary
// search and are only valid on a finalized context. All sorting goes
// through the package-level comparison functions (CompareNames,
// CompareDeviceIDs, CompareChannelIDs) so every consumer shares one
// ordering definition.
package model
