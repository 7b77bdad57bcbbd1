package model

import (
	"sort"
	"strings"
)

// Namespace selects one of a device's attribute registries.
type Namespace uint8

const (
	// NamespaceDevice is the plain device attribute namespace.
	NamespaceDevice Namespace = iota

	// NamespaceBuffer is the buffer attribute namespace.
	NamespaceBuffer

	// NamespaceDebug is the debug attribute namespace.
	NamespaceDebug
)

// String returns the namespace name.
func (ns Namespace) String() string {
	switch ns {
	case NamespaceDevice:
		return "device"
	case NamespaceBuffer:
		return "buffer"
	case NamespaceDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// suffix returns the backing-key suffix appended to attribute names for
// storage-key disambiguation. The exact strings (including the leading
// space) are a compatibility contract with downstream storage layers.
func (ns Namespace) suffix() string {
	switch ns {
	case NamespaceBuffer:
		return " buffer"
	case NamespaceDebug:
		return " debug"
	default:
		return ""
	}
}

// Key returns the backing storage key for an attribute name in this
// namespace: the name itself for device attributes, the name followed
// by " buffer" or " debug" for the other namespaces.
func (ns Namespace) Key(name string) string {
	return name + ns.suffix()
}

// CompareNames is the single ordering definition for attribute names.
// AttrList sorting and lookup both go through it.
func CompareNames(a, b string) int {
	return strings.Compare(a, b)
}

// CompareDeviceIDs is the ordering definition for device ids.
func CompareDeviceIDs(a, b string) int {
	return strings.Compare(a, b)
}

// CompareChannelIDs is the ordering definition for channel ids.
func CompareChannelIDs(a, b string) int {
	return strings.Compare(a, b)
}

// AttrList is an ordered registry of distinct attribute names for one
// namespace. While a context is being built it keeps insertion order;
// Context.Finalize sorts it exactly once, after which Index and
// Contains use binary search.
type AttrList struct {
	names  []string
	sorted bool
}

// Add inserts a name into the registry. Adding a name that is already
// present is a no-op success, mirroring descriptions that declare the
// same attribute more than once. Reports whether the name was added.
func (l *AttrList) Add(name string) bool {
	for _, n := range l.names {
		if n == name {
			return false
		}
	}
	l.names = append(l.names, name)
	l.sorted = false
	return true
}

// Len returns the number of names in the registry.
func (l *AttrList) Len() int {
	return len(l.names)
}

// Names returns the registered names: insertion order before the
// owning context is finalized, sorted order after. The returned slice
// is owned by the registry and must not be modified.
func (l *AttrList) Names() []string {
	return l.names
}

// Name returns the name at the given position, or "" out of range.
func (l *AttrList) Name(i int) string {
	if i < 0 || i >= len(l.names) {
		return ""
	}
	return l.names[i]
}

// Index returns the position of a name, or -1 when absent.
// Only valid on a finalized context.
func (l *AttrList) Index(name string) int {
	i := sort.Search(len(l.names), func(i int) bool {
		return CompareNames(l.names[i], name) >= 0
	})
	if i < len(l.names) && l.names[i] == name {
		return i
	}
	return -1
}

// Contains reports whether the name is registered.
// Only valid on a finalized context.
func (l *AttrList) Contains(name string) bool {
	return l.Index(name) >= 0
}

// sortNames establishes the sorted lookup order. Called by finalize.
func (l *AttrList) sortNames() {
	if l.sorted {
		return
	}
	sort.Slice(l.names, func(i, j int) bool {
		return CompareNames(l.names[i], l.names[j]) < 0
	})
	l.sorted = true
}

// equal reports element-wise equality.
func (l *AttrList) equal(other *AttrList) bool {
	if len(l.names) != len(other.names) {
		return false
	}
	for i, n := range l.names {
		if n != other.names[i] {
			return false
		}
	}
	return true
}

// ChannelAttr is one channel attribute: a display name and the backing
// filename it is stored under. Both are non-empty after defaulting
// (the filename defaults to the name when the description omits it).
type ChannelAttr struct {
	Name     string
	Filename string
}
