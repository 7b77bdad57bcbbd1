package model

// Attr is one context-level (name, value) attribute.
type Attr struct {
	Name  string
	Value string
}

// Context is the top-level description of one measurement environment.
// It is built by a backend (package iioxml) and finalized once; after
// that it is immutable and safe for concurrent readers.
type Context struct {
	// name identifies the backend that produced the context ("xml").
	name string

	description string

	// Library version the description was produced by. major/minor are
	// only meaningful when gitTag is set.
	major  uint
	minor  uint
	gitTag string

	attrs   []Attr
	devices []*Device

	finalized bool
}

// NewContext creates an empty context for the given backend identity.
func NewContext(name, description string) *Context {
	return &Context{
		name:        name,
		description: description,
	}
}

// Name returns the identity of the backend that produced the context.
func (c *Context) Name() string {
	return c.name
}

// Description returns the human-readable context description.
func (c *Context) Description() string {
	return c.description
}

// Version returns the library version recorded in the description and
// the free-form git tag. The numbers are zero when no tag was recorded.
func (c *Context) Version() (major, minor uint, gitTag string) {
	return c.major, c.minor, c.gitTag
}

// SetVersion records the producing library version. Builder use only.
func (c *Context) SetVersion(major, minor uint, gitTag string) {
	c.major = major
	c.minor = minor
	c.gitTag = gitTag
}

// Attrs returns the context attributes in insertion order.
// The returned slice is owned by the context and must not be modified.
func (c *Context) Attrs() []Attr {
	return c.attrs
}

// Attr returns the value of the named context attribute.
func (c *Context) Attr(name string) (value string, ok bool) {
	for _, a := range c.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AddAttr inserts a context attribute. Insertion is idempotent: if an
// attribute with the same name is already present the call is a no-op
// and the first value wins. Reports whether the attribute was added.
func (c *Context) AddAttr(name, value string) bool {
	if _, ok := c.Attr(name); ok {
		return false
	}
	c.attrs = append(c.attrs, Attr{Name: name, Value: value})
	return true
}

// Devices returns the context's devices in document order.
// The returned slice is owned by the context and must not be modified.
func (c *Context) Devices() []*Device {
	return c.devices
}

// Device returns the first device with the given id, or nil.
// Duplicate ids are not rejected at build time; first match wins.
func (c *Context) Device(id string) *Device {
	for _, d := range c.devices {
		if d.id == id {
			return d
		}
	}
	return nil
}

// AddDevice appends a device to the context. Builder use only.
func (c *Context) AddDevice(dev *Device) {
	dev.ctx = c
	c.devices = append(c.devices, dev)
}

// Finalize wires cross-references once building is done: channels are
// numbered in document order, attribute registries are sorted for
// binary-search lookup and channel kinds are resolved. Finalize is
// idempotent; a finalized context must not be mutated again.
func (c *Context) Finalize() {
	if c.finalized {
		return
	}
	for _, dev := range c.devices {
		dev.finalize()
	}
	c.finalized = true
}

// Finalized reports whether Finalize has run.
func (c *Context) Finalized() bool {
	return c.finalized
}

// Equal reports whether two contexts agree in every modeled field:
// identity, description, version, attributes and devices.
func (c *Context) Equal(other *Context) bool {
	if c == other {
		return true
	}
	if other == nil ||
		c.name != other.name ||
		c.description != other.description ||
		c.major != other.major ||
		c.minor != other.minor ||
		c.gitTag != other.gitTag ||
		len(c.attrs) != len(other.attrs) ||
		len(c.devices) != len(other.devices) {
		return false
	}
	for i, a := range c.attrs {
		if a != other.attrs[i] {
			return false
		}
	}
	for i, d := range c.devices {
		if !d.Equal(other.devices[i]) {
			return false
		}
	}
	return true
}
