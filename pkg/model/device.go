package model

import "sort"

// Device represents one hardware unit of a context: its identity, its
// channels and its three attribute namespaces.
type Device struct {
	ctx *Context

	// id is the stable device identifier ("iio:device0"). Required and,
	// by convention, unique within a context; lookup takes the first
	// match when a description repeats an id.
	id    string
	name  string
	label string

	attrs       AttrList
	bufferAttrs AttrList
	debugAttrs  AttrList

	channels []*Channel

	// mask is built lazily, sized to the final channel count.
	mask *ChannelsMask
}

// NewDevice creates a device with the given required id.
func NewDevice(id string) *Device {
	return &Device{id: id}
}

// Context returns the owning context, nil until the device is added.
func (d *Device) Context() *Context {
	return d.ctx
}

// ID returns the device identifier.
func (d *Device) ID() string {
	return d.id
}

// Name returns the device name, "" when the description has none.
func (d *Device) Name() string {
	return d.name
}

// SetName sets the device name. Builder use only.
func (d *Device) SetName(name string) {
	d.name = name
}

// Label returns the device label, "" when the description has none.
func (d *Device) Label() string {
	return d.label
}

// SetLabel sets the device label. Builder use only.
func (d *Device) SetLabel(label string) {
	d.label = label
}

// Attrs returns the attribute registry for the given namespace.
func (d *Device) Attrs(ns Namespace) *AttrList {
	switch ns {
	case NamespaceBuffer:
		return &d.bufferAttrs
	case NamespaceDebug:
		return &d.debugAttrs
	default:
		return &d.attrs
	}
}

// AddAttr registers an attribute name in the given namespace. The
// backing key for the attribute is ns.Key(name). Reports whether the
// name was newly added (false for an idempotent duplicate).
func (d *Device) AddAttr(ns Namespace, name string) bool {
	return d.Attrs(ns).Add(name)
}

// Channels returns the device's channels in document order.
// The returned slice is owned by the device and must not be modified.
func (d *Device) Channels() []*Channel {
	return d.channels
}

// Channel returns the first channel with the given id and direction,
// or nil.
func (d *Device) Channel(id string, output bool) *Channel {
	for _, ch := range d.channels {
		if ch.id == id && ch.isOutput == output {
			return ch
		}
	}
	return nil
}

// AddChannel appends a channel to the device. Builder use only.
func (d *Device) AddChannel(ch *Channel) {
	ch.dev = d
	d.channels = append(d.channels, ch)
}

// Mask returns the device's channel-selection mask, creating it on
// first use with one bit per channel. Only valid once the owning
// context is finalized, so the channel count is stable.
func (d *Device) Mask() *ChannelsMask {
	if d.mask == nil {
		d.mask = NewChannelsMask(uint(len(d.channels)))
	}
	return d.mask
}

// finalize numbers channels in document order, sorts the attribute
// registries and each channel's attribute list, and resolves channel
// kinds. Called once per device by Context.Finalize.
func (d *Device) finalize() {
	for i, ch := range d.channels {
		ch.number = uint(i)
		ch.finalize()
	}

	d.attrs.sortNames()
	d.bufferAttrs.sortNames()
	d.debugAttrs.sortNames()
}

// Equal reports whether two devices agree in every modeled field.
func (d *Device) Equal(other *Device) bool {
	if d == other {
		return true
	}
	if other == nil ||
		d.id != other.id ||
		d.name != other.name ||
		d.label != other.label ||
		!d.attrs.equal(&other.attrs) ||
		!d.bufferAttrs.equal(&other.bufferAttrs) ||
		!d.debugAttrs.equal(&other.debugAttrs) ||
		len(d.channels) != len(other.channels) {
		return false
	}
	for i, ch := range d.channels {
		if !ch.Equal(other.channels[i]) {
			return false
		}
	}
	return true
}

// SortChannelAttrs establishes sorted order on a channel attribute
// list using CompareNames. Exposed for builders that assemble channels
// outside a full context build.
func SortChannelAttrs(attrs []ChannelAttr) {
	sort.Slice(attrs, func(i, j int) bool {
		return CompareNames(attrs[i].Name, attrs[j].Name) < 0
	})
}
