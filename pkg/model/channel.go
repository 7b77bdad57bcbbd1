package model

// NoIndex is the Channel.Index sentinel for channels whose scan element
// declares no index (or none at all).
const NoIndex int64 = -1

// Channel represents one data stream of a device.
type Channel struct {
	dev *Device

	// id is the stable channel identifier ("voltage0"). Required and
	// unique within a device per direction.
	id   string
	name string

	isOutput      bool
	isScanElement bool

	// index is the scan-element index, NoIndex when absent.
	index int64

	format DataFormat
	attrs  []ChannelAttr

	// number is the channel's position in document order, assigned at
	// context finalize.
	number uint

	// kind and modifier are resolved from the id at finalize
	// ("voltage0" -> kind "voltage"; "accel_x" -> modifier "x").
	kind     string
	modifier string
}

// NewChannel creates a channel with the given required id.
// The index starts at the NoIndex sentinel.
func NewChannel(id string) *Channel {
	return &Channel{id: id, index: NoIndex}
}

// Device returns the owning device, nil until the channel is added.
func (c *Channel) Device() *Device {
	return c.dev
}

// ID returns the channel identifier.
func (c *Channel) ID() string {
	return c.id
}

// Name returns the channel name, "" when the description has none.
func (c *Channel) Name() string {
	return c.name
}

// SetName sets the channel name. Builder use only.
func (c *Channel) SetName(name string) {
	c.name = name
}

// IsOutput reports the channel direction; false means input.
func (c *Channel) IsOutput() bool {
	return c.isOutput
}

// SetOutput sets the channel direction. Builder use only.
func (c *Channel) SetOutput(output bool) {
	c.isOutput = output
}

// IsScanElement reports whether the channel carries a raw-sample
// layout declaration.
func (c *Channel) IsScanElement() bool {
	return c.isScanElement
}

// SetScanElement marks the channel as a scan element. Builder use only.
func (c *Channel) SetScanElement(scan bool) {
	c.isScanElement = scan
}

// Index returns the scan-element index, NoIndex when absent.
func (c *Channel) Index() int64 {
	return c.index
}

// SetIndex sets the scan-element index. Builder use only.
func (c *Channel) SetIndex(index int64) {
	c.index = index
}

// Format returns the channel's sample format.
func (c *Channel) Format() DataFormat {
	return c.format
}

// SetFormat sets the channel's sample format. Builder use only.
func (c *Channel) SetFormat(f DataFormat) {
	c.format = f
}

// Attrs returns the channel attributes. Document order before the
// owning context is finalized, sorted by name after. The returned
// slice is owned by the channel and must not be modified.
func (c *Channel) Attrs() []ChannelAttr {
	return c.attrs
}

// Attr returns the channel attribute with the given name.
func (c *Channel) Attr(name string) (ChannelAttr, bool) {
	for _, a := range c.attrs {
		if a.Name == name {
			return a, true
		}
	}
	return ChannelAttr{}, false
}

// AddAttr appends a channel attribute. Builder use only.
func (c *Channel) AddAttr(name, filename string) {
	c.attrs = append(c.attrs, ChannelAttr{Name: name, Filename: filename})
}

// Number returns the channel's position in document order.
// Only valid once the owning context is finalized.
func (c *Channel) Number() uint {
	return c.number
}

// Kind returns the measurement kind resolved from the channel id
// ("voltage", "accel", ...), "" when the id matches no known kind.
// Only valid once the owning context is finalized.
func (c *Channel) Kind() string {
	return c.kind
}

// Modifier returns the axis/component modifier resolved from the
// channel id ("x", "y", ...), "" when there is none.
// Only valid once the owning context is finalized.
func (c *Channel) Modifier() string {
	return c.modifier
}

// finalize sorts the attribute list and resolves kind and modifier.
func (c *Channel) finalize() {
	SortChannelAttrs(c.attrs)
	c.kind, c.modifier = ResolveChannelID(c.id)
}

// Equal reports whether two channels agree in every modeled field:
// id, name, direction, scan-element flag, index, format and attributes.
func (c *Channel) Equal(other *Channel) bool {
	if c == other {
		return true
	}
	if other == nil ||
		c.id != other.id ||
		c.name != other.name ||
		c.isOutput != other.isOutput ||
		c.isScanElement != other.isScanElement ||
		c.index != other.index ||
		c.format != other.format ||
		len(c.attrs) != len(other.attrs) {
		return false
	}
	for i, a := range c.attrs {
		if a != other.attrs[i] {
			return false
		}
	}
	return true
}
