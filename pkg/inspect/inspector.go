// Package inspect turns a context model into display-friendly trees.
// It backs the iio-info and iio-explore command-line tools.
package inspect

import (
	"github.com/openiio/iio-go/pkg/iioxml"
	"github.com/openiio/iio-go/pkg/model"
)

// ContextTree represents the complete context structure for display.
type ContextTree struct {
	Name        string
	Description string
	Major       uint
	Minor       uint
	GitTag      string
	Attrs       []model.Attr
	Devices     []DeviceInfo
}

// DeviceInfo represents device information for display.
type DeviceInfo struct {
	ID          string
	Name        string
	Label       string
	Attrs       []string
	BufferAttrs []string
	DebugAttrs  []string
	Channels    []ChannelInfo
}

// ChannelInfo represents channel information for display.
type ChannelInfo struct {
	ID       string
	Name     string
	Output   bool
	Kind     string
	Modifier string
	Number   uint

	// Scan-element layout; Format is "" for channels without a decoded
	// sample format.
	ScanElement bool
	Index       int64
	Format      string
	Scale       string

	Attrs []model.ChannelAttr
}

// InspectContext returns a complete tree of the context structure.
func InspectContext(ctx *model.Context) *ContextTree {
	tree := &ContextTree{
		Name:        ctx.Name(),
		Description: ctx.Description(),
		Attrs:       ctx.Attrs(),
	}
	tree.Major, tree.Minor, tree.GitTag = ctx.Version()

	for _, dev := range ctx.Devices() {
		tree.Devices = append(tree.Devices, InspectDevice(dev))
	}
	return tree
}

// InspectDevice returns the display information for one device.
func InspectDevice(dev *model.Device) DeviceInfo {
	info := DeviceInfo{
		ID:          dev.ID(),
		Name:        dev.Name(),
		Label:       dev.Label(),
		Attrs:       dev.Attrs(model.NamespaceDevice).Names(),
		BufferAttrs: dev.Attrs(model.NamespaceBuffer).Names(),
		DebugAttrs:  dev.Attrs(model.NamespaceDebug).Names(),
	}
	for _, chn := range dev.Channels() {
		info.Channels = append(info.Channels, InspectChannel(chn))
	}
	return info
}

// InspectChannel returns the display information for one channel.
func InspectChannel(chn *model.Channel) ChannelInfo {
	info := ChannelInfo{
		ID:          chn.ID(),
		Name:        chn.Name(),
		Output:      chn.IsOutput(),
		Kind:        chn.Kind(),
		Modifier:    chn.Modifier(),
		Number:      chn.Number(),
		ScanElement: chn.IsScanElement(),
		Index:       chn.Index(),
		Attrs:       chn.Attrs(),
	}

	if f := chn.Format(); f.Repeat >= 1 {
		info.Format = iioxml.EncodeFormat(f)
		if f.WithScale {
			info.Scale = iioxml.EncodeScale(f.Scale)
		}
	}
	return info
}
