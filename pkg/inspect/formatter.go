package inspect

import (
	"fmt"
	"strings"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowFilenames includes sysfs filenames next to channel attributes
	ShowFilenames bool

	// ShowNumbers includes channel numbers alongside ids
	ShowNumbers bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowFilenames: false,
		ShowNumbers:   false,
		IndentWidth:   2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	indent := strings.Repeat(" ", depth*width)
	return indent + content
}

// FormatContextTree renders the complete context tree.
func (f *Formatter) FormatContextTree(tree *ContextTree) string {
	var sb strings.Builder

	if tree.GitTag != "" {
		fmt.Fprintf(&sb, "IIO context created by %s (v%d.%d %s)\n",
			tree.Name, tree.Major, tree.Minor, tree.GitTag)
	} else {
		fmt.Fprintf(&sb, "IIO context created by %s\n", tree.Name)
	}
	if tree.Description != "" {
		fmt.Fprintf(&sb, "Description: %s\n", tree.Description)
	}

	fmt.Fprintf(&sb, "IIO context has %d attributes:\n", len(tree.Attrs))
	for _, a := range tree.Attrs {
		sb.WriteString(f.Indent(1, fmt.Sprintf("%s: %s\n", a.Name, a.Value)))
	}

	fmt.Fprintf(&sb, "IIO context has %d devices:\n", len(tree.Devices))
	for i := range tree.Devices {
		sb.WriteString(f.FormatDevice(&tree.Devices[i], 1))
	}
	return sb.String()
}

// FormatDevice renders one device at the given indent depth.
func (f *Formatter) FormatDevice(dev *DeviceInfo, depth int) string {
	var sb strings.Builder

	label := dev.Name
	if dev.Label != "" {
		label = dev.Label
	}
	if label != "" {
		sb.WriteString(f.Indent(depth, fmt.Sprintf("%s: %s\n", dev.ID, label)))
	} else {
		sb.WriteString(f.Indent(depth, dev.ID+":\n"))
	}

	sb.WriteString(f.Indent(depth+1, fmt.Sprintf("%d channels found:\n", len(dev.Channels))))
	for i := range dev.Channels {
		sb.WriteString(f.FormatChannel(&dev.Channels[i], depth+2))
	}

	f.appendAttrNames(&sb, depth+1, "device-specific", dev.Attrs)
	f.appendAttrNames(&sb, depth+1, "buffer-specific", dev.BufferAttrs)
	f.appendAttrNames(&sb, depth+1, "debug", dev.DebugAttrs)
	return sb.String()
}

func (f *Formatter) appendAttrNames(sb *strings.Builder, depth int, what string, names []string) {
	sb.WriteString(f.Indent(depth, fmt.Sprintf("%d %s attributes found:\n", len(names), what)))
	for i, name := range names {
		sb.WriteString(f.Indent(depth+1, fmt.Sprintf("attr %2d: %s\n", i, name)))
	}
}

// FormatChannel renders one channel at the given indent depth.
func (f *Formatter) FormatChannel(chn *ChannelInfo, depth int) string {
	var sb strings.Builder

	direction := "input"
	if chn.Output {
		direction = "output"
	}

	var detail []string
	if chn.Name != "" {
		detail = append(detail, chn.Name)
	}
	if f.ShowNumbers {
		detail = append(detail, fmt.Sprintf("number: %d", chn.Number))
	}
	if chn.ScanElement {
		detail = append(detail, fmt.Sprintf("index: %d", chn.Index))
		if chn.Format != "" {
			detail = append(detail, "format: "+chn.Format)
		}
		if chn.Scale != "" {
			detail = append(detail, "scale: "+chn.Scale)
		}
	}

	if len(detail) > 0 {
		sb.WriteString(f.Indent(depth, fmt.Sprintf("%s: %s (%s)\n", chn.ID, direction, strings.Join(detail, ", "))))
	} else {
		sb.WriteString(f.Indent(depth, fmt.Sprintf("%s: %s\n", chn.ID, direction)))
	}

	sb.WriteString(f.Indent(depth, fmt.Sprintf("%d channel-specific attributes found:\n", len(chn.Attrs))))
	for i, a := range chn.Attrs {
		line := fmt.Sprintf("attr %2d: %s", i, a.Name)
		if f.ShowFilenames && a.Filename != "" {
			line += " (" + a.Filename + ")"
		}
		sb.WriteString(f.Indent(depth+1, line+"\n"))
	}
	return sb.String()
}
