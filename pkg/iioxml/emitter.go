package iioxml

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/openiio/iio-go/pkg/model"
)

// EncodeContext renders a full description document for the context,
// starting with the XML declaration. Rebuilding from the returned text
// yields a context Equal to the input.
func EncodeContext(ctx *model.Context) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	root := doc.CreateElement("context")
	root.CreateAttr("name", ctx.Name())
	if ctx.Description() != "" {
		root.CreateAttr("description", ctx.Description())
	}
	if major, minor, gitTag := ctx.Version(); gitTag != "" {
		root.CreateAttr("version-major", strconv.FormatUint(uint64(major), 10))
		root.CreateAttr("version-minor", strconv.FormatUint(uint64(minor), 10))
		root.CreateAttr("version-git", gitTag)
	}

	for _, attr := range ctx.Attrs() {
		el := root.CreateElement("context-attribute")
		el.CreateAttr("name", attr.Name)
		el.CreateAttr("value", attr.Value)
	}

	for _, dev := range ctx.Devices() {
		appendDevice(root, dev)
	}

	text, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("writing description: %w", err)
	}
	return text, nil
}

// EncodeDevice renders a standalone <device> element.
func EncodeDevice(dev *model.Device) (string, error) {
	doc := etree.NewDocument()
	appendDevice(&doc.Element, dev)

	text, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("writing device %s: %w", dev.ID(), err)
	}
	return text, nil
}

// EncodeChannel renders a standalone <channel> element.
func EncodeChannel(chn *model.Channel) (string, error) {
	doc := etree.NewDocument()
	appendChannel(&doc.Element, chn)

	text, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("writing channel %s: %w", chn.ID(), err)
	}
	return text, nil
}

func appendDevice(parent *etree.Element, dev *model.Device) {
	el := parent.CreateElement("device")
	el.CreateAttr("id", dev.ID())
	if dev.Name() != "" {
		el.CreateAttr("name", dev.Name())
	}
	if dev.Label() != "" {
		el.CreateAttr("label", dev.Label())
	}

	for _, chn := range dev.Channels() {
		appendChannel(el, chn)
	}

	appendAttrNames(el, "attribute", dev.Attrs(model.NamespaceDevice))
	appendAttrNames(el, "buffer-attribute", dev.Attrs(model.NamespaceBuffer))
	appendAttrNames(el, "debug-attribute", dev.Attrs(model.NamespaceDebug))
}

func appendAttrNames(parent *etree.Element, tag string, list *model.AttrList) {
	for _, name := range list.Names() {
		parent.CreateElement(tag).CreateAttr("name", name)
	}
}

func appendChannel(parent *etree.Element, chn *model.Channel) {
	el := parent.CreateElement("channel")
	el.CreateAttr("id", chn.ID())
	if chn.Name() != "" {
		el.CreateAttr("name", chn.Name())
	}
	if chn.IsOutput() {
		el.CreateAttr("type", "output")
	} else {
		el.CreateAttr("type", "input")
	}

	if chn.IsScanElement() {
		scan := el.CreateElement("scan-element")
		if chn.Index() != model.NoIndex {
			scan.CreateAttr("index", strconv.FormatInt(chn.Index(), 10))
		}
		f := chn.Format()
		// A zero repeat count means no format descriptor was ever
		// decoded for this channel; a decoded format is always >= 1.
		if f.Repeat >= 1 {
			scan.CreateAttr("format", EncodeFormat(f))
		}
		if f.WithScale {
			scan.CreateAttr("scale", EncodeScale(f.Scale))
		}
	}

	for _, attr := range chn.Attrs() {
		a := el.CreateElement("attribute")
		a.CreateAttr("name", attr.Name)
		a.CreateAttr("filename", attr.Filename)
	}
}
