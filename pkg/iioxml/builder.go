package iioxml

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"github.com/openiio/iio-go/pkg/log"
	"github.com/openiio/iio-go/pkg/model"
)

// backendName is the backend identity recorded on every context this
// package builds.
const backendName = "xml"

// component is the identity this package reports diagnostics under.
const component = "xml"

// Params configures a build.
type Params struct {
	// Logger receives build diagnostics. nil disables them.
	Logger log.Logger

	// BuildID tags every diagnostic event of this build. A UUID is
	// generated when empty.
	BuildID string

	// LenientScale downgrades scale-parse failures from build-fatal
	// errors to warnings; the channel is kept with its scale absent.
	LenientScale bool
}

// CreateContext builds a validated context from the given source.
// Construction is all-or-nothing: on error no partial context is
// returned. The returned context is finalized and immutable.
func CreateContext(src Source, params Params) (*model.Context, error) {
	b := newBuilder(params)

	doc := etree.NewDocument()
	switch src.kind {
	case sourceFile:
		if err := doc.ReadFromFile(src.path); err != nil {
			return nil, fmt.Errorf("reading description %s: %w", src.path, err)
		}
	case sourceContext:
		text, err := EncodeContext(src.ctx)
		if err != nil {
			return nil, fmt.Errorf("encoding context for clone: %w", err)
		}
		if err := doc.ReadFromString(text); err != nil {
			return nil, fmt.Errorf("re-reading cloned description: %w", err)
		}
	default:
		if err := doc.ReadFromBytes(src.data); err != nil {
			return nil, fmt.Errorf("reading description: %w", err)
		}
	}

	return b.buildContext(doc.Root())
}

// DecodeDevice parses a standalone <device> element.
// The returned device is not attached to a context and not finalized.
func DecodeDevice(data []byte, params Params) (*model.Device, error) {
	root, err := readRoot(data, "device")
	if err != nil {
		return nil, err
	}
	return newBuilder(params).buildDevice(root)
}

// DecodeChannel parses a standalone <channel> element.
// The returned channel is not attached to a device.
func DecodeChannel(data []byte, params Params) (*model.Channel, error) {
	root, err := readRoot(data, "channel")
	if err != nil {
		return nil, err
	}
	return newBuilder(params).buildChannel("", root)
}

func readRoot(data []byte, tag string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("reading description: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != tag {
		return nil, fmt.Errorf("%w: expected <%s> root", ErrUnrecognizedDocument, tag)
	}
	return root, nil
}

type builder struct {
	logger       log.Logger
	buildID      string
	lenientScale bool
}

func newBuilder(params Params) *builder {
	logger := params.Logger
	if logger == nil {
		logger = log.NoopLogger{}
	}
	buildID := params.BuildID
	if buildID == "" {
		buildID = uuid.New().String()
	}
	return &builder{
		logger:       logger,
		buildID:      buildID,
		lenientScale: params.LenientScale,
	}
}

func (b *builder) logf(sev log.Severity, deviceID, channelID, format string, args ...any) {
	b.logger.Log(log.Event{
		Timestamp: time.Now(),
		BuildID:   b.buildID,
		Severity:  sev,
		Component: component,
		Message:   fmt.Sprintf(format, args...),
		DeviceID:  deviceID,
		ChannelID: channelID,
	})
}

func (b *builder) buildContext(root *etree.Element) (*model.Context, error) {
	if root == nil || root.Tag != "context" {
		return nil, fmt.Errorf("%w: expected <context> root", ErrUnrecognizedDocument)
	}

	var description, gitTag string
	var major, minor uint

	for _, attr := range root.Attr {
		switch attr.Key {
		case "description":
			description = attr.Value
		case "version-major":
			major = b.parseVersion(attr.Value, "major")
		case "version-minor":
			minor = b.parseVersion(attr.Value, "minor")
		case "version-git":
			gitTag = attr.Value
		case "name":
			// The context name is assigned by the backend, not the document.
		default:
			b.logf(log.SeverityDebug, "", "", "unknown attribute %q in <context>", attr.Key)
		}
	}

	ctx := model.NewContext(backendName, description)

	// Version numbers are only retained alongside a git tag; a bare
	// major/minor pair carries no provenance and is dropped.
	if gitTag != "" {
		ctx.SetVersion(major, minor, gitTag)
	}

	for _, el := range root.ChildElements() {
		switch el.Tag {
		case "context-attribute":
			if err := b.addContextAttr(ctx, el); err != nil {
				return nil, err
			}
		case "device":
			dev, err := b.buildDevice(el)
			if err != nil {
				return nil, fmt.Errorf("unable to create device: %w", err)
			}
			ctx.AddDevice(dev)
		default:
			b.logf(log.SeverityDebug, "", "", "unknown child <%s> in <context>", el.Tag)
		}
	}

	ctx.Finalize()
	return ctx, nil
}

// parseVersion is best-effort: a bad version number is reported as a
// warning and defaults to 0; it never fails the build.
func (b *builder) parseVersion(text, which string) uint {
	v, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		b.logf(log.SeverityWarn, "", "", "invalid format for %s version %q", which, text)
		return 0
	}
	return uint(v)
}

func (b *builder) addContextAttr(ctx *model.Context, el *etree.Element) error {
	name := el.SelectAttr("name")
	value := el.SelectAttr("value")
	if name == nil || value == nil {
		return fmt.Errorf("incomplete <context-attribute>: %w", ErrMissingField)
	}
	// First occurrence wins; a duplicate insert is an idempotent no-op.
	ctx.AddAttr(name.Value, value.Value)
	return nil
}

func (b *builder) buildDevice(el *etree.Element) (*model.Device, error) {
	var id, name, label string

	for _, attr := range el.Attr {
		switch attr.Key {
		case "id":
			id = attr.Value
		case "name":
			name = attr.Value
		case "label":
			label = attr.Value
		default:
			b.logf(log.SeverityDebug, id, "", "unknown attribute %q in <device>", attr.Key)
		}
	}

	if id == "" {
		return nil, fmt.Errorf("unable to read device ID: %w", ErrMissingField)
	}

	dev := model.NewDevice(id)
	dev.SetName(name)
	dev.SetLabel(label)

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "channel":
			chn, err := b.buildChannel(id, child)
			if err != nil {
				return nil, fmt.Errorf("unable to create channel: %w", err)
			}
			dev.AddChannel(chn)
		case "attribute":
			if err := b.addDeviceAttr(dev, child, model.NamespaceDevice); err != nil {
				return nil, err
			}
		case "debug-attribute":
			if err := b.addDeviceAttr(dev, child, model.NamespaceDebug); err != nil {
				return nil, err
			}
		case "buffer-attribute":
			if err := b.addDeviceAttr(dev, child, model.NamespaceBuffer); err != nil {
				return nil, err
			}
		default:
			b.logf(log.SeverityDebug, id, "", "unknown child <%s> in <device>", child.Tag)
		}
	}

	return dev, nil
}

func (b *builder) addDeviceAttr(dev *model.Device, el *etree.Element, ns model.Namespace) error {
	var name string

	for _, attr := range el.Attr {
		switch attr.Key {
		case "name":
			name = attr.Value
		default:
			b.logf(log.SeverityDebug, dev.ID(), "", "unknown field %q in device attribute", attr.Key)
		}
	}

	if name == "" {
		return fmt.Errorf("incomplete attribute in device %s: %w", dev.ID(), ErrMissingField)
	}

	dev.AddAttr(ns, name)
	return nil
}

func (b *builder) buildChannel(deviceID string, el *etree.Element) (*model.Channel, error) {
	var id, name string
	var output bool

	for _, attr := range el.Attr {
		switch attr.Key {
		case "id":
			id = attr.Value
		case "name":
			name = attr.Value
		case "type":
			switch attr.Value {
			case "output":
				output = true
			case "input":
			default:
				b.logf(log.SeverityDebug, deviceID, id, "unknown channel type %q", attr.Value)
			}
		default:
			b.logf(log.SeverityDebug, deviceID, id, "unknown attribute %q in <channel>", attr.Key)
		}
	}

	if id == "" {
		return nil, fmt.Errorf("incomplete <channel>: %w", ErrMissingField)
	}

	chn := model.NewChannel(id)
	chn.SetName(name)
	chn.SetOutput(output)

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "attribute":
			if err := b.addChannelAttr(deviceID, chn, child); err != nil {
				return nil, err
			}
		case "scan-element":
			chn.SetScanElement(true)
			if err := b.scanElement(deviceID, chn, child); err != nil {
				return nil, err
			}
		default:
			b.logf(log.SeverityDebug, deviceID, id, "unknown child <%s> in <channel>", child.Tag)
		}
	}

	return chn, nil
}

func (b *builder) addChannelAttr(deviceID string, chn *model.Channel, el *etree.Element) error {
	var name, filename string

	for _, attr := range el.Attr {
		switch attr.Key {
		case "name":
			name = attr.Value
		case "filename":
			filename = attr.Value
		default:
			b.logf(log.SeverityDebug, deviceID, chn.ID(),
				"unknown field %q in channel %s", attr.Key, chn.ID())
		}
	}

	if name == "" {
		return fmt.Errorf("incomplete attribute in channel %s: %w", chn.ID(), ErrMissingField)
	}
	if filename == "" {
		filename = name
	}

	chn.AddAttr(name, filename)
	return nil
}

func (b *builder) scanElement(deviceID string, chn *model.Channel, el *etree.Element) error {
	for _, attr := range el.Attr {
		switch attr.Key {
		case "index":
			// Base 0: decimal, hex and octal index text are all accepted.
			value, err := strconv.ParseInt(attr.Value, 0, 64)
			if err != nil || value < 0 {
				return fmt.Errorf("%w: %q", ErrMalformedIndex, attr.Value)
			}
			chn.SetIndex(value)

		case "format":
			hasRepeat := strings.ContainsRune(attr.Value, 'X')
			f, err := DecodeFormat(attr.Value, hasRepeat)
			if err != nil {
				return err
			}
			// Scale may already have been decoded; the format
			// descriptor never carries it.
			cur := chn.Format()
			f.WithScale = cur.WithScale
			f.Scale = cur.Scale
			chn.SetFormat(f)

		case "scale":
			f := chn.Format()
			value, err := DecodeScale(attr.Value)
			if err != nil {
				// The flag is corrected either way so a stale scale
				// never survives, but the problem is still surfaced.
				f.WithScale = false
				f.Scale = 0
				chn.SetFormat(f)
				if !b.lenientScale {
					return err
				}
				b.logf(log.SeverityWarn, deviceID, chn.ID(),
					"ignoring malformed scale %q in channel %s", attr.Value, chn.ID())
				continue
			}
			f.WithScale = true
			f.Scale = value
			chn.SetFormat(f)

		default:
			b.logf(log.SeverityDebug, deviceID, chn.ID(),
				"unknown attribute %q in <scan-element>", attr.Key)
		}
	}

	return nil
}
