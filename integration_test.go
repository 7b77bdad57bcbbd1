package iio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openiio/iio-go/pkg/iioxml"
	"github.com/openiio/iio-go/pkg/log"
	"github.com/openiio/iio-go/pkg/model"
	"github.com/openiio/iio-go/pkg/persistence"
)

// plutoDocument is a trimmed description of a real software-defined
// radio front end: one capture device with scan elements and one DDS
// output device.
const plutoDocument = `<?xml version="1.0" encoding="utf-8"?>` +
	`<context name="xml" description="Analog Devices PlutoSDR" version-major="0" version-minor="25" version-git="v0.25">` +
	`<context-attribute name="hw_model" value="Analog Devices PlutoSDR Rev.B" />` +
	`<context-attribute name="uri" value="ip:pluto.local" />` +
	`<device id="iio:device0" name="ad9361-phy">` +
	`<channel id="altvoltage0" name="RX_LO" type="output">` +
	`<attribute name="frequency" filename="out_altvoltage0_RX_LO_frequency" />` +
	`<attribute name="powerdown" filename="out_altvoltage0_RX_LO_powerdown" />` +
	`</channel>` +
	`<channel id="voltage0" type="input">` +
	`<attribute name="hardwaregain" filename="in_voltage0_hardwaregain" />` +
	`<attribute name="rssi" filename="in_voltage0_rssi" />` +
	`</channel>` +
	`<channel id="temp0" type="input">` +
	`<attribute name="input" filename="in_temp0_input" />` +
	`</channel>` +
	`<attribute name="ensm_mode" />` +
	`<attribute name="calib_mode" />` +
	`<debug-attribute name="direct_reg_access" />` +
	`</device>` +
	`<device id="iio:device1" name="cf-ad9361-lpc" label="rx-stream">` +
	`<channel id="voltage0" type="input">` +
	`<scan-element index="0" format="le:S12/16&gt;&gt;0" scale="0.000488" />` +
	`<attribute name="sampling_frequency" filename="in_voltage_sampling_frequency" />` +
	`</channel>` +
	`<channel id="voltage1" type="input">` +
	`<scan-element index="1" format="le:S12/16&gt;&gt;0" scale="0.000488" />` +
	`<attribute name="sampling_frequency" filename="in_voltage_sampling_frequency" />` +
	`</channel>` +
	`<buffer-attribute name="watermark" />` +
	`<buffer-attribute name="data_available" />` +
	`</device>` +
	`</context>`

func TestDescriptionPipeline(t *testing.T) {
	capture := &captureLogger{}
	params := iioxml.Params{Logger: capture, BuildID: "pipeline-test"}

	ctx, err := iioxml.CreateContext(iioxml.FromXML([]byte(plutoDocument)), params)
	require.NoError(t, err)

	// Context surface
	assert.Equal(t, "xml", ctx.Name())
	assert.Equal(t, "Analog Devices PlutoSDR", ctx.Description())
	major, minor, gitTag := ctx.Version()
	assert.Equal(t, uint(0), major)
	assert.Equal(t, uint(25), minor)
	assert.Equal(t, "v0.25", gitTag)

	uri, ok := ctx.Attr("uri")
	require.True(t, ok)
	assert.Equal(t, "ip:pluto.local", uri)

	// Device surface
	phy := ctx.Device("iio:device0")
	require.NotNil(t, phy)
	assert.Equal(t, "ad9361-phy", phy.Name())
	assert.True(t, phy.Attrs(model.NamespaceDevice).Contains("ensm_mode"))
	assert.True(t, phy.Attrs(model.NamespaceDebug).Contains("direct_reg_access"))

	lo := phy.Channel("altvoltage0", true)
	require.NotNil(t, lo)
	assert.Equal(t, "RX_LO", lo.Name())
	assert.False(t, lo.IsScanElement())

	// Scan elements on the streaming device
	stream := ctx.Device("iio:device1")
	require.NotNil(t, stream)
	assert.Equal(t, "rx-stream", stream.Label())

	v0 := stream.Channel("voltage0", false)
	require.NotNil(t, v0)
	require.True(t, v0.IsScanElement())
	assert.Equal(t, int64(0), v0.Index())

	f := v0.Format()
	assert.False(t, f.IsBE)
	assert.True(t, f.IsSigned)
	assert.True(t, f.IsFullyDefined)
	assert.Equal(t, uint(12), f.Bits)
	assert.Equal(t, uint(16), f.Length)
	assert.Equal(t, uint(1), f.Repeat)
	assert.True(t, f.WithScale)
	assert.InDelta(t, 0.000488, float64(f.Scale), 1e-9)

	// Channel kind resolution
	assert.Equal(t, "voltage", v0.Kind())
	temp := phy.Channel("temp0", false)
	require.NotNil(t, temp)
	assert.Equal(t, "temp", temp.Kind())

	// Mask over the streaming device's channels
	mask := stream.Mask()
	require.NoError(t, mask.Set(v0.Number()))
	assert.True(t, mask.Test(v0.Number()))
	assert.Equal(t, uint(1), mask.Count())

	// Round trip: emit, rebuild, compare
	text, err := iioxml.EncodeContext(ctx)
	require.NoError(t, err)

	rebuilt, err := iioxml.CreateContext(iioxml.FromXML([]byte(text)), params)
	require.NoError(t, err)
	assert.True(t, ctx.Equal(rebuilt))

	// Build diagnostics carried the build id
	for _, event := range capture.events {
		assert.Equal(t, "pipeline-test", event.BuildID)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	params := iioxml.Params{}
	ctx, err := iioxml.CreateContext(iioxml.FromXML([]byte(plutoDocument)), params)
	require.NoError(t, err)

	store := persistence.NewStore(t.TempDir())
	snap, err := store.Save("pluto", ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Devices)
	assert.Equal(t, "Analog Devices PlutoSDR", snap.Description)

	restored, err := store.Load("pluto", params)
	require.NoError(t, err)
	assert.True(t, ctx.Equal(restored))
}

func TestContextClone(t *testing.T) {
	ctx, err := iioxml.CreateContext(iioxml.FromXML([]byte(plutoDocument)), iioxml.Params{})
	require.NoError(t, err)

	clone, err := iioxml.CreateContext(iioxml.FromContext(ctx), iioxml.Params{})
	require.NoError(t, err)

	require.NotSame(t, ctx, clone)
	assert.True(t, ctx.Equal(clone))

	// Clones are independent: masks do not leak across
	dev := ctx.Device("iio:device1")
	require.NoError(t, dev.Mask().Set(0))
	assert.False(t, clone.Device("iio:device1").Mask().Test(0))
}

// captureLogger records build events for assertions.
type captureLogger struct {
	events []log.Event
}

func (l *captureLogger) Log(event log.Event) {
	l.events = append(l.events, event)
}
