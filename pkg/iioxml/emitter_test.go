package iioxml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openiio/iio-go/pkg/model"
)

func buildTestChannel(t *testing.T) *model.Channel {
	t.Helper()

	chn := model.NewChannel("voltage0")
	chn.SetName("vin0")
	chn.SetScanElement(true)
	chn.SetIndex(0)
	chn.SetFormat(model.DataFormat{
		IsSigned:  true,
		Bits:      12,
		Length:    16,
		Repeat:    1,
		Shift:     4,
		WithScale: true,
		Scale:     0.5,
	})
	chn.AddAttr("raw", "in_voltage0_raw")
	chn.AddAttr("offset", "offset")
	return chn
}

func TestChannelRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		chn  func(t *testing.T) *model.Channel
	}{
		{name: "scan element with scale", chn: buildTestChannel},
		{
			name: "output without scan element",
			chn: func(t *testing.T) *model.Channel {
				chn := model.NewChannel("altvoltage0")
				chn.SetOutput(true)
				chn.AddAttr("frequency", "out_altvoltage0_frequency")
				return chn
			},
		},
		{
			name: "repeat clause",
			chn: func(t *testing.T) *model.Channel {
				chn := model.NewChannel("accel_x")
				chn.SetScanElement(true)
				chn.SetIndex(2)
				chn.SetFormat(model.DataFormat{IsBE: true, Bits: 10, Length: 16, Repeat: 4})
				return chn
			},
		},
		{
			name: "scan element without index",
			chn: func(t *testing.T) *model.Channel {
				chn := model.NewChannel("timestamp")
				chn.SetScanElement(true)
				chn.SetFormat(model.DataFormat{
					IsSigned: true, IsFullyDefined: true, Bits: 64, Length: 64, Repeat: 1,
				})
				return chn
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chn := tt.chn(t)

			text, err := EncodeChannel(chn)
			require.NoError(t, err)

			got, err := DecodeChannel([]byte(text), Params{})
			require.NoError(t, err)
			assert.True(t, got.Equal(chn), "re-decoded channel differs\nencoded: %s", text)
		})
	}
}

func TestDeviceRoundTrip(t *testing.T) {
	dev := model.NewDevice("iio:device0")
	dev.SetName("ad7124-8")
	dev.SetLabel("adc0")
	dev.AddChannel(buildTestChannel(t))
	dev.AddAttr(model.NamespaceDevice, "sampling_frequency")
	dev.AddAttr(model.NamespaceBuffer, "data_available")
	dev.AddAttr(model.NamespaceDebug, "direct_reg_access")

	text, err := EncodeDevice(dev)
	require.NoError(t, err)

	got, err := DecodeDevice([]byte(text), Params{})
	require.NoError(t, err)
	assert.True(t, got.Equal(dev), "re-decoded device differs\nencoded: %s", text)
}

func TestContextClone(t *testing.T) {
	ctx, err := CreateContext(FromXML([]byte(testDocument)), Params{})
	require.NoError(t, err)

	clone, err := CreateContext(FromContext(ctx), Params{})
	require.NoError(t, err)

	assert.True(t, clone.Equal(ctx))
	if assert.NotEmpty(t, clone.Devices()) {
		// Independent copy, not shared entities.
		assert.NotSame(t, ctx.Devices()[0], clone.Devices()[0])
	}
}

func TestEncodeContextStable(t *testing.T) {
	ctx, err := CreateContext(FromXML([]byte(testDocument)), Params{})
	require.NoError(t, err)

	first, err := EncodeContext(ctx)
	require.NoError(t, err)
	second, err := EncodeContext(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "<?xml"))
}

func TestEncodeEscapesMarkup(t *testing.T) {
	chn := model.NewChannel("voltage0")
	chn.SetName(`vin "<&>" '0'`)

	text, err := EncodeChannel(chn)
	require.NoError(t, err)
	assert.NotContains(t, text, `"<&>"`)

	got, err := DecodeChannel([]byte(text), Params{})
	require.NoError(t, err)
	assert.Equal(t, `vin "<&>" '0'`, got.Name())
}

func TestEncodeOmitsUndecodedFormat(t *testing.T) {
	chn := model.NewChannel("proximity0")
	chn.SetScanElement(true)
	chn.SetIndex(3)

	text, err := EncodeChannel(chn)
	require.NoError(t, err)
	assert.NotContains(t, text, "format=")

	got, err := DecodeChannel([]byte(text), Params{})
	require.NoError(t, err)
	assert.True(t, got.Equal(chn))
}
