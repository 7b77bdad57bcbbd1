package iioxml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openiio/iio-go/pkg/model"
)

func TestDecodeFormat(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		hasRepeat bool
		want      model.DataFormat
	}{
		{
			name: "signed big-endian fully defined",
			text: "be:s16/16>>0",
			want: model.DataFormat{
				IsBE:           true,
				IsSigned:       true,
				IsFullyDefined: true,
				Bits:           16,
				Length:         16,
				Repeat:         1,
			},
		},
		{
			name:      "unsigned little-endian with repeat",
			text:      "le:u12/16X4>>2",
			hasRepeat: true,
			want: model.DataFormat{
				Bits:   12,
				Length: 16,
				Repeat: 4,
				Shift:  2,
			},
		},
		{
			name: "shifted signed sample",
			text: "le:s12/16>>4",
			want: model.DataFormat{
				IsSigned: true,
				Bits:     12,
				Length:   16,
				Repeat:   1,
				Shift:    4,
			},
		},
		{
			name: "upper-case sign asserts fully defined",
			text: "le:S12/16>>4",
			want: model.DataFormat{
				IsSigned:       true,
				IsFullyDefined: true,
				Bits:           12,
				Length:         16,
				Repeat:         1,
				Shift:          4,
			},
		},
		{
			name: "upper-case unsigned",
			text: "be:U10/16>>0",
			want: model.DataFormat{
				IsBE:           true,
				IsFullyDefined: true,
				Bits:           10,
				Length:         16,
				Repeat:         1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeFormat(tt.text, tt.hasRepeat)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeFormatMalformed(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		hasRepeat bool
	}{
		{name: "garbage", text: "garbage"},
		{name: "empty", text: ""},
		{name: "bad endianness", text: "xe:s16/16>>0"},
		{name: "bad sign", text: "le:q16/16>>0"},
		{name: "non-numeric bits", text: "le:sAA/16>>0"},
		{name: "missing shift", text: "le:s16/16"},
		{name: "trailing garbage", text: "le:s16/16>>0zzz"},
		{name: "repeat clause without repeat flag", text: "le:u12/16X4>>2"},
		{name: "repeat flag without clause", text: "le:u12/16>>2", hasRepeat: true},
		{name: "negative bits", text: "le:s-16/16>>0"},
		{name: "overflowing bits", text: "le:s99999999999/16>>0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeFormat(tt.text, tt.hasRepeat)
			require.ErrorIs(t, err, ErrMalformedFormat)
			// Never a partially filled format on failure.
			assert.Equal(t, model.DataFormat{}, got)
		})
	}
}

func TestEncodeFormatInverse(t *testing.T) {
	formats := []model.DataFormat{
		{IsBE: true, IsSigned: true, IsFullyDefined: true, Bits: 16, Length: 16, Repeat: 1},
		{Bits: 12, Length: 16, Repeat: 4, Shift: 2},
		{IsSigned: true, Bits: 12, Length: 16, Repeat: 1, Shift: 4},
		{IsBE: true, Bits: 10, Length: 16, Repeat: 1},
		{IsSigned: true, IsFullyDefined: true, Bits: 12, Length: 16, Repeat: 1},
		{IsFullyDefined: true, Bits: 8, Length: 8, Repeat: 2},
	}

	for _, f := range formats {
		text := EncodeFormat(f)
		t.Run(text, func(t *testing.T) {
			got, err := DecodeFormat(text, strings.ContainsRune(text, 'X'))
			require.NoError(t, err)
			assert.Equal(t, f, got)
		})
	}
}

func TestEncodeFormatRepeatClause(t *testing.T) {
	t.Run("omitted for repeat 1", func(t *testing.T) {
		text := EncodeFormat(model.DataFormat{Bits: 16, Length: 16, Repeat: 1})
		assert.NotContains(t, text, "X")
	})

	t.Run("present for repeat above 1", func(t *testing.T) {
		text := EncodeFormat(model.DataFormat{Bits: 16, Length: 16, Repeat: 3})
		assert.Contains(t, text, "X3")
	})
}

func TestDecodeScale(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		v, err := DecodeScale("0.030517578125")
		require.NoError(t, err)
		assert.InDelta(t, 0.030517578125, float64(v), 1e-12)
	})

	t.Run("exponent form", func(t *testing.T) {
		v, err := DecodeScale("1.5e-3")
		require.NoError(t, err)
		assert.InDelta(t, 0.0015, float64(v), 1e-9)
	})

	t.Run("trailing garbage", func(t *testing.T) {
		_, err := DecodeScale("1.25abc")
		assert.ErrorIs(t, err, ErrMalformedScale)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := DecodeScale("")
		assert.ErrorIs(t, err, ErrMalformedScale)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := DecodeScale("1e400")
		assert.ErrorIs(t, err, ErrMalformedScale)
	})
}

func TestEncodeScaleRoundTrip(t *testing.T) {
	for _, scale := range []float32{0, 1, 0.5, 0.030517578125, 2.44140625e-4, 1000} {
		text := EncodeScale(scale)
		got, err := DecodeScale(text)
		require.NoError(t, err, "scale %v encoded as %q", scale, text)
		assert.Equal(t, scale, got)
	}
}
