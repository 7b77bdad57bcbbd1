package iioxml

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/openiio/iio-go/pkg/model"
)

// The format descriptor matches exactly one of two shapes; anything
// else (wrong arity, non-numeric field, trailing garbage) is rejected
// outright so a caller never adopts a partially decoded format.
var (
	formatPattern       = regexp.MustCompile(`^([bl])e:([sSuU])([0-9]+)/([0-9]+)>>([0-9]+)$`)
	formatRepeatPattern = regexp.MustCompile(`^([bl])e:([sSuU])([0-9]+)/([0-9]+)X([0-9]+)>>([0-9]+)$`)
)

// DecodeFormat parses a format descriptor such as "le:s12/16>>4" or
// "be:u10/16X2>>0". hasRepeat selects the shape with the repeat
// clause; when absent the repeat count defaults to 1.
func DecodeFormat(text string, hasRepeat bool) (model.DataFormat, error) {
	pattern := formatPattern
	if hasRepeat {
		pattern = formatRepeatPattern
	}

	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return model.DataFormat{}, fmt.Errorf("%w: %q", ErrMalformedFormat, text)
	}

	var f model.DataFormat
	f.IsBE = m[1] == "b"
	f.IsSigned = m[2] == "s" || m[2] == "S"
	f.Repeat = 1

	fields := []*uint{&f.Bits, &f.Length}
	if hasRepeat {
		fields = append(fields, &f.Repeat)
	}
	fields = append(fields, &f.Shift)

	for i, dst := range fields {
		v, err := strconv.ParseUint(m[3+i], 10, 32)
		if err != nil {
			return model.DataFormat{}, fmt.Errorf("%w: %q: %v", ErrMalformedFormat, text, err)
		}
		*dst = uint(v)
	}

	f.IsFullyDefined = m[2] == "S" || m[2] == "U" || f.Bits == f.Length
	return f, nil
}

// EncodeFormat renders a format descriptor, the inverse of
// DecodeFormat. The repeat clause is only emitted when the repeat
// count is not 1; the sign marker is upper-cased when the format is
// fully defined.
func EncodeFormat(f model.DataFormat) string {
	e := byte('l')
	if f.IsBE {
		e = 'b'
	}

	s := byte('u')
	if f.IsSigned {
		s = 's'
	}
	if f.IsFullyDefined {
		s -= 'a' - 'A'
	}

	if f.Repeat != 1 {
		return fmt.Sprintf("%ce:%c%d/%dX%d>>%d", e, s, f.Bits, f.Length, f.Repeat, f.Shift)
	}
	return fmt.Sprintf("%ce:%c%d/%d>>%d", e, s, f.Bits, f.Length, f.Shift)
}

// DecodeScale parses a scale value: a locale-independent float
// literal. Trailing garbage and out-of-range values are rejected.
func DecodeScale(text string) (float32, error) {
	v, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedScale, text)
	}
	return float32(v), nil
}

// EncodeScale renders a scale value so that DecodeScale returns the
// identical float32.
func EncodeScale(scale float32) string {
	return strconv.FormatFloat(float64(scale), 'g', -1, 32)
}
