package model

// DataFormat describes the bit layout of one raw sample.
//
// A sample occupies Length bits of storage of which Bits are
// significant, right-shifted by Shift after any byte swap. Repeat is
// the number of consecutive elements (1 when the descriptor has no
// repeat clause). Scale is only meaningful when WithScale is set; a
// zero scale with WithScale set is a valid, distinct state.
type DataFormat struct {
	// IsBE reports big-endian sample storage.
	IsBE bool

	// IsSigned reports two's-complement samples.
	IsSigned bool

	// IsFullyDefined is set when the sample needs no masking or
	// shifting: either the descriptor asserts it explicitly (upper-case
	// sign marker) or Bits equals Length.
	IsFullyDefined bool

	// Bits is the number of significant bits.
	Bits uint

	// Length is the storage size in bits.
	Length uint

	// Shift is the right-shift applied to each sample.
	Shift uint

	// Repeat is the element repeat count, at least 1.
	Repeat uint

	// WithScale reports whether Scale is meaningful.
	WithScale bool

	// Scale converts raw samples to SI units.
	Scale float32
}
