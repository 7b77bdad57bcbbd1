package model

import (
	"errors"
	"math/bits"
)

// Mask errors.
var (
	ErrIndexOutOfRange = errors.New("channel index out of range")
	ErrSizeMismatch    = errors.New("channels mask size mismatch")
)

const maskWordBits = 32

// ChannelsMask is a fixed-size bitset selecting a subset of a device's
// channels by index. The size is fixed at creation and never changes;
// copying between masks requires identical word counts.
type ChannelsMask struct {
	bits  uint
	words []uint32
}

// NewChannelsMask creates a zeroed mask covering channel indices
// [0, channels).
func NewChannelsMask(channels uint) *ChannelsMask {
	return &ChannelsMask{
		bits:  channels,
		words: make([]uint32, (channels+maskWordBits-1)/maskWordBits),
	}
}

// Len returns the number of channel indices the mask covers.
func (m *ChannelsMask) Len() uint {
	return m.bits
}

// Words returns the number of storage words backing the mask.
func (m *ChannelsMask) Words() int {
	return len(m.words)
}

// Test reports whether the bit for the given channel index is set.
// Out-of-range indices read as false.
func (m *ChannelsMask) Test(bit uint) bool {
	if bit >= m.bits {
		return false
	}
	return m.words[bit/maskWordBits]&(1<<(bit%maskWordBits)) != 0
}

// Set sets the bit for the given channel index.
func (m *ChannelsMask) Set(bit uint) error {
	if bit >= m.bits {
		return ErrIndexOutOfRange
	}
	m.words[bit/maskWordBits] |= 1 << (bit % maskWordBits)
	return nil
}

// Clear clears the bit for the given channel index.
func (m *ChannelsMask) Clear(bit uint) error {
	if bit >= m.bits {
		return ErrIndexOutOfRange
	}
	m.words[bit/maskWordBits] &^= 1 << (bit % maskWordBits)
	return nil
}

// CopyTo overwrites dst with the contents of m. The masks must have
// the same word count.
func (m *ChannelsMask) CopyTo(dst *ChannelsMask) error {
	if len(m.words) != len(dst.words) {
		return ErrSizeMismatch
	}
	copy(dst.words, m.words)
	return nil
}

// Count returns the number of set bits.
func (m *ChannelsMask) Count() uint {
	var n uint
	for _, w := range m.words {
		n += uint(bits.OnesCount32(w))
	}
	return n
}
