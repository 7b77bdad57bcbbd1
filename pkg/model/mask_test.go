package model

import (
	"errors"
	"testing"
)

func TestChannelsMaskSize(t *testing.T) {
	mask := NewChannelsMask(70)

	if mask.Len() != 70 {
		t.Errorf("expected length 70, got %d", mask.Len())
	}
	// 70 bits need three 32-bit words.
	if mask.Words() != 3 {
		t.Errorf("expected 3 words, got %d", mask.Words())
	}
}

func TestChannelsMaskSetTestClear(t *testing.T) {
	mask := NewChannelsMask(70)

	for i := uint(0); i < 70; i++ {
		if mask.Test(i) {
			t.Fatalf("fresh mask has bit %d set", i)
		}
	}

	for i := uint(0); i < 70; i += 3 {
		if err := mask.Set(i); err != nil {
			t.Fatalf("Set(%d): %v", i, err)
		}
	}

	for i := uint(0); i < 70; i++ {
		want := i%3 == 0
		if mask.Test(i) != want {
			t.Errorf("bit %d: expected %v", i, want)
		}
	}

	if mask.Count() != 24 {
		t.Errorf("expected 24 set bits, got %d", mask.Count())
	}

	if err := mask.Clear(0); err != nil {
		t.Fatalf("Clear(0): %v", err)
	}
	if mask.Test(0) {
		t.Error("bit 0 still set after Clear")
	}
}

func TestChannelsMaskBounds(t *testing.T) {
	mask := NewChannelsMask(8)

	if err := mask.Set(8); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Set out of range: expected ErrIndexOutOfRange, got %v", err)
	}
	if err := mask.Clear(100); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Clear out of range: expected ErrIndexOutOfRange, got %v", err)
	}
	if mask.Test(8) {
		t.Error("Test out of range must read false")
	}
}

func TestChannelsMaskCopy(t *testing.T) {
	src := NewChannelsMask(40)
	dst := NewChannelsMask(40)

	_ = src.Set(0)
	_ = src.Set(33)
	_ = dst.Set(5)

	if err := src.CopyTo(dst); err != nil {
		t.Fatalf("CopyTo: %v", err)
	}
	if !dst.Test(0) || !dst.Test(33) {
		t.Error("copied bits missing")
	}
	if dst.Test(5) {
		t.Error("destination bit survived copy")
	}
}

func TestChannelsMaskCopySizeMismatch(t *testing.T) {
	src := NewChannelsMask(40)
	dst := NewChannelsMask(80)

	if err := src.CopyTo(dst); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestDeviceMaskLazy(t *testing.T) {
	ctx := NewContext("xml", "")
	dev := NewDevice("d")
	ctx.AddDevice(dev)
	dev.AddChannel(NewChannel("voltage0"))
	dev.AddChannel(NewChannel("voltage1"))
	ctx.Finalize()

	mask := dev.Mask()
	if mask.Len() != 2 {
		t.Errorf("expected mask sized to channel count, got %d", mask.Len())
	}
	if dev.Mask() != mask {
		t.Error("Mask must return the same instance")
	}
}
