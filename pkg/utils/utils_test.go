package utils

import "testing"

func TestClamp(t *testing.T) {
	if v := Clamp(1, 0, 16); v != 1 {
		t.Errorf("expected 1, got %d", v)
	}
	if v := Clamp(1, 20, 16); v != 16 {
		t.Errorf("expected 16, got %d", v)
	}
	if v := Clamp(0.0, 0.5, 1.0); v != 0.5 {
		t.Errorf("expected 0.5, got %f", v)
	}
}

func TestUint16(t *testing.T) {
	if v := JoinUint16(0x34, 0x12); v != 0x1234 {
		t.Errorf("expected 0x1234, got 0x%04X", v)
	}
	low, high := SplitUint16(0xBEEF)
	if low != 0xEF || high != 0xBE {
		t.Errorf("expected 0xEF 0xBE, got 0x%02X 0x%02X", low, high)
	}
}

func TestTestBit(t *testing.T) {
	if !TestBit(0x80, 7) || TestBit(0x80, 6) {
		t.Errorf("unexpected TestBit result for 0x80")
	}
}
