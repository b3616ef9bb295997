package utils

// JoinUint16 combines two bytes into a little-endian 16-bit value, the
// low byte being the one stored at the lower address.
func JoinUint16(low, high uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// SplitUint16 returns the low and high bytes of value.
func SplitUint16(value uint16) (low, high uint8) {
	return uint8(value & 0xFF), uint8(value >> 8)
}
