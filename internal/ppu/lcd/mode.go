package lcd

// Mode is the mode reported in bits 0-1 of the status register.
type Mode = uint8

const (
	// HBlank is the horizontal blanking mode.
	HBlank Mode = iota
	// VBlank is the vertical blanking mode.
	VBlank
	// OAM is the OAM search mode.
	OAM
	// VRAM is the pixel transfer mode.
	VRAM
)
