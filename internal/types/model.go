// Package types holds constants shared across every hardware package:
// the CPU model enumeration and the I/O hardware address map.
package types

// Model represents the physical Game Boy hardware being emulated. Only the
// three models the core spec names are supported; SGB/AGB quirks are not
// modeled.
type Model uint8

const (
	// DMG is the original 1989 Game Boy.
	DMG Model = iota
	// MGB is the Game Boy Pocket, behaviorally identical to DMG except for
	// its post-boot register values.
	MGB
	// CGB is the Game Boy Color, running in double-speed-capable mode with
	// CGB-only registers (VBK, SVBK, HDMA, CGB palettes) live.
	CGB
)

func (m Model) String() string {
	switch m {
	case DMG:
		return "DMG"
	case MGB:
		return "MGB"
	case CGB:
		return "CGB"
	default:
		return "Unknown"
	}
}

// IsCGB reports whether the model exposes CGB-only hardware.
func (m Model) IsCGB() bool {
	return m == CGB
}

// PostBootRegisters returns the A,F,B,C,D,E,H,L values the real boot ROM
// leaves behind when control reaches 0x0100, keyed by model.
func (m Model) PostBootRegisters() [8]uint8 {
	switch m {
	case CGB:
		return [8]uint8{0x11, 0x80, 0x00, 0x00, 0x00, 0x08, 0x00, 0x7C}
	case MGB:
		return [8]uint8{0xFF, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D}
	default: // DMG
		return [8]uint8{0x01, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D}
	}
}
