package cartridge

import "fmt"

// Type is the cartridge type byte at 0x0147, identifying which MBC (if
// any) the ROM expects.
type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
)

func (t Type) String() string {
	switch t {
	case ROM:
		return "ROM ONLY"
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return "MBC1"
	case MBC2, MBC2BATT:
		return "MBC2"
	case ROMRAM, ROMRAMBATT:
		return "ROM+RAM"
	case MBC3TIMERBATT, MBC3TIMERRAMBATT:
		return "MBC3+TIMER"
	case MBC3, MBC3RAM, MBC3RAMBATT:
		return "MBC3"
	case MBC5, MBC5RAM, MBC5RAMBATT, MBC5RUMBLE, MBC5RUMBLERAM, MBC5RUMBLERAMBATT:
		return "MBC5"
	default:
		return fmt.Sprintf("unknown (%#02x)", uint8(t))
	}
}

// HasBattery reports whether the cartridge type includes battery-backed
// save RAM (or RTC) that should survive a power cycle.
func (t Type) HasBattery() bool {
	switch t {
	case MBC1RAMBATT, MBC2BATT, ROMRAMBATT, MBC3TIMERBATT, MBC3TIMERRAMBATT,
		MBC3RAMBATT, MBC5RAMBATT, MBC5RUMBLERAMBATT:
		return true
	}
	return false
}

// HasRTC reports whether the cartridge type includes the MBC3 real time clock.
func (t Type) HasRTC() bool {
	return t == MBC3TIMERBATT || t == MBC3TIMERRAMBATT
}

// CGBSupport is the value of the CGB-flag byte at 0x0143.
type CGBSupport uint8

const (
	// CGBUnsupported means the cartridge predates the Color flag and
	// byte 0x0143 is part of the title string instead.
	CGBUnsupported CGBSupport = iota
	// CGBEnhanced means the cartridge runs on DMG but has CGB-specific
	// enhancements.
	CGBEnhanced
	// CGBOnly means the cartridge refuses to run on DMG hardware.
	CGBOnly
)

var ramSizes = map[uint8]uint32{
	0x00: 0,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Header is the parsed 0x0100-0x014F cartridge header.
type Header struct {
	Title            string
	ManufacturerCode string
	CGBFlag          CGBSupport
	NewLicenseeCode  string
	SGBFlag          bool
	CartridgeType    Type
	ROMSize          uint32
	RAMSize          uint32
	DestinationCode  uint8
	OldLicenseeCode  uint8
	MaskROMVersion   uint8
	HeaderChecksum   uint8
	GlobalChecksum   uint16
}

// parseHeader parses the 0x50-byte header region (0x0100-0x014F) of a
// ROM image, validating the header checksum. A title byte outside
// printable ASCII is not an error: the title ends at the first such
// byte, the same way it ends at the first NUL.
func parseHeader(raw []byte) (*Header, error) {
	if len(raw) != 0x50 {
		return nil, &Error{Kind: InvalidRomSize}
	}

	h := &Header{}

	switch raw[0x43] {
	case 0x80:
		h.CGBFlag = CGBEnhanced
	case 0xC0:
		h.CGBFlag = CGBOnly
	default:
		h.CGBFlag = CGBUnsupported
	}

	titleEnd := 0x44
	if h.CGBFlag != CGBUnsupported {
		titleEnd = 0x43
	}
	title := raw[0x34:titleEnd]
	for i, b := range title {
		if b < 0x20 || b > 0x7E {
			title = title[:i]
			break
		}
	}
	h.Title = string(title)

	h.ManufacturerCode = trimNulls(raw[0x3F:0x43])
	h.NewLicenseeCode = string(raw[0x44:0x46])
	h.SGBFlag = raw[0x46] == 0x03
	h.CartridgeType = Type(raw[0x47])
	h.ROMSize = (32 * 1024) << raw[0x48]

	ramSize, ok := ramSizes[raw[0x49]]
	if !ok {
		return nil, &Error{Kind: InvalidRamSize}
	}
	h.RAMSize = ramSize

	h.DestinationCode = raw[0x4A]
	h.OldLicenseeCode = raw[0x4B]
	h.MaskROMVersion = raw[0x4C]
	h.HeaderChecksum = raw[0x4D]
	h.GlobalChecksum = uint16(raw[0x4E])<<8 | uint16(raw[0x4F])

	var sum uint8
	for i := 0x34; i <= 0x4C; i++ {
		sum = sum - raw[i] - 1
	}
	if sum != h.HeaderChecksum {
		return nil, &Error{Kind: InvalidHeaderChecksum}
	}

	return h, nil
}

func trimNulls(b []byte) string {
	n := len(b)
	for n > 0 && b[n-1] == 0 {
		n--
	}
	return string(b[:n])
}

// IsCGB reports whether the header marks the cartridge CGB-enhanced or
// CGB-exclusive.
func (h *Header) IsCGB() bool {
	return h.CGBFlag != CGBUnsupported
}

func (h *Header) String() string {
	return fmt.Sprintf("%s [%s] ROM=%dKiB RAM=%dKiB", h.Title, h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}
