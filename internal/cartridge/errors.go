package cartridge

import "fmt"

// Kind classifies why a cartridge failed to load. All cartridge
// failures happen at construction time; once a Cartridge exists every
// Read/Write on it is total.
type Kind int

const (
	// InvalidRomSize means the ROM image's length doesn't match the
	// size the header claims, or is too short to contain a header.
	InvalidRomSize Kind = iota
	// InvalidRamSize means the header's RAM size code isn't one this
	// module recognizes.
	InvalidRamSize
	// NonAsciiTitleString names a title field (0x0134-0x0143) holding
	// bytes outside printable ASCII. New does not return it: such a byte
	// ends the parsed title instead of failing construction.
	NonAsciiTitleString
	// UnsupportedMBC means the header's cartridge type byte names a
	// controller this module doesn't implement.
	UnsupportedMBC
	// InvalidHeaderChecksum means the header checksum at 0x014D doesn't
	// match the bytes it covers.
	InvalidHeaderChecksum
)

func (k Kind) String() string {
	switch k {
	case InvalidRomSize:
		return "invalid ROM size"
	case InvalidRamSize:
		return "invalid RAM size"
	case NonAsciiTitleString:
		return "non-ASCII title string"
	case UnsupportedMBC:
		return "unsupported MBC"
	case InvalidHeaderChecksum:
		return "invalid header checksum"
	default:
		return "unknown cartridge error"
	}
}

// Error reports why a cartridge could not be constructed from a ROM image.
type Error struct {
	Kind Kind
	// Code holds the offending cartridge type byte when Kind is
	// UnsupportedMBC, and 0 otherwise.
	Code uint8
}

func (e *Error) Error() string {
	if e.Kind == UnsupportedMBC {
		return fmt.Sprintf("cartridge: %s: type %#02x", e.Kind, e.Code)
	}
	return fmt.Sprintf("cartridge: %s", e.Kind)
}
