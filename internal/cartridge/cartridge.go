// Package cartridge parses Game Boy ROM headers and emulates the
// memory bank controllers (MBC1/MBC2/MBC3(+RTC)/MBC5) that multiplex
// ROM and RAM banks onto the CPU's fixed 0x0000-0x7FFF/0xA000-0xBFFF
// windows.
package cartridge

import (
	"github.com/cespare/xxhash/v2"
)

// MBC is the interface every memory bank controller implements. All
// reads and writes the CPU makes to 0x0000-0x7FFF and 0xA000-0xBFFF
// pass through it.
type MBC interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	// RAM returns the external cartridge RAM for persistence, or nil
	// if the cartridge has none.
	RAM() []byte
	// LoadRAM restores previously-saved external cartridge RAM.
	LoadRAM(data []byte)
}

// RTC is implemented by MBCs that carry a real-time clock (MBC3 with
// the TIMER cartridge types).
type RTC interface {
	// RTCSecondsSince advances the clock by reference seconds, the
	// elapsed wall-clock time between saves as already computed by the
	// caller, and returns the number of seconds it carried forward.
	RTCSecondsSince(reference int64) uint64
}

// Ticker is implemented by MBCs whose internal state advances with
// emulated time, independent of CPU memory accesses (MBC3's RTC).
type Ticker interface {
	Tick(dots int64)
}

// Cartridge owns a parsed header and the MBC it selects.
type Cartridge struct {
	MBC
	header *Header
	digest uint64
}

// New parses rom's header and constructs the appropriate MBC. It
// returns a typed *Error (see Kind) for any malformed header; nothing
// here panics.
func New(rom []byte) (*Cartridge, error) {
	if len(rom) < 0x150 {
		return nil, &Error{Kind: InvalidRomSize}
	}

	header, err := parseHeader(rom[0x100:0x150])
	if err != nil {
		return nil, err
	}
	if uint64(len(rom)) != uint64(header.ROMSize) {
		return nil, &Error{Kind: InvalidRomSize}
	}

	cart := &Cartridge{
		header: header,
		digest: xxhash.Sum64(rom),
	}

	switch header.CartridgeType {
	case ROM, ROMRAM, ROMRAMBATT:
		cart.MBC = newROM(rom, header)
	case MBC1, MBC1RAM, MBC1RAMBATT:
		cart.MBC = newMBC1(rom, header)
	case MBC2, MBC2BATT:
		cart.MBC = newMBC2(rom, header)
	case MBC3, MBC3RAM, MBC3RAMBATT, MBC3TIMERBATT, MBC3TIMERRAMBATT:
		cart.MBC = newMBC3(rom, header)
	case MBC5, MBC5RAM, MBC5RAMBATT, MBC5RUMBLE, MBC5RUMBLERAM, MBC5RUMBLERAMBATT:
		cart.MBC = newMBC5(rom, header)
	default:
		return nil, &Error{Kind: UnsupportedMBC, Code: uint8(header.CartridgeType)}
	}

	return cart, nil
}

// Header returns the cartridge's parsed header.
func (c *Cartridge) Header() *Header {
	return c.header
}

// Title returns the cartridge's title string.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// Digest returns the xxhash/v2 64-bit checksum of the whole ROM image,
// used to derive a stable save-file identity independent of title
// collisions.
func (c *Cartridge) Digest() uint64 {
	return c.digest
}

// RTCSecondsSince forwards to the underlying MBC's RTC if it has one,
// and is a no-op returning 0 otherwise.
func (c *Cartridge) RTCSecondsSince(reference int64) uint64 {
	if rtc, ok := c.MBC.(RTC); ok {
		return rtc.RTCSecondsSince(reference)
	}
	return 0
}

// Tick advances any MBC state that runs independent of CPU memory
// accesses (currently: the MBC3 RTC) by dots T-cycles.
func (c *Cartridge) Tick(dots int64) {
	if t, ok := c.MBC.(Ticker); ok {
		t.Tick(dots)
	}
}
