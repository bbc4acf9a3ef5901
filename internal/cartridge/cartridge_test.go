package cartridge

import "testing"

// makeROM builds a minimal header-valid ROM of the given size and
// cartridge type, with a correct header checksum.
func makeROM(size int, cartType Type, romSizeCode, ramSizeCode byte) []byte {
	rom := make([]byte, size)
	for i := range rom {
		rom[i] = 0xFF
	}
	title := "TESTROM"
	copy(rom[0x134:], title)
	rom[0x147] = byte(cartType)
	rom[0x148] = romSizeCode
	rom[0x149] = ramSizeCode

	var sum uint8
	for i := 0x134; i <= 0x14C; i++ {
		sum = sum - rom[i] - 1
	}
	rom[0x14D] = sum
	return rom
}

func TestNew_InvalidRomSize(t *testing.T) {
	_, err := New(make([]byte, 0x100))
	var cerr *Error
	if !asError(err, &cerr) || cerr.Kind != InvalidRomSize {
		t.Fatalf("expected InvalidRomSize, got %v", err)
	}
}

func TestNew_UnsupportedMBC(t *testing.T) {
	rom := makeROM(32*1024, Type(0x20), 0x00, 0x00)
	_, err := New(rom)
	var cerr *Error
	if !asError(err, &cerr) || cerr.Kind != UnsupportedMBC {
		t.Fatalf("expected UnsupportedMBC, got %v", err)
	}
}

func TestNew_BadHeaderChecksum(t *testing.T) {
	rom := makeROM(32*1024, ROM, 0x00, 0x00)
	rom[0x14D] ^= 0xFF
	_, err := New(rom)
	var cerr *Error
	if !asError(err, &cerr) || cerr.Kind != InvalidHeaderChecksum {
		t.Fatalf("expected InvalidHeaderChecksum, got %v", err)
	}
}

func TestNew_ROMOnly(t *testing.T) {
	rom := makeROM(32*1024, ROM, 0x00, 0x00)
	c, err := New(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Title() != "TESTROM" {
		t.Fatalf("Title() = %q, want TESTROM", c.Title())
	}
	if c.Read(0x0147) != byte(ROM) {
		t.Fatalf("expected header byte readback")
	}
}

func TestMBC1_BankZeroAdjustment(t *testing.T) {
	rom := makeROM(128*1024, MBC1, 0x02, 0x00) // 128KiB = 8 banks
	for bank := 0; bank < 8; bank++ {
		rom[bank*0x4000] = byte(bank)
	}
	c, err := New(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Write(0x2000, 0x00) // request bank 0 -> adjusted to bank 1
	if got := c.Read(0x4000); got != 1 {
		t.Fatalf("Read(0x4000) = %d, want 1 (bank-0 adjustment)", got)
	}
	c.Write(0x2000, 0x03)
	if got := c.Read(0x4000); got != 3 {
		t.Fatalf("Read(0x4000) = %d, want 3", got)
	}
}

func TestMBC1_RAMGate(t *testing.T) {
	rom := makeROM(32*1024, MBC1RAM, 0x00, 0x02) // 8KiB RAM
	c, err := New(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Write(0xA000, 0x42) // disabled, write ignored
	if got := c.Read(0xA000); got != 0xFF {
		t.Fatalf("Read(0xA000) = %#02x, want 0xFF while RAM disabled", got)
	}
	c.Write(0x0000, 0x0A) // enable
	c.Write(0xA000, 0x42)
	if got := c.Read(0xA000); got != 0x42 {
		t.Fatalf("Read(0xA000) = %#02x, want 0x42", got)
	}
}

func TestMBC3_RTCLatchAndTick(t *testing.T) {
	rom := makeROM(32*1024, MBC3TIMERBATT, 0x00, 0x00)
	c, err := New(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Write(0x0000, 0x0A) // RAM/RTC enable
	c.Tick(dotsPerSecond * 3)
	c.Write(0x6000, 0x00)
	c.Write(0x6000, 0x01) // latch
	c.Write(0x4000, 0x08) // select seconds register
	if got := c.Read(0xA000); got != 3 {
		t.Fatalf("latched seconds = %d, want 3", got)
	}
}

func asError(err error, target **Error) bool {
	if e, ok := err.(*Error); ok {
		*target = e
		return true
	}
	return false
}
