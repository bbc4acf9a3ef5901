package cartridge

// mbc1 supports up to 2MiB ROM (125 usable banks) and up to 32KiB
// banked RAM, selected by a 5-bit bank1 + 2-bit bank2 register pair
// whose meaning depends on the banking mode latch.
type mbc1 struct {
	rom []byte
	ram []byte

	// ramg gates access to cartridge RAM; enabled by writing 0b1010 to
	// the low nibble of 0x0000-0x1FFF, disabled by anything else.
	ramg bool

	// bank1 is a 5-bit register (0x2000-0x3FFF). Zero is adjusted up to
	// one, so banks 0x00/0x20/0x40/0x60 are unreachable from this field
	// alone — the well-known MBC1 "bank 0" quirk.
	bank1 uint8
	// bank2 is a 2-bit register (0x4000-0x5FFF), used as the high bits
	// of the ROM bank number, or as the RAM bank number, depending on mode.
	bank2 uint8
	// mode selects whether bank2 also affects the 0x0000-0x3FFF window
	// and the RAM window (true), or only the 0x4000-0x7FFF window (false).
	mode bool

	multicart bool
	romBanks  uint8
}

func newMBC1(rom []byte, header *Header) *mbc1 {
	m := &mbc1{
		rom:      rom,
		ram:      make([]byte, header.RAMSize),
		bank1:    0x01,
		romBanks: uint8(len(rom) / 0x4000),
	}
	m.detectMulticart()
	return m
}

// mbc1Logo is the Nintendo logo bytes (0x0104-0x0133), which multicart
// (MBC1M) ROMs repeat at the start of every 256KiB bank — the
// heuristic real hardware has no way to detect and neither do we,
// except by checking for that repetition.
var mbc1Logo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B,
	0x03, 0x73, 0x00, 0x83, 0x00, 0x0C, 0x00, 0x0D,
	0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E,
	0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99,
	0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC,
	0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

func (m *mbc1) detectMulticart() {
	if len(m.rom) != 1024*1024 {
		return
	}
	matches := 0
	for bank := 0; bank < 4; bank++ {
		base := bank * 0x40000
		ok := true
		for i, want := range mbc1Logo {
			if base+0x104+i >= len(m.rom) || m.rom[base+0x104+i] != want {
				ok = false
				break
			}
		}
		if ok {
			matches++
		}
	}
	m.multicart = matches > 1
}

// bankShift is the number of bits bank2 is shifted left by when
// combined with bank1: 5 normally, 4 on multicarts (whose bank1 is
// itself only 4 bits wide in that configuration).
func (m *mbc1) bankShift() uint8 {
	if m.multicart {
		return 4
	}
	return 5
}

func (m *mbc1) bank1Bits() uint8 {
	if m.multicart {
		return m.bank1 & 0x0F
	}
	return m.bank1
}

func (m *mbc1) maskBank(bank uint8) uint8 {
	if m.romBanks == 0 {
		return 0
	}
	return bank % m.romBanks
}

func (m *mbc1) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		bank := uint8(0)
		if m.mode {
			bank = m.maskBank(m.bank2 << m.bankShift())
		}
		return m.romAt(bank, address)
	case address < 0x8000:
		bank := m.maskBank(m.bank1Bits() | m.bank2<<m.bankShift())
		return m.romAt(bank, address-0x4000)
	case address >= 0xA000 && address < 0xC000:
		if !m.ramg || len(m.ram) == 0 {
			return 0xFF
		}
		return m.ram[m.ramOffset(address)]
	}
	return 0xFF
}

func (m *mbc1) romAt(bank uint8, offset uint16) uint8 {
	idx := int(bank)*0x4000 + int(offset)
	if idx >= len(m.rom) {
		return 0xFF
	}
	return m.rom[idx]
}

func (m *mbc1) ramOffset(address uint16) uint16 {
	if !m.mode || len(m.ram) <= 8*1024 {
		return (address - 0xA000) % uint16(len(m.ram))
	}
	bank := uint16(m.bank2 & 0x03)
	return bank*0x2000 + (address-0xA000)%0x2000
}

func (m *mbc1) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.ramg = value&0x0F == 0x0A
	case address < 0x4000:
		value &= 0x1F
		if value == 0 {
			value = 1
		}
		m.bank1 = value
	case address < 0x6000:
		m.bank2 = value & 0b11
	case address < 0x8000:
		m.mode = value&1 == 1
	case address >= 0xA000 && address < 0xC000:
		if m.ramg && len(m.ram) > 0 {
			m.ram[m.ramOffset(address)] = value
		}
	}
}

func (m *mbc1) RAM() []byte {
	return m.ram
}

func (m *mbc1) LoadRAM(data []byte) {
	copy(m.ram, data)
}
