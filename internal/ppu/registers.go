package ppu

// Register addresses this package owns.
const (
	LCDC = 0xFF40
	STAT = 0xFF41
	SCY  = 0xFF42
	SCX  = 0xFF43
	LY   = 0xFF44
	LYC  = 0xFF45
	BGP  = 0xFF47
	OBP0 = 0xFF48
	OBP1 = 0xFF49
	WY   = 0xFF4A
	WX   = 0xFF4B
	VBK  = 0xFF4F
	BCPS = 0xFF68
	BCPD = 0xFF69
	OCPS = 0xFF6A
	OCPD = 0xFF6B
	OPRI = 0xFF6C
)

// ReadVRAM reads VRAM bank 0 or 1 (selected by VBK) at 0x8000-0x9FFF.
// Returns 0xFF while the PPU is actively drawing, when the CPU-side
// bus cannot see VRAM.
func (p *PPU) ReadVRAM(address uint16) uint8 {
	if p.mode == ModeDrawing {
		return 0xFF
	}
	return p.vram[p.vramBank][address-0x8000]
}

func (p *PPU) WriteVRAM(address uint16, value uint8) {
	if p.mode == ModeDrawing {
		return
	}
	p.vram[p.vramBank][address-0x8000] = value
}

// WriteVRAMDMA writes to the currently-banked VRAM directly, bypassing
// the Drawing-mode write lock — used by HDMA transfers, which run
// during H-Blank/general-purpose windows the CPU bus lock doesn't
// cover.
func (p *PPU) WriteVRAMDMA(address uint16, value uint8) {
	p.vram[p.vramBank][address-0x8000] = value
}

func (p *PPU) ReadOAM(address uint16) uint8 {
	if p.mode == ModeOAM || p.mode == ModeDrawing {
		return 0xFF
	}
	if p.OAMDMAActive != nil && p.OAMDMAActive() {
		return 0xFF
	}
	return p.oam[address-0xFE00]
}

func (p *PPU) WriteOAM(address uint16, value uint8) {
	if p.mode == ModeOAM || p.mode == ModeDrawing {
		return
	}
	if p.OAMDMAActive != nil && p.OAMDMAActive() {
		return
	}
	p.oam[address-0xFE00] = value
}

// WriteOAMDMA writes OAM byte offset directly, bypassing the
// mode/DMA-busy gate the CPU-side bus is subject to — the OAM DMA
// controller is itself the thing asserting that busy state.
func (p *PPU) WriteOAMDMA(offset uint8, value uint8) {
	p.oam[offset] = value
}

func (p *PPU) Read(address uint16) uint8 {
	switch address {
	case LCDC:
		return p.lcdc
	case STAT:
		return p.stat | 0x80
	case SCY:
		return p.scy
	case SCX:
		return p.scx
	case LY:
		return p.ly
	case LYC:
		return p.lyc
	case BGP:
		return p.bgp
	case OBP0:
		return p.obp0
	case OBP1:
		return p.obp1
	case WY:
		return p.wy
	case WX:
		return p.wx
	case VBK:
		if !p.cgb {
			return 0xFF
		}
		return p.vramBank | 0xFE
	case BCPS:
		if !p.cgb {
			return 0xFF
		}
		return p.bgPalette.GetIndex()
	case BCPD:
		if !p.cgb {
			return 0xFF
		}
		return p.bgPalette.Read()
	case OCPS:
		if !p.cgb {
			return 0xFF
		}
		return p.objPalette.GetIndex()
	case OCPD:
		if !p.cgb {
			return 0xFF
		}
		return p.objPalette.Read()
	case OPRI:
		if !p.cgb {
			return 0xFF
		}
		return p.opri | 0xFE
	}
	return 0xFF
}

func (p *PPU) Write(address uint16, value uint8) {
	switch address {
	case LCDC:
		wasOn := p.lcdc&lcdcDisplayEnable != 0
		p.lcdc = value
		if !wasOn && value&lcdcDisplayEnable != 0 {
			p.ly = 0
			p.modeClock = 0
			p.windowLine = -1
			p.setSTATMode(ModeOAM)
		} else if wasOn && value&lcdcDisplayEnable == 0 {
			p.ly = 0
			p.modeClock = 0
			p.setSTATMode(ModeHBlank)
		}
	case STAT:
		p.stat = p.stat&statModeMask | value&^statModeMask&^statLYCFlag | p.stat&statLYCFlag
	case SCY:
		p.scy = value
	case SCX:
		p.scx = value
	case LY:
		// read-only; ignored
	case LYC:
		p.lyc = value
		p.checkLYC()
	case BGP:
		p.bgp = value
	case OBP0:
		p.obp0 = value
	case OBP1:
		p.obp1 = value
	case WY:
		p.wy = value
	case WX:
		p.wx = value
	case VBK:
		if p.cgb {
			p.vramBank = value & 0x01
		}
	case BCPS:
		if p.cgb {
			p.bgPalette.SetIndex(value)
		}
	case BCPD:
		if p.cgb {
			p.bgPalette.Write(value)
		}
	case OCPS:
		if p.cgb {
			p.objPalette.SetIndex(value)
		}
	case OCPD:
		if p.cgb {
			p.objPalette.Write(value)
		}
	case OPRI:
		if p.cgb {
			p.opri = value & 0x01
		}
	}
}

// Mode returns the PPU's current mode.
func (p *PPU) Mode() Mode {
	return p.mode
}

// LYValue returns the current scanline (LY).
func (p *PPU) LYValue() uint8 {
	return p.ly
}
