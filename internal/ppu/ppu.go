// Package ppu renders the 160x144 framebuffer: a mode state machine
// (OAM scan, pixel drawing, H-Blank, V-Blank) driving direct
// per-scanline composition of background, window, and sprite layers,
// with DMG grayscale and CGB 15-bit color palettes.
package ppu

import (
	"github.com/thelolagemann/gomeboy/internal/dma"
	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/internal/ppu/palette"
)

// Mode is one of the four PPU states a scanline cycles through.
type Mode uint8

const (
	ModeHBlank Mode = iota
	ModeVBlank
	ModeOAM
	ModeDrawing
)

const (
	ScreenWidth  = 160
	ScreenHeight = 144

	oamCycles     = 80
	drawingCycles = 172
	hblankCycles  = 204
	lineCycles    = 456
	vblankLines   = 10
)

// PPU owns VRAM, OAM, the LCD register file, and the framebuffer.
type PPU struct {
	irq  *interrupts.Service
	hdma *dma.HDMA

	// OAMDMAActive, when non-nil, reports whether an OAM DMA transfer
	// is currently in progress so 0xFE00-0xFE9F reads can return 0xFF.
	OAMDMAActive func() bool

	cgb bool

	vram     [2][0x2000]byte
	vramBank uint8

	oam [160]byte

	lcdc, stat      uint8
	scy, scx        uint8
	ly, lyc         uint8
	wy, wx          uint8
	bgp, obp0, obp1 uint8
	opri            uint8

	bgPalette  *palette.CGBPalette
	objPalette *palette.CGBPalette

	mode       Mode
	modeClock  int
	windowLine int // internal window row counter, -1 before first use

	lineSprites []sprite

	Frame      [ScreenWidth * ScreenHeight * 4]byte
	FrameReady bool
}

// New returns a PPU. cgb selects Color Game Boy register/VRAM behavior
// (second VRAM bank, BCPS/OCPS palette RAM, OPRI).
func New(irq *interrupts.Service, hdma *dma.HDMA, cgb bool) *PPU {
	p := &PPU{
		irq:        irq,
		hdma:       hdma,
		cgb:        cgb,
		bgPalette:  palette.NewCGBPallette(),
		objPalette: palette.NewCGBPallette(),
		windowLine: -1,
	}
	p.stat = 0x80
	return p
}

func (p *PPU) bgTileMapBase() uint16 {
	if p.lcdc&lcdcBGTileMap != 0 {
		return 0x9C00
	}
	return 0x9800
}

func (p *PPU) winTileMapBase() uint16 {
	if p.lcdc&lcdcWindowTileMap != 0 {
		return 0x9C00
	}
	return 0x9800
}

// scrollPenalty is the number of 4-T-cycle units Drawing gains (and
// HBlank loses) for the partial tile SCX scrolls into view.
func (p *PPU) scrollPenalty() int {
	return int(p.scx % 8)
}

func (p *PPU) setSTATMode(m Mode) {
	p.mode = m
	p.stat = p.stat&^statModeMask | uint8(m)
}

func (p *PPU) checkLYC() {
	if p.ly == p.lyc {
		p.stat |= statLYCFlag
		if p.stat&statLYCIntEnable != 0 {
			p.irq.Request(interrupts.LCDFlag)
		}
	} else {
		p.stat &^= statLYCFlag
	}
}

// Tick advances the PPU state machine by one dot (one T-cycle at
// normal speed; the caller halves the call rate in CGB double-speed
// mode, since the dot clock itself never speeds up).
func (p *PPU) Tick() {
	if p.lcdc&lcdcDisplayEnable == 0 {
		return
	}

	p.modeClock++
	switch p.mode {
	case ModeOAM:
		if p.modeClock >= oamCycles {
			p.modeClock = 0
			p.mode = ModeDrawing
			p.lineSprites = p.scanSprites(p.ly)
		}
	case ModeDrawing:
		if p.modeClock >= drawingCycles+p.scrollPenalty()*4 {
			p.modeClock = 0
			p.renderScanline()
			p.setSTATMode(ModeHBlank)
			if p.stat&statHBlankIntEnable != 0 {
				p.irq.Request(interrupts.LCDFlag)
			}
			if p.hdma != nil {
				p.hdma.OnHBlank()
			}
		}
	case ModeHBlank:
		if p.modeClock >= hblankCycles-p.scrollPenalty()*4 {
			p.modeClock = 0
			p.ly++
			p.checkLYC()
			if p.ly == ScreenHeight {
				p.setSTATMode(ModeVBlank)
				p.irq.Request(interrupts.VBlankFlag)
				if p.stat&statVBlankIntEnable != 0 {
					p.irq.Request(interrupts.LCDFlag)
				}
				p.FrameReady = true
			} else {
				p.setSTATMode(ModeOAM)
				if p.stat&statOAMIntEnable != 0 {
					p.irq.Request(interrupts.LCDFlag)
				}
			}
		}
	case ModeVBlank:
		if p.modeClock >= lineCycles {
			p.modeClock = 0
			p.ly++
			if p.ly >= ScreenHeight+vblankLines {
				p.ly = 0
				p.windowLine = -1
				p.setSTATMode(ModeOAM)
				if p.stat&statOAMIntEnable != 0 {
					p.irq.Request(interrupts.LCDFlag)
				}
			}
			p.checkLYC()
		}
	}
}

// renderScanline composes background, window, and sprite layers for
// the current LY into the framebuffer.
func (p *PPU) renderScanline() {
	windowActive := p.lcdc&lcdcWindowEnable != 0 && p.ly >= p.wy
	windowRow := p.windowLine
	if windowActive {
		windowRow++
	}

	drewWindow := false
	for x := 0; x < ScreenWidth; x++ {
		bgIndex, bgAttr, fromWindow := p.bgWinPixel(x, windowActive, windowRow)
		if fromWindow {
			drewWindow = true
		}

		bgPriorityOverObj := p.cgb && bgAttr&attrPriority != 0 && (p.lcdc&lcdcBGEnable != 0)
		var rgb [3]uint8
		if p.cgb {
			rgb = p.bgPalette.GetColour(bgAttr&attrPalette0_2, bgIndex)
		} else {
			rgb = palette.GetColour(paletteIndex(p.bgp, bgIndex))
		}

		if p.lcdc&lcdcOBJEnable != 0 {
			if sc, sa, ok := p.spritePixel(p.lineSprites, x); ok {
				objBehindBG := sa&attrPriority != 0
				hidden := (objBehindBG || bgPriorityOverObj) && bgIndex != 0
				if !hidden {
					if p.cgb {
						rgb = p.objPalette.GetColour(sa&attrPalette0_2, sc)
					} else {
						obp := p.obp0
						if sa&attrDMGPalette != 0 {
							obp = p.obp1
						}
						rgb = palette.GetColour(paletteIndex(obp, sc))
					}
				}
			}
		}

		off := (int(p.ly)*ScreenWidth + x) * 4
		p.Frame[off] = rgb[0]
		p.Frame[off+1] = rgb[1]
		p.Frame[off+2] = rgb[2]
		p.Frame[off+3] = 0xFF
	}

	if drewWindow {
		p.windowLine = windowRow
	}
}

// paletteIndex maps a 2-bit color index through a DMG palette register
// (BGP/OBP0/OBP1) to the 2-bit index into the active 4-entry palette.
func paletteIndex(reg uint8, colorIndex uint8) uint8 {
	return (reg >> (colorIndex * 2)) & 0x03
}
