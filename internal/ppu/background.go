package ppu

// tilePixel decodes the low+high bitplane bytes for one row of a tile
// and returns the 2-bit color index at column col (0 = leftmost).
func tilePixel(lo, hi uint8, col int) uint8 {
	shift := uint(7 - col)
	return (hi>>shift&1)<<1 | lo>>shift&1
}

// bgAttr reads the CGB background/window attribute byte (VRAM bank 1)
// for a tilemap cell, returning the zero value when not in CGB mode.
func (p *PPU) bgAttr(mapBase uint16, cellOffset uint16) uint8 {
	if !p.cgb {
		return 0
	}
	return p.vram[1][mapBase+cellOffset-0x8000]
}

// bgWinPixel computes the background-or-window color index, CGB
// attribute byte, and whether the pixel came from the window, for
// screen column x on the current scanline. windowRow is the window's
// own internal line counter for this scanline (only meaningful when
// the window is actually enabled and on-screen).
func (p *PPU) bgWinPixel(x int, windowActive bool, windowRow int) (colorIndex uint8, attr uint8, fromWindow bool) {
	useWindow := windowActive && p.lcdc&lcdcWindowEnable != 0 &&
		x+7 >= int(p.wx) && int(p.wx) <= 166

	var mapBase uint16
	var tileX, tileY, fineX, fineY int
	if useWindow {
		mapBase = p.winTileMapBase()
		wx := x + 7 - int(p.wx)
		tileX, fineX = wx/8, wx%8
		tileY, fineY = windowRow/8, windowRow%8
		fromWindow = true
	} else {
		if p.lcdc&lcdcBGEnable == 0 && !p.cgb {
			return 0, 0, false
		}
		mapBase = p.bgTileMapBase()
		bx := (int(p.scx) + x) & 0xFF
		by := (int(p.scy) + int(p.ly)) & 0xFF
		tileX, fineX = bx/8, bx%8
		tileY, fineY = by/8, by%8
	}

	cellOffset := uint16(tileY)*32 + uint16(tileX)
	tileIdx := p.vram[0][mapBase+cellOffset-0x8000]
	a := p.bgAttr(mapBase, cellOffset)

	if a&attrFlipY != 0 {
		fineY = 7 - fineY
	}
	bank := uint8(0)
	if a&attrBank != 0 {
		bank = 1
	}

	var addr uint16
	if p.lcdc&lcdcTileData != 0 {
		addr = 0x8000 + uint16(tileIdx)*16
	} else {
		addr = uint16(int32(0x9000) + int32(int8(tileIdx))*16)
	}
	addr += uint16(fineY) * 2

	lo := p.vram[bank][addr-0x8000]
	hi := p.vram[bank][addr-0x8000+1]

	col := fineX
	if a&attrFlipX != 0 {
		col = 7 - col
	}
	return tilePixel(lo, hi, col), a, fromWindow
}
