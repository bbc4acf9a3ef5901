package ppu

// sprite is one decoded OAM entry: y/x are already the raw OAM values
// (offset by +16/+8 from screen coordinates, per hardware).
type sprite struct {
	y, x, tile, attr uint8
	oamIndex         uint8
}

func (p *PPU) spriteHeight() int {
	if p.lcdc&lcdcOBJSize != 0 {
		return 16
	}
	return 8
}

// scanSprites finds the (at most 10) sprites that overlap the given
// scanline, in the priority order the pixel compositor should consult
// them: ascending X with OAM order breaking ties on DMG, and on CGB
// when OPRI bit 0 is set; plain OAM order on CGB when OPRI bit 0 is
// clear.
func (p *PPU) scanSprites(line uint8) []sprite {
	height := p.spriteHeight()
	var found []sprite
	for i := 0; i < 40 && len(found) < 10; i++ {
		base := i * 4
		y := p.oam[base]
		screenY := int(y) - 16
		if int(line) < screenY || int(line) >= screenY+height {
			continue
		}
		found = append(found, sprite{
			y:        y,
			x:        p.oam[base+1],
			tile:     p.oam[base+2],
			attr:     p.oam[base+3],
			oamIndex: uint8(i),
		})
	}
	if !p.cgb || p.opri&0x01 != 0 {
		// DMG priority (and CGB when OPRI selects it): smaller X wins,
		// OAM order breaks ties. Stable sort keeps OAM order already
		// present in `found` and only needs to move earlier-X entries
		// forward.
		for i := 1; i < len(found); i++ {
			j := i
			for j > 0 && found[j].x < found[j-1].x {
				found[j], found[j-1] = found[j-1], found[j]
				j--
			}
		}
	}
	return found
}

// spritePixel returns the color index (0-3), the resolved attribute
// byte, and whether any sprite covers column x, searching the
// priority-ordered candidate list for the first non-transparent pixel.
func (p *PPU) spritePixel(candidates []sprite, x int) (uint8, uint8, bool) {
	height := p.spriteHeight()
	for _, s := range candidates {
		screenX := int(s.x) - 8
		if x < screenX || x >= screenX+8 {
			continue
		}
		line := int(p.ly) - (int(s.y) - 16)
		if s.attr&attrFlipY != 0 {
			line = height - 1 - line
		}
		tile := s.tile
		if height == 16 {
			tile &^= 0x01
			if line >= 8 {
				tile |= 0x01
				line -= 8
			}
		}

		bank := uint8(0)
		if p.cgb && s.attr&attrBank != 0 {
			bank = 1
		}
		addr := uint16(tile)*16 + uint16(line)*2
		lo := p.vram[bank][addr]
		hi := p.vram[bank][addr+1]

		col := x - screenX
		if s.attr&attrFlipX == 0 {
			col = 7 - col
		}
		c := (hi>>col&1)<<1 | lo>>col&1
		if c == 0 {
			continue
		}
		return c, s.attr, true
	}
	return 0, 0, false
}
