package ppu

// LCDC (0xFF40) bit masks.
const (
	lcdcBGEnable       = 0x01 // DMG: BG/window enable; CGB: BG/window always-on-top override
	lcdcOBJEnable      = 0x02
	lcdcOBJSize        = 0x04 // 0 = 8x8, 1 = 8x16
	lcdcBGTileMap      = 0x08 // 0 = 0x9800, 1 = 0x9C00
	lcdcTileData       = 0x10 // 0 = 0x8800 signed, 1 = 0x8000 unsigned
	lcdcWindowEnable   = 0x20
	lcdcWindowTileMap  = 0x40 // 0 = 0x9800, 1 = 0x9C00
	lcdcDisplayEnable  = 0x80
)

// STAT (0xFF41) bit masks.
const (
	statModeMask        = 0x03
	statLYCFlag         = 0x04
	statHBlankIntEnable  = 0x08
	statVBlankIntEnable  = 0x10
	statOAMIntEnable     = 0x20
	statLYCIntEnable     = 0x40
)

// OAM attribute byte bit masks.
const (
	attrPalette0_2 = 0x07 // CGB palette number
	attrBank       = 0x08 // CGB VRAM bank select
	attrDMGPalette = 0x10 // DMG: 0=OBP0, 1=OBP1
	attrFlipX      = 0x20
	attrFlipY      = 0x40
	attrPriority   = 0x80 // 1 = behind background colors 1-3
)
