package ppu

import (
	"testing"

	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/internal/ppu/palette"
)

func newTestPPU() *PPU {
	irq := interrupts.NewService()
	p := New(irq, nil, false)
	p.Write(LCDC, lcdcDisplayEnable|lcdcBGEnable)
	return p
}

func tick(p *PPU, n int) {
	for i := 0; i < n; i++ {
		p.Tick()
	}
}

func TestPPU_ModeTimingOneScanline(t *testing.T) {
	p := newTestPPU()
	if p.Mode() != ModeOAM {
		t.Fatalf("expected ModeOAM at start, got %v", p.Mode())
	}
	tick(p, oamCycles)
	if p.Mode() != ModeDrawing {
		t.Fatalf("expected ModeDrawing after OAM budget, got %v", p.Mode())
	}
	tick(p, drawingCycles)
	if p.Mode() != ModeHBlank {
		t.Fatalf("expected ModeHBlank after Drawing budget, got %v", p.Mode())
	}
	tick(p, hblankCycles)
	if p.ly != 1 {
		t.Fatalf("LY = %d, want 1", p.ly)
	}
	if p.Mode() != ModeOAM {
		t.Fatalf("expected ModeOAM at start of next line, got %v", p.Mode())
	}
}

func TestPPU_VBlankAfter144Lines(t *testing.T) {
	p := newTestPPU()
	for line := 0; line < ScreenHeight; line++ {
		tick(p, oamCycles+drawingCycles+hblankCycles)
	}
	if p.Mode() != ModeVBlank {
		t.Fatalf("expected ModeVBlank after 144 lines, got %v", p.Mode())
	}
	if !p.FrameReady {
		t.Fatalf("expected FrameReady after 144 lines")
	}
}

func TestPPU_LYCInterrupt(t *testing.T) {
	p := newTestPPU()
	p.Write(LYC, 0)
	p.Write(STAT, statLYCIntEnable)
	p.checkLYC()
	if p.irq.Flag&(1<<interrupts.LCDFlag) == 0 {
		t.Fatalf("expected LCD STAT interrupt requested for LY=LYC")
	}
}

func TestPPU_SolidTileRendersBGP(t *testing.T) {
	p := newTestPPU()
	p.Write(LCDC, lcdcDisplayEnable|lcdcBGEnable|lcdcTileData)
	p.Write(BGP, 0xE4) // standard DMG identity mapping: 3,2,1,0 per 2-bit group reversed
	// tile 0 at 0x8000, all bits set -> color index 3 for every pixel
	base := uint16(0x8000)
	for row := 0; row < 16; row++ {
		p.WriteVRAM(base+uint16(row), 0xFF)
		_ = row
	}
	// tilemap 0x9800 cell (0,0) -> tile 0
	p.WriteVRAM(0x9800, 0x00)

	tick(p, oamCycles)
	p.renderScanline()

	want := palette.GetColour(paletteIndex(0xE4, 3))
	r, g, b := p.Frame[0], p.Frame[1], p.Frame[2]
	if r != g || g != b {
		t.Fatalf("expected a grayscale pixel, got (%d,%d,%d)", r, g, b)
	}
	if got := [3]uint8{r, g, b}; got != want {
		t.Fatalf("pixel (0,0) = %v, want BGP colour %v", got, want)
	}
}
