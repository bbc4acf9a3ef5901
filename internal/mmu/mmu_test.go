package mmu

import (
	"testing"

	"github.com/thelolagemann/gomeboy/internal/apu"
	"github.com/thelolagemann/gomeboy/internal/cartridge"
	"github.com/thelolagemann/gomeboy/internal/dma"
	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/internal/joypad"
	"github.com/thelolagemann/gomeboy/internal/ppu"
	"github.com/thelolagemann/gomeboy/internal/serial"
	"github.com/thelolagemann/gomeboy/internal/timer"
	"github.com/thelolagemann/gomeboy/internal/types"
)

func blankROM(size int) []byte {
	rom := make([]byte, size)
	rom[0x147] = 0x00 // ROM ONLY
	rom[0x148] = 0x00 // 32KiB
	rom[0x149] = 0x00 // no RAM
	title := "TEST"
	copy(rom[0x134:], title)

	var sum uint8
	for i := 0x134; i <= 0x14C; i++ {
		sum = sum - rom[i] - 1
	}
	rom[0x14D] = sum
	return rom
}

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	cart, err := cartridge.New(blankROM(0x8000))
	if err != nil {
		t.Fatalf("cartridge.New: %v", err)
	}
	irq := interrupts.NewService()
	tm := timer.NewController(irq)
	jp := joypad.New(irq)
	hdma := dma.NewHDMA()
	p := ppu.New(irq, hdma, false)
	a := apu.New(types.DMG, nil, 0)
	s := serial.NewController(irq)
	oam := dma.NewOAM()
	return New(types.DMG, cart, irq, tm, jp, p, a, s, oam, hdma, nil)
}

func TestBus_WRAMBank0AndEcho(t *testing.T) {
	b := newTestBus(t)
	b.Write(0xC010, 0x42)
	if got := b.Read(0xC010); got != 0x42 {
		t.Fatalf("WRAM bank 0 read = %#02x, want 0x42", got)
	}
	if got := b.Read(0xE010); got != 0x42 {
		t.Fatalf("echo read = %#02x, want 0x42 (mirrors WRAM bank 0)", got)
	}
}

func TestBus_HRAM(t *testing.T) {
	b := newTestBus(t)
	b.Write(0xFF90, 0x7E)
	if got := b.Read(0xFF90); got != 0x7E {
		t.Fatalf("HRAM read = %#02x, want 0x7E", got)
	}
}

func TestBus_InterruptRegisters(t *testing.T) {
	b := newTestBus(t)
	b.Write(0xFFFF, 0x1F)
	if got := b.Read(0xFFFF); got != 0x1F {
		t.Fatalf("IE read = %#02x, want 0x1F", got)
	}
	b.Write(0xFF0F, 0x05)
	if got := b.Read(0xFF0F); got&0x1F != 0x05 {
		t.Fatalf("IF read = %#02x, want lower 5 bits 0x05", got)
	}
}

func TestBus_OAMDMATrigger(t *testing.T) {
	b := newTestBus(t)
	b.Write(0xC000, 0xAB)
	b.Write(types.DMA, 0xC0) // source = 0xC000
	if !b.OAMDMA.Active() {
		t.Fatalf("expected OAM DMA to be active after DMA register write")
	}
	for i := 0; i < 8+160*4; i++ {
		b.OAMDMA.Tick()
	}
	if b.OAMDMA.Active() {
		t.Fatalf("expected OAM DMA to finish after 160 bytes")
	}
	if got := b.PPU.ReadOAM(0xFE00); got != 0xAB {
		t.Fatalf("OAM[0] = %#02x, want 0xAB copied from source", got)
	}
}

func TestBus_UnusableMemoryReadsFF(t *testing.T) {
	b := newTestBus(t)
	if got := b.Read(0xFEA0); got != 0xFF {
		t.Fatalf("unusable memory read = %#02x, want 0xFF", got)
	}
}

func TestBus_BootROMDisable(t *testing.T) {
	b := newTestBus(t)
	if b.bootROMActive(0) {
		t.Fatalf("bus constructed with no boot ROM should never report boot ROM active")
	}
	b.Write(types.BDIS, 1)
	if !b.bootDisabled {
		t.Fatalf("expected writing BDIS to disable the boot ROM")
	}
}
