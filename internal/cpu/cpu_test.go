package cpu

import (
	"testing"

	"github.com/thelolagemann/gomeboy/internal/apu"
	"github.com/thelolagemann/gomeboy/internal/cartridge"
	"github.com/thelolagemann/gomeboy/internal/dma"
	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/internal/joypad"
	"github.com/thelolagemann/gomeboy/internal/mmu"
	"github.com/thelolagemann/gomeboy/internal/ppu"
	"github.com/thelolagemann/gomeboy/internal/serial"
	"github.com/thelolagemann/gomeboy/internal/timer"
	"github.com/thelolagemann/gomeboy/internal/types"
)

func blankROM(size int) []byte {
	rom := make([]byte, size)
	rom[0x147] = 0x00
	rom[0x148] = 0x00
	rom[0x149] = 0x00
	var sum uint8
	for i := 0x34; i <= 0x4C; i++ {
		sum = sum - rom[i] - 1
	}
	rom[0x14D] = sum
	return rom
}

// newTestCPU wires a full bus and every component a CPU needs, the same
// way gameboy.NewGameBoy does, so instruction tests exercise the real
// self-ticking memory path rather than a stub.
func newTestCPU(t *testing.T) *CPU {
	return newTestCPUModel(t, types.DMG)
}

func newTestCPUModel(t *testing.T, model types.Model) *CPU {
	t.Helper()
	cart, err := cartridge.New(blankROM(0x8000))
	if err != nil {
		t.Fatalf("cartridge.New: %v", err)
	}
	irq := interrupts.NewService()
	tm := timer.NewController(irq)
	jp := joypad.New(irq)
	hdma := dma.NewHDMA()
	p := ppu.New(irq, hdma, model.IsCGB())
	a := apu.New(model, nil, 0)
	s := serial.NewController(irq)
	oam := dma.NewOAM()
	bus := mmu.New(model, cart, irq, tm, jp, p, a, s, oam, hdma, nil)
	return NewCPU(bus, irq, tm, p, a, s)
}

func TestStep_NOP(t *testing.T) {
	c := newTestCPU(t)
	c.PC = 0xC000
	c.mmu.Write(0xC000, 0x00)
	ticks := c.Step()
	if ticks != 4 {
		t.Errorf("NOP ticks = %d, want 4", ticks)
	}
	if c.PC != 0xC001 {
		t.Errorf("PC after NOP = %#04x, want 0xC001", c.PC)
	}
}

func TestStep_HaltWakesOnInterrupt(t *testing.T) {
	c := newTestCPU(t)
	c.PC = 0xC000
	c.mmu.Write(0xC000, 0x76) // HALT
	c.IRQ.IME = false
	c.Step()
	if c.mode != ModeHalt {
		t.Fatalf("mode after HALT = %d, want ModeHalt", c.mode)
	}
	c.IRQ.Enable = 0x01
	c.IRQ.Flag = 0x01
	c.Step()
	if c.mode != ModeNormal {
		t.Errorf("mode after pending interrupt = %d, want ModeNormal", c.mode)
	}
}

func TestStep_HaltBugWhenIMEDisabledAndInterruptPending(t *testing.T) {
	c := newTestCPU(t)
	c.PC = 0xC000
	c.mmu.Write(0xC000, 0x76) // HALT
	c.mmu.Write(0xC001, 0x3C) // INC A
	c.IRQ.IME = false
	c.IRQ.Enable = 0x01
	c.IRQ.Flag = 0x01

	c.Step() // HALT observes the pending interrupt and falls into the bug
	if c.mode != ModeHaltBug {
		t.Fatalf("mode after HALT with pending IRQ = %d, want ModeHaltBug", c.mode)
	}
	c.Step() // re-executes the opcode at PC without advancing it first
	if c.PC != 0xC001 {
		t.Errorf("PC after halt bug instruction = %#04x, want 0xC001 (PC did not advance)", c.PC)
	}
	if c.A != 1 {
		t.Errorf("A after halt bug INC A = %d, want 1", c.A)
	}
}

func TestStep_EIDelaysOneInstruction(t *testing.T) {
	c := newTestCPU(t)
	c.PC = 0xC000
	c.mmu.Write(0xC000, 0xFB) // EI
	c.mmu.Write(0xC001, 0x00) // NOP
	c.IRQ.IME = false

	c.Step() // EI itself must not enable IME yet
	if c.IRQ.IME {
		t.Fatalf("IME enabled immediately after EI, want delayed by one instruction")
	}
	c.Step() // the instruction after EI enables IME before it runs
	if !c.IRQ.IME {
		t.Errorf("IME not enabled after the instruction following EI")
	}
}

func TestExecuteInterrupt_PushesPCAndJumpsToVector(t *testing.T) {
	c := newTestCPU(t)
	c.PC = 0xC123
	c.SP = 0xD000
	c.IRQ.IME = true
	c.IRQ.Enable = 0x01
	c.IRQ.Flag = 0x01

	c.executeInterrupt()

	if c.PC != 0x0040 {
		t.Errorf("PC after VBlank interrupt = %#04x, want 0x0040", c.PC)
	}
	if c.IRQ.IME {
		t.Errorf("IME still set after entering interrupt handler")
	}
	if c.SP != 0xCFFE {
		t.Errorf("SP after interrupt push = %#04x, want 0xCFFE", c.SP)
	}
	low := c.mmu.Read(0xCFFE)
	high := c.mmu.Read(0xCFFF)
	if uint16(high)<<8|uint16(low) != 0xC123 {
		t.Errorf("pushed return address = %#04x, want 0xC123", uint16(high)<<8|uint16(low))
	}
}

func TestStep_DisallowedOpcodeLocksCPU(t *testing.T) {
	c := newTestCPU(t)
	c.PC = 0xC000
	c.mmu.Write(0xC000, 0xD3) // disallowed opcode
	c.IRQ.IME = true

	c.Step()
	if !c.Locked() {
		t.Fatal("Locked() false after a disallowed opcode, want true")
	}
	if c.IRQ.IME {
		t.Errorf("IME still set after a disallowed opcode, want cleared")
	}

	pc := c.PC
	c.Step()
	if c.PC != pc {
		t.Errorf("PC advanced after the lock engaged: %#04x -> %#04x", pc, c.PC)
	}
}

func TestStep_StopArmedSpeedSwitchFlipsDoubleSpeed(t *testing.T) {
	c := newTestCPUModel(t, types.CGB)
	c.mmu.Write(0xFF4D, 0x01) // arm the speed switch via KEY1
	c.PC = 0xC000
	c.mmu.Write(0xC000, 0x10) // STOP
	c.mmu.Write(0xC001, 0x00)

	before := c.mmu.DoubleSpeed()
	c.Step()
	if c.mmu.DoubleSpeed() == before {
		t.Errorf("DoubleSpeed unchanged after armed STOP, want flipped")
	}
	if c.mode != ModeNormal {
		t.Errorf("mode after speed-switch STOP = %d, want ModeNormal", c.mode)
	}
}
