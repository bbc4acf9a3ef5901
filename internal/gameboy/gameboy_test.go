package gameboy

import (
	"testing"

	"github.com/thelolagemann/gomeboy/internal/joypad"
	"github.com/thelolagemann/gomeboy/internal/types"
)

// blankROM builds a minimal 32KiB ROM-only cartridge image with a
// valid header checksum, so New never fails on header validation.
func blankROM(program ...byte) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x100:], program)
	rom[0x147] = 0x00 // ROM ONLY
	rom[0x148] = 0x00 // 32KiB
	rom[0x149] = 0x00 // no RAM
	var sum uint8
	for i := 0x134; i <= 0x14C; i++ {
		sum = sum - rom[i] - 1
	}
	rom[0x14D] = sum
	return rom
}

func TestNew_RejectsUndersizedROM(t *testing.T) {
	if _, err := New([]byte{0x00, 0x01}); err == nil {
		t.Fatal("New with a truncated ROM image, want an error")
	}
}

func TestNew_InitializesPostBootState(t *testing.T) {
	e, err := New(blankROM(0x00))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if e.CPU.PC != 0x0100 {
		t.Errorf("PC after New = %#04x, want 0x0100", e.CPU.PC)
	}
	if e.CPU.SP != 0xFFFE {
		t.Errorf("SP after New = %#04x, want 0xFFFE", e.CPU.SP)
	}
}

func TestEngine_RunFrameProducesAFullBuffer(t *testing.T) {
	// an infinite loop at 0x0100 (JR -2) so RunFrame always has
	// something to execute for the whole frame
	e, err := New(blankROM(0x18, 0xFE))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.RunFrame()
	buf := e.FrameBuffer()
	if len(buf) != 160*144*4 {
		t.Fatalf("FrameBuffer length = %d, want %d", len(buf), 160*144*4)
	}
}

func TestEngine_PressSetsJoypadLine(t *testing.T) {
	e, err := New(blankROM(0x18, 0xFE))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.Bus.Write(0xFF00, 0x10) // select action buttons
	e.Press(joypad.ButtonA)
	if e.Joypad.Read()&0x01 != 0 {
		t.Errorf("P1 bit 0 still set after pressing A")
	}
	e.Release(joypad.ButtonA)
	if e.Joypad.Read()&0x01 == 0 {
		t.Errorf("P1 bit 0 still clear after releasing A")
	}
}

func TestEngine_CartridgeRAMRoundTrip(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x147] = 0x03 // MBC1+RAM+BATTERY
	rom[0x148] = 0x00
	rom[0x149] = 0x02 // 8KiB RAM
	var sum uint8
	for i := 0x134; i <= 0x14C; i++ {
		sum = sum - rom[i] - 1
	}
	rom[0x14D] = sum

	e, err := New(rom)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if e.CartridgeRAM() == nil {
		t.Fatal("CartridgeRAM() = nil, want a backing slice for a battery cartridge")
	}

	saved := make([]byte, len(e.CartridgeRAM()))
	saved[0] = 0x42
	if err := e.LoadCartridgeRAM(saved); err != nil {
		t.Fatalf("LoadCartridgeRAM: %v", err)
	}
	if got := e.CartridgeRAM()[0]; got != 0x42 {
		t.Errorf("CartridgeRAM()[0] after LoadCartridgeRAM = %#02x, want 0x42", got)
	}
}

func TestEngine_RTCSecondsSinceIsZeroWithoutRTC(t *testing.T) {
	e, err := New(blankROM(0x18, 0xFE))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := e.RTCSecondsSince(0); got != 0 {
		t.Errorf("RTCSecondsSince on a ROM-only cartridge = %d, want 0", got)
	}
}

func TestEngine_CGBModelDoublesClockSpeedCapability(t *testing.T) {
	e, err := New(blankROM(0x00), WithModel(types.CGB))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if e.Model() != types.CGB {
		t.Errorf("Model() = %v, want CGB", e.Model())
	}
	if e.Bus.DoubleSpeed() {
		t.Errorf("DoubleSpeed true immediately after reset, want false")
	}
}
