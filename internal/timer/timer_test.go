package timer

import (
	"testing"

	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/internal/types"
)

func TestController_DIVIncrementsOnOverflow(t *testing.T) {
	c := NewController(interrupts.NewService())
	c.systemClk = 0
	for i := 0; i < 256; i++ {
		c.Tick()
	}
	if got := c.Read(types.DIV); got != 1 {
		t.Fatalf("DIV = %d, want 1 after 256 T-cycles", got)
	}
}

func TestController_TIMAFallingEdgeIncrement(t *testing.T) {
	c := NewController(interrupts.NewService())
	c.systemClk = 0
	c.Write(types.TAC, 0b101) // enabled, bit index 1 -> timerBits[1] = 3
	for i := 0; i < 16; i++ {
		c.Tick()
	}
	if c.tima != 1 {
		t.Fatalf("TIMA = %d, want 1 after one full period at the selected frequency", c.tima)
	}
}

func TestController_TIMAOverflowReloadsAfterDelay(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)
	c.Write(types.TAC, 0b101)
	c.tima = 0xFF
	c.systemClk = 0b1111 // one tick away from the selected bit's falling edge
	c.Tick()
	if c.tima != 0x00 {
		t.Fatalf("TIMA should read 0 immediately after overflow, got %#02x", c.tima)
	}
	if irq.Flag&(1<<interrupts.TimerFlag) != 0 {
		t.Fatalf("interrupt should not fire before the reload delay elapses")
	}
	c.tma = 0x42
	for i := 0; i < reloadDelay; i++ {
		c.Tick()
	}
	if c.tima != 0x42 {
		t.Fatalf("TIMA = %#02x, want TMA value %#02x after reload delay", c.tima, c.tma)
	}
	if irq.Flag&(1<<interrupts.TimerFlag) == 0 {
		t.Fatalf("expected timer interrupt after reload delay elapsed")
	}
}

func TestController_TIMAWriteDuringDelayCancelsReload(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)
	c.Write(types.TAC, 0b101)
	c.tima = 0xFF
	c.systemClk = 0b1111
	c.Tick() // overflow, enters delay window
	c.Write(types.TIMA, 0x10)
	for i := 0; i < reloadDelay; i++ {
		c.Tick()
	}
	if c.tima != 0x10 {
		t.Fatalf("TIMA = %#02x, want 0x10 (cancelled reload should not overwrite the write)", c.tima)
	}
	if irq.Flag&(1<<interrupts.TimerFlag) != 0 {
		t.Fatalf("cancelled reload should not raise the timer interrupt")
	}
}

func TestController_DIVWriteGlitchIncrement(t *testing.T) {
	c := NewController(interrupts.NewService())
	c.Write(types.TAC, 0b101) // bit index 1 -> timerBits[1] = 3
	c.systemClk = 0b1000      // bit 3 set
	c.Write(types.DIV, 0x00)
	if c.tima != 1 {
		t.Fatalf("TIMA = %d, want 1 (DIV reset should glitch-increment when the selected bit was high)", c.tima)
	}
	if c.systemClk != 0 {
		t.Fatalf("systemClk = %#04x, want 0 after DIV write", c.systemClk)
	}
}

func TestController_TACDisableGlitchIncrement(t *testing.T) {
	c := NewController(interrupts.NewService())
	c.Write(types.TAC, 0b101) // enabled, bit index 1
	c.systemClk = 0b1000
	c.Write(types.TAC, 0b000) // disable
	if c.tima != 1 {
		t.Fatalf("TIMA = %d, want 1 (disabling while selected bit is high should glitch-increment)", c.tima)
	}
}
