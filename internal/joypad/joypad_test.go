package joypad

import (
	"testing"

	"github.com/thelolagemann/gomeboy/internal/interrupts"
)

func TestState_Read(t *testing.T) {
	tests := []struct {
		name     string
		register uint8
		pressed  Button
		want     uint8
	}{
		{"no group selected", 0x30, ButtonA | ButtonUp, 0x3F},
		{"action group, A held", 0x10, ButtonA, 0x1E},
		{"direction group, Up held", 0x20, ButtonUp, 0x2B},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(interrupts.NewService())
			s.Register = tt.register
			s.Pressed = tt.pressed
			if got := s.Read(); got != tt.want {
				t.Errorf("Read() = %#02x, want %#02x", got, tt.want)
			}
		})
	}
}

func TestState_PressRequestsInterruptOnlyWhenGroupSelected(t *testing.T) {
	irq := interrupts.NewService()
	s := New(irq)
	s.Register = 0x20 // action group deselected bit clear -> direction selected

	s.Press(ButtonA) // action group not selected (bit5 set), no interrupt
	if irq.Flag&(1<<interrupts.JoypadFlag) != 0 {
		t.Fatalf("unexpected joypad interrupt for unselected group")
	}

	s.Press(ButtonUp) // direction group selected, should interrupt
	if irq.Flag&(1<<interrupts.JoypadFlag) == 0 {
		t.Fatalf("expected joypad interrupt for selected group press")
	}
}

func TestState_PressNoRepeatInterrupt(t *testing.T) {
	irq := interrupts.NewService()
	s := New(irq)
	s.Register = 0x20
	s.Press(ButtonUp)
	irq.Clear(interrupts.JoypadFlag)
	s.Press(ButtonUp) // already held, no new interrupt
	if irq.Flag&(1<<interrupts.JoypadFlag) != 0 {
		t.Fatalf("unexpected repeat interrupt for already-held button")
	}
}

func TestState_Release(t *testing.T) {
	irq := interrupts.NewService()
	s := New(irq)
	s.Register = 0x20
	s.Press(ButtonUp)
	s.Release(ButtonUp)
	if s.Pressed&ButtonUp != 0 {
		t.Fatalf("expected Up to be released")
	}
}

func TestState_Write(t *testing.T) {
	s := New(interrupts.NewService())
	s.Write(0xFF)
	if s.Register != 0x3F {
		t.Fatalf("Write should only affect bits 4-5, got %#02x", s.Register)
	}
}
