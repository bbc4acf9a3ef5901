// Package joypad emulates the Game Boy's 8-button input matrix: the P1
// register (0xFF00) selects either the direction or action button group
// and reports the selected group's state as active-low bits.
package joypad

import (
	"github.com/thelolagemann/gomeboy/internal/interrupts"
)

// Button represents a physical button on the Game Boy.
type Button = uint8

const (
	ButtonA      Button = 0x01
	ButtonB      Button = 0x02
	ButtonSelect Button = 0x04
	ButtonStart  Button = 0x08
	ButtonRight  Button = 0x10
	ButtonLeft   Button = 0x20
	ButtonUp     Button = 0x40
	ButtonDown   Button = 0x80
)

// State holds the P1 register value and the raw pressed-button bitmask.
type State struct {
	// Register is the P1 register (bits 4-5 are group select, written by
	// the game; bits 0-3 are the read-back button lines).
	Register uint8
	// Pressed is the set of currently-held buttons.
	Pressed Button

	irq *interrupts.Service
}

// New returns a joypad with no buttons held and both groups deselected.
func New(irq *interrupts.Service) *State {
	return &State{
		Register: 0x3F,
		irq:      irq,
	}
}

// Read returns the P1 register as the CPU would see it: the selected
// group's held buttons reported as 0 bits, everything else 1.
func (s *State) Read() uint8 {
	if s.Register&0x10 == 0 {
		return (s.Register | 0x0F) &^ (s.Pressed >> 4)
	}
	if s.Register&0x20 == 0 {
		return (s.Register | 0x0F) &^ (s.Pressed & 0x0F)
	}
	return s.Register | 0x0F
}

// Write updates the group-select bits (4-5); bits 0-3 are read-only.
func (s *State) Write(value uint8) {
	s.Register = (s.Register & 0xCF) | (value & 0x30)
}

// Press marks key as held, requesting a joypad interrupt on the
// high-to-low transition of the corresponding P1 line, but only while
// the game has that button's group selected.
func (s *State) Press(key Button) {
	alreadyHeld := s.Pressed&key != 0
	s.Pressed |= key

	var groupSelected bool
	if key <= ButtonStart {
		groupSelected = s.Register&0x20 == 0
	} else {
		groupSelected = s.Register&0x10 == 0
	}

	if !alreadyHeld && groupSelected && s.irq != nil {
		s.irq.Request(interrupts.JoypadFlag)
	}
}

// Release marks key as no longer held.
func (s *State) Release(key Button) {
	s.Pressed &^= key
}
