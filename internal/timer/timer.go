// Package timer emulates the Game Boy's 16-bit system counter, the
// DIV/TIMA/TMA/TAC register quartet built on top of it, and the
// falling-edge TIMA increment behavior (including its write-time
// glitches) that real hardware exhibits.
package timer

import (
	"fmt"

	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/internal/types"
)

// timerBits maps a TAC frequency-select value (0-3) to the bit index of
// the 16-bit system counter whose falling edge increments TIMA.
var timerBits = [4]uint8{9, 3, 5, 7}

// reloadDelay is the number of T-cycles between a TIMA overflow and the
// moment TIMA actually becomes TMA and the timer interrupt fires.
const reloadDelay = 4

// Controller drives DIV/TIMA/TMA/TAC off a 16-bit free-running counter
// ticked once per T-cycle by the engine's main loop.
type Controller struct {
	systemClk uint16

	tima uint8
	tma  uint8
	tac  uint8

	enabled    bool
	currentBit uint8 // index into timerBits, i.e. tac & 0b11

	reloadPending bool
	reloadCounter uint8

	irq *interrupts.Service
}

// NewController returns a timer with the post-boot internal state DMG
// hardware leaves behind (DIV seeded so that real boot ROMs' observed
// post-boot DIV values fall out naturally).
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{
		irq:       irq,
		systemClk: 0xABCC,
	}
}

// Tick advances the system counter by one T-cycle, requesting a TIMA
// reload when a pending overflow's delay elapses and detecting the
// falling edge of the currently-selected counter bit.
func (c *Controller) Tick() {
	if c.reloadPending {
		c.reloadCounter--
		if c.reloadCounter == 0 {
			c.reloadPending = false
			c.tima = c.tma
			c.irq.Request(interrupts.TimerFlag)
		}
	}

	prev := c.systemClk
	c.systemClk++

	if c.enabled {
		mask := uint16(1) << timerBits[c.currentBit]
		if prev&mask != 0 && c.systemClk&mask == 0 {
			c.incrementTIMA()
		}
	}
}

// SystemClock returns the free-running 16-bit counter DIV is the top
// byte of, consulted by the serial controller to detect the same
// falling edge the timer itself watches.
func (c *Controller) SystemClock() uint16 {
	return c.systemClk
}

func (c *Controller) incrementTIMA() {
	c.tima++
	if c.tima == 0 {
		c.reloadPending = true
		c.reloadCounter = reloadDelay
	}
}

// fallingEdgeGlitch implements the well-documented TAC/DIV write quirk:
// if the AND of (enabled, selected counter bit) goes from 1 to 0 as a
// side effect of the write — whether because the timer was disabled,
// the frequency changed, or DIV was reset to zero — TIMA increments
// immediately, as if the edge it was waiting for had just arrived.
func (c *Controller) fallingEdgeGlitch(oldEnabled bool, oldBit uint8, newEnabled bool, newBit uint8, clkAfter uint16) {
	oldAnd := oldEnabled && c.systemClk&(uint16(1)<<timerBits[oldBit]) != 0
	newAnd := newEnabled && clkAfter&(uint16(1)<<timerBits[newBit]) != 0
	if oldAnd && !newAnd {
		c.incrementTIMA()
	}
}

// Read returns the value of the register at the given address.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.DIV:
		return uint8(c.systemClk >> 8)
	case types.TIMA:
		return c.tima
	case types.TMA:
		return c.tma
	case types.TAC:
		return c.tac | 0xF8
	}
	panic(fmt.Sprintf("timer\tillegal read from address %04X", address))
}

// Write writes the given value to the register at the given address.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.DIV:
		c.fallingEdgeGlitch(c.enabled, c.currentBit, c.enabled, c.currentBit, 0)
		c.systemClk = 0
	case types.TIMA:
		if c.reloadPending {
			// a write during the reload delay window cancels the
			// pending reload and takes effect instead.
			c.reloadPending = false
		}
		c.tima = value
	case types.TMA:
		c.tma = value
	case types.TAC:
		newBit := value & 0b11
		newEnabled := value&0b100 != 0
		c.fallingEdgeGlitch(c.enabled, c.currentBit, newEnabled, newBit, c.systemClk)
		c.tac = value & 0b111
		c.enabled = newEnabled
		c.currentBit = newBit
	default:
		panic(fmt.Sprintf("timer\tillegal write to address %04X", address))
	}
}
