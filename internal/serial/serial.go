// Package serial emulates the Game Boy's serial port: an 8-bit shift
// register (SB, 0xFF01) clocked by SC (0xFF02), with no second device
// ever attached — every bit shifted in reads back as 1, matching the
// spec's "serial link is a stub" requirement, while the shift-register
// timing (and the interrupt it raises on completion) stays cycle-exact.
package serial

import (
	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/internal/types"
)

// Controller drives the SB/SC register pair and the 8-bit transfer
// shift register sitting behind them.
type Controller struct {
	data    uint8
	control uint8

	count             uint8
	attachedDevice    Device
	resultFallingEdge bool

	irq *interrupts.Service
}

// NewController returns a serial controller with no device attached;
// Attach plugs in a Device, defaulting to a nullDevice that always
// reads back 1s.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{
		irq:            irq,
		control:        0x7E,
		count:          1,
		attachedDevice: nullDevice{},
	}
}

// Attach plugs in the peer device a transfer shifts bits to and from.
// Passing nil restores the null (always-1) device.
func (c *Controller) Attach(d Device) {
	if d == nil {
		d = nullDevice{}
	}
	c.attachedDevice = d
}

// Read returns the value of the register at the given address.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.SB:
		return c.data
	case types.SC:
		return c.control
	}
	return 0xFF
}

// Write writes the given value to the register at the given address.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.SB:
		c.data = value
	case types.SC:
		c.control = value | 0b0111_1110
	}
}

// Tick advances the shift register's internal clock divider, div,
// which is driven by the system counter's bit 8 — the same falling
// edge the DIV register itself would expose.
func (c *Controller) Tick(div uint16) {
	edge := c.getFallingEdge(div)
	if c.resultFallingEdge && !edge {
		if c.count <= 8 {
			bit := c.attachedDevice.Send()
			c.attachedDevice.Receive(c.data&0x80 != 0)

			c.data <<= 1
			if bit {
				c.data |= 1
			}
			c.count++
		}

		if c.count > 8 {
			c.count = 1
			c.control &^= 0x80
			c.irq.Request(interrupts.SerialFlag)
		}
	}
	c.resultFallingEdge = edge
}

func (c *Controller) getFallingEdge(div uint16) bool {
	return div&(1<<8) != 0 && c.internalClock() && c.transferRequested()
}

func (c *Controller) transferRequested() bool {
	return c.control&0x80 != 0
}

func (c *Controller) internalClock() bool {
	return c.control&0x01 != 0
}
