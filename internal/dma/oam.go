// Package dma implements the two DMA engines a real console's PPU sits
// behind: OAM DMA (a fast 160-byte sprite-table copy available on both
// DMG and CGB) and HDMA (the CGB-only VRAM burst/H-Blank copier). OAM
// DMA is driven one T-cycle at a time by the owning engine, HDMA by its
// WriteControl and OnHBlank calls; neither reaches into the bus or PPU
// itself, so this package carries no dependency on either.
package dma

// startupTCycles is the 2 M-cycle delay between the 0xFF46 write and
// the first byte actually landing in OAM.
const startupTCycles = 2 * 4

// OAM is the OAM DMA state machine: copies 160 bytes from
// (source<<8)+offset into OAM, one byte every 4 T-cycles, after the
// startup delay. A write to 0xFF46 while a transfer is already running
// restarts the state machine from its source byte without ending the
// "busy" window the CPU sees.
type OAM struct {
	ReadBus func(address uint16) uint8
	WriteOAM func(offset uint8, value uint8)

	source  uint8
	offset  uint8
	active  bool
	tCycles int8 // counts up from -startupTCycles to 0, then 4 per byte
}

// NewOAM returns an idle OAM DMA controller.
func NewOAM() *OAM {
	return &OAM{tCycles: 0}
}

// Start begins (or restarts) a transfer sourced from srcHigh<<8.
func (d *OAM) Start(srcHigh uint8) {
	d.source = srcHigh
	d.offset = 0
	d.tCycles = -startupTCycles
	d.active = true
}

// Source returns the high byte of the transfer's source address, the
// value 0xFF46 reads back.
func (d *OAM) Source() uint8 {
	return d.source
}

// Active reports whether a transfer (including its startup delay) is
// in progress. While true, CPU reads outside HRAM return 0xFF.
func (d *OAM) Active() bool {
	return d.active
}

// Tick advances the state machine by one T-cycle, copying a byte every
// fourth call once the startup delay has elapsed.
func (d *OAM) Tick() {
	if !d.active {
		return
	}
	d.tCycles++
	if d.tCycles < 4 {
		return
	}
	d.tCycles = 0

	address := uint16(d.source)<<8 + uint16(d.offset)
	d.WriteOAM(d.offset, d.ReadBus(address))
	d.offset++
	if d.offset >= 0xA0 {
		d.active = false
	}
}
