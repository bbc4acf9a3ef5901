// Package mmu provides the memory management unit binding every other
// component onto the Game Boy's 64 KiB address space. The MMU itself
// is unaware of timing: reads and writes are pure dispatch, and the
// CPU's own tick routine is what actually advances the master clock
// after every access (spec §5's "every memory access advances exactly
// 4 T-cycles" rule lives in internal/cpu, not here).
package mmu

import (
	"github.com/thelolagemann/gomeboy/internal/apu"
	"github.com/thelolagemann/gomeboy/internal/boot"
	"github.com/thelolagemann/gomeboy/internal/cartridge"
	"github.com/thelolagemann/gomeboy/internal/cheats"
	"github.com/thelolagemann/gomeboy/internal/dma"
	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/internal/joypad"
	"github.com/thelolagemann/gomeboy/internal/ppu"
	"github.com/thelolagemann/gomeboy/internal/ram"
	"github.com/thelolagemann/gomeboy/internal/serial"
	"github.com/thelolagemann/gomeboy/internal/timer"
	"github.com/thelolagemann/gomeboy/internal/types"
)

// Bus is the aggregate memory bus: the cartridge, PPU, APU, timer,
// joypad, interrupt controller, serial port, WRAM/HRAM, and both DMA
// controllers, addressed as one flat 64 KiB space.
type Bus struct {
	Cart       *cartridge.Cartridge
	PPU        *ppu.PPU
	APU        *apu.APU
	Timer      *timer.Controller
	Joypad     *joypad.State
	Interrupts *interrupts.Service
	Serial     *serial.Controller
	OAMDMA     *dma.OAM
	HDMA       *dma.HDMA
	Cheats     *cheats.Engine

	model types.Model

	wram     [8]*ram.Ram
	wramBank uint8
	hram     *ram.Ram

	bootROM      *boot.ROM
	bootDisabled bool

	key0 uint8
	key1 uint8 // bit 0: armed, bit 7: current speed (1 = double)
}

// New wires every subsystem into a single Bus. cart must already be
// parsed; bootROM may be nil, in which case the bus behaves as though
// the boot sequence already completed (reads of 0x0000-0x00FF fall
// straight through to the cartridge).
func New(model types.Model, cart *cartridge.Cartridge, irq *interrupts.Service, t *timer.Controller, j *joypad.State, p *ppu.PPU, a *apu.APU, s *serial.Controller, oamDMA *dma.OAM, hdma *dma.HDMA, bootROM *boot.ROM) *Bus {
	b := &Bus{
		Cart:       cart,
		PPU:        p,
		APU:        a,
		Timer:      t,
		Joypad:     j,
		Interrupts: irq,
		Serial:     s,
		OAMDMA:     oamDMA,
		HDMA:       hdma,
		model:      model,
		hram:       ram.NewRAM(0x80),
		bootROM:    bootROM,
	}
	for i := range b.wram {
		b.wram[i] = ram.NewRAM(0x1000)
	}
	b.wramBank = 1
	if bootROM == nil {
		b.bootDisabled = true
	}

	oamDMA.ReadBus = b.readForDMA
	oamDMA.WriteOAM = p.WriteOAMDMA
	p.OAMDMAActive = oamDMA.Active
	hdma.ReadBus = b.readForDMA
	hdma.WriteVRAM = p.WriteVRAMDMA

	return b
}

// SetCheats attaches the Game Genie / GameShark engine consulted on
// cartridge ROM reads. A nil engine (the default) applies no patches.
func (b *Bus) SetCheats(c *cheats.Engine) {
	b.Cheats = c
}

// readForDMA is the bus accessor OAM DMA and HDMA read their source
// bytes through: plain memory, with no side effects and no DMA-busy
// gating (the controllers performing the copy are the thing asserting
// that gate against the CPU).
func (b *Bus) readForDMA(address uint16) uint8 {
	switch {
	case address <= 0x7FFF:
		return b.Cart.Read(address)
	case address <= 0x9FFF:
		return b.PPU.ReadVRAM(address)
	case address <= 0xBFFF:
		return b.Cart.Read(address)
	case address <= 0xCFFF:
		return b.wram[0].Read(address - 0xC000)
	case address <= 0xDFFF:
		return b.wram[b.wramBank].Read(address - 0xD000)
	case address <= 0xFDFF:
		return b.wram[0].Read((address - 0xE000) & 0x0FFF)
	default:
		return 0xFF
	}
}

// IsCGB reports whether the bus is wired up for Color Game Boy
// register/VRAM/WRAM-bank behavior.
func (b *Bus) IsCGB() bool {
	return b.model.IsCGB()
}

// DoubleSpeed reports whether KEY1's current-speed bit is set.
func (b *Bus) DoubleSpeed() bool {
	return b.key1&0x80 != 0
}

// SpeedSwitchArmed reports whether a STOP instruction should perform
// the CGB speed switch instead of a normal stop.
func (b *Bus) SpeedSwitchArmed() bool {
	return b.key1&0x01 != 0
}

// PerformSpeedSwitch flips the current-speed bit and clears the armed
// bit, carried out by the CPU when STOP executes with the switch armed.
func (b *Bus) PerformSpeedSwitch() {
	b.key1 ^= 0x80
	b.key1 &^= 0x01
}

// AdvanceCycles ticks every T-cycle-driven component n times with no
// CPU instruction in between, used when a bus write stalls the CPU
// for longer than the access itself (a general-purpose HDMA burst).
func (b *Bus) AdvanceCycles(n int) {
	for i := 0; i < n; i++ {
		b.OAMDMA.Tick()
		b.Timer.Tick()
		b.Serial.Tick(b.Timer.SystemClock())
		b.PPU.Tick()
		b.APU.Tick()
	}
}

func (b *Bus) bootROMActive(address uint16) bool {
	if b.bootDisabled || b.bootROM == nil {
		return false
	}
	if address < 0x100 {
		return true
	}
	return b.model.IsCGB() && address >= 0x200 && address < 0x900
}

// Read returns the value at address as the CPU would observe it.
func (b *Bus) Read(address uint16) uint8 {
	// while OAM DMA runs, only HRAM is visible to the CPU
	if b.OAMDMA.Active() && (address < 0xFF80 || address == 0xFFFF) {
		return 0xFF
	}
	switch {
	case address <= 0x7FFF:
		if b.bootROMActive(address) {
			return b.bootROM.Read(address)
		}
		if b.Cheats != nil {
			if patched, ok := b.Cheats.Intercept(address, b.Cart.Read(address)); ok {
				return patched
			}
		}
		return b.Cart.Read(address)
	case address <= 0x9FFF:
		return b.PPU.ReadVRAM(address)
	case address <= 0xBFFF:
		return b.Cart.Read(address)
	case address <= 0xCFFF:
		return b.wram[0].Read(address - 0xC000)
	case address <= 0xDFFF:
		return b.wram[b.wramBank].Read(address - 0xD000)
	case address <= 0xFDFF:
		return b.wram[0].Read((address - 0xE000) & 0x0FFF)
	case address <= 0xFE9F:
		return b.PPU.ReadOAM(address)
	case address <= 0xFEFF:
		return 0xFF
	case address == types.P1:
		return b.Joypad.Read()
	case address == types.SB, address == types.SC:
		return b.Serial.Read(address)
	case address == types.DIV, address == types.TIMA, address == types.TMA, address == types.TAC:
		return b.Timer.Read(address)
	case address == interrupts.FlagRegister:
		return b.Interrupts.Read(address)
	case address >= 0xFF10 && address <= 0xFF3F:
		return b.APU.Read(address)
	case address == types.DMA:
		return b.OAMDMA.Source()
	case address == types.KEY1:
		if !b.model.IsCGB() {
			return 0xFF
		}
		return b.key1 | 0x7E
	case address == types.KEY0:
		return b.key0
	case address == types.HDMA5:
		return b.HDMA.ReadControl()
	case address == types.SVBK:
		if !b.model.IsCGB() {
			return 0xFF
		}
		return b.wramBank | 0xF8
	case address == types.BDIS:
		return 0xFF
	case address >= 0xFF40 && address <= 0xFF6C:
		return b.PPU.Read(address)
	case address == interrupts.EnableRegister:
		return b.Interrupts.Read(address)
	case address >= 0xFF80 && address <= 0xFFFE:
		return b.hram.Read(address - 0xFF80)
	default:
		return 0xFF
	}
}

// Write stores value at address, dispatching to whichever component
// owns that region.
func (b *Bus) Write(address uint16, value uint8) {
	switch {
	case address <= 0x7FFF:
		b.Cart.Write(address, value)
	case address <= 0x9FFF:
		b.PPU.WriteVRAM(address, value)
	case address <= 0xBFFF:
		b.Cart.Write(address, value)
	case address <= 0xCFFF:
		b.wram[0].Write(address-0xC000, value)
	case address <= 0xDFFF:
		b.wram[b.wramBank].Write(address-0xD000, value)
	case address <= 0xFDFF:
		b.wram[0].Write((address-0xE000)&0x0FFF, value)
	case address <= 0xFE9F:
		b.PPU.WriteOAM(address, value)
	case address <= 0xFEFF:
		// unusable; writes are discarded
	case address == types.P1:
		b.Joypad.Write(value)
	case address == types.SB, address == types.SC:
		b.Serial.Write(address, value)
	case address == types.DIV, address == types.TIMA, address == types.TMA, address == types.TAC:
		b.Timer.Write(address, value)
	case address == interrupts.FlagRegister:
		b.Interrupts.Write(address, value)
	case address >= 0xFF10 && address <= 0xFF3F:
		b.APU.Write(address, value)
	case address == types.DMA:
		b.OAMDMA.Start(value)
	case address == types.KEY1:
		if b.model.IsCGB() {
			b.key1 = b.key1&0x80 | value&0x01
		}
	case address == types.KEY0:
		if b.model.IsCGB() && b.bootROMActive(0) {
			b.key0 = value & 0x0F
		}
	case address == types.HDMA1:
		if b.model.IsCGB() {
			b.HDMA.WriteSourceHigh(value)
		}
	case address == types.HDMA2:
		if b.model.IsCGB() {
			b.HDMA.WriteSourceLow(value)
		}
	case address == types.HDMA3:
		if b.model.IsCGB() {
			b.HDMA.WriteDestHigh(value)
		}
	case address == types.HDMA4:
		if b.model.IsCGB() {
			b.HDMA.WriteDestLow(value)
		}
	case address == types.HDMA5:
		if b.model.IsCGB() {
			cost := b.HDMA.WriteControl(value)
			b.AdvanceCycles(cost)
		}
	case address == types.SVBK:
		if b.model.IsCGB() {
			v := value & 0x07
			if v == 0 {
				v = 1
			}
			b.wramBank = v
		}
	case address == types.BDIS:
		b.bootDisabled = true
	case address >= 0xFF40 && address <= 0xFF6C:
		b.PPU.Write(address, value)
	case address == interrupts.EnableRegister:
		b.Interrupts.Write(address, value)
	case address >= 0xFF80 && address <= 0xFFFE:
		b.hram.Write(address-0xFF80, value)
	default:
		// unmapped I/O register: real hardware silently discards the
		// write, matching Read's default of returning 0xFF.
	}
}
