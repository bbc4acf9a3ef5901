// Package gameboy provides an emulation of a Nintendo Game Boy.
//
// The Engine type wires every hardware package into a single headless
// core: the CPU, PPU, APU, and every peripheral behind a bus, exposed
// through a frame-stepped API with no host dependency (no window, no
// audio device, no file dialogs) so a caller drives it at whatever
// rate its own display/audio loop wants.
package gameboy

import (
	"fmt"

	"github.com/thelolagemann/gomeboy/internal/apu"
	"github.com/thelolagemann/gomeboy/internal/boot"
	"github.com/thelolagemann/gomeboy/internal/cartridge"
	"github.com/thelolagemann/gomeboy/internal/cheats"
	"github.com/thelolagemann/gomeboy/internal/cpu"
	"github.com/thelolagemann/gomeboy/internal/dma"
	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/internal/joypad"
	"github.com/thelolagemann/gomeboy/internal/mmu"
	"github.com/thelolagemann/gomeboy/internal/ppu"
	"github.com/thelolagemann/gomeboy/internal/serial"
	"github.com/thelolagemann/gomeboy/internal/timer"
	"github.com/thelolagemann/gomeboy/internal/types"
	"github.com/thelolagemann/gomeboy/internal/xlog"
)

// tCyclesPerFrame is the number of T-cycles a single 160x144 frame
// takes at native (single-speed) clock rate: 70224 T-cycles, the
// product of the PPU's 456 T-cycles per scanline and 154 scanlines.
const tCyclesPerFrame = 70224

// Engine is a complete, headless Game Boy/Game Boy Color core. The
// zero value is not usable; construct one with New.
type Engine struct {
	CPU        *cpu.CPU
	Bus        *mmu.Bus
	Cart       *cartridge.Cartridge
	Interrupts *interrupts.Service
	Joypad     *joypad.State
	Cheats     *cheats.Engine

	model  types.Model
	logger xlog.Logger

	frame [ppu.ScreenWidth * ppu.ScreenHeight * 4]byte
}

// New parses rom's header, wires every subsystem behind a bus, and
// returns a ready-to-run Engine. For any malformed ROM image it returns
// an error wrapping a *cartridge.Error (reachable with errors.As);
// nothing here panics.
func New(rom []byte, opts ...Opt) (*Engine, error) {
	cfg := config{
		model:      types.DMG,
		sampleRate: 48000,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	cart, err := cartridge.New(rom)
	if err != nil {
		return nil, fmt.Errorf("gameboy: %w", err)
	}
	if cfg.cartridgeRAM != nil {
		cart.LoadRAM(cfg.cartridgeRAM)
	}

	irq := interrupts.NewService()
	tm := timer.NewController(irq)
	jp := joypad.New(irq)
	hdma := dma.NewHDMA()
	oamDMA := dma.NewOAM()
	p := ppu.New(irq, hdma, cfg.model.IsCGB())
	a := apu.New(cfg.model, cfg.audioSink, cfg.sampleRate)
	s := serial.NewController(irq)

	var bootROM *boot.ROM
	if cfg.bootROM != nil {
		bootROM = boot.LoadBootROM(cfg.bootROM)
	}

	bus := mmu.New(cfg.model, cart, irq, tm, jp, p, a, s, oamDMA, hdma, bootROM)

	cheatEngine := cheats.NewEngine()
	bus.SetCheats(cheatEngine)

	c := cpu.NewCPU(bus, irq, tm, p, a, s)
	if bootROM == nil {
		c.InitPostBoot(cfg.model)
		initPostBootRegisters(bus)
	}

	logger := cfg.logger
	if logger == nil {
		logger = xlog.Silent()
	}
	h := cart.Header()
	logger.Infof("cartridge %q: %s, %d KiB ROM, %d KiB RAM, RTC %t",
		h.Title, h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024, h.CartridgeType.HasRTC())

	return &Engine{
		CPU:        c,
		Bus:        bus,
		Cart:       cart,
		Interrupts: irq,
		Joypad:     jp,
		Cheats:     cheatEngine,
		model:      cfg.model,
		logger:     logger,
	}, nil
}

// initPostBootRegisters writes the I/O register values the real boot
// ROM leaves behind at handoff, for the subset of registers games
// actually depend on seeing initialized (LCD on with the default BG
// palette, sound powered on with both channels routed to both
// speakers at full volume).
func initPostBootRegisters(bus *mmu.Bus) {
	bus.Write(ppu.LCDC, 0x91)
	bus.Write(ppu.BGP, 0xFC)
	bus.Write(ppu.OBP0, 0xFF)
	bus.Write(ppu.OBP1, 0xFF)
	bus.Write(types.NR52, 0x80)
	bus.Write(types.NR50, 0x77)
	bus.Write(types.NR51, 0xF3)
}

// RunFrame runs whole CPU instructions until at least 70224 T-cycles
// (one frame) have elapsed; the last instruction can end a few T-cycles
// past that, and the overrun is not carried into the next call. This
// is the single allowed external call that advances
// emulated time: no goroutines are spawned, and every subsystem
// advances strictly in the order the CPU's own Step drives it.
func (e *Engine) RunFrame() {
	var ticked uint32
	for ticked < tCyclesPerFrame {
		ticked += uint32(e.CPU.Step())
	}
	if e.Bus.PPU.FrameReady {
		copy(e.frame[:], e.Bus.PPU.Frame[:])
		e.Bus.PPU.FrameReady = false
	}
}

// Press marks b as held on the joypad, raising a joypad interrupt if
// the game currently has that button's group selected.
func (e *Engine) Press(b joypad.Button) {
	e.Joypad.Press(b)
}

// Release marks b as no longer held.
func (e *Engine) Release(b joypad.Button) {
	e.Joypad.Release(b)
}

// FrameBuffer returns the most recently completed frame as 160x144
// RGBA8888, row-major, top-left origin. The returned slice is stable
// until the next call to RunFrame, which overwrites it in place.
func (e *Engine) FrameBuffer() []byte {
	return e.frame[:]
}

// CartridgeRAM returns the cartridge's external RAM for persistence,
// or nil if the cartridge has none.
func (e *Engine) CartridgeRAM() []byte {
	return e.Cart.RAM()
}

// LoadCartridgeRAM restores previously saved external cartridge RAM.
// It is a no-op if the cartridge carries no RAM of its own.
func (e *Engine) LoadCartridgeRAM(data []byte) error {
	if e.Cart.RAM() == nil {
		return nil
	}
	e.Cart.LoadRAM(data)
	return nil
}

// RTCSecondsSince advances the cartridge's real-time clock (MBC3 with
// the TIMER flag) by reference seconds, the elapsed wall-clock time
// since the prior save as computed by the caller, and returns how many
// seconds it carried forward. Cartridges without an RTC, and a
// reference of zero or less, return 0.
func (e *Engine) RTCSecondsSince(reference int64) uint64 {
	return e.Cart.RTCSecondsSince(reference)
}

// AddCheat decodes code (Game Genie or GameShark format) and applies it
// for the remainder of the session. Decoded patches are additive.
func (e *Engine) AddCheat(code string) error {
	if err := e.Cheats.Add(code); err != nil {
		return fmt.Errorf("gameboy: %w", err)
	}
	return nil
}

// Model returns the hardware model the engine was constructed for.
func (e *Engine) Model() types.Model {
	return e.model
}
