package cpu

import (
	"github.com/thelolagemann/gomeboy/internal/apu"
	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/internal/mmu"
	"github.com/thelolagemann/gomeboy/internal/ppu"
	"github.com/thelolagemann/gomeboy/internal/serial"
	"github.com/thelolagemann/gomeboy/internal/timer"
	"github.com/thelolagemann/gomeboy/internal/types"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
)

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is the halt CPU mode.
	ModeHalt
	// ModeStop is the stop CPU mode.
	ModeStop
	// ModeHaltBug is the halt bug CPU mode.
	ModeHaltBug
	// ModeHaltDI is the halt DI CPU mode.
	ModeHaltDI
	// ModeEnableIME is the enable IME CPU mode.
	ModeEnableIME
)

// CPU represents the Game Boy CPU. It is responsible for decoding and
// executing instructions, and driving every T-cycle-ticked component
// once per M-cycle of work it performs.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	IRQ *interrupts.Service

	mmu *mmu.Bus

	// components that need to be ticked
	timer  *timer.Controller
	ppu    *ppu.PPU
	sound  *apu.APU
	serial *serial.Controller

	currentTick uint8
	mode        mode

	// locked is set by a disallowed opcode and never cleared: real
	// hardware halts solid until the next power cycle.
	locked bool
}

// NewCPU creates a new CPU wired to the given bus and components. The
// bus itself owns the DMA controllers; the CPU ticks everything else
// directly once per T-cycle it spends.
func NewCPU(mmu *mmu.Bus, irq *interrupts.Service, timer *timer.Controller, ppu *ppu.PPU, sound *apu.APU, serial *serial.Controller) *CPU {
	c := &CPU{
		Registers: Registers{},
		mmu:       mmu,
		IRQ:       irq,
		timer:     timer,
		ppu:       ppu,
		sound:     sound,
		serial:    serial,
	}
	// create register pairs
	c.BC = &RegisterPair{&c.B, &c.C}
	c.DE = &RegisterPair{&c.D, &c.E}
	c.HL = &RegisterPair{&c.H, &c.L}
	c.AF = &RegisterPair{&c.A, &c.F}

	return c
}

// InitPostBoot sets PC, SP, and every register to the value real
// hardware leaves behind once its boot ROM hands off control at
// 0x0100, for the given model. Used when the engine runs without a
// boot ROM image, skipping the boot sequence entirely.
func (c *CPU) InitPostBoot(model types.Model) {
	regs := model.PostBootRegisters()
	c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L = regs[0], regs[1], regs[2], regs[3], regs[4], regs[5], regs[6], regs[7]
	c.PC = 0x0100
	c.SP = 0xFFFE
}

// registerIndex returns a Register pointer for the given index, used
// by the CB-prefixed opcode table to resolve its operand dynamically
// at call time rather than at table-construction time.
func (c *CPU) registerIndex(index uint8) *Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic("invalid register index")
}

// halt puts the CPU into ModeHalt, unless an interrupt is already
// pending with IME disabled, in which case the next instruction fetch
// re-reads the opcode at PC (the HALT bug).
func (c *CPU) halt() {
	if !c.IRQ.IME && c.hasInterrupts() {
		c.mode = ModeHaltBug
	} else {
		c.mode = ModeHalt
	}
}

// stop either performs the CGB double-speed switch (when armed via
// KEY1) or parks the CPU in ModeStop until a button is pressed.
func (c *CPU) stop() {
	if c.mmu.IsCGB() && c.mmu.SpeedSwitchArmed() {
		c.mmu.PerformSpeedSwitch()
		// the switch itself consumes a few thousand cycles on real
		// hardware before the CPU resumes at the new speed
		for i := 0; i < 128; i++ {
			c.tickCycle()
		}
	} else {
		c.mode = ModeStop
	}
}

// Step executes one instruction, or one tick of idle halt/stop
// handling, and returns the number of T-cycles it consumed.
func (c *CPU) Step() uint8 {
	c.currentTick = 0

	if c.locked {
		c.tickCycle()
		return c.currentTick
	}

	reqInt := false
	switch c.mode {
	case ModeNormal:
		c.runInstruction(c.readInstruction())
		reqInt = c.IRQ.IME && c.hasInterrupts()
	case ModeHalt, ModeStop:
		// in halt/stop the CPU ticks but executes nothing; IME is
		// ignored so a pending interrupt can still wake it
		c.tickCycle()
		reqInt = c.hasInterrupts()
	case ModeHaltDI:
		c.tickCycle()
		if c.hasInterrupts() {
			c.mode = ModeNormal
		}
	case ModeEnableIME:
		c.IRQ.IME = true
		c.mode = ModeNormal
		c.runInstruction(c.readInstruction())
		reqInt = c.IRQ.IME && c.hasInterrupts()
	case ModeHaltBug:
		instr := c.readInstruction()
		c.PC--
		c.runInstruction(instr)
		c.mode = ModeNormal
		reqInt = c.IRQ.IME && c.hasInterrupts()
	}

	if reqInt {
		c.executeInterrupt()
	}

	return c.currentTick
}

// Locked reports whether the CPU has executed a disallowed opcode and
// is permanently halted, as real hardware does.
func (c *CPU) Locked() bool {
	return c.locked
}

func (c *CPU) hasInterrupts() bool {
	return c.IRQ.Pending()
}

// readInstruction reads the next opcode from memory.
func (c *CPU) readInstruction() uint8 {
	c.tickCycle()
	value := c.mmu.Read(c.PC)
	c.PC++
	return value
}

// readOperand reads the next operand byte from memory. Same cost as
// readInstruction; kept distinct so future tracing/logging can tell
// opcode fetches and operand fetches apart.
func (c *CPU) readOperand() uint8 {
	c.tickCycle()
	value := c.mmu.Read(c.PC)
	c.PC++
	return value
}

// readByte reads a byte from memory, ticking every component once.
func (c *CPU) readByte(addr uint16) uint8 {
	c.tickCycle()
	return c.mmu.Read(addr)
}

// writeByte writes a byte to memory, ticking every component once.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.tickCycle()
	c.mmu.Write(addr, val)
}

// runInstruction fetches the instruction's operand bytes (if any) and
// executes it.
func (c *CPU) runInstruction(opcode uint8) {
	var instruction Instruction
	if opcode == 0xCB {
		instruction = InstructionSetCB[c.readOperand()]
	} else {
		instruction = InstructionSet[opcode]
	}

	var operands []byte
	if instruction.Length > 1 {
		operands = make([]byte, instruction.Length-1)
		for i := range operands {
			operands[i] = c.readOperand()
		}
	}

	instruction.Execute(c, operands)
}

// executeInterrupt services the highest-priority pending interrupt,
// pushing the current PC and jumping to its vector.
func (c *CPU) executeInterrupt() {
	if c.IRQ.IME {
		vector, ok := c.IRQ.Vector()
		if !ok {
			c.mode = ModeNormal
			return
		}

		c.SP--
		c.writeByte(c.SP, uint8(c.PC>>8))
		c.SP--
		c.writeByte(c.SP, uint8(c.PC&0xFF))

		c.PC = uint16(vector)
		c.IRQ.IME = false

		c.tickCycle()
	}

	c.mode = ModeNormal
}

// tick advances the OAM DMA controller, the PPU and the APU by one
// T-cycle, at the fixed rate the real hardware runs them at regardless
// of CPU speed.
func (c *CPU) tick() {
	c.mmu.OAMDMA.Tick()
	c.ppu.Tick()
	c.sound.Tick()
	c.currentTick++
}

// tickFast advances the components that run twice as fast in CGB
// double-speed mode: the system clock driving the timer and serial
// port scales with the CPU, while PPU and APU never do (that's why
// graphics and sound keep the same real-time rate either way).
func (c *CPU) tickFast() {
	c.timer.Tick()
	c.serial.Tick(c.timer.SystemClock())
}

// tickCycle advances by one M-cycle. In single speed that's 4 ticks of
// every component; in double speed the timer/serial still see 4 ticks
// per M-cycle's worth of real time (the system clock they run from
// scales with CPU speed), but only 2 full ticks of PPU/APU elapse,
// since those never speed up.
func (c *CPU) tickCycle() {
	if c.mmu.DoubleSpeed() {
		c.tick()
		c.tickFast()
		c.tickFast()
		c.tick()
		c.tickFast()
		c.tickFast()
	} else {
		c.tick()
		c.tickFast()
		c.tick()
		c.tickFast()
		c.tick()
		c.tickFast()
		c.tick()
		c.tickFast()
	}
}

// shouldZeroFlag sets FlagZero if the given value is 0.
func (c *CPU) shouldZeroFlag(value uint8) {
	if value == 0 {
		c.setFlag(FlagZero)
	} else {
		c.clearFlag(FlagZero)
	}
}
