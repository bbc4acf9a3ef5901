package cpu

import "testing"

func (c *CPU) loadProgram(addr uint16, bytes ...uint8) {
	c.PC = addr
	for i, b := range bytes {
		c.mmu.Write(addr+uint16(i), b)
	}
}

func TestInstruction_Loads(t *testing.T) {
	c := newTestCPU(t)
	c.loadProgram(0xC000, 0x06, 0x42) // LD B, 0x42
	c.Step()
	if c.B != 0x42 {
		t.Errorf("B after LD B,d8 = %#02x, want 0x42", c.B)
	}

	c.loadProgram(0xC000, 0x70) // LD (HL), B
	c.HL.SetUint16(0xC100)
	c.Step()
	if got := c.mmu.Read(0xC100); got != 0x42 {
		t.Errorf("(HL) after LD (HL),B = %#02x, want 0x42", got)
	}

	c.loadProgram(0xC000, 0x21, 0x34, 0x12) // LD HL, 0x1234
	c.Step()
	if c.HL.Uint16() != 0x1234 {
		t.Errorf("HL after LD HL,d16 = %#04x, want 0x1234", c.HL.Uint16())
	}
}

func TestInstruction_PushPopRoundTrip(t *testing.T) {
	c := newTestCPU(t)
	c.SP = 0xD000
	c.DE.SetUint16(0xBEEF)
	c.loadProgram(0xC000, 0xD5) // PUSH DE
	c.Step()
	if c.SP != 0xCFFE {
		t.Fatalf("SP after PUSH DE = %#04x, want 0xCFFE", c.SP)
	}

	c.HL.SetUint16(0)
	c.loadProgram(0xC000, 0xE1) // POP HL
	c.Step()
	if c.HL.Uint16() != 0xBEEF {
		t.Errorf("HL after POP HL = %#04x, want 0xBEEF", c.HL.Uint16())
	}
	if c.SP != 0xD000 {
		t.Errorf("SP after POP HL = %#04x, want 0xD000", c.SP)
	}
}

func TestInstruction_Arithmetic(t *testing.T) {
	c := newTestCPU(t)
	c.A = 0x0F
	c.loadProgram(0xC000, 0xC6, 0x01) // ADD A, 0x01
	c.Step()
	if c.A != 0x10 {
		t.Errorf("A after ADD A,1 = %#02x, want 0x10", c.A)
	}
	if !c.isFlagSet(FlagHalfCarry) {
		t.Errorf("expected half carry set crossing nibble boundary")
	}

	c.BC.SetUint16(0x0001)
	c.loadProgram(0xC000, 0x0B) // DEC BC
	c.Step()
	if c.BC.Uint16() != 0x0000 {
		t.Errorf("BC after DEC BC = %#04x, want 0x0000", c.BC.Uint16())
	}
}

func TestInstruction_AddSPSignedOffsetFlags(t *testing.T) {
	c := newTestCPU(t)
	c.SP = 0x0005
	c.loadProgram(0xC000, 0xE8, 0xFF) // ADD SP, -1
	c.Step()
	if c.SP != 0x0004 {
		t.Errorf("SP after ADD SP,-1 = %#04x, want 0x0004", c.SP)
	}
	if c.isFlagSet(FlagZero) || c.isFlagSet(FlagSubtract) {
		t.Errorf("ADD SP,r8 must clear Z and N")
	}
}

func TestInstruction_JumpsAndCalls(t *testing.T) {
	c := newTestCPU(t)
	c.SP = 0xD000
	c.loadProgram(0xC000, 0xC3, 0x00, 0xD0) // JP 0xD000
	c.Step()
	if c.PC != 0xD000 {
		t.Fatalf("PC after JP a16 = %#04x, want 0xD000", c.PC)
	}

	c.loadProgram(0xD000, 0xCD, 0x00, 0xE0) // CALL 0xE000
	c.Step()
	if c.PC != 0xE000 {
		t.Errorf("PC after CALL a16 = %#04x, want 0xE000", c.PC)
	}
	if c.SP != 0xCFFE {
		t.Errorf("SP after CALL a16 = %#04x, want 0xCFFE", c.SP)
	}

	c.loadProgram(0xE000, 0xC9) // RET
	c.Step()
	if c.PC != 0xD003 {
		t.Errorf("PC after RET = %#04x, want 0xD003 (return address)", c.PC)
	}
}

func TestInstruction_ConditionalBranchNotTaken(t *testing.T) {
	c := newTestCPU(t)
	c.clearFlag(FlagZero)
	c.loadProgram(0xC000, 0xCA, 0x00, 0xD0) // JP Z, 0xD000 (not taken)
	ticks := c.Step()
	if c.PC != 0xC003 {
		t.Errorf("PC after untaken JP Z = %#04x, want 0xC003", c.PC)
	}
	if ticks != 12 {
		t.Errorf("untaken JP cc,nn ticks = %d, want 12 (3 M-cycles)", ticks)
	}
}

func TestInstructionCB_BitOpsOnMemory(t *testing.T) {
	c := newTestCPU(t)
	c.HL.SetUint16(0xC050)
	c.mmu.Write(0xC050, 0x00)

	c.loadProgram(0xC000, 0xCB, 0xC6) // SET 0, (HL)
	c.Step()
	if got := c.mmu.Read(0xC050); got != 0x01 {
		t.Fatalf("(HL) after SET 0,(HL) = %#02x, want 0x01", got)
	}

	c.loadProgram(0xC000, 0xCB, 0x46) // BIT 0, (HL)
	c.Step()
	if c.isFlagSet(FlagZero) {
		t.Errorf("Zero flag set testing a set bit")
	}

	c.loadProgram(0xC000, 0xCB, 0x86) // RES 0, (HL)
	c.Step()
	if got := c.mmu.Read(0xC050); got != 0x00 {
		t.Errorf("(HL) after RES 0,(HL) = %#02x, want 0x00", got)
	}
}

func TestInstructionCB_RotateLeftRegister(t *testing.T) {
	c := newTestCPU(t)
	c.B = 0x80
	c.loadProgram(0xC000, 0xCB, 0x00) // RLC B
	c.Step()
	if c.B != 0x01 {
		t.Errorf("B after RLC B = %#02x, want 0x01", c.B)
	}
	if !c.isFlagSet(FlagCarry) {
		t.Errorf("expected carry set from bit 7")
	}
}

func TestInstructionCB_SwapNibbles(t *testing.T) {
	c := newTestCPU(t)
	c.A = 0xF0
	c.loadProgram(0xC000, 0xCB, 0x37) // SWAP A
	c.Step()
	if c.A != 0x0F {
		t.Errorf("A after SWAP A = %#02x, want 0x0F", c.A)
	}
}
