package cpu

import "fmt"

// cbOperand resolves the 3-bit register-field encoding shared by every
// CB-prefixed opcode: 0-5 and 7 name a register directly (via the same
// order cpu.registerIndex uses), 6 names (HL). Because the lookup runs
// at call time rather than at table-construction time, the same table
// entry works correctly no matter which CPU instance executes it.
func cbOperand(cpu *CPU, field uint8) uint8 {
	if field == 6 {
		return cpu.readByte(cpu.HL.Uint16())
	}
	return *cpu.registerIndex(field)
}

func cbStore(cpu *CPU, field uint8, value uint8) {
	if field == 6 {
		cpu.writeByte(cpu.HL.Uint16(), value)
		return
	}
	*cpu.registerIndex(field) = value
}

func cbRegisterName(field uint8) string {
	if field == 6 {
		return "(HL)"
	}
	return []string{"B", "C", "D", "E", "H", "L", "", "A"}[field]
}

// InstructionSetCB is the table of CB-prefixed opcodes: the rotate and
// shift family (0x00-0x3F), BIT (0x40-0x7F), RES (0x80-0xBF) and SET
// (0xC0-0xFF), each crossed with the 8 register-field encodings.
var InstructionSetCB [0x100]Instruction

func init() {
	type shiftOp struct {
		name string
		fn   func(cpu *CPU, value uint8) uint8
	}
	ops := [8]shiftOp{
		{"RLC", (*CPU).rotateLeft},
		{"RRC", (*CPU).rotateRight},
		{"RL", (*CPU).rotateLeftThroughCarry},
		{"RR", (*CPU).rotateRightThroughCarry},
		{"SLA", (*CPU).shiftLeftIntoCarry},
		{"SRA", (*CPU).shiftRightIntoCarry},
		{"SWAP", (*CPU).swapByte},
		{"SRL", (*CPU).shiftRightLogical},
	}
	for op := uint8(0); op < 8; op++ {
		for field := uint8(0); field < 8; field++ {
			opcode := op*8 + field
			f := ops[op].fn
			name := fmt.Sprintf("%s %s", ops[op].name, cbRegisterName(field))
			cycles := uint8(2)
			if field == 6 {
				cycles = 4
			}
			InstructionSetCB[opcode] = Instruction{name, 2, cycles, func(cpu *CPU, operands []byte) {
				cbStore(cpu, field, f(cpu, cbOperand(cpu, field)))
			}}
		}
	}

	for bit := uint8(0); bit < 8; bit++ {
		for field := uint8(0); field < 8; field++ {
			opcode := 0x40 + bit*8 + field
			name := fmt.Sprintf("BIT %d, %s", bit, cbRegisterName(field))
			cycles := uint8(2)
			if field == 6 {
				cycles = 3
			}
			InstructionSetCB[opcode] = Instruction{name, 2, cycles, func(cpu *CPU, operands []byte) {
				cpu.testBit(cbOperand(cpu, field), bit)
			}}
		}
	}

	for bit := uint8(0); bit < 8; bit++ {
		for field := uint8(0); field < 8; field++ {
			opcode := 0x80 + bit*8 + field
			name := fmt.Sprintf("RES %d, %s", bit, cbRegisterName(field))
			cycles := uint8(2)
			if field == 6 {
				cycles = 4
			}
			InstructionSetCB[opcode] = Instruction{name, 2, cycles, func(cpu *CPU, operands []byte) {
				cbStore(cpu, field, cpu.clearBit(cbOperand(cpu, field), bit))
			}}
		}
	}

	for bit := uint8(0); bit < 8; bit++ {
		for field := uint8(0); field < 8; field++ {
			opcode := 0xC0 + bit*8 + field
			name := fmt.Sprintf("SET %d, %s", bit, cbRegisterName(field))
			cycles := uint8(2)
			if field == 6 {
				cycles = 4
			}
			InstructionSetCB[opcode] = Instruction{name, 2, cycles, func(cpu *CPU, operands []byte) {
				cbStore(cpu, field, cpu.setBit(cbOperand(cpu, field), bit))
			}}
		}
	}
}
