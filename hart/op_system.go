package hart

// Funct3 values for SYSTEM.
const (
	f3PRIV   = 0x0 // ECALL / EBREAK, selected by the I-immediate
	f3CSRRW  = 0x1
	f3CSRRS  = 0x2
	f3CSRRC  = 0x3
	f3CSRRWI = 0x5
	f3CSRRSI = 0x6
	f3CSRRCI = 0x7
)

// immEcall and immEbreak are the two I-immediate values that distinguish
// ECALL from EBREAK within funct3 == f3PRIV.
const (
	immEcall  = 0x000
	immEbreak = 0x001
)

// opSystemHandler implements ECALL, EBREAK, and — when Zicsr is enabled —
// CSRRW/CSRRS/CSRRC and their immediate-operand forms. Both ECALL and
// EBREAK advance PC by 4 after their callback returns; a CSR instruction
// with Zicsr disabled (or an unrecognized funct3 value) is a programming
// error at the compile-time configuration level and panics.
func opSystemHandler(h *Hart, inst uint32) bool {
	funct3 := decodeFunct3(inst)

	if funct3 == f3PRIV {
		imm := uint32(decodeImmI(inst)) & mask12Bit
		pc := h.pc
		switch imm {
		case immEcall:
			h.io.OnEcall(h, pc, inst)
		case immEbreak:
			h.io.OnEbreak(h, pc, inst)
		}
		h.pc += 4
		return true
	}

	if !h.hasZicsr {
		panic("hart: CSR instruction reached dispatch with Zicsr disabled")
	}

	rd := decodeRd(inst)
	rs1 := decodeRs1(inst)
	csrIndex := decodeCSR(inst)

	var writeOperand uint32
	var op func(old, operand uint32) uint32

	switch funct3 {
	case f3CSRRW:
		writeOperand, op = h.X[rs1], csrOpWrite
	case f3CSRRS:
		writeOperand, op = h.X[rs1], csrOpSet
	case f3CSRRC:
		writeOperand, op = h.X[rs1], csrOpClear
	case f3CSRRWI:
		writeOperand, op = rs1, csrOpWrite
	case f3CSRRSI:
		writeOperand, op = rs1, csrOpSet
	case f3CSRRCI:
		writeOperand, op = rs1, csrOpClear
	default:
		panic("hart: unreachable SYSTEM funct3")
	}

	h.csrReadModifyWrite(csrIndex, rd, writeOperand, op)
	h.pc += 4
	return true
}
