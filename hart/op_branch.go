package hart

// Funct3 values for BRANCH.
const (
	f3BEQ  = 0x0
	f3BNE  = 0x1
	f3BLT  = 0x4
	f3BGE  = 0x5
	f3BLTU = 0x6
	f3BGEU = 0x7
)

// opBranchHandler implements BEQ/BNE/BLT/BGE/BLTU/BGEU. A taken branch
// whose target is not 4-byte aligned raises instruction-misaligned; a
// not-taken branch never raises, even if the (unused) target would have
// been misaligned. Always returns false: this handler has already set PC
// either way, to the target or to PC+4.
func opBranchHandler(h *Hart, inst uint32) bool {
	rs1 := decodeRs1(inst)
	rs2 := decodeRs2(inst)
	funct3 := decodeFunct3(inst)
	x1, x2 := h.X[rs1], h.X[rs2]

	var taken bool
	switch funct3 {
	case f3BEQ:
		taken = x1 == x2
	case f3BNE:
		taken = x1 != x2
	case f3BLT:
		taken = int32(x1) < int32(x2)
	case f3BGE:
		taken = int32(x1) >= int32(x2)
	case f3BLTU:
		taken = x1 < x2
	case f3BGEU:
		taken = x1 >= x2
	}

	if taken {
		target := h.pc + uint32(decodeImmB(inst))
		if target&0x3 != 0 {
			h.raise(ExceptionInstructionMisaligned)
		}
		h.pc = target
	} else {
		h.pc += 4
	}
	return false
}

// opJALHandler implements JAL: link X[rd] = PC+4 (unless rd == 0), then
// PC += imm(J). Raises instruction-misaligned on a non-aligned target.
func opJALHandler(h *Hart, inst uint32) bool {
	rd := decodeRd(inst)
	link := h.pc + 4
	target := h.pc + uint32(decodeImmJ(inst))
	h.setX(rd, link)
	if target&0x3 != 0 {
		h.raise(ExceptionInstructionMisaligned)
	}
	h.pc = target
	return false
}

// opJALRHandler implements JALR: target = (X[rs1] + imm(I)) & ~1, link
// X[rd] = PC+4 (unless rd == 0), PC = target. Raises
// instruction-misaligned on a non-aligned target.
func opJALRHandler(h *Hart, inst uint32) bool {
	rd := decodeRd(inst)
	rs1 := decodeRs1(inst)
	link := h.pc + 4
	target := (h.X[rs1] + uint32(decodeImmI(inst))) &^ 1
	h.setX(rd, link)
	if target&0x3 != 0 {
		h.raise(ExceptionInstructionMisaligned)
	}
	h.pc = target
	return false
}
