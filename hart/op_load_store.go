package hart

// Funct3 values for LOAD: selects width and, for sub-word widths, whether
// the result is sign- or zero-extended.
const (
	f3LB  = 0x0
	f3LH  = 0x1
	f3LW  = 0x2
	f3LBU = 0x4
	f3LHU = 0x5
)

// Funct3 values for STORE: selects width only (stores never extend).
const (
	f3SB = 0x0
	f3SH = 0x1
	f3SW = 0x2
)

// opLoadHandler implements LB/LH/LW/LBU/LHU. Address = X[rs1] + imm(I).
func opLoadHandler(h *Hart, inst uint32) bool {
	rd := decodeRd(inst)
	rs1 := decodeRs1(inst)
	funct3 := decodeFunct3(inst)
	addr := h.X[rs1] + uint32(decodeImmI(inst))

	var result uint32
	switch funct3 {
	case f3LB:
		result = uint32(int32(int8(h.io.MemReadB(h, addr))))
	case f3LBU:
		result = uint32(h.io.MemReadB(h, addr))
	case f3LH:
		result = uint32(int32(int16(h.io.MemReadS(h, addr))))
	case f3LHU:
		result = uint32(h.io.MemReadS(h, addr))
	case f3LW:
		result = h.io.MemReadW(h, addr)
	}

	h.setX(rd, result)
	h.pc += 4
	return true
}

// opStoreHandler implements SB/SH/SW. Address = X[rs1] + imm(S); value is
// the low bits of X[rs2].
func opStoreHandler(h *Hart, inst uint32) bool {
	rs1 := decodeRs1(inst)
	rs2 := decodeRs2(inst)
	funct3 := decodeFunct3(inst)
	addr := h.X[rs1] + uint32(decodeImmS(inst))
	v := h.X[rs2]

	switch funct3 {
	case f3SB:
		h.io.MemWriteB(h, addr, uint8(v))
	case f3SH:
		h.io.MemWriteS(h, addr, uint16(v))
	case f3SW:
		h.io.MemWriteW(h, addr, v)
	}

	h.pc += 4
	return true
}

// opMiscMemHandler implements FENCE and FENCE.I as accepted no-ops: this
// single-hart, single-address-space interpreter has no pipeline or
// instruction cache to flush, so the handler's entire job is to exist so
// the opcode slot is not null when Zifencei is enabled.
func opMiscMemHandler(h *Hart, inst uint32) bool {
	h.pc += 4
	return true
}
