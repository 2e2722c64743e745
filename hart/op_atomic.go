package hart

// Funct5 values (the top 5 bits of funct7) selecting the AMO operation.
const (
	amoLR      = 0x02
	amoSC      = 0x03
	amoSWAP    = 0x01
	amoADD     = 0x00
	amoXOR     = 0x04
	amoAND     = 0x0C
	amoOR      = 0x08
	amoMIN     = 0x10
	amoMAX     = 0x14
	amoMINU    = 0x18
	amoMAXU = 0x1C
)

// opAMOHandler implements the RV32A word-width atomic memory operations.
// Every form addresses memory through X[rs1]'s value (no offset) — per
// the explicit correction in SPEC_FULL.md §4.6/§9 of a reference bug that
// addressed by register index instead — reads the current word, computes
// a new value, and writes it back through the word-width store path.
// Acquire/release bits are decoded nowhere because this single-threaded
// model never orders across harts; there is nothing for them to gate.
// LR.W performs a plain load. SC.W performs a plain store and always
// succeeds, writing zero to rd: this package tracks no reservation set at
// all, per the open question in SPEC_FULL.md §9.
func opAMOHandler(h *Hart, inst uint32) bool {
	rd := decodeRd(inst)
	rs1 := decodeRs1(inst)
	rs2 := decodeRs2(inst)
	funct5 := decodeFunct7(inst) >> 2

	addr := h.X[rs1]

	if funct5 == amoLR {
		h.setX(rd, h.io.MemReadW(h, addr))
		h.pc += 4
		return true
	}
	if funct5 == amoSC {
		h.io.MemWriteW(h, addr, h.X[rs2])
		h.setX(rd, 0)
		h.pc += 4
		return true
	}

	old := h.io.MemReadW(h, addr)
	operand := h.X[rs2]
	var next uint32

	switch funct5 {
	case amoSWAP:
		next = operand
	case amoADD:
		next = old + operand
	case amoXOR:
		next = old ^ operand
	case amoAND:
		next = old & operand
	case amoOR:
		next = old | operand
	case amoMIN:
		next = uint32(minInt32(int32(old), int32(operand)))
	case amoMAX:
		next = uint32(maxInt32(int32(old), int32(operand)))
	case amoMINU:
		next = minUint32(old, operand)
	case amoMAXU:
		next = maxUint32(old, operand)
	}

	h.io.MemWriteW(h, addr, next)
	h.setX(rd, old)
	h.pc += 4
	return true
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func minUint32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

func maxUint32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
