package hart

import "math"

// funct5 values (funct7 >> 2) selecting the OP-FP operation, for the
// single-precision (fmt == 0) forms this package implements.
const (
	f5FADD        = 0x00
	f5FSUB        = 0x01
	f5FMUL        = 0x02
	f5FDIV        = 0x03
	f5FSGNJ       = 0x04
	f5FMINMAX     = 0x05
	f5FSQRT       = 0x0B
	f5FCMP        = 0x14
	f5FCVTW       = 0x18
	f5FCVTS       = 0x1A
	f5FMVXWFCLASS = 0x1C
	f5FMVWX       = 0x1E
)

// Funct3 sub-selectors shared by several OP-FP groups.
const (
	f3FSGNJ  = 0x0
	f3FSGNJN = 0x1
	f3FSGNJX = 0x2

	f3FMIN = 0x0
	f3FMAX = 0x1

	f3FLE = 0x0
	f3FLT = 0x1
	f3FEQ = 0x2

	f3FMVXW  = 0x0
	f3FCLASS = 0x1
)

// opLoadFPHandler implements FLW: reuses byte-exact 32-bit memory access,
// reinterpreting the loaded bits as a float32.
func opLoadFPHandler(h *Hart, inst uint32) bool {
	rd := decodeRd(inst)
	rs1 := decodeRs1(inst)
	addr := h.X[rs1] + uint32(decodeImmI(inst))
	h.F[rd] = math.Float32frombits(h.io.MemReadW(h, addr))
	h.pc += 4
	return true
}

// opStoreFPHandler implements FSW.
func opStoreFPHandler(h *Hart, inst uint32) bool {
	rs1 := decodeRs1(inst)
	rs2 := decodeRs2(inst)
	addr := h.X[rs1] + uint32(decodeImmS(inst))
	h.io.MemWriteW(h, addr, math.Float32bits(h.F[rs2]))
	h.pc += 4
	return true
}

// opOpFPHandler implements the single-precision arithmetic, sign-injection,
// min/max, conversion, move, classify, and compare instructions that share
// the OP-FP opcode group. The rounding-mode field (carried in the same bit
// range as funct3 for most of these forms) is never read: SPEC_FULL.md
// §4.7/§9 resolves rounding mode as parsed-but-ignored, and Go's own
// float32 arithmetic is what stands in for "host single-precision math".
func opOpFPHandler(h *Hart, inst uint32) bool {
	rd := decodeRd(inst)
	rs1 := decodeRs1(inst)
	rs2 := decodeRs2(inst)
	funct3 := decodeFunct3(inst)
	funct5 := decodeFunct7(inst) >> 2

	f1, f2 := h.F[rs1], h.F[rs2]

	switch funct5 {
	case f5FADD:
		h.F[rd] = f1 + f2
	case f5FSUB:
		h.F[rd] = f1 - f2
	case f5FMUL:
		h.F[rd] = f1 * f2
	case f5FDIV:
		h.F[rd] = f1 / f2
	case f5FSQRT:
		h.F[rd] = float32(math.Sqrt(float64(f1)))
	case f5FSGNJ:
		h.F[rd] = sgnj(f1, f2, funct3)
	case f5FMINMAX:
		if funct3 == f3FMAX {
			h.F[rd] = fmax32(f1, f2)
		} else {
			h.F[rd] = fmin32(f1, f2)
		}
	case f5FCVTW:
		if rs2 == 1 {
			h.setX(rd, uint32(f1))
		} else {
			h.setX(rd, uint32(int32(f1)))
		}
	case f5FCVTS:
		if rs2 == 1 {
			h.F[rd] = float32(h.X[rs1])
		} else {
			h.F[rd] = float32(int32(h.X[rs1]))
		}
	case f5FMVXWFCLASS:
		if funct3 == f3FCLASS {
			h.setX(rd, fclassMask(f1))
		} else {
			h.setX(rd, math.Float32bits(f1))
		}
	case f5FMVWX:
		h.F[rd] = math.Float32frombits(h.X[rs1])
	case f5FCMP:
		switch funct3 {
		case f3FEQ:
			h.setX(rd, boolToU32(f1 == f2))
		case f3FLT:
			h.setX(rd, boolToU32(f1 < f2))
		case f3FLE:
			h.setX(rd, boolToU32(f1 <= f2))
		}
	}

	h.pc += 4
	return true
}

// sgnj builds FSGNJ.S/FSGNJN.S/FSGNJX.S's result from the sign bit of f2:
// copy it (FSGNJ), copy its complement (FSGNJN), or XOR it with f1's own
// sign (FSGNJX).
func sgnj(f1, f2 float32, funct3 uint32) float32 {
	b1 := math.Float32bits(f1)
	b2 := math.Float32bits(f2)
	const signBit = uint32(1) << 31
	mag := b1 &^ signBit

	switch funct3 {
	case f3FSGNJN:
		return math.Float32frombits(mag | (^b2 & signBit))
	case f3FSGNJX:
		return math.Float32frombits(mag | ((b1 ^ b2) & signBit))
	default: // f3FSGNJ
		return math.Float32frombits(mag | (b2 & signBit))
	}
}

func fmin32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func fmax32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// fclassMask classifies f into the ten-bit mask spec.md §4.7 defines:
// bit 0 -inf, bit 1 negative normal, bit 2 negative subnormal, bit 3 -0,
// bit 4 +0, bit 5 positive subnormal, bit 6 positive normal, bit 7 +inf,
// bit 8 signaling NaN, bit 9 quiet NaN.
func fclassMask(f float32) uint32 {
	bits := math.Float32bits(f)
	sign := bits>>31 != 0
	exp := (bits >> 23) & 0xFF
	mant := bits & 0x7FFFFF

	switch {
	case exp == 0xFF && mant != 0:
		if mant&0x400000 != 0 {
			return 1 << 9
		}
		return 1 << 8
	case exp == 0xFF:
		if sign {
			return 1 << 0
		}
		return 1 << 7
	case exp == 0 && mant == 0:
		if sign {
			return 1 << 3
		}
		return 1 << 4
	case exp == 0:
		if sign {
			return 1 << 2
		}
		return 1 << 5
	default:
		if sign {
			return 1 << 1
		}
		return 1 << 6
	}
}

// fmaKind selects which of the four fused multiply-add forms an R4-type
// instruction's opcode group identifies (the opcode group itself, not any
// field within the word, distinguishes them).
type fmaKind int

const (
	fmaKindMADD fmaKind = iota
	fmaKindMSUB
	fmaKindNMSUB
	fmaKindNMADD
)

// opFMAHandler returns a handler for one of FMADD.S/FMSUB.S/FNMSUB.S/
// FNMADD.S: FMADD = rs1*rs2 + rs3, FMSUB = rs1*rs2 - rs3,
// FNMSUB = -(rs1*rs2) + rs3, FNMADD = -(rs1*rs2) - rs3.
func opFMAHandler(kind fmaKind) StepFunc {
	return func(h *Hart, inst uint32) bool {
		rd := decodeRd(inst)
		rs1 := decodeRs1(inst)
		rs2 := decodeRs2(inst)
		rs3 := decodeRs3(inst)

		prod := h.F[rs1] * h.F[rs2]
		var result float32
		switch kind {
		case fmaKindMADD:
			result = prod + h.F[rs3]
		case fmaKindMSUB:
			result = prod - h.F[rs3]
		case fmaKindNMSUB:
			result = -prod + h.F[rs3]
		case fmaKindNMADD:
			result = -prod - h.F[rs3]
		}

		h.F[rd] = result
		h.pc += 4
		return true
	}
}
