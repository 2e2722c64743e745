package hart

// opGroup returns the 5-bit dispatch index: bits [6:2] of the instruction
// word.
func opGroup(inst uint32) uint32 {
	return (inst >> opGroupShift) & mask5Bit
}

func decodeRd(inst uint32) uint32 {
	return (inst >> rdShift) & mask5Bit
}

func decodeRs1(inst uint32) uint32 {
	return (inst >> rs1Shift) & mask5Bit
}

func decodeRs2(inst uint32) uint32 {
	return (inst >> rs2Shift) & mask5Bit
}

func decodeRs3(inst uint32) uint32 {
	return (inst >> rs3Shift) & mask5Bit
}

func decodeFunct3(inst uint32) uint32 {
	return (inst >> funct3Shift) & mask3Bit
}

func decodeFunct7(inst uint32) uint32 {
	return (inst >> funct7Shift) & mask7Bit
}

// decodeFmt extracts the 2-bit floating-point format field carried in the
// same bit range as funct7's low two bits on R4-type (fused multiply-add)
// instructions. This implementation only ever sees fmt == 0 (single
// precision); the field exists so a caller can reject anything else.
func decodeFmt(inst uint32) uint32 {
	return (inst >> fmtShift) & mask2Bit
}

// decodeCSR extracts the 12-bit CSR index carried in the same bit range as
// the I-type immediate.
func decodeCSR(inst uint32) uint32 {
	return (inst >> rs2Shift) & mask12Bit
}

// signExtend sign-extends the low `bits` bits of v to a full int32
// (RISC-V immediates are always used as 32-bit two's-complement values
// once extended).
func signExtend(v uint32, bits uint) int32 {
	shift := 32 - bits
	return int32(v<<shift) >> shift
}

// decodeImmI extracts and sign-extends the I-type immediate: inst[31:20].
func decodeImmI(inst uint32) int32 {
	return signExtend(inst>>20, 12)
}

// decodeImmS extracts and sign-extends the S-type immediate:
// inst[31:25] | inst[11:7].
func decodeImmS(inst uint32) int32 {
	v := ((inst >> 25) << 5) | ((inst >> 7) & mask5Bit)
	return signExtend(v, 12)
}

// decodeImmB extracts and sign-extends the B-type immediate:
// inst[31]|inst[7]|inst[30:25]|inst[11:8], with an implicit trailing zero
// bit.
func decodeImmB(inst uint32) int32 {
	bit11 := (inst >> 7) & 0x1
	bit4_1 := (inst >> 8) & 0xF
	bit10_5 := (inst >> 25) & 0x3F
	bit12 := (inst >> 31) & 0x1
	v := (bit12 << 12) | (bit11 << 11) | (bit10_5 << 5) | (bit4_1 << 1)
	return signExtend(v, 13)
}

// decodeImmU extracts the U-type immediate: inst[31:12] shifted into
// place, low 12 bits zero. No sign extension is needed since it already
// occupies the top 20 bits and is used as-is.
func decodeImmU(inst uint32) int32 {
	return int32(inst & 0xFFFFF000)
}

// decodeImmJ extracts and sign-extends the J-type immediate:
// inst[31]|inst[19:12]|inst[20]|inst[30:21], with an implicit trailing
// zero bit.
func decodeImmJ(inst uint32) int32 {
	bit19_12 := (inst >> 12) & 0xFF
	bit11 := (inst >> 20) & 0x1
	bit10_1 := (inst >> 21) & 0x3FF
	bit20 := (inst >> 31) & 0x1
	v := (bit20 << 20) | (bit19_12 << 12) | (bit11 << 11) | (bit10_1 << 1)
	return signExtend(v, 21)
}
