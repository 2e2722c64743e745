package hart_test

// Minimal RV32 instruction encoders for tests: building instruction words
// from named fields reads far better than hand-computed hex literals, and
// keeps each test's intent (which fields it's exercising) in the call
// site rather than in a comment next to a magic number.

const (
	opLOAD    = 0b0000011
	opLOADFP  = 0b0000111
	opMISCMEM = 0b0001111
	opOPIMM   = 0b0010011
	opAUIPC   = 0b0010111
	opSTORE   = 0b0100011
	opSTOREFP = 0b0100111
	opAMO     = 0b0101111
	opOP      = 0b0110011
	opLUI     = 0b0110111
	opMADD    = 0b1000011
	opMSUB    = 0b1000111
	opNMSUB   = 0b1001011
	opNMADD   = 0b1001111
	opOPFP    = 0b1010011
	opBRANCH  = 0b1100011
	opJALR    = 0b1100111
	opJAL     = 0b1101111
	opSYSTEM  = 0b1110011
)

func encodeR(opcode, funct3, funct7, rd, rs1, rs2 uint32) uint32 {
	return (funct7 << 25) | (rs2 << 20) | (rs1 << 15) | (funct3 << 12) | (rd << 7) | opcode
}

func encodeR4(opcode, funct3, rd, rs1, rs2, rs3 uint32) uint32 {
	// fmt (bits 26:25) is always 0 (single precision) for every R4-type
	// instruction this package implements.
	return (rs3 << 27) | (rs2 << 20) | (rs1 << 15) | (funct3 << 12) | (rd << 7) | opcode
}

func encodeI(opcode, funct3, rd, rs1 uint32, imm int32) uint32 {
	return (uint32(imm)&0xFFF)<<20 | (rs1 << 15) | (funct3 << 12) | (rd << 7) | opcode
}

func encodeS(opcode, funct3, rs1, rs2 uint32, imm int32) uint32 {
	u := uint32(imm)
	return ((u>>5)&0x7F)<<25 | (rs2 << 20) | (rs1 << 15) | (funct3 << 12) | ((u & 0x1F) << 7) | opcode
}

func encodeB(opcode, funct3, rs1, rs2 uint32, imm int32) uint32 {
	u := uint32(imm)
	bit12 := (u >> 12) & 1
	bit11 := (u >> 11) & 1
	bit10_5 := (u >> 5) & 0x3F
	bit4_1 := (u >> 1) & 0xF
	return bit12<<31 | bit10_5<<25 | (rs2 << 20) | (rs1 << 15) | (funct3 << 12) | bit4_1<<8 | bit11<<7 | opcode
}

func encodeU(opcode, rd uint32, imm int32) uint32 {
	return uint32(imm)&0xFFFFF000 | (rd << 7) | opcode
}

func encodeJ(opcode, rd uint32, imm int32) uint32 {
	u := uint32(imm)
	bit20 := (u >> 20) & 1
	bit19_12 := (u >> 12) & 0xFF
	bit11 := (u >> 11) & 1
	bit10_1 := (u >> 1) & 0x3FF
	return bit20<<31 | bit10_1<<21 | bit11<<20 | bit19_12<<12 | (rd << 7) | opcode
}

// Encoders for the specific instructions these tests exercise, named the
// way a disassembler would name them.

func encodeADDI(rd, rs1 uint32, imm int32) uint32 { return encodeI(opOPIMM, 0x0, rd, rs1, imm) }
func encodeSLTI(rd, rs1 uint32, imm int32) uint32 { return encodeI(opOPIMM, 0x2, rd, rs1, imm) }
func encodeSLTIU(rd, rs1 uint32, imm int32) uint32 {
	return encodeI(opOPIMM, 0x3, rd, rs1, imm)
}
func encodeXORI(rd, rs1 uint32, imm int32) uint32 { return encodeI(opOPIMM, 0x4, rd, rs1, imm) }
func encodeORI(rd, rs1 uint32, imm int32) uint32  { return encodeI(opOPIMM, 0x6, rd, rs1, imm) }
func encodeANDI(rd, rs1 uint32, imm int32) uint32 { return encodeI(opOPIMM, 0x7, rd, rs1, imm) }
func encodeSLLI(rd, rs1, shamt uint32) uint32     { return encodeI(opOPIMM, 0x1, rd, rs1, int32(shamt)) }
func encodeSRLI(rd, rs1, shamt uint32) uint32     { return encodeI(opOPIMM, 0x5, rd, rs1, int32(shamt)) }
func encodeSRAI(rd, rs1, shamt uint32) uint32 {
	return encodeI(opOPIMM, 0x5, rd, rs1, int32(shamt|0x400))
}

func encodeADD(rd, rs1, rs2 uint32) uint32 { return encodeR(opOP, 0x0, 0x00, rd, rs1, rs2) }
func encodeSUB(rd, rs1, rs2 uint32) uint32 { return encodeR(opOP, 0x0, 0x20, rd, rs1, rs2) }
func encodeSLL(rd, rs1, rs2 uint32) uint32 { return encodeR(opOP, 0x1, 0x00, rd, rs1, rs2) }
func encodeSLT(rd, rs1, rs2 uint32) uint32 { return encodeR(opOP, 0x2, 0x00, rd, rs1, rs2) }
func encodeSLTU(rd, rs1, rs2 uint32) uint32 {
	return encodeR(opOP, 0x3, 0x00, rd, rs1, rs2)
}
func encodeXOR(rd, rs1, rs2 uint32) uint32 { return encodeR(opOP, 0x4, 0x00, rd, rs1, rs2) }
func encodeSRL(rd, rs1, rs2 uint32) uint32 { return encodeR(opOP, 0x5, 0x00, rd, rs1, rs2) }
func encodeSRA(rd, rs1, rs2 uint32) uint32 { return encodeR(opOP, 0x5, 0x20, rd, rs1, rs2) }
func encodeOR(rd, rs1, rs2 uint32) uint32  { return encodeR(opOP, 0x6, 0x00, rd, rs1, rs2) }
func encodeAND(rd, rs1, rs2 uint32) uint32 { return encodeR(opOP, 0x7, 0x00, rd, rs1, rs2) }

func encodeMUL(rd, rs1, rs2 uint32) uint32    { return encodeR(opOP, 0x0, 0x01, rd, rs1, rs2) }
func encodeMULH(rd, rs1, rs2 uint32) uint32   { return encodeR(opOP, 0x1, 0x01, rd, rs1, rs2) }
func encodeMULHSU(rd, rs1, rs2 uint32) uint32 { return encodeR(opOP, 0x2, 0x01, rd, rs1, rs2) }
func encodeMULHU(rd, rs1, rs2 uint32) uint32  { return encodeR(opOP, 0x3, 0x01, rd, rs1, rs2) }
func encodeDIV(rd, rs1, rs2 uint32) uint32    { return encodeR(opOP, 0x4, 0x01, rd, rs1, rs2) }
func encodeDIVU(rd, rs1, rs2 uint32) uint32   { return encodeR(opOP, 0x5, 0x01, rd, rs1, rs2) }
func encodeREM(rd, rs1, rs2 uint32) uint32    { return encodeR(opOP, 0x6, 0x01, rd, rs1, rs2) }
func encodeREMU(rd, rs1, rs2 uint32) uint32   { return encodeR(opOP, 0x7, 0x01, rd, rs1, rs2) }

func encodeLUI(rd uint32, imm int32) uint32   { return encodeU(opLUI, rd, imm) }
func encodeAUIPC(rd uint32, imm int32) uint32 { return encodeU(opAUIPC, rd, imm) }

func encodeBEQ(rs1, rs2 uint32, imm int32) uint32  { return encodeB(opBRANCH, 0x0, rs1, rs2, imm) }
func encodeBNE(rs1, rs2 uint32, imm int32) uint32  { return encodeB(opBRANCH, 0x1, rs1, rs2, imm) }
func encodeBLT(rs1, rs2 uint32, imm int32) uint32  { return encodeB(opBRANCH, 0x4, rs1, rs2, imm) }
func encodeBGE(rs1, rs2 uint32, imm int32) uint32  { return encodeB(opBRANCH, 0x5, rs1, rs2, imm) }
func encodeBLTU(rs1, rs2 uint32, imm int32) uint32 { return encodeB(opBRANCH, 0x6, rs1, rs2, imm) }
func encodeBGEU(rs1, rs2 uint32, imm int32) uint32 { return encodeB(opBRANCH, 0x7, rs1, rs2, imm) }

func encodeJAL(rd uint32, imm int32) uint32 { return encodeJ(opJAL, rd, imm) }
func encodeJALR(rd, rs1 uint32, imm int32) uint32 {
	return encodeI(opJALR, 0x0, rd, rs1, imm)
}

func encodeLB(rd, rs1 uint32, imm int32) uint32  { return encodeI(opLOAD, 0x0, rd, rs1, imm) }
func encodeLH(rd, rs1 uint32, imm int32) uint32  { return encodeI(opLOAD, 0x1, rd, rs1, imm) }
func encodeLW(rd, rs1 uint32, imm int32) uint32  { return encodeI(opLOAD, 0x2, rd, rs1, imm) }
func encodeLBU(rd, rs1 uint32, imm int32) uint32 { return encodeI(opLOAD, 0x4, rd, rs1, imm) }
func encodeLHU(rd, rs1 uint32, imm int32) uint32 { return encodeI(opLOAD, 0x5, rd, rs1, imm) }

func encodeSB(rs1, rs2 uint32, imm int32) uint32 { return encodeS(opSTORE, 0x0, rs1, rs2, imm) }
func encodeSH(rs1, rs2 uint32, imm int32) uint32 { return encodeS(opSTORE, 0x1, rs1, rs2, imm) }
func encodeSW(rs1, rs2 uint32, imm int32) uint32 { return encodeS(opSTORE, 0x2, rs1, rs2, imm) }

func encodeECALL() uint32  { return encodeI(opSYSTEM, 0x0, 0, 0, 0x000) }
func encodeEBREAK() uint32 { return encodeI(opSYSTEM, 0x0, 0, 0, 0x001) }

func encodeCSRRW(rd, csr, rs1 uint32) uint32 { return encodeI(opSYSTEM, 0x1, rd, rs1, int32(csr)) }
func encodeCSRRS(rd, csr, rs1 uint32) uint32 { return encodeI(opSYSTEM, 0x2, rd, rs1, int32(csr)) }
func encodeCSRRC(rd, csr, rs1 uint32) uint32 { return encodeI(opSYSTEM, 0x3, rd, rs1, int32(csr)) }
func encodeCSRRWI(rd, csr, zimm uint32) uint32 {
	return encodeI(opSYSTEM, 0x5, rd, zimm, int32(csr))
}

func encodeFENCE() uint32 { return encodeI(opMISCMEM, 0x0, 0, 0, 0) }

func encodeAMOADDW(rd, rs1, rs2 uint32) uint32 { return encodeR(opAMO, 0x2, 0x00<<2, rd, rs1, rs2) }
func encodeAMOSWAPW(rd, rs1, rs2 uint32) uint32 {
	return encodeR(opAMO, 0x2, 0x01<<2, rd, rs1, rs2)
}
func encodeLRW(rd, rs1 uint32) uint32 { return encodeR(opAMO, 0x2, 0x02<<2, rd, rs1, 0) }
func encodeSCW(rd, rs1, rs2 uint32) uint32 {
	return encodeR(opAMO, 0x2, 0x03<<2, rd, rs1, rs2)
}

func encodeFLW(rd, rs1 uint32, imm int32) uint32 { return encodeI(opLOADFP, 0x2, rd, rs1, imm) }
func encodeFSW(rs1, rs2 uint32, imm int32) uint32 {
	return encodeS(opSTOREFP, 0x2, rs1, rs2, imm)
}
func encodeFADDS(rd, rs1, rs2 uint32) uint32 { return encodeR(opOPFP, 0, 0x00<<2, rd, rs1, rs2) }
func encodeFSUBS(rd, rs1, rs2 uint32) uint32 { return encodeR(opOPFP, 0, 0x01<<2, rd, rs1, rs2) }
func encodeFMULS(rd, rs1, rs2 uint32) uint32 { return encodeR(opOPFP, 0, 0x02<<2, rd, rs1, rs2) }
func encodeFDIVS(rd, rs1, rs2 uint32) uint32 { return encodeR(opOPFP, 0, 0x03<<2, rd, rs1, rs2) }
func encodeFSQRTS(rd, rs1 uint32) uint32     { return encodeR(opOPFP, 0, 0x0B<<2, rd, rs1, 0) }
func encodeFSGNJS(rd, rs1, rs2 uint32) uint32 {
	return encodeR(opOPFP, 0x0, 0x04<<2, rd, rs1, rs2)
}
func encodeFSGNJNS(rd, rs1, rs2 uint32) uint32 {
	return encodeR(opOPFP, 0x1, 0x04<<2, rd, rs1, rs2)
}
func encodeFSGNJXS(rd, rs1, rs2 uint32) uint32 {
	return encodeR(opOPFP, 0x2, 0x04<<2, rd, rs1, rs2)
}
func encodeFMINS(rd, rs1, rs2 uint32) uint32 {
	return encodeR(opOPFP, 0x0, 0x05<<2, rd, rs1, rs2)
}
func encodeFMAXS(rd, rs1, rs2 uint32) uint32 {
	return encodeR(opOPFP, 0x1, 0x05<<2, rd, rs1, rs2)
}
func encodeFCVTWS(rd, rs1 uint32) uint32  { return encodeR(opOPFP, 0, 0x18<<2, rd, rs1, 0) }
func encodeFCVTWUS(rd, rs1 uint32) uint32 { return encodeR(opOPFP, 0, 0x18<<2, rd, rs1, 1) }
func encodeFCVTSW(rd, rs1 uint32) uint32  { return encodeR(opOPFP, 0, 0x1A<<2, rd, rs1, 0) }
func encodeFCVTSWU(rd, rs1 uint32) uint32 { return encodeR(opOPFP, 0, 0x1A<<2, rd, rs1, 1) }
func encodeFMVXW(rd, rs1 uint32) uint32   { return encodeR(opOPFP, 0x0, 0x1C<<2, rd, rs1, 0) }
func encodeFCLASSS(rd, rs1 uint32) uint32 { return encodeR(opOPFP, 0x1, 0x1C<<2, rd, rs1, 0) }
func encodeFMVWX(rd, rs1 uint32) uint32   { return encodeR(opOPFP, 0x0, 0x1E<<2, rd, rs1, 0) }
func encodeFEQS(rd, rs1, rs2 uint32) uint32 {
	return encodeR(opOPFP, 0x2, 0x14<<2, rd, rs1, rs2)
}
func encodeFLTS(rd, rs1, rs2 uint32) uint32 {
	return encodeR(opOPFP, 0x1, 0x14<<2, rd, rs1, rs2)
}
func encodeFLES(rd, rs1, rs2 uint32) uint32 {
	return encodeR(opOPFP, 0x0, 0x14<<2, rd, rs1, rs2)
}

func encodeFMADDS(rd, rs1, rs2, rs3 uint32) uint32 { return encodeR4(opMADD, 0, rd, rs1, rs2, rs3) }
func encodeFMSUBS(rd, rs1, rs2, rs3 uint32) uint32 { return encodeR4(opMSUB, 0, rd, rs1, rs2, rs3) }
func encodeFNMSUBS(rd, rs1, rs2, rs3 uint32) uint32 {
	return encodeR4(opNMSUB, 0, rd, rs1, rs2, rs3)
}
func encodeFNMADDS(rd, rs1, rs2, rs3 uint32) uint32 {
	return encodeR4(opNMADD, 0, rd, rs1, rs2, rs3)
}
