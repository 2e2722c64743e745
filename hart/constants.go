package hart

// ============================================================================
// RV32 Instruction Encoding Architecture Constants
// ============================================================================
// These constants define the RISC-V instruction encoding format as specified
// by the RV32 base ISA and the extensions this package supports. They are
// shared between the decoder and every opcode-group handler.

// Instruction field bit positions (shift amounts).
// These define where fields appear in the 32-bit instruction encoding.
const (
	opcodeFieldShift = 0  // Bits 6-0: full 7-bit opcode field
	opGroupShift     = 2  // Bits 6-2: 5-bit dispatch index
	rdShift          = 7  // Bits 11-7: destination register
	funct3Shift      = 12 // Bits 14-12: funct3
	rs1Shift         = 15 // Bits 19-15: first source register
	rs2Shift         = 20 // Bits 24-20: second source register
	funct7Shift      = 25 // Bits 31-25: funct7
	rs3Shift         = 27 // Bits 31-27: third source register (R4-type)
	fmtShift         = 25 // Bits 26-25: float format field (R4-type)
)

// Field widths, expressed as masks applied after shifting a field down to
// bit 0.
const (
	mask2Bit  = 0x3
	mask3Bit  = 0x7
	mask5Bit  = 0x1F
	mask7Bit  = 0x7F
	mask12Bit = 0xFFF
)

// Dispatch table indices: bits [6:2] of the instruction word, the same
// fixed 32-slot layout the RISC-V base ISA's opcode map uses.
const (
	opLoad     = 0b00000
	opLoadFP   = 0b00001
	opMiscMem  = 0b00011
	opOpImm    = 0b00100
	opAUIPC    = 0b00101
	opStore    = 0b01000
	opStoreFP  = 0b01001
	opAMO      = 0b01011
	opOp       = 0b01100
	opLUI      = 0b01101
	opMADD     = 0b10000
	opMSUB     = 0b10001
	opNMSUB    = 0b10010
	opNMADD    = 0b10011
	opOpFP     = 0b10100
	opBranch   = 0b11000
	opJALR     = 0b11001
	opJAL      = 0b11011
	opSystem   = 0b11100
	dispatchSz = 32
)

// Zicsr CSR addresses. csrRead implements mstatus, cycle, cycleh and
// fcsr; fflags and frm are named here but read as unknown CSRs.
const (
	csrFFlags  = 0x001
	csrFrm     = 0x002
	csrFcsr    = 0x003
	csrMstatus = 0x300
	csrCycle   = 0xC00
	csrCycleH  = 0xC80
)

// Register conventions.
const (
	regZero = 0
	regSP   = 2

	// defaultStackTop is the implementation-defined default value loaded
	// into X[sp] on reset, chosen to sit near the top of a 256MiB address
	// space so a program's stack can grow downward without extra setup.
	defaultStackTop = 0x0FFFFFF0
)
