// Package hostmem is a reference host memory implementation: a single
// flat byte slice satisfying the hart.IO memory-callback contract. It
// exists purely so the core is runnable and testable end to end (the
// cmd/rv32run entrypoint and the hart package's own end-to-end tests use
// it); it is not part of the core's contract and any embedder is free to
// supply a different hart.IO backed by whatever memory model it wants.
//
// Collapsed to one flat segment rather than the teacher's multi-segment,
// permission-bit design, since privileged mode / virtual memory are
// explicit non-goals here and there is no separate code/data/heap/stack
// split to enforce.
package hostmem

import (
	"fmt"

	"github.com/arhart/rv32hart/hart"
)

// Memory is a flat little-endian RV32 address space backed by a single
// byte slice.
type Memory struct {
	bytes []byte
}

// New allocates a Memory of the given size in bytes.
func New(size uint32) *Memory {
	return &Memory{bytes: make([]byte, size)}
}

// LoadBytes copies data into the address space starting at addr. It
// returns an error rather than panicking if the write would run past the
// end of the address space, in the same fmt.Errorf-wrapped idiom the
// rest of this package uses for every bounds failure.
func (m *Memory) LoadBytes(addr uint32, data []byte) error {
	end := uint64(addr) + uint64(len(data))
	if end > uint64(len(m.bytes)) {
		return fmt.Errorf("hostmem: load of %d bytes at 0x%08x exceeds %d-byte address space: %w", len(data), addr, len(m.bytes), errOutOfRange)
	}
	copy(m.bytes[addr:], data)
	return nil
}

var errOutOfRange = fmt.Errorf("address out of range")

func (m *Memory) checkRange(addr uint32, width uint32) {
	end := uint64(addr) + uint64(width)
	if end > uint64(len(m.bytes)) {
		panic(fmt.Errorf("hostmem: access of %d bytes at 0x%08x exceeds %d-byte address space: %w", width, addr, len(m.bytes), errOutOfRange))
	}
}

// ReadWord, ReadHalf, and ReadByte read little-endian values at addr.
// Misaligned accesses are not trapped here — per spec.md §6, alignment is
// the host's concern, and this reference host chooses not to enforce it
// for data accesses (only control-flow targets are architecturally
// required to be aligned).
func (m *Memory) ReadWord(addr uint32) uint32 {
	m.checkRange(addr, 4)
	return uint32(m.bytes[addr]) | uint32(m.bytes[addr+1])<<8 | uint32(m.bytes[addr+2])<<16 | uint32(m.bytes[addr+3])<<24
}

func (m *Memory) ReadHalf(addr uint32) uint16 {
	m.checkRange(addr, 2)
	return uint16(m.bytes[addr]) | uint16(m.bytes[addr+1])<<8
}

func (m *Memory) ReadByte(addr uint32) uint8 {
	m.checkRange(addr, 1)
	return m.bytes[addr]
}

// WriteWord, WriteHalf, and WriteByte write little-endian values at addr.
func (m *Memory) WriteWord(addr uint32, v uint32) {
	m.checkRange(addr, 4)
	m.bytes[addr] = byte(v)
	m.bytes[addr+1] = byte(v >> 8)
	m.bytes[addr+2] = byte(v >> 16)
	m.bytes[addr+3] = byte(v >> 24)
}

func (m *Memory) WriteHalf(addr uint32, v uint16) {
	m.checkRange(addr, 2)
	m.bytes[addr] = byte(v)
	m.bytes[addr+1] = byte(v >> 8)
}

func (m *Memory) WriteByte(addr uint32, v uint8) {
	m.checkRange(addr, 1)
	m.bytes[addr] = v
}

// NewIO builds a hart.IO whose memory callbacks are backed by m. ECALL
// and EBREAK are handed to onEcall/onEbreak unchanged: this package
// supplies memory only — syscall emulation on top of ECALL is an
// explicit out-of-scope external collaborator per spec.md §1, left to
// whatever host constructs the hart (cmd/rv32run's minimal convention, or
// a test's own hook).
func NewIO(m *Memory, onEcall, onEbreak func(h *hart.Hart, pc, inst uint32)) hart.IO {
	return hart.IO{
		MemIfetch: func(_ *hart.Hart, pc uint32) uint32 { return m.ReadWord(pc) },
		MemReadW:  func(_ *hart.Hart, addr uint32) uint32 { return m.ReadWord(addr) },
		MemReadS:  func(_ *hart.Hart, addr uint32) uint16 { return m.ReadHalf(addr) },
		MemReadB:  func(_ *hart.Hart, addr uint32) uint8 { return m.ReadByte(addr) },
		MemWriteW: func(_ *hart.Hart, addr uint32, v uint32) { m.WriteWord(addr, v) },
		MemWriteS: func(_ *hart.Hart, addr uint32, v uint16) { m.WriteHalf(addr, v) },
		MemWriteB: func(_ *hart.Hart, addr uint32, v uint8) { m.WriteByte(addr, v) },
		OnEcall:   onEcall,
		OnEbreak:  onEbreak,
	}
}
