package hart

// IO is the set of host-provided callbacks a Hart invokes for everything
// outside its own architectural state: instruction fetch, memory access at
// byte/half/word granularity, and the two synchronous trap instructions
// (ECALL/EBREAK). It is a struct of named function fields rather than an
// interface, matching the "immutable record... captured at construction"
// and "copied into the hart at construction (value semantics)" wording the
// core's data model and concurrency model both use.
//
// Every field the configured extension set can reach must be non-nil;
// New panics if it finds a required field missing (see New in state.go).
type IO struct {
	MemIfetch func(h *Hart, pc uint32) uint32
	MemReadW  func(h *Hart, addr uint32) uint32
	MemReadS  func(h *Hart, addr uint32) uint16
	MemReadB  func(h *Hart, addr uint32) uint8
	MemWriteW func(h *Hart, addr uint32, v uint32)
	MemWriteS func(h *Hart, addr uint32, v uint16)
	MemWriteB func(h *Hart, addr uint32, v uint8)
	OnEcall   func(h *Hart, pc uint32, inst uint32)
	OnEbreak  func(h *Hart, pc uint32, inst uint32)
}
