package hart

import "fmt"

// StepFunc is the signature shared by every dispatch-table entry and, in
// turn, by every per-instruction closure the JIT backend caches (see the
// BlockRunner interface below). It decodes whatever fields it needs from
// inst, performs the instruction's effect on h, and reports whether
// control fell through sequentially (true, PC already advanced by 4) or
// non-sequentially
// (false, PC already set to the new target).
type StepFunc func(h *Hart, inst uint32) bool

// BlockRunner is the hart package's side of the optional JIT backend
// contract. A *jit.Cache (a separate package, to keep the threaded-code
// backend out of the core) implements this interface; the hart package
// never imports jit, avoiding an import cycle, since jit imports hart for
// StepFunc, HandlerFor, and FetchAt.
type BlockRunner interface {
	// Run attempts to execute a cached or newly translated block starting
	// at h.PC(). It reports whether it advanced the hart at all; false
	// means the caller must fall back to a single interpreted step.
	Run(h *Hart) bool
	// Reset discards every cached block. Called on (*Hart).Reset, since
	// self-modifying guest code is not supported and the cache is only
	// ever invalidated wholesale.
	Reset()
}

// Hart is one RV32 execution context: integer and (optionally) floating
// registers, program counter, the CSR subset this package implements, the
// architectural exception latch, and the host I/O contract captured at
// construction. It owns its own state exclusively; the host owns memory
// and reaches it only through IO.
type Hart struct {
	X  [32]uint32
	F  [32]float32
	pc uint32

	mstatus uint32
	cycle   uint64

	exception Exception

	io       IO
	userdata any

	table [dispatchSz]StepFunc

	hasM, hasA, hasF, hasZicsr, hasZifencei bool

	jit BlockRunner
}

// Option configures the extension set (and optional JIT backend) a Hart
// is built with, the Go realization of spec.md's compile-time
// configuration surface (see §4.2 and §6 of SPEC_FULL.md): a disabled
// extension leaves its dispatch slots routed to a handler that panics
// identifying the missing slot, rather than reaching an interpreter
// branch that was never compiled in.
type Option func(*Hart)

// WithM enables the RV32M integer multiply/divide extension.
func WithM() Option { return func(h *Hart) { h.hasM = true } }

// WithA enables the RV32A atomic memory operation extension.
func WithA() Option { return func(h *Hart) { h.hasA = true } }

// WithF enables the RV32F single-precision floating-point extension.
func WithF() Option { return func(h *Hart) { h.hasF = true } }

// WithZicsr enables the control-and-status register instructions.
func WithZicsr() Option { return func(h *Hart) { h.hasZicsr = true } }

// WithZifencei enables FENCE/FENCE.I as accepted no-ops.
func WithZifencei() Option { return func(h *Hart) { h.hasZifencei = true } }

// WithJIT installs a block cache as an alternative execution backend. r
// is typically a *jit.Cache; it is accepted here as BlockRunner to avoid
// an import cycle between hart and jit.
func WithJIT(r BlockRunner) Option {
	return func(h *Hart) { h.jit = r }
}

// New constructs a Hart with the given host I/O contract, forwards
// userdata unchanged to every callback, applies opts, and then builds the
// fixed 32-slot dispatch table once. It panics if io is missing a
// callback the configured extension set can actually reach — construction
// with an incomplete I/O record is the "null I/O record" programming
// error spec.md §7 calls out, not a recoverable error.
func New(io IO, userdata any, opts ...Option) *Hart {
	h := &Hart{io: io, userdata: userdata}
	for _, opt := range opts {
		opt(h)
	}
	h.requireIO()
	h.buildTable()
	return h
}

func (h *Hart) requireIO() {
	missing := func(name string, present bool) {
		if !present {
			panic(fmt.Sprintf("hart: construction requires IO.%s", name))
		}
	}
	missing("MemIfetch", h.io.MemIfetch != nil)
	missing("MemReadW", h.io.MemReadW != nil)
	missing("MemReadS", h.io.MemReadS != nil)
	missing("MemReadB", h.io.MemReadB != nil)
	missing("MemWriteW", h.io.MemWriteW != nil)
	missing("MemWriteS", h.io.MemWriteS != nil)
	missing("MemWriteB", h.io.MemWriteB != nil)
	missing("OnEcall", h.io.OnEcall != nil)
	missing("OnEbreak", h.io.OnEbreak != nil)
}

// Reset reinitializes architectural state: X cleared, X[sp] set to the
// default stack top, PC set to pc, exception cleared, CSRs cleared, and
// (if a JIT backend is installed) its block cache discarded.
func (h *Hart) Reset(pc uint32) {
	for i := range h.X {
		h.X[i] = 0
	}
	for i := range h.F {
		h.F[i] = 0
	}
	h.X[regSP] = defaultStackTop
	h.pc = pc
	h.exception = ExceptionNone
	h.mstatus = 0
	h.cycle = 0
	if h.jit != nil {
		h.jit.Reset()
	}
}

// Delete is the no-op counterpart to New. A Hart holds nothing but Go
// memory, which the garbage collector reclaims once it is unreferenced.
func (h *Hart) Delete() {}

// setX writes X[i], enforcing the rule that X[0] always reads as zero.
func (h *Hart) setX(i uint32, v uint32) {
	if i == regZero {
		return
	}
	h.X[i] = v
}

// Reg returns the current value of integer register i (0-31).
func (h *Hart) Reg(i int) uint32 { return h.X[i] }

// SetReg sets integer register i (0-31), enforcing the X[0]-stays-zero
// rule. Intended for test and debug harnesses, not handler code (handlers
// use the unexported setX so the rule can never be forgotten inline).
func (h *Hart) SetReg(i int, v uint32) { h.setX(uint32(i), v) }

// FReg returns the current value of floating register i (0-31).
func (h *Hart) FReg(i int) float32 { return h.F[i] }

// SetFReg sets floating register i (0-31). No zero-register rule applies.
func (h *Hart) SetFReg(i int, v float32) { h.F[i] = v }

// PC returns the current program counter.
func (h *Hart) PC() uint32 { return h.pc }

// SetPC sets the program counter directly. Exposed for test/debug
// harnesses; ordinary execution changes PC only through a handler's own
// PC update.
func (h *Hart) SetPC(pc uint32) { h.pc = pc }

// Cycle returns the retired-instruction counter (the `cycle` CSR's value).
func (h *Hart) Cycle() uint64 { return h.cycle }

// AdvanceCycle increments the retired-instruction counter by one. Exposed
// for the JIT backend, which retires more than one instruction per call
// into the run loop and must account for each exactly like hart.Step
// does for an interpreted instruction.
func (h *Hart) AdvanceCycle() { h.cycle++ }

// Exception returns the architectural exception latch.
func (h *Hart) Exception() Exception { return h.exception }

// UserData returns the opaque handle supplied at construction.
func (h *Hart) UserData() any { return h.userdata }

// raise sets the exception latch. Never overwrites an already-set latch;
// the run loop stops at the first exception and nothing in this package
// clears it except Reset.
func (h *Hart) raise(e Exception) {
	if h.exception == ExceptionNone {
		h.exception = e
	}
}

// FetchAt invokes the host's instruction-fetch callback. Exported so the
// JIT backend (a separate package) can decode forward while building a
// block without reaching into unexported fields.
func (h *Hart) FetchAt(pc uint32) uint32 {
	return h.io.MemIfetch(h, pc)
}

// HandlerFor returns the dispatch-table slot inst routes to (bits [6:2]
// of its opcode field). It never returns nil: a slot whose extension is
// disabled holds the handler that panics when called. Exported for the
// JIT backend.
func (h *Hart) HandlerFor(inst uint32) StepFunc {
	return h.table[opGroup(inst)]
}

// IsControlTransfer reports whether inst can redirect control flow
// (branch, JAL, JALR, or a SYSTEM instruction — ECALL/EBREAK/CSR forms,
// since ECALL/EBREAK suspend at a callback and CSR forms are cheap
// enough that colocating them with the block boundary costs nothing). A
// JIT block ends at the first such instruction, inclusive, per
// SPEC_FULL.md §4.9.
func IsControlTransfer(inst uint32) bool {
	switch opGroup(inst) {
	case opBranch, opJALR, opJAL, opSystem:
		return true
	default:
		return false
	}
}
