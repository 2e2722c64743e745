// Package jit is the optional alternative execution backend SPEC_FULL.md
// §4.9 describes: a per-basic-block cache that, once a region of straight
// -line code has been seen, replays it without re-fetching and
// re-decoding each instruction on every pass.
//
// The upstream reference this was distilled from emits literal x86-64
// machine code into an executable page. That is not reproducible here
// without running the Go toolchain to verify it, is non-portable across
// host architectures, and needs mmap/page-protection primitives outside
// pure Go — so this backend is threaded code instead: "translating" a
// block decodes forward to (and including) its first control-transfer
// instruction and captures, per instruction, the exact same StepFunc the
// interpreter's own dispatch table would have run, paired with the
// already-fetched instruction word. Running a cached block calls each of
// those closures in turn, exactly as hart.Step's own loop would, which is
// what keeps this backend observationally identical to the interpreter:
// every "native" instruction here is a real interpreter step, just cached
// instead of re-fetched.
package jit

import "github.com/arhart/rv32hart/hart"

// Block is one cached translation: every instruction from startPC up to
// and including the first control-transfer instruction, together with
// the dispatch-table handler each instruction word already resolved to.
type Block struct {
	StartPC uint32
	Instrs  []uint32
	Ops     []hart.StepFunc
}

// Cache maps a block's starting PC to its translation. It implements
// hart.BlockRunner, so a *Cache is passed to hart.New via hart.WithJIT
// without the hart package ever importing this one.
type Cache struct {
	blocks map[uint32]*Block
}

// New returns an empty block cache.
func New() *Cache {
	return &Cache{blocks: make(map[uint32]*Block)}
}

// Reset discards every cached block. Guest code is never assumed
// self-modifying, so the only invalidation path is a full cache clear —
// called by (*hart.Hart).Reset.
func (c *Cache) Reset() {
	c.blocks = make(map[uint32]*Block)
}

// Run executes the block starting at h.PC(), translating it first on a
// cache miss, and reports whether it retired at least one instruction.
// It mirrors hart.Step's own per-instruction accounting exactly: each
// closure call counts one cycle, and execution stops at the first
// closure that returns false (non-sequential control transfer) or that
// leaves the exception latch set, just as the interpreter's own loop
// would between fetches.
func (c *Cache) Run(h *hart.Hart) bool {
	pc := h.PC()
	blk, ok := c.blocks[pc]
	if !ok {
		blk = c.translate(h, pc)
		c.blocks[pc] = blk
	}
	return c.execute(h, blk)
}

// translate decodes forward from pc, fetching and resolving one
// instruction at a time, until it reaches (inclusive) the first
// control-transfer instruction as hart.IsControlTransfer defines it. An
// instruction whose dispatch slot the enabled extension set never wired
// does not end the block: it is captured like any other, and translation
// keeps fetching past it. When the block runs, that instruction's handler
// panics exactly as the interpreter's would.
func (c *Cache) translate(h *hart.Hart, startPC uint32) *Block {
	blk := &Block{StartPC: startPC}
	addr := startPC

	for {
		inst := h.FetchAt(addr)
		blk.Instrs = append(blk.Instrs, inst)
		blk.Ops = append(blk.Ops, h.HandlerFor(inst))

		if hart.IsControlTransfer(inst) {
			return blk
		}
		addr += 4
	}
}

// execute replays a block's cached closures in order. It re-validates
// nothing about memory contents: self-modifying guest code is out of
// scope (see SPEC_FULL.md §9), so a cached block is trusted to still
// match what mem_ifetch would return.
func (c *Cache) execute(h *hart.Hart, blk *Block) bool {
	ran := false
	for i, op := range blk.Ops {
		op(h, blk.Instrs[i])
		ran = true
		h.AdvanceCycle()
		if h.Exception() != hart.ExceptionNone {
			break
		}
	}
	return ran
}
