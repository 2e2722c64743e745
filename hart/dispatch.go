package hart

import (
	"context"
	"fmt"
)

// buildTable wires the fixed 32-entry dispatch table once, at
// construction. Every slot starts out as a handler that panics naming the
// slot and the instruction word that reached it — the "programming error
// at compile-time configuration level" spec.md §4.2/§7 describes — and is
// then overwritten for whichever opcode groups the enabled extension set
// actually maps. RV32I's own groups (load/store/op-imm/op/lui/auipc/
// branch/jal/jalr/system) are unconditional: they exist with or without
// any optional extension.
func (h *Hart) buildTable() {
	for g := range h.table {
		group := uint32(g)
		h.table[g] = func(h *Hart, inst uint32) bool {
			panic(fmt.Sprintf("hart: unreachable dispatch slot %05b (inst=0x%08x, pc=0x%08x)", group, inst, h.pc))
		}
	}

	h.table[opLoad] = opLoadHandler
	h.table[opStore] = opStoreHandler
	h.table[opOpImm] = opOpImmHandler
	h.table[opOp] = opOpHandler
	h.table[opLUI] = opLUIHandler
	h.table[opAUIPC] = opAUIPCHandler
	h.table[opBranch] = opBranchHandler
	h.table[opJAL] = opJALHandler
	h.table[opJALR] = opJALRHandler
	h.table[opSystem] = opSystemHandler

	if h.hasZifencei {
		h.table[opMiscMem] = opMiscMemHandler
	}
	if h.hasA {
		h.table[opAMO] = opAMOHandler
	}
	if h.hasF {
		h.table[opLoadFP] = opLoadFPHandler
		h.table[opStoreFP] = opStoreFPHandler
		h.table[opOpFP] = opOpFPHandler
		h.table[opMADD] = opFMAHandler(fmaKindMADD)
		h.table[opMSUB] = opFMAHandler(fmaKindMSUB)
		h.table[opNMSUB] = opFMAHandler(fmaKindNMSUB)
		h.table[opNMADD] = opFMAHandler(fmaKindNMADD)
	}
}

// Step runs up to cycles retired instructions, stopping early if the
// architectural exception latch becomes set or ctx is canceled. The
// context check is an ambient liveness affordance (SPEC_FULL.md §5), not
// part of the architectural contract: a non-nil return here is always a
// context error, never an architectural exception — inspect Exception()
// for that.
//
// Cycle counting happens exactly once per retired instruction regardless
// of control-flow outcome, whether the instruction ran through the
// interpreter or through a JIT-executed block: the JIT's own Run
// increments the same counter per instruction it retires (see the jit
// package), so the outer loop here simply re-checks its condition after
// a successful JIT run instead of counting again itself.
func (h *Hart) Step(ctx context.Context, cycles uint64) error {
	target := h.cycle + cycles
	for h.cycle < target && h.exception == ExceptionNone {
		if err := ctx.Err(); err != nil {
			return err
		}
		if h.jit != nil && h.jit.Run(h) {
			continue
		}
		inst := h.io.MemIfetch(h, h.pc)
		handler := h.table[opGroup(inst)]
		handler(h, inst)
		h.cycle++
	}
	return nil
}
