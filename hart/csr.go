package hart

// csrWritable reports whether index identifies a CSR this package
// permits writes to. mstatus is the only one; cycle/cycleh/fcsr are
// read-only, matching spec.md §4.4.
func csrWritable(index uint32) bool {
	return index == csrMstatus
}

// csrRead returns the current value of the CSR identified by index, and
// whether index names a CSR this package implements at all. An unknown
// index reads as zero, per spec.md §4.4.
func (h *Hart) csrRead(index uint32) (uint32, bool) {
	switch index {
	case csrMstatus:
		return h.mstatus, true
	case csrCycle:
		return uint32(h.cycle), true
	case csrCycleH:
		return uint32(h.cycle >> 32), true
	case csrFcsr:
		return 0, true
	default:
		return 0, false
	}
}

// csrWrite stores v into the CSR identified by index, if it is both known
// and writable. Writes to an unknown or read-only CSR are silently
// ignored, per spec.md §4.4 — the caller is responsible for having
// already snapshotted the pre-write value into X[rd].
func (h *Hart) csrWrite(index uint32, v uint32) {
	if index == csrMstatus {
		h.mstatus = v
	}
}

// csrReadModifyWrite implements the shared read/snapshot/gated-write
// shape behind CSRRW, CSRRS, and CSRRC (and their immediate-operand
// variants): snapshot the old value into X[rd] unless rd == 0, then —
// only if the CSR is both known and writable — apply op to compute the
// new value and store it. An unknown CSR produces zero in X[rd] and
// performs no write, regardless of op.
func (h *Hart) csrReadModifyWrite(index uint32, rd uint32, writeOperand uint32, op func(old, operand uint32) uint32) {
	old, known := h.csrRead(index)
	h.setX(rd, old)
	if known && csrWritable(index) {
		h.csrWrite(index, op(old, writeOperand))
	}
}

func csrOpWrite(_, operand uint32) uint32 { return operand }
func csrOpSet(old, operand uint32) uint32 { return old | operand }
func csrOpClear(old, operand uint32) uint32 {
	return old &^ operand
}
