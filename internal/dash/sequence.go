package dash

import "sync/atomic"

// taskSeq enforces last-issued-wins ordering for one polling task. The
// scheduler issues a sequence number per call from its tick goroutine; the
// model applies a completion only if its sequence is higher than the last
// applied one, so a slow stale response can never overwrite fresher state.
type taskSeq struct {
	issued  atomic.Uint64
	applied atomic.Uint64
}

// Issue reserves the next sequence number for an outgoing call.
func (t *taskSeq) Issue() uint64 {
	return t.issued.Add(1)
}

// Apply reports whether a completion with the given sequence may be applied,
// and records it as the newest applied call when it may. A result is applied
// for both success and failure outcomes: a stale failure must not flip an
// indicator that a fresher success already restored.
func (t *taskSeq) Apply(seq uint64) bool {
	for {
		cur := t.applied.Load()
		if seq <= cur {
			return false
		}
		if t.applied.CompareAndSwap(cur, seq) {
			return true
		}
	}
}

// Issued returns the most recently issued sequence number.
func (t *taskSeq) Issued() uint64 {
	return t.issued.Load()
}
