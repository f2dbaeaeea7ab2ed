package ircapture

import "sync/atomic"

const latchPresent = uint64(1) << 32

// CodeLatch hands completed codes from the edge handler to the main loop.
// It holds at most one code; the code and a presence flag share a single
// 64-bit word so a reader can never observe half of a code.
type CodeLatch struct {
	slot       atomic.Uint64
	superseded atomic.Uint32
}

// Publish stores code for the next Take. If a previous code was never
// taken it is replaced and counted as superseded.
func (l *CodeLatch) Publish(code Code) {
	if l.slot.Swap(latchPresent|uint64(code))&latchPresent != 0 {
		l.superseded.Add(1)
	}
}

// Take removes and returns the pending code, if any.
func (l *CodeLatch) Take() (Code, bool) {
	v := l.slot.Swap(0)
	if v&latchPresent == 0 {
		return 0, false
	}
	return Code(uint32(v)), true
}

// Superseded returns how many codes were replaced before being taken.
func (l *CodeLatch) Superseded() uint32 {
	return l.superseded.Load()
}
