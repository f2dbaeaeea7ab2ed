package ircapture

import "sync/atomic"

// PulseTimer counts ticks between edges. Tick is driven by a periodic
// source, SampleAndReset by the edge handler; both may run concurrently.
type PulseTimer struct {
	ticks atomic.Uint32
}

// Tick advances the count by one, saturating at SyncWidth.
func (pt *PulseTimer) Tick() {
	for {
		n := pt.ticks.Load()
		if n >= uint32(SyncWidth) {
			return
		}
		if pt.ticks.CompareAndSwap(n, n+1) {
			return
		}
	}
}

// SampleAndReset returns the ticks counted since the last edge and starts a
// new count.
func (pt *PulseTimer) SampleAndReset() PulseWidth {
	return PulseWidth(pt.ticks.Swap(0))
}

// Elapsed returns the current count without resetting it.
func (pt *PulseTimer) Elapsed() PulseWidth {
	return PulseWidth(pt.ticks.Load())
}
