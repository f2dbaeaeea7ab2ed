package ircapture

import "time"

// Receiver owns the interrupt-side state of an IR receiver: the pulse
// timer, the frame decoder and the hand-off latch. An edge interrupt either
// calls OnEdge with the measured gap, or pairs OnFallingEdge with a tick
// source that restarts its period at every edge. Take is for the main loop.
type Receiver struct {
	timer   PulseTimer
	decoder Decoder
	latch   CodeLatch
}

func NewReceiver(dec Decoder) *Receiver {
	return &Receiver{decoder: dec}
}

// OnTick must be called once per TickPeriod.
func (r *Receiver) OnTick() {
	r.timer.Tick()
}

// OnFallingEdge must be called once per falling edge on the receiver line.
// It is not reentrant.
func (r *Receiver) OnFallingEdge() {
	r.step(r.timer.SampleAndReset())
}

// OnEdge is OnFallingEdge for a handler that timestamps its edges: gap is
// the time since the previous edge, rounded down to whole ticks. The tick
// count restarts either way. It is not reentrant.
func (r *Receiver) OnEdge(gap time.Duration) {
	r.timer.SampleAndReset()
	r.step(ClampWidth(gap))
}

func (r *Receiver) step(width PulseWidth) {
	if code, ok := r.decoder.Step(width); ok {
		r.latch.Publish(code)
	}
}

// Take implements CodeSource.
func (r *Receiver) Take() (Code, bool) {
	return r.latch.Take()
}

// Elapsed returns the ticks counted since the last edge.
func (r *Receiver) Elapsed() PulseWidth {
	return r.timer.Elapsed()
}

// Superseded returns how many completed codes were overwritten before the
// main loop took them.
func (r *Receiver) Superseded() uint32 {
	return r.latch.Superseded()
}
