// pulsewidth implements the pulse-distance decoder used by most consumer IR
// remotes: a long idle gap, a header, then 32 bits sent MSB first where the
// distance between falling edges encodes each bit.
//
// The decoder only ever sees the number of millisecond ticks between
// consecutive falling edges:
//
//	edge 1       gap >= 50 ticks     sync; counter = -2, pattern = 0
//	edge 2       header              ignored (counter -1)
//	edges 3..34  data bits 0..31     width >= 2 is a one
//	edge 35      stop                frame complete; counter = 0
//
// A gap of 50 ticks or more restarts capture wherever it appears, so a
// garbled or truncated frame is simply never reported.
package pulsewidth

import (
	"time"

	"github.com/sparques/ircapture"
)

// The widths a typical NEC-style remote produces at 1ms resolution.
const (
	HeaderWidth ircapture.PulseWidth = 13 // 9ms mark + 4.5ms space
	ZeroWidth   ircapture.PulseWidth = 1  // 1.125ms bit period
	OneWidth    ircapture.PulseWidth = 2  // 2.25ms bit period
	StopWidth   ircapture.PulseWidth = 1
)

// The gaps between falling edges of a NEC-style transmission. Each falls
// inside the tick window of the matching width above.
const (
	SyncGap   = 60 * time.Millisecond
	HeaderGap = 13500 * time.Microsecond
	ZeroGap   = 1125 * time.Microsecond
	OneGap    = 2250 * time.Microsecond
	StopGap   = ZeroGap
)

const (
	syncCounter     = -2
	completeCounter = ircapture.FrameBits
)

type StateMachine struct {
	CmdHandler func(ircapture.Code)

	// RequireResync ignores every edge following a completed frame until
	// the next long gap. When false, an edge after the stop edge starts
	// accumulating into the previous pattern, as the classic 8051 decoder
	// does.
	RequireResync bool

	counter int
	pattern uint32
	waiting bool
}

func NewStateMachine(cmdHandler func(ircapture.Code)) *StateMachine {
	return &StateMachine{CmdHandler: cmdHandler}
}

// Step advances the machine by one edge that arrived width ticks after the
// previous one. It returns the code on the edge that completes a frame.
func (sm *StateMachine) Step(width ircapture.PulseWidth) (ircapture.Code, bool) {
	if sm.waiting && !width.IsSync() {
		return 0, false
	}

	sm.counter++

	switch {
	case width.IsSync():
		sm.counter = syncCounter
		sm.pattern = 0
		sm.waiting = false
	case sm.counter >= 0 && sm.counter < completeCounter:
		if width >= ircapture.MarkWidth {
			sm.pattern |= 1 << (ircapture.FrameBits - 1 - sm.counter)
		}
	case sm.counter >= completeCounter:
		sm.counter = 0
		sm.waiting = sm.RequireResync
		return ircapture.Code(sm.pattern), true
	}

	return 0, false
}

// HandleWidth steps the machine and passes completed codes to CmdHandler.
func (sm *StateMachine) HandleWidth(width ircapture.PulseWidth) {
	code, ok := sm.Step(width)
	if ok && sm.CmdHandler != nil {
		sm.CmdHandler(code)
	}
}

// Reset returns the machine to its power-on state.
func (sm *StateMachine) Reset() {
	sm.counter = 0
	sm.pattern = 0
	sm.waiting = false
}

// Counter returns the position within the current frame.
func (sm *StateMachine) Counter() int {
	return sm.counter
}

// Pattern returns the bits accumulated so far.
func (sm *StateMachine) Pattern() uint32 {
	return sm.pattern
}

// Frame is a code that can be marshalled into the widths a receiver would
// measure for it.
type Frame ircapture.Code

// MarshalFrame implements ircapture.FrameMarshaller.
func (f Frame) MarshalFrame() []ircapture.PulseWidth {
	return Encode(ircapture.Code(f))
}

// FrameTimings implements ircapture.FrameTimer.
func (f Frame) FrameTimings() []time.Duration {
	return Timings(ircapture.Code(f))
}

// Encode returns the edge-to-edge widths of one complete transmission of
// code, starting with the idle gap before it.
func Encode(code ircapture.Code) []ircapture.PulseWidth {
	out := make([]ircapture.PulseWidth, 0, ircapture.FrameBits+3)

	out = append(out, ircapture.SyncWidth, HeaderWidth)
	for bit := ircapture.FrameBits - 1; bit >= 0; bit-- {
		if (code>>bit)&1 == 1 {
			out = append(out, OneWidth)
		} else {
			out = append(out, ZeroWidth)
		}
	}
	out = append(out, StopWidth)

	return out
}

// Timings is Encode in real time: the gaps a remote leaves between the
// edges of code.
func Timings(code ircapture.Code) []time.Duration {
	out := make([]time.Duration, 0, ircapture.FrameBits+3)

	out = append(out, SyncGap, HeaderGap)
	for bit := ircapture.FrameBits - 1; bit >= 0; bit-- {
		if (code>>bit)&1 == 1 {
			out = append(out, OneGap)
		} else {
			out = append(out, ZeroGap)
		}
	}
	out = append(out, StopGap)

	return out
}
