package ircapture

import (
	"fmt"
	"time"
)

const (
	// Freq38Khz is the most commonly used frequency for IR remotes
	Freq38Khz = 38000

	// TickPeriod is the resolution of a PulseTimer.
	TickPeriod = time.Millisecond

	// SyncWidth is the gap, in ticks, that marks the start of a frame. Pulse
	// widths saturate here.
	SyncWidth PulseWidth = 50

	// MarkWidth is the shortest pulse width, in ticks, read as a logic one.
	MarkWidth PulseWidth = 2

	// FrameBits is the number of data pulses in a frame.
	FrameBits = 32
)

// PulseWidth is the number of whole ticks between two falling edges,
// clamped to [0, SyncWidth].
type PulseWidth uint8

// ClampWidth converts a measured gap into a PulseWidth, rounding down to
// whole ticks.
func ClampWidth(d time.Duration) PulseWidth {
	if d <= 0 {
		return 0
	}
	ticks := d / TickPeriod
	if ticks >= time.Duration(SyncWidth) {
		return SyncWidth
	}
	return PulseWidth(ticks)
}

// IsSync reports whether w is a long gap.
func (w PulseWidth) IsSync() bool {
	return w >= SyncWidth
}

// Code is a decoded 32-bit command code.
type Code uint32

func (c Code) String() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// FrameMarshaller defines an interface for marshalling data to the slice of
// pulse widths a receiver would measure for it.
type FrameMarshaller interface {
	MarshalFrame() []PulseWidth
}

// FrameTimer is implemented by frames that know the gaps between their
// edges more precisely than whole ticks.
type FrameTimer interface {
	FrameTimings() []time.Duration
}

// NominalGap is the gap to leave before an edge that should measure as w:
// the middle of the tick window ClampWidth maps to w.
func NominalGap(w PulseWidth) time.Duration {
	return time.Duration(w)*TickPeriod + TickPeriod/2
}

// FrameGaps returns the gaps before each edge of fm: its own timings when
// it is a FrameTimer, the nominal gap of each width otherwise.
func FrameGaps(fm FrameMarshaller) []time.Duration {
	if ft, ok := fm.(FrameTimer); ok {
		return ft.FrameTimings()
	}
	widths := fm.MarshalFrame()
	gaps := make([]time.Duration, len(widths))
	for i, w := range widths {
		gaps[i] = NominalGap(w)
	}
	return gaps
}

// Decoder turns one pulse width per edge into completed codes.
type Decoder interface {
	Step(PulseWidth) (Code, bool)
}

// PushResult describes where a pushed code landed in a CodeStore.
type PushResult struct {
	// Index is the slot the new code now occupies.
	Index int
	// Evicted is set when the store was full and its oldest code dropped.
	Evicted bool
	// Dropped is the evicted code; zero unless Evicted.
	Dropped Code
}
