// Package sim drives a Receiver and Dispatcher in virtual time, standing in
// for the IR line, the tick source and the operator's button.
package sim

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sparques/ircapture"
)

var (
	// ErrBadStep is returned for a script token that cannot be parsed.
	ErrBadStep = errors.New("sim: bad script step")
)

// Line replays edges into a Receiver the way the edge interrupt does,
// timestamping each one in virtual time. A free-running tick fires at
// every whole TickPeriod, independent of where the edges fall.
type Line struct {
	rx       *ircapture.Receiver
	elapsed  time.Duration
	lastEdge time.Duration
	edges    int
}

func NewLine(rx *ircapture.Receiver) *Line {
	return &Line{rx: rx}
}

// Idle lets d pass with no edges.
func (l *Line) Idle(d time.Duration) {
	end := l.elapsed + d
	next := l.elapsed - l.elapsed%ircapture.TickPeriod + ircapture.TickPeriod
	for ; next <= end; next += ircapture.TickPeriod {
		l.rx.OnTick()
	}
	l.elapsed = end
}

// EdgeAfter produces one falling edge d after the end of the last step.
func (l *Line) EdgeAfter(d time.Duration) {
	l.Idle(d)
	l.rx.OnEdge(l.elapsed - l.lastEdge)
	l.lastEdge = l.elapsed
	l.edges++
}

// Edge produces one falling edge width ticks after the end of the last
// step.
func (l *Line) Edge(width ircapture.PulseWidth) {
	l.EdgeAfter(time.Duration(width) * ircapture.TickPeriod)
}

// Send replays a whole frame.
func (l *Line) Send(fm ircapture.FrameMarshaller) {
	for _, gap := range ircapture.FrameGaps(fm) {
		l.EdgeAfter(gap)
	}
}

// Elapsed returns the virtual time that has passed.
func (l *Line) Elapsed() time.Duration { return l.elapsed }

// Edges returns the number of edges produced.
func (l *Line) Edges() int { return l.edges }

// Button is an ircapture.Button the script presses and releases.
type Button struct {
	pressed atomic.Bool
}

func (b *Button) Press()     { b.pressed.Store(true) }
func (b *Button) Release()   { b.pressed.Store(false) }
func (b *Button) Read() bool { return b.pressed.Load() }

// Indicator is an ircapture.Indicator that remembers its state.
type Indicator struct {
	On      bool
	Toggles int
}

func (ind *Indicator) Toggle() {
	ind.On = !ind.On
	ind.Toggles++
}

type StepKind int

const (
	// StepSend transmits a full frame for Code.
	StepSend StepKind = iota
	// StepEdge produces a single edge Width ticks after the last step.
	StepEdge
	// StepIdle lets Idle pass.
	StepIdle
	// StepPress presses and releases the button.
	StepPress
)

// Step is one scripted action.
type Step struct {
	Kind  StepKind
	Code  ircapture.Code
	Width ircapture.PulseWidth
	Idle  time.Duration
}

// ParseScript parses tokens of the form
//
//	0x20DF10EF | 551489775   send a frame for the code
//	edge:N                   one edge N ticks after the previous step
//	idle:DURATION            no edges for DURATION (e.g. idle:120ms)
//	press                    press and release the button
func ParseScript(tokens []string) ([]Step, error) {
	steps := make([]Step, 0, len(tokens))
	for _, tok := range tokens {
		step, err := parseStep(strings.TrimSpace(tok))
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func parseStep(tok string) (Step, error) {
	name, arg, hasArg := strings.Cut(tok, ":")
	switch {
	case tok == "press":
		return Step{Kind: StepPress}, nil
	case hasArg && name == "edge":
		n, err := strconv.ParseUint(arg, 10, 8)
		if err != nil {
			return Step{}, fmt.Errorf("%w %q: %w", ErrBadStep, tok, err)
		}
		return Step{Kind: StepEdge, Width: ircapture.PulseWidth(min(n, uint64(ircapture.SyncWidth)))}, nil
	case hasArg && name == "idle":
		d, err := time.ParseDuration(arg)
		if err != nil {
			return Step{}, fmt.Errorf("%w %q: %w", ErrBadStep, tok, err)
		}
		return Step{Kind: StepIdle, Idle: d}, nil
	}

	code, err := ParseCode(tok)
	if err != nil {
		return Step{}, fmt.Errorf("%w %q: %w", ErrBadStep, tok, err)
	}
	return Step{Kind: StepSend, Code: code}, nil
}

// ParseCode accepts a 32-bit code in any base strconv understands.
func ParseCode(s string) (ircapture.Code, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return ircapture.Code(v), nil
}

// Runner executes a script, polling the dispatcher after every step so
// each completed code is handed off before the next frame.
type Runner struct {
	Line       *Line
	Button     *Button
	Dispatcher *ircapture.Dispatcher
	// Marshal builds the frame for a StepSend.
	Marshal func(ircapture.Code) ircapture.FrameMarshaller
}

func (r *Runner) Run(steps []Step) {
	for _, s := range steps {
		switch s.Kind {
		case StepSend:
			r.Line.Send(r.Marshal(s.Code))
		case StepEdge:
			r.Line.Edge(s.Width)
		case StepIdle:
			r.Line.Idle(s.Idle)
		case StepPress:
			r.Button.Press()
			r.Dispatcher.Poll()
			r.Button.Release()
		}
		r.Dispatcher.Poll()
	}
}
