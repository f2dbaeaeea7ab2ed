package ircapture

import (
	"context"
	"runtime"
)

// Reporter receives everything the dispatcher wants to tell the operator.
type Reporter interface {
	StartupBanner()
	CodeReceived(code Code)
	CodeStored(index int, overwritten bool, code Code)
	ListCodes(codes []Code)
	ListEmpty()
}

// Button is polled once per loop iteration; true means pressed.
type Button interface {
	Read() bool
}

// Indicator acknowledges a newly stored code.
type Indicator interface {
	Toggle()
}

// CodeSource yields completed codes, each at most once.
type CodeSource interface {
	Take() (Code, bool)
}

// CodeStore retains recent codes.
type CodeStore interface {
	Push(code Code) PushResult
	Snapshot() []Code
}

// Dispatcher is the main loop. It moves codes from a CodeSource into a
// CodeStore and lists the store whenever the button goes from released to
// pressed. It is not safe for concurrent use; run it from one goroutine.
type Dispatcher struct {
	src       CodeSource
	store     CodeStore
	reporter  Reporter
	button    Button
	indicator Indicator

	pressed bool
}

// NewDispatcher creates a Dispatcher. button and indicator may be nil.
func NewDispatcher(src CodeSource, store CodeStore, reporter Reporter, button Button, indicator Indicator) *Dispatcher {
	return &Dispatcher{
		src:       src,
		store:     store,
		reporter:  reporter,
		button:    button,
		indicator: indicator,
	}
}

// Poll runs a single loop iteration.
func (d *Dispatcher) Poll() {
	if code, ok := d.src.Take(); ok {
		d.reporter.CodeReceived(code)
		res := d.store.Push(code)
		d.reporter.CodeStored(res.Index, res.Evicted, code)
		if d.indicator != nil {
			d.indicator.Toggle()
		}
	}

	if d.button == nil {
		return
	}
	pressed := d.button.Read()
	if pressed && !d.pressed {
		d.list()
	}
	d.pressed = pressed
}

func (d *Dispatcher) list() {
	codes := d.store.Snapshot()
	if len(codes) == 0 {
		d.reporter.ListEmpty()
		return
	}
	d.reporter.ListCodes(codes)
}

// Run prints the banner and polls until ctx is done.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.reporter.StartupBanner()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		d.Poll()
		// other goroutines only run when we yield on cooperative schedulers
		runtime.Gosched()
	}
}
