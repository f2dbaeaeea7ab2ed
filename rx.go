//go:build tinygo

package ircapture

import (
	"machine"
	"time"
)

// RxDevice connects a demodulating IR receiver on pin to a Receiver. Every
// falling edge is timestamped in the interrupt handler and the gap since
// the previous one goes to OnEdge, so widths do not depend on the phase of
// a tick or on the main loop yielding.
type RxDevice struct {
	pin       machine.Pin
	receiver  *Receiver
	lastPulse time.Time
	guard     runGuard
}

func NewRxDevice(pin machine.Pin, r *Receiver) *RxDevice {
	// the most common receivers have a pull up pin builtin
	// but in the future, may want to add the option to use PinPullupInput
	pin.Configure(machine.PinConfig{Mode: machine.PinInput})
	return &RxDevice{
		pin:      pin,
		receiver: r,
	}
}

func (rx *RxDevice) interruptHandler(machine.Pin) {
	now := time.Now()
	gap := now.Sub(rx.lastPulse)
	rx.lastPulse = now
	rx.receiver.OnEdge(gap)
}

// Start sets the interrupt handler, and thus starts processing signals. The
// first edge after Start is read as a sync edge.
func (rx *RxDevice) Start() error {
	return rx.guard.start(func() error {
		rx.lastPulse = time.Time{}
		return rx.pin.SetInterrupt(machine.PinFalling, rx.interruptHandler)
	})
}

// Stop disables the interrupt handler.
func (rx *RxDevice) Stop() error {
	return rx.guard.stop(func() error {
		return rx.pin.SetInterrupt(machine.PinFalling, nil)
	})
}

// PinButton is a Button on an active-low input, the usual push button to
// ground.
type PinButton struct {
	pin machine.Pin
}

func NewPinButton(pin machine.Pin) *PinButton {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &PinButton{pin: pin}
}

func (b *PinButton) Read() bool {
	return !b.pin.Get()
}

// PinIndicator is an Indicator driving an LED.
type PinIndicator struct {
	pin machine.Pin
	on  bool
}

func NewPinIndicator(pin machine.Pin) *PinIndicator {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Low()
	return &PinIndicator{pin: pin}
}

func (ind *PinIndicator) Toggle() {
	ind.on = !ind.on
	ind.pin.Set(ind.on)
}
