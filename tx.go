//go:build tinygo

package ircapture

import (
	"machine"
	"time"

	"github.com/sparques/pwm"
)

// markTime is how long the carrier is keyed at the start of every edge.
const markTime = 560 * time.Microsecond

// TxDevice replays frames on an IR LED, for bench testing a receiver: point
// it at the receiver of a second board and call SendFrame. Each gap becomes
// a carrier burst starting that long after the previous one, so a
// demodulating receiver sees a falling edge per gap.
type TxDevice struct {
	pin    machine.Pin
	pgroup pwm.Group
	ch     uint8
	duty   uint32
	freq   uint64
}

func NewTxDevice(pin machine.Pin) *TxDevice {
	pin.Configure(machine.PinConfig{Mode: machine.PinPWM})
	pgroup := pwm.Get(pin)
	pgroup.Configure(machine.PWMConfig{Period: uint64(1e9) / uint64(Freq38Khz)})
	ch, _ := pgroup.Channel(pin)
	pgroup.Set(ch, 0)
	return &TxDevice{
		pin:    pin,
		pgroup: pgroup,
		ch:     ch,
		duty:   pgroup.Top() / 2,
		freq:   Freq38Khz,
	}
}

// SendGap waits out gap since the previous burst, then starts a new one.
func (tx *TxDevice) SendGap(gap time.Duration) {
	if gap > markTime {
		time.Sleep(gap - markTime)
	}
	tx.pgroup.Set(tx.ch, tx.duty)
	time.Sleep(markTime)
	tx.pgroup.Set(tx.ch, 0)
}

func (tx *TxDevice) SendGaps(gaps ...time.Duration) {
	for _, gap := range gaps {
		tx.SendGap(gap)
	}
}

// SendWidth sends an edge that measures as width, placed mid-window so
// jitter does not push it across a tick boundary.
func (tx *TxDevice) SendWidth(width PulseWidth) {
	tx.SendGap(NominalGap(width))
}

func (tx *TxDevice) SendWidths(widths ...PulseWidth) {
	for _, w := range widths {
		tx.SendWidth(w)
	}
}

func (tx *TxDevice) SendFrame(fm FrameMarshaller) {
	tx.SendGaps(FrameGaps(fm)...)
}

func (tx *TxDevice) SendFrames(fms ...FrameMarshaller) {
	for _, fm := range fms {
		tx.SendFrame(fm)
	}
}
