//go:build tinygo && (rp2040 || rp2350)

package main

import (
	"context"
	"machine"

	"github.com/sparques/ircapture"
	"github.com/sparques/ircapture/codestore"
	"github.com/sparques/ircapture/pulsewidth"
	"github.com/sparques/ircapture/report"
)

const (
	irPin     = machine.GP15 // demodulating receiver output
	buttonPin = machine.GP14 // push button to ground
	ledPin    = machine.LED
)

func main() {
	uart := machine.UART0
	if err := uart.Configure(machine.UARTConfig{
		BaudRate: report.BaudRate,
		TX:       machine.GP0,
		RX:       machine.GP1,
	}); err != nil {
		println("uart configure error:", err.Error())
		halt()
	}

	cfg := ircapture.DefaultConfig()
	dec := pulsewidth.NewStateMachine(nil)
	dec.RequireResync = cfg.RequireResync

	r := ircapture.NewReceiver(dec)
	rx := ircapture.NewRxDevice(irPin, r)
	d := ircapture.NewDispatcher(
		r,
		codestore.New(cfg.StoreCapacity),
		report.NewSerial(uart),
		ircapture.NewPinButton(buttonPin),
		ircapture.NewPinIndicator(ledPin),
	)

	if err := rx.Start(); err != nil {
		println("ir interrupt error:", err.Error())
		halt()
	}
	d.Run(context.Background())
}

func halt() {
	select {}
}
