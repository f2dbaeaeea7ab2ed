package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/sparques/ircapture"
	"github.com/sparques/ircapture/codestore"
	"github.com/sparques/ircapture/internal/sim"
	"github.com/sparques/ircapture/pulsewidth"
	"github.com/sparques/ircapture/report"
	"github.com/sparques/ircapture/trace"
	"github.com/spf13/cobra"
)

var (
	simTrace     bool
	simTraceFile string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate STEP...",
	Short: "Run a scripted session through the receiver in virtual time",
	Long: `Replay a script through the same receiver, store and dispatcher the
firmware runs, printing what the debug serial line would show.

Steps:
  0x20DF10EF, 42      transmit a frame carrying the code
  edge:N              a single edge N ms after the previous one
  idle:DURATION       no edges for DURATION, e.g. idle:200ms
  press               press and release the display button

Examples:
  ircapture simulate 0xC1 0xC2 0xC3 0xC4 0xC5 0xC6 press
  ircapture simulate --require-resync 0x1 edge:2 press`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().BoolVar(&simTrace, "trace", false,
		"record events to a CSV trace")
	simulateCmd.Flags().StringVar(&simTraceFile, "trace-file", "",
		"trace file name without .csv (default ircapture_trace_<id>)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	steps, err := sim.ParseScript(args)
	if err != nil {
		return err
	}

	dec := pulsewidth.NewStateMachine(nil)
	dec.RequireResync = cfg.RequireResync
	rx := ircapture.NewReceiver(dec)
	store := codestore.New(cfg.StoreCapacity)
	serial := report.NewSerial(cmd.OutOrStdout())

	var reporter ircapture.Reporter = serial
	if simTrace || simTraceFile != "" {
		tracer := trace.NewCSVWriter(simTraceFile)
		if simTraceFile != "" {
			if _, err := os.Stat(tracer.Filename()); err == nil {
				return fmt.Errorf("trace file %s already exists", tracer.Filename())
			}
		}
		tracer.Init()
		defer tracer.Close()
		reporter = report.Multi(serial, tracer)
		log.Printf("tracing to %s", tracer.Filename())
	}

	button := &sim.Button{}
	led := &sim.Indicator{}
	line := sim.NewLine(rx)
	d := ircapture.NewDispatcher(rx, store, reporter, button, led)
	runner := &sim.Runner{
		Line:       line,
		Button:     button,
		Dispatcher: d,
		Marshal: func(c ircapture.Code) ircapture.FrameMarshaller {
			return pulsewidth.Frame(c)
		},
	}

	reporter.StartupBanner()
	runner.Run(steps)
	fmt.Fprintln(cmd.OutOrStdout())

	if verbose {
		log.Printf("%d edges over %v, %d/%d codes stored, %d superseded, led toggled %d times",
			line.Edges(), line.Elapsed(), store.Len(), store.Cap(), rx.Superseded(), led.Toggles)
	}

	if err := serial.Err(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
