// Package cmd provides the host command-line interface for ircapture.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/sparques/ircapture"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var (
	// Global flags
	cfg     = ircapture.DefaultConfig()
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ircapture",
	Short: "Consumer IR remote decoder and code recorder",
	Long: `ircapture decodes 32-bit pulse-distance IR remote codes and keeps the
most recent ones. On a microcontroller it runs as firmware; on a host it
simulates the receiver and decodes captured pulse widths.

Examples:
  ircapture simulate 0x20DF10EF 0x20DF906F press      # two frames, then list
  ircapture simulate --trace 0x1 edge:2 0x2 press     # also write a CSV trace
  ircapture decode capture.txt                        # decode recorded widths
  ircapture encode 0x20DF10EF                         # print frame widths`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetFlags(0)
		log.SetPrefix("ircapture: ")
		log.SetOutput(cmd.ErrOrStderr())
		return cfg.Validate()
	},
}

// Execute runs the root command and leaves through atexit so trace files
// are flushed.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().IntVarP(&cfg.StoreCapacity, "capacity", "n", ircapture.DefaultStoreCapacity,
		"number of codes kept before the oldest is overwritten")
	rootCmd.PersistentFlags().BoolVar(&cfg.RequireResync, "require-resync", false,
		"ignore edges after a completed frame until the next long gap")
}
