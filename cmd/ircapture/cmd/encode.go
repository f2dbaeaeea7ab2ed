package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sparques/ircapture/internal/sim"
	"github.com/sparques/ircapture/pulsewidth"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode CODE...",
	Short: "Print the edge-to-edge widths of a frame",
	Long: `Print, one frame per line, the millisecond widths between falling edges
a receiver measures for each code. The output is valid input for decode.

Example:
  ircapture encode 0x20DF10EF | ircapture decode`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		code, err := sim.ParseCode(arg)
		if err != nil {
			return fmt.Errorf("code %q: %w", arg, err)
		}

		widths := pulsewidth.Encode(code)
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strconv.Itoa(int(w))
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
	}
	return nil
}
