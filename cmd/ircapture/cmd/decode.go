package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sparques/ircapture"
	"github.com/sparques/ircapture/pulsewidth"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [FILE]",
	Short: "Decode a captured list of edge-to-edge widths",
	Long: `Decode the gaps between consecutive falling edges, as captured by a
logic analyzer, into codes. Widths are separated by whitespace or commas.
A bare integer is a width in milliseconds; anything else is read as a Go
duration such as 2.25ms or 560us. Reads stdin when FILE is omitted or "-".

Examples:
  ircapture decode capture.txt
  echo "50 13 1 1 2 2 ..." | ircapture decode`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening capture: %w", err)
		}
		defer f.Close()
		in = f
	}

	widths, err := readWidths(in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	found := 0
	dec := pulsewidth.NewStateMachine(func(code ircapture.Code) {
		found++
		fmt.Fprintln(out, code)
	})
	dec.RequireResync = cfg.RequireResync
	for _, w := range widths {
		dec.HandleWidth(w)
	}

	if verbose {
		log.Printf("%d widths, %d codes", len(widths), found)
	}
	return nil
}

func readWidths(r io.Reader) ([]ircapture.PulseWidth, error) {
	var widths []ircapture.PulseWidth

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		for _, tok := range strings.Split(sc.Text(), ",") {
			if tok == "" {
				continue
			}
			w, err := parseWidth(tok)
			if err != nil {
				return nil, fmt.Errorf("width %q: %w", tok, err)
			}
			widths = append(widths, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading capture: %w", err)
	}
	return widths, nil
}

func parseWidth(tok string) (ircapture.PulseWidth, error) {
	if n, err := strconv.ParseUint(tok, 10, 32); err == nil {
		return ircapture.PulseWidth(min(n, uint64(ircapture.SyncWidth))), nil
	}
	d, err := time.ParseDuration(tok)
	if err != nil {
		return 0, err
	}
	return ircapture.ClampWidth(d), nil
}
