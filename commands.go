package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NikolaTosic-sudo/chess-marks/internal/coords"
	"github.com/NikolaTosic-sudo/chess-marks/internal/highlight"
)

var (
	flagShift   bool
	flagCtrl    bool
	flagAlt     bool
	flagCurrent string
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Print the file and rank labels",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		printLabels(cmd.OutOrStdout())
	},
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print the highlight a click would produce",
	Long: `Print the highlight color a square gets when clicked with the given
modifier keys while it has the --current color.

Examples:
  chess-marks next                          # red
  chess-marks next --shift --current green  # none`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		current, err := highlight.ParseColor(flagCurrent)
		if err != nil {
			return err
		}

		mods := highlight.Modifiers{Shift: flagShift, Ctrl: flagCtrl, Alt: flagAlt}
		fmt.Fprintln(cmd.OutOrStdout(), highlight.NextColor(mods, current))
		return nil
	},
}

func init() {
	nextCmd.Flags().BoolVar(&flagShift, "shift", false, "Shift is held")
	nextCmd.Flags().BoolVar(&flagCtrl, "ctrl", false, "Ctrl is held")
	nextCmd.Flags().BoolVar(&flagAlt, "alt", false, "Alt is held")
	nextCmd.Flags().StringVar(&flagCurrent, "current", "none", "Current color: none, red, green, yellow or blue")
}

func printLabels(w io.Writer) {
	files := coords.Files()
	ranks := coords.Ranks()

	fmt.Fprintf(w, "index  %v\n", strings.Join([]string{"0", "1", "2", "3", "4", "5", "6", "7"}, " "))
	fmt.Fprintf(w, "file   %v\n", strings.Join(files[:], " "))
	fmt.Fprintf(w, "rank   %v\n", strings.Join(ranks[:], " "))
}
