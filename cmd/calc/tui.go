package main

import (
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc/internal/keypad"
	"github.com/zephyrtronium/calc/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the calculator keypad in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pad := keypad.New(
				keypad.ErrorText(a.cfg.Display.ErrorText),
				keypad.Formatter(a.formatter("")),
				keypad.Logger(a.log),
			)
			a.log.Debug("starting keypad")
			return tui.Run(pad)
		},
	}
}
