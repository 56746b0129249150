package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc/internal/config"
	"github.com/zephyrtronium/calc/internal/keypad"
	"github.com/zephyrtronium/calc/internal/logging"
)

// app is the state shared by subcommands once flags are parsed.
type app struct {
	cfg    config.Config
	log    *slog.Logger
	closer io.Closer
}

func newRootCmd() *cobra.Command {
	var (
		a                  app
		cfgPath, lvl, file string
	)
	cmd := &cobra.Command{
		Use:           "calc",
		Short:         "Evaluate arithmetic expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = lvl
			}
			if cmd.Flags().Changed("log-file") {
				cfg.Log.File = file
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg
			a.log, a.closer = logging.New(cfg.Log, cmd.ErrOrStderr())
			a.log.Debug("configured", slog.String("config", cfgPath), slog.String("level", cfg.Log.Level))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closer == nil {
				return nil
			}
			return a.closer.Close()
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "YAML configuration file")
	pf.StringVar(&lvl, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&file, "log-file", "", "log to a rotating file instead of stderr")

	cmd.AddCommand(newEvalCmd(&a), newTUICmd(&a))
	return cmd
}

// formatter selects how results are written. A non-empty verb overrides the
// configured format.
func (a *app) formatter(verb string) func(float64) string {
	if verb == "" {
		verb = a.cfg.Display.Format
	}
	if verb == "" {
		return keypad.FormatDisplay
	}
	return keypad.Printf(verb)
}
