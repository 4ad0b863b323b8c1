// SPDX-License-Identifier: MIT
package main

import (
	"log/slog"

	"github.com/katalvlaran/lvpca/cmd/lvpca/ui"
	"github.com/katalvlaran/lvpca/config"
	"github.com/katalvlaran/lvpca/internal/logging"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// app carries state resolved by the root command for its subcommands.
type app struct {
	configPath string
	debug      bool
	noColor    bool
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lvpca",
		Short:         "Principal component analysis for CSV data",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			level := cfg.LogLevel
			if a.debug {
				level = logging.LevelDebug
			}
			if err := logging.ConfigureWriter(cmd.ErrOrStderr(), level); err != nil {
				return err
			}
			ui.ConfigureColor(a.noColor)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/lvpca/config.yaml)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable coloured output")

	root.AddCommand(
		fitCmd(a),
		transformCmd(a),
		fitTransformCmd(a),
		screeCmd(a),
		synthCmd(a),
	)
	return root
}

func cmdLogger(name string) *slog.Logger {
	return slog.With("component", "cli", "cmd", name)
}
