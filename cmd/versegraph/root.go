// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/versegraph/internal/config"
	"github.com/katalvlaran/versegraph/internal/logger"
)

// app carries state resolved once per invocation.
type app struct {
	v   *viper.Viper
	cfg *config.Config
	log *logger.Logger

	configPath string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "versegraph",
		Short:         "Build a degree-bounded poem relationship graph",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.String("log-mode", "dev", "logger mode: dev or prod")
	pf.String("log-level", "info", "minimum log level")
	pf.String("corpus", "", "corpus YAML (default data/corpus.yaml)")
	pf.String("positions", "", "positions JSON (default data/positions.json)")
	_ = a.v.BindPFlag("log.mode", pf.Lookup("log-mode"))
	_ = a.v.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = a.v.BindPFlag("data.corpus", pf.Lookup("corpus"))
	_ = a.v.BindPFlag("data.positions", pf.Lookup("positions"))

	root.AddCommand(
		newCoordinatesCmd(a),
		newConnectCmd(a),
		newColorsCmd(a),
	)

	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log

	return nil
}
