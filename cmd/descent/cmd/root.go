// SPDX-License-Identifier: MIT

package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootCmd is the root Cobra command that gets called from the main func.
// All other sub-commands should be registered here.
func RootCmd() *cobra.Command {
	v := newViper()
	cfg := &Config{}

	cmd := &cobra.Command{
		Use:   "descent",
		Short: "descent fits models by gradient descent on synthetic data.",
		Long: `descent drives the optimize, regression and mle packages on generated data.

Persistent config can be saved in a YAML or JSON file and passed with --config:

seed: 7
logLevel: debug
regress:
  n: 500
  noise: 0.5

Every key can also be set from the environment, e.g. DESCENT_SEED=7 or
DESCENT_REGRESS_N=500. Flags win over the environment, which wins over the file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			if err = loadConfig(v, path, cfg); err != nil {
				return err
			}

			return configureLogging(cfg.LogLevel)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "path to a YAML or JSON config file")
	flags.Int64("seed", 1, "seed for data generation and the optimizers (0 selects the default seed)")
	flags.String("log-level", "info", "logrus level: trace, debug, info, warn, error")
	bindFlag(v, "seed", flags, "seed")
	bindFlag(v, "logLevel", flags, "log-level")

	cmd.AddCommand(
		minimizeCmd(v, cfg),
		regressCmd(v, cfg),
		logisticCmd(v, cfg),
		mleCmd(v, cfg),
	)

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
