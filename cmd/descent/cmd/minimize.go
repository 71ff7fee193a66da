// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/descent/optimize"
	"github.com/katalvlaran/descent/vector"
)

func minimizeCmd(v *viper.Viper, cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minimize",
		Short: "Minimize the sum of squares with batch gradient descent.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := parseVector(cfg.Minimize.Start)
			if err != nil {
				return errors.Wrap(err, "--start")
			}
			if !(cfg.Minimize.Tolerance > 0) {
				return errors.Errorf("--tolerance must be positive, got %v", cfg.Minimize.Tolerance)
			}

			gradient := optimize.Gradient(func(theta []float64) []float64 {
				return vector.ScalarMultiply(2, theta)
			})
			if cfg.Minimize.Numeric {
				gradient = optimize.NumericalGradient(vector.SumOfSquares, optimize.DefaultEpsilon)
			}

			theta, history, err := optimize.MinimizeBatch(
				vector.SumOfSquares,
				gradient,
				start,
				optimize.WithTolerance(cfg.Minimize.Tolerance),
				optimize.WithLogger(log.StandardLogger()),
			)
			if err != nil {
				return errors.Wrap(err, "minimize")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "theta: %.6g\n", theta)
			fmt.Fprintf(out, "value: %.6g\n", history[len(history)-2])
			fmt.Fprintf(out, "iterations: %d\n", len(history)-1)
			fmt.Fprintf(out, "history: %d values\n", len(history))

			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("start", "10,10,10", "comma separated starting point")
	flags.Bool("numeric", false, "use a central-difference gradient instead of the analytic one")
	flags.Float64("tolerance", optimize.DefaultTolerance, "convergence tolerance")
	bindFlag(v, "minimize.start", flags, "start")
	bindFlag(v, "minimize.numeric", flags, "numeric")
	bindFlag(v, "minimize.tolerance", flags, "tolerance")

	return cmd
}
