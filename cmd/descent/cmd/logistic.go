// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/descent/regression"
)

func logisticCmd(v *viper.Viper, cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logistic",
		Short: "Fit a logistic regression on rescaled synthetic data.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lc := cfg.Logistic
			if lc.N < 2 {
				return errors.Errorf("--n must be at least 2, got %d", lc.N)
			}
			x, y := newSampler(cfg.Seed).logistic(lc.N, lc.Intercept, lc.Slope)

			scaled, err := regression.Rescale(x)
			if err != nil {
				return err
			}
			beta, err := regression.EstimateLogistic(scaled, y,
				regression.WithSeed(cfg.Seed),
				regression.WithLogger(log.StandardLogger()),
			)
			if err != nil {
				return err
			}

			correct := 0
			for i := range scaled {
				predicted := 0.0
				if regression.PredictProbability(scaled[i], beta) >= 0.5 {
					predicted = 1
				}
				if predicted == y[i] {
					correct++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "beta: %.4f\n", beta)
			fmt.Fprintf(out, "log-likelihood: %.4f\n", regression.LogisticLogLikelihood(scaled, y)(beta))
			fmt.Fprintf(out, "accuracy: %.4f\n", float64(correct)/float64(len(y)))

			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("n", 200, "number of generated examples")
	flags.Float64("intercept", -5, "true intercept on the raw feature")
	flags.Float64("slope", 1, "true slope on the raw feature")
	bindFlag(v, "logistic.n", flags, "n")
	bindFlag(v, "logistic.intercept", flags, "intercept")
	bindFlag(v, "logistic.slope", flags, "slope")

	return cmd
}
