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

func regressCmd(v *viper.Viper, cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regress",
		Short: "Fit a simple linear regression with stochastic gradient descent.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc := cfg.Regress
			if rc.N < 2 {
				return errors.Errorf("--n must be at least 2, got %d", rc.N)
			}
			if !(rc.LearningRate > 0) {
				return errors.Errorf("--learning-rate must be positive, got %v", rc.LearningRate)
			}
			s := newSampler(cfg.Seed)
			x, y := s.linear(rc.N, rc.Intercept, rc.Slope, rc.Noise)

			xTrain, xTest, yTrain, yTest, err := regression.TrainTestSplit(x, y, rc.TestPct, s.rng)
			if err != nil {
				return err
			}
			if len(xTest) == 0 {
				xTest, yTest = xTrain, yTrain
			}
			log.WithFields(log.Fields{"train": len(xTrain), "test": len(xTest)}).Info("fitting linear model")

			beta, err := regression.EstimateBeta(xTrain, yTrain,
				regression.WithSeed(cfg.Seed),
				regression.WithLearningRate(rc.LearningRate),
				regression.WithLogger(log.StandardLogger()),
			)
			if err != nil {
				return err
			}
			r2, err := regression.RSquared(xTest, yTest, beta)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "intercept: %.4f\n", beta[0])
			fmt.Fprintf(out, "slope: %.4f\n", beta[1])
			fmt.Fprintf(out, "r-squared: %.4f\n", r2)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("n", 200, "number of generated examples")
	flags.Float64("intercept", 3, "true intercept")
	flags.Float64("slope", 2, "true slope")
	flags.Float64("noise", 0.5, "standard deviation of the additive noise")
	flags.Float64("test-pct", 0.25, "fraction of examples held out for R²")
	flags.Float64("learning-rate", 0.001, "initial SGD learning rate")
	bindFlag(v, "regress.n", flags, "n")
	bindFlag(v, "regress.intercept", flags, "intercept")
	bindFlag(v, "regress.slope", flags, "slope")
	bindFlag(v, "regress.noise", flags, "noise")
	bindFlag(v, "regress.testPct", flags, "test-pct")
	bindFlag(v, "regress.learningRate", flags, "learning-rate")

	return cmd
}
