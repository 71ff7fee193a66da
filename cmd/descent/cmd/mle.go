// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/descent/mle"
	"github.com/katalvlaran/descent/optimize"
	"github.com/katalvlaran/descent/stats"
)

func mleCmd(v *viper.Viper, cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mle",
		Short: "Estimate the mean and standard deviation of a normal sample by maximum likelihood.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mc := cfg.MLE
			if mc.N < 1 {
				return errors.Errorf("--n must be positive, got %d", mc.N)
			}
			if !(mc.Sigma > 0) {
				return errors.Errorf("--sigma must be positive, got %v", mc.Sigma)
			}
			sample := newSampler(cfg.Seed).normalSample(mc.N, mc.Mu, mc.Sigma)

			mu, sigma, err := mle.FitNormal(sample, []float64{0, 1},
				optimize.WithLogger(log.StandardLogger()),
			)
			if err != nil {
				return err
			}
			mean, err := stats.Mean(sample)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mu: %.4f\n", mu)
			fmt.Fprintf(out, "sigma: %.4f\n", sigma)
			fmt.Fprintf(out, "sample mean: %.4f\n", mean)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("n", 500, "sample size")
	flags.Float64("mu", 3, "true mean")
	flags.Float64("sigma", 1.5, "true standard deviation")
	bindFlag(v, "mle.n", flags, "n")
	bindFlag(v, "mle.mu", flags, "mu")
	bindFlag(v, "mle.sigma", flags, "sigma")

	return cmd
}
