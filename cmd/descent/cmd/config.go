// SPDX-License-Identifier: MIT

package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. DESCENT_SEED or DESCENT_REGRESS_N.
const EnvPrefix = "DESCENT"

// Config is the effective configuration of a run. Values come from, in order of
// precedence: command-line flags, DESCENT_* environment variables, the --config
// file, and flag defaults.
type Config struct {
	Seed     int64  `mapstructure:"seed"`
	LogLevel string `mapstructure:"logLevel"`

	Minimize MinimizeConfig `mapstructure:"minimize"`
	Regress  RegressConfig  `mapstructure:"regress"`
	Logistic LogisticConfig `mapstructure:"logistic"`
	MLE      MLEConfig      `mapstructure:"mle"`
}

type MinimizeConfig struct {
	Start     string  `mapstructure:"start"`
	Numeric   bool    `mapstructure:"numeric"`
	Tolerance float64 `mapstructure:"tolerance"`
}

type RegressConfig struct {
	N            int     `mapstructure:"n"`
	Intercept    float64 `mapstructure:"intercept"`
	Slope        float64 `mapstructure:"slope"`
	Noise        float64 `mapstructure:"noise"`
	TestPct      float64 `mapstructure:"testPct"`
	LearningRate float64 `mapstructure:"learningRate"`
}

type LogisticConfig struct {
	N         int     `mapstructure:"n"`
	Intercept float64 `mapstructure:"intercept"`
	Slope     float64 `mapstructure:"slope"`
}

type MLEConfig struct {
	N     int     `mapstructure:"n"`
	Mu    float64 `mapstructure:"mu"`
	Sigma float64 `mapstructure:"sigma"`
}

// newViper returns a viper instance reading DESCENT_* variables, with dots in
// nested keys mapped to underscores.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// bindFlag binds the named flag to key and panics on a programming error
// (a flag that was never defined).
func bindFlag(v *viper.Viper, key string, flags *pflag.FlagSet, name string) {
	if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(err)
	}
}

// loadConfig reads the optional config file and decodes everything into cfg.
func loadConfig(v *viper.Viper, path string, cfg *Config) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config file %s", path)
		}
		log.Debugf("using config file %s", v.ConfigFileUsed())
	}
	if err := v.Unmarshal(cfg); err != nil {
		return errors.Wrap(err, "decoding configuration")
	}

	return nil
}

// configureLogging sets up the global logrus logger the same way for every
// subcommand: text output with full timestamps on stderr.
func configureLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)

	return nil
}

// parseVector parses "1, 2.5,-3" into []float64.
func parseVector(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing vector element %q", f)
		}
		out = append(out, x)
	}
	if len(out) == 0 {
		return nil, errors.Errorf("empty vector %q", s)
	}

	return out, nil
}
