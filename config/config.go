// Package config resolves solver settings from command line flags, TABLEAU_*
// environment variables and an optional config file, in that order of
// precedence.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"q.log/tableau/simplex"
)

const (
	EnvPrefix = "TABLEAU"

	KeyConfig        = "config"
	KeyTolerance     = "tolerance"
	KeyMaxIterations = "max-iterations"
	KeyRule          = "rule"
	KeyVerbose       = "verbose"
)

// Settings are the resolved solver settings.
type Settings struct {
	Tolerance     float64
	MaxIterations int
	Rule          simplex.Rule
	Verbose       bool
}

// AddFlags registers the settings flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.String(KeyConfig, "", "Path to a YAML, JSON or TOML settings file")
	fs.Float64(KeyTolerance, simplex.DefaultTolerance, "Magnitude below which values are treated as zero")
	fs.Int(KeyMaxIterations, simplex.DefaultMaxIterations, "Maximum number of pivots per phase")
	fs.String(KeyRule, simplex.FirstIndex.String(), "Pivot rule (first, bland)")
	fs.BoolP(KeyVerbose, "v", false, "Log every pivot")
}

// Load resolves the settings for the flags in fs, which must have been
// registered with AddFlags.
func Load(fs *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetDefault(KeyTolerance, simplex.DefaultTolerance)
	v.SetDefault(KeyMaxIterations, simplex.DefaultMaxIterations)
	v.SetDefault(KeyRule, simplex.FirstIndex.String())
	v.SetDefault(KeyVerbose, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "config: bind flags")
	}

	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", file)
		}
	}

	rule, err := simplex.ParseRule(v.GetString(KeyRule))
	if err != nil {
		return nil, err
	}
	s := &Settings{
		Tolerance:     v.GetFloat64(KeyTolerance),
		MaxIterations: v.GetInt(KeyMaxIterations),
		Rule:          rule,
		Verbose:       v.GetBool(KeyVerbose),
	}
	if s.Tolerance <= 0 {
		return nil, errors.Errorf("config: %s must be positive, got %g", KeyTolerance, s.Tolerance)
	}
	if s.MaxIterations <= 0 {
		return nil, errors.Errorf("config: %s must be positive, got %d", KeyMaxIterations, s.MaxIterations)
	}
	return s, nil
}

// Level is the log level the settings ask for.
func (s *Settings) Level() logrus.Level {
	if s.Verbose {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

// Options converts the settings into solver options logging to logger.
func (s *Settings) Options(logger logrus.FieldLogger) []simplex.Option {
	return []simplex.Option{
		simplex.WithTolerance(s.Tolerance),
		simplex.WithMaxIterations(s.MaxIterations),
		simplex.WithRule(s.Rule),
		simplex.WithLogger(logger),
	}
}
