// Package config loads seisgrad CLI settings from flags, SEISGRAD_*
// environment variables and an optional YAML file, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bbsunok/seisgrad/internal/parallel"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "SEISGRAD"

// Setting keys.
const (
	KeyLogLevel = "log-level"
	KeyOrder    = "order"
	KeyWrt      = "wrt"
	KeyWorkers  = "workers"
	KeyMinChunk = "min-chunk"

	KeyOptimizer = "optimizer"
	KeyLR        = "lr"
	KeyMomentum  = "momentum"
	KeyMaxIter   = "max-iter"
	KeyTol       = "tol"
)

// Optimizers lists the accepted values of KeyOptimizer.
var Optimizers = []string{"newton", "sgd", "adam"}

// ErrInvalid marks a configuration value outside its allowed range.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the CLI settings.
type Config struct {
	LogLevel string // logrus level name
	Order    int    // highest derivative order to report
	Wrt      string // variable to differentiate with respect to
	Workers  int    // vector kernel workers; 0 selects the CPU count
	MinChunk int    // minimum elements per vector kernel worker

	Optimizer string  // one of Optimizers
	LR        float64 // step size; 0 selects the optimizer default
	Momentum  float64 // SGD momentum
	MaxIter   int     // maximum optimizer steps
	Tol       float64 // gradient tolerance for convergence
}

// Default returns the built-in settings.
func Default() Config {
	p := parallel.DefaultConfig()
	return Config{
		LogLevel: "info",
		Order:    1,
		Wrt:      "x",
		Workers:  0,
		MinChunk: p.MinChunkSize,

		Optimizer: "newton",
		MaxIter:   100,
		Tol:       1e-8,
	}
}

// RegisterFlags adds the persistent settings to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(KeyLogLevel, d.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.Int(KeyWorkers, d.Workers, "vector kernel workers (0 = number of CPUs)")
	fs.Int(KeyMinChunk, d.MinChunk, "minimum vector elements per worker")
}

// RegisterDerivativeFlags adds the settings used by commands that
// differentiate an expression.
func RegisterDerivativeFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.IntP(KeyOrder, "n", d.Order, "highest derivative order")
	fs.String(KeyWrt, d.Wrt, "variable to differentiate with respect to")
}

// RegisterMinimizeFlags adds the optimizer settings.
func RegisterMinimizeFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(KeyWrt, d.Wrt, "variable to optimize")
	fs.String(KeyOptimizer, d.Optimizer, "optimizer ("+strings.Join(Optimizers, ", ")+")")
	fs.Float64(KeyLR, d.LR, "step size (0 = optimizer default)")
	fs.Float64(KeyMomentum, d.Momentum, "SGD momentum")
	fs.Int(KeyMaxIter, d.MaxIter, "maximum optimizer steps")
	fs.Float64(KeyTol, d.Tol, "stop once every gradient component is within tol")
}

// Load resolves the settings. file may be empty. Flags not registered on fs
// keep their defaults unless set through the environment or file.
func Load(fs *pflag.FlagSet, file string) (Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyOrder, d.Order)
	v.SetDefault(KeyWrt, d.Wrt)
	v.SetDefault(KeyWorkers, d.Workers)
	v.SetDefault(KeyMinChunk, d.MinChunk)
	v.SetDefault(KeyOptimizer, d.Optimizer)
	v.SetDefault(KeyLR, d.LR)
	v.SetDefault(KeyMomentum, d.Momentum)
	v.SetDefault(KeyMaxIter, d.MaxIter)
	v.SetDefault(KeyTol, d.Tol)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	c := Config{
		LogLevel: v.GetString(KeyLogLevel),
		Order:    v.GetInt(KeyOrder),
		Wrt:      v.GetString(KeyWrt),
		Workers:  v.GetInt(KeyWorkers),
		MinChunk: v.GetInt(KeyMinChunk),

		Optimizer: v.GetString(KeyOptimizer),
		LR:        v.GetFloat64(KeyLR),
		Momentum:  v.GetFloat64(KeyMomentum),
		MaxIter:   v.GetInt(KeyMaxIter),
		Tol:       v.GetFloat64(KeyTol),
	}
	return c, c.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.Order < 1:
		return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalid, KeyOrder, c.Order)
	case c.Workers < 0:
		return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalid, KeyWorkers, c.Workers)
	case c.MinChunk < 1:
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, KeyMinChunk, c.MinChunk)
	case c.Wrt == "":
		return fmt.Errorf("%w: %s must not be empty", ErrInvalid, KeyWrt)
	case !lo.Contains(Optimizers, c.Optimizer):
		return fmt.Errorf("%w: %s must be one of %s, got %q", ErrInvalid, KeyOptimizer, strings.Join(Optimizers, ", "), c.Optimizer)
	case c.LR < 0:
		return fmt.Errorf("%w: %s must not be negative, got %g", ErrInvalid, KeyLR, c.LR)
	case c.Momentum < 0 || c.Momentum >= 1:
		return fmt.Errorf("%w: %s must be in [0, 1), got %g", ErrInvalid, KeyMomentum, c.Momentum)
	case c.MaxIter < 1:
		return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalid, KeyMaxIter, c.MaxIter)
	case c.Tol <= 0:
		return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalid, KeyTol, c.Tol)
	}
	return nil
}

// Parallel returns the vector kernel configuration.
func (c Config) Parallel() parallel.Config {
	p := parallel.DefaultConfig()
	if c.Workers > 0 {
		p.NumWorkers = c.Workers
		p.Enabled = c.Workers > 1
	}
	p.MinChunkSize = c.MinChunk
	return p
}
