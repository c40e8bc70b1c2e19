// File: config.go
// Role: functional-options configuration for HPG construction (spec.md
// §4.7, §9 "Library API"), mirroring proximity.Config's Option pattern.
package hpg

import "github.com/katalvlaran/ngramgraph/gindex"

// Config holds the tunables of a single HPG build (spec.md §9's abstract
// config surface: "levels, base_window, stride, theta_lo, theta_hi,
// per_level_metric, deep_copy").
type Config struct {
	Window   int // base window size w
	Levels   int // number of levels to build above level 0, L >= 1
	Stride   int // s
	ThetaLo  float64
	ThetaHi  float64
	Metric   gindex.Metric
	DeepCopy bool
	Logger   Logger
	Workers  int // > 1 enables the parallel patch-construction variant
}

// Option mutates a Config.
type Option func(*Config)

// WithStride overrides the default stride of 1.
func WithStride(s int) Option { return func(c *Config) { c.Stride = s } }

// WithMergingMargins overrides the default (0.8, 0.9) GraphIndex thresholds.
func WithMergingMargins(lo, hi float64) Option {
	return func(c *Config) { c.ThetaLo, c.ThetaHi = lo, hi }
}

// WithMetric overrides the default NVS per-level GraphIndex metric.
func WithMetric(m gindex.Metric) Option { return func(c *Config) { c.Metric = m } }

// WithDeepCopy makes GraphIndex merges build fresh graphs instead of
// mutating stored entries in place.
func WithDeepCopy(v bool) Option { return func(c *Config) { c.DeepCopy = v } }

// WithLogger installs a debug tracer; nil disables it.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		if l == nil {
			l = noopLogger{}
		}
		c.Logger = l
	}
}

// WithWorkers enables the parallel patch-construction variant with a pool
// of n workers (n>1). Symbols are still assigned to D_ℓ in submission
// order, so results are identical to the sequential variant (spec.md
// §4.7 "Parallel variant").
func WithWorkers(n int) Option { return func(c *Config) { c.Workers = n } }

func newConfig(window, levels int, opts ...Option) (Config, error) {
	cfg := Config{
		Window:  window,
		Levels:  levels,
		Stride:  1,
		ThetaLo: 0.8,
		ThetaHi: 0.9,
		Logger:  noopLogger{},
		Workers: 1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Window < 1 {
		return Config{}, hpgErrorf("Build2D", "window must be >= 1, got %d", cfg.Window)
	}
	if cfg.Levels < 1 {
		return Config{}, hpgErrorf("Build2D", "levels must be >= 1, got %d", cfg.Levels)
	}
	if cfg.Stride < 1 {
		return Config{}, hpgErrorf("Build2D", "stride must be >= 1, got %d", cfg.Stride)
	}
	if cfg.ThetaLo < 0 || cfg.ThetaLo > cfg.ThetaHi || cfg.ThetaHi > 1 {
		return Config{}, hpgErrorf("Build2D", "theta_lo/theta_hi must satisfy 0<=lo<=hi<=1, got %.3f/%.3f", cfg.ThetaLo, cfg.ThetaHi)
	}
	if cfg.Workers < 1 {
		return Config{}, hpgErrorf("Build2D", "workers must be >= 1, got %d", cfg.Workers)
	}

	return cfg, nil
}
