// File: config.go
// Role: functional-options configuration for GraphIndex, mirroring
// proximity.Config's Option pattern.
package gindex

import "github.com/katalvlaran/ngramgraph/digraph"

// Metric compares two graphs and returns a similarity in [0,1]. It is
// value-only: similarity.SS/VS/NVS/ACS/SCS also return Components, so
// they are passed through a wrapper that drops the second result.
type Metric func(g1, g2 *digraph.Graph) float64

// Config holds a GraphIndex's tunables (spec.md §4.8).
type Config struct {
	ThetaLo  float64 // minimum merging margin: near-match, merge in place
	ThetaHi  float64 // maximum merging margin: exact match, no mutation
	DeepCopy bool    // passed through to the Union/InverseIntersection calls
	Logger   Logger
}

// Option mutates a Config.
type Option func(*Config)

// WithThetaLo overrides the default 0.8 near-match threshold.
func WithThetaLo(v float64) Option { return func(c *Config) { c.ThetaLo = v } }

// WithThetaHi overrides the default 0.9 exact-match threshold.
func WithThetaHi(v float64) Option { return func(c *Config) { c.ThetaHi = v } }

// WithDeepCopy makes merge/strip operations build fresh graphs instead of
// mutating the stored entry's graph in place.
func WithDeepCopy(v bool) Option { return func(c *Config) { c.DeepCopy = v } }

// WithLogger installs a debug tracer; nil disables it (falls back to the
// no-op default).
func WithLogger(l Logger) Option {
	return func(c *Config) {
		if l == nil {
			l = noopLogger{}
		}
		c.Logger = l
	}
}

func newConfig(opts ...Option) (Config, error) {
	cfg := Config{ThetaLo: 0.8, ThetaHi: 0.9, DeepCopy: false, Logger: noopLogger{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.ThetaLo < 0 || cfg.ThetaLo > 1 || cfg.ThetaHi < 0 || cfg.ThetaHi > 1 {
		return Config{}, gindexErrorf("New", "ThetaLo/ThetaHi must be in [0,1], got %.3f/%.3f", cfg.ThetaLo, cfg.ThetaHi)
	}
	if cfg.ThetaLo > cfg.ThetaHi {
		return Config{}, gindexErrorf("New", "ThetaLo must be <= ThetaHi, got %.3f > %.3f", cfg.ThetaLo, cfg.ThetaHi)
	}

	return cfg, nil
}
