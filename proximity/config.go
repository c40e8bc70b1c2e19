// Package proximity implements ProximityGraphBuilder: construction of a
// digraph.Graph from an n-gram sequence using a sliding proximity window,
// in three weighting variants (spec.md §4.3):
//
//   - Asymmetric (DocumentNGramGraph): directed edges from each of the
//     preceding D_win+1 n-grams to the current one, weight += 1 per
//     co-occurrence (see BuildAsymmetric).
//   - Symmetric (DocumentNGramSymWinGraph): edges in both directions within
//     the window, canonically oriented smaller→larger Symbol to avoid
//     double-counting.
//   - Gaussian-normalized (DocumentNGramGaussNormGraph): same connectivity
//     as symmetric, weighted by exp(-(d-1)^2 / (2*sigma^2)).
//
// Configuration is functional-option based, mirroring builder.BuilderOption.
package proximity

// Policy selects the weighting variant.
type Policy int

const (
	// Asymmetric connects each n-gram only to its preceding window neighbors.
	Asymmetric Policy = iota
	// Symmetric connects each n-gram to neighbors on both sides, canonically oriented.
	Symmetric
	// GaussNorm is Symmetric connectivity with gaussian-decayed weights.
	GaussNorm
)

// Config holds the resolved parameters for a proximity graph construction.
type Config struct {
	N      int     // n-gram rank
	DWin   int     // proximity window
	Policy Policy  // weighting variant
	Sigma  float64 // GaussNorm only; 0 means "derive from DWin"
	Pad    bool    // right-pad the atom sequence before n-gram extraction
}

// Option mutates a Config before graph construction begins.
type Option func(cfg *Config)

// WithPolicy selects the weighting variant. Default is Asymmetric.
func WithPolicy(p Policy) Option {
	return func(cfg *Config) { cfg.Policy = p }
}

// WithSigma overrides the GaussNorm decay parameter. If never set (or set
// to <= 0), Build derives sigma = DWin/2 per spec.md §4.3.
func WithSigma(sigma float64) Option {
	return func(cfg *Config) { cfg.Sigma = sigma }
}

// WithPad enables right-padding of the atom sequence with n-1 null atoms
// (see ngram.Extractor); padding is off by default.
func WithPad(pad bool) Option {
	return func(cfg *Config) { cfg.Pad = pad }
}

// newConfig resolves n, DWin, and any options into a validated Config.
func newConfig(n, dWin int, opts ...Option) (Config, error) {
	cfg := Config{N: n, DWin: dWin, Policy: Asymmetric}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.N < 1 {
		return cfg, proximityErrorf("Build", "n must be >= 1, got %d", cfg.N)
	}
	if cfg.DWin < 1 {
		return cfg, proximityErrorf("Build", "D_win must be >= 1, got %d", cfg.DWin)
	}
	if cfg.Policy == GaussNorm && cfg.Sigma <= 0 {
		cfg.Sigma = float64(cfg.DWin) / 2.0
	}

	return cfg, nil
}
