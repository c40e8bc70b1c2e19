// File: hpg_collector.go
// Role: HPGCollector (spec.md §4.9's "HPG collector policy"): distinct
// from Collector's centroid merge, this accumulates one HPG per document
// and scores appropriateness as the mean per-document HPG similarity,
// grounded on HPG2DCollectorBase.add/_appropriateness_of_graph.
package collector

import (
	"github.com/katalvlaran/ngramgraph/hpg"
	"github.com/katalvlaran/ngramgraph/similarity"
)

// HPGMetric is the per-level graph comparator (similarity.Metric) that
// similarity.HPGSimilarity lifts across two HPG level stacks.
type HPGMetric = similarity.Metric

// HPGConfig holds an HPGCollector's tunables (spec.md §9: "window_size,
// number_of_levels, stride, theta_lo, theta_hi").
type HPGConfig struct {
	Window     int
	Levels     int
	Stride     int
	PerLevel   HPGMetric
	HPGOptions []hpg.Option
}

// HPGOption mutates an HPGConfig.
type HPGOption func(*HPGConfig)

// WithHPGStride overrides the default stride of 1.
func WithHPGStride(s int) HPGOption { return func(c *HPGConfig) { c.Stride = s } }

// WithHPGPerLevelMetric overrides the default NVS per-level metric.
func WithHPGPerLevelMetric(m HPGMetric) HPGOption { return func(c *HPGConfig) { c.PerLevel = m } }

// WithHPGBuildOptions forwards additional hpg.Option values (merging
// margins, worker pool size, logger) to every per-document HPG.Build2D
// call.
func WithHPGBuildOptions(opts ...hpg.Option) HPGOption {
	return func(c *HPGConfig) { c.HPGOptions = append(c.HPGOptions, opts...) }
}

func newHPGConfig(window, levels int, opts ...HPGOption) (HPGConfig, error) {
	cfg := HPGConfig{Window: window, Levels: levels, Stride: 1, PerLevel: similarity.NVS}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Window < 1 {
		return HPGConfig{}, collectorErrorf("NewHPGCollector", "window must be >= 1, got %d", cfg.Window)
	}
	if cfg.Levels < 1 {
		return HPGConfig{}, collectorErrorf("NewHPGCollector", "levels must be >= 1, got %d", cfg.Levels)
	}
	if cfg.Stride < 1 {
		return HPGConfig{}, collectorErrorf("NewHPGCollector", "stride must be >= 1, got %d", cfg.Stride)
	}

	return cfg, nil
}

// HPGCollector accumulates one HPG per added matrix and defines
// appropriateness as the mean, over every stored document, of the
// document's HPG similarity to the query — explicitly distinct from
// Collector's single running centroid (spec.md §4.9).
type HPGCollector struct {
	cfg     HPGConfig
	hpgOpts []hpg.Option
	docs    []*hpg.HPG
}

// NewHPGCollector constructs an HPGCollector with the given base window
// size and number of levels (HPG2DCollector's window_size=2,
// number_of_levels=5 defaults are left to the caller to supply).
func NewHPGCollector(window, levels int, opts ...HPGOption) (*HPGCollector, error) {
	cfg, err := newHPGConfig(window, levels, opts...)
	if err != nil {
		return nil, err
	}

	return &HPGCollector{cfg: cfg, hpgOpts: cfg.HPGOptions}, nil
}

func (c *HPGCollector) build(matrix [][]string) (*hpg.HPG, error) {
	opts := append([]hpg.Option{hpg.WithStride(c.cfg.Stride)}, c.hpgOpts...)

	return hpg.Build2D(matrix, c.cfg.Window, c.cfg.Levels, opts...)
}

// Add constructs matrix's HPG and appends it to the stored document list.
func (c *HPGCollector) Add(matrix [][]string) error {
	if len(matrix) == 0 {
		return collectorErrorf("Add", "matrix must be non-empty")
	}
	h, err := c.build(matrix)
	if err != nil {
		return err
	}
	c.docs = append(c.docs, h)

	return nil
}

// AppropriatenessOf builds matrix's HPG and returns the mean, over every
// stored document, of similarity.HPGSimilarity(stored, query). Returns 0
// (not an error) if no document has been added yet.
func (c *HPGCollector) AppropriatenessOf(matrix [][]string) (float64, error) {
	if len(matrix) == 0 {
		return 0, collectorErrorf("AppropriatenessOf", "matrix must be non-empty")
	}
	query, err := c.build(matrix)
	if err != nil {
		return 0, err
	}
	if len(c.docs) == 0 {
		return 0, nil
	}

	sum := 0.0
	for _, doc := range c.docs {
		sum += similarity.HPGSimilarity(doc.Levels, query.Levels, c.cfg.PerLevel) / float64(len(c.docs))
	}

	return sum, nil
}

// DocsCount reports how many documents have been absorbed so far.
func (c *HPGCollector) DocsCount() int { return len(c.docs) }
