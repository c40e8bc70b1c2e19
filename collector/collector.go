// File: collector.go
// Role: the centroid Collector (spec.md §4.9, C9): absorbs documents into
// a single running representative graph via weighted Union, and scores
// new documents against it, grounded on
// NGramGraphCollectorBase.add/_add_graph/appropriateness_of.
package collector

import (
	"github.com/katalvlaran/ngramgraph/digraph"
	"github.com/katalvlaran/ngramgraph/ops"
	"github.com/katalvlaran/ngramgraph/proximity"
	"github.com/katalvlaran/ngramgraph/similarity"
)

// Metric compares two graphs, matching gindex.Metric's value-only shape;
// similarity.SS/VS/NVS are used through a wrapper that drops their
// Components result (as nvsMetric does).
type Metric func(a, b *digraph.Graph) float64

func nvsMetric(a, b *digraph.Graph) float64 {
	v, _ := similarity.NVS(a, b)

	return v
}

// Config holds a Collector's tunables.
type Config struct {
	N        int // n-gram rank
	Window   int // proximity window D_win
	Metric   Metric
	DeepCopy bool
}

// Option mutates a Config.
type Option func(*Config)

// WithMetric overrides the default NVS scoring metric.
func WithMetric(m Metric) Option { return func(c *Config) { c.Metric = m } }

// WithDeepCopy makes the internal Union build a fresh graph each merge
// instead of mutating the representative graph in place.
func WithDeepCopy(v bool) Option { return func(c *Config) { c.DeepCopy = v } }

func newConfig(n, window int, opts ...Option) (Config, error) {
	cfg := Config{N: n, Window: window, Metric: nvsMetric}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.N < 1 {
		return Config{}, collectorErrorf("New", "n must be >= 1, got %d", cfg.N)
	}
	if cfg.Window < 1 {
		return Config{}, collectorErrorf("New", "window must be >= 1, got %d", cfg.Window)
	}

	return cfg, nil
}

// Collector incrementally merges n-gram proximity graphs of documents
// into a running centroid and scores new documents against it. The zero
// value is not usable; construct with New.
type Collector struct {
	cfg            Config
	representative *digraph.Graph
	docsCount      int
}

// New constructs a Collector with the given n-gram rank and proximity
// window (the defaults DocumentNGramGraph's n=3, window_size=3 mirror).
func New(n, window int, opts ...Option) (*Collector, error) {
	cfg, err := newConfig(n, window, opts...)
	if err != nil {
		return nil, err
	}

	return &Collector{cfg: cfg}, nil
}

// buildGraph turns atoms into the proximity graph this Collector scores
// with (always the asymmetric builder, matching DocumentNGramGraph).
func (c *Collector) buildGraph(atoms []string) (*digraph.Graph, error) {
	return proximity.BuildAsymmetric(atoms, c.cfg.N, c.cfg.Window)
}

// Add folds atoms' graph into the running representative. The first
// document becomes the representative outright; every later document is
// merged in with learning factor 1/(docsCount+1), so each later document
// carries a smaller share as more are absorbed (_add_graph's Union(lf=...)).
func (c *Collector) Add(atoms []string) error {
	if len(atoms) == 0 {
		return collectorErrorf("Add", "atoms must be non-empty")
	}
	g, err := c.buildGraph(atoms)
	if err != nil {
		return err
	}

	if c.docsCount == 0 {
		c.representative = g
	} else {
		lf := 1 / float64(c.docsCount+1)
		c.representative = ops.Union(c.representative, g, lf, c.cfg.DeepCopy)
	}
	c.docsCount++

	return nil
}

// AppropriatenessOf returns the Collector's metric (NVS by default)
// between atoms' graph and the running representative. Returns 0 (not an
// error) if the Collector has not absorbed any document yet, matching
// spec.md §7's "does not raise on an empty representative when scoring".
func (c *Collector) AppropriatenessOf(atoms []string) (float64, error) {
	if len(atoms) == 0 {
		return 0, collectorErrorf("AppropriatenessOf", "atoms must be non-empty")
	}
	g, err := c.buildGraph(atoms)
	if err != nil {
		return 0, err
	}
	if c.docsCount == 0 {
		return 0, nil
	}

	return c.cfg.Metric(g, c.representative), nil
}

// RepresentativeGraph exposes the current running centroid, or nil if no
// document has been added yet.
func (c *Collector) RepresentativeGraph() *digraph.Graph {
	return c.representative
}

// DocsCount reports how many documents have been absorbed so far.
func (c *Collector) DocsCount() int {
	return c.docsCount
}
