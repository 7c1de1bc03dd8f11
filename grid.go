package grid

import (
	"io"
	"strings"
)

// Grid ties records and configuration together and caches the computed
// dimension between renders. The cache is invalidated whenever the
// configuration or records are touched through the Grid; a Grid is not
// safe for concurrent mutation and render.
type Grid struct {
	records Records
	cfg     *Config
	dims    *Dimension
	fixed   bool // dims were injected, never re-estimated
	dirty   bool
}

// New creates a grid over the given records with a fresh, borderless
// configuration.
func New(records Records) *Grid {
	return &Grid{
		records: records,
		cfg:     NewConfig(),
		dirty:   true,
	}
}

// Config returns the grid's configuration for mutation. Taking the
// config invalidates the cached dimension, so the next render
// re-estimates.
func (g *Grid) Config() *Config {
	g.dirty = true
	return g.cfg
}

// Records returns the grid's records view.
func (g *Grid) Records() Records {
	return g.records
}

// SetRecords replaces the cell matrix and invalidates the cache.
func (g *Grid) SetRecords(records Records) {
	g.records = records
	g.dirty = true
}

// SetDimension injects externally fixed widths and heights; the grid
// stops estimating until the injection is cleared with a nil dimension.
func (g *Grid) SetDimension(d *Dimension) {
	g.dims = d
	g.fixed = d != nil
	g.dirty = d == nil
}

// Dimension returns the current layout, estimating it if records or
// configuration changed since the last render.
func (g *Grid) Dimension() *Dimension {
	if !g.fixed && (g.dirty || g.dims == nil) {
		g.dims = Estimate(g.records, g.cfg)
		g.dirty = false
	}
	return g.dims
}

// Render writes the table to w. An inconsistent span configuration is
// reported as a *LayoutError without producing output.
func (g *Grid) Render(w io.Writer) error {
	return Render(w, g.records, g.cfg, g.Dimension())
}

// String renders the table. It panics on a *LayoutError, which signals
// a programming error in the span configuration; use Render to handle
// it as a value.
func (g *Grid) String() string {
	var b strings.Builder
	if err := g.Render(&b); err != nil {
		panic(err)
	}
	return b.String()
}
