package grid

import (
	"sort"
	"strings"
)

// Dimension is the computed layout of a table: one width per column and
// one height per row, in character cells. It is produced once by
// Estimate (or injected for constant-size variants) and treated as
// immutable during rendering.
type Dimension struct {
	widths  []int
	heights []int
}

// NewDimension wraps externally fixed widths and heights.
func NewDimension(widths, heights []int) *Dimension {
	return &Dimension{widths: widths, heights: heights}
}

// Width returns the width of column c.
func (d *Dimension) Width(c int) int { return d.widths[c] }

// Height returns the height of row r.
func (d *Dimension) Height(r int) int { return d.heights[r] }

// Widths returns the per-column widths.
func (d *Dimension) Widths() []int { return d.widths }

// Heights returns the per-row heights.
func (d *Dimension) Heights() []int { return d.heights }

// spanEntry is one spanned anchor waiting for redistribution.
type spanEntry struct {
	pos      Position
	span     int
	required int
}

// Estimate computes column widths and row heights so that every visible
// cell fits its column and row, and every spanned cell fits the sum of
// what it covers plus the internal borders inside the span.
//
// Spanned cells are redistributed after all plain cells have been
// folded in, smallest span first (ties broken by anchor position in
// row-major order) so a wide span spreads over slack the narrow ones
// already claimed. A deficit is split evenly over the covered slots
// with integer division; the remainder goes to the first slot.
func Estimate(records Records, cfg *Config) *Dimension {
	rows, cols := records.CountRows(), records.CountColumns()
	d := &Dimension{
		widths:  make([]int, cols),
		heights: make([]int, rows),
	}
	if rows == 0 || cols == 0 {
		return d
	}

	var wspans, hspans []spanEntry
	for r := range rows {
		for c := range cols {
			pos := Position{Row: r, Col: c}
			if !cfg.IsCellVisible(pos) {
				continue
			}
			w, h := contentSize(records.Cell(pos), cfg, pos)

			if n := cfg.ColumnSpan(pos); n > 1 {
				wspans = append(wspans, spanEntry{pos: pos, span: n, required: w})
			} else if w > d.widths[c] {
				d.widths[c] = w
			}
			if n := cfg.RowSpan(pos); n > 1 {
				hspans = append(hspans, spanEntry{pos: pos, span: n, required: h})
			} else if h > d.heights[r] {
				d.heights[r] = h
			}
		}
	}

	sortSpans(wspans)
	for _, s := range wspans {
		c := s.pos.Col
		current := cfg.CountVerticals(c+1, c+s.span, cols)
		for i := c; i < c+s.span && i < cols; i++ {
			current += d.widths[i]
		}
		distributeDeficit(d.widths, c, s.span, s.required-current)
	}

	sortSpans(hspans)
	for _, s := range hspans {
		r := s.pos.Row
		current := cfg.CountHorizontals(r+1, r+s.span, rows)
		for i := r; i < r+s.span && i < rows; i++ {
			current += d.heights[i]
		}
		distributeDeficit(d.heights, r, s.span, s.required-current)
	}

	return d
}

// sortSpans orders ascending by span length, then row-major by anchor.
func sortSpans(spans []spanEntry) {
	sort.SliceStable(spans, func(i, j int) bool {
		a, b := spans[i], spans[j]
		if a.span != b.span {
			return a.span < b.span
		}
		if a.pos.Row != b.pos.Row {
			return a.pos.Row < b.pos.Row
		}
		return a.pos.Col < b.pos.Col
	})
}

// distributeDeficit grows n slots starting at from so their sum gains
// deficit: an equal integer share each, remainder to the first slot.
func distributeDeficit(slots []int, from, n, deficit int) {
	if deficit <= 0 {
		return
	}
	one := deficit / n
	rem := deficit - n*one
	for i := from; i < from+n && i < len(slots); i++ {
		slots[i] += one
	}
	if from < len(slots) {
		slots[from] += rem
	}
}

// contentSize measures one cell: its widest line plus horizontal
// padding, and its line count plus vertical padding.
func contentSize(cell CellContent, cfg *Config, pos Position) (w, h int) {
	fmtg := cfg.Formatting(pos)
	if fmtg.TrimWhitespace {
		for i := range cell.LineCount() {
			lw := WidthANSI(strings.TrimSpace(cell.Line(i)))
			if lw > w {
				w = lw
			}
		}
	} else {
		w = cell.Width()
	}
	pad := cfg.Padding(pos)
	w += pad.Left.Size + pad.Right.Size
	h = cell.LineCount() + pad.Top.Size + pad.Bottom.Size
	return w, h
}
