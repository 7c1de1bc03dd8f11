package grid

import "strings"

// Records is a read-only view over the cell matrix. The engine never
// owns cell storage; adapters materialize their source into this shape.
type Records interface {
	CountRows() int
	CountColumns() int
	// Cell returns the content at pos. pos must be in bounds.
	Cell(pos Position) CellContent
}

// CellContent exposes one cell's text together with its line metrics.
// Widths are ANSI-aware display widths, so colored text measures the
// same as its plain form.
type CellContent interface {
	Text() string
	LineCount() int
	Line(i int) string
	LineWidth(i int) int
	// Width is the widest line of the cell.
	Width() int
}

// stringCell is CellContent over a plain string with metrics computed
// once at construction.
type stringCell struct {
	text   string
	lines  []string
	widths []int
	width  int
}

// NewCellContent wraps text as CellContent, splitting lines and
// measuring them eagerly. Text may contain ANSI escape sequences; they
// are preserved verbatim and excluded from the measured width.
func NewCellContent(text string) CellContent {
	lines := SplitLines(text)
	widths := make([]int, len(lines))
	width := 0
	for i, ln := range lines {
		widths[i] = WidthANSI(ln)
		if widths[i] > width {
			width = widths[i]
		}
	}
	return stringCell{text: text, lines: lines, widths: widths, width: width}
}

// NewColoredCellContent wraps every line of text in the color's prefix
// and suffix before building the cell. The sequences travel with the
// text and add nothing to its measured width.
func NewColoredCellContent(text string, col Color) CellContent {
	if col.IsEmpty() {
		return NewCellContent(text)
	}
	lines := SplitLines(text)
	for i, ln := range lines {
		lines[i] = col.Prefix + ln + col.Suffix
	}
	return NewCellContent(strings.Join(lines, "\n"))
}

func (c stringCell) Text() string       { return c.text }
func (c stringCell) LineCount() int     { return len(c.lines) }
func (c stringCell) Line(i int) string  { return c.lines[i] }
func (c stringCell) LineWidth(i int) int { return c.widths[i] }
func (c stringCell) Width() int         { return c.width }

// StringRecords is an in-memory Records over [][]string. Ragged input is
// padded with empty cells so the matrix is dense; the column count is
// the longest row.
type StringRecords struct {
	cells [][]CellContent
	cols  int
}

// NewStringRecords builds records from rows of cell text.
func NewStringRecords(rows [][]string) *StringRecords {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	empty := NewCellContent("")
	cells := make([][]CellContent, len(rows))
	for r, row := range rows {
		cells[r] = make([]CellContent, cols)
		for c := range cols {
			if c < len(row) {
				cells[r][c] = NewCellContent(row[c])
			} else {
				cells[r][c] = empty
			}
		}
	}
	return &StringRecords{cells: cells, cols: cols}
}

// CountRows implements Records.
func (r *StringRecords) CountRows() int {
	return len(r.cells)
}

// CountColumns implements Records.
func (r *StringRecords) CountColumns() int {
	return r.cols
}

// Cell implements Records.
func (r *StringRecords) Cell(pos Position) CellContent {
	return r.cells[pos.Row][pos.Col]
}

// SetCell replaces the content at pos. It panics on out-of-range
// positions, matching the Records contract.
func (r *StringRecords) SetCell(pos Position, text string) {
	r.cells[pos.Row][pos.Col] = NewCellContent(text)
}
