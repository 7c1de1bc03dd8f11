package grid

import (
	"io"
	"strings"
	"unicode/utf8"
)

// canvasCell is one output character cell. Escape sequences embedded in
// cell text ride along as zero-width prefix/suffix bytes; wide runes
// occupy their cell plus a continuation marker.
type canvasCell struct {
	r     rune
	pre   string // raw escape bytes emitted before the rune
	post  string // raw escape bytes emitted after the rune
	color *Color // color wrapping, grouped over adjacent runs
	cont  bool   // continuation of a wide rune, skipped on output
}

// canvas is the render surface: a dense grid of character cells that
// border lines, cell content and spans are drawn onto before the result
// is serialized. Drawing through a canvas keeps span regions and border
// suppression local instead of threading them through a line streamer.
type canvas struct {
	cells  []canvasCell
	width  int
	height int
}

func newCanvas(width, height int) *canvas {
	cells := make([]canvasCell, width*height)
	for i := range cells {
		cells[i].r = ' '
	}
	return &canvas{cells: cells, width: width, height: height}
}

func (cv *canvas) at(x, y int) *canvasCell {
	return &cv.cells[y*cv.width+x]
}

// setRune places r at (x, y) with an optional color. A two-column rune
// claims the following cell as continuation; a rune that would overflow
// maxX is replaced by fill spaces.
func (cv *canvas) setRune(x, y int, r rune, color *Color) int {
	w := WidthRune(r)
	if w == 0 {
		w = 1
	}
	c := cv.at(x, y)
	c.r = r
	c.color = color
	c.cont = false
	if w == 2 && x+1 < cv.width {
		n := cv.at(x+1, y)
		n.r = 0
		n.cont = true
		n.color = color
	}
	return w
}

// fill draws a horizontal run of the same rune.
func (cv *canvas) fill(x, y, n int, r rune, color *Color) {
	for i := range n {
		cv.setRune(x+i, y, r, color)
	}
}

// writeText draws one line of cell text at (x, y), clipped to max
// columns. ANSI escape sequences in the text are preserved as
// zero-width bytes attached to the neighboring runes. Returns the
// number of columns used.
func (cv *canvas) writeText(x, y int, text string, max int, color *Color) int {
	used := 0
	pending := ""
	var last *canvasCell
	i := 0
	for i < len(text) {
		if text[i] == 0x1b {
			seq, n := scanEscape(text[i:])
			pending += seq
			i += n
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		w := WidthRune(r)
		if w == 0 {
			// combining mark: attach to the previous cell's bytes
			if last != nil {
				last.post += string(r)
			} else {
				pending += string(r)
			}
			continue
		}
		if used+w > max {
			break
		}
		cv.setRune(x+used, y, r, color)
		last = cv.at(x+used, y)
		if pending != "" {
			last.pre = pending
			pending = ""
		}
		used += w
	}
	if pending != "" && last != nil {
		last.post += pending
	}
	return used
}

// String serializes the canvas, grouping adjacent cells of the same
// color into a single prefix/suffix wrap. Lines are joined with '\n'
// and carry no trailing terminator.
func (cv *canvas) String() string {
	var b strings.Builder
	b.Grow(cv.width*cv.height + cv.height)
	for y := range cv.height {
		if y > 0 {
			b.WriteByte('\n')
		}
		var open *Color
		for x := 0; x < cv.width; x++ {
			c := cv.at(x, y)
			if c.cont {
				continue
			}
			if c.color != open {
				if open != nil {
					b.WriteString(open.Suffix)
				}
				open = c.color
				if open != nil {
					b.WriteString(open.Prefix)
				}
			}
			b.WriteString(c.pre)
			b.WriteRune(c.r)
			b.WriteString(c.post)
		}
		if open != nil {
			b.WriteString(open.Suffix)
		}
	}
	return b.String()
}

// scanEscape consumes one escape sequence at the start of s (which
// begins with ESC) and returns it with its byte length. CSI sequences
// run to their final byte, OSC sequences to BEL or ST; anything else is
// the two-byte ESC form. An unterminated sequence is taken whole.
func scanEscape(s string) (string, int) {
	if len(s) < 2 {
		return s, len(s)
	}
	switch s[1] {
	case '[': // CSI
		for i := 2; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7e {
				return s[:i+1], i + 1
			}
		}
		return s, len(s)
	case ']': // OSC
		for i := 2; i < len(s); i++ {
			if s[i] == 0x07 {
				return s[:i+1], i + 1
			}
			if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '\\' {
				return s[:i+2], i + 2
			}
		}
		return s, len(s)
	default:
		return s[:2], 2
	}
}

// layout maps grid coordinates to canvas coordinates for one render.
type layout struct {
	rows, cols int
	xs         []int // canvas x of each column's content, len cols
	ys         []int // canvas y of each row's first line, len rows
	bx         []int // canvas x of each vertical boundary, -1 if absent, len cols+1
	by         []int // canvas y of each horizontal separator, -1 if absent, len rows+1
	width      int   // total canvas width including margins
	height     int
	mLeft      int
	mTop       int
}

func newLayout(cfg *Config, d *Dimension, rows, cols int) layout {
	m := cfg.Margin()
	lo := layout{
		rows: rows, cols: cols,
		xs: make([]int, cols), ys: make([]int, rows),
		bx: make([]int, cols+1), by: make([]int, rows+1),
		mLeft: m.Left.Size, mTop: m.Top.Size,
	}
	x := m.Left.Size
	for b := 0; b <= cols; b++ {
		if cfg.HasVertical(b, cols) {
			lo.bx[b] = x
			x++
		} else {
			lo.bx[b] = -1
		}
		if b < cols {
			lo.xs[b] = x
			x += d.Width(b)
		}
	}
	lo.width = x + m.Right.Size

	y := m.Top.Size
	for l := 0; l <= rows; l++ {
		if cfg.HasHorizontal(l, rows) {
			lo.by[l] = y
			y++
		} else {
			lo.by[l] = -1
		}
		if l < rows {
			lo.ys[l] = y
			y += d.Height(l)
		}
	}
	lo.height = y + m.Bottom.Size
	return lo
}

// Render lays the table out onto a canvas and writes the character
// stream to w. It validates the span bookkeeping first and refuses to
// render an inconsistent configuration.
func Render(w io.Writer, records Records, cfg *Config, d *Dimension) error {
	s, err := renderString(records, cfg, d)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

func renderString(records Records, cfg *Config, d *Dimension) (string, error) {
	rows, cols := records.CountRows(), records.CountColumns()
	if rows == 0 || cols == 0 {
		return "", nil
	}
	if err := cfg.Validate(rows, cols); err != nil {
		return "", err
	}
	if len(d.widths) < cols || len(d.heights) < rows {
		return "", &LayoutError{Msg: "dimension does not cover the grid shape"}
	}

	lo := newLayout(cfg, d, rows, cols)
	cv := newCanvas(lo.width, lo.height)

	drawMargin(cv, cfg, lo)
	drawBorders(cv, cfg, d, lo)
	for r := range rows {
		for c := range cols {
			pos := Position{Row: r, Col: c}
			if !cfg.IsCellVisible(pos) {
				continue
			}
			drawCell(cv, records.Cell(pos), cfg, d, lo, pos)
		}
	}
	drawIntersections(cv, cfg, lo)

	return cv.String(), nil
}

// drawMargin fills the outer margin with its fill characters.
func drawMargin(cv *canvas, cfg *Config, lo layout) {
	m := cfg.Margin()
	for y := range m.Top.Size {
		cv.fill(0, y, lo.width, m.Top.fill(), nil)
	}
	for y := lo.height - m.Bottom.Size; y < lo.height; y++ {
		cv.fill(0, y, lo.width, m.Bottom.fill(), nil)
	}
	for y := m.Top.Size; y < lo.height-m.Bottom.Size; y++ {
		for x := range m.Left.Size {
			cv.setRune(x, y, m.Left.fill(), nil)
		}
		for x := lo.width - m.Right.Size; x < lo.width; x++ {
			cv.setRune(x, y, m.Right.fill(), nil)
		}
	}
}

// drawBorders draws every horizontal and vertical segment that survives
// span suppression. Intersections are resolved afterwards in their own
// pass, once all segment suppression is known.
func drawBorders(cv *canvas, cfg *Config, d *Dimension, lo layout) {
	rows, cols := lo.rows, lo.cols
	for l := 0; l <= rows; l++ {
		if lo.by[l] < 0 {
			continue
		}
		for c := range cols {
			if !cfg.horizontalDrawn(l, c, rows) {
				continue
			}
			g := cfg.horizontalGlyph(l, c, rows)
			cv.fill(lo.xs[c], lo.by[l], d.Width(c), g, borderColorAt(cfg, l, c, rows))
		}
	}
	for b := 0; b <= cols; b++ {
		if lo.bx[b] < 0 {
			continue
		}
		for r := range rows {
			if !cfg.verticalDrawn(r, b, cols) {
				continue
			}
			g := cfg.verticalGlyph(r, b, cols)
			col := borderColorAtV(cfg, r, b, cols)
			for y := lo.ys[r]; y < lo.ys[r]+d.Height(r); y++ {
				cv.setRune(lo.bx[b], y, g, col)
			}
		}
	}
}

// drawIntersections runs the border-correction pass: at every crossing
// of an existing separator and boundary, the glyph is chosen from the
// arms that actually meet there, so spans demote crosses to tees, tees
// to plain segments, and drop the glyph entirely when nothing meets.
func drawIntersections(cv *canvas, cfg *Config, lo layout) {
	rows, cols := lo.rows, lo.cols
	for l := 0; l <= rows; l++ {
		if lo.by[l] < 0 {
			continue
		}
		for b := 0; b <= cols; b++ {
			if lo.bx[b] < 0 {
				continue
			}
			arms := cfg.arms(l, b, rows, cols)
			if arms == 0 {
				continue
			}
			g := cfg.intersectionGlyph(l, b, arms, rows, cols)
			if g == 0 {
				continue
			}
			cv.setRune(lo.bx[b], lo.by[l], g, intersectionColor(cfg, l, b))
		}
	}
}

// drawCell renders one visible cell (or spanned region) into its
// content box: padding fills, then each text line with its alignment.
func drawCell(cv *canvas, cell CellContent, cfg *Config, d *Dimension, lo layout, pos Position) {
	m := cfg.RowSpan(pos)
	n := cfg.ColumnSpan(pos)
	r1 := pos.Row + m - 1
	c1 := pos.Col + n - 1

	x0 := lo.xs[pos.Col]
	x1 := lo.xs[c1] + d.Width(c1)
	y0 := lo.ys[pos.Row]
	y1 := lo.ys[r1] + d.Height(r1)
	w := x1 - x0
	h := y1 - y0
	if w <= 0 || h <= 0 {
		return
	}

	pad := cfg.Padding(pos)
	color := cfg.Color(pos)

	// padding bands
	for y := 0; y < min(pad.Top.Size, h); y++ {
		cv.fill(x0, y0+y, w, pad.Top.fill(), color)
	}
	for y := max(h-pad.Bottom.Size, 0); y < h; y++ {
		cv.fill(x0, y0+y, w, pad.Bottom.fill(), color)
	}
	innerY0 := min(pad.Top.Size, h)
	innerY1 := max(h-pad.Bottom.Size, innerY0)
	innerX0 := min(pad.Left.Size, w)
	innerX1 := max(w-pad.Right.Size, innerX0)
	for y := innerY0; y < innerY1; y++ {
		for x := 0; x < innerX0; x++ {
			cv.setRune(x0+x, y0+y, pad.Left.fill(), color)
		}
		for x := innerX1; x < w; x++ {
			cv.setRune(x0+x, y0+y, pad.Right.fill(), color)
		}
	}

	innerW := innerX1 - innerX0
	innerH := innerY1 - innerY0

	fmtg := cfg.Formatting(pos)
	lines := make([]string, cell.LineCount())
	widths := make([]int, cell.LineCount())
	block := 0
	for i := range lines {
		ln := cell.Line(i)
		if fmtg.TrimWhitespace {
			ln = strings.TrimSpace(ln)
			widths[i] = WidthANSI(ln)
		} else {
			widths[i] = cell.LineWidth(i)
		}
		lines[i] = ln
		if widths[i] > block {
			block = widths[i]
		}
	}

	fill := cfg.Fill(pos)
	alignH := cfg.AlignmentHorizontal(pos)
	top := verticalOffset(cfg.AlignmentVertical(pos), innerH, len(lines))

	for y := 0; y < innerH; y++ {
		li := y - top
		var ln string
		lw := 0
		if li >= 0 && li < len(lines) {
			ln = lines[li]
			lw = widths[li]
		}
		if !fmtg.AllowLinesAlignment && ln != "" {
			// block alignment: pad the line to the block width first,
			// then align the block as a unit
			if lw < block && block <= innerW {
				ln += strings.Repeat(string(fill), block-lw)
				lw = block
			}
		}
		indent := horizontalOffset(alignH, innerW, lw)
		cv.fill(x0+innerX0, y0+y, indent, fill, color)
		used := indent
		if ln != "" {
			used += cv.writeText(x0+innerX0+indent, y0+y, ln, innerW-indent, color)
		}
		cv.fill(x0+innerX0+used, y0+y, innerW-used, fill, color)
	}
}

func horizontalOffset(a AlignmentHorizontal, avail, width int) int {
	if width >= avail {
		return 0
	}
	switch a {
	case AlignCenter:
		return (avail - width) / 2
	case AlignRight:
		return avail - width
	}
	return 0
}

func verticalOffset(a AlignmentVertical, avail, lines int) int {
	if lines >= avail {
		return 0
	}
	switch a {
	case AlignMiddle:
		return (avail - lines) / 2
	case AlignBottom:
		return avail - lines
	}
	return 0
}

// borderColorAt picks the color of a horizontal segment from the cell
// overrides adjacent to it, falling back to the table-wide border color.
func borderColorAt(cfg *Config, l, c, rows int) *Color {
	if l > 0 {
		if col, ok := cfg.borderColors[Position{Row: l - 1, Col: c}]; ok {
			return col
		}
	}
	if l < rows {
		if col, ok := cfg.borderColors[Position{Row: l, Col: c}]; ok {
			return col
		}
	}
	return cfg.borderColor
}

// borderColorAtV picks the color of a vertical segment.
func borderColorAtV(cfg *Config, r, b, cols int) *Color {
	if b > 0 {
		if col, ok := cfg.borderColors[Position{Row: r, Col: b - 1}]; ok {
			return col
		}
	}
	if b < cols {
		if col, ok := cfg.borderColors[Position{Row: r, Col: b}]; ok {
			return col
		}
	}
	return cfg.borderColor
}

// intersectionColor picks the color of an intersection glyph from any
// adjacent cell override.
func intersectionColor(cfg *Config, l, b int) *Color {
	for _, pos := range [4]Position{
		{Row: l - 1, Col: b - 1}, {Row: l - 1, Col: b},
		{Row: l, Col: b - 1}, {Row: l, Col: b},
	} {
		if col, ok := cfg.borderColors[pos]; ok {
			return col
		}
	}
	return cfg.borderColor
}
