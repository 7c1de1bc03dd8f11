package grid

import "fmt"

// AlignmentHorizontal positions cell content within its column width.
type AlignmentHorizontal uint8

const (
	AlignLeft AlignmentHorizontal = iota
	AlignCenter
	AlignRight
)

// AlignmentVertical positions cell content within its row height.
type AlignmentVertical uint8

const (
	AlignTop AlignmentVertical = iota
	AlignMiddle
	AlignBottom
)

// Indent is one side of a padding or margin: a size in character cells
// and the fill used for them. A zero Fill renders as a space.
type Indent struct {
	Size int
	Fill rune
}

func (i Indent) fill() rune {
	if i.Fill == 0 {
		return ' '
	}
	return i.Fill
}

// Padding is the inner spacing of a cell, contributing directly to its
// content box on all four sides.
type Padding struct {
	Left   Indent
	Right  Indent
	Top    Indent
	Bottom Indent
}

// NewPadding builds space-filled padding from four sizes.
func NewPadding(left, right, top, bottom int) Padding {
	return Padding{
		Left:   Indent{Size: left},
		Right:  Indent{Size: right},
		Top:    Indent{Size: top},
		Bottom: Indent{Size: bottom},
	}
}

// Margin is the outer spacing around the whole table.
type Margin struct {
	Left   Indent
	Right  Indent
	Top    Indent
	Bottom Indent
}

// Formatting holds per-cell text treatment flags.
type Formatting struct {
	// AllowLinesAlignment aligns each line of a multi-line cell
	// independently instead of aligning the block of lines as a unit.
	AllowLinesAlignment bool
	// TrimWhitespace strips leading and trailing blanks from every line
	// before measuring and rendering.
	TrimWhitespace bool
}

// LayoutError reports a configuration that cannot be laid out, such as a
// span reaching past the grid boundary. It is returned instead of
// rendering corrupted output.
type LayoutError struct {
	Pos Position
	Msg string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("grid: layout error at (%d,%d): %s", e.Pos.Row, e.Pos.Col, e.Msg)
}

// Config owns every layout decision apart from the cell text itself:
// the table-wide border glyphs, per-position border overrides, padding,
// alignment, formatting flags, colors, and the two span maps. A Config
// is built fresh per table, mutated through the setters, and read by
// Estimate and Render. It is not safe for concurrent mutation.
type Config struct {
	borders         Borders
	borderOverride  map[Position]Border
	horizontalLines map[int]HorizontalLine
	verticalLines   map[int]VerticalLine

	margin     Margin
	padding    *EntityMap[Padding]
	alignH     *EntityMap[AlignmentHorizontal]
	alignV     *EntityMap[AlignmentVertical]
	formatting *EntityMap[Formatting]
	fill       *EntityMap[rune]

	contentColors *EntityMap[*Color]
	borderColor   *Color
	borderColors  map[Position]*Color

	colSpans map[Position]int
	rowSpans map[Position]int
}

// NewConfig returns a configuration with no borders, zero padding and
// top-left alignment.
func NewConfig() *Config {
	return &Config{
		borderOverride:  make(map[Position]Border),
		horizontalLines: make(map[int]HorizontalLine),
		verticalLines:   make(map[int]VerticalLine),
		padding:         NewEntityMap(Padding{}),
		alignH:          NewEntityMap(AlignLeft),
		alignV:          NewEntityMap(AlignTop),
		formatting:      NewEntityMap(Formatting{}),
		fill:            NewEntityMap(' '),
		contentColors:   NewEntityMap[*Color](nil),
		borderColors:    make(map[Position]*Color),
		colSpans:        make(map[Position]int),
		rowSpans:        make(map[Position]int),
	}
}

// SetBorders replaces the table-wide border glyph set.
func (c *Config) SetBorders(b Borders) { c.borders = b }

// Borders returns the table-wide border glyph set.
func (c *Config) Borders() Borders { return c.borders }

// SetBorder overrides the border of a single cell. The override is
// layered over the table-wide glyphs side by side; unset sides fall
// through.
func (c *Config) SetBorder(pos Position, b Border) {
	if b.IsEmpty() {
		delete(c.borderOverride, pos)
		return
	}
	c.borderOverride[pos] = b
}

// RemoveBorder removes a per-cell border override.
func (c *Config) RemoveBorder(pos Position) { delete(c.borderOverride, pos) }

// SetHorizontalLine overrides the glyphs of the horizontal separator at
// the given line index (0 = above the first row).
func (c *Config) SetHorizontalLine(line int, l HorizontalLine) {
	c.horizontalLines[line] = l
}

// RemoveHorizontalLine removes a separator override.
func (c *Config) RemoveHorizontalLine(line int) { delete(c.horizontalLines, line) }

// SetVerticalLine overrides the glyphs of the vertical boundary at the
// given index (0 = left of the first column).
func (c *Config) SetVerticalLine(boundary int, l VerticalLine) {
	c.verticalLines[boundary] = l
}

// RemoveVerticalLine removes a boundary override.
func (c *Config) RemoveVerticalLine(boundary int) { delete(c.verticalLines, boundary) }

// SetMargin sets the outer margin around the table.
func (c *Config) SetMargin(m Margin) { c.margin = m }

// Margin returns the outer margin.
func (c *Config) Margin() Margin { return c.margin }

// SetPadding sets the padding for every position the entity covers.
func (c *Config) SetPadding(e Entity, p Padding) { c.padding.Set(e, p) }

// Padding returns the effective padding at pos.
func (c *Config) Padding(pos Position) Padding { return c.padding.Get(pos) }

// SetAlignmentHorizontal sets horizontal alignment for the entity.
func (c *Config) SetAlignmentHorizontal(e Entity, a AlignmentHorizontal) { c.alignH.Set(e, a) }

// AlignmentHorizontal returns the effective horizontal alignment at pos.
func (c *Config) AlignmentHorizontal(pos Position) AlignmentHorizontal { return c.alignH.Get(pos) }

// SetAlignmentVertical sets vertical alignment for the entity.
func (c *Config) SetAlignmentVertical(e Entity, a AlignmentVertical) { c.alignV.Set(e, a) }

// AlignmentVertical returns the effective vertical alignment at pos.
func (c *Config) AlignmentVertical(pos Position) AlignmentVertical { return c.alignV.Get(pos) }

// SetFormatting sets the formatting flags for the entity.
func (c *Config) SetFormatting(e Entity, f Formatting) { c.formatting.Set(e, f) }

// Formatting returns the effective formatting flags at pos.
func (c *Config) Formatting(pos Position) Formatting { return c.formatting.Get(pos) }

// SetFill sets the justification fill character for the entity.
func (c *Config) SetFill(e Entity, r rune) { c.fill.Set(e, r) }

// Fill returns the effective justification fill at pos.
func (c *Config) Fill(pos Position) rune { return c.fill.Get(pos) }

// SetColor wraps the content of the covered positions in the color's
// prefix and suffix sequences. The sequences have no measured width.
func (c *Config) SetColor(e Entity, col Color) {
	if col.IsEmpty() {
		c.contentColors.Set(e, nil)
		return
	}
	c.contentColors.Set(e, &col)
}

// Color returns the effective content color at pos, or nil.
func (c *Config) Color(pos Position) *Color { return c.contentColors.Get(pos) }

// SetBorderColor wraps every border glyph in the color's sequences.
func (c *Config) SetBorderColor(col Color) {
	if col.IsEmpty() {
		c.borderColor = nil
		return
	}
	c.borderColor = &col
}

// SetCellBorderColor colors the border glyphs adjacent to one cell,
// overriding the table-wide border color there.
func (c *Config) SetCellBorderColor(pos Position, col Color) {
	if col.IsEmpty() {
		delete(c.borderColors, pos)
		return
	}
	c.borderColors[pos] = &col
}

// SetColumnSpan declares that the cell anchored at pos covers n
// consecutive columns. n < 2 removes the span. A later call for the
// same anchor overwrites the earlier one.
func (c *Config) SetColumnSpan(pos Position, n int) {
	if n < 2 {
		delete(c.colSpans, pos)
		return
	}
	c.colSpans[pos] = n
}

// ColumnSpan returns the column span anchored at pos (1 when none).
func (c *Config) ColumnSpan(pos Position) int {
	if n, ok := c.colSpans[pos]; ok {
		return n
	}
	return 1
}

// SetRowSpan declares that the cell anchored at pos covers n
// consecutive rows. n < 2 removes the span.
func (c *Config) SetRowSpan(pos Position, n int) {
	if n < 2 {
		delete(c.rowSpans, pos)
		return
	}
	c.rowSpans[pos] = n
}

// RowSpan returns the row span anchored at pos (1 when none).
func (c *Config) RowSpan(pos Position) int {
	if n, ok := c.rowSpans[pos]; ok {
		return n
	}
	return 1
}

// HasSpans reports whether any span is configured.
func (c *Config) HasSpans() bool {
	return len(c.colSpans) > 0 || len(c.rowSpans) > 0
}

// region is the rectangle of positions a spanned anchor covers,
// inclusive on both ends.
type region struct {
	anchor Position
	r0, c0 int
	r1, c1 int
}

func (g region) contains(pos Position) bool {
	return pos.Row >= g.r0 && pos.Row <= g.r1 && pos.Col >= g.c0 && pos.Col <= g.c1
}

// regions collects every spanned region. Anchors carrying both a row
// and a column span produce a single rectangular region.
func (c *Config) regions() []region {
	if !c.HasSpans() {
		return nil
	}
	seen := make(map[Position]bool, len(c.colSpans)+len(c.rowSpans))
	var out []region
	add := func(pos Position) {
		if seen[pos] {
			return
		}
		seen[pos] = true
		out = append(out, region{
			anchor: pos,
			r0:     pos.Row, c0: pos.Col,
			r1: pos.Row + c.RowSpan(pos) - 1,
			c1: pos.Col + c.ColumnSpan(pos) - 1,
		})
	}
	for pos := range c.colSpans {
		add(pos)
	}
	for pos := range c.rowSpans {
		add(pos)
	}
	return out
}

// IsCellVisible reports whether pos owns its own content box, i.e. is
// not strictly covered by another cell's span.
func (c *Config) IsCellVisible(pos Position) bool {
	for _, g := range c.regions() {
		if g.anchor != pos && g.contains(pos) {
			return false
		}
	}
	return true
}

// coversVerticalBoundary reports whether a span swallows the vertical
// boundary b within row r, i.e. b lies strictly inside a region that
// covers the row.
func (c *Config) coversVerticalBoundary(r, b int) bool {
	for _, g := range c.regions() {
		if r >= g.r0 && r <= g.r1 && b > g.c0 && b <= g.c1 {
			return true
		}
	}
	return false
}

// coversHorizontalBoundary reports whether a span swallows the
// horizontal separator l within column col.
func (c *Config) coversHorizontalBoundary(l, col int) bool {
	for _, g := range c.regions() {
		if col >= g.c0 && col <= g.c1 && l > g.r0 && l <= g.r1 {
			return true
		}
	}
	return false
}

// HasVertical reports whether the vertical boundary b (0..cols) exists
// anywhere in the table, i.e. occupies an output column.
func (c *Config) HasVertical(b, cols int) bool {
	if l, ok := c.verticalLines[b]; ok {
		if l.Main != 0 || l.Intersection != 0 || l.Top != 0 || l.Bottom != 0 {
			return true
		}
	}
	switch {
	case b == 0:
		if c.borders.Left != 0 {
			return true
		}
	case b == cols:
		if c.borders.Right != 0 {
			return true
		}
	default:
		if c.borders.Vertical != 0 {
			return true
		}
	}
	for pos, ov := range c.borderOverride {
		if pos.Col == b && ov.Left != 0 {
			return true
		}
		if pos.Col == b-1 && ov.Right != 0 {
			return true
		}
	}
	return false
}

// HasHorizontal reports whether the horizontal separator l (0..rows)
// exists anywhere in the table, i.e. occupies an output line.
func (c *Config) HasHorizontal(l, rows int) bool {
	if ov, ok := c.horizontalLines[l]; ok {
		if ov.Main != 0 || ov.Intersection != 0 || ov.Left != 0 || ov.Right != 0 {
			return true
		}
	}
	switch {
	case l == 0:
		if c.borders.HasTop() {
			return true
		}
	case l == rows:
		if c.borders.HasBottom() {
			return true
		}
	default:
		if c.borders.HasHorizontal() {
			return true
		}
	}
	for pos, ov := range c.borderOverride {
		if pos.Row == l && ov.Top != 0 {
			return true
		}
		if pos.Row == l-1 && ov.Bottom != 0 {
			return true
		}
	}
	return false
}

// CountVerticals returns how many vertical boundaries exist in the
// half-open boundary range [from, to).
func (c *Config) CountVerticals(from, to, cols int) int {
	n := 0
	for b := from; b < to; b++ {
		if c.HasVertical(b, cols) {
			n++
		}
	}
	return n
}

// CountHorizontals returns how many horizontal separators exist in the
// half-open separator range [from, to).
func (c *Config) CountHorizontals(from, to, rows int) int {
	n := 0
	for l := from; l < to; l++ {
		if c.HasHorizontal(l, rows) {
			n++
		}
	}
	return n
}

// horizontalGlyph resolves the glyph of separator l across column col,
// before span suppression. Resolution is per-cell override, then
// per-line override, then the table-wide set.
func (c *Config) horizontalGlyph(l, col, rows int) rune {
	if l > 0 {
		if ov, ok := c.borderOverride[Position{Row: l - 1, Col: col}]; ok && ov.Bottom != 0 {
			return ov.Bottom
		}
	}
	if l < rows {
		if ov, ok := c.borderOverride[Position{Row: l, Col: col}]; ok && ov.Top != 0 {
			return ov.Top
		}
	}
	if ov, ok := c.horizontalLines[l]; ok && ov.Main != 0 {
		return ov.Main
	}
	switch {
	case l == 0:
		return c.borders.Top
	case l == rows:
		return c.borders.Bottom
	default:
		return c.borders.Horizontal
	}
}

// verticalGlyph resolves the glyph of boundary b within row r, before
// span suppression.
func (c *Config) verticalGlyph(r, b, cols int) rune {
	if b > 0 {
		if ov, ok := c.borderOverride[Position{Row: r, Col: b - 1}]; ok && ov.Right != 0 {
			return ov.Right
		}
	}
	if b < cols {
		if ov, ok := c.borderOverride[Position{Row: r, Col: b}]; ok && ov.Left != 0 {
			return ov.Left
		}
	}
	if ov, ok := c.verticalLines[b]; ok && ov.Main != 0 {
		return ov.Main
	}
	switch {
	case b == 0:
		return c.borders.Left
	case b == cols:
		return c.borders.Right
	default:
		return c.borders.Vertical
	}
}

// intersectionGlyph resolves the glyph where separator l meets boundary
// b, given the arms present there after span suppression. Corner and
// edge overrides from the line maps win over the table-wide set;
// straight continuations fall back to the line glyphs.
func (c *Config) intersectionGlyph(l, b int, arms uint8, rows, cols int) rune {
	if ov, ok := c.horizontalLines[l]; ok {
		switch {
		case b == 0 && ov.Left != 0:
			return ov.Left
		case b == cols && ov.Right != 0:
			return ov.Right
		case b > 0 && b < cols && ov.Intersection != 0 && arms == armUp|armDown|armLeft|armRight:
			return ov.Intersection
		}
	}
	if ov, ok := c.verticalLines[b]; ok {
		switch {
		case l == 0 && ov.Top != 0:
			return ov.Top
		case l == rows && ov.Bottom != 0:
			return ov.Bottom
		}
	}
	if g := c.borders.intersectionFor(arms); g != 0 {
		return g
	}
	// straight continuation or dead end: draw the line itself
	switch {
	case arms&(armLeft|armRight) != 0 && arms&(armUp|armDown) == 0:
		return c.horizontalGlyph(l, min(b, cols-1), rows)
	case arms&(armUp|armDown) != 0 && arms&(armLeft|armRight) == 0:
		return c.verticalGlyph(min(l, rows-1), b, cols)
	}
	return 0
}

// GetBorder resolves the full border of the cell at pos for a grid of
// the given shape: the per-cell override layered over the table-wide
// glyphs, with sides interior to a span cleared.
func (c *Config) GetBorder(pos Position, rows, cols int) Border {
	r, col := pos.Row, pos.Col
	b := Border{
		Top:    c.horizontalGlyph(r, col, rows),
		Bottom: c.horizontalGlyph(r+1, col, rows),
		Left:   c.verticalGlyph(r, col, cols),
		Right:  c.verticalGlyph(r, col+1, cols),
	}
	if c.HasHorizontal(r, rows) && c.HasVertical(col, cols) {
		b.TopLeft = c.intersectionGlyph(r, col, c.arms(r, col, rows, cols), rows, cols)
	}
	if c.HasHorizontal(r, rows) && c.HasVertical(col+1, cols) {
		b.TopRight = c.intersectionGlyph(r, col+1, c.arms(r, col+1, rows, cols), rows, cols)
	}
	if c.HasHorizontal(r+1, rows) && c.HasVertical(col, cols) {
		b.BottomLeft = c.intersectionGlyph(r+1, col, c.arms(r+1, col, rows, cols), rows, cols)
	}
	if c.HasHorizontal(r+1, rows) && c.HasVertical(col+1, cols) {
		b.BottomRight = c.intersectionGlyph(r+1, col+1, c.arms(r+1, col+1, rows, cols), rows, cols)
	}
	if c.coversHorizontalBoundary(r, col) {
		b.Top = 0
	}
	if c.coversHorizontalBoundary(r+1, col) {
		b.Bottom = 0
	}
	if c.coversVerticalBoundary(r, col) {
		b.Left = 0
	}
	if c.coversVerticalBoundary(r, col+1) {
		b.Right = 0
	}
	return b
}

// horizontalDrawn reports whether separator l is actually drawn across
// column col, i.e. exists and is not swallowed by a row span.
func (c *Config) horizontalDrawn(l, col, rows int) bool {
	return c.HasHorizontal(l, rows) &&
		c.horizontalGlyph(l, col, rows) != 0 &&
		!c.coversHorizontalBoundary(l, col)
}

// verticalDrawn reports whether boundary b is actually drawn within row
// r, i.e. exists and is not swallowed by a column span.
func (c *Config) verticalDrawn(r, b, cols int) bool {
	return c.HasVertical(b, cols) &&
		c.verticalGlyph(r, b, cols) != 0 &&
		!c.coversVerticalBoundary(r, b)
}

// arms computes which border segments meet at the intersection of
// separator l and boundary b, after span suppression. This is the
// border-correction input: the 4-bit result selects cross, tee, plain
// segment, or nothing.
func (c *Config) arms(l, b, rows, cols int) uint8 {
	var arms uint8
	if l > 0 && c.verticalDrawn(l-1, b, cols) {
		arms |= armUp
	}
	if l < rows && c.verticalDrawn(l, b, cols) {
		arms |= armDown
	}
	if b > 0 && c.horizontalDrawn(l, b-1, rows) {
		arms |= armLeft
	}
	if b < cols && c.horizontalDrawn(l, b, rows) {
		arms |= armRight
	}
	return arms
}

// Validate checks the span bookkeeping against the grid shape. Spans
// must stay inside the grid, anchors must be visible, and regions must
// not overlap; violations return a LayoutError.
func (c *Config) Validate(rows, cols int) error {
	regions := c.regions()
	for _, g := range regions {
		if g.r0 < 0 || g.c0 < 0 || g.r0 >= rows || g.c0 >= cols {
			return &LayoutError{Pos: g.anchor, Msg: "span anchor outside the grid"}
		}
		if g.r1 >= rows {
			return &LayoutError{Pos: g.anchor, Msg: fmt.Sprintf("row span of %d reaches past the last row", g.r1-g.r0+1)}
		}
		if g.c1 >= cols {
			return &LayoutError{Pos: g.anchor, Msg: fmt.Sprintf("column span of %d reaches past the last column", g.c1-g.c0+1)}
		}
	}
	for i, a := range regions {
		for _, b := range regions[i+1:] {
			if a.r0 <= b.r1 && b.r0 <= a.r1 && a.c0 <= b.c1 && b.c0 <= a.c1 {
				return &LayoutError{Pos: b.anchor, Msg: fmt.Sprintf("span overlaps the span anchored at (%d,%d)", a.anchor.Row, a.anchor.Col)}
			}
		}
	}
	return nil
}
