package grid

// Box drawing characters used by the built-in border presets.
const (
	BoxHorizontal         = '─'
	BoxVertical           = '│'
	BoxTopLeft            = '┌'
	BoxTopRight           = '┐'
	BoxBottomLeft         = '└'
	BoxBottomRight        = '┘'
	BoxTeeDown            = '┬'
	BoxTeeUp              = '┴'
	BoxTeeRight           = '├'
	BoxTeeLeft            = '┤'
	BoxCross              = '┼'
	BoxRoundedTopLeft     = '╭'
	BoxRoundedTopRight    = '╮'
	BoxRoundedBottomLeft  = '╰'
	BoxRoundedBottomRight = '╯'
	BoxDoubleHorizontal   = '═'
	BoxDoubleVertical     = '║'
	BoxDoubleTopLeft      = '╔'
	BoxDoubleTopRight     = '╗'
	BoxDoubleBottomLeft   = '╚'
	BoxDoubleBottomRight  = '╝'
	BoxDoubleTeeDown      = '╦'
	BoxDoubleTeeUp        = '╩'
	BoxDoubleTeeRight     = '╠'
	BoxDoubleTeeLeft      = '╣'
	BoxDoubleCross        = '╬'
)

// Border holds the glyphs framing a single cell: four sides and four
// corners. The zero rune means the side is absent.
type Border struct {
	Top         rune
	Bottom      rune
	Left        rune
	Right       rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// FilledBorder returns a border using the same glyph on every side.
func FilledBorder(r rune) Border {
	return Border{
		Top: r, Bottom: r, Left: r, Right: r,
		TopLeft: r, TopRight: r, BottomLeft: r, BottomRight: r,
	}
}

// IsEmpty reports whether no side of the border is set.
func (b Border) IsEmpty() bool {
	return b == Border{}
}

// IsUniform reports whether every side that is set uses the same glyph.
func (b Border) IsUniform() bool {
	var g rune
	for _, r := range [8]rune{b.Top, b.Bottom, b.Left, b.Right, b.TopLeft, b.TopRight, b.BottomLeft, b.BottomRight} {
		if r == 0 {
			continue
		}
		if g == 0 {
			g = r
		} else if r != g {
			return false
		}
	}
	return true
}

// Borders is the table-wide glyph set: the outer frame, the internal
// lines, and every kind of intersection. The zero rune disables a glyph;
// a fully zero Borders renders a frameless table.
type Borders struct {
	Top             rune // outer top line
	TopLeft         rune
	TopRight        rune
	TopIntersection rune // top line meeting an internal vertical

	Bottom             rune // outer bottom line
	BottomLeft         rune
	BottomRight        rune
	BottomIntersection rune

	Left              rune // outer left edge
	Right             rune // outer right edge
	LeftIntersection  rune // internal horizontal meeting the left edge
	RightIntersection rune

	Horizontal   rune // internal horizontal line
	Vertical     rune // internal vertical line
	Intersection rune // internal cross
}

// IsEmpty reports whether no glyph is set.
func (b Borders) IsEmpty() bool {
	return b == Borders{}
}

// HasTop reports whether the outer top line exists.
func (b Borders) HasTop() bool {
	return b.Top != 0 || b.TopLeft != 0 || b.TopRight != 0 || b.TopIntersection != 0
}

// HasBottom reports whether the outer bottom line exists.
func (b Borders) HasBottom() bool {
	return b.Bottom != 0 || b.BottomLeft != 0 || b.BottomRight != 0 || b.BottomIntersection != 0
}

// HasHorizontal reports whether internal horizontal separators exist.
func (b Borders) HasHorizontal() bool {
	return b.Horizontal != 0 || b.LeftIntersection != 0 || b.RightIntersection != 0 || b.Intersection != 0
}

// Built-in border styles.
var (
	// BordersASCII draws +---+ style frames with every intersection a '+'.
	BordersASCII = Borders{
		Top: '-', TopLeft: '+', TopRight: '+', TopIntersection: '+',
		Bottom: '-', BottomLeft: '+', BottomRight: '+', BottomIntersection: '+',
		Left: '|', Right: '|', LeftIntersection: '+', RightIntersection: '+',
		Horizontal: '-', Vertical: '|', Intersection: '+',
	}

	// BordersSingle uses single-line box drawing characters.
	BordersSingle = Borders{
		Top: BoxHorizontal, TopLeft: BoxTopLeft, TopRight: BoxTopRight, TopIntersection: BoxTeeDown,
		Bottom: BoxHorizontal, BottomLeft: BoxBottomLeft, BottomRight: BoxBottomRight, BottomIntersection: BoxTeeUp,
		Left: BoxVertical, Right: BoxVertical, LeftIntersection: BoxTeeRight, RightIntersection: BoxTeeLeft,
		Horizontal: BoxHorizontal, Vertical: BoxVertical, Intersection: BoxCross,
	}

	// BordersRounded is BordersSingle with rounded outer corners.
	BordersRounded = Borders{
		Top: BoxHorizontal, TopLeft: BoxRoundedTopLeft, TopRight: BoxRoundedTopRight, TopIntersection: BoxTeeDown,
		Bottom: BoxHorizontal, BottomLeft: BoxRoundedBottomLeft, BottomRight: BoxRoundedBottomRight, BottomIntersection: BoxTeeUp,
		Left: BoxVertical, Right: BoxVertical, LeftIntersection: BoxTeeRight, RightIntersection: BoxTeeLeft,
		Horizontal: BoxHorizontal, Vertical: BoxVertical, Intersection: BoxCross,
	}

	// BordersDouble uses double-line box drawing characters.
	BordersDouble = Borders{
		Top: BoxDoubleHorizontal, TopLeft: BoxDoubleTopLeft, TopRight: BoxDoubleTopRight, TopIntersection: BoxDoubleTeeDown,
		Bottom: BoxDoubleHorizontal, BottomLeft: BoxDoubleBottomLeft, BottomRight: BoxDoubleBottomRight, BottomIntersection: BoxDoubleTeeUp,
		Left: BoxDoubleVertical, Right: BoxDoubleVertical, LeftIntersection: BoxDoubleTeeRight, RightIntersection: BoxDoubleTeeLeft,
		Horizontal: BoxDoubleHorizontal, Vertical: BoxDoubleVertical, Intersection: BoxDoubleCross,
	}

	// BordersMarkdown has vertical pipes only; combine with a per-row
	// horizontal line override for the header rule.
	BordersMarkdown = Borders{
		Left: '|', Right: '|', Vertical: '|',
		Horizontal: '-', LeftIntersection: '|', RightIntersection: '|', Intersection: '|',
	}

	// BordersBlank keeps the table spacing but draws only whitespace.
	BordersBlank = Borders{
		Left: ' ', Right: ' ', Vertical: ' ',
	}
)

// HorizontalLine overrides the glyphs of one horizontal separator,
// addressed by separator index (0 is above the first row, R is below the
// last). Zero fields fall back to the table-wide Borders.
type HorizontalLine struct {
	Main         rune
	Intersection rune
	Left         rune
	Right        rune
}

// VerticalLine overrides the glyphs of one vertical boundary, addressed
// by boundary index (0 is left of the first column, C right of the last).
type VerticalLine struct {
	Main         rune
	Intersection rune
	Top          rune
	Bottom       rune
}

// Arm bits describe which border segments meet at an intersection point.
// The glyph drawn there is chosen from the combination, the same way
// merged box-drawing characters resolve on a cell buffer.
const (
	armUp uint8 = 1 << iota
	armRight
	armDown
	armLeft
)

// intersectionFor picks the glyph for an intersection given which arms
// are present. Straight continuations (two opposite arms or a single
// arm) return 0 so the caller falls back to the positional line glyph,
// which may differ from the internal one on the outer frame.
func (b Borders) intersectionFor(arms uint8) rune {
	switch arms {
	case armUp | armDown | armLeft | armRight:
		return b.Intersection
	case armLeft | armRight | armDown:
		return b.TopIntersection
	case armLeft | armRight | armUp:
		return b.BottomIntersection
	case armUp | armDown | armRight:
		return b.LeftIntersection
	case armUp | armDown | armLeft:
		return b.RightIntersection
	case armDown | armRight:
		return b.TopLeft
	case armDown | armLeft:
		return b.TopRight
	case armUp | armRight:
		return b.BottomLeft
	case armUp | armLeft:
		return b.BottomRight
	}
	return 0
}
