package grid

import "github.com/muesli/termenv"

// Color wraps rendered glyphs in caller-supplied escape sequences. The
// prefix and suffix are emitted around a run of glyphs and contribute
// nothing to measured width.
type Color struct {
	Prefix string
	Suffix string
}

// IsEmpty reports whether the color does nothing.
func (c Color) IsEmpty() bool {
	return c.Prefix == "" && c.Suffix == ""
}

// Fg builds a foreground Color from a termenv color, e.g.
// Fg(termenv.ANSIRed) or Fg(termenv.RGBColor("#ff8800")).
func Fg(c termenv.Color) Color {
	if c == nil {
		return Color{}
	}
	seq := c.Sequence(false)
	if seq == "" {
		return Color{}
	}
	return Color{
		Prefix: termenv.CSI + seq + "m",
		Suffix: termenv.CSI + termenv.ResetSeq + "m",
	}
}

// Bg builds a background Color from a termenv color.
func Bg(c termenv.Color) Color {
	if c == nil {
		return Color{}
	}
	seq := c.Sequence(true)
	if seq == "" {
		return Color{}
	}
	return Color{
		Prefix: termenv.CSI + seq + "m",
		Suffix: termenv.CSI + termenv.ResetSeq + "m",
	}
}

// Combine layers colors so their prefixes apply in order. Useful for
// foreground plus background.
func Combine(colors ...Color) Color {
	var out Color
	for _, c := range colors {
		out.Prefix += c.Prefix
	}
	for i := len(colors) - 1; i >= 0; i-- {
		out.Suffix += colors[i].Suffix
	}
	return out
}
