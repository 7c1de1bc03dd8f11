// Package grid lays out and renders tabular text for terminals.
//
// The engine is a pure function over three inputs: a Records view of the
// cell matrix, a Config describing borders, padding, alignment and spans,
// and a Dimension holding per-column widths and per-row heights. Estimate
// computes a Dimension from the first two; Render turns all three into the
// final character stream.
package grid

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the display width of s in terminal columns.
// Characters are grouped into grapheme clusters so that combining marks
// and ZWJ emoji sequences count once; East Asian wide characters count
// as two columns.
func Width(s string) int {
	w := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w += clusterWidth(g.Runes())
	}
	return w
}

// WidthRune returns the display width of a single rune (0, 1 or 2).
func WidthRune(r rune) int {
	return runewidth.RuneWidth(r)
}

// WidthANSI returns the display width of s with ANSI escape sequences
// (SGR colors, OSC hyperlinks) excluded from the measurement. The escape
// bytes themselves are preserved by the renderer; they just occupy no
// columns. Malformed sequences are measured as plain text.
func WidthANSI(s string) int {
	return Width(ansi.Strip(s))
}

// clusterWidth measures one grapheme cluster as the widest of its runes.
// Combining marks and joiners are zero-width, so a base character plus
// marks measures as the base alone.
func clusterWidth(runes []rune) int {
	w := 0
	for _, r := range runes {
		if rw := runewidth.RuneWidth(r); rw > w {
			w = rw
		}
	}
	return w
}
