package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEstimateBasic(t *testing.T) {
	rec := NewStringRecords([][]string{
		{"aaa", "b"},
		{"c", "dddd"},
	})
	d := Estimate(rec, NewConfig())
	if diff := cmp.Diff([]int{3, 4}, d.Widths()); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 1}, d.Heights()); diff != "" {
		t.Errorf("heights mismatch (-want +got):\n%s", diff)
	}
}

func TestEstimatePaddingContributes(t *testing.T) {
	rec := NewStringRecords([][]string{{"ab"}})
	cfg := NewConfig()
	cfg.SetPadding(Global(), NewPadding(1, 2, 3, 4))
	d := Estimate(rec, cfg)
	if d.Width(0) != 5 {
		t.Errorf("width = %d, want 2+1+2", d.Width(0))
	}
	if d.Height(0) != 8 {
		t.Errorf("height = %d, want 1+3+4", d.Height(0))
	}
}

func TestEstimateMultiline(t *testing.T) {
	rec := NewStringRecords([][]string{
		{"left\ncell", "1\n2\n3\n4\n5\n6"},
	})
	d := Estimate(rec, NewConfig())
	if d.Height(0) != 6 {
		t.Errorf("row height = %d, want 6 (tallest cell)", d.Height(0))
	}
	if d.Width(0) != 4 {
		t.Errorf("column width = %d, want 4 (widest line)", d.Width(0))
	}
}

func TestEstimateUnicodeWidth(t *testing.T) {
	rec := NewStringRecords([][]string{{"日本語"}, {"ascii"}})
	d := Estimate(rec, NewConfig())
	if d.Width(0) != 6 {
		t.Errorf("width = %d, want 6 for CJK over 5 ascii", d.Width(0))
	}
}

func TestEstimateEmpty(t *testing.T) {
	d := Estimate(NewStringRecords(nil), NewConfig())
	if len(d.Widths()) != 0 || len(d.Heights()) != 0 {
		t.Errorf("empty table: widths=%v heights=%v", d.Widths(), d.Heights())
	}
}

// A spanned cell must fit the sum of the columns it covers plus the
// internal borders inside the span; after redistribution the equality
// must be exact, with the integer remainder assigned to the first
// covered column.
func TestEstimateColumnSpanRedistribution(t *testing.T) {
	rec := NewStringRecords([][]string{
		{"0123456789", ""},
		{"a", "b"},
	})
	cfg := NewConfig()
	cfg.SetBorders(BordersASCII)
	cfg.SetColumnSpan(Pos(0, 0), 2)

	d := Estimate(rec, cfg)
	// required 10, internal verticals 1, base widths [1,1]:
	// deficit 7 over 2 columns = 3 each, remainder 1 to the first
	if diff := cmp.Diff([]int{5, 4}, d.Widths()); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
	if got := d.Width(0) + d.Width(1) + 1; got != 10 {
		t.Errorf("covered sum + internal borders = %d, want exactly 10", got)
	}
}

func TestEstimateSpanRemainderToFirst(t *testing.T) {
	rec := NewStringRecords([][]string{
		{"0123456789", "", ""},
		{"", "", ""},
	})
	cfg := NewConfig()
	cfg.SetBorders(BordersASCII)
	cfg.SetColumnSpan(Pos(0, 0), 3)

	d := Estimate(rec, cfg)
	// required 10, 2 internal verticals: content sum must be 8 over
	// three empty columns, remainder 2 on the first
	if diff := cmp.Diff([]int{4, 2, 2}, d.Widths()); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
}

// A span that already fits leaves the columns untouched.
func TestEstimateSpanNoDeficit(t *testing.T) {
	rec := NewStringRecords([][]string{
		{"ab", ""},
		{"wide", "wide"},
	})
	cfg := NewConfig()
	cfg.SetBorders(BordersASCII)
	cfg.SetColumnSpan(Pos(0, 0), 2)

	d := Estimate(rec, cfg)
	if diff := cmp.Diff([]int{4, 4}, d.Widths()); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
}

// Smaller spans resolve first so larger spans spread over the slack the
// narrow ones already claimed.
func TestEstimateSpanOrdering(t *testing.T) {
	rec := NewStringRecords([][]string{
		{"123456", "", ""},
		{"", "12345678", ""},
		{"a", "b", "c"},
	})
	cfg := NewConfig()
	cfg.SetBorders(BordersASCII)
	cfg.SetColumnSpan(Pos(0, 0), 2) // span 2, required 6
	cfg.SetColumnSpan(Pos(1, 1), 2) // span 2, required 8, later anchor

	d := Estimate(rec, cfg)
	// base [1,1,1]; span (0,0): current 1+1+1=3, deficit 3 -> [3,2,1]
	// span (1,1): current 2+1+1=4, deficit 4 -> [3,4,3]
	if diff := cmp.Diff([]int{3, 4, 3}, d.Widths()); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
}

func TestEstimateRowSpanHeights(t *testing.T) {
	rec := NewStringRecords([][]string{
		{"1\n2\n3\n4\n5", "r0"},
		{"", "r1"},
	})
	cfg := NewConfig()
	cfg.SetBorders(BordersASCII)
	cfg.SetRowSpan(Pos(0, 0), 2)

	d := Estimate(rec, cfg)
	// required 5 lines, internal horizontals 1, base heights [1,1]:
	// deficit 2 over 2 rows = 1 each
	if diff := cmp.Diff([]int{2, 2}, d.Heights()); diff != "" {
		t.Errorf("heights mismatch (-want +got):\n%s", diff)
	}
	if got := d.Height(0) + d.Height(1) + 1; got != 5 {
		t.Errorf("covered sum + internal borders = %d, want exactly 5", got)
	}
}

// Covered cells contribute nothing to their column or row.
func TestEstimateCoveredCellsIgnored(t *testing.T) {
	rec := NewStringRecords([][]string{
		{"a", "this is very wide"},
		{"b", "c"},
	})
	cfg := NewConfig()
	cfg.SetColumnSpan(Pos(0, 0), 2)

	d := Estimate(rec, cfg)
	if d.Width(1) != 1 {
		t.Errorf("covered cell leaked width: col 1 = %d, want 1", d.Width(1))
	}
}

func TestEstimateTrimWhitespace(t *testing.T) {
	rec := NewStringRecords([][]string{{"  ab  "}})
	cfg := NewConfig()
	cfg.SetFormatting(Global(), Formatting{TrimWhitespace: true})
	d := Estimate(rec, cfg)
	if d.Width(0) != 2 {
		t.Errorf("trimmed width = %d, want 2", d.Width(0))
	}
}

func TestEstimateANSIContent(t *testing.T) {
	rec := NewStringRecords([][]string{{"\x1b[31mred\x1b[0m"}})
	d := Estimate(rec, NewConfig())
	if d.Width(0) != 3 {
		t.Errorf("colored cell width = %d, want 3", d.Width(0))
	}
}
