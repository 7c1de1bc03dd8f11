package grid

import "testing"

func TestStringRecordsRaggedInput(t *testing.T) {
	rec := NewStringRecords([][]string{
		{"a", "b", "c"},
		{"d"},
	})
	if rec.CountColumns() != 3 {
		t.Fatalf("CountColumns = %d, want the longest row", rec.CountColumns())
	}
	if got := rec.Cell(Pos(1, 2)).Text(); got != "" {
		t.Errorf("padded cell = %q, want empty", got)
	}
	if got := rec.Cell(Pos(1, 0)).Text(); got != "d" {
		t.Errorf("cell (1,0) = %q", got)
	}
}

func TestStringRecordsSetCell(t *testing.T) {
	rec := NewStringRecords([][]string{{"old"}})
	rec.SetCell(Pos(0, 0), "new\ntext")
	c := rec.Cell(Pos(0, 0))
	if c.LineCount() != 2 || c.Line(1) != "text" {
		t.Errorf("SetCell content: lines=%d line1=%q", c.LineCount(), c.Line(1))
	}
	if c.Width() != 4 {
		t.Errorf("Width = %d, want 4", c.Width())
	}
}

func TestCellContentMetrics(t *testing.T) {
	c := NewCellContent("ab\n日本\n")
	if c.LineCount() != 3 {
		t.Errorf("LineCount = %d, want 3 (trailing newline keeps an empty line)", c.LineCount())
	}
	if c.LineWidth(1) != 4 {
		t.Errorf("LineWidth(1) = %d, want 4", c.LineWidth(1))
	}
	if c.Width() != 4 {
		t.Errorf("Width = %d, want the widest line", c.Width())
	}
}

func TestColoredCellContent(t *testing.T) {
	col := Color{Prefix: "\x1b[34m", Suffix: "\x1b[0m"}
	c := NewColoredCellContent("a\nbb", col)
	if c.Width() != 2 {
		t.Errorf("colored width = %d, want 2", c.Width())
	}
	if c.Line(0) != "\x1b[34ma\x1b[0m" {
		t.Errorf("line 0 = %q, want wrapped text", c.Line(0))
	}
	if got := NewColoredCellContent("x", Color{}); got.Line(0) != "x" {
		t.Errorf("empty color must leave text alone: %q", got.Line(0))
	}
}
