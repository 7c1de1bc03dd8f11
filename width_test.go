package grid

import "testing"

func TestWidth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"日本語", 6},
		{"a日b", 4},
		{"é", 1},    // e + combining acute
		{"x​y", 2},   // zero-width space
		{"ｆｕｌｌ", 8},   // fullwidth forms
	}
	for _, c := range cases {
		if got := Width(c.in); got != c.want {
			t.Errorf("Width(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestWidthRune(t *testing.T) {
	if got := WidthRune('a'); got != 1 {
		t.Errorf("WidthRune('a') = %d, want 1", got)
	}
	if got := WidthRune('語'); got != 2 {
		t.Errorf("WidthRune('語') = %d, want 2", got)
	}
	if got := WidthRune('́'); got != 0 {
		t.Errorf("WidthRune(combining) = %d, want 0", got)
	}
}

func TestWidthANSI(t *testing.T) {
	colored := "\x1b[31mred\x1b[0m"
	if got := WidthANSI(colored); got != 3 {
		t.Errorf("WidthANSI(%q) = %d, want 3", colored, got)
	}
	// OSC-8 hyperlink wrapping
	link := "\x1b]8;;https://example.com\x1b\\text\x1b]8;;\x1b\\"
	if got := WidthANSI(link); got != 4 {
		t.Errorf("WidthANSI(hyperlink) = %d, want 4", got)
	}
	// colored text measures the same as its plain form
	if WidthANSI(colored) != Width("red") {
		t.Error("colored text width differs from plain text width")
	}
}

// Re-wrapping unchanged text in color sequences must not change its
// measured width.
func TestWidthANSIIdempotent(t *testing.T) {
	for _, s := range []string{"", "plain", "日本語", "é!"} {
		wrapped := "\x1b[1;32m" + s + "\x1b[0m"
		if WidthANSI(wrapped) != Width(s) {
			t.Errorf("wrap changed width of %q: %d != %d", s, WidthANSI(wrapped), Width(s))
		}
	}
}

func TestCountLines(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 1},
		{"one", 1},
		{"a\nb", 2},
		{"a\nb\n", 3}, // trailing terminator starts an empty line
		{"\n", 2},
	}
	for _, c := range cases {
		if got := CountLines(c.in); got != c.want {
			t.Errorf("CountLines(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\nb\n")
	want := []string{"a", "b", ""}
	if len(got) != len(want) {
		t.Fatalf("SplitLines(%q) = %q, want %q", "a\nb\n", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}

	if got := SplitLines(""); len(got) != 1 || got[0] != "" {
		t.Errorf("SplitLines(\"\") = %q, want one empty line", got)
	}

	// CRLF terminators drop the carriage return
	if got := SplitLines("a\r\nb"); got[0] != "a" || got[1] != "b" {
		t.Errorf("SplitLines(crlf) = %q", got)
	}
}

// SplitLines and CountLines must agree for any input.
func TestLinesAgree(t *testing.T) {
	for _, s := range []string{"", "x", "x\n", "\n\n", "a\nb\nc", "a\nb\nc\n"} {
		if len(SplitLines(s)) != CountLines(s) {
			t.Errorf("SplitLines/CountLines disagree for %q: %d != %d", s, len(SplitLines(s)), CountLines(s))
		}
	}
}
