package grid

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestFgBg(t *testing.T) {
	c := Fg(termenv.ANSIRed)
	if c.Prefix == "" || c.Suffix == "" {
		t.Fatalf("Fg produced empty sequences: %+v", c)
	}
	if !strings.HasPrefix(c.Prefix, "\x1b[") {
		t.Errorf("prefix is not a CSI sequence: %q", c.Prefix)
	}
	if c.Suffix != "\x1b[0m" {
		t.Errorf("suffix = %q, want reset", c.Suffix)
	}

	b := Bg(termenv.ANSIBlue)
	if b.Prefix == c.Prefix {
		t.Error("background sequence must differ from foreground")
	}

	if !Fg(nil).IsEmpty() {
		t.Error("nil color should produce the empty Color")
	}
}

func TestCombine(t *testing.T) {
	a := Color{Prefix: "A", Suffix: "a"}
	b := Color{Prefix: "B", Suffix: "b"}
	got := Combine(a, b)
	if got.Prefix != "AB" || got.Suffix != "ba" {
		t.Errorf("Combine = %+v, want prefixes in order, suffixes reversed", got)
	}
}

func TestRenderContentColor(t *testing.T) {
	rec := NewStringRecords([][]string{{"x"}})
	cfg := NewConfig()
	cfg.SetBorders(BordersASCII)
	cfg.SetColor(Cell(0, 0), Color{Prefix: "\x1b[31m", Suffix: "\x1b[0m"})

	want := table(
		"+-+",
		"|\x1b[31mx\x1b[0m|",
		"+-+",
	)
	if got := render(t, rec, cfg); got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

// Color wrapping has no measured width: the colored table lays out
// exactly like its plain twin.
func TestColorDoesNotAffectLayout(t *testing.T) {
	rec := NewStringRecords([][]string{{"one", "two"}})

	plain := NewConfig()
	plain.SetBorders(BordersASCII)

	colored := NewConfig()
	colored.SetBorders(BordersASCII)
	colored.SetColor(Global(), Fg(termenv.ANSIGreen))
	colored.SetBorderColor(Fg(termenv.ANSIBlue))

	p := render(t, rec, plain)
	c := render(t, rec, colored)

	pl := strings.Split(p, "\n")
	cl := strings.Split(c, "\n")
	if len(pl) != len(cl) {
		t.Fatalf("line counts differ: %d != %d", len(pl), len(cl))
	}
	for i := range pl {
		if WidthANSI(cl[i]) != WidthANSI(pl[i]) {
			t.Errorf("line %d width changed: %q vs %q", i, cl[i], pl[i])
		}
	}
}

func TestRenderBorderColorGrouping(t *testing.T) {
	rec := NewStringRecords([][]string{{"x"}})
	cfg := NewConfig()
	cfg.SetBorders(BordersASCII)
	cfg.SetBorderColor(Color{Prefix: "<", Suffix: ">"})

	got := render(t, rec, cfg)
	want := table(
		"<+-+>",
		"<|>x<|>",
		"<+-+>",
	)
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}
