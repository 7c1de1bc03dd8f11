package grid

import "testing"

func collect(e Entity, rows, cols int) []Position {
	var out []Position
	for pos := range e.Positions(rows, cols) {
		out = append(out, pos)
	}
	return out
}

func TestEntityGlobalRowMajor(t *testing.T) {
	got := collect(Global(), 2, 3)
	want := []Position{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d positions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %v, want %v (iteration must be row-major)", i, got[i], want[i])
		}
	}
}

func TestEntityGlobalEmpty(t *testing.T) {
	if got := collect(Global(), 0, 5); got != nil {
		t.Errorf("Global over 0 rows yielded %v", got)
	}
	if got := collect(Global(), 5, 0); got != nil {
		t.Errorf("Global over 0 columns yielded %v", got)
	}
}

func TestEntityRowColumn(t *testing.T) {
	got := collect(Row(1), 3, 2)
	want := []Position{{1, 0}, {1, 1}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Row(1) position %d = %v, want %v", i, got[i], want[i])
		}
	}

	got = collect(Column(0), 3, 2)
	want = []Position{{0, 0}, {1, 0}, {2, 0}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Column(0) position %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEntityCell(t *testing.T) {
	got := collect(Cell(7, 9), 2, 2)
	if len(got) != 1 || got[0] != (Position{7, 9}) {
		t.Errorf("Cell(7,9) = %v, want exactly its own position regardless of shape", got)
	}
}

func TestEntityEarlyStop(t *testing.T) {
	n := 0
	for range Global().Positions(10, 10) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterator did not stop early, saw %d", n)
	}
}

func TestEntityString(t *testing.T) {
	cases := map[string]Entity{
		"Global":     Global(),
		"Row(2)":     Row(2),
		"Column(11)": Column(11),
		"Cell(1,3)":  Cell(1, 3),
	}
	for want, e := range cases {
		if got := e.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
