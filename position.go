package grid

import (
	"iter"
	"strconv"
)

// Position addresses a single cell by zero-based row and column.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for constructing a Position.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

type entityKind uint8

const (
	entityGlobal entityKind = iota
	entityColumn
	entityRow
	entityCell
)

// Entity selects one or more grid positions for configuration overrides:
// the whole grid, one row, one column, or a single cell.
//
// When several entities configure the same attribute for the same
// position, the more specific one wins (Cell over Row/Column over
// Global); between a Row and a Column covering the same position the
// last one applied wins.
type Entity struct {
	kind entityKind
	row  int
	col  int
}

// Global selects every position in the grid.
func Global() Entity {
	return Entity{kind: entityGlobal}
}

// Row selects every position in row r.
func Row(r int) Entity {
	return Entity{kind: entityRow, row: r}
}

// Column selects every position in column c.
func Column(c int) Entity {
	return Entity{kind: entityColumn, col: c}
}

// Cell selects the single position (r, c).
func Cell(r, c int) Entity {
	return Entity{kind: entityCell, row: r, col: c}
}

// Positions yields the positions the entity expands to for a grid of the
// given shape. Global iterates in row-major order and yields nothing when
// either dimension is zero. Cell always yields its single position; the
// caller is responsible for it being in bounds.
func (e Entity) Positions(rows, cols int) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		switch e.kind {
		case entityGlobal:
			for r := range rows {
				for c := range cols {
					if !yield(Position{Row: r, Col: c}) {
						return
					}
				}
			}
		case entityRow:
			for c := range cols {
				if !yield(Position{Row: e.row, Col: c}) {
					return
				}
			}
		case entityColumn:
			for r := range rows {
				if !yield(Position{Row: r, Col: e.col}) {
					return
				}
			}
		case entityCell:
			yield(Position{Row: e.row, Col: e.col})
		}
	}
}

// String returns a readable form for debugging and error messages.
func (e Entity) String() string {
	switch e.kind {
	case entityGlobal:
		return "Global"
	case entityRow:
		return "Row(" + strconv.Itoa(e.row) + ")"
	case entityColumn:
		return "Column(" + strconv.Itoa(e.col) + ")"
	default:
		return "Cell(" + strconv.Itoa(e.row) + "," + strconv.Itoa(e.col) + ")"
	}
}
