package grid

// seqValue pairs an override with the order it was applied in, so that a
// Row and a Column covering the same position can be resolved by last
// write rather than by an arbitrary fixed priority.
type seqValue[T any] struct {
	value T
	seq   uint64
}

// EntityMap is a sparse attribute store keyed by Entity. Lookup resolves
// precedence: a Cell override beats Row and Column, which beat the global
// value; between a Row and a Column the later Set wins.
//
// Setting a broader entity discards the narrower overrides it covers, so
// Set(Global) resets the map to a single value and Set(Row(r)) drops any
// per-cell overrides in row r. This keeps every Set a true last write.
type EntityMap[T any] struct {
	global T
	rows   map[int]seqValue[T]
	cols   map[int]seqValue[T]
	cells  map[Position]T
	seq    uint64
}

// NewEntityMap creates a map whose global value is def.
func NewEntityMap[T any](def T) *EntityMap[T] {
	return &EntityMap[T]{
		global: def,
		rows:   make(map[int]seqValue[T]),
		cols:   make(map[int]seqValue[T]),
		cells:  make(map[Position]T),
	}
}

// Set applies value to every position the entity covers.
func (m *EntityMap[T]) Set(e Entity, value T) {
	m.seq++
	switch e.kind {
	case entityGlobal:
		m.global = value
		clear(m.rows)
		clear(m.cols)
		clear(m.cells)
	case entityRow:
		m.rows[e.row] = seqValue[T]{value: value, seq: m.seq}
		for pos := range m.cells {
			if pos.Row == e.row {
				delete(m.cells, pos)
			}
		}
	case entityColumn:
		m.cols[e.col] = seqValue[T]{value: value, seq: m.seq}
		for pos := range m.cells {
			if pos.Col == e.col {
				delete(m.cells, pos)
			}
		}
	case entityCell:
		m.cells[Position{Row: e.row, Col: e.col}] = value
	}
}

// Get resolves the effective value at pos.
func (m *EntityMap[T]) Get(pos Position) T {
	if v, ok := m.cells[pos]; ok {
		return v
	}
	rv, rok := m.rows[pos.Row]
	cv, cok := m.cols[pos.Col]
	switch {
	case rok && cok:
		if rv.seq > cv.seq {
			return rv.value
		}
		return cv.value
	case rok:
		return rv.value
	case cok:
		return cv.value
	}
	return m.global
}

// Global returns the table-wide default.
func (m *EntityMap[T]) Global() T {
	return m.global
}

// HasOverrides reports whether any non-global override is present.
func (m *EntityMap[T]) HasOverrides() bool {
	return len(m.rows) > 0 || len(m.cols) > 0 || len(m.cells) > 0
}
