package tapes

// Cell is one position of a display window.
type Cell struct {
	Index  int // logical
	Symbol string
	Head   bool
}

// Window returns size cells centered on the head.
// Positions outside the materialized window read as blank.
func (t *Tape) Window(size int) []Cell {
	size = max(size, 1)
	start := t.head - size/2
	ret := make([]Cell, 0, size)
	for p := start; p < start+size; p++ {
		ret = append(ret, Cell{
			Index:  p - t.origin,
			Symbol: t.readPhysical(p),
			Head:   p == t.head,
		})
	}
	return ret
}

// Trimmed returns the materialized cells without leading and trailing blanks.
func (t *Tape) Trimmed() []string {
	begin, end := 0, len(t.cells)
	for begin < end && t.cells[begin] == t.blank {
		begin++
	}
	for end > begin && t.cells[end-1] == t.blank {
		end--
	}
	return append([]string(nil), t.cells[begin:end]...)
}
