package tapes

import (
	"errors"
	"fmt"
)

var ErrRange = errors.New("cell out of reach")

// MaxExtend bounds how many blank cells a single edit or restore may
// materialize beyond the current window.
const MaxExtend = 1 << 16

// State is the serializable part of a tape.
type State struct {
	Cells        []string `json:"cells"`
	HeadPosition int      `json:"headPosition"`
}

// Check rejects a head position FromState would have to clamp.
func (s State) Check() error {
	if s.HeadPosition < -MaxExtend || s.HeadPosition > len(s.Cells)+MaxExtend {
		return fmt.Errorf("%w: head position %d with %d cells", ErrRange, s.HeadPosition, len(s.Cells))
	}
	return nil
}

// Tape is a window of materialized cells over an unbounded tape.
// Logical position 0 is the first cell of the window at creation time;
// it floats rightward in the physical slice as cells are prepended.
type Tape struct {
	cells  []string
	head   int
	origin int
	blank  string
}

func New(blank string, size int) *Tape {
	size = max(size, 1)
	cells := make([]string, size)
	for i := range cells {
		cells[i] = blank
	}
	return &Tape{
		cells: cells,
		blank: blank,
	}
}

// FromState restores a tape. A head position that fails Check is clamped
// into reach.
func FromState(blank string, state State) *Tape {
	t := &Tape{
		cells: append([]string(nil), state.Cells...),
		head:  min(max(state.HeadPosition, -MaxExtend), len(state.Cells)+MaxExtend),
		blank: blank,
	}
	if len(t.cells) == 0 {
		t.cells = []string{blank}
	}
	if t.head < 0 {
		t.prepend(-t.head)
		t.origin = 0
	}
	return t
}

func (t *Tape) Blank() string {
	return t.blank
}

func (t *Tape) Len() int {
	return len(t.cells)
}

// Head is the physical index of the head in the window.
func (t *Tape) Head() int {
	return t.head
}

func (t *Tape) HeadLogical() int {
	return t.head - t.origin
}

func (t *Tape) Read(logical int) string {
	return t.readPhysical(logical + t.origin)
}

func (t *Tape) ReadHead() string {
	return t.readPhysical(t.head)
}

func (t *Tape) readPhysical(i int) string {
	if i < 0 || i >= len(t.cells) {
		return t.blank
	}
	return t.cells[i]
}

func (t *Tape) WriteHead(symbol string) {
	t.grow(t.head)
	t.cells[t.head] = symbol
}

func (t *Tape) MoveLeft() {
	if t.head == 0 {
		// the new cell is the one left of the old head
		t.prepend(1)
		t.head = 0
		return
	}
	t.head--
}

func (t *Tape) MoveRight() {
	t.head++
}

// SetCell writes symbol at a logical index at most MaxExtend cells outside
// the window.
func (t *Tape) SetCell(logical int, symbol string) error {
	if logical < -t.origin-MaxExtend || logical >= len(t.cells)-t.origin+MaxExtend {
		return fmt.Errorf("%w: %d", ErrRange, logical)
	}
	i := logical + t.origin
	if i < 0 {
		t.prepend(-i)
		i = 0
	}
	t.grow(i)
	t.cells[i] = symbol
	return nil
}

func (t *Tape) Clear() {
	t.cells = []string{t.blank}
	t.head = 0
	t.origin = 0
}

func (t *Tape) State() State {
	return State{
		Cells:        append([]string(nil), t.cells...),
		HeadPosition: t.head,
	}
}

// prepend adds n blanks on the left, keeping every logical position in place.
func (t *Tape) prepend(n int) {
	cells := make([]string, n, n+len(t.cells))
	for i := range cells {
		cells[i] = t.blank
	}
	t.cells = append(cells, t.cells...)
	t.head += n
	t.origin += n
}

// grow extends the window rightward so that physical index i exists.
func (t *Tape) grow(i int) {
	for len(t.cells) <= i {
		t.cells = append(t.cells, t.blank)
	}
}
