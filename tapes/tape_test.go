package tapes

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	tape := New("0", 11)
	if tape.Len() != 11 {
		t.Fatalf("got %v", tape.Len())
	}
	if tape.Head() != 0 {
		t.Fatalf("got %v", tape.Head())
	}
	for i := range 11 {
		if s := tape.Read(i); s != "0" {
			t.Fatalf("got %q at %d", s, i)
		}
	}

	tape = New("_", 0)
	if tape.Len() != 1 {
		t.Fatalf("got %v", tape.Len())
	}
}

func TestMoveLeftAtOrigin(t *testing.T) {
	tape := New("0", 5)
	for i := range 20 {
		before := tape.Len()
		atZero := tape.Head() == 0
		tape.MoveLeft()
		if tape.Head() != 0 {
			t.Fatalf("head %d after move %d", tape.Head(), i)
		}
		if atZero && tape.Len() != before+1 {
			t.Fatalf("len %d, want %d", tape.Len(), before+1)
		}
	}
	if tape.HeadLogical() != -20 {
		t.Fatalf("got %v", tape.HeadLogical())
	}
}

func TestMoveLeftInsideWindow(t *testing.T) {
	tape := New("0", 5)
	tape.MoveRight()
	tape.MoveRight()
	tape.MoveLeft()
	if tape.Head() != 1 {
		t.Fatalf("got %v", tape.Head())
	}
	if tape.Len() != 5 {
		t.Fatalf("got %v", tape.Len())
	}
}

func TestMoveRightDoesNotMaterialize(t *testing.T) {
	tape := New("0", 1)
	tape.MoveRight()
	tape.MoveRight()
	if tape.Len() != 1 {
		t.Fatalf("got %v", tape.Len())
	}
	if s := tape.ReadHead(); s != "0" {
		t.Fatalf("got %q", s)
	}
	tape.WriteHead("x")
	if tape.Len() != 3 {
		t.Fatalf("got %v", tape.Len())
	}
	if diff := cmp.Diff([]string{"0", "0", "x"}, tape.State().Cells); diff != "" {
		t.Fatal(diff)
	}
}

func TestReadOutsideWindow(t *testing.T) {
	tape := New("B", 3)
	tape.SetCell(1, "x")
	for _, i := range []int{-100, -1, 3, 1000} {
		if s := tape.Read(i); s != "B" {
			t.Fatalf("got %q at %d", s, i)
		}
	}
	if tape.Len() != 3 {
		t.Fatalf("read mutated the tape: %v", tape.Len())
	}
}

func TestSetCellNegative(t *testing.T) {
	for _, i := range []int{-1, -2, -7} {
		tape := New("0", 5)
		tape.SetCell(0, "a")
		tape.SetCell(4, "e")
		before := make(map[int]string)
		for j := -10; j < 10; j++ {
			before[j] = tape.Read(j)
		}

		tape.SetCell(i, "v")

		if s := tape.Read(i); s != "v" {
			t.Fatalf("got %q at %d", s, i)
		}
		for j, s := range before {
			if j == i {
				continue
			}
			if got := tape.Read(j); got != s {
				t.Fatalf("index %d changed from %q to %q", j, s, got)
			}
		}
		if tape.Len() != 5-i {
			t.Fatalf("got len %v for %d", tape.Len(), i)
		}
		if tape.HeadLogical() != 0 {
			t.Fatalf("got %v", tape.HeadLogical())
		}
	}
}

func TestSetCellNegativeKeepsHead(t *testing.T) {
	tape := New("0", 5)
	tape.MoveRight()
	tape.MoveRight()
	tape.WriteHead("h")
	tape.SetCell(-3, "x")
	if s := tape.ReadHead(); s != "h" {
		t.Fatalf("got %q", s)
	}
	if tape.Head() != 5 {
		t.Fatalf("got %v", tape.Head())
	}
	if tape.HeadLogical() != 2 {
		t.Fatalf("got %v", tape.HeadLogical())
	}
}

func TestSetCellBeyondWindow(t *testing.T) {
	tape := New("0", 2)
	tape.SetCell(5, "x")
	if tape.Len() != 6 {
		t.Fatalf("got %v", tape.Len())
	}
	if diff := cmp.Diff([]string{"0", "0", "0", "0", "0", "x"}, tape.State().Cells); diff != "" {
		t.Fatal(diff)
	}
}

func TestClear(t *testing.T) {
	tape := New("0", 4)
	tape.SetCell(-2, "x")
	tape.MoveRight()
	tape.Clear()
	once := tape.State()
	tape.Clear()
	twice := tape.State()
	want := State{
		Cells:        []string{"0"},
		HeadPosition: 0,
	}
	if diff := cmp.Diff(want, once); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatal(diff)
	}
	if tape.origin != 0 {
		t.Fatalf("got %v", tape.origin)
	}
}

func TestFromState(t *testing.T) {
	tape := FromState("0", State{
		Cells:        []string{"a", "b"},
		HeadPosition: 1,
	})
	if s := tape.ReadHead(); s != "b" {
		t.Fatalf("got %q", s)
	}

	tape = FromState("0", State{})
	if diff := cmp.Diff([]string{"0"}, tape.State().Cells); diff != "" {
		t.Fatal(diff)
	}

	tape = FromState("0", State{
		Cells:        []string{"a"},
		HeadPosition: -2,
	})
	if tape.Head() != 0 {
		t.Fatalf("got %v", tape.Head())
	}
	if diff := cmp.Diff([]string{"0", "0", "a"}, tape.State().Cells); diff != "" {
		t.Fatal(diff)
	}

	// the restored state is a copy
	cells := []string{"x"}
	tape = FromState("0", State{Cells: cells})
	tape.WriteHead("y")
	if cells[0] != "x" {
		t.Fatal()
	}
}

func TestWindow(t *testing.T) {
	tape := New("0", 3)
	tape.SetCell(1, "a")
	tape.MoveRight()
	window := tape.Window(5)
	want := []Cell{
		{Index: -1, Symbol: "0"},
		{Index: 0, Symbol: "0"},
		{Index: 1, Symbol: "a", Head: true},
		{Index: 2, Symbol: "0"},
		{Index: 3, Symbol: "0"},
	}
	if diff := cmp.Diff(want, window); diff != "" {
		t.Fatal(diff)
	}
	if tape.Len() != 3 {
		t.Fatalf("window mutated the tape: %v", tape.Len())
	}
}

func TestTrimmed(t *testing.T) {
	tape := New("0", 6)
	if got := tape.Trimmed(); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
	tape.SetCell(1, "1")
	tape.SetCell(3, "1")
	if diff := cmp.Diff([]string{"1", "0", "1"}, tape.Trimmed()); diff != "" {
		t.Fatal(diff)
	}
}

func TestSetCellOutOfReach(t *testing.T) {
	tape := New("0", 4)
	for _, i := range []int{
		math.MinInt,
		math.MaxInt,
		-MaxExtend - 1,
		4 + MaxExtend,
		4000000000000,
	} {
		if err := tape.SetCell(i, "x"); !errors.Is(err, ErrRange) {
			t.Fatalf("%d: got %v", i, err)
		}
	}
	if tape.Len() != 4 {
		t.Fatalf("got %v", tape.Len())
	}

	if err := tape.SetCell(-MaxExtend, "l"); err != nil {
		t.Fatal(err)
	}
	if err := tape.SetCell(tape.Len()-tape.origin+MaxExtend-1, "r"); err != nil {
		t.Fatal(err)
	}
	if s := tape.Read(-MaxExtend); s != "l" {
		t.Fatalf("got %q", s)
	}
}

func TestFromStateClampsHead(t *testing.T) {
	for _, c := range []struct {
		head    int
		logical int
	}{
		{math.MinInt, 0},
		{math.MinInt + 1, 0},
		{math.MaxInt, 1 + MaxExtend},
	} {
		state := State{
			Cells:        []string{"a"},
			HeadPosition: c.head,
		}
		if err := state.Check(); !errors.Is(err, ErrRange) {
			t.Fatalf("got %v", err)
		}
		tape := FromState("0", state)
		if tape.HeadLogical() != c.logical {
			t.Fatalf("%d: got %v", c.head, tape.HeadLogical())
		}
		tape.WriteHead("x")
		if tape.Len() > 2+MaxExtend {
			t.Fatalf("got %v", tape.Len())
		}
	}

	if err := (State{Cells: []string{"a"}, HeadPosition: -3}).Check(); err != nil {
		t.Fatal(err)
	}
}
