package instructions

import (
	"errors"
	"fmt"
)

var ErrPosition = errors.New("instruction position out of range")

// Set is an ordered list of rules. Lookups resolve duplicates by order:
// the earliest matching rule wins.
type Set struct {
	list []Instruction
}

func NewSet(list ...Instruction) *Set {
	return &Set{
		list: append([]Instruction(nil), list...),
	}
}

func (s *Set) Find(state, symbol string) (Instruction, bool) {
	inst, pos := s.Match(state, symbol)
	return inst, pos >= 0
}

// Index returns the position of the rule Find would return, or -1.
func (s *Set) Index(state, symbol string) int {
	_, pos := s.Match(state, symbol)
	return pos
}

// Match returns the first matching rule and its position, or -1.
func (s *Set) Match(state, symbol string) (Instruction, int) {
	for i, inst := range s.list {
		if inst.Matches(state, symbol) {
			return inst, i
		}
	}
	return Instruction{}, -1
}

// Append adds an empty rule and returns its position.
func (s *Set) Append() int {
	return s.Add(Instruction{
		Move: Stay,
	})
}

func (s *Set) Add(inst Instruction) int {
	s.list = append(s.list, inst)
	return len(s.list) - 1
}

func (s *Set) Update(pos int, inst Instruction) error {
	if err := s.check(pos); err != nil {
		return err
	}
	s.list[pos] = inst
	return nil
}

func (s *Set) Remove(pos int) error {
	if err := s.check(pos); err != nil {
		return err
	}
	s.list = append(s.list[:pos], s.list[pos+1:]...)
	return nil
}

func (s *Set) Get(pos int) (Instruction, error) {
	if err := s.check(pos); err != nil {
		return Instruction{}, err
	}
	return s.list[pos], nil
}

func (s *Set) Len() int {
	return len(s.list)
}

func (s *Set) All() []Instruction {
	return append([]Instruction{}, s.list...)
}

func (s *Set) check(pos int) error {
	if pos < 0 || pos >= len(s.list) {
		return fmt.Errorf("%w: %d of %d", ErrPosition, pos, len(s.list))
	}
	return nil
}
