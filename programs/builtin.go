package programs

import (
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/turing/instructions"
)

func rule(state, symbol, write string, move instructions.Move, next string) instructions.Instruction {
	return instructions.Instruction{
		State:      state,
		TapeSymbol: symbol,
		Write:      write,
		Move:       move,
		Next:       next,
	}
}

var builtin = map[string]Program{

	"busy-beaver": {
		Name:         "busy-beaver",
		Description:  "3-state, 2-symbol busy beaver",
		Blank:        "0",
		InitialState: "A",
		Instructions: []instructions.Instruction{
			rule("A", "0", "1", instructions.Right, "B"),
			rule("A", "1", "1", instructions.Left, "C"),
			rule("B", "0", "1", instructions.Left, "A"),
			rule("B", "1", "1", instructions.Right, "B"),
			rule("C", "0", "1", instructions.Left, "B"),
			rule("C", "1", "1", instructions.Right, "HALT"),
		},
	},

	"increment": {
		Name:         "increment",
		Description:  "add one to a binary number, head on its leftmost digit",
		Blank:        "_",
		InitialState: "right",
		Tape:         []string{"1", "0", "1", "1"},
		Instructions: []instructions.Instruction{
			rule("right", "0", "0", instructions.Right, "right"),
			rule("right", "1", "1", instructions.Right, "right"),
			rule("right", "_", "_", instructions.Left, "carry"),
			rule("carry", "1", "0", instructions.Left, "carry"),
			rule("carry", "0", "1", instructions.Stay, "HALT"),
			rule("carry", "_", "1", instructions.Stay, "HALT"),
		},
	},

	"unary-add": {
		Name:         "unary-add",
		Description:  "join two unary numbers separated by +",
		Blank:        "_",
		InitialState: "scan",
		Tape:         []string{"1", "1", "+", "1", "1", "1"},
		Instructions: []instructions.Instruction{
			rule("scan", "1", "1", instructions.Right, "scan"),
			rule("scan", "+", "1", instructions.Right, "end"),
			rule("end", "1", "1", instructions.Right, "end"),
			rule("end", "_", "_", instructions.Left, "erase"),
			rule("erase", "1", "_", instructions.Stay, "HALT"),
		},
	},
}

func Default() Program {
	return builtin["busy-beaver"]
}

func Lookup(name string) (Program, error) {
	p, ok := builtin[name]
	if !ok {
		return Program{}, fmt.Errorf("unknown program %q, have %v", name, Names())
	}
	p.Instructions = slices.Clone(p.Instructions)
	p.Tape = slices.Clone(p.Tape)
	return p, nil
}

// Find looks name up in the built-in programs, then in files.
func Find(name string, files []string) (Program, error) {
	if p, err := Lookup(name); err == nil {
		return p, nil
	}
	for _, file := range files {
		p, err := Load(file)
		if err != nil {
			return Program{}, err
		}
		if p.Name == name {
			return p, nil
		}
	}
	return Program{}, fmt.Errorf("unknown program %q, have %v and %v", name, Names(), files)
}

func Names() []string {
	return slices.Sorted(maps.Keys(builtin))
}
