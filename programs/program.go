package programs

import (
	"fmt"
	"os"
	"slices"

	"github.com/reusee/turing/instructions"
	"github.com/reusee/turing/snapshots"
	"github.com/reusee/turing/tapes"
	"gopkg.in/yaml.v3"
)

// Program is a machine definition as authored by a user.
type Program struct {
	Name         string                     `yaml:"name"`
	Description  string                     `yaml:"description"`
	Blank        string                     `yaml:"blank"`
	InitialState string                     `yaml:"initialState"`
	Tape         []string                   `yaml:"tape"`
	Instructions []instructions.Instruction `yaml:"instructions"`
}

// Snapshot is the machine the program starts as. Without an explicit tape
// the window holds size blanks.
func (p Program) Snapshot(size int) snapshots.Snapshot {
	tape := tapes.New(p.Blank, size)
	if len(p.Tape) > 0 {
		tape = tapes.FromState(p.Blank, tapes.State{
			Cells: p.Tape,
		})
	}
	return snapshots.Snapshot{
		TapeState:    tape.State(),
		MachineState: p.InitialState,
		Instructions: slices.Clone(p.Instructions),
	}
}

// Load reads a program from a YAML (or JSON) file.
func Load(path string) (Program, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Program{}, fmt.Errorf("load program: %w", err)
	}
	return Parse(content)
}

func Parse(content []byte) (Program, error) {
	var p Program
	if err := yaml.Unmarshal(content, &p); err != nil {
		return Program{}, fmt.Errorf("parse program: %w", err)
	}
	for i, inst := range p.Instructions {
		if inst.Move == "" {
			p.Instructions[i].Move = instructions.Stay
		}
	}
	return p, nil
}
