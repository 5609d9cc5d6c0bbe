package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/reusee/turing/instructions"
	"github.com/reusee/turing/tapes"
)

// Snapshot is everything needed to restore a machine.
type Snapshot struct {
	TapeState    tapes.State                `json:"tapeState"`
	MachineState string                     `json:"machineState"`
	Instructions []instructions.Instruction `json:"instructions"`
}

func Marshal(s Snapshot) ([]byte, error) {
	s = normalize(s)
	buf := new(bytes.Buffer)
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(s); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	// drop the newline Encode appends
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func Unmarshal(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := s.TapeState.Check(); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return normalize(s), nil
}

func Equal(a, b Snapshot) bool {
	a, b = normalize(a), normalize(b)
	return a.MachineState == b.MachineState &&
		a.TapeState.HeadPosition == b.TapeState.HeadPosition &&
		slices.Equal(a.TapeState.Cells, b.TapeState.Cells) &&
		slices.Equal(a.Instructions, b.Instructions)
}

func normalize(s Snapshot) Snapshot {
	if s.TapeState.Cells == nil {
		s.TapeState.Cells = []string{}
	}
	if s.Instructions == nil {
		s.Instructions = []instructions.Instruction{}
	}
	return s
}
