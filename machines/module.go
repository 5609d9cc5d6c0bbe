package machines

import (
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/snapshots"
	"github.com/reusee/turing/turingconfigs"
)

type Module struct {
	dscope.Module
	Configs turingconfigs.Module
}

// NewMachine builds a machine with the configured delay, read-only mode and logging.
type NewMachine func(snap snapshots.Snapshot, blank string, onStep func(int, State)) *Machine

func (Module) NewMachine(
	delay turingconfigs.Delay,
	readOnly turingconfigs.ReadOnly,
	logger logs.Logger,
	newSpan logs.NewSpan,
) NewMachine {
	return func(snap snapshots.Snapshot, blank string, onStep func(int, State)) *Machine {
		return New(snap, blank, Options{
			Delay:    time.Duration(delay),
			Logger:   logger,
			NewSpan:  newSpan,
			ReadOnly: bool(readOnly),
			OnStep:   onStep,
		})
	}
}
