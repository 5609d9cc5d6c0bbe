package main

import (
	"context"
	"fmt"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/programs"
	"github.com/reusee/turing/records"
	"github.com/reusee/turing/snapshots"
	"github.com/reusee/turing/turingconfigs"
)

// Sources are the command line inputs a session may start from.
type Sources struct {
	Share string
	File  string
}

// Initial is the machine a session starts with.
type Initial struct {
	Snapshot snapshots.Snapshot
	Blank    string
	From     string
	ReadOnly bool
}

type LoadInitial func(ctx context.Context, store records.Store, src Sources) (Initial, error)

// LoadInitial tries a share link, then a program file, then the record
// store, then the configured built-in program.
func (Module) LoadInitial(
	blank turingconfigs.Blank,
	window turingconfigs.Window,
	programName turingconfigs.ProgramName,
	programFiles turingconfigs.ProgramFiles,
	storeSettings turingconfigs.StoreSettings,
	logger logs.Logger,
) LoadInitial {
	return func(ctx context.Context, store records.Store, src Sources) (ret Initial, err error) {
		defer func() {
			if err == nil {
				if blank != "" {
					ret.Blank = string(blank)
				}
				logger.InfoContext(ctx, "initial machine",
					"from", ret.From,
					"state", ret.Snapshot.MachineState,
					"instructions", len(ret.Snapshot.Instructions),
					"read_only", ret.ReadOnly,
				)
			}
		}()

		program, err := programs.Find(string(programName), programFiles)
		if err != nil {
			return ret, err
		}
		ret.Blank = program.Blank

		if src.Share != "" {
			snap, ok, err := snapshots.FromShareURL(src.Share)
			if err != nil {
				return ret, err
			}
			if !ok {
				return ret, fmt.Errorf("no %s parameter in %s", snapshots.ShareParam, src.Share)
			}
			ret.Snapshot = snap
			ret.From = "share"
			// nowhere to save edits to
			_, ret.ReadOnly = store.(records.Nop)
			return ret, nil
		}

		if src.File != "" {
			program, err := programs.Load(src.File)
			if err != nil {
				return ret, err
			}
			ret.Snapshot = program.Snapshot(int(window))
			ret.Blank = program.Blank
			ret.From = src.File
			return ret, nil
		}

		snap, ok, err := store.Load(ctx, storeSettings.Key)
		if err != nil {
			return ret, err
		}
		if ok {
			ret.Snapshot = snap
			ret.From = "store"
			return ret, nil
		}

		ret.Snapshot = program.Snapshot(int(window))
		ret.From = program.Name
		return ret, nil
	}
}
