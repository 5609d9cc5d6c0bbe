package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/records"
	"github.com/reusee/turing/snapshots"
	"github.com/reusee/turing/syncs"
	"github.com/reusee/turing/turingconfigs"
)

// Session is one machine driven from the command line.
type Session struct {
	machine   *machines.Machine
	store     records.Store
	key       string
	window    int
	shareBase string
	out       io.Writer
	eval      debugs.Eval
	tap       debugs.Tap
	logger    logs.Logger
	quiet     bool
}

type NewSession func(ctx context.Context, src Sources, out io.Writer) (*Session, error)

func (Module) NewSession(
	openStore records.OpenStore,
	loadInitial LoadInitial,
	newMachine machines.NewMachine,
	storeSettings turingconfigs.StoreSettings,
	window turingconfigs.Window,
	shareBase turingconfigs.ShareBase,
	readOnly turingconfigs.ReadOnly,
	eval debugs.Eval,
	tap debugs.Tap,
	logger logs.Logger,
) NewSession {
	return func(ctx context.Context, src Sources, out io.Writer) (*Session, error) {
		store, err := openStore(ctx)
		if err != nil {
			return nil, err
		}
		initial, err := loadInitial(ctx, store, src)
		if err != nil {
			store.Close()
			return nil, err
		}

		s := &Session{
			store:     store,
			key:       storeSettings.Key,
			window:    int(window),
			shareBase: string(shareBase),
			out:       lockedWriter(out),
			eval:      eval,
			tap:       tap,
			logger:    logger,
		}
		s.machine = newMachine(initial.Snapshot, initial.Blank, s.onStep)
		s.machine.SetReadOnly(bool(readOnly) || initial.ReadOnly)
		return s, nil
	}
}

type syncWriter struct {
	lock syncs.Semaphore
	w    io.Writer
}

// lockedWriter serializes writes from the run loop and the command line.
func lockedWriter(w io.Writer) io.Writer {
	return &syncWriter{
		lock: syncs.NewSemaphore(1),
		w:    w,
	}
}

func (s *syncWriter) Write(p []byte) (n int, err error) {
	s.lock.With(func() {
		n, err = s.w.Write(p)
	})
	return
}

func (s *Session) onStep(steps int, state machines.State) {
	if s.quiet {
		return
	}
	view := s.machine.View(s.window)
	fmt.Fprintf(s.out, "%4d %s\n", steps, renderTape(view))
	if state.Halted() && !view.Running {
		fmt.Fprintf(s.out, "halted\n")
	}
}

func (s *Session) Close() error {
	s.machine.Close()
	return s.store.Close()
}

func (s *Session) Save(ctx context.Context) error {
	if err := s.store.Save(ctx, s.key, s.machine.Snapshot()); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "saved", "key", s.key)
	return nil
}

func (s *Session) Load(ctx context.Context) error {
	snap, ok, err := s.store.Load(ctx, s.key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("nothing saved under %s", s.key)
	}
	s.machine.Restore(snap)
	return nil
}

func (s *Session) ShareURL() (string, error) {
	return snapshots.ShareURL(s.shareBase, s.machine.Snapshot())
}

func (s *Session) Open(link string) error {
	snap, ok, err := snapshots.FromShareURL(link)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no %s parameter in %s", snapshots.ShareParam, link)
	}
	s.machine.Restore(snap)
	return nil
}

var errMaxSteps = errors.New("step limit reached")

// RunBatch steps until HALT or max steps and prints the trimmed tape.
func (s *Session) RunBatch(ctx context.Context, max int) error {
	s.quiet = true
	for s.machine.Steps() < max {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.machine.State().Halted() {
			break
		}
		s.machine.Step(ctx)
	}
	tape := s.machine.Tape()
	fmt.Fprintf(s.out, "%s\n", strings.Join(tape.Trimmed(), ""))
	if !s.machine.State().Halted() {
		return fmt.Errorf("%w: %d", errMaxSteps, max)
	}
	return nil
}

func (s *Session) globals() map[string]any {
	snap := s.machine.Snapshot()
	tape := s.machine.Tape()
	return map[string]any{
		"read":         tape.Read,
		"snapshot":     snap,
		"state":        snap.MachineState,
		"steps":        s.machine.Steps(),
		"cells":        snap.TapeState.Cells,
		"head":         snap.TapeState.HeadPosition,
		"instructions": snap.Instructions,
	}
}
