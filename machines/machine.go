package machines

import (
	"context"
	"errors"
	"time"

	"github.com/reusee/turing/instructions"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/snapshots"
	"github.com/reusee/turing/syncs"
	"github.com/reusee/turing/tapes"
)

var ErrReadOnly = errors.New("instructions are read-only")

const DefaultDelay = 100 * time.Millisecond

type Options struct {
	// Delay between two steps of a run. Zero means DefaultDelay.
	Delay time.Duration
	// Logger defaults to a discarding one.
	Logger logs.Logger
	// NewSpan, if set, opens a span for each run.
	NewSpan logs.NewSpan
	// ReadOnly rejects instruction edits.
	ReadOnly bool
	// OnStep is called after every step, manual or timed, outside the machine lock.
	// It must not call Stop or ToggleRun.
	OnStep func(steps int, state State)
}

type Machine struct {
	lock     syncs.Semaphore
	tape     *tapes.Tape
	set      *instructions.Set
	state    State
	steps    int
	run      *run
	closed   bool
	delay    time.Duration
	readOnly bool
	logger   logs.Logger
	newSpan  logs.NewSpan
	onStep   func(int, State)
}

type run struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func New(snap snapshots.Snapshot, blank string, opts Options) *Machine {
	m := &Machine{
		lock:     syncs.NewSemaphore(1),
		delay:    opts.Delay,
		readOnly: opts.ReadOnly,
		logger:   opts.Logger,
		newSpan:  opts.NewSpan,
		onStep:   opts.OnStep,
	}
	if m.delay <= 0 {
		m.delay = DefaultDelay
	}
	if m.logger == nil {
		m.logger = logs.Discard()
	}
	m.load(snap, blank)
	return m
}

func (m *Machine) load(snap snapshots.Snapshot, blank string) {
	m.tape = tapes.FromState(blank, snap.TapeState)
	m.set = instructions.NewSet(snap.Instructions...)
	m.state = State(snap.MachineState)
	m.steps = 0
}

// Step requests one step and returns the resulting state.
func (m *Machine) Step(ctx context.Context) State {
	m.lock.Acquire()
	steps, state := m.stepLocked(ctx)
	m.lock.Release()
	m.notify(steps, state)
	return state
}

func (m *Machine) stepLocked(ctx context.Context) (int, State) {
	m.steps++
	m.apply(ctx)
	return m.steps, m.state
}

// apply fires the transition for one counter increment.
func (m *Machine) apply(ctx context.Context) {
	if m.state.Halted() {
		if m.run != nil {
			m.logger.InfoContext(ctx, "halted", "steps", m.steps)
			m.stopLocked()
		}
		return
	}

	symbol := m.tape.ReadHead()
	inst, pos := m.set.Match(string(m.state), symbol)
	m.logger.DebugContext(ctx, "step",
		"steps", m.steps,
		"state", m.state,
		"symbol", symbol,
		"rule", pos,
	)
	if pos < 0 {
		m.state = Halt
		return
	}

	m.tape.WriteHead(inst.Write)
	switch inst.Move {
	case instructions.Left:
		m.tape.MoveLeft()
	case instructions.Right:
		m.tape.MoveRight()
	}
	m.state = State(inst.Next)
}

func (m *Machine) notify(steps int, state State) {
	if m.onStep != nil {
		m.onStep(steps, state)
	}
}

func (m *Machine) Steps() int {
	m.lock.Acquire()
	defer m.lock.Release()
	return m.steps
}

func (m *Machine) State() State {
	m.lock.Acquire()
	defer m.lock.Release()
	return m.state
}

// ClearTape empties the tape and resets the step counter. The state label is kept.
func (m *Machine) ClearTape() {
	m.lock.With(func() {
		m.tape.Clear()
		m.steps = 0
	})
}

func (m *Machine) MoveHead(move instructions.Move) {
	m.lock.With(func() {
		switch move {
		case instructions.Left:
			m.tape.MoveLeft()
		case instructions.Right:
			m.tape.MoveRight()
		}
	})
}

func (m *Machine) EditCell(logical int, symbol string) (err error) {
	m.lock.With(func() {
		err = m.tape.SetCell(logical, symbol)
	})
	return
}

func (m *Machine) EditState(label string) {
	m.lock.With(func() {
		m.state = State(label)
	})
}

func (m *Machine) AddInstruction() (pos int, err error) {
	m.lock.With(func() {
		if m.readOnly {
			err = ErrReadOnly
			return
		}
		pos = m.set.Append()
	})
	return
}

func (m *Machine) EditInstruction(pos int, inst instructions.Instruction) (err error) {
	m.lock.With(func() {
		if m.readOnly {
			err = ErrReadOnly
			return
		}
		err = m.set.Update(pos, inst)
	})
	return
}

func (m *Machine) RemoveInstruction(pos int) (err error) {
	m.lock.With(func() {
		if m.readOnly {
			err = ErrReadOnly
			return
		}
		err = m.set.Remove(pos)
	})
	return
}

func (m *Machine) ReadOnly() bool {
	m.lock.Acquire()
	defer m.lock.Release()
	return m.readOnly
}

func (m *Machine) SetReadOnly(readOnly bool) {
	m.lock.With(func() {
		m.readOnly = readOnly
	})
}

func (m *Machine) Snapshot() snapshots.Snapshot {
	m.lock.Acquire()
	defer m.lock.Release()
	return snapshots.Snapshot{
		TapeState:    m.tape.State(),
		MachineState: string(m.state),
		Instructions: m.set.All(),
	}
}

// Restore stops any run and replaces tape, instructions and state.
// The blank symbol is kept.
func (m *Machine) Restore(snap snapshots.Snapshot) {
	m.Stop()
	m.lock.With(func() {
		m.load(snap, m.tape.Blank())
	})
}

// Tape returns a copy of the tape.
func (m *Machine) Tape() *tapes.Tape {
	m.lock.Acquire()
	defer m.lock.Release()
	return tapes.FromState(m.tape.Blank(), m.tape.State())
}
