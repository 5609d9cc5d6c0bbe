package machines

import (
	"context"
	"time"
)

// ToggleRun starts a run when idle and stops the current one otherwise.
// It reports whether a run is active afterwards.
func (m *Machine) ToggleRun(ctx context.Context) bool {
	m.lock.Acquire()
	if m.run != nil {
		r := m.stopLocked()
		m.lock.Release()
		<-r.done
		m.logger.InfoContext(ctx, "run stopped")
		return false
	}
	if m.closed {
		m.lock.Release()
		return false
	}
	if m.newSpan != nil {
		ctx, _ = m.newSpan(ctx, "")
	}
	runCtx, cancel := context.WithCancel(ctx)
	r := &run{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	m.run = r
	m.lock.Release()

	m.logger.InfoContext(ctx, "run started", "delay", m.delay)
	go m.loop(runCtx, r)
	return true
}

func (m *Machine) loop(ctx context.Context, r *run) {
	defer close(r.done)
	ticker := time.NewTicker(m.delay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.lock.With(func() {
				if m.run == r {
					m.run = nil
				}
			})
			return
		case <-ticker.C:
		}

		m.lock.Acquire()
		if m.run != r {
			// stopped while waiting for the lock
			m.lock.Release()
			return
		}
		steps, state := m.stepLocked(ctx)
		current := m.run == r
		m.lock.Release()
		m.notify(steps, state)
		if !current {
			return
		}
	}
}

// stopLocked detaches and cancels the current run without waiting for it.
func (m *Machine) stopLocked() *run {
	r := m.run
	m.run = nil
	r.cancel()
	return r
}

// Stop ends the current run, if any, and waits for its goroutine.
// No step fires after Stop returns.
func (m *Machine) Stop() {
	m.lock.Acquire()
	if m.run == nil {
		m.lock.Release()
		return
	}
	r := m.stopLocked()
	m.lock.Release()
	<-r.done
	m.logger.Info("run stopped")
}

func (m *Machine) Running() bool {
	m.lock.Acquire()
	defer m.lock.Release()
	return m.run != nil
}

// Close stops the current run and refuses new ones.
func (m *Machine) Close() {
	m.lock.With(func() {
		m.closed = true
	})
	m.Stop()
}

// Wait blocks until no run is active or ctx is done.
func (m *Machine) Wait(ctx context.Context) error {
	m.lock.Acquire()
	r := m.run
	m.lock.Release()
	if r == nil {
		return nil
	}
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
