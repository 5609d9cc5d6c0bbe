package records

import (
	"context"
	"errors"

	"github.com/reusee/turing/snapshots"
)

var (
	ErrStore  = errors.New("record store")
	ErrLocked = errors.New("record locked")
	ErrKey    = errors.New("invalid record key")
)

// Store saves and loads machine snapshots by key.
// A failed Save or Load never touches the machine the snapshot came from.
type Store interface {
	Save(ctx context.Context, key string, s snapshots.Snapshot) error
	// Load reports false when nothing was saved under key.
	Load(ctx context.Context, key string) (snapshots.Snapshot, bool, error)
	Close() error
}

// Nop is the store used when none is configured.
type Nop struct{}

var _ Store = Nop{}

func (Nop) Save(ctx context.Context, key string, s snapshots.Snapshot) error {
	return nil
}

func (Nop) Load(ctx context.Context, key string) (snapshots.Snapshot, bool, error) {
	return snapshots.Snapshot{}, false, nil
}

func (Nop) Close() error {
	return nil
}
