package records

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/snapshots"
)

// StaleLock is the age after which a leftover lock file is taken over.
// A save holds its lock only for one write and rename.
const StaleLock = time.Minute

// FileStore keeps one JSON document per key in a directory.
type FileStore struct {
	root *os.Root
}

var _ Store = new(FileStore)

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return &FileStore{
		root: root,
	}, nil
}

func fileName(key string) (string, error) {
	name := key + ".json"
	if key == "" || !filepath.IsLocal(name) || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: %q", ErrKey, key)
	}
	return name, nil
}

func (f *FileStore) Save(ctx context.Context, key string, s snapshots.Snapshot) (err error) {
	defer func() {
		if err != nil {
			err = logs.WrapSpan(ctx, fmt.Errorf("%w: save %s: %w", ErrStore, key, err))
		}
	}()

	name, err := fileName(key)
	if err != nil {
		return err
	}
	data, err := snapshots.Marshal(s)
	if err != nil {
		return err
	}

	lockName := name + ".lock"
	if err := f.lock(lockName); err != nil {
		return err
	}
	defer f.root.Remove(lockName)

	// atomic replace
	tmpName := name + ".tmp"
	if err := f.root.WriteFile(tmpName, data, 0644); err != nil {
		return err
	}
	return f.root.Rename(tmpName, name)
}

func (f *FileStore) lock(name string) error {
	for retried := false; ; retried = true {
		file, err := f.root.OpenFile(name, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			return file.Close()
		}
		if !errors.Is(err, fs.ErrExist) {
			return err
		}
		info, statErr := f.root.Stat(name)
		if statErr != nil || retried || time.Since(info.ModTime()) < StaleLock {
			return fmt.Errorf("%w: remove %s if no other process is saving", ErrLocked, name)
		}
		// left behind by a process that died mid-save
		if err := f.root.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
}

func (f *FileStore) Load(ctx context.Context, key string) (ret snapshots.Snapshot, ok bool, err error) {
	defer func() {
		if err != nil {
			err = logs.WrapSpan(ctx, fmt.Errorf("%w: load %s: %w", ErrStore, key, err))
		}
	}()

	name, err := fileName(key)
	if err != nil {
		return ret, false, err
	}
	data, err := f.root.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return ret, false, nil
	} else if err != nil {
		return ret, false, err
	}
	ret, err = snapshots.Unmarshal(data)
	if err != nil {
		return ret, false, err
	}
	return ret, true, nil
}

func (f *FileStore) Close() error {
	return f.root.Close()
}
