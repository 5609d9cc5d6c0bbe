package records

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/nets"
	"github.com/reusee/turing/turingconfigs"
)

type Module struct {
	dscope.Module
	Configs turingconfigs.Module
	Nets    nets.Module
	Logs    logs.Module
}

// OpenStore opens the configured store. An unset kind yields Nop.
type OpenStore func(ctx context.Context) (Store, error)

func (Module) OpenStore(
	settings turingconfigs.StoreSettings,
	lrs turingconfigs.LRSSettings,
	client nets.HTTPClient,
	logger logs.Logger,
) OpenStore {
	return func(ctx context.Context) (store Store, err error) {
		defer func() {
			if err == nil {
				logger.InfoContext(ctx, "record store",
					"kind", settings.Kind,
					"path", settings.Path,
					"key", settings.Key,
				)
			}
		}()

		switch settings.Kind {

		case "", "none":
			return Nop{}, nil

		case "file":
			return NewFileStore(defaultPath(settings.Path, "snapshots"))

		case "sqlite":
			return OpenSQLStore(ctx, defaultPath(settings.Path, "turing.db"))

		case "lrs":
			return &LRSStore{
				Client:   client,
				Settings: lrs,
			}, nil

		}

		return nil, fmt.Errorf("%w: unknown kind %q", ErrStore, settings.Kind)
	}
}

func defaultPath(path string, name string) string {
	if path != "" {
		return path
	}
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "turing", name)
	}
	return name
}
