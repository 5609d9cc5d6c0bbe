package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/turing/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Tap opens an interactive starlark session over globals on stdin.
type Tap func(ctx context.Context, what string, globals map[string]any) error

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) error {
		mappings, err := toStringDict(globals)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(fileOptions, thread, mappings)
		return nil
	}
}

// Eval evaluates a single expression over globals and returns its string form.
type Eval func(ctx context.Context, expr string, globals map[string]any) (string, error)

func (Module) Eval(
	logger logs.Logger,
) Eval {
	return func(ctx context.Context, expr string, globals map[string]any) (string, error) {
		mappings, err := toStringDict(globals)
		if err != nil {
			return "", err
		}
		thread := &starlark.Thread{
			Name: "eval",
		}
		value, err := starlark.EvalOptions(fileOptions, thread, "eval", expr, mappings)
		if err != nil {
			logger.DebugContext(ctx, "eval failed", "expr", expr, "error", err)
			return "", err
		}
		if s, ok := value.(starlark.String); ok {
			return string(s), nil
		}
		return value.String(), nil
	}
}
