package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/intcode/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
)

type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, toStringDict(globals))
	}
}
