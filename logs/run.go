package logs

import (
	"context"
	"crypto/rand"
	"log/slog"
)

// Run identifies one driven execution, e.g. a pipeline search or a console session.
type Run string

// Attr binds the run to loggers that log without its context, like machine traces.
func (r Run) Attr() slog.Attr {
	return slog.String("logs.run", string(r))
}

type runKey struct{}

var RunKey runKey

type NewRun func(ctx context.Context, label string) (context.Context, Run)

func (Module) NewRun(
	logger Logger,
) NewRun {
	return func(ctx context.Context, label string) (context.Context, Run) {
		var parent Run
		if v := ctx.Value(RunKey); v != nil {
			parent = v.(Run)
		}

		run := Run(rand.Text())
		ctx = context.WithValue(ctx, RunKey, run)

		args := []any{"label", label}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.InfoContext(ctx, "new run", args...)

		return ctx, run
	}
}
