package pipelines

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type FindMaxSignal func(ctx context.Context, program []int64, phaseSet []int64) (Result, error)

func (Module) FindMaxSignal(
	logger logs.Logger,
	newRun logs.NewRun,
) FindMaxSignal {
	return func(ctx context.Context, program []int64, phaseSet []int64) (Result, error) {
		ctx, run := newRun(ctx, "max signal")
		runLogger := logger.With(run.Attr())

		result, err := maxSignal(program, phaseSet, func(p *Pipeline) {
			p.Logger = runLogger
			for _, m := range p.Machines {
				m.Logger = runLogger.With("machine", m.Name)
			}
		})
		if err != nil {
			return result, logs.WrapRun(ctx, err)
		}

		logger.InfoContext(ctx, "max signal",
			"signal", result.Signal,
			"phases", result.Phases,
		)
		return result, nil
	}
}
