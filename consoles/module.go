package consoles

import (
	"context"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/intcode"
	"github.com/reusee/intcode/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type Input io.Reader

func (Module) Input() Input {
	return os.Stdin
}

type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

type Prompt io.Writer

func (Module) Prompt() Prompt {
	return os.Stderr
}

type RunConsole func(ctx context.Context, m *intcode.Machine) error

func (Module) RunConsole(
	input Input,
	output Output,
	prompt Prompt,
	logger logs.Logger,
	newRun logs.NewRun,
) RunConsole {
	return func(ctx context.Context, m *intcode.Machine) error {
		ctx, run := newRun(ctx, "console")
		if m.Logger == nil {
			m.Logger = logger.With(run.Attr())
		}
		console := &Console{
			In:     input,
			Out:    output,
			Prompt: prompt,
			Logger: logger.With(run.Attr()),
		}
		if err := console.Run(m); err != nil {
			return logs.WrapRun(ctx, err)
		}
		logger.DebugContext(ctx, "console done",
			"ip", m.IP,
		)
		return nil
	}
}
