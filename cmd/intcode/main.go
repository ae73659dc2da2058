package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/debugs"
	"github.com/reusee/intcode/modes"
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	if len(actions) == 0 && !*doTap {
		cmds.PrintUsage()
		os.Exit(2)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		s *session,
		tap debugs.Tap,
	) {

		for _, action := range actions {
			ce(action(ctx, s))
		}

		if *doTap {
			m, err := s.getMachine()
			ce(err)
			tap(ctx, m.Name, debugs.Globals(m))
		}

	})

}

func ce(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
