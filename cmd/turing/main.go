package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/modes"
	"github.com/reusee/turing/vars"
)

var (
	programFile = cmds.Var[string]("-file")
	shareLink   = cmds.Var[string]("-share")
	batch       = cmds.Switch("-run")
	maxSteps    = cmds.Var[int]("-max-steps")
)

const defaultMaxSteps = 100000

func main() {
	cmds.Execute(os.Args[1:])

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var err error
	scope.Call(func(
		newSession NewSession,
		logger logs.Logger,
	) {
		var session *Session
		session, err = newSession(ctx, Sources{
			Share: *shareLink,
			File:  *programFile,
		}, os.Stdout)
		if err != nil {
			return
		}
		defer func() {
			if e := session.Close(); e != nil {
				logger.Error("close session", "error", e)
			}
		}()

		if *batch {
			err = session.RunBatch(ctx, vars.FirstNonZero(*maxSteps, defaultMaxSteps))
			return
		}
		err = session.REPL(ctx)
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
