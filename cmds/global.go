package cmds

import (
	"fmt"
	"os"
)

// GlobalExecutor holds the command line flags defined by packages at init.
var GlobalExecutor = func() *Executor {
	e := NewExecutor()
	e.ExitOnUsage = true
	return e
}()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute applies command line flags, exiting on bad ones.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fmt.Fprintf(os.Stderr, "run with -h for usage\n")
		os.Exit(2)
	}
}
