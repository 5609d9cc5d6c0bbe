package logs

import (
	"fmt"
	"io"
	"os"

	"github.com/reusee/turing/cmds"
)

// Writer receives terminal logs.
type Writer io.Writer

var logFile = cmds.Var[string]("-log-file")

// Writer is stderr, or the -log-file file so logs stay out of an interactive session.
func (Module) Writer() Writer {
	if *logFile == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v\n", err)
		return os.Stderr
	}
	return f
}
