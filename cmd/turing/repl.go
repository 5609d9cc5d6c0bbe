package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/reusee/turing/cmds"
)

// REPL reads commands until quit, EOF or interrupt.
func (s *Session) REPL(ctx context.Context) error {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".turing_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "turing> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	// timed steps print while a prompt is open
	s.out = lockedWriter(rl.Stdout())
	executor := s.commands(ctx)
	s.show()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if s.machine.Running() {
				s.machine.Stop()
				continue
			}
			return nil
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if err := s.exec(executor, line); errors.Is(err, errQuit) {
			return nil
		} else if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

func (s *Session) exec(executor *cmds.Executor, line string) error {
	args, err := splitArgs(line)
	if err != nil {
		return err
	}
	return executor.Execute(args)
}
