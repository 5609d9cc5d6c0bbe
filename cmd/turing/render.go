package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode"

	"github.com/reusee/turing/machines"
)

// formatSymbol quotes symbols that would not read back as one word.
func formatSymbol(s string) string {
	if s == "" || strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) ||
			!unicode.IsPrint(r) ||
			r == '"' || r == '[' || r == ']'
	}) >= 0 {
		return strconv.Quote(s)
	}
	return s
}

// renderTape is one line: the window with the head cell bracketed, then the state.
func renderTape(view machines.View) string {
	var b strings.Builder
	for i, cell := range view.Window {
		if i > 0 {
			b.WriteByte(' ')
		}
		if cell.Head {
			b.WriteString("[" + formatSymbol(cell.Symbol) + "]")
		} else {
			b.WriteString(formatSymbol(cell.Symbol))
		}
	}
	b.WriteString("  ")
	b.WriteString(formatSymbol(string(view.State)))
	return b.String()
}

func renderView(w io.Writer, view machines.View) {
	status := "idle"
	if view.Running {
		status = "running"
	} else if view.State.Halted() {
		status = "halted"
	}
	fmt.Fprintf(w, "%s\nsteps %d, %s\n", renderTape(view), view.Steps, status)

	if len(view.Window) > 0 {
		first, last := view.Window[0].Index, view.Window[len(view.Window)-1].Index
		fmt.Fprintf(w, "cells %d to %d\n", first, last)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintln(tw, "\t#\tstate\tread\twrite\tmove\tnext")
	for i, inst := range view.Instructions {
		mark := ""
		if i == view.Rule {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			mark,
			i,
			formatSymbol(inst.State),
			formatSymbol(inst.TapeSymbol),
			formatSymbol(inst.Write),
			formatSymbol(string(inst.Move)),
			formatSymbol(inst.Next),
		)
	}
	tw.Flush()
}

// splitArgs splits a command line on spaces. Double or back quoted words
// are unquoted, so "" is an empty argument.
func splitArgs(line string) ([]string, error) {
	var args []string
	for {
		line = strings.TrimLeftFunc(line, unicode.IsSpace)
		if line == "" {
			return args, nil
		}
		if line[0] == '"' || line[0] == '`' {
			quoted, err := strconv.QuotedPrefix(line)
			if err != nil {
				return nil, fmt.Errorf("bad quoting: %s", line)
			}
			arg, err := strconv.Unquote(quoted)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			line = line[len(quoted):]
			continue
		}
		end := strings.IndexFunc(line, unicode.IsSpace)
		if end < 0 {
			end = len(line)
		}
		args = append(args, line[:end])
		line = line[end:]
	}
}
