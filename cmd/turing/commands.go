package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/instructions"
)

var errQuit = errors.New("quit")

// commands are the interactive commands, one executor per session.
func (s *Session) commands(ctx context.Context) *cmds.Executor {
	e := cmds.NewExecutor()
	e.Output = s.out
	m := s.machine

	e.Define("step", cmds.Func(func(n *int) {
		times := max(*n, 1)
		for range times {
			m.Step(ctx)
		}
	}).Desc("apply n steps, default 1").Alias("s"))

	e.Define("run", cmds.Func(func() {
		if m.ToggleRun(ctx) {
			fmt.Fprintln(s.out, "running")
		} else {
			fmt.Fprintln(s.out, "stopped")
		}
	}).Desc("start or stop running").Alias("r"))

	e.Define("stop", cmds.Func(func() {
		m.Stop()
	}).Desc("stop running"))

	e.Define("clear", cmds.Func(func() {
		m.ClearTape()
		s.show()
	}).Desc("clear the tape and the step counter"))

	e.Define("left", cmds.Func(func() {
		m.MoveHead(instructions.Left)
		s.show()
	}).Desc("move the head left").Alias("l"))

	e.Define("right", cmds.Func(func() {
		m.MoveHead(instructions.Right)
		s.show()
	}).Desc("move the head right"))

	e.Define("cell", cmds.Func(func(index int, symbol string) error {
		if err := m.EditCell(index, symbol); err != nil {
			return err
		}
		s.show()
		return nil
	}).Desc("set the cell at a logical index"))

	e.Define("state", cmds.Func(func(label string) {
		m.EditState(label)
		s.show()
	}).Desc("set the machine state"))

	e.Define("add", cmds.Func(func() error {
		pos, err := m.AddInstruction()
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "added %d\n", pos)
		return nil
	}).Desc("append an empty instruction"))

	e.Define("edit", cmds.Func(func(pos int, state, symbol, write, move, next string) error {
		if err := m.EditInstruction(pos, instructions.Instruction{
			State:      state,
			TapeSymbol: symbol,
			Write:      write,
			Move:       instructions.Move(move),
			Next:       next,
		}); err != nil {
			return err
		}
		s.show()
		return nil
	}).Desc("replace instruction: pos state read write move next"))

	e.Define("remove", cmds.Func(func(pos int) error {
		if err := m.RemoveInstruction(pos); err != nil {
			return err
		}
		s.show()
		return nil
	}).Desc("remove an instruction").Alias("rm"))

	e.Define("show", cmds.Func(func() {
		s.show()
	}).Desc("print tape, state and instructions").Alias("p"))

	e.Define("save", cmds.Func(func() error {
		return s.Save(ctx)
	}).Desc("save to the record store"))

	e.Define("load", cmds.Func(func() error {
		if err := s.Load(ctx); err != nil {
			return err
		}
		s.show()
		return nil
	}).Desc("load from the record store"))

	e.Define("share", cmds.Func(func() error {
		link, err := s.ShareURL()
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, link)
		return nil
	}).Desc("print a share link"))

	e.Define("open", cmds.Func(func(link string) error {
		if err := s.Open(link); err != nil {
			return err
		}
		s.show()
		return nil
	}).Desc("restore a share link"))

	e.Define("eval", cmds.Func(func(expr string) error {
		ret, err := s.eval(ctx, expr, s.globals())
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, ret)
		return nil
	}).Desc("evaluate a starlark expression over the machine"))

	e.Define("tap", cmds.Func(func() error {
		return s.tap(ctx, "machine", s.globals())
	}).Desc("open a starlark session over the machine"))

	e.Define("quit", cmds.Func(func() error {
		return errQuit
	}).Desc("exit").Alias("exit", "q"))

	return e
}

func (s *Session) show() {
	renderView(s.out, s.machine.View(s.window))
}
