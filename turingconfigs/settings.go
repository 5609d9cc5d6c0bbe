package turingconfigs

import (
	"time"

	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/vars"
)

const (
	DefaultDelay   = 100 * time.Millisecond
	DefaultWindow  = 11
	DefaultProgram = "busy-beaver"
)

// Delay is the interval between steps of a run.
type Delay time.Duration

var delayFlag = cmds.Var[int]("-delay")

func (Module) Delay(
	loader configs.Loader,
) Delay {
	if ms := vars.FirstNonZero(
		*delayFlag,
		configs.First[int](loader, "delay_ms"),
	); ms > 0 {
		return Delay(time.Duration(ms) * time.Millisecond)
	}
	return Delay(DefaultDelay)
}

// Blank overrides the blank symbol of loaded programs when not empty.
type Blank string

var blankFlag = cmds.Var[string]("-blank")

func (Module) Blank(
	loader configs.Loader,
) Blank {
	return Blank(vars.FirstNonZero(
		*blankFlag,
		configs.First[string](loader, "blank"),
	))
}

// Window is the number of cells shown around the head.
type Window int

var windowFlag = cmds.Var[int]("-window")

func (Module) Window(
	loader configs.Loader,
) Window {
	return Window(vars.FirstNonZero(
		*windowFlag,
		configs.First[int](loader, "window"),
		DefaultWindow,
	))
}

type ProgramName string

var programFlag = cmds.Var[string]("-program")

func (Module) ProgramName(
	loader configs.Loader,
) ProgramName {
	return ProgramName(vars.FirstNonZero(
		*programFlag,
		configs.First[string](loader, "program"),
		DefaultProgram,
	))
}

// ProgramFiles are definition files whose programs can be named like built-in ones.
type ProgramFiles []string

var programFilesFlag = cmds.Collect[string]("-programs")

func (Module) ProgramFiles(
	loader configs.Loader,
) ProgramFiles {
	return append(
		ProgramFiles(*programFilesFlag),
		configs.Concat[string](loader, "programs")...,
	)
}

type ReadOnly bool

var readOnlyFlag = cmds.Switch("-read-only")

func (Module) ReadOnly(
	loader configs.Loader,
) ReadOnly {
	return ReadOnly(*readOnlyFlag || configs.First[bool](loader, "read_only"))
}

const DefaultShareBase = "turing://share/"

// ShareBase is the URL that share links are built on.
type ShareBase string

var shareBaseFlag = cmds.Var[string]("-share-base")

func (Module) ShareBase(
	loader configs.Loader,
) ShareBase {
	return ShareBase(vars.FirstNonZero(
		*shareBaseFlag,
		configs.First[string](loader, "share_base"),
		DefaultShareBase,
	))
}
