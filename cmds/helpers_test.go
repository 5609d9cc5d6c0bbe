package cmds

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVar(t *testing.T) {
	delay := Var[int]("-TestVar-delay")
	blank := Var[string]("-TestVar-blank")
	GlobalExecutor.MustExecute([]string{
		"-TestVar-delay", "42",
		"-TestVar-blank", "_",
	})
	if *delay != 42 {
		t.Fatalf("got %v", *delay)
	}
	if *blank != "_" {
		t.Fatalf("got %v", *blank)
	}
	GlobalExecutor.MustExecute([]string{
		"-TestVar-delay.",
	})
	if *delay != 0 {
		t.Fatalf("got %v", *delay)
	}
}

func TestSwitch(t *testing.T) {
	readOnly := Switch("-TestSwitch")
	GlobalExecutor.MustExecute([]string{
		"-TestSwitch",
	})
	if !*readOnly {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!-TestSwitch",
	})
	if *readOnly {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("-TestCollect")
	GlobalExecutor.MustExecute([]string{
		"-TestCollect", "a.cue",
		"-TestCollect", "b.cue",
	})
	if diff := cmp.Diff([]string{"a.cue", "b.cue"}, *list); diff != "" {
		t.Fatal(diff)
	}
}

func TestTypedVar(t *testing.T) {
	type Program string
	v := Var[Program]("-TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"-TestTypedVar", "busy-beaver",
	})
	if *v != "busy-beaver" {
		t.Fatalf("got %v", *v)
	}
}

func TestHelperUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.Output = buf
	executor.Define("-window", Func(func(int) {}).Desc("set int"))
	executor.PrintUsage()
	if !strings.Contains(buf.String(), "-window <int>\tset int") {
		t.Fatalf("got %v", buf.String())
	}
}
