package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.Output = buf
	executor.Define("step", Func(func(n *int) {}).Desc("apply transitions").Alias("s"))
	executor.Define("tape", Sub(map[string]*Command{
		"clear": Func(func() {
		}).Desc("CLEAR"),
		"cell": Sub(map[string]*Command{
			"set": Func(func() {}).Desc("SET"),
		}).Desc("CELL"),
	}).Desc("TAPE"))

	// help does not exit unless asked to
	if err := executor.Execute([]string{"help"}); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"step (s) [int]\tapply transitions",
		"tape\tTAPE",
		"  clear\tCLEAR",
		"    set\tSET",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in\n%s", want, out)
		}
	}
	if n := strings.Count(out, "step (s)"); n != 1 {
		t.Fatalf("alias printed %d times", n)
	}
}
