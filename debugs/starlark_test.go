package debugs

import (
	"testing"

	"github.com/reusee/turing/instructions"
	"github.com/reusee/turing/tapes"
	"go.starlark.net/starlark"
)

func dict(pairs ...any) *starlark.Dict {
	d := starlark.NewDict(len(pairs) / 2)
	for i := 0; i < len(pairs); i += 2 {
		d.SetKey(pairs[i].(starlark.Value), pairs[i+1].(starlark.Value))
	}
	return d
}

func TestToStarlarkValue(t *testing.T) {
	type plain struct {
		Exported   string
		unexported int
	}
	ptr := &plain{Exported: "hello"}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"string", "hello", starlark.String("hello")},
		{"int", 42, starlark.MakeInt(42)},
		{"int8", int8(-3), starlark.MakeInt(-3)},
		{"uint64", uint64(42), starlark.MakeUint64(42)},
		{"float64", 3.5, starlark.Float(3.5)},
		{"move", instructions.Left, starlark.String("left")},
		{"cells", []string{"0", ""}, starlark.NewList([]starlark.Value{starlark.String("0"), starlark.String("")})},
		{"map", map[string]any{"a": 1}, dict(starlark.String("a"), starlark.MakeInt(1))},
		{"plain struct", plain{Exported: "hello", unexported: 1}, dict(starlark.String("Exported"), starlark.String("hello"))},
		{"pointer to pointer", &ptr, dict(starlark.String("Exported"), starlark.String("hello"))},
		{"tape state", tapes.State{Cells: []string{"1"}, HeadPosition: 0}, dict(
			starlark.String("cells"), starlark.NewList([]starlark.Value{starlark.String("1")}),
			starlark.String("headPosition"), starlark.MakeInt(0),
		)},
		{"instruction", instructions.Instruction{State: "A", TapeSymbol: "0", Write: "1", Move: instructions.Stay, Next: "B"}, dict(
			starlark.String("state"), starlark.String("A"),
			starlark.String("tapeSymbol"), starlark.String("0"),
			starlark.String("write"), starlark.String("1"),
			starlark.String("move"), starlark.String("stay"),
			starlark.String("next"), starlark.String("B"),
		)},
		{"nil pointer", (*plain)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := toStarlarkValue(tc.input)
			if err != nil {
				t.Fatal(err)
			}
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("unsupported type", func(t *testing.T) {
		if _, err := toStarlarkValue(make(chan bool)); err == nil {
			t.Fatal("should error")
		}
	})
}
