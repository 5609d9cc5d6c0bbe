package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
blank?: string
window?: int
delay_ms?: int
programs?: [...string]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var blank string
	err := loader.AssignFirst("blank", &blank)
	if err != nil {
		t.Fatal(err)
	}
	if blank != "0" {
		t.Fatalf("got %q", blank)
	}

	var list []string
	err = loader.AssignFirst("programs", &list)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[busy-beaver increment]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var blanks []string
	for value, err := range loader.IterCueValues("blank") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		blanks = append(blanks, s)
	}
	if str := fmt.Sprintf("%v", blanks); str != "[0 _]" {
		t.Fatalf("got %q", str)
	}

	blanks = blanks[:0]
	for str := range All[string](loader, "blank") {
		blanks = append(blanks, str)
	}
	if str := fmt.Sprintf("%v", blanks); str != "[0 _]" {
		t.Fatalf("got %q", str)
	}

	paths, err := loader.Paths()
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", paths); str != "[test.cue test2.cue]" {
		t.Fatalf("got %s", str)
	}

}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestLoaderFromSources(t *testing.T) {
	loader := NewLoaderFromSources([]Source{
		{Name: "a.cue", Content: []byte(`window: 5`)},
		{Name: "b.cue", Content: []byte(`window: 7, blank: "x"`)},
	}, testSchema)
	if n := First[int](loader, "window"); n != 5 {
		t.Fatalf("got %v", n)
	}
	if s := First[string](loader, "blank"); s != "x" {
		t.Fatalf("got %v", s)
	}

	var empty Loader
	if n := First[int](empty, "window"); n != 0 {
		t.Fatalf("got %v", n)
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{"no-such-file.cue"}, "")
	var n int
	if err := loader.AssignFirst("window", &n); err == nil {
		t.Fatal("should error")
	}
}
