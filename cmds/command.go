package cmds

import (
	"fmt"
	"reflect"
	"strings"
)

// Command is a named action of an Executor. Func consumes one argument per
// parameter, pointer parameters being optional. Subs become available to
// the arguments that follow.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Args describes the parameters of Func, optional ones in brackets.
func (c *Command) Args() string {
	if !c.Func.IsValid() {
		return ""
	}
	t := c.Func.Type()
	parts := make([]string, 0, t.NumIn())
	for i := range t.NumIn() {
		in := t.In(i)
		if in.Kind() == reflect.Pointer {
			parts = append(parts, "["+argName(in.Elem())+"]")
		} else {
			parts = append(parts, "<"+argName(in)+">")
		}
	}
	return strings.Join(parts, " ")
}

func argName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "bool"
	}
	return "string"
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if err := checkFunc(fnValue); err != nil {
		panic(err)
	}
	return &Command{
		Func: fnValue,
	}
}

func checkFunc(fn reflect.Value) error {
	if fn.Kind() != reflect.Func {
		return fmt.Errorf("must be function, got %v", fn.Kind())
	}
	t := fn.Type()
	switch t.NumOut() {
	case 0:
	case 1:
		if t.Out(0) != errorType {
			return fmt.Errorf("must return error, got %v", t.Out(0))
		}
	default:
		return fmt.Errorf("must return 0 or 1 value, got %d", t.NumOut())
	}
	for i := range t.NumIn() {
		in := t.In(i)
		if in.Kind() == reflect.Pointer {
			in = in.Elem()
		}
		switch in.Kind() {
		case reflect.Bool, reflect.String,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
		default:
			return fmt.Errorf("unsupported argument type %v", t.In(i))
		}
	}
	return nil
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
