package configs

import (
	"errors"
	"fmt"
	"iter"
)

// Values are validated against the schema when documents load, so decode
// failures here are programming errors and panic.

// First decodes the value at path from the first document that has one.
// The zero value is returned when no document has it.
func First[T any](loader Loader, path string) T {
	var value T
	err := loader.AssignFirst(path, &value)
	if err != nil && !errors.Is(err, ErrValueNotFound) {
		panic(fmt.Errorf("config %s: %w", path, err))
	}
	return value
}

// All decodes the value at path from every document that has one, in
// document order.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(fmt.Errorf("config %s: %w", path, err))
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(fmt.Errorf("config %s: %w", path, err))
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Concat joins the lists at path of every document.
func Concat[T any](loader Loader, path string) []T {
	var ret []T
	for list := range All[[]T](loader, path) {
		ret = append(ret, list...)
	}
	return ret
}
