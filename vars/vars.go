package vars

import (
	"strconv"
	"strings"
)

func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}

func DerefOr[T any](ptr *T, def T) T {
	if ptr == nil {
		return def
	}
	return *ptr
}

// StrToBool accepts the spellings people type at a prompt.
// Anything unrecognized is false.
func StrToBool(str string) bool {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on":
		return true
	case "false", "f", "no", "n", "off":
		return false
	}
	if n, err := strconv.Atoi(str); err == nil {
		return n != 0
	}
	return false
}
