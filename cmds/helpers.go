package cmds

import "reflect"

// Var defines name taking one argument, and name. resetting it.
func Var[T any](name string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Desc("set " + reflect.TypeFor[T]().Name()))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}).Desc("reset " + name))
	return &value
}

// Switch defines name turning it on, and !name turning it off.
func Switch(name string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}).Desc("enable"))
	Define("!"+name, Func(func() {
		value = false
	}).Desc("disable " + name))
	return &value
}

// Collect defines name appending its argument on every use.
func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc("add " + reflect.TypeFor[T]().Name()))
	return &value
}
