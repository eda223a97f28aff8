package cmds

// Var defines name to set the returned value, and name. to reset it.
func Var[T any](name string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}))
	return &value
}

// Switch defines name to turn the returned flag on, and !name to turn it off.
func Switch(name string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}))
	Define("!"+name, Func(func() {
		value = false
	}))
	return &value
}

// Collect defines name to append to the returned list, and name. to clear it.
func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}))
	Define(name+".", Func(func() {
		value = nil
	}))
	return &value
}

// Tristate is Switch for settings with a fallback: ok stays false until name or !name is given, and name. unsets it.
func Tristate(name string) func() (value bool, ok bool) {
	var value, set bool
	Define(name, Func(func() {
		value, set = true, true
	}))
	Define("!"+name, Func(func() {
		value, set = false, true
	}))
	Define(name+".", Func(func() {
		value, set = false, false
	}))
	return func() (bool, bool) {
		return value, set
	}
}

// Optional is Var for settings with a fallback. The argument is required; ok reports whether name was given since the last name.
func Optional[T any](name string) func() (value T, ok bool) {
	var value T
	var set bool
	Define(name, Func(func(v T) {
		value, set = v, true
	}))
	Define(name+".", Func(func() {
		var zero T
		value, set = zero, false
	}))
	return func() (T, bool) {
		return value, set
	}
}
