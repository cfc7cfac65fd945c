package bebop

import "strings"

// String operators. The whole document pipeline funnels through concat: every
// markdown construct evaluates to a string and the root expression
// concatenates them, with definitions contributing empty strings.

func registerStringBuiltins() {
	registerBuiltin("concat", builtinConcat)
	registerBuiltin("echo", builtinEcho)
}

// builtinConcat joins one or more strings.
func builtinConcat(_ *Env, args []Value) (Value, error) {
	if len(args) < 1 {
		return Value{}, errf(ErrIncorrectParamCount,
			"Function concat needed at least 1 arg but was given %d", len(args))
	}
	var b strings.Builder
	for _, a := range args {
		s, aerr := asStr("concat", a)
		if aerr != nil {
			return Value{}, aerr
		}
		b.WriteString(s)
	}
	return Str(b.String()), nil
}

// builtinEcho returns the operand's printed representation wrapped in
// literal quote characters, turning any value into string material.
func builtinEcho(_ *Env, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, errf(ErrIncorrectParamCount,
			"Function echo needed 1 arg but was given %d", len(args))
	}
	return Str(`"` + FormatValue(args[0]) + `"`), nil
}
