package bebop

// List surgery over Q-expressions.

func registerListBuiltins() {
	registerBuiltin("head", builtinHead)
	registerBuiltin("tail", builtinTail)
	registerBuiltin("list", builtinList)
	registerBuiltin("join", builtinJoin)
}

// builtinHead returns the first element itself, not rewrapped. The prelude's
// recursion helpers rely on that: (head [1 2 3]) is the number 1.
func builtinHead(_ *Env, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, errf(ErrIncorrectParamCount,
			"Function head needed 1 arg but was given %d", len(args))
	}
	cells, aerr := asQexpr("head", args[0])
	if aerr != nil {
		return Value{}, aerr
	}
	if len(cells) == 0 {
		return Value{}, errf(ErrEmptyList, "Function head was given empty list")
	}
	return cells[0], nil
}

// builtinTail returns everything after the first element as a Q-expression,
// possibly empty.
func builtinTail(_ *Env, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, errf(ErrIncorrectParamCount,
			"Function tail needed 1 arg but was given %d", len(args))
	}
	cells, aerr := asQexpr("tail", args[0])
	if aerr != nil {
		return Value{}, aerr
	}
	if len(cells) == 0 {
		return Value{}, errf(ErrEmptyList, "Function tail was given empty list")
	}
	return Qexpr(cells[1:]...), nil
}

// builtinList wraps all operands into a Q-expression. Arity-free.
func builtinList(_ *Env, args []Value) (Value, error) {
	return Qexpr(args...), nil
}

// builtinJoin flattens two or more Q-expressions into one, left to right.
func builtinJoin(_ *Env, args []Value) (Value, error) {
	if len(args) < 2 {
		return Value{}, errf(ErrIncorrectParamCount,
			"Function join needed at least 2 args but was given %d", len(args))
	}
	var joined []Value
	for _, a := range args {
		cells, aerr := asQexpr("join", a)
		if aerr != nil {
			return Value{}, aerr
		}
		joined = append(joined, cells...)
	}
	return Qexpr(joined...), nil
}
