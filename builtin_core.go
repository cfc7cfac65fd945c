package bebop

// Core forms: lambda construction, binding, branching, metacircular eval,
// and user-raised errors.

func registerCoreBuiltins() {
	registerBuiltin("\\", builtinLambda)
	registerBuiltin("def", builtinDef)
	registerBuiltin("=", builtinAssign)
	registerBuiltin("if", builtinIf)
	registerBuiltin("eval", builtinEval)
	registerBuiltin("die", builtinDie)
}

// builtinLambda builds a lambda from a parameter Q-expression and a body
// Q-expression, capturing a snapshot of the innermost frame at construction
// time. The capture is a copy: later mutation of the scope never leaks into
// the lambda, and vice versa.
func builtinLambda(env *Env, args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, errf(ErrIncorrectParamCount,
			"Function \\ needed 2 args but was given %d", len(args))
	}
	if args[0].Tag != VTQexpr || args[1].Tag != VTQexpr {
		return Value{}, errf(ErrWrongType,
			"Function \\ needed a Qexpr for arguments and a Qexpr for body")
	}
	params, aerr := symNames("\\", args[0].Data.([]Value))
	if aerr != nil {
		return Value{}, aerr
	}
	body := copyCells(args[1].Data.([]Value))

	captured := Frame{}
	if frame, ok := env.Peek(); ok {
		captured = frame.Copy()
	}
	return LambdaVal(NewLambda(params, body, captured)), nil
}

func builtinDef(env *Env, args []Value) (Value, error) {
	return assign(env, "def", args)
}

func builtinAssign(env *Env, args []Value) (Value, error) {
	return assign(env, "=", args)
}

// assign binds names to values: def targets the global frame, = the
// innermost. Both return the empty string, so definitions disappear inside a
// document-level concat.
func assign(env *Env, sym string, args []Value) (Value, error) {
	if len(args) < 2 {
		return Value{}, errf(ErrIncorrectParamCount,
			"Function %s needed at least 2 args but was given %d", sym, len(args))
	}
	cells, aerr := asQexpr(sym, args[0])
	if aerr != nil {
		return Value{}, aerr
	}
	names, aerr := symNames(sym, cells)
	if aerr != nil {
		return Value{}, aerr
	}
	vals := args[1:]
	if len(names) != len(vals) {
		return Value{}, errf(ErrIncorrectParamCount,
			"Function %s needed to assign %d values but was passed %d", sym, len(names), len(vals))
	}
	for i, name := range names {
		if sym == "def" {
			env.InsertGlobal(name, vals[i])
		} else {
			env.Insert(name, vals[i])
		}
	}
	return Str(""), nil
}

// builtinIf takes a numeric condition and two Q-expression branches, and
// evaluates exactly one branch as an S-expression in the active scope.
func builtinIf(env *Env, args []Value) (Value, error) {
	if len(args) != 3 {
		return Value{}, errf(ErrIncorrectParamCount,
			"Function if needed 3 args but was given %d", len(args))
	}
	if args[0].Tag != VTNum {
		return Value{}, errf(ErrWrongType,
			"Function if needed conditional but was given %s", FormatValue(args[0]))
	}
	if args[1].Tag != VTQexpr {
		return Value{}, errf(ErrWrongType,
			"Function if needed qexpr for Then but was given %s", FormatValue(args[1]))
	}
	if args[2].Tag != VTQexpr {
		return Value{}, errf(ErrWrongType,
			"Function if needed qexpr for Else but was given %s", FormatValue(args[2]))
	}
	branch := args[2]
	if args[0].Data.(float64) != 0 {
		branch = args[1]
	}
	return Eval(env, Sexpr(branch.Data.([]Value)...))
}

// builtinEval promotes a Q-expression to an S-expression and evaluates it;
// any other operand is evaluated as-is.
func builtinEval(env *Env, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, errf(ErrIncorrectParamCount,
			"Function eval needed 1 arg but was given %d", len(args))
	}
	if args[0].Tag == VTQexpr {
		return Eval(env, Sexpr(args[0].Data.([]Value)...))
	}
	return Eval(env, args[0])
}

// builtinDie raises an Interrupt carrying the given text.
func builtinDie(_ *Env, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, errf(ErrIncorrectParamCount,
			"Function die needed 1 arg but was given %d", len(args))
	}
	msg, aerr := asStr("die", args[0])
	if aerr != nil {
		return Value{}, aerr
	}
	return Value{}, errf(ErrInterrupt, "%s", msg)
}
