package bebop

// BuiltinFn is the native implementation behind a VTBuiltin value. Builtins
// receive already-evaluated operands and report failures as *Error values.
type BuiltinFn func(env *Env, args []Value) (Value, error)

// builtinFns is the dispatch table: every native function the language
// ships, keyed by the name its VTBuiltin carries. Values hold only the name,
// so builtins stay comparable and printable.
var builtinFns = map[string]BuiltinFn{}

func registerBuiltin(name string, fn BuiltinFn) { builtinFns[name] = fn }

func init() {
	registerCoreBuiltins()
	registerListBuiltins()
	registerMathBuiltins()
	registerStringBuiltins()
}

// NewRootEnv returns an environment with a single frame binding every
// builtin. The prelude is separate; see LoadPrelude.
func NewRootEnv() *Env {
	env := NewEnv()
	env.Push(Frame{})
	for name := range builtinFns {
		env.Insert(name, BuiltinVal(name))
	}
	return env
}

// Operand helpers shared by the builtin files. Each returns the payload or
// an *Error blaming fnName; callers must only propagate a non-nil result.

func asNum(fnName string, v Value) (float64, *Error) {
	if v.Tag != VTNum {
		return 0, errf(ErrBadNum, "Function %s can operate only on numbers", fnName)
	}
	return v.Data.(float64), nil
}

func asQexpr(fnName string, v Value) ([]Value, *Error) {
	if v.Tag != VTQexpr {
		return nil, errf(ErrWrongType, "Function %s needed Qexpr but was given %s", fnName, FormatValue(v))
	}
	return v.Data.([]Value), nil
}

func asStr(fnName string, v Value) (string, *Error) {
	if v.Tag != VTStr {
		return "", errf(ErrWrongType, "Function %s needed Str but was given %s", fnName, FormatValue(v))
	}
	return v.Data.(string), nil
}

// symNames converts a Q-expression of symbols to their names, or fails
// WrongType with the caller's standard message.
func symNames(fnName string, cells []Value) ([]string, *Error) {
	names := make([]string, len(cells))
	for i, c := range cells {
		if c.Tag != VTSym {
			return nil, errf(ErrWrongType, "Function %s needed a param list of all Symbols", fnName)
		}
		names[i] = c.Data.(string)
	}
	return names, nil
}
