// interpreter.go: the evaluator and the public entry points
//
// Evaluation is a tree walk over Values. Symbols resolve through the
// environment, S-expressions are invocations, and everything else evaluates
// to itself; Q-expressions keep their contents quoted until something
// promotes them with eval or a branch form. Functions curry: applying fewer
// operands than parameters yields a new lambda waiting for the rest.
//
// Two entry points sit on top of Eval. EvalSource is the typed surface:
// parse then evaluate, with *ParseError or *Error coming back. Run is the
// text surface used by the REPL and the document pipeline: it always returns
// display text, rendering values and errors alike.
package bebop

import (
	"fmt"
	"strings"
)

// Version is the interpreter release, reported by the CLI.
const Version = "0.1.0"

// Eval evaluates v in env.
func Eval(env *Env, v Value) (Value, error) {
	switch v.Tag {
	case VTSym:
		name := v.Data.(string)
		got, ok := env.Get(name)
		if !ok {
			return Value{}, errf(ErrUnboundSymbol, "%q has not been defined", name)
		}
		return got, nil
	case VTSexpr:
		return evalSexpr(env, v.Data.([]Value))
	default:
		return v, nil
	}
}

// evalSexpr evaluates the children left to right, stopping at the first
// error, then applies the invocation rules: no children yield the empty
// S-expression; a lone child is invoked with zero operands when callable and
// returned as-is otherwise; with two or more children the first must be
// callable and the rest become its operands.
func evalSexpr(env *Env, cells []Value) (Value, error) {
	results := make([]Value, len(cells))
	for i, c := range cells {
		r, err := Eval(env, c)
		if err != nil {
			return Value{}, err
		}
		results[i] = r
	}

	if len(results) == 0 {
		return Sexpr(), nil
	}

	head := results[0]
	operands := results[1:]
	switch head.Tag {
	case VTBuiltin:
		return applyBuiltin(env, head.Data.(string), operands)
	case VTLambda:
		return Apply(env, head.Data.(*Lambda), operands)
	}
	if len(results) == 1 {
		return head, nil
	}
	return Value{}, errf(ErrBadOp, "%s is not a valid operator", FormatValue(head))
}

func applyBuiltin(env *Env, name string, args []Value) (Value, error) {
	fn, ok := builtinFns[name]
	if !ok {
		return Value{}, errf(ErrBadOp, "%s is not a valid operator", name)
	}
	return fn(env, args)
}

// Apply binds args to fn's parameters left to right and runs the body once
// every parameter is bound. Binding fewer arguments than parameters returns
// the partially applied lambda instead. fn is consumed: callers that need
// the lambda afterwards must pass a copy (Env.Get already hands out copies).
func Apply(env *Env, fn *Lambda, args []Value) (Value, error) {
	given, total := len(args), len(fn.Params)
	for len(args) > 0 {
		if len(fn.Params) == 0 {
			return Value{}, errf(ErrIncorrectParamCount,
				"Function needed %d arg(s) but was given %d", total, given)
		}
		param := fn.Params[0]
		fn.Params = fn.Params[1:]

		// A parameter named ":" collects every remaining operand into one
		// Q-expression bound to the single parameter that follows it.
		if param == ":" {
			if len(fn.Params) != 1 {
				return Value{}, errf(ErrIncorrectParamCount,
					": operator needs to be followed by arg")
			}
			rest := fn.Params[0]
			fn.Params = nil
			fn.Env.Insert(rest, Qexpr(copyCells(args)...))
			break
		}

		fn.Env.Insert(param, args[0])
		args = args[1:]
	}

	if len(fn.Params) > 0 {
		return LambdaVal(fn), nil
	}

	// Fully applied: the body runs inside a copy of the lambda's frame so
	// repeated calls never see each other's bindings.
	frame, _ := fn.Env.Peek()
	env.Push(frame.Copy())
	res, err := Eval(env, Sexpr(fn.Body...))
	env.Pop()
	return res, err
}

// EvalSource parses src and evaluates the whole program in env. The returned
// error is a *ParseError or an *Error.
func EvalSource(env *Env, src string) (Value, error) {
	prog, perr := Parse(src)
	if perr != nil {
		return Value{}, perr
	}
	return Eval(env, prog)
}

// Run is the text-in, text-out surface: it never fails, rendering values and
// errors alike as display text. The literal input "env" dumps the innermost
// frame instead of evaluating.
func Run(env *Env, src string) string {
	if strings.TrimSpace(src) == "env" {
		frame, ok := env.Peek()
		if !ok {
			return "{\n}"
		}
		return FormatFrame(frame)
	}
	v, err := EvalSource(env, src)
	if err != nil {
		if _, isParse := err.(*ParseError); isParse {
			return fmt.Sprintf("Error: Parsing Error - Could not parse the input; %s", err)
		}
		return err.Error()
	}
	return FormatValue(v)
}
