package bebop

import (
	"math"
	"time"
)

// Numeric operators. All of them are strict about operand types: anything
// that is not a number fails BadNum before any work happens.

func registerMathBuiltins() {
	for _, sym := range []string{"!", "+", "-", "*", "/", "%"} {
		registerBuiltin(sym, opBuiltin(sym))
	}
	for _, sym := range []string{"<", ">", ">=", "<=", "&&", "||"} {
		registerBuiltin(sym, ordBuiltin(sym))
	}
	registerBuiltin("==", builtinEq)
	registerBuiltin("!=", builtinNe)
	registerBuiltin("rand", builtinRand)
}

// opBuiltin builds the left-fold arithmetic for sym. One operand is special:
// "-" negates, "!" logical-nots, the rest return it unchanged. With more
// operands the fold applies sym pairwise; "!" and any unknown symbol fold as
// addition. Only "/" guards its right operand, so "%" by zero follows IEEE
// and yields NaN.
func opBuiltin(sym string) BuiltinFn {
	return func(_ *Env, args []Value) (Value, error) {
		if len(args) == 0 {
			return Value{}, errf(ErrIncorrectParamCount,
				"Function %s needed at least 1 arg but was given 0", sym)
		}
		nums := make([]float64, len(args))
		for i, a := range args {
			n, aerr := asNum(sym, a)
			if aerr != nil {
				return Value{}, aerr
			}
			nums[i] = n
		}

		if len(nums) == 1 {
			switch sym {
			case "-":
				return Num(-nums[0]), nil
			case "!":
				if nums[0] == 0 {
					return Num(1), nil
				}
				return Num(0), nil
			default:
				return Num(nums[0]), nil
			}
		}

		acc := nums[0]
		for _, y := range nums[1:] {
			switch sym {
			case "-":
				acc -= y
			case "*":
				acc *= y
			case "%":
				acc = math.Mod(acc, y)
			case "/":
				if y == 0 {
					return Value{}, errf(ErrDivZero,
						"You cannot divide %s, or any number, by 0", formatNum(acc))
				}
				acc /= y
			default:
				acc += y
			}
		}
		return Num(acc), nil
	}
}

// ordBuiltin builds the binary comparisons: exactly two numeric operands,
// result 1 or 0. "&&" and "||" compare truthiness rather than magnitude.
func ordBuiltin(sym string) BuiltinFn {
	return func(_ *Env, args []Value) (Value, error) {
		if len(args) != 2 {
			return Value{}, errf(ErrIncorrectParamCount,
				"Function %s needed 2 args but was given %d", sym, len(args))
		}
		x, aerr := asNum(sym, args[0])
		if aerr != nil {
			return Value{}, aerr
		}
		y, aerr := asNum(sym, args[1])
		if aerr != nil {
			return Value{}, aerr
		}

		var r bool
		switch sym {
		case "<":
			r = x < y
		case ">":
			r = x > y
		case ">=":
			r = x >= y
		case "<=":
			r = x <= y
		case "&&":
			r = x != 0 && y != 0
		case "||":
			r = x != 0 || y != 0
		}
		if r {
			return Num(1), nil
		}
		return Num(0), nil
	}
}

// builtinEq compares any two values structurally.
func builtinEq(_ *Env, args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, errf(ErrIncorrectParamCount,
			"Function == needed 2 args but was given %d", len(args))
	}
	if Equal(args[0], args[1]) {
		return Num(1), nil
	}
	return Num(0), nil
}

func builtinNe(_ *Env, args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, errf(ErrIncorrectParamCount,
			"Function != needed 2 args but was given %d", len(args))
	}
	if Equal(args[0], args[1]) {
		return Num(0), nil
	}
	return Num(1), nil
}

// builtinRand returns the wall clock's nanosecond reading: a convenient
// source of varying numbers in [0, 1e9), not uniform and not cryptographic.
func builtinRand(_ *Env, args []Value) (Value, error) {
	if len(args) != 0 {
		return Value{}, errf(ErrIncorrectParamCount,
			"Function rand needed 0 args but was given %d", len(args))
	}
	return Num(float64(time.Now().Nanosecond())), nil
}
