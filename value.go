package bebop

// Runtime values. Source text parses into Values and the evaluator walks the
// same representation, so programs can build, quote and evaluate code as
// ordinary data.

type ValueTag uint8

const (
	VTSym ValueTag = iota
	VTNum
	VTSexpr
	VTQexpr
	VTStr
	VTBuiltin
	VTLambda
)

// Value is the single runtime value representation: a tag plus the payload
// for that variant.
//
//	VTSym, VTStr  string
//	VTNum         float64
//	VTSexpr/Qexpr []Value
//	VTBuiltin     string (registered name; native code lives in the dispatch table)
//	VTLambda      *Lambda
type Value struct {
	Tag  ValueTag
	Data any
}

func Sym(name string) Value { return Value{Tag: VTSym, Data: name} }
func Num(n float64) Value   { return Value{Tag: VTNum, Data: n} }
func Str(s string) Value    { return Value{Tag: VTStr, Data: s} }

func Sexpr(cells ...Value) Value { return Value{Tag: VTSexpr, Data: cells} }
func Qexpr(cells ...Value) Value { return Value{Tag: VTQexpr, Data: cells} }

// BuiltinVal names a native function. Equality and printing go by the name;
// the implementation is looked up in the builtin table at call time.
func BuiltinVal(name string) Value { return Value{Tag: VTBuiltin, Data: name} }

func LambdaVal(l *Lambda) Value { return Value{Tag: VTLambda, Data: l} }

// Lambda is a user-defined function: parameter names, an unevaluated body,
// and the environment snapshot taken when the lambda was built.
type Lambda struct {
	Params []string
	Body   []Value
	Env    *Env
}

// NewLambda builds a lambda owning a one-frame environment around the
// captured scope.
func NewLambda(params []string, body []Value, captured Frame) *Lambda {
	env := NewEnv()
	env.Push(captured)
	return &Lambda{Params: params, Body: body, Env: env}
}

// Copy returns a lambda sharing no mutable state with l.
func (l *Lambda) Copy() *Lambda {
	return &Lambda{
		Params: append([]string(nil), l.Params...),
		Body:   copyCells(l.Body),
		Env:    l.Env.Copy(),
	}
}

// Copy returns a value sharing no mutable state with v. Lists copy their
// cells and lambdas copy params, body and captured environment; the other
// payloads are immutable and returned as-is.
func (v Value) Copy() Value {
	switch v.Tag {
	case VTSexpr, VTQexpr:
		return Value{Tag: v.Tag, Data: copyCells(v.Data.([]Value))}
	case VTLambda:
		return Value{Tag: VTLambda, Data: v.Data.(*Lambda).Copy()}
	default:
		return v
	}
}

func copyCells(cells []Value) []Value {
	out := make([]Value, len(cells))
	for i, c := range cells {
		out[i] = c.Copy()
	}
	return out
}

// Equal reports structural equality: symbols and strings by text, numbers by
// float64 equality, lists element-wise within the same variant, builtins by
// registered name, lambdas by parameter list and body. Captured environments
// are not compared, and values of different variants are never equal.
func Equal(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTSym, VTStr, VTBuiltin:
		return a.Data.(string) == b.Data.(string)
	case VTNum:
		return a.Data.(float64) == b.Data.(float64)
	case VTSexpr, VTQexpr:
		return equalCells(a.Data.([]Value), b.Data.([]Value))
	case VTLambda:
		la, lb := a.Data.(*Lambda), b.Data.(*Lambda)
		if len(la.Params) != len(lb.Params) {
			return false
		}
		for i := range la.Params {
			if la.Params[i] != lb.Params[i] {
				return false
			}
		}
		return equalCells(la.Body, lb.Body)
	}
	return false
}

func equalCells(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
