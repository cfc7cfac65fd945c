package bebop

import "testing"

func Test_Value_Copy_Is_Deep(t *testing.T) {
	orig := Qexpr(Num(1), Qexpr(Sym("a")))
	cp := orig.Copy()

	cells := cp.Data.([]Value)
	cells[0] = Num(99)
	cells[1].Data.([]Value)[0] = Sym("b")

	wantForm(t, orig, "[1 [a]]")
	wantForm(t, cp, "[99 [b]]")
}

func Test_Value_Copy_Lambda_Shares_Nothing(t *testing.T) {
	orig := LambdaVal(NewLambda([]string{"x"}, []Value{Sym("x")}, Frame{"n": Num(1)}))
	cp := orig.Copy()

	cl := cp.Data.(*Lambda)
	cl.Params[0] = "y"
	cl.Body[0] = Num(0)
	cl.Env.Insert("n", Num(2))

	ol := orig.Data.(*Lambda)
	if ol.Params[0] != "x" {
		t.Fatalf("params shared: %v", ol.Params)
	}
	wantForm(t, ol.Body[0], "x")
	n, _ := ol.Env.Get("n")
	wantNum(t, n, 1)
}

func Test_Value_Equal_Structural(t *testing.T) {
	if Equal(Sym("a"), Str("a")) {
		t.Fatal("symbol and string with the same text should differ")
	}
	if Equal(Sexpr(), Qexpr()) {
		t.Fatal("() and [] should differ by tag")
	}
	if !Equal(Qexpr(Num(1), Qexpr(Num(2))), Qexpr(Num(1), Qexpr(Num(2)))) {
		t.Fatal("deep lists should compare equal")
	}
	if Equal(Qexpr(Num(1)), Qexpr(Num(1), Num(2))) {
		t.Fatal("lists of different length should differ")
	}
	if !Equal(BuiltinVal("head"), BuiltinVal("head")) {
		t.Fatal("builtins compare by name")
	}
	if Equal(BuiltinVal("head"), BuiltinVal("tail")) {
		t.Fatal("distinct builtins should differ")
	}
}

func Test_Value_Equal_Lambdas_By_Params_And_Body(t *testing.T) {
	a := LambdaVal(NewLambda([]string{"x"}, []Value{Sym("x")}, Frame{"n": Num(1)}))
	b := LambdaVal(NewLambda([]string{"x"}, []Value{Sym("x")}, Frame{"n": Num(2)}))
	if !Equal(a, b) {
		t.Fatal("lambdas with equal params and body should compare equal regardless of capture")
	}

	c := LambdaVal(NewLambda([]string{"y"}, []Value{Sym("x")}, nil))
	if Equal(a, c) {
		t.Fatal("lambdas with different params should differ")
	}
}
