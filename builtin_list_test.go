package bebop

import "testing"

func Test_Head_Returns_Bare_First_Element(t *testing.T) {
	wantNum(t, evalSrc(t, "head [1 2 3]"), 1)
	wantForm(t, evalSrc(t, "head [[1 2] 3]"), "[1 2]")
	wantForm(t, evalSrc(t, "head [x y]"), "x")
}

func Test_Head_Errors(t *testing.T) {
	env := NewRootEnv()
	e := evalErr(t, env, "head []")
	wantKind(t, e, ErrEmptyList)
	wantErrContains(t, e, "Function head was given empty list")

	e = evalErr(t, env, `head "abc"`)
	wantKind(t, e, ErrWrongType)
	wantErrContains(t, e, "Function head needed Qexpr but was given abc")

	e = evalErr(t, env, "head [1] [2]")
	wantErrContains(t, e, "Function head needed 1 arg but was given 2")
}

func Test_Tail(t *testing.T) {
	wantForm(t, evalSrc(t, "tail [1 2 3]"), "[2 3]")
	wantForm(t, evalSrc(t, "tail [1]"), "[]")

	env := NewRootEnv()
	e := evalErr(t, env, "tail []")
	wantKind(t, e, ErrEmptyList)
	wantErrContains(t, e, "Function tail was given empty list")
}

func Test_List_And_Join(t *testing.T) {
	// bare list is invoked with no operands
	wantForm(t, evalSrc(t, "list"), "[]")
	wantForm(t, evalSrc(t, "list 1 2 3"), "[1 2 3]")
	wantForm(t, evalSrc(t, `list "a" [b]`), "[a [b]]")

	wantForm(t, evalSrc(t, "join [1 2] [3] [4 5]"), "[1 2 3 4 5]")

	env := NewRootEnv()
	e := evalErr(t, env, "join [1]")
	wantErrContains(t, e, "Function join needed at least 2 args but was given 1")

	e = evalErr(t, env, "join [1] 2")
	wantKind(t, e, ErrWrongType)
	wantErrContains(t, e, "Function join needed Qexpr but was given 2")
}
