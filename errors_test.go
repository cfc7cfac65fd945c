package bebop

import (
	"strings"
	"testing"
)

func Test_Errors_Render_Kind_Detail_Message(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{errf(ErrDivZero, "You cannot divide 5, or any number, by 0"),
			"Error: DivZero - Cannot Divide By Zero; You cannot divide 5, or any number, by 0"},
		{errf(ErrBadOp, "x is not a valid operator"),
			"Error: BadOp - Invalid Operator; x is not a valid operator"},
		{errf(ErrBadNum, "Function + can operate only on numbers"),
			"Error: BadNum - Invalid Operand; Function + can operate only on numbers"},
		{errf(ErrIncorrectParamCount, "Function eval needed 1 arg but was given 2"),
			"Error: IncorrectParamCount - Incorrect Number of Params passed to function; Function eval needed 1 arg but was given 2"},
		{errf(ErrEmptyList, "Function head was given empty list"),
			"Error: EmptyList - Empty List passed to function; Function head was given empty list"},
		{errf(ErrWrongType, "Function def needed Qexpr but was given 5"),
			"Error: WrongType - Incorrect Data Type used; Function def needed Qexpr but was given 5"},
		{errf(ErrUnboundSymbol, `"foo" has not been defined`),
			`Error: UnboundSymbol - This Symbol has not been Defined; "foo" has not been defined`},
		{errf(ErrInterrupt, "boom"),
			"Error: Interrupt - User defined Error; boom"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Fatalf("got  %q\nwant %q", got, c.want)
		}
	}
}

func Test_Errors_Caret_Snippet_At_End_Of_Input(t *testing.T) {
	src := "(def [a] 1)\n(head [1 2"
	_, perr := Parse(src)
	if perr == nil {
		t.Fatal("parse should fail")
	}
	got := WrapParseError(perr, src).Error()
	want := "PARSE ERROR at 2:11: expected closing ']' (in S-Expression > Q-Expression)\n\n" +
		"   1 | (def [a] 1)\n" +
		"   2 | (head [1 2\n" +
		"     | " + strings.Repeat(" ", 10) + "^\n"
	if got != want {
		t.Fatalf("snippet:\n%s\nwant:\n%s", got, want)
	}
}

func Test_Errors_Caret_Snippet_With_Context_On_Both_Sides(t *testing.T) {
	src := "(def [a] 1)\n(+ 1 ]\n(def [b] 2)"
	_, perr := Parse(src)
	if perr == nil {
		t.Fatal("parse should fail")
	}
	got := WrapParseError(perr, src).Error()
	want := "PARSE ERROR at 2:6: unexpected character ']', expected expression or ')' (in S-Expression)\n\n" +
		"   1 | (def [a] 1)\n" +
		"   2 | (+ 1 ]\n" +
		"     | " + strings.Repeat(" ", 5) + "^\n" +
		"   3 | (def [b] 2)\n"
	if got != want {
		t.Fatalf("snippet:\n%s\nwant:\n%s", got, want)
	}
}

func Test_Errors_Wrap_Passes_Eval_Errors_Through(t *testing.T) {
	e := errf(ErrInterrupt, "boom")
	if got := WrapParseError(e, "anything"); got != error(e) {
		t.Fatalf("non-parse error should pass through, got %v", got)
	}
}

func Test_Errors_ParseError_Without_Trail(t *testing.T) {
	pe := &ParseError{Line: 3, Col: 0, Msg: "unexpected character '~', expected Number, Symbol, String, S-Expression or Q-Expression"}
	want := "PARSE ERROR at 3:1: unexpected character '~', expected Number, Symbol, String, S-Expression or Q-Expression"
	if got := pe.Error(); got != want {
		t.Fatalf("got %q", got)
	}
	if pe.Incomplete() {
		t.Fatal("unexpected-character errors are not incomplete")
	}
}
