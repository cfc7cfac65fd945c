package bebop

import "testing"

func parseOK(t *testing.T, src string) Value {
	t.Helper()
	v, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return v
}

func parseFail(t *testing.T, src string) *ParseError {
	t.Helper()
	v, err := Parse(src)
	if err == nil {
		t.Fatalf("Parse(%q) should fail, got %s", src, FormatValue(v))
	}
	return err
}

func Test_Parser_Wraps_Program_In_One_Sexpr(t *testing.T) {
	v := parseOK(t, "1 2 3")
	if v.Tag != VTSexpr || len(v.Data.([]Value)) != 3 {
		t.Fatalf("want 3-cell root sexpr, got %#v", v)
	}
	wantForm(t, parseOK(t, ""), "()")
	wantForm(t, parseOK(t, "  \n\t  "), "()")
}

func Test_Parser_Numbers(t *testing.T) {
	wantForm(t, parseOK(t, "42"), "(42)")
	wantForm(t, parseOK(t, "+5"), "(5)")
	wantForm(t, parseOK(t, "-12"), "(-12)")
	wantForm(t, parseOK(t, "3.25"), "(3.25)")
	wantForm(t, parseOK(t, "5."), "(5)")
	wantForm(t, parseOK(t, ".5"), "(0.5)")
	wantForm(t, parseOK(t, "123E-02"), "(1.23)")
	wantForm(t, parseOK(t, "1e5"), "(100000)")
}

func Test_Parser_Number_Symbol_Boundary(t *testing.T) {
	// a sign with no digits stays a symbol
	wantForm(t, parseOK(t, "-"), "(-)")
	wantForm(t, parseOK(t, "+"), "(+)")
	// a second sign starts a new number
	wantForm(t, parseOK(t, "1.000001-1"), "(1.000001 -1)")
	// a dangling exponent splits into number and symbol
	wantForm(t, parseOK(t, "1e"), "(1 e)")
	wantForm(t, parseOK(t, "1e+"), "(1 e+)")
}

func Test_Parser_Symbols(t *testing.T) {
	wantForm(t, parseOK(t, "head"), "(head)")
	wantForm(t, parseOK(t, "is-nil"), "(is-nil)")
	wantForm(t, parseOK(t, `\`), `(\)`)
	wantForm(t, parseOK(t, "<= >= != =="), "(<= >= != ==)")
}

func Test_Parser_Strings_No_Escapes(t *testing.T) {
	wantStr(t, parseOK(t, `"hello world"`).Data.([]Value)[0], "hello world")
	// a backslash is an ordinary byte inside strings
	wantStr(t, parseOK(t, `"a\n"`).Data.([]Value)[0], `a\n`)
	wantStr(t, parseOK(t, `""`).Data.([]Value)[0], "")
	// newlines are allowed inside a string
	wantStr(t, parseOK(t, "\"a\nb\"").Data.([]Value)[0], "a\nb")
}

func Test_Parser_Lists_And_Nesting(t *testing.T) {
	wantForm(t, parseOK(t, "(+ 1 2)"), "((+ 1 2))")
	wantForm(t, parseOK(t, "[1 [2 (3)]]"), "([1 [2 (3)]])")
	wantForm(t, parseOK(t, "( )"), "(())")
	wantForm(t, parseOK(t, "[]"), "([])")
}

func Test_Parser_Error_Positions_And_Trails(t *testing.T) {
	pe := parseFail(t, "(+ 1")
	if pe.Line != 1 || pe.Col != 4 || pe.Msg != "expected closing ')'" {
		t.Fatalf("got %#v", pe)
	}
	if len(pe.Trail) != 1 || pe.Trail[0] != "S-Expression" {
		t.Fatalf("trail: %#v", pe.Trail)
	}

	pe = parseFail(t, "(head [1 2")
	if got := pe.Error(); got != "PARSE ERROR at 1:11: expected closing ']' (in S-Expression > Q-Expression)" {
		t.Fatalf("got %q", got)
	}

	pe = parseFail(t, "@")
	if pe.Msg != "unexpected character '@', expected Number, Symbol, String, S-Expression or Q-Expression" {
		t.Fatalf("got %q", pe.Msg)
	}

	pe = parseFail(t, "(+ 1 })")
	wantErrContains(t, pe, "unexpected character '}', expected expression or ')'")

	pe = parseFail(t, `"abc`)
	if got := pe.Error(); got != `PARSE ERROR at 1:5: expected closing '"' (in String)` {
		t.Fatalf("got %q", got)
	}
}

func Test_Parser_Tracks_Lines(t *testing.T) {
	pe := parseFail(t, "(def [a] 1)\n(head [1 2")
	if pe.Line != 2 || pe.Col != 10 {
		t.Fatalf("got line %d col %d", pe.Line, pe.Col)
	}
}

func Test_Parser_Incomplete_Detection(t *testing.T) {
	if !parseFail(t, "(+ 1").Incomplete() {
		t.Fatal("unclosed sexpr should be incomplete")
	}
	if !parseFail(t, "[1").Incomplete() {
		t.Fatal("unclosed qexpr should be incomplete")
	}
	if !parseFail(t, `"ab`).Incomplete() {
		t.Fatal("unclosed string should be incomplete")
	}
	if parseFail(t, "(+ 1 })").Incomplete() {
		t.Fatal("a hard error is not incomplete")
	}
}

func Test_Parser_Print_Reparse_RoundTrip(t *testing.T) {
	// string-free forms survive a print/reparse cycle
	for _, src := range []string{
		"(+ 1 2)",
		"[a b [c (d 1)] -2.5]",
		`(\ [x y] [+ x y])`,
		"(def [x] 100)",
	} {
		first := parseOK(t, src).Data.([]Value)[0]
		again := parseOK(t, FormatValue(first)).Data.([]Value)[0]
		if !Equal(first, again) {
			t.Fatalf("round trip changed %s to %s", FormatValue(first), FormatValue(again))
		}
	}
}
