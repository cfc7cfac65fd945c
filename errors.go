// errors.go: the error taxonomy and caret-snippet rendering
//
// Evaluation failures are values of *Error, one of a closed set of kinds,
// each carrying a canonical detail phrase plus a free-form message. They are
// returned up the call chain; nothing in the interpreter panics on user
// input. Parse failures are *ParseError values carrying the source position
// and the constructs that were open when parsing stopped.
//
// WrapParseError turns a *ParseError into a multi-line snippet with a caret
// under the offending column:
//
//	PARSE ERROR at 2:9: expected closing ']'
//
//	   1 | (def [a] 1)
//	   2 | (head [1 2
//	     |         ^
//
// Other errors pass through WrapParseError unchanged, so CLI surfaces can
// apply it unconditionally.
package bebop

import (
	"fmt"
	"strings"
)

// ErrKind identifies one of the interpreter's error conditions. The set is
// closed; the evaluator and the builtins never report anything outside it.
type ErrKind uint8

const (
	ErrDivZero ErrKind = iota
	ErrBadOp
	ErrBadNum
	ErrIncorrectParamCount
	ErrEmptyList
	ErrWrongType
	ErrUnboundSymbol
	ErrInterrupt
)

func (k ErrKind) String() string {
	switch k {
	case ErrDivZero:
		return "DivZero"
	case ErrBadOp:
		return "BadOp"
	case ErrBadNum:
		return "BadNum"
	case ErrIncorrectParamCount:
		return "IncorrectParamCount"
	case ErrEmptyList:
		return "EmptyList"
	case ErrWrongType:
		return "WrongType"
	case ErrUnboundSymbol:
		return "UnboundSymbol"
	case ErrInterrupt:
		return "Interrupt"
	}
	return "Unknown"
}

// detail is the canonical phrase for the kind, fixed per kind so error text
// stays recognizable no matter which builtin produced it.
func (k ErrKind) detail() string {
	switch k {
	case ErrDivZero:
		return "Cannot Divide By Zero"
	case ErrBadOp:
		return "Invalid Operator"
	case ErrBadNum:
		return "Invalid Operand"
	case ErrIncorrectParamCount:
		return "Incorrect Number of Params passed to function"
	case ErrEmptyList:
		return "Empty List passed to function"
	case ErrWrongType:
		return "Incorrect Data Type used"
	case ErrUnboundSymbol:
		return "This Symbol has not been Defined"
	case ErrInterrupt:
		return "User defined Error"
	}
	return "Unknown Error"
}

// Error is an evaluation failure. Message narrows the failure down to the
// operands at hand; Kind and its detail phrase classify it.
type Error struct {
	Kind    ErrKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("Error: %s - %s; %s", e.Kind, e.Kind.detail(), e.Message)
}

func errf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ParseError reports where parsing failed. Line is 1-based; Col is a 0-based
// byte column rendered 1-based. Trail lists the constructs that were open at
// the failure point, outermost first.
type ParseError struct {
	Line  int
	Col   int
	Msg   string
	Trail []string
}

func (e *ParseError) Error() string {
	if len(e.Trail) == 0 {
		return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col+1, e.Msg)
	}
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s (in %s)",
		e.Line, e.Col+1, e.Msg, strings.Join(e.Trail, " > "))
}

// Incomplete reports whether the failure is an unclosed construct at the end
// of the input, meaning more input could still complete the parse. The REPL
// uses this to keep reading lines instead of reporting.
func (e *ParseError) Incomplete() bool {
	return strings.HasPrefix(e.Msg, "expected closing")
}

// WrapParseError returns err augmented with a caret-annotated snippet of src.
// Non-parse errors are returned unchanged.
func WrapParseError(err error, src string) error {
	pe, ok := err.(*ParseError)
	if !ok {
		return err
	}
	return fmt.Errorf("%s", caretSnippet(src, pe))
}

// caretSnippet builds the header plus up to one line of context either side,
// with a caret under the 1-based column. Coordinates are clamped to the
// source bounds so a stale position cannot break rendering.
func caretSnippet(src string, pe *ParseError) string {
	lines := strings.Split(src, "\n")
	line, col := pe.Line, pe.Col+1
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}
	lineTxt := lines[line-1]
	if col > len(lineTxt)+1 {
		col = len(lineTxt) + 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", pe.Error())
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
