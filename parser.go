// parser.go: source text to Values
//
// The grammar is five productions deep and homoiconic: parsing produces the
// same Value type the evaluator walks, so code is immediately data.
//
//	expr   := number | symbol | string | sexpr | qexpr
//	number := [+-]? digits [ '.' digits? ]? [ eE [+-]? digits ]?  (or '.' digits)
//	symbol := 1+ of a-z A-Z 0-9 _ + \ : - * / = < > | ! & %
//	string := '"' any-byte-except-'"'* '"'          (no escape sequences)
//	sexpr  := '(' expr* ')'
//	qexpr  := '[' expr* ']'
//
// Alternation order matters: numbers are tried before symbols, so "-12" is a
// number while "-" alone is a symbol, and "1.5-2" reads as two numbers. The
// parser is a single pass over the bytes with explicit backtracking for the
// number/symbol overlap; there is no separate token stream.
//
// Parse consumes the entire input and wraps the top-level expressions in one
// synthetic S-expression, so a whole program is a single Value. Anything the
// grammar cannot claim is a *ParseError carrying the 1-based line, the
// column, and the constructs that were open at the failure point.
package bebop

import (
	"fmt"
	"strconv"
)

// Grammar labels, reported in ParseError trails.
const (
	labelNumber = "Number"
	labelSymbol = "Symbol"
	labelString = "String"
	labelSexpr  = "S-Expression"
	labelQexpr  = "Q-Expression"
)

const symbolPunct = `_+\:-*/=<>|!&%`

// Parse reads src to the end and returns the program as one S-expression
// holding every top-level expression in order. The empty (or all-whitespace)
// input parses to the empty S-expression.
func Parse(src string) (Value, *ParseError) {
	p := &parser{src: src, line: 1}
	var cells []Value
	for {
		p.skipSpace()
		if p.atEnd() {
			break
		}
		v, ok, err := p.parseExpr()
		if err != nil {
			return Value{}, err
		}
		if !ok {
			return Value{}, p.errHere(
				"unexpected character '%c', expected %s, %s, %s, %s or %s",
				p.peek(), labelNumber, labelSymbol, labelString, labelSexpr, labelQexpr)
		}
		cells = append(cells, v)
	}
	return Sexpr(cells...), nil
}

type parser struct {
	src  string
	pos  int
	line int // 1-based
	col  int // 0-based byte column
}

// position is a resumable point for backtracking.
type position struct {
	pos, line, col int
}

func (p *parser) mark() position     { return position{p.pos, p.line, p.col} }
func (p *parser) restore(m position) { p.pos, p.line, p.col = m.pos, m.line, m.col }
func (p *parser) atEnd() bool        { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.atEnd() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) next() byte {
	b := p.src[p.pos]
	p.pos++
	if b == '\n' {
		p.line++
		p.col = 0
	} else {
		p.col++
	}
	return b
}

func (p *parser) skipSpace() {
	for !p.atEnd() {
		switch p.peek() {
		case ' ', '\t', '\r', '\n':
			p.next()
		default:
			return
		}
	}
}

func (p *parser) errHere(format string, args ...any) *ParseError {
	return &ParseError{Line: p.line, Col: p.col, Msg: fmt.Sprintf(format, args...)}
}

// parseExpr tries each alternative in grammar order. The bool reports whether
// anything matched; a non-nil error is a committed failure (an opener was
// consumed but the construct never closed) and aborts the whole parse.
func (p *parser) parseExpr() (Value, bool, *ParseError) {
	p.skipSpace()
	if v, ok := p.parseNumber(); ok {
		return v, true, nil
	}
	if v, ok := p.parseSymbol(); ok {
		return v, true, nil
	}
	if v, ok, err := p.parseString(); ok || err != nil {
		return v, ok, err
	}
	if v, ok, err := p.parseSeq('(', ')', VTSexpr, labelSexpr); ok || err != nil {
		return v, ok, err
	}
	return p.parseSeq('[', ']', VTQexpr, labelQexpr)
}

// parseNumber scans an optional sign, a mantissa with at least one digit, and
// an optional exponent. A malformed exponent backtracks to just before the
// 'e' so "1e" reads as the number 1 followed by the symbol e; a sign with no
// digits backtracks entirely so "-" stays a symbol.
func (p *parser) parseNumber() (Value, bool) {
	start := p.mark()
	if b := p.peek(); b == '+' || b == '-' {
		p.next()
	}
	digits := p.scanDigits()
	if p.peek() == '.' {
		p.next()
		digits += p.scanDigits()
	}
	if digits == 0 {
		p.restore(start)
		return Value{}, false
	}
	if b := p.peek(); b == 'e' || b == 'E' {
		expStart := p.mark()
		p.next()
		if b := p.peek(); b == '+' || b == '-' {
			p.next()
		}
		if p.scanDigits() == 0 {
			p.restore(expStart)
		}
	}
	f, err := strconv.ParseFloat(p.src[start.pos:p.pos], 64)
	if err != nil {
		p.restore(start)
		return Value{}, false
	}
	return Num(f), true
}

func (p *parser) scanDigits() int {
	n := 0
	for !p.atEnd() && isDigit(p.peek()) {
		p.next()
		n++
	}
	return n
}

func (p *parser) parseSymbol() (Value, bool) {
	start := p.pos
	for !p.atEnd() && isSymbolChar(p.peek()) {
		p.next()
	}
	if p.pos == start {
		return Value{}, false
	}
	return Sym(p.src[start:p.pos]), true
}

// parseString commits once the opening quote is consumed; the only failure is
// running out of input before the closing quote. Strings have no escape
// sequences, so a backslash is an ordinary byte and a string can never
// contain '"'.
func (p *parser) parseString() (Value, bool, *ParseError) {
	if p.peek() != '"' {
		return Value{}, false, nil
	}
	p.next()
	start := p.pos
	for !p.atEnd() && p.peek() != '"' {
		p.next()
	}
	if p.atEnd() {
		err := p.errHere(`expected closing '"'`)
		err.Trail = []string{labelString}
		return Value{}, false, err
	}
	s := p.src[start:p.pos]
	p.next()
	return Str(s), true, nil
}

// parseSeq handles both list forms; they differ only in delimiters and tag.
// Committed once the opener is consumed.
func (p *parser) parseSeq(open, term byte, tag ValueTag, label string) (Value, bool, *ParseError) {
	if p.peek() != open {
		return Value{}, false, nil
	}
	p.next()
	cells := []Value{}
	for {
		p.skipSpace()
		if p.peek() == term {
			p.next()
			return Value{Tag: tag, Data: cells}, true, nil
		}
		if p.atEnd() {
			err := p.errHere("expected closing '%c'", term)
			err.Trail = []string{label}
			return Value{}, false, err
		}
		v, ok, err := p.parseExpr()
		if err != nil {
			err.Trail = append([]string{label}, err.Trail...)
			return Value{}, false, err
		}
		if !ok {
			err := p.errHere("unexpected character '%c', expected expression or '%c'", p.peek(), term)
			err.Trail = []string{label}
			return Value{}, false, err
		}
		cells = append(cells, v)
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSymbolChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', isDigit(b):
		return true
	}
	for i := 0; i < len(symbolPunct); i++ {
		if symbolPunct[i] == b {
			return true
		}
	}
	return false
}
