package bebop

import (
	"sort"
	"strconv"
	"strings"
)

// FormatValue renders v the way the REPL shows results. Strings render as
// their bare text, so string-bearing values do not survive a print/reparse
// round trip; every other variant does.
func FormatValue(v Value) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v Value) {
	switch v.Tag {
	case VTSym, VTStr, VTBuiltin:
		b.WriteString(v.Data.(string))
	case VTNum:
		b.WriteString(formatNum(v.Data.(float64)))
	case VTSexpr:
		writeSeq(b, v.Data.([]Value), '(', ')')
	case VTQexpr:
		writeSeq(b, v.Data.([]Value), '[', ']')
	case VTLambda:
		l := v.Data.(*Lambda)
		b.WriteString("(\\ [")
		b.WriteString(strings.Join(l.Params, " "))
		b.WriteString("] ")
		writeSeq(b, l.Body, '[', ']')
		b.WriteByte(')')
	}
}

func writeSeq(b *strings.Builder, cells []Value, open, term byte) {
	b.WriteByte(open)
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeValue(b, c)
	}
	b.WriteByte(term)
}

// formatNum avoids exponent notation so integral doubles read as integers:
// 6 prints as "6", not "6e+00" or "6.000000".
func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatFrame renders a frame as a sorted multi-line listing. The `env`
// introspection input uses it to dump the innermost scope.
func FormatFrame(f Frame) string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("{\n")
	for _, name := range names {
		b.WriteString("  ")
		b.WriteString(name)
		b.WriteString(": ")
		writeValue(&b, f[name])
		b.WriteByte('\n')
	}
	b.WriteByte('}')
	return b.String()
}
