// Package markdown turns Markdown documents into bebop source.
//
// ToLisp maps every construct onto a call of the prelude's html helpers:
// headings become (hN ...), paragraphs (p ...), list items (li ...), and so
// on, with plain text as string literals. Segments delimited by '|' pass
// through verbatim as embedded bebop code, and a leading YAML frontmatter
// block becomes (def ...) forms, so a whole document evaluates to a single
// HTML string once a root concat is applied.
//
// ToHTML renders the same layout straight to HTML for previewing, with the
// embedded code shown in <pre> blocks instead of evaluated.
package markdown

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// segment is one alternating stretch of a document: markdown prose or
// embedded bebop source.
type segment struct {
	lisp bool
	text string
}

// ToLisp transpiles a document to bebop source. The output needs a leading
// concat applied by the caller to evaluate as one program.
func ToLisp(src string) (string, error) {
	meta, body, err := frontmatterDefs(src)
	if err != nil {
		return "", err
	}
	segs, err := splitSegments(body)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(meta)
	for _, seg := range segs {
		if seg.lisp {
			b.WriteString(seg.text)
			b.WriteString(" ")
			continue
		}
		source := []byte(seg.text)
		writeBlocks(&b, parseMarkdown(source), source)
	}
	return b.String(), nil
}

// ToHTML renders a document to plain HTML. Frontmatter is dropped and
// embedded bebop source is wrapped in <pre> instead of evaluated.
func ToHTML(src string) (string, error) {
	_, body := splitFrontmatter(src)
	segs, err := splitSegments(body)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, seg := range segs {
		if seg.lisp {
			fmt.Fprintf(&b, "<pre>%s</pre>", seg.text)
			continue
		}
		var out bytes.Buffer
		if err := goldmark.New().Convert([]byte(seg.text), &out); err != nil {
			return "", err
		}
		b.Write(out.Bytes())
	}
	return b.String(), nil
}

// splitFrontmatter peels a leading "---" block off the document. No block
// means empty metadata and the whole document back.
func splitFrontmatter(src string) (meta, body string) {
	if !strings.HasPrefix(src, "---\n") {
		return "", src
	}
	rest := src[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return "", src
	}
	meta = rest[:end]
	body = rest[end+len("\n---"):]
	body = strings.TrimPrefix(body, "\n")
	return meta, body
}

// frontmatterDefs renders the YAML frontmatter as (def ...) forms, one per
// key in sorted order, so documents can parameterize their own templates.
func frontmatterDefs(src string) (defs string, body string, err error) {
	meta, body := splitFrontmatter(src)
	if meta == "" {
		return "", body, nil
	}
	fields := map[string]any{}
	if err := yaml.Unmarshal([]byte(meta), &fields); err != nil {
		return "", "", fmt.Errorf("frontmatter: %w", err)
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "(def [%s] %s)\n", k, yamlScalar(fields[k]))
	}
	return b.String(), body, nil
}

// yamlScalar renders a frontmatter value as a bebop literal: numbers bare,
// booleans as 1/0, everything else as a sanitized string.
func yamlScalar(v any) string {
	switch x := v.(type) {
	case bool:
		if x {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return quote(x)
	default:
		return quote(fmt.Sprintf("%v", x))
	}
}

// splitSegments alternates markdown and embedded code on '|' boundaries. An
// odd number of delimiters leaves an unterminated code segment, which is an
// error rather than a guess.
func splitSegments(body string) ([]segment, error) {
	parts := strings.Split(body, "|")
	if len(parts)%2 == 0 {
		return nil, fmt.Errorf("unterminated '|' code segment")
	}
	segs := make([]segment, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			continue
		}
		segs = append(segs, segment{lisp: i%2 == 1, text: part})
	}
	return segs, nil
}

func parseMarkdown(src []byte) ast.Node {
	return goldmark.New().Parser().Parse(text.NewReader(src))
}

// writeBlocks emits one call expression per block, mirroring the prelude's
// helper names.
func writeBlocks(b *strings.Builder, doc ast.Node, source []byte) {
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		writeBlock(b, n, source)
	}
}

func writeBlock(b *strings.Builder, n ast.Node, source []byte) {
	switch n := n.(type) {
	case *ast.Heading:
		fmt.Fprintf(b, "(h%d (concat %s))\n", n.Level, inlines(n, source))
	case *ast.Paragraph, *ast.TextBlock:
		fmt.Fprintf(b, "(p (concat %s))\n", inlines(n, source))
	case *ast.List:
		writeList(b, n, source)
	case *ast.FencedCodeBlock:
		fmt.Fprintf(b, "(pre (code %s))\n", quote(blockLines(n, source)))
	case *ast.CodeBlock:
		fmt.Fprintf(b, "(pre (code %s))\n", quote(blockLines(n, source)))
	case *ast.ThematicBreak:
		b.WriteString("hr\n")
	case *ast.HTMLBlock:
		fmt.Fprintf(b, "(p (concat %s))\n", quote(blockLines(n, source)))
	case *ast.Blockquote:
		writeBlocks(b, n, source)
	}
}

func writeList(b *strings.Builder, list *ast.List, source []byte) {
	tag, indent := "ul", ""
	if list.IsOrdered() {
		tag, indent = "ol", "\t"
	}
	var items strings.Builder
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		var content strings.Builder
		for c := li.FirstChild(); c != nil; c = c.NextSibling() {
			if content.Len() > 0 {
				content.WriteByte(' ')
			}
			switch c.(type) {
			case *ast.TextBlock, *ast.Paragraph:
				content.WriteString(inlines(c, source))
			default:
				writeBlock(&content, c, source)
			}
		}
		fmt.Fprintf(&items, "%s(li (concat %s))\n", indent, content.String())
	}
	fmt.Fprintf(b, "(%s\n(concat %s))\n", tag, items.String())
}

// inlines renders a block's inline children as bebop operands, each followed
// by a space. Soft line breaks keep a space inside the preceding string so
// concatenation does not glue words together.
func inlines(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		writeInline(&b, c, source)
	}
	out := strings.TrimRight(b.String(), " ")
	if out == "" {
		return `""`
	}
	return out
}

func writeInline(b *strings.Builder, n ast.Node, source []byte) {
	switch n := n.(type) {
	case *ast.Text:
		txt := string(n.Segment.Value(source))
		if n.SoftLineBreak() || n.HardLineBreak() {
			txt += " "
		}
		fmt.Fprintf(b, "%s ", quote(txt))
	case *ast.String:
		fmt.Fprintf(b, "%s ", quote(string(n.Value)))
	case *ast.Emphasis:
		if n.Level >= 2 {
			fmt.Fprintf(b, "(b %s) ", quote(plainText(n, source)))
		} else {
			fmt.Fprintf(b, "(i %s) ", quote(plainText(n, source)))
		}
	case *ast.CodeSpan:
		fmt.Fprintf(b, "(code %s) ", quote(plainText(n, source)))
	case *ast.Image:
		fmt.Fprintf(b, "(img %s %s) ", quote(string(n.Destination)), quote(plainText(n, source)))
	case *ast.Link:
		fmt.Fprintf(b, "(a %s %s) ", quote(string(n.Destination)), quote(plainText(n, source)))
	case *ast.AutoLink:
		url := string(n.URL(source))
		fmt.Fprintf(b, "(a %s %s) ", quote(url), quote(url))
	case *ast.RawHTML:
		fmt.Fprintf(b, "%s ", quote(segmentsText(n.Segments, source)))
	default:
		if n.HasChildren() {
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				writeInline(b, c, source)
			}
		}
	}
}

// plainText flattens a node's inline tree to bare text.
func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(source))
		case *ast.String:
			b.Write(c.Value)
		default:
			b.WriteString(plainText(c, source))
		}
	}
	return b.String()
}

func blockLines(n ast.Node, source []byte) string {
	return strings.TrimRight(segmentsText(n.Lines(), source), "\n")
}

func segmentsText(lines *text.Segments, source []byte) string {
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}

// quote wraps s in string-literal quotes. The grammar has no escapes, so
// embedded double quotes become apostrophes rather than malformed source.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `'`) + `"`
}
