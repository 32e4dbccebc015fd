package ast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var identRegex = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// IsIdentifier reports whether s can be used as a bare object key.
func IsIdentifier(s string) bool {
	return identRegex.MatchString(s)
}

// reservedWords cannot be used as binding names in a TypeScript module.
var reservedWords = map[string]bool{
	"await": true, "break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "enum": true, "export": true,
	"extends": true, "false": true, "finally": true, "for": true,
	"function": true, "if": true, "implements": true, "import": true,
	"in": true, "instanceof": true, "interface": true, "let": true,
	"new": true, "null": true, "package": true, "private": true,
	"protected": true, "public": true, "return": true, "static": true,
	"super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true,
	"with": true, "yield": true, "arguments": true, "eval": true,
	"undefined": true, "NaN": true, "Infinity": true,
}

// IsReservedWord reports whether s is a keyword or a name that cannot be
// bound by a const declaration in strict mode.
func IsReservedWord(s string) bool {
	return reservedWords[s]
}

// Print renders e as TypeScript source.
func Print(e Expr) string {
	var b strings.Builder
	p := printer{w: &b}
	p.expr(e)
	return b.String()
}

// Fprint writes e to w as TypeScript source.
func Fprint(w io.Writer, e Expr) error {
	_, err := io.WriteString(w, Print(e))
	return err
}

type printer struct {
	w     *strings.Builder
	depth int
}

func (p *printer) indent() {
	for range p.depth {
		p.w.WriteString("  ")
	}
}

func (p *printer) expr(e Expr) {
	switch e := e.(type) {
	case Ident:
		p.w.WriteString(e.Name)
	case Literal:
		p.w.WriteString(literal(e.Value))
	case RegExp:
		p.w.WriteString(regexpLiteral(e.Pattern))
	case Array:
		p.w.WriteByte('[')
		for i, el := range e.Elems {
			if i > 0 {
				p.w.WriteString(", ")
			}
			p.expr(el)
		}
		p.w.WriteByte(']')
	case Object:
		p.object(e)
	case Chain:
		p.expr(e.Base)
		for _, c := range e.Calls {
			p.w.WriteByte('.')
			p.w.WriteString(c.Name)
			p.w.WriteByte('(')
			for i, arg := range c.Args {
				if i > 0 {
					p.w.WriteString(", ")
				}
				p.expr(arg)
			}
			p.w.WriteByte(')')
		}
	case nil:
		p.w.WriteString("undefined")
	default:
		panic(fmt.Sprintf("ast: unexpected expression %T", e))
	}
}

func (p *printer) object(o Object) {
	if len(o.Fields) == 0 {
		p.w.WriteString("{}")
		return
	}
	if len(o.Fields) == 1 {
		if _, ok := o.Fields[0].Value.(Literal); ok {
			p.w.WriteString("{ ")
			p.w.WriteString(Key(o.Fields[0].Key))
			p.w.WriteString(": ")
			p.expr(o.Fields[0].Value)
			p.w.WriteString(" }")
			return
		}
	}
	p.w.WriteString("{\n")
	p.depth++
	for _, f := range o.Fields {
		p.indent()
		p.w.WriteString(Key(f.Key))
		p.w.WriteString(": ")
		p.expr(f.Value)
		p.w.WriteString(",\n")
	}
	p.depth--
	p.indent()
	p.w.WriteByte('}')
}

// Key renders an object key, quoting it unless it is a plain identifier.
func Key(k string) string {
	if IsIdentifier(k) {
		return k
	}
	return literal(k)
}

func literal(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return strconv.Quote(fmt.Sprint(v))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// regexpLiteral wraps pattern in slashes, escaping unescaped slashes and
// line terminators that would end the literal early.
func regexpLiteral(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern) + 2)
	b.WriteByte('/')
	escaped := false
	for _, r := range pattern {
		switch {
		case escaped:
			escaped = false
			b.WriteRune(r)
		case r == '\\':
			escaped = true
			b.WriteRune(r)
		case r == '/':
			b.WriteString(`\/`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('/')
	return b.String()
}
