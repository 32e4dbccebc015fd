package ast

// Expr is a node of a validator expression tree.
// The concrete types are Ident, Literal, RegExp, Array, Object and Chain.
type Expr interface {
	expr()
}

// Ident is a bare identifier such as "z" or an exported schema name.
type Ident struct {
	Name string
}

// Literal is a JSON-compatible constant: string, number, bool, nil, or
// slices and maps of those.
type Literal struct {
	Value any
}

// RegExp is a regular expression literal. Pattern is the source text
// without the surrounding slashes.
type RegExp struct {
	Pattern string
}

// Array is an array literal.
type Array struct {
	Elems []Expr
}

// Field is one key of an Object literal.
type Field struct {
	Key   string
	Value Expr
}

// Object is an object literal with fields in declaration order.
type Object struct {
	Fields []Field
}

// Call is a method call in a Chain.
type Call struct {
	Name string
	Args []Expr
}

// Chain applies Calls to Base left to right: Base.c1(...).c2(...).
type Chain struct {
	Base  Expr
	Calls []Call
}

func (Ident) expr()   {}
func (Literal) expr() {}
func (RegExp) expr()  {}
func (Array) expr()   {}
func (Object) expr()  {}
func (Chain) expr()   {}

// ZodIdent is the identifier every validator constructor is called on.
const ZodIdent = "z"

// FileIdent is the global constructor binary payloads are checked against.
const FileIdent = "File"

// NewCall builds a Call.
func NewCall(name string, args ...Expr) Call {
	return Call{Name: name, Args: args}
}

// Z builds the constructor call z.<name>(args...).
func Z(name string, args ...Expr) Chain {
	return Chain{Base: Ident{Name: ZodIdent}, Calls: []Call{NewCall(name, args...)}}
}

// Chained appends calls to base. A Chain base is extended rather than nested,
// so Chained(Z("string"), min) is z.string().min(...) with one Calls slice.
// The base is never modified.
func Chained(base Expr, calls ...Call) Expr {
	if len(calls) == 0 {
		return base
	}
	if c, ok := base.(Chain); ok {
		merged := make([]Call, 0, len(c.Calls)+len(calls))
		merged = append(merged, c.Calls...)
		merged = append(merged, calls...)
		return Chain{Base: c.Base, Calls: merged}
	}
	return Chain{Base: base, Calls: calls}
}

// String is shorthand for a string Literal.
func String(s string) Literal {
	return Literal{Value: s}
}

// Number is shorthand for a numeric Literal.
func Number(f float64) Literal {
	return Literal{Value: f}
}

// Int is shorthand for an integer Literal.
func Int(i int) Literal {
	return Literal{Value: i}
}
