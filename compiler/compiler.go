package compiler

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/oacontract/ast"
	"github.com/erraggy/oacontract/exports"
	"github.com/erraggy/oacontract/internal/pathutil"
	"github.com/erraggy/oacontract/oaserrors"
	"github.com/erraggy/oacontract/parser"
	"github.com/erraggy/oacontract/resolver"
)

// Options controls how a single node is compiled.
type Options struct {
	// Optional appends .optional() to the outermost expression.
	// The zero value compiles the node as required.
	Optional bool
}

// Definition is a compiled export.
type Definition struct {
	Entry *exports.Entry
	Expr  ast.Expr
}

// Compiler turns schema nodes into validator expressions.
//
// References to entries of the export table compile to the entry's
// identifier; every other reference is resolved and compiled inline. A
// Compiler holds no mutable state and can be used from several goroutines.
type Compiler struct {
	res   *resolver.Resolver
	table *exports.Table
}

// New creates a Compiler. table may be nil, in which case every reference
// is inlined.
func New(res *resolver.Resolver, table *exports.Table) *Compiler {
	return &Compiler{res: res, table: table}
}

// Compile compiles s.
func (c *Compiler) Compile(s *parser.Schema, opts Options) (ast.Expr, error) {
	path := pathutil.Get()
	defer pathutil.Put(path)

	run := &compilation{c: c, path: path}
	expr, err := run.compile(s, opts)
	if err != nil {
		return nil, fmt.Errorf("compiler: %w", err)
	}
	return expr, nil
}

// CompileEntry compiles the body of an export table entry. The entry's own
// reference is never looked up, so the body is expanded rather than
// compiled to its identifier.
func (c *Compiler) CompileEntry(e *exports.Entry) (Definition, error) {
	path := pathutil.Get()
	defer pathutil.Put(path)

	run := &compilation{c: c, path: path, inlining: []string{e.Ref}}
	expr, err := run.compile(e.Schema, Options{})
	if err != nil {
		return Definition{}, fmt.Errorf("compiler: %s: %w", e.Ref, err)
	}
	return Definition{Entry: e, Expr: expr}, nil
}

// CompileExports compiles every table entry in table order. The first
// failure aborts compilation.
func (c *Compiler) CompileExports() ([]Definition, error) {
	defs := make([]Definition, 0, c.table.Len())
	for _, e := range c.table.Entries() {
		def, err := c.CompileEntry(e)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// compilation is the state of one top-level compile: the location being
// compiled and the references currently expanded inline.
type compilation struct {
	c        *Compiler
	path     *pathutil.PathBuilder
	inlining []string
}

func (r *compilation) wrap(err error) error {
	if r.path.Len() == 0 {
		return err
	}
	return fmt.Errorf("%s: %w", r.path, err)
}

func (r *compilation) compile(s *parser.Schema, opts Options) (ast.Expr, error) {
	switch sh := classify(s); sh {
	case shapeRef:
		return r.reference(s, opts)
	case shapeOneOf:
		return r.oneOf(s, opts)
	case shapeAllOf:
		return r.allOf(s, opts)
	case shapeAnyOf:
		return r.anyOf(s, opts)
	case shapeEnum:
		return enum(s, opts), nil
	case shapeMultiType:
		return r.multiType(s, opts)
	case shapeFile:
		return ast.Chained(ast.Z("instanceof", ast.Ident{Name: ast.FileIdent}), Modifiers(s, opts)...), nil
	case shapeString, shapeNumber, shapeBoolean, shapeNull:
		return ast.Chained(ast.Z(sh.String()), Constraints(s, opts)...), nil
	case shapeInteger:
		return ast.Chained(ast.Z("number"), Constraints(s, opts)...), nil
	case shapeArray:
		return r.array(s, opts)
	case shapeObject:
		return r.object(s, opts)
	case shapeUnknown:
		return ast.Chained(ast.Z("unknown"), Modifiers(s, opts)...), nil
	default:
		return nil, &oaserrors.UnsupportedSchemaError{
			Location: r.path.String(),
			Type:     strings.Join(s.Type, ","),
			Schema:   s,
		}
	}
}

// reference compiles a $ref: exported targets become their identifier,
// anything else is resolved and compiled in place.
func (r *compilation) reference(s *parser.Schema, opts Options) (ast.Expr, error) {
	if e, ok := r.c.table.Lookup(s.Ref); ok && !slices.Contains(r.inlining, s.Ref) {
		return ast.Chained(ast.Ident{Name: e.Identifier}, Modifiers(nil, opts)...), nil
	}

	if slices.Contains(r.inlining, s.Ref) {
		cycle := append(slices.Clone(r.inlining), s.Ref)
		return nil, r.wrap(&oaserrors.CircularDependencyError{Path: cycle})
	}

	resolved, err := r.c.res.ResolveSchema(s)
	if err != nil {
		return nil, r.wrap(err)
	}

	r.inlining = append(r.inlining, s.Ref)
	defer func() { r.inlining = r.inlining[:len(r.inlining)-1] }()
	return r.compile(resolved, opts)
}

// members compiles each schema of a composite keyword as required.
func (r *compilation) members(keyword string, schemas []*parser.Schema) ([]ast.Expr, error) {
	out := make([]ast.Expr, 0, len(schemas))
	for i, m := range schemas {
		r.path.Push(keyword)
		r.path.PushIndex(i)
		expr, err := r.compile(m, Options{})
		r.path.Pop()
		r.path.Pop()
		if err != nil {
			return nil, err
		}
		out = append(out, expr)
	}
	return out, nil
}

// single compiles the only member of a composite with the caller's options.
func (r *compilation) single(keyword string, m *parser.Schema, opts Options) (ast.Expr, error) {
	r.path.Push(keyword)
	r.path.PushIndex(0)
	defer func() {
		r.path.Pop()
		r.path.Pop()
	}()
	return r.compile(m, opts)
}

func (r *compilation) oneOf(s *parser.Schema, opts Options) (ast.Expr, error) {
	if len(s.OneOf) == 1 {
		return r.single("oneOf", s.OneOf[0], opts)
	}
	arms, err := r.members("oneOf", s.OneOf)
	if err != nil {
		return nil, err
	}
	return ast.Chained(ast.Z("union", ast.Array{Elems: arms}), Modifiers(s, opts)...), nil
}

func (r *compilation) allOf(s *parser.Schema, opts Options) (ast.Expr, error) {
	if len(s.AllOf) == 1 {
		return r.single("allOf", s.AllOf[0], opts)
	}
	parts, err := r.members("allOf", s.AllOf)
	if err != nil {
		return nil, err
	}
	calls := make([]ast.Call, 0, len(parts)-1)
	for _, p := range parts[1:] {
		calls = append(calls, ast.NewCall("and", p))
	}
	calls = append(calls, Modifiers(s, opts)...)
	return ast.Chained(parts[0], calls...), nil
}

func (r *compilation) anyOf(s *parser.Schema, opts Options) (ast.Expr, error) {
	if len(s.AnyOf) == 1 {
		return r.single("anyOf", s.AnyOf[0], opts)
	}
	if len(s.AnyOf) > maxAnyOfMembers {
		return nil, &oaserrors.UnsupportedSchemaError{
			Location: r.path.String(),
			Type:     fmt.Sprintf("anyOf with %d members", len(s.AnyOf)),
			Schema:   s,
		}
	}
	parts, err := r.members("anyOf", s.AnyOf)
	if err != nil {
		return nil, err
	}

	subsets := powerset(parts)
	arms := make([]ast.Expr, 0, len(subsets))
	for _, set := range subsets {
		merges := make([]ast.Call, 0, len(set)-1)
		for _, p := range set[1:] {
			merges = append(merges, ast.NewCall("merge", p))
		}
		arms = append(arms, ast.Chained(set[0], merges...))
	}
	return ast.Chained(ast.Z("union", ast.Array{Elems: arms}), Modifiers(s, opts)...), nil
}

// enum compiles an enum keyword. String enums use z.literal and z.enum;
// other enums are unions of literals, and collapse to z.never() when a
// member is a string. An empty enum admits nothing.
func enum(s *parser.Schema, opts Options) ast.Expr {
	mods := Modifiers(s, opts)
	if len(s.Enum) == 0 {
		return ast.Chained(ast.Z("never"), mods...)
	}

	if len(s.Type) == 1 && s.HasType("string") {
		if len(s.Enum) == 1 {
			return ast.Chained(ast.Z("literal", ast.String(enumString(s.Enum[0]))), mods...)
		}
		values := make([]ast.Expr, 0, len(s.Enum))
		for _, v := range s.Enum {
			values = append(values, ast.String(enumString(v)))
		}
		return ast.Chained(ast.Z("enum", ast.Array{Elems: values}), mods...)
	}

	for _, v := range s.Enum {
		if _, ok := v.(string); ok {
			return ast.Chained(ast.Z("never"), mods...)
		}
	}
	if len(s.Enum) == 1 {
		return ast.Chained(ast.Z("literal", ast.Literal{Value: s.Enum[0]}), mods...)
	}
	literals := make([]ast.Expr, 0, len(s.Enum))
	for _, v := range s.Enum {
		literals = append(literals, ast.Z("literal", ast.Literal{Value: v}))
	}
	return ast.Chained(ast.Z("union", ast.Array{Elems: literals}), mods...)
}

// enumString renders a string-enum member; null becomes "null".
func enumString(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// multiType compiles a node with several declared types as a union of the
// node compiled once per type. The arms do not repeat the node's modifiers.
func (r *compilation) multiType(s *parser.Schema, opts Options) (ast.Expr, error) {
	arms := make([]ast.Expr, 0, len(s.Type))
	for i, t := range s.Type {
		arm := *s
		arm.Type = []string{t}
		arm.Nullable = false
		arm.HasDefault = false
		arm.Default = nil

		r.path.Push("type")
		r.path.PushIndex(i)
		expr, err := r.compile(&arm, Options{})
		r.path.Pop()
		r.path.Pop()
		if err != nil {
			return nil, err
		}
		arms = append(arms, expr)
	}
	return ast.Chained(ast.Z("union", ast.Array{Elems: arms}), Modifiers(s, opts)...), nil
}

func (r *compilation) array(s *parser.Schema, opts Options) (ast.Expr, error) {
	item := ast.Expr(ast.Z("any"))
	if s.Items != nil {
		r.path.Push("items")
		expr, err := r.compile(s.Items, Options{})
		r.path.Pop()
		if err != nil {
			return nil, err
		}
		item = expr
	}
	return ast.Chained(ast.Z("array", item), Constraints(s, opts)...), nil
}

// object compiles object-like nodes. Without declared properties an open
// additionalProperties makes a record; otherwise the properties become an
// object literal and additionalProperties picks strict or passthrough.
func (r *compilation) object(s *parser.Schema, opts Options) (ast.Expr, error) {
	ap := s.AdditionalProperties

	if !s.HasProperties() && ap != nil && ap.Allowed {
		value := ast.Expr(ast.Z("any"))
		if ap.Schema != nil {
			r.path.Push("additionalProperties")
			expr, err := r.compile(ap.Schema, Options{})
			r.path.Pop()
			if err != nil {
				return nil, err
			}
			value = expr
		}
		return ast.Chained(ast.Z("record", value), Constraints(s, opts)...), nil
	}

	fields := make([]ast.Field, 0, s.Properties.Len())
	for name, prop := range s.Properties.All() {
		r.path.Push("properties")
		r.path.Push(name)
		expr, err := r.compile(prop, Options{Optional: !s.IsRequired(name)})
		r.path.Pop()
		r.path.Pop()
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.Field{Key: name, Value: expr})
	}

	var calls []ast.Call
	switch {
	case ap == nil:
	case !ap.Allowed:
		calls = append(calls, ast.NewCall("strict"))
	case ap.Schema != nil:
		r.path.Push("additionalProperties")
		expr, err := r.compile(ap.Schema, Options{})
		r.path.Pop()
		if err != nil {
			return nil, err
		}
		calls = append(calls, ast.NewCall("catchall", expr))
	default:
		calls = append(calls, ast.NewCall("passthrough"))
	}
	calls = append(calls, Constraints(s, opts)...)
	return ast.Chained(ast.Z("object", ast.Object{Fields: fields}), calls...), nil
}
