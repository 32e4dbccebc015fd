package compiler

import (
	"github.com/erraggy/oacontract/ast"
	"github.com/erraggy/oacontract/parser"
)

// Constraints returns the calls that refine the base validator of s, in
// order: type-specific bounds and formats, then the modifiers returned by
// Modifiers. Type-specific calls are only produced for a node with exactly one
// declared type, since they are methods of that type's validator.
func Constraints(s *parser.Schema, opts Options) []ast.Call {
	var calls []ast.Call
	if s != nil && len(s.Type) == 1 {
		switch s.Type[0] {
		case "string":
			calls = stringConstraints(s, calls)
		case "number", "integer":
			calls = numberConstraints(s, calls)
		case "array":
			calls = arrayConstraints(s, calls)
		}
	}
	return append(calls, Modifiers(s, opts)...)
}

// Modifiers returns the calls every validator accepts: nullable, default
// and optional, in that order.
func Modifiers(s *parser.Schema, opts Options) []ast.Call {
	var calls []ast.Call
	if s != nil && s.Nullable {
		calls = append(calls, ast.NewCall("nullable"))
	}
	if s != nil && s.HasDefault {
		calls = append(calls, ast.NewCall("default", ast.Literal{Value: s.Default}))
	}
	if opts.Optional {
		calls = append(calls, ast.NewCall("optional"))
	}
	return calls
}

func stringConstraints(s *parser.Schema, calls []ast.Call) []ast.Call {
	if s.MinLength != nil {
		calls = append(calls, ast.NewCall("min", ast.Int(*s.MinLength)))
	}
	if s.MaxLength != nil {
		calls = append(calls, ast.NewCall("max", ast.Int(*s.MaxLength)))
	}
	if s.Pattern != "" {
		calls = append(calls, ast.NewCall("regex", ast.RegExp{Pattern: s.Pattern}))
	}
	if c, ok := formatCall(s.Format); ok {
		calls = append(calls, c)
	}
	return calls
}

func formatCall(format string) (ast.Call, bool) {
	switch format {
	case "email":
		return ast.NewCall("email"), true
	case "uri", "url":
		return ast.NewCall("url"), true
	case "uuid":
		return ast.NewCall("uuid"), true
	case "date-time":
		return ast.NewCall("datetime", option("offset", ast.Literal{Value: true})), true
	case "date":
		return ast.NewCall("date"), true
	case "time":
		return ast.NewCall("time"), true
	case "ipv4":
		return ast.NewCall("ip", option("version", ast.String("v4"))), true
	case "ipv6":
		return ast.NewCall("ip", option("version", ast.String("v6"))), true
	}
	return ast.Call{}, false
}

// option builds a single-field options object such as { offset: true }.
func option(key string, value ast.Expr) ast.Object {
	return ast.Object{Fields: []ast.Field{{Key: key, Value: value}}}
}

func numberConstraints(s *parser.Schema, calls []ast.Call) []ast.Call {
	if s.HasType("integer") {
		calls = append(calls, ast.NewCall("int"))
	}
	if s.Minimum != nil {
		name := "min"
		if s.ExclusiveMinimum {
			name = "gt"
		}
		calls = append(calls, ast.NewCall(name, ast.Number(*s.Minimum)))
	}
	if s.ExclusiveMinimumValue != nil {
		calls = append(calls, ast.NewCall("gt", ast.Number(*s.ExclusiveMinimumValue)))
	}
	if s.Maximum != nil {
		name := "max"
		if s.ExclusiveMaximum {
			name = "lt"
		}
		calls = append(calls, ast.NewCall(name, ast.Number(*s.Maximum)))
	}
	if s.ExclusiveMaximumValue != nil {
		calls = append(calls, ast.NewCall("lt", ast.Number(*s.ExclusiveMaximumValue)))
	}
	if s.MultipleOf != nil {
		calls = append(calls, ast.NewCall("multipleOf", ast.Number(*s.MultipleOf)))
	}
	return calls
}

func arrayConstraints(s *parser.Schema, calls []ast.Call) []ast.Call {
	if s.MinItems != nil {
		calls = append(calls, ast.NewCall("min", ast.Int(*s.MinItems)))
	}
	if s.MaxItems != nil {
		calls = append(calls, ast.NewCall("max", ast.Int(*s.MaxItems)))
	}
	return calls
}
