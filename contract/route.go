package contract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/oacontract/ast"
	"github.com/erraggy/oacontract/compiler"
	"github.com/erraggy/oacontract/internal/issues"
	"github.com/erraggy/oacontract/internal/pathutil"
	"github.com/erraggy/oacontract/internal/severity"
	"github.com/erraggy/oacontract/operations"
	"github.com/erraggy/oacontract/parser"
)

// contractIdent is the local name initContract() is bound to.
const contractIdent = "c"

// noBody is c.noBody(), the ts-rest marker for an empty body.
func noBody() ast.Expr {
	return ast.Chain{Base: ast.Ident{Name: contractIdent}, Calls: []ast.Call{ast.NewCall("noBody")}}
}

// routeBuilder compiles one operation into a ts-rest route object.
type routeBuilder struct {
	c      *compiler.Compiler
	op     *operations.Operation
	issues []issues.Issue
}

func (b *routeBuilder) build() (ast.Expr, error) {
	op := b.op
	fields := []ast.Field{
		{Key: "method", Value: ast.String(strings.ToUpper(op.Method))},
		{Key: "path", Value: ast.String(pathutil.ToRoutePath(op.Path))},
	}
	if op.Summary != "" {
		fields = append(fields, ast.Field{Key: "summary", Value: ast.String(op.Summary)})
	}
	if op.Description != "" {
		fields = append(fields, ast.Field{Key: "description", Value: ast.String(op.Description)})
	}
	if op.Deprecated {
		fields = append(fields, ast.Field{Key: "deprecated", Value: ast.Literal{Value: true}})
	}

	for _, group := range []struct {
		key string
		in  string
	}{
		{"pathParams", parser.ParamInPath},
		{"query", parser.ParamInQuery},
		{"headers", parser.ParamInHeader},
	} {
		obj, err := b.parameters(group.in)
		if err != nil {
			return nil, err
		}
		if obj != nil {
			fields = append(fields, ast.Field{Key: group.key, Value: obj})
		}
	}
	for _, p := range op.ParametersIn(parser.ParamInCookie) {
		b.info(fmt.Sprintf("cookie parameter %q omitted from contract", p.Name), "parameters", p.Name)
	}

	body, err := b.body()
	if err != nil {
		return nil, err
	}
	if body != nil {
		fields = append(fields, ast.Field{Key: "body", Value: body})
	}

	responses, err := b.responses()
	if err != nil {
		return nil, err
	}
	fields = append(fields, ast.Field{Key: "responses", Value: responses})

	return ast.Object{Fields: fields}, nil
}

// parameters builds the z.object for the parameters in one location, or nil
// when there are none.
func (b *routeBuilder) parameters(in string) (ast.Expr, error) {
	params := b.op.ParametersIn(in)
	if len(params) == 0 {
		return nil, nil
	}
	fields := make([]ast.Field, 0, len(params))
	for _, p := range params {
		s := p.Schema
		if s == nil {
			_, s = parser.FirstSchema(p.Content)
		}
		expr, err := b.c.Compile(s, compiler.Options{Optional: !p.Required})
		if err != nil {
			return nil, b.wrap(err, "parameters", p.Name)
		}
		fields = append(fields, ast.Field{Key: p.Name, Value: expr})
	}
	return ast.Z("object", ast.Object{Fields: fields}), nil
}

func isMutation(method string) bool {
	switch method {
	case "post", "put", "patch":
		return true
	}
	return false
}

// body returns the body validator, or nil when the route has no body field.
// Mutations always carry one.
func (b *routeBuilder) body() (ast.Expr, error) {
	rb := b.op.RequestBody
	mutation := isMutation(b.op.Method)
	if rb == nil {
		if mutation {
			return noBody(), nil
		}
		return nil, nil
	}
	if !mutation && b.op.Method != "delete" {
		b.info(fmt.Sprintf("request body of %s operation omitted from contract", strings.ToUpper(b.op.Method)), "requestBody")
		return nil, nil
	}

	_, s := parser.FirstSchema(rb.Content)
	if s == nil {
		return noBody(), nil
	}
	expr, err := b.c.Compile(s, compiler.Options{Optional: !rb.Required})
	if err != nil {
		return nil, b.wrap(err, "requestBody")
	}
	return expr, nil
}

// responses builds the responses object keyed by status code. The default
// response has no status code to key it by and is left out.
func (b *routeBuilder) responses() (ast.Expr, error) {
	var fields []ast.Field
	for code, resp := range b.op.Responses.All() {
		if _, err := strconv.Atoi(code); err != nil {
			b.info("default response omitted from contract", "responses", code)
			continue
		}
		_, s := parser.FirstSchema(resp.Content)
		if s == nil {
			fields = append(fields, ast.Field{Key: code, Value: noBody()})
			continue
		}
		expr, err := b.c.Compile(s, compiler.Options{})
		if err != nil {
			return nil, b.wrap(err, "responses", code)
		}
		fields = append(fields, ast.Field{Key: code, Value: expr})
	}
	return ast.Object{Fields: fields}, nil
}

func (b *routeBuilder) wrap(err error, location ...string) error {
	return fmt.Errorf("%s %s: %s: %w",
		strings.ToUpper(b.op.Method), b.op.Path, strings.Join(location, "."), err)
}

func (b *routeBuilder) info(msg string, location ...string) {
	segments := append([]string{"paths", b.op.Path, b.op.Method}, location...)
	b.issues = append(b.issues, issues.Issue{
		Path:     issues.FormatPath(segments...),
		Message:  msg,
		Severity: severity.SeverityInfo,
		OperationContext: &issues.OperationContext{
			Method:      b.op.Method,
			Path:        b.op.Path,
			OperationID: b.op.OperationID,
		},
	})
}
