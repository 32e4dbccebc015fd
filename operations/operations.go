package operations

import (
	"fmt"

	"github.com/speakeasy-api/openapi/sequencedmap"

	"github.com/erraggy/oacontract/internal/httputil"
	"github.com/erraggy/oacontract/internal/naming"
	"github.com/erraggy/oacontract/oaserrors"
	"github.com/erraggy/oacontract/parser"
	"github.com/erraggy/oacontract/resolver"
)

// Operation is one method of one path with every reference around it
// resolved. Schemas inside parameters, bodies and responses are left as
// written; the compiler decides how to render their references.
type Operation struct {
	// Method is the lowercase HTTP method.
	Method string
	// Path is the path template, e.g. "/pets/{petId}".
	Path        string
	OperationID string
	Summary     string
	Description string
	Deprecated  bool
	Tags        []string
	// Parameters merges path-level and operation-level parameters. When both
	// declare the same (in, name) pair the operation's parameter replaces the
	// path item's in place.
	Parameters  []*parser.Parameter
	RequestBody *parser.RequestBody
	// Responses holds numeric and "default" responses in declaration order.
	Responses *sequencedmap.Map[string, *parser.Response]
}

// Key returns the name of the operation in the generated contract: the
// camel-cased operationId, or the method and path when there is none.
func (o *Operation) Key() string {
	if o.OperationID != "" {
		if key := naming.ToCamelCase(o.OperationID); key != "" {
			return key
		}
	}
	return naming.ToCamelCase(o.Method + " " + o.Path)
}

// ParametersIn returns the parameters with the given location.
func (o *Operation) ParametersIn(in string) []*parser.Parameter {
	var out []*parser.Parameter
	for _, p := range o.Parameters {
		if p.In == in {
			out = append(out, p)
		}
	}
	return out
}

// Extract lists the operations of the document behind res in path order,
// then path item order.
//
// Path items that are null or hold no operations are skipped, as are
// operations without responses. A path item key that is neither a fixed
// field, an extension nor an HTTP method fails with
// *oaserrors.OperationError of kind KindInvalidMethod; a response key that is
// neither a status code between 100 and 599, "default" nor an extension fails
// with kind KindInvalidStatusCode.
func Extract(res *resolver.Resolver, opts ...Option) ([]*Operation, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	doc := res.Document()
	if doc == nil {
		return nil, fmt.Errorf("operations: document is nil")
	}

	var ops []*Operation
	for path, item := range doc.Paths.All() {
		if item == nil {
			cfg.logger.Debug("skipping empty path", "path", path)
			continue
		}
		item, err = res.ResolvePathItem(item)
		if err != nil {
			return nil, fmt.Errorf("operations: %s: %w", path, err)
		}

		for method, op := range item.Operations.All() {
			if !httputil.IsMethod(method) {
				return nil, &oaserrors.OperationError{Kind: oaserrors.KindInvalidMethod, Path: path, Method: method}
			}
			if op == nil || op.Responses.Len() == 0 {
				cfg.logger.Debug("skipping operation without responses", "method", method, "path", path)
				continue
			}

			extracted, err := extract(res, cfg, path, method, item, op)
			if err != nil {
				return nil, err
			}
			ops = append(ops, extracted)
		}
	}

	cfg.logger.Debug("extracted operations", "count", len(ops))
	return ops, nil
}

func extract(res *resolver.Resolver, cfg *config, path, method string, item *parser.PathItem, op *parser.Operation) (*Operation, error) {
	out := &Operation{
		Method:      method,
		Path:        path,
		OperationID: op.OperationID,
		Summary:     op.Summary,
		Description: op.Description,
		Deprecated:  op.Deprecated,
		Tags:        op.Tags,
		Responses:   sequencedmap.New[string, *parser.Response](),
	}
	if out.Summary == "" {
		out.Summary = item.Summary
	}

	params, err := mergeParameters(res, item.Parameters, op.Parameters)
	if err != nil {
		return nil, fmt.Errorf("operations: %s %s: %w", method, path, err)
	}
	out.Parameters = params

	out.RequestBody, err = res.ResolveRequestBody(op.RequestBody)
	if err != nil {
		return nil, fmt.Errorf("operations: %s %s: requestBody: %w", method, path, err)
	}

	for code, resp := range op.Responses.All() {
		switch httputil.ClassifyStatusCode(code) {
		case httputil.StatusExtension:
			continue
		case httputil.StatusNumeric:
			if !httputil.IsStandardStatusCode(code) {
				cfg.logger.Warn("non-standard status code", "method", method, "path", path, "status", code)
			}
		case httputil.StatusDefault:
		default:
			return nil, &oaserrors.OperationError{
				Kind:       oaserrors.KindInvalidStatusCode,
				Path:       path,
				Method:     method,
				StatusCode: code,
			}
		}

		resolved, err := res.ResolveResponse(resp)
		if err != nil {
			return nil, fmt.Errorf("operations: %s %s: response %s: %w", method, path, code, err)
		}
		out.Responses.Set(code, resolved)
	}
	return out, nil
}

type paramKey struct {
	in, name string
}

// mergeParameters resolves both lists and merges them by (in, name).
func mergeParameters(res *resolver.Resolver, pathParams, opParams []*parser.Parameter) ([]*parser.Parameter, error) {
	merged := make([]*parser.Parameter, 0, len(pathParams)+len(opParams))
	index := make(map[paramKey]int, cap(merged))

	for _, list := range [][]*parser.Parameter{pathParams, opParams} {
		for _, p := range list {
			resolved, err := res.ResolveParameter(p)
			if err != nil {
				return nil, fmt.Errorf("parameter: %w", err)
			}
			if resolved == nil {
				continue
			}
			key := paramKey{in: resolved.In, name: resolved.Name}
			if i, ok := index[key]; ok {
				merged[i] = resolved
				continue
			}
			index[key] = len(merged)
			merged = append(merged, resolved)
		}
	}
	return merged, nil
}
