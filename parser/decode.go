package parser

import (
	"fmt"
	"strings"

	"github.com/speakeasy-api/openapi/sequencedmap"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oacontract/oaserrors"
)

// decoder turns a yaml.Node tree into a Document. Working on nodes instead of
// map[string]any keeps the declaration order of every mapping.
type decoder struct {
	source string
}

// errorf reports a structural problem at the position of n.
func (d *decoder) errorf(n *yaml.Node, format string, args ...any) error {
	pe := &oaserrors.ParseError{
		Path:    d.source,
		Message: fmt.Sprintf(format, args...),
	}
	if n != nil {
		pe.Line = n.Line
		pe.Column = n.Column
	}
	return pe
}

// resolveAlias follows YAML aliases to the anchored node.
func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

func isExtensionKey(key string) bool {
	return strings.HasPrefix(key, "x-")
}

// eachPair calls fn for every key/value pair of a mapping node, in order.
func (d *decoder) eachPair(n *yaml.Node, what string, fn func(key string, value *yaml.Node) error) error {
	n = resolveAlias(n)
	if isNull(n) {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return d.errorf(n, "%s must be an object", what)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode := resolveAlias(n.Content[i])
		if keyNode.Kind != yaml.ScalarNode {
			return d.errorf(keyNode, "%s has a non-scalar key", what)
		}
		if err := fn(keyNode.Value, resolveAlias(n.Content[i+1])); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) str(n *yaml.Node, what string) (string, error) {
	if isNull(n) {
		return "", nil
	}
	if n.Kind != yaml.ScalarNode {
		return "", d.errorf(n, "%s must be a string", what)
	}
	return n.Value, nil
}

func (d *decoder) boolean(n *yaml.Node, what string) (bool, error) {
	var b bool
	if err := n.Decode(&b); err != nil {
		return false, d.errorf(n, "%s must be a boolean", what)
	}
	return b, nil
}

func (d *decoder) intPtr(n *yaml.Node, what string) (*int, error) {
	var v int
	if err := n.Decode(&v); err != nil {
		return nil, d.errorf(n, "%s must be an integer", what)
	}
	return &v, nil
}

func (d *decoder) floatPtr(n *yaml.Node, what string) (*float64, error) {
	var v float64
	if err := n.Decode(&v); err != nil {
		return nil, d.errorf(n, "%s must be a number", what)
	}
	return &v, nil
}

func (d *decoder) value(n *yaml.Node) (any, error) {
	if isNull(n) {
		return nil, nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, d.errorf(n, "invalid value: %v", err)
	}
	return v, nil
}

func (d *decoder) strings(n *yaml.Node, what string) ([]string, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, d.errorf(n, "%s must be an array of strings", what)
	}
	out := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		s, err := d.str(resolveAlias(item), what)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (d *decoder) extension(ext map[string]any, key string, n *yaml.Node) (map[string]any, error) {
	v, err := d.value(n)
	if err != nil {
		return ext, err
	}
	if ext == nil {
		ext = make(map[string]any)
	}
	ext[key] = v
	return ext, nil
}

// orderedMap decodes a mapping into a sequenced map using decode for each value.
// A repeated key keeps its first position and its last value.
func orderedMap[V any](d *decoder, n *yaml.Node, what string, decode func(*yaml.Node) (V, error)) (*sequencedmap.Map[string, V], error) {
	m := sequencedmap.New[string, V]()
	err := d.eachPair(n, what, func(key string, value *yaml.Node) error {
		v, err := decode(value)
		if err != nil {
			return err
		}
		if m.Has(key) {
			m.Delete(key)
		}
		m.Set(key, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (d *decoder) document(root *yaml.Node) (*Document, error) {
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, d.errorf(root, "document is empty")
		}
		root = root.Content[0]
	}
	root = resolveAlias(root)
	if root.Kind != yaml.MappingNode {
		return nil, d.errorf(root, "document root must be an object")
	}

	doc := &Document{
		Paths:      sequencedmap.New[string, *PathItem](),
		Components: NewComponents(),
	}
	err := d.eachPair(root, "document", func(key string, value *yaml.Node) error {
		var err error
		switch key {
		case "openapi":
			doc.OpenAPI, err = d.str(value, "openapi")
		case "info":
			doc.Info, err = d.info(value)
		case "paths":
			doc.Paths, err = orderedMap(d, value, "paths", d.pathItem)
		case "components":
			doc.Components, err = d.components(value)
		default:
			if isExtensionKey(key) {
				doc.Extensions, err = d.extension(doc.Extensions, key, value)
			}
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *decoder) info(n *yaml.Node) (*Info, error) {
	info := &Info{}
	err := d.eachPair(n, "info", func(key string, value *yaml.Node) error {
		var err error
		switch key {
		case "title":
			info.Title, err = d.str(value, "info.title")
		case "description":
			info.Description, err = d.str(value, "info.description")
		case "version":
			info.Version, err = d.str(value, "info.version")
		}
		return err
	})
	return info, err
}

func (d *decoder) components(n *yaml.Node) (*Components, error) {
	c := NewComponents()
	err := d.eachPair(n, "components", func(key string, value *yaml.Node) error {
		var err error
		switch key {
		case "schemas":
			c.Schemas, err = orderedMap(d, value, "components.schemas", d.schema)
		case "parameters":
			c.Parameters, err = orderedMap(d, value, "components.parameters", d.parameter)
		case "requestBodies":
			c.RequestBodies, err = orderedMap(d, value, "components.requestBodies", d.requestBody)
		case "responses":
			c.Responses, err = orderedMap(d, value, "components.responses", d.response)
		case "headers":
			c.Headers, err = orderedMap(d, value, "components.headers", d.header)
		case "pathItems":
			c.PathItems, err = orderedMap(d, value, "components.pathItems", d.pathItem)
		}
		return err
	})
	return c, err
}

// pathItemFields are the fixed fields of a Path Item Object that are not operations.
var pathItemFields = map[string]bool{
	"$ref":        true,
	"summary":     true,
	"description": true,
	"servers":     true,
	"parameters":  true,
}

func (d *decoder) pathItem(n *yaml.Node) (*PathItem, error) {
	if isNull(n) {
		return nil, nil
	}
	item := &PathItem{Operations: sequencedmap.New[string, *Operation]()}
	err := d.eachPair(n, "path item", func(key string, value *yaml.Node) error {
		var err error
		switch {
		case key == "$ref":
			item.Ref, err = d.str(value, "$ref")
		case key == "summary":
			item.Summary, err = d.str(value, "summary")
		case key == "description":
			item.Description, err = d.str(value, "description")
		case key == "parameters":
			item.Parameters, err = d.parameters(value)
		case pathItemFields[key]:
		case isExtensionKey(key):
			item.Extensions, err = d.extension(item.Extensions, key, value)
		default:
			var op *Operation
			if op, err = d.operation(value); err == nil {
				item.Operations.Set(key, op)
			}
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (d *decoder) operation(n *yaml.Node) (*Operation, error) {
	op := &Operation{}
	err := d.eachPair(n, "operation", func(key string, value *yaml.Node) error {
		var err error
		switch key {
		case "operationId":
			op.OperationID, err = d.str(value, "operationId")
		case "summary":
			op.Summary, err = d.str(value, "summary")
		case "description":
			op.Description, err = d.str(value, "description")
		case "tags":
			op.Tags, err = d.strings(value, "tags")
		case "deprecated":
			op.Deprecated, err = d.boolean(value, "deprecated")
		case "parameters":
			op.Parameters, err = d.parameters(value)
		case "requestBody":
			op.RequestBody, err = d.requestBody(value)
		case "responses":
			op.Responses, err = orderedMap(d, value, "responses", d.response)
		default:
			if isExtensionKey(key) {
				op.Extensions, err = d.extension(op.Extensions, key, value)
			}
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return op, nil
}

func (d *decoder) parameters(n *yaml.Node) ([]*Parameter, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, d.errorf(n, "parameters must be an array")
	}
	params := make([]*Parameter, 0, len(n.Content))
	for _, item := range n.Content {
		p, err := d.parameter(resolveAlias(item))
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, nil
}

func (d *decoder) parameter(n *yaml.Node) (*Parameter, error) {
	p := &Parameter{}
	err := d.eachPair(n, "parameter", func(key string, value *yaml.Node) error {
		var err error
		switch key {
		case "$ref":
			p.Ref, err = d.str(value, "$ref")
		case "name":
			p.Name, err = d.str(value, "name")
		case "in":
			p.In, err = d.str(value, "in")
		case "description":
			p.Description, err = d.str(value, "description")
		case "required":
			p.Required, err = d.boolean(value, "required")
		case "deprecated":
			p.Deprecated, err = d.boolean(value, "deprecated")
		case "schema":
			p.Schema, err = d.schema(value)
		case "content":
			p.Content, err = orderedMap(d, value, "content", d.mediaType)
		}
		return err
	})
	return p, err
}

func (d *decoder) requestBody(n *yaml.Node) (*RequestBody, error) {
	rb := &RequestBody{}
	err := d.eachPair(n, "request body", func(key string, value *yaml.Node) error {
		var err error
		switch key {
		case "$ref":
			rb.Ref, err = d.str(value, "$ref")
		case "description":
			rb.Description, err = d.str(value, "description")
		case "required":
			rb.Required, err = d.boolean(value, "required")
		case "content":
			rb.Content, err = orderedMap(d, value, "content", d.mediaType)
		}
		return err
	})
	return rb, err
}

func (d *decoder) response(n *yaml.Node) (*Response, error) {
	r := &Response{}
	err := d.eachPair(n, "response", func(key string, value *yaml.Node) error {
		var err error
		switch key {
		case "$ref":
			r.Ref, err = d.str(value, "$ref")
		case "description":
			r.Description, err = d.str(value, "description")
		case "headers":
			r.Headers, err = orderedMap(d, value, "headers", d.header)
		case "content":
			r.Content, err = orderedMap(d, value, "content", d.mediaType)
		}
		return err
	})
	return r, err
}

func (d *decoder) header(n *yaml.Node) (*Header, error) {
	h := &Header{}
	err := d.eachPair(n, "header", func(key string, value *yaml.Node) error {
		var err error
		switch key {
		case "$ref":
			h.Ref, err = d.str(value, "$ref")
		case "description":
			h.Description, err = d.str(value, "description")
		case "required":
			h.Required, err = d.boolean(value, "required")
		case "schema":
			h.Schema, err = d.schema(value)
		}
		return err
	})
	return h, err
}

func (d *decoder) mediaType(n *yaml.Node) (*MediaType, error) {
	mt := &MediaType{}
	err := d.eachPair(n, "media type", func(key string, value *yaml.Node) error {
		if key != "schema" {
			return nil
		}
		var err error
		mt.Schema, err = d.schema(value)
		return err
	})
	return mt, err
}

func (d *decoder) schemaList(n *yaml.Node, what string) ([]*Schema, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, d.errorf(n, "%s must be an array of schemas", what)
	}
	out := make([]*Schema, 0, len(n.Content))
	for _, item := range n.Content {
		s, err := d.schema(resolveAlias(item))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// exclusiveBound decodes exclusiveMinimum/exclusiveMaximum in either the
// 3.0 boolean form or the 3.1 numeric form.
func (d *decoder) exclusiveBound(n *yaml.Node, what string) (bool, *float64, error) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!bool" {
		b, err := d.boolean(n, what)
		return b, nil, err
	}
	f, err := d.floatPtr(n, what)
	return false, f, err
}

func (d *decoder) schema(n *yaml.Node) (*Schema, error) {
	n = resolveAlias(n)
	if isNull(n) {
		return nil, nil
	}
	s := &Schema{}
	err := d.eachPair(n, "schema", func(key string, value *yaml.Node) error {
		var err error
		switch key {
		case "$ref":
			s.Ref, err = d.str(value, "$ref")
		case "title":
			s.Title, err = d.str(value, "title")
		case "description":
			s.Description, err = d.str(value, "description")
		case "default":
			s.HasDefault = true
			s.Default, err = d.value(value)
		case "example":
			s.Example, err = d.value(value)
		case "deprecated":
			s.Deprecated, err = d.boolean(value, "deprecated")
		case "readOnly":
			s.ReadOnly, err = d.boolean(value, "readOnly")
		case "writeOnly":
			s.WriteOnly, err = d.boolean(value, "writeOnly")
		case "type":
			s.Type, err = d.schemaType(value)
		case "format":
			s.Format, err = d.str(value, "format")
		case "enum":
			s.HasEnum = true
			s.Enum, err = d.enum(value)
		case "nullable":
			s.Nullable, err = d.boolean(value, "nullable")
		case "multipleOf":
			s.MultipleOf, err = d.floatPtr(value, "multipleOf")
		case "minimum":
			s.Minimum, err = d.floatPtr(value, "minimum")
		case "maximum":
			s.Maximum, err = d.floatPtr(value, "maximum")
		case "exclusiveMinimum":
			s.ExclusiveMinimum, s.ExclusiveMinimumValue, err = d.exclusiveBound(value, "exclusiveMinimum")
		case "exclusiveMaximum":
			s.ExclusiveMaximum, s.ExclusiveMaximumValue, err = d.exclusiveBound(value, "exclusiveMaximum")
		case "minLength":
			s.MinLength, err = d.intPtr(value, "minLength")
		case "maxLength":
			s.MaxLength, err = d.intPtr(value, "maxLength")
		case "pattern":
			s.Pattern, err = d.str(value, "pattern")
		case "items":
			if value.Kind == yaml.SequenceNode {
				return d.errorf(value, "tuple items are not supported")
			}
			s.Items, err = d.schema(value)
		case "minItems":
			s.MinItems, err = d.intPtr(value, "minItems")
		case "maxItems":
			s.MaxItems, err = d.intPtr(value, "maxItems")
		case "properties":
			s.Properties, err = orderedMap(d, value, "properties", d.schema)
		case "required":
			s.Required, err = d.strings(value, "required")
		case "additionalProperties":
			s.AdditionalProperties, err = d.additionalProperties(value)
		case "allOf":
			s.AllOf, err = d.schemaList(value, "allOf")
		case "anyOf":
			s.AnyOf, err = d.schemaList(value, "anyOf")
		case "oneOf":
			s.OneOf, err = d.schemaList(value, "oneOf")
		default:
			if isExtensionKey(key) {
				s.Extensions, err = d.extension(s.Extensions, key, value)
			}
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// schemaType accepts both `type: string` and `type: [string, "null"]`.
// An explicit YAML null is treated as an absent type.
func (d *decoder) schemaType(n *yaml.Node) ([]string, error) {
	switch {
	case isNull(n):
		return nil, nil
	case n.Kind == yaml.ScalarNode:
		return []string{n.Value}, nil
	case n.Kind == yaml.SequenceNode:
		return d.strings(n, "type")
	}
	return nil, d.errorf(n, "type must be a string or an array of strings")
}

func (d *decoder) enum(n *yaml.Node) ([]any, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, d.errorf(n, "enum must be an array")
	}
	out := make([]any, 0, len(n.Content))
	for _, item := range n.Content {
		v, err := d.value(resolveAlias(item))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (d *decoder) additionalProperties(n *yaml.Node) (*AdditionalProperties, error) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!bool" {
		b, err := d.boolean(n, "additionalProperties")
		if err != nil {
			return nil, err
		}
		return &AdditionalProperties{Allowed: b}, nil
	}
	s, err := d.schema(n)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return &AdditionalProperties{Allowed: true, Schema: s}, nil
}
