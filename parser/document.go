package parser

import (
	"github.com/speakeasy-api/openapi/sequencedmap"
)

// Document represents an OpenAPI 3.0 document.
// Every map that carries user-defined names preserves declaration order.
type Document struct {
	OpenAPI    string                                `yaml:"openapi" json:"openapi"`
	Info       *Info                                 `yaml:"info,omitempty" json:"info,omitempty"`
	Paths      *sequencedmap.Map[string, *PathItem] `yaml:"paths,omitempty" json:"paths,omitempty"`
	Components *Components                           `yaml:"components,omitempty" json:"components,omitempty"`
	Extensions map[string]any                        `yaml:",inline" json:"-"`
}

// Info provides metadata about the API.
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version" json:"version"`
}

// Components holds the reusable objects of the document.
// Maps are never nil on a parsed document.
type Components struct {
	Schemas       *sequencedmap.Map[string, *Schema]      `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Parameters    *sequencedmap.Map[string, *Parameter]   `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBodies *sequencedmap.Map[string, *RequestBody] `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
	Responses     *sequencedmap.Map[string, *Response]    `yaml:"responses,omitempty" json:"responses,omitempty"`
	Headers       *sequencedmap.Map[string, *Header]      `yaml:"headers,omitempty" json:"headers,omitempty"`
	PathItems     *sequencedmap.Map[string, *PathItem]    `yaml:"pathItems,omitempty" json:"pathItems,omitempty"`
}

// NewComponents returns a Components value with every section initialized.
func NewComponents() *Components {
	return &Components{
		Schemas:       sequencedmap.New[string, *Schema](),
		Parameters:    sequencedmap.New[string, *Parameter](),
		RequestBodies: sequencedmap.New[string, *RequestBody](),
		Responses:     sequencedmap.New[string, *Response](),
		Headers:       sequencedmap.New[string, *Header](),
		PathItems:     sequencedmap.New[string, *PathItem](),
	}
}

// PathItem describes the operations available on a single path.
//
// Operations keeps every key that is not a fixed path item field or an
// extension, exactly as written. Validating that those keys are HTTP
// methods is left to the operations package.
type PathItem struct {
	Ref         string                                 `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary     string                                 `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string                                 `yaml:"description,omitempty" json:"description,omitempty"`
	Parameters  []*Parameter                           `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Operations  *sequencedmap.Map[string, *Operation] `yaml:"-" json:"-"`
	Extensions  map[string]any                         `yaml:",inline" json:"-"`
}

// Operation describes a single API operation on a path.
type Operation struct {
	OperationID string                                `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Summary     string                                `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string                                `yaml:"description,omitempty" json:"description,omitempty"`
	Tags        []string                              `yaml:"tags,omitempty" json:"tags,omitempty"`
	Deprecated  bool                                  `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Parameters  []*Parameter                          `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody                          `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   *sequencedmap.Map[string, *Response] `yaml:"responses,omitempty" json:"responses,omitempty"`
	Extensions  map[string]any                        `yaml:",inline" json:"-"`
}

// Parameter location constants
const (
	ParamInQuery  = "query"
	ParamInHeader = "header"
	ParamInPath   = "path"
	ParamInCookie = "cookie"
)

// Parameter describes a single operation parameter.
type Parameter struct {
	Ref         string                                 `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Name        string                                 `yaml:"name,omitempty" json:"name,omitempty"`
	In          string                                 `yaml:"in,omitempty" json:"in,omitempty"`
	Description string                                 `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool                                   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool                                   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Schema      *Schema                                `yaml:"schema,omitempty" json:"schema,omitempty"`
	Content     *sequencedmap.Map[string, *MediaType] `yaml:"content,omitempty" json:"content,omitempty"`
}

// RequestBody describes a single request body.
type RequestBody struct {
	Ref         string                                 `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                                 `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool                                   `yaml:"required,omitempty" json:"required,omitempty"`
	Content     *sequencedmap.Map[string, *MediaType] `yaml:"content,omitempty" json:"content,omitempty"`
}

// Response describes a single response from an API operation.
type Response struct {
	Ref         string                                 `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                                 `yaml:"description,omitempty" json:"description,omitempty"`
	Headers     *sequencedmap.Map[string, *Header]    `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     *sequencedmap.Map[string, *MediaType] `yaml:"content,omitempty" json:"content,omitempty"`
}

// Header describes a response header.
type Header struct {
	Ref         string  `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool    `yaml:"required,omitempty" json:"required,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// MediaType provides the schema for one content type.
type MediaType struct {
	Schema *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// FirstSchema returns the schema of the first media type that declares one,
// preferring application/json.
func FirstSchema(content *sequencedmap.Map[string, *MediaType]) (string, *Schema) {
	if mt, ok := content.Get("application/json"); ok && mt != nil && mt.Schema != nil {
		return "application/json", mt.Schema
	}
	for name, mt := range content.All() {
		if mt != nil && mt.Schema != nil {
			return name, mt.Schema
		}
	}
	return "", nil
}
