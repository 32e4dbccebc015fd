package parser

import (
	"slices"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// Schema represents an OpenAPI 3.0 Schema Object.
//
// A Schema is either a reference (Ref is non-empty, every other field is
// ignored) or a concrete node. Scalar and array forms of "type" both decode
// into Type, so a 3.0 document's `type: string` becomes []string{"string"}.
type Schema struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
	// HasDefault distinguishes `default: null` from an absent default.
	HasDefault bool `yaml:"-" json:"-"`
	Example    any  `yaml:"example,omitempty" json:"example,omitempty"`
	Deprecated bool `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	ReadOnly   bool `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly  bool `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`

	// Type validation
	Type   []string `yaml:"type,omitempty" json:"type,omitempty"`
	Format string   `yaml:"format,omitempty" json:"format,omitempty"`
	Enum   []any    `yaml:"enum,omitempty" json:"enum,omitempty"`
	// HasEnum is true when the enum keyword is present, even if empty.
	HasEnum  bool `yaml:"-" json:"-"`
	Nullable bool `yaml:"nullable,omitempty" json:"nullable,omitempty"`

	// Numeric validation
	MultipleOf *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	Minimum    *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	Maximum    *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	// ExclusiveMinimum and ExclusiveMaximum are the OAS 3.0 boolean modifiers.
	ExclusiveMinimum bool `yaml:"-" json:"-"`
	ExclusiveMaximum bool `yaml:"-" json:"-"`
	// ExclusiveMinimumValue and ExclusiveMaximumValue hold the numeric (3.1) form.
	ExclusiveMinimumValue *float64 `yaml:"-" json:"-"`
	ExclusiveMaximumValue *float64 `yaml:"-" json:"-"`

	// String validation
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Array validation
	Items    *Schema `yaml:"items,omitempty" json:"items,omitempty"`
	MinItems *int    `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	MaxItems *int    `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`

	// Object validation
	Properties           *sequencedmap.Map[string, *Schema] `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required             []string                           `yaml:"required,omitempty" json:"required,omitempty"`
	AdditionalProperties *AdditionalProperties              `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`

	// Schema composition
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`

	Extensions map[string]any `yaml:",inline" json:"-"`
}

// AdditionalProperties is the additionalProperties keyword: either a boolean
// or a schema. A nil *AdditionalProperties means the keyword is absent.
type AdditionalProperties struct {
	// Allowed is the boolean form; it is true whenever Schema is set.
	Allowed bool
	Schema  *Schema
}

// IsRef reports whether the node is a reference.
func (s *Schema) IsRef() bool {
	return s != nil && s.Ref != ""
}

// HasType reports whether t is one of the declared types.
func (s *Schema) HasType(t string) bool {
	return s != nil && slices.Contains(s.Type, t)
}

// IsRequired reports whether the named property is in the required list.
func (s *Schema) IsRequired(name string) bool {
	return s != nil && slices.Contains(s.Required, name)
}

// HasProperties reports whether the node declares at least one property.
func (s *Schema) HasProperties() bool {
	return s != nil && s.Properties.Len() > 0
}

// AdditionalPropertiesSchema returns the schema form of additionalProperties,
// or nil when the keyword is absent or boolean.
func (s *Schema) AdditionalPropertiesSchema() *Schema {
	if s == nil || s.AdditionalProperties == nil {
		return nil
	}
	return s.AdditionalProperties.Schema
}

// IsArrayLike reports whether the node describes an array: it declares
// type array or carries an items schema.
func (s *Schema) IsArrayLike() bool {
	return s != nil && (s.HasType("array") || s.Items != nil)
}

// IsObjectLike reports whether the node describes an object: it declares
// type object, properties, or any additionalProperties keyword.
func (s *Schema) IsObjectLike() bool {
	return s != nil && (s.HasType("object") || s.Properties != nil || s.AdditionalProperties != nil)
}
