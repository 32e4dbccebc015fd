package resolver

import (
	"github.com/speakeasy-api/openapi/sequencedmap"

	"github.com/erraggy/oacontract/internal/pathutil"
	"github.com/erraggy/oacontract/oaserrors"
	"github.com/erraggy/oacontract/parser"
)

// MaxRefDepth bounds how many reference-to-reference hops are followed
// before a chain is reported as unresolvable.
const MaxRefDepth = 100

// Section names a component section that references may point into.
type Section string

// The component sections a schema-level reference may target.
const (
	SectionSchemas       Section = "schemas"
	SectionParameters    Section = "parameters"
	SectionRequestBodies Section = "requestBodies"
	SectionResponses     Section = "responses"
	SectionHeaders       Section = "headers"
)

// sectionPathItems is only reachable through (*Resolver).PathItem.
const sectionPathItems Section = "pathItems"

var knownSections = map[Section]bool{
	SectionSchemas:       true,
	SectionParameters:    true,
	SectionRequestBodies: true,
	SectionResponses:     true,
	SectionHeaders:       true,
}

// Reference is a parsed "#/components/{section}/{name}" string.
type Reference struct {
	Section Section
	Name    string
}

// String returns the reference in $ref form.
func (r Reference) String() string {
	switch r.Section {
	case SectionSchemas:
		return pathutil.SchemaRef(r.Name)
	case SectionParameters:
		return pathutil.ParameterRef(r.Name)
	case SectionRequestBodies:
		return pathutil.RequestBodyRef(r.Name)
	case SectionResponses:
		return pathutil.ResponseRef(r.Name)
	case SectionHeaders:
		return pathutil.HeaderRef(r.Name)
	case sectionPathItems:
		return pathutil.PathItemRef(r.Name)
	}
	return pathutil.RefPrefixComponents + string(r.Section) + "/" + pathutil.EscapeToken(r.Name)
}

// ParseReference validates ref and splits it into section and name.
// Only the five component sections in this package are accepted.
func ParseReference(ref string) (Reference, error) {
	return parseIn(ref, knownSections)
}

func parseIn(ref string, sections map[Section]bool) (Reference, error) {
	section, name, ok := pathutil.SplitComponentRef(ref)
	if !ok || !sections[Section(section)] {
		return Reference{}, &oaserrors.ReferenceError{Ref: ref, Reason: oaserrors.ReasonInvalid}
	}
	return Reference{Section: Section(section), Name: name}, nil
}

// Resolver looks up components of a single document. It never mutates the
// document and keeps no cache, so one Resolver can be shared by goroutines.
type Resolver struct {
	doc *parser.Document
}

// New creates a Resolver for doc.
func New(doc *parser.Document) *Resolver {
	return &Resolver{doc: doc}
}

// Document returns the document being resolved against.
func (r *Resolver) Document() *parser.Document {
	return r.doc
}

func (r *Resolver) components() *parser.Components {
	if r.doc == nil || r.doc.Components == nil {
		return parser.NewComponents()
	}
	return r.doc.Components
}

// Dereference follows ref to a concrete schema. It is the dependency graph's
// view of the resolver and is equivalent to Schema.
func (r *Resolver) Dereference(ref string) (*parser.Schema, error) {
	return r.Schema(ref)
}

// Schema dereferences a "#/components/schemas/..." reference.
func (r *Resolver) Schema(ref string) (*parser.Schema, error) {
	return lookup(ref, SectionSchemas, r.components().Schemas, func(s *parser.Schema) string { return s.Ref })
}

// Parameter dereferences a "#/components/parameters/..." reference.
func (r *Resolver) Parameter(ref string) (*parser.Parameter, error) {
	return lookup(ref, SectionParameters, r.components().Parameters, func(p *parser.Parameter) string { return p.Ref })
}

// RequestBody dereferences a "#/components/requestBodies/..." reference.
func (r *Resolver) RequestBody(ref string) (*parser.RequestBody, error) {
	return lookup(ref, SectionRequestBodies, r.components().RequestBodies, func(b *parser.RequestBody) string { return b.Ref })
}

// Response dereferences a "#/components/responses/..." reference.
func (r *Resolver) Response(ref string) (*parser.Response, error) {
	return lookup(ref, SectionResponses, r.components().Responses, func(resp *parser.Response) string { return resp.Ref })
}

// Header dereferences a "#/components/headers/..." reference.
func (r *Resolver) Header(ref string) (*parser.Header, error) {
	return lookup(ref, SectionHeaders, r.components().Headers, func(h *parser.Header) string { return h.Ref })
}

// PathItem dereferences a "#/components/pathItems/..." reference.
func (r *Resolver) PathItem(ref string) (*parser.PathItem, error) {
	return lookup(ref, sectionPathItems, r.components().PathItems, func(p *parser.PathItem) string { return p.Ref })
}

// lookup follows ref through section, hopping to the next reference while the
// found entry is itself a reference. refOf is only called on non-nil entries.
func lookup[T comparable](ref string, section Section, entries *sequencedmap.Map[string, T], refOf func(T) string) (T, error) {
	var zero T
	current := ref
	for depth := 0; ; depth++ {
		if depth > MaxRefDepth {
			return zero, &oaserrors.ReferenceError{
				Ref:     ref,
				Reason:  oaserrors.ReasonUnresolvable,
				Depth:   depth,
				Message: "reference chain exceeds maximum depth",
			}
		}

		parsed, err := parseIn(current, map[Section]bool{section: true})
		if err != nil {
			return zero, err
		}

		entry, ok := entries.Get(parsed.Name)
		if !ok || entry == zero {
			return zero, &oaserrors.ReferenceError{
				Ref:     current,
				Reason:  oaserrors.ReasonUnresolvable,
				Depth:   depth,
				Message: "component not found",
			}
		}

		next := refOf(entry)
		if next == "" {
			return entry, nil
		}
		current = next
	}
}

// ResolveSchema returns s unchanged when it is concrete and dereferences it
// otherwise. A nil schema resolves to nil.
func (r *Resolver) ResolveSchema(s *parser.Schema) (*parser.Schema, error) {
	if !s.IsRef() {
		return s, nil
	}
	return r.Schema(s.Ref)
}

// ResolveParameter returns p or its dereferenced target.
func (r *Resolver) ResolveParameter(p *parser.Parameter) (*parser.Parameter, error) {
	if p == nil || p.Ref == "" {
		return p, nil
	}
	return r.Parameter(p.Ref)
}

// ResolveRequestBody returns b or its dereferenced target.
func (r *Resolver) ResolveRequestBody(b *parser.RequestBody) (*parser.RequestBody, error) {
	if b == nil || b.Ref == "" {
		return b, nil
	}
	return r.RequestBody(b.Ref)
}

// ResolveResponse returns resp or its dereferenced target.
func (r *Resolver) ResolveResponse(resp *parser.Response) (*parser.Response, error) {
	if resp == nil || resp.Ref == "" {
		return resp, nil
	}
	return r.Response(resp.Ref)
}

// ResolveHeader returns h or its dereferenced target.
func (r *Resolver) ResolveHeader(h *parser.Header) (*parser.Header, error) {
	if h == nil || h.Ref == "" {
		return h, nil
	}
	return r.Header(h.Ref)
}

// ResolvePathItem returns p or its dereferenced target.
func (r *Resolver) ResolvePathItem(p *parser.PathItem) (*parser.PathItem, error) {
	if p == nil || p.Ref == "" {
		return p, nil
	}
	return r.PathItem(p.Ref)
}
