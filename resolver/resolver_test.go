package resolver

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oacontract/oaserrors"
	"github.com/erraggy/oacontract/parser"
)

func mustParse(t *testing.T, src string) *parser.Document {
	t.Helper()
	result, err := parser.New().ParseBytes([]byte(src))
	require.NoError(t, err)
	return result.Document
}

const componentsDoc = `
openapi: 3.0.3
info: {title: t, version: "1"}
paths: {}
components:
  schemas:
    A: {$ref: "#/components/schemas/B"}
    B: {$ref: "#/components/schemas/C"}
    C: {type: string}
    Dangling: {$ref: "#/components/schemas/Nope"}
    Loop1: {$ref: "#/components/schemas/Loop2"}
    Loop2: {$ref: "#/components/schemas/Loop1"}
    WrongSection: {$ref: "#/components/parameters/Limit"}
  parameters:
    Limit: {name: limit, in: query, schema: {type: integer}}
    Alias: {$ref: "#/components/parameters/Limit"}
  requestBodies:
    Body: {content: {application/json: {schema: {type: object}}}}
  responses:
    Error: {description: boom}
  headers:
    Rate: {schema: {type: integer}}
  pathItems:
    Shared: {get: {responses: {"200": {description: ok}}}}
`

func TestParseReference(t *testing.T) {
	tests := []struct {
		ref     string
		want    Reference
		wantErr bool
	}{
		{ref: "#/components/schemas/Pet", want: Reference{Section: SectionSchemas, Name: "Pet"}},
		{ref: "#/components/parameters/limit", want: Reference{Section: SectionParameters, Name: "limit"}},
		{ref: "#/components/requestBodies/Body", want: Reference{Section: SectionRequestBodies, Name: "Body"}},
		{ref: "#/components/responses/Error", want: Reference{Section: SectionResponses, Name: "Error"}},
		{ref: "#/components/headers/X-Rate", want: Reference{Section: SectionHeaders, Name: "X-Rate"}},
		{ref: "#/components/schemas/a~1b", want: Reference{Section: SectionSchemas, Name: "a/b"}},
		{ref: "#/components/examples/Ex", wantErr: true},
		{ref: "#/components/pathItems/Shared", wantErr: true},
		{ref: "#/definitions/Pet", wantErr: true},
		{ref: "#/components/schemas/", wantErr: true},
		{ref: "Pet", wantErr: true},
		{ref: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := ParseReference(tt.ref)
			if tt.wantErr {
				assert.ErrorIs(t, err, oaserrors.ErrInvalidReference)
				assert.ErrorIs(t, err, oaserrors.ErrReference)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ref, got.String())
		})
	}
}

func TestSchemaChain(t *testing.T) {
	r := New(mustParse(t, componentsDoc))

	s, err := r.Schema("#/components/schemas/A")
	require.NoError(t, err)
	assert.Equal(t, []string{"string"}, s.Type)

	s2, err := r.Dereference("#/components/schemas/A")
	require.NoError(t, err)
	assert.Same(t, s, s2)
}

func TestSchemaErrors(t *testing.T) {
	r := New(mustParse(t, componentsDoc))

	tests := []struct {
		name   string
		ref    string
		target error
	}{
		{name: "missing", ref: "#/components/schemas/Missing", target: oaserrors.ErrUnresolvableReference},
		{name: "dangling chain", ref: "#/components/schemas/Dangling", target: oaserrors.ErrUnresolvableReference},
		{name: "cycle", ref: "#/components/schemas/Loop1", target: oaserrors.ErrUnresolvableReference},
		{name: "wrong section in chain", ref: "#/components/schemas/WrongSection", target: oaserrors.ErrInvalidReference},
		{name: "wrong section", ref: "#/components/parameters/Limit", target: oaserrors.ErrInvalidReference},
		{name: "malformed", ref: "#/components/schemas", target: oaserrors.ErrInvalidReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Schema(tt.ref)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

// chainDoc builds a document where S0 -> S1 -> ... -> S{hops} and S{hops} is concrete.
func chainDoc(hops int) string {
	var b strings.Builder
	b.WriteString("openapi: 3.0.3\ncomponents:\n  schemas:\n")
	for i := range hops {
		fmt.Fprintf(&b, "    S%d: {$ref: \"#/components/schemas/S%d\"}\n", i, i+1)
	}
	fmt.Fprintf(&b, "    S%d: {type: boolean}\n", hops)
	return b.String()
}

func TestSchemaDepthBound(t *testing.T) {
	t.Run("chain at the bound resolves", func(t *testing.T) {
		r := New(mustParse(t, chainDoc(MaxRefDepth)))
		s, err := r.Schema("#/components/schemas/S0")
		require.NoError(t, err)
		assert.True(t, s.HasType("boolean"))
	})

	t.Run("chain past the bound fails", func(t *testing.T) {
		r := New(mustParse(t, chainDoc(MaxRefDepth+1)))
		_, err := r.Schema("#/components/schemas/S0")
		var refErr *oaserrors.ReferenceError
		require.ErrorAs(t, err, &refErr)
		assert.Equal(t, oaserrors.ReasonUnresolvable, refErr.Reason)
		assert.Equal(t, "#/components/schemas/S0", refErr.Ref)
		assert.Equal(t, MaxRefDepth+1, refErr.Depth)
	})
}

func TestTypedLookups(t *testing.T) {
	r := New(mustParse(t, componentsDoc))

	p, err := r.Parameter("#/components/parameters/Alias")
	require.NoError(t, err)
	assert.Equal(t, "limit", p.Name)

	body, err := r.RequestBody("#/components/requestBodies/Body")
	require.NoError(t, err)
	assert.Equal(t, 1, body.Content.Len())

	resp, err := r.Response("#/components/responses/Error")
	require.NoError(t, err)
	assert.Equal(t, "boom", resp.Description)

	h, err := r.Header("#/components/headers/Rate")
	require.NoError(t, err)
	assert.True(t, h.Schema.HasType("integer"))

	item, err := r.PathItem("#/components/pathItems/Shared")
	require.NoError(t, err)
	assert.Equal(t, 1, item.Operations.Len())

	_, err = r.Response("#/components/responses/Missing")
	assert.ErrorIs(t, err, oaserrors.ErrUnresolvableReference)
}

func TestResolve(t *testing.T) {
	r := New(mustParse(t, componentsDoc))

	concrete := &parser.Schema{Type: []string{"number"}}
	got, err := r.ResolveSchema(concrete)
	require.NoError(t, err)
	assert.Same(t, concrete, got)

	got, err = r.ResolveSchema(&parser.Schema{Ref: "#/components/schemas/B"})
	require.NoError(t, err)
	assert.True(t, got.HasType("string"))

	got, err = r.ResolveSchema(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	param, err := r.ResolveParameter(&parser.Parameter{Ref: "#/components/parameters/Limit"})
	require.NoError(t, err)
	assert.Equal(t, parser.ParamInQuery, param.In)

	inline := &parser.Response{Description: "inline"}
	resp, err := r.ResolveResponse(inline)
	require.NoError(t, err)
	assert.Same(t, inline, resp)

	body, err := r.ResolveRequestBody(&parser.RequestBody{Ref: "#/components/requestBodies/Body"})
	require.NoError(t, err)
	assert.NotNil(t, body)

	h, err := r.ResolveHeader(&parser.Header{Ref: "#/components/headers/Rate"})
	require.NoError(t, err)
	assert.NotNil(t, h)

	item, err := r.ResolvePathItem(&parser.PathItem{Ref: "#/components/pathItems/Shared"})
	require.NoError(t, err)
	assert.NotNil(t, item)
}

func TestResolverWithoutComponents(t *testing.T) {
	r := New(&parser.Document{OpenAPI: "3.0.3"})
	_, err := r.Schema("#/components/schemas/A")
	assert.ErrorIs(t, err, oaserrors.ErrUnresolvableReference)

	r = New(nil)
	assert.Nil(t, r.Document())
	_, err = r.Header("#/components/headers/A")
	assert.ErrorIs(t, err, oaserrors.ErrUnresolvableReference)
}

func TestReferenceString(t *testing.T) {
	assert.Equal(t, "#/components/pathItems/Shared", Reference{Section: sectionPathItems, Name: "Shared"}.String())
	assert.Equal(t, "#/components/schemas/a~1b~0c", Reference{Section: SectionSchemas, Name: "a/b~c"}.String())
	assert.Equal(t, "#/components/examples/Ex", Reference{Section: "examples", Name: "Ex"}.String())
}
