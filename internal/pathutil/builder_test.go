package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathBuilder(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *PathBuilder)
		want  string
	}{
		{name: "empty", build: func(*PathBuilder) {}, want: ""},
		{
			name:  "keys",
			build: func(p *PathBuilder) { p.Push("properties"); p.Push("name") },
			want:  "properties.name",
		},
		{
			name:  "index",
			build: func(p *PathBuilder) { p.Push("allOf"); p.PushIndex(0); p.Push("properties") },
			want:  "allOf[0].properties",
		},
		{
			name:  "leading index",
			build: func(p *PathBuilder) { p.PushIndex(2); p.Push("items") },
			want:  "[2].items",
		},
		{
			name:  "push pop",
			build: func(p *PathBuilder) { p.Push("a"); p.Push("b"); p.Pop(); p.Push("c") },
			want:  "a.c",
		},
		{
			name:  "pop empty",
			build: func(p *PathBuilder) { p.Pop() },
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PathBuilder{}
			tt.build(p)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestPool(t *testing.T) {
	p := Get()
	p.Push("x")
	assert.Equal(t, 1, p.Len())
	Put(p)

	p2 := Get()
	assert.Equal(t, 0, p2.Len())
	Put(p2)
	Put(nil)
}

func TestComponentRefs(t *testing.T) {
	assert.Equal(t, "#/components/schemas/Pet", SchemaRef("Pet"))
	assert.Equal(t, "#/components/parameters/limit", ParameterRef("limit"))
	assert.Equal(t, "#/components/requestBodies/Body", RequestBodyRef("Body"))
	assert.Equal(t, "#/components/responses/Error", ResponseRef("Error"))
	assert.Equal(t, "#/components/headers/X-Rate", HeaderRef("X-Rate"))
	assert.Equal(t, "#/components/pathItems/Shared", PathItemRef("Shared"))
	assert.Equal(t, "#/components/schemas/a~1b~0c", SchemaRef("a/b~c"))
}

func TestSplitComponentRef(t *testing.T) {
	tests := []struct {
		ref     string
		section string
		name    string
		ok      bool
	}{
		{ref: "#/components/schemas/Pet", section: "schemas", name: "Pet", ok: true},
		{ref: "#/components/schemas/a~1b", section: "schemas", name: "a/b", ok: true},
		{ref: "#/components/schemas/", ok: false},
		{ref: "#/components/schemas", ok: false},
		{ref: "#/components//Pet", ok: false},
		{ref: "#/components/schemas/Pet/extra", ok: false},
		{ref: "#/definitions/Pet", ok: false},
		{ref: "other.yaml#/components/schemas/Pet", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			section, name, ok := SplitComponentRef(tt.ref)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.section, section)
			assert.Equal(t, tt.name, name)
		})
	}
}
