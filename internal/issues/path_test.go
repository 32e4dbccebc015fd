package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPath(t *testing.T) {
	tests := []struct {
		segments []string
		want     string
	}{
		{nil, ""},
		{[]string{"paths"}, "paths"},
		{[]string{"paths", "/pets", "get", "responses", "default"}, "paths./pets.get.responses.default"},
		{[]string{"components", "", "schemas"}, "components.schemas"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPath(tt.segments...))
	}
}

func BenchmarkFormatPath(b *testing.B) {
	segments := []string{"paths", "/pets/{petId}", "get", "responses", "default"}
	for b.Loop() {
		_ = FormatPath(segments...)
	}
}
