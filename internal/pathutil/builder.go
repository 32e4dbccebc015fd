package pathutil

import (
	"strconv"
	"strings"
)

// PathBuilder tracks a location inside a schema tree with push/pop
// semantics, e.g. "properties.owner.allOf[1]". The string form is only
// built when String is called, typically when reporting an error.
type PathBuilder struct {
	segments []string
}

// Push adds a key segment.
func (p *PathBuilder) Push(segment string) {
	p.segments = append(p.segments, segment)
}

// PushIndex adds an array index segment rendered as "[i]".
func (p *PathBuilder) PushIndex(i int) {
	p.segments = append(p.segments, "["+strconv.Itoa(i)+"]")
}

// Pop removes the last segment. Popping an empty path is a no-op.
func (p *PathBuilder) Pop() {
	if n := len(p.segments); n > 0 {
		p.segments = p.segments[:n-1]
	}
}

// Len returns the number of segments.
func (p *PathBuilder) Len() int {
	return len(p.segments)
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
}

// String joins the segments with dots; index segments attach directly.
func (p *PathBuilder) String() string {
	var b strings.Builder
	for i, seg := range p.segments {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}
