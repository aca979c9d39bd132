// ABOUTME: Recycled strings.Builder values for line assembly in slicing and rendering
// ABOUTME: Oversized builders are dropped on release so one huge table cannot pin memory

package pool

import (
	"strings"
	"sync"
)

// MaxPooledCap is the largest builder capacity kept for reuse.
const MaxPooledCap = 64 << 10

var builders = sync.Pool{
	New: func() any { return new(strings.Builder) },
}

// Builder returns an empty strings.Builder.
func Builder() *strings.Builder {
	sb := builders.Get().(*strings.Builder)
	sb.Reset()
	return sb
}

// Release hands sb back for reuse. Callers must copy out sb.String() first.
func Release(sb *strings.Builder) {
	if sb == nil || sb.Cap() > MaxPooledCap {
		return
	}
	sb.Reset()
	builders.Put(sb)
}
