// ABOUTME: sync.Pool wrapper for the strings.Builder every renderer composes into
// ABOUTME: Oversized builders are dropped instead of pinned in the pool

package pool

import (
	"strings"
	"sync"
)

// maxPooledCap bounds the builders kept for reuse; a full-screen figlet
// banner should not stay resident after one call.
const maxPooledCap = 64 << 10

var builderPool = sync.Pool{
	New: func() any {
		return new(strings.Builder)
	},
}

// GetBuilder returns an empty strings.Builder from the pool.
func GetBuilder() *strings.Builder {
	sb := builderPool.Get().(*strings.Builder)
	sb.Reset()
	return sb
}

// PutBuilder returns sb to the pool.
func PutBuilder(sb *strings.Builder) {
	if sb == nil || sb.Cap() > maxPooledCap {
		return
	}
	sb.Reset()
	builderPool.Put(sb)
}

// Build runs fn against a pooled builder and returns the composed string.
func Build(fn func(sb *strings.Builder)) string {
	sb := GetBuilder()
	defer PutBuilder(sb)
	fn(sb)
	return sb.String()
}
