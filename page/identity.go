package page

import (
	"strconv"
	"strings"

	"go.uber.org/atomic"
)

// Separator joins a path and a page id in a route key. It never occurs in a
// legal page path.
const Separator = "$$"

// IDAllocator hands out page ids. Ids are strictly increasing for the
// lifetime of the allocator and never 0, which is reserved for "no id".
type IDAllocator struct {
	last atomic.Int64
}

// NewIDAllocator creates an allocator whose first id is seed+1. A browser tab
// that reloads passes the id stored in its history state so ids are not reused.
func NewIDAllocator(seed int) *IDAllocator {
	a := &IDAllocator{}
	if seed > 0 {
		a.last.Store(int64(seed))
	}
	return a
}

// Next returns a fresh id.
func (a *IDAllocator) Next() int {
	return int(a.last.Inc())
}

// Last returns the most recently allocated id, or the seed.
func (a *IDAllocator) Last() int {
	return int(a.last.Load())
}

// RouteKey derives the key identifying one page instance.
func RouteKey(path string, id int) string {
	return path + Separator + strconv.Itoa(id)
}

// RouteID parses the page id out of a route key. Keys that do not carry a
// positive id (component keys, malformed keys) yield 0.
func RouteID(key string) int {
	_, suffix, ok := strings.Cut(key, Separator)
	if !ok {
		return 0
	}
	if i := strings.Index(suffix, Separator); i >= 0 {
		suffix = suffix[:i]
	}
	id, err := strconv.Atoi(suffix)
	if err != nil || id < 0 {
		return 0
	}
	return id
}
