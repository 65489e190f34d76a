package page

import "github.com/vcrobe/nojs-shell/vdom"

// ReleaseFunc tears down the rendered resources behind a cached view. The
// cache calls it exactly once for every entry it evicts.
type ReleaseFunc func(view *vdom.VNode)

// ExemptFunc reports views that eviction sweeps must keep.
type ExemptFunc func(view *vdom.VNode) bool

// IsTabBarView keeps the views of tab-bar pages resident.
func IsTabBarView(view *vdom.VNode) bool {
	return view.IsTabBar()
}

// ViewCache retains page views for back/forward navigation. Keys are route
// keys, or structural keys for views that are not bound to a route.
type ViewCache struct {
	entries    *ordered[*vdom.VNode]
	release    ReleaseFunc
	exempt     ExemptFunc
	afterEvict func()
}

// CacheOption configures a ViewCache.
type CacheOption func(*ViewCache)

// WithExempt replaces the tab-bar exemption used by Set.
func WithExempt(fn ExemptFunc) CacheOption {
	return func(c *ViewCache) { c.exempt = fn }
}

// WithAfterEvict registers fn to run after every eviction performed by a sweep.
func WithAfterEvict(fn func()) CacheOption {
	return func(c *ViewCache) { c.afterEvict = fn }
}

// NewViewCache creates a cache that tears evicted views down with release.
func NewViewCache(release ReleaseFunc, opts ...CacheOption) *ViewCache {
	c := &ViewCache{
		entries: newOrdered[*vdom.VNode](),
		release: release,
		exempt:  IsTabBarView,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the view cached under key.
func (c *ViewCache) Get(key string) (*vdom.VNode, bool) {
	return c.entries.get(key)
}

// Set caches view under key after sweeping the entries that lie forward of
// key in navigation order.
func (c *ViewCache) Set(key string, view *vdom.VNode) {
	c.EvictForwardOf(key, c.exempt)
	c.entries.set(key, view)
}

// Delete drops key without releasing its view; the caller owns the teardown.
func (c *ViewCache) Delete(key string) {
	c.entries.delete(key)
}

// Evict drops key and releases its view. It reports whether key was cached.
func (c *ViewCache) Evict(key string) bool {
	view, ok := c.entries.delete(key)
	if !ok {
		return false
	}
	c.releaseView(view)
	return true
}

// ForEach visits the cached entries in insertion order.
func (c *ViewCache) ForEach(fn func(key string, view *vdom.VNode)) {
	c.entries.each(fn)
}

// Len returns the number of cached views.
func (c *ViewCache) Len() int {
	return c.entries.len()
}

// EvictForwardOf evicts every entry whose page id is greater than the page id
// of key, except the views isExempt keeps. Keys without a page id never sweep
// and are never swept. It returns the number of evicted entries.
func (c *ViewCache) EvictForwardOf(key string, isExempt ExemptFunc) int {
	pageID := RouteID(key)
	if pageID == 0 {
		return 0
	}
	n := 0
	c.entries.each(func(k string, view *vdom.VNode) {
		id := RouteID(k)
		if id == 0 || id <= pageID {
			return
		}
		if isExempt != nil && isExempt(view) {
			return
		}
		// A release callback may already have dropped k.
		if _, ok := c.entries.delete(k); !ok {
			return
		}
		c.releaseView(view)
		n++
		if c.afterEvict != nil {
			c.afterEvict()
		}
	})
	return n
}

func (c *ViewCache) releaseView(view *vdom.VNode) {
	if c.release != nil {
		c.release(view)
	}
}
