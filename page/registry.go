package page

import "github.com/vcrobe/nojs-shell/console"

// Registry maps route keys to live pages in insertion order.
type Registry struct {
	pages *ordered[*Instance]
	views *ViewCache
}

// NewRegistry creates an empty registry. views may be nil, in which case
// Remove never evicts.
func NewRegistry(views *ViewCache) *Registry {
	return &Registry{pages: newOrdered[*Instance](), views: views}
}

// Insert stores p under key. A key is never reused under correct id
// allocation, so an overwrite is reported but still applied.
func (r *Registry) Insert(key string, p *Instance) {
	if r.pages.set(key, p) {
		console.Warn("[Registry.Insert] overwriting live page", key)
	}
}

// Get returns the page registered under key.
func (r *Registry) Get(key string) (*Instance, bool) {
	return r.pages.get(key)
}

// ByID returns the live page with the given id.
func (r *Registry) ByID(id int) (*Instance, bool) {
	var found *Instance
	r.pages.each(func(_ string, p *Instance) {
		if found == nil && p.ID == id {
			found = p
		}
	})
	return found, found != nil
}

// Remove unloads the page under key and drops it. The unload hook runs while
// the page is still registered. With evictView the page view is released too.
func (r *Registry) Remove(key string, evictView bool) {
	p, ok := r.pages.get(key)
	if !ok {
		console.Warn("[Registry.Remove] no live page", key)
		return
	}
	p.unload()
	r.pages.delete(key)
	if evictView && r.views != nil {
		r.views.Evict(key)
	}
}

// Visible lists the pages the user can navigate between, in insertion order.
// Tab-bar pages are listed only while they are the selected tab.
func (r *Registry) Visible() []*Instance {
	pages := make([]*Instance, 0, r.pages.len())
	r.pages.each(func(_ string, p *Instance) {
		if p.IsTabBar() && !p.IsActive() {
			return
		}
		pages = append(pages, p)
	})
	return pages
}

// Prune drops pages the rendering layer reports as unmounted.
func (r *Registry) Prune() int {
	n := 0
	r.pages.each(func(key string, p *Instance) {
		if p.IsUnmounted() {
			r.pages.delete(key)
			n++
		}
	})
	return n
}

// Keys returns the registered route keys in insertion order.
func (r *Registry) Keys() []string {
	return append([]string(nil), r.pages.keys...)
}

// Len returns the number of live pages.
func (r *Registry) Len() int {
	return r.pages.len()
}
