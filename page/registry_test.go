package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-shell/vdom"
)

func TestRegistry_InsertGetRemove(t *testing.T) {
	r := NewRegistry(nil)
	p, c := newStubInstance("/pages/a", 1, false)

	r.Insert(p.RouteKey, p)
	got, ok := r.Get(p.RouteKey)
	require.True(t, ok)
	assert.Same(t, p, got)

	r.Remove(p.RouteKey, false)

	_, ok = r.Get(p.RouteKey)
	assert.False(t, ok)
	assert.True(t, p.IsUnloaded())
	assert.Equal(t, 1, c.unloads)
}

// TestRegistry_UnloadHookSeesRegisteredPage verifies that the unload hook runs
// before the entry is dropped.
func TestRegistry_UnloadHookSeesRegisteredPage(t *testing.T) {
	r := NewRegistry(nil)
	p, c := newStubInstance("/pages/a", 1, false)
	r.Insert(p.RouteKey, p)

	registered := false
	c.onUnload = func() {
		_, registered = r.Get(p.RouteKey)
		assert.True(t, p.IsUnloaded())
	}
	r.Remove(p.RouteKey, false)

	assert.True(t, registered)
}

func TestRegistry_RemoveMissingIsNoop(t *testing.T) {
	r := NewRegistry(nil)
	assert.NotPanics(t, func() { r.Remove("/pages/missing$$9", true) })
}

func TestRegistry_RemoveEvictsView(t *testing.T) {
	var released []*vdom.VNode
	cache := NewViewCache(func(v *vdom.VNode) { released = append(released, v) })
	r := NewRegistry(cache)
	p, _ := newStubInstance("/pages/a", 1, false)
	v := view(p.RouteKey, false)
	r.Insert(p.RouteKey, p)
	cache.Set(p.RouteKey, v)

	r.Remove(p.RouteKey, true)

	assert.Equal(t, []*vdom.VNode{v}, released)
	assert.Zero(t, cache.Len())
}

func TestRegistry_VisibleFiltersInactiveTabs(t *testing.T) {
	r := NewRegistry(nil)
	home, _ := newStubInstance("/pages/home", 1, true)
	mine, _ := newStubInstance("/pages/mine", 2, true)
	detail, _ := newStubInstance("/pages/detail", 3, false)
	other, _ := newStubInstance("/pages/other", 4, false)
	home.SetActive(false)

	for _, p := range []*Instance{home, mine, detail, other} {
		r.Insert(p.RouteKey, p)
	}
	r.Remove(detail.RouteKey, false)
	r.Insert(detail.RouteKey, detail)

	assert.Equal(t, []*Instance{mine, other, detail}, r.Visible())
}

func TestRegistry_Prune(t *testing.T) {
	r := NewRegistry(nil)
	a, _ := newStubInstance("/pages/a", 1, false)
	b, _ := newStubInstance("/pages/b", 2, false)
	r.Insert(a.RouteKey, a)
	r.Insert(b.RouteKey, b)
	b.MarkUnmounted()

	assert.Equal(t, 1, r.Prune())
	assert.Equal(t, []string{a.RouteKey}, r.Keys())
}

func TestRegistry_ByID(t *testing.T) {
	r := NewRegistry(nil)
	a, _ := newStubInstance("/pages/a", 5, false)
	r.Insert(a.RouteKey, a)

	got, ok := r.ByID(5)
	assert.True(t, ok)
	assert.Same(t, a, got)
	_, ok = r.ByID(6)
	assert.False(t, ok)
}
