package page

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vcrobe/nojs-shell/vdom"
)

type releaseLog map[*vdom.VNode]int

func (l releaseLog) release(v *vdom.VNode) { l[v]++ }

func seed(c *ViewCache, tabBarID int) map[int]*vdom.VNode {
	views := make(map[int]*vdom.VNode)
	for id := 1; id <= 4; id++ {
		key := RouteKey("/pages/p", id)
		views[id] = view(key, id == tabBarID)
		c.entries.set(key, views[id])
	}
	return views
}

func TestViewCache_EvictForwardOfKeepsTabBar(t *testing.T) {
	log := releaseLog{}
	c := NewViewCache(log.release)
	views := seed(c, 3)

	n := c.EvictForwardOf(RouteKey("/pages/p", 2), IsTabBarView)

	assert.Equal(t, 1, n)
	for _, id := range []int{1, 2, 3} {
		_, ok := c.Get(RouteKey("/pages/p", id))
		assert.True(t, ok, "id %d retained", id)
	}
	_, ok := c.Get(RouteKey("/pages/p", 4))
	assert.False(t, ok)
	assert.Equal(t, releaseLog{views[4]: 1}, log)
}

func TestViewCache_EvictForwardOfWithoutPageID(t *testing.T) {
	log := releaseLog{}
	c := NewViewCache(log.release)
	seed(c, 0)

	n := c.EvictForwardOf("ListItem", IsTabBarView)

	assert.Zero(t, n)
	assert.Equal(t, 4, c.Len())
	assert.Empty(t, log)
}

func TestViewCache_ComponentKeysAreNeverSwept(t *testing.T) {
	log := releaseLog{}
	c := NewViewCache(log.release)
	c.Set("ListItem", view("ListItem", false))

	c.Set(RouteKey("/pages/p", 1), view("", false))

	assert.Equal(t, 2, c.Len())
	assert.Empty(t, log)
}

func TestViewCache_SetSweepsForward(t *testing.T) {
	log := releaseLog{}
	evictions := 0
	c := NewViewCache(log.release, WithAfterEvict(func() { evictions++ }))
	views := seed(c, 0)

	back := view("", false)
	c.Set(RouteKey("/pages/p", 2), back)

	assert.Equal(t, []string{RouteKey("/pages/p", 1), RouteKey("/pages/p", 2)}, c.entries.keys)
	got, _ := c.Get(RouteKey("/pages/p", 2))
	assert.Same(t, back, got)
	assert.Equal(t, releaseLog{views[3]: 1, views[4]: 1}, log)
	assert.Equal(t, 2, evictions)
}

func TestViewCache_CustomExemption(t *testing.T) {
	log := releaseLog{}
	keepAll := func(*vdom.VNode) bool { return true }
	c := NewViewCache(log.release, WithExempt(keepAll))
	seed(c, 0)

	c.Set(RouteKey("/pages/p", 1), view("", false))

	assert.Equal(t, 4, c.Len())
	assert.Empty(t, log)
}

// TestViewCache_ReleaseOncePerEviction verifies that an evicted entry is
// released once no matter how many sweeps or explicit evictions follow.
func TestViewCache_ReleaseOncePerEviction(t *testing.T) {
	log := releaseLog{}
	c := NewViewCache(log.release)
	views := seed(c, 0)

	c.EvictForwardOf(RouteKey("/pages/p", 1), IsTabBarView)
	c.EvictForwardOf(RouteKey("/pages/p", 1), IsTabBarView)
	assert.False(t, c.Evict(RouteKey("/pages/p", 3)))
	assert.True(t, c.Evict(RouteKey("/pages/p", 1)))

	assert.Equal(t, releaseLog{views[1]: 1, views[2]: 1, views[3]: 1, views[4]: 1}, log)
}

// TestViewCache_ReentrantReleaseDuringSweep evicts a later entry from inside
// the release callback of an earlier one.
func TestViewCache_ReentrantReleaseDuringSweep(t *testing.T) {
	log := releaseLog{}
	var c *ViewCache
	var views map[int]*vdom.VNode
	c = NewViewCache(func(v *vdom.VNode) {
		log.release(v)
		if v == views[2] {
			c.Evict(RouteKey("/pages/p", 4))
		}
	})
	views = seed(c, 0)

	n := c.EvictForwardOf(RouteKey("/pages/p", 1), IsTabBarView)

	assert.Equal(t, 2, n)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, releaseLog{views[2]: 1, views[3]: 1, views[4]: 1}, log)
}

func TestViewCache_DeleteDoesNotRelease(t *testing.T) {
	log := releaseLog{}
	c := NewViewCache(log.release)
	seed(c, 0)

	c.Delete(RouteKey("/pages/p", 4))
	c.Delete("missing")

	assert.Equal(t, 3, c.Len())
	assert.Empty(t, log)
}

func TestViewCache_ForEach(t *testing.T) {
	c := NewViewCache(nil)
	seed(c, 0)

	var keys []string
	c.ForEach(func(key string, _ *vdom.VNode) { keys = append(keys, key) })

	assert.Len(t, keys, 4)
	assert.Equal(t, RouteKey("/pages/p", 1), keys[0])
}
