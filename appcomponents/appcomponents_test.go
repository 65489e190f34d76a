package appcomponents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-shell/headless"
	"github.com/vcrobe/nojs-shell/manifest"
	"github.com/vcrobe/nojs-shell/page"
	"github.com/vcrobe/nojs-shell/router"
	"github.com/vcrobe/nojs-shell/scheduler"
)

type demo struct {
	nav   *router.Navigator
	doc   *headless.Document
	queue *scheduler.Queue
}

func newDemo(t *testing.T) *demo {
	t.Helper()
	m, err := manifest.Parse(Manifest, manifest.FormatTOML)
	require.NoError(t, err)

	d := &demo{doc: headless.New(), queue: scheduler.NewQueue()}
	d.nav = router.New(router.Options{
		Session: page.Options{Document: d.doc, Scheduler: d.queue, FlexDirection: m.FlexDirection},
		Meta:    m.Meta,
		Mounter: d.doc,
	})
	Register(d.nav)
	require.NoError(t, d.nav.Start(m.EntryPagePath, 0))
	d.queue.Flush()
	return d
}

// TestDemo_FeedLoadsMoreOnReachBottom drives the feed with the distance from
// the manifest.
func TestDemo_FeedLoadsMoreOnReachBottom(t *testing.T) {
	// Arrange
	d := newDemo(t)
	home := d.nav.Current().Component.(*HomePage)
	home.OpenFeed()
	d.queue.Flush()

	p := d.nav.Current()
	feed, ok := p.Component.(*FeedPage)
	require.True(t, ok)
	assert.Equal(t, "go", feed.Topic)
	assert.Equal(t, 80, p.Meta.ReachBottom())
	require.NotNil(t, d.nav.Session().Scroll().Listener())

	// Act: 930 + 600 + 80 reaches the 1600px tall content
	d.doc.SetViewport(1600, 600)
	d.doc.ScrollTo(930)
	d.queue.Flush()

	// Assert
	assert.Equal(t, 930.0, feed.ScrollTop)
	assert.Equal(t, 2, feed.Loads)
	assert.Len(t, feed.Items, 2*FeedPageSize)
	assert.Contains(t, d.doc.Render(), "go #39")
}

func TestDemo_DetailAndBack(t *testing.T) {
	d := newDemo(t)
	d.nav.Current().Component.(*HomePage).OpenFeed()
	d.nav.Current().Component.(*FeedPage).OpenItem(3)
	d.queue.Flush()

	p := d.nav.Current()
	detail, ok := p.Component.(*DetailPage)
	require.True(t, ok)
	assert.Equal(t, 3, detail.ID)
	assert.True(t, p.Meta.Transparent())
	assert.Equal(t, "0px", d.doc.StyleProperty("--window-top"))

	require.NoError(t, d.nav.NavigateBack(2))
	d.queue.Flush()

	assert.True(t, detail.Unloaded)
	assert.Equal(t, 2, d.nav.Current().Component.(*HomePage).Shows)
	assert.Equal(t, "44px", d.doc.StyleProperty("--window-top"))
	assert.Equal(t, "50px", d.doc.StyleProperty("--window-bottom"))
	assert.Equal(t, 1, d.nav.Session().Views().Len())
}

func TestDemo_Tabs(t *testing.T) {
	d := newDemo(t)

	require.NoError(t, d.nav.SwitchTab("/pages/mine"))
	require.NoError(t, d.nav.SwitchTab("/pages/home"))
	d.queue.Flush()

	assert.Len(t, d.nav.CurrentPages(), 1)
	assert.Equal(t, 2, d.nav.Session().Pages().Len())
	assert.Equal(t, d.nav.Current().RouteKey, d.nav.Session().Pages().Keys()[0])
}
