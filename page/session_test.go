package page_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-shell/console"
	"github.com/vcrobe/nojs-shell/headless"
	"github.com/vcrobe/nojs-shell/page"
	"github.com/vcrobe/nojs-shell/runtime"
	"github.com/vcrobe/nojs-shell/scheduler"
	"github.com/vcrobe/nojs-shell/vdom"
)

type basicPage struct {
	runtime.ComponentBase
	scope string
	ready int
}

func (p *basicPage) Render(runtime.Renderer) *vdom.VNode { return vdom.Div(nil) }
func (p *basicPage) ScopeID() string                     { return p.scope }
func (p *basicPage) OnReady()                            { p.ready++ }

type scrollPage struct {
	basicPage
	scrolls []float64
}

func (p *scrollPage) OnPageScroll(scrollTop float64) { p.scrolls = append(p.scrolls, scrollTop) }

type feedPage struct {
	scrollPage
	bottoms int
}

func (p *feedPage) OnReachBottom() { p.bottoms++ }

type published struct {
	event  string
	pageID int
}

// recordingBridge captures what the scroll bridge sends to the component layer.
type recordingBridge struct {
	published []published
	emitted   []string
}

func (b *recordingBridge) PublishHandler(event string, _ any, pageID int) {
	b.published = append(b.published, published{event, pageID})
}

func (b *recordingBridge) Emit(event string, _ any) {
	b.emitted = append(b.emitted, event)
}

type fixture struct {
	doc     *headless.Document
	queue   *scheduler.Queue
	session *page.Session
}

func newFixture(t *testing.T, bridge page.Bridge) *fixture {
	t.Helper()
	f := &fixture{doc: headless.New(), queue: scheduler.NewQueue()}
	f.session = page.NewSession(page.Options{
		Document:  f.doc,
		Scheduler: f.queue,
		Bridge:    bridge,
		Release:   func(*vdom.VNode) {},
	})
	return f
}

func (f *fixture) open(path string, c runtime.Component, configure func(*page.Meta)) *page.Instance {
	meta := page.NewMeta(path)
	if configure != nil {
		configure(meta)
	}
	p := page.NewInstance(f.session.NewState(page.NavigateTo, 0), path, path, nil, meta, c)
	f.session.InitPage(p)
	return p
}

func hasAttr(el page.Element, name string) bool {
	_, ok := el.Attribute(name)
	return ok
}

func TestSession_OnPageShowSwapsBodyScopeID(t *testing.T) {
	f := newFixture(t, nil)
	a := f.open("/pages/a", &basicPage{scope: "data-v-a"}, nil)
	b := f.open("/pages/b", &basicPage{}, nil)
	c := f.open("/pages/c", &basicPage{scope: "data-v-c"}, nil)
	body := f.doc.Body()

	f.session.OnPageShow(a)
	assert.True(t, hasAttr(body, "data-v-a"))

	f.session.OnPageShow(b)
	assert.False(t, hasAttr(body, "data-v-a"))

	f.session.OnPageShow(c)
	assert.True(t, hasAttr(body, "data-v-c"))
}

func TestSession_OnPageShowUpdatesHostState(t *testing.T) {
	f := newFixture(t, nil)
	tab := f.open("/pages/home", &basicPage{}, func(m *page.Meta) {
		m.IsTabBar = true
		m.NativeRender = true
		m.BackgroundColorContent = "#f8f8f8"
	})
	custom := f.open("/pages/full", &basicPage{}, func(m *page.Meta) {
		m.NavigationBar.Style = page.NavigationStyleCustom
	})

	f.session.OnPageShow(tab)
	assert.Equal(t, "44px", f.doc.StyleProperty("--window-top"))
	assert.Equal(t, "50px", f.doc.StyleProperty("--window-bottom"))
	assert.Equal(t, "#f8f8f8", f.doc.StyleProperty("--page-background-color"))
	assert.True(t, hasAttr(f.doc.Body(), "native"))
	assert.True(t, hasAttr(f.doc.Body(), "native-dir-column"))

	f.session.OnPageShow(custom)
	assert.Equal(t, "0px", f.doc.StyleProperty("--window-top"))
	assert.Equal(t, "0px", f.doc.StyleProperty("--window-bottom"))
	assert.False(t, hasAttr(f.doc.Body(), "native"))
}

func TestSession_OnPageReadyMarksContainer(t *testing.T) {
	f := newFixture(t, nil)
	c := &basicPage{scope: "data-v-list"}
	p := f.open("/pages/list", c, nil)

	f.session.OnPageReady(p)

	container := f.doc.QuerySelector(page.ContainerSelector)
	require.NotNil(t, container)
	assert.True(t, hasAttr(container, "data-v-list"))
	assert.Equal(t, 1, c.ready)
}

func TestSession_OnPageReadyWithoutContainerWarns(t *testing.T) {
	var buf bytes.Buffer
	console.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { console.SetLogger(nil) })

	doc, err := headless.Parse(bytes.NewBufferString(`<html><body></body></html>`))
	require.NoError(t, err)
	s := page.NewSession(page.Options{Document: doc})
	c := &basicPage{scope: "data-v-x"}
	p := page.NewInstance(s.NewState(page.NavigateTo, 0), "/pages/x", "/pages/x", nil, nil, c)

	assert.NotPanics(t, func() { s.OnPageReady(p) })
	assert.Contains(t, buf.String(), "page-body not found")
	assert.Equal(t, 1, c.ready)
}

func TestSession_RemovePageAndDeferredPrune(t *testing.T) {
	f := newFixture(t, nil)
	var released []*vdom.VNode
	f.session = page.NewSession(page.Options{
		Document:  f.doc,
		Scheduler: f.queue,
		Release:   func(v *vdom.VNode) { released = append(released, v) },
	})
	pages := make([]*page.Instance, 0, 3)
	for _, path := range []string{"/pages/a", "/pages/b", "/pages/c"} {
		p := f.open(path, &basicPage{}, nil)
		v := vdom.Div(nil)
		v.Key = p.RouteKey
		f.session.Views().Set(p.RouteKey, v)
		pages = append(pages, p)
	}
	// The rendering layer reports page c unmounted once its view is released.
	pages[2].MarkUnmounted()

	back, _ := f.session.Views().Get(pages[0].RouteKey)
	f.session.Views().Set(pages[0].RouteKey, back)

	assert.Len(t, released, 2)
	assert.Equal(t, 3, f.session.Pages().Len(), "prune is deferred to the next tick")
	f.queue.RunTicks()
	assert.Equal(t, 2, f.session.Pages().Len())

	f.session.RemovePage(pages[1].RouteKey, true)
	assert.Len(t, released, 2, "view of b was already evicted")
	assert.Equal(t, []*page.Instance{pages[0]}, f.session.GetCurrentPages())
}

func TestSession_PageStyle(t *testing.T) {
	f := newFixture(t, nil)
	p := f.open("/pages/a", &basicPage{}, nil)

	f.session.SetPageStyle(p, page.Style{
		page.StyleNavigationBarTextStyle: "black",
		page.StyleNavigationBarTitleText: "Detail",
		page.StyleOnReachBottomDistance:  float64(120),
		page.StyleDisableScroll:          true,
		"unknownKey":                     1,
	})

	style := f.session.GetPageStyle(p)
	assert.Equal(t, "#000000", style[page.StyleNavigationBarTextStyle])
	assert.Equal(t, "Detail", style[page.StyleNavigationBarTitleText])
	assert.Equal(t, 120, style[page.StyleOnReachBottomDistance])
	assert.Equal(t, true, style[page.StyleDisableScroll])
	assert.Equal(t, page.NavigationStyleDefault, style[page.StyleNavigationStyle])
}

func TestSession_GetCurrentPagesIsSnapshot(t *testing.T) {
	f := newFixture(t, nil)
	a := f.open("/pages/a", &basicPage{}, nil)

	pages := f.session.GetCurrentPages()
	f.open("/pages/b", &basicPage{}, nil)

	assert.Equal(t, []*page.Instance{a}, pages)
	assert.Len(t, f.session.GetCurrentPages(), 2)
}

func TestEventBus_RoutesToPageHooks(t *testing.T) {
	f := newFixture(t, nil)
	c := &feedPage{}
	p := f.open("/pages/feed", c, nil)
	var emitted []any
	unsubscribe := f.session.Events().Subscribe(page.PageScrollEvent(p.ID), func(payload any) {
		emitted = append(emitted, payload)
	})

	f.session.Events().PublishHandler(page.EventPageScroll, page.ScrollPayload{ScrollTop: 30}, p.ID)
	f.session.Events().PublishHandler(page.EventReachBottom, struct{}{}, p.ID)
	f.session.Events().PublishHandler(page.EventReachBottom, struct{}{}, p.ID+100)
	f.session.Events().Emit(page.PageScrollEvent(p.ID), page.ScrollPayload{ScrollTop: 30})
	unsubscribe()
	f.session.Events().Emit(page.PageScrollEvent(p.ID), page.ScrollPayload{ScrollTop: 40})

	assert.Equal(t, []float64{30}, c.scrolls)
	assert.Equal(t, 1, c.bottoms)
	assert.Equal(t, []any{page.ScrollPayload{ScrollTop: 30}}, emitted)
}
