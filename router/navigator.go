// Package router drives the page lifecycle from navigations: it keeps the page
// stack and the tab pages, renders page components and feeds their views to
// the view cache of a page.Session.
package router

import (
	"fmt"

	"github.com/vcrobe/nojs-shell/console"
	"github.com/vcrobe/nojs-shell/page"
	"github.com/vcrobe/nojs-shell/runtime"
	"github.com/vcrobe/nojs-shell/scheduler"
	"github.com/vcrobe/nojs-shell/vdom"
)

// Mounter replaces the content of the element matched by selector with view.
type Mounter interface {
	Mount(selector string, view *vdom.VNode) error
}

// MetaFunc returns the route metadata of the route registered with pattern.
type MetaFunc func(pattern string) *page.Meta

// Options configures a Navigator.
type Options struct {
	// Session options. Release is owned by the Navigator and is overwritten.
	Session page.Options

	// Meta resolves route metadata. Defaults to page.NewMeta.
	Meta MetaFunc

	// Mounter receives every rendered page view. Nil skips mounting.
	Mounter Mounter

	// OnChange runs after every successful navigation.
	OnChange func(c Change)
}

// Change describes a completed navigation.
type Change struct {
	Page  *page.Instance // the page that is now current
	Type  page.NavigateType
	Delta int // pages closed by a back navigation
}

// Navigator is the rendering and keep-alive layer of the page lifecycle.
// It runs on the event loop; none of its methods are safe for concurrent use.
type Navigator struct {
	session  *page.Session
	sched    scheduler.Scheduler
	meta     MetaFunc
	mounter  Mounter
	onChange func(Change)

	routes []route
	stack  []*page.Instance
	tabs   map[string]*page.Instance
	byKey  map[string]*page.Instance
}

// Compile-time assertion to ensure Navigator implements the runtime.Renderer interface.
var _ runtime.Renderer = (*Navigator)(nil)

// New creates a Navigator and the page session it drives.
func New(opts Options) *Navigator {
	if opts.Session.Scheduler == nil {
		opts.Session.Scheduler = scheduler.NewQueue()
	}
	if opts.Meta == nil {
		opts.Meta = page.NewMeta
	}
	n := &Navigator{
		sched:    opts.Session.Scheduler,
		meta:     opts.Meta,
		mounter:  opts.Mounter,
		onChange: opts.OnChange,
		tabs:     make(map[string]*page.Instance),
		byKey:    make(map[string]*page.Instance),
	}
	opts.Session.Release = n.release
	n.session = page.NewSession(opts.Session)
	return n
}

// Session returns the page session.
func (n *Navigator) Session() *page.Session { return n.session }

// Handle registers the component factory for a path pattern. Patterns are
// matched in registration order.
func (n *Navigator) Handle(pattern string, factory runtime.ComponentFactory) {
	n.routes = append(n.routes, route{pattern: pattern, factory: factory})
}

// Start opens the first page. A tab-bar page is opened as the selected tab.
// A non-zero id restores the page id stored in browser history.
func (n *Navigator) Start(rawURL string, id int) error {
	t, err := parseTarget(rawURL)
	if err != nil {
		return navErr("start", rawURL, err)
	}
	r, ok := n.match(t.path)
	if !ok {
		return navErr("start", rawURL, ErrNoRoute)
	}
	typ := page.ReLaunch
	meta := n.meta(r.pattern)
	if meta.IsTabBar {
		typ = page.SwitchTab
	}
	p := n.open(n.session.NewState(typ, id), t, r, meta)
	n.stack = []*page.Instance{p}
	n.show(p)
	n.changed(Change{Page: p, Type: typ})
	return nil
}

// NavigateTo keeps the current page and opens rawURL on top of it.
func (n *Navigator) NavigateTo(rawURL string) error {
	t, r, meta, err := n.resolve(page.NavigateTo, rawURL)
	if err != nil {
		return err
	}
	if meta.IsTabBar {
		return navErr(string(page.NavigateTo), rawURL, ErrTabBarPage)
	}
	n.hideCurrent()
	p := n.open(n.session.NewState(page.NavigateTo, 0), t, r, meta)
	n.stack = append(n.stack, p)
	n.show(p)
	n.changed(Change{Page: p, Type: page.NavigateTo})
	return nil
}

// RedirectTo closes the current page and opens rawURL in its place.
func (n *Navigator) RedirectTo(rawURL string) error {
	t, r, meta, err := n.resolve(page.RedirectTo, rawURL)
	if err != nil {
		return err
	}
	if meta.IsTabBar {
		return navErr(string(page.RedirectTo), rawURL, ErrTabBarPage)
	}
	p := n.open(n.session.NewState(page.RedirectTo, 0), t, r, meta)
	if cur := n.Current(); cur != nil {
		n.stack = n.stack[:len(n.stack)-1]
		n.close(cur)
	}
	n.stack = append(n.stack, p)
	n.show(p)
	n.changed(Change{Page: p, Type: page.RedirectTo})
	return nil
}

// NavigateBack closes delta pages and shows the page below them. A delta
// larger than the stack stops at the first page.
func (n *Navigator) NavigateBack(delta int) error {
	if delta < 1 {
		delta = 1
	}
	if len(n.stack) <= 1 {
		return navErr(string(page.NavigateBack), "", ErrEmptyStack)
	}
	if delta > len(n.stack)-1 {
		delta = len(n.stack) - 1
	}

	popped := n.stack[len(n.stack)-delta:]
	n.stack = n.stack[:len(n.stack)-delta]
	for i := len(popped) - 1; i >= 0; i-- {
		// Views are released by the forward sweep of the page shown below.
		n.session.RemovePage(popped[i].RouteKey, false)
	}

	p := n.Current()
	n.show(p)
	n.changed(Change{Page: p, Type: page.NavigateBack, Delta: delta})
	return nil
}

// SwitchTab closes every page that is not a tab-bar page and selects the tab
// at path. Tab pages stay cached while another tab is selected.
func (n *Navigator) SwitchTab(path string) error {
	t, r, meta, err := n.resolve(page.SwitchTab, path)
	if err != nil {
		return err
	}
	if !meta.IsTabBar {
		return navErr(string(page.SwitchTab), path, ErrNotTabBar)
	}
	if cur := n.Current(); cur != nil && cur.IsTabBar() && cur.Path == t.path && len(n.stack) == 1 {
		return nil
	}

	for i := len(n.stack) - 1; i >= 0; i-- {
		p := n.stack[i]
		if p.IsTabBar() {
			if p.Path != t.path {
				p.SetActive(false)
				n.hook(p, "OnHide", func(c runtime.Component) {
					if h, ok := c.(runtime.Hider); ok {
						h.OnHide()
					}
				})
			}
			continue
		}
		n.close(p)
	}

	p, ok := n.tabs[t.path]
	if ok {
		p.SetActive(true)
	} else {
		p = n.open(n.session.NewState(page.SwitchTab, 0), t, r, meta)
	}
	n.stack = []*page.Instance{p}
	n.show(p)
	n.changed(Change{Page: p, Type: page.SwitchTab})
	return nil
}

// ReLaunch closes every page, tab pages included, and opens rawURL.
func (n *Navigator) ReLaunch(rawURL string) error {
	t, r, meta, err := n.resolve(page.ReLaunch, rawURL)
	if err != nil {
		return err
	}

	for _, key := range n.session.Pages().Keys() {
		if p, ok := n.session.Pages().Get(key); ok {
			n.close(p)
		}
	}
	n.stack = nil

	p := n.open(n.session.NewState(page.ReLaunch, 0), t, r, meta)
	n.stack = []*page.Instance{p}
	n.show(p)
	n.changed(Change{Page: p, Type: page.ReLaunch})
	return nil
}

// Current returns the page on top of the stack, or nil before Start.
func (n *Navigator) Current() *page.Instance {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// CurrentPages returns the pages the user can navigate between.
func (n *Navigator) CurrentPages() []*page.Instance {
	return n.session.GetCurrentPages()
}

// Depth returns the number of pages on the stack.
func (n *Navigator) Depth() int {
	return len(n.stack)
}

// RenderChild renders a child component with this navigator as its renderer.
func (n *Navigator) RenderChild(key string, child runtime.Component) *vdom.VNode {
	if child == nil {
		console.Warn("[Navigator.RenderChild] nil component for key", key)
		return nil
	}
	child.SetRenderer(n)
	view := child.Render(n)
	if view != nil && view.Key == "" {
		view.Key = key
	}
	return view
}

// ReRender renders the current page again and replaces its cached view.
func (n *Navigator) ReRender() {
	p := n.Current()
	if p == nil {
		console.Warn("[Navigator.ReRender] no current page")
		return
	}
	n.mount(p, n.render(p))
}

// Navigate implements runtime.Renderer with NavigateTo.
func (n *Navigator) Navigate(path string) error {
	return n.NavigateTo(path)
}

func (n *Navigator) resolve(op page.NavigateType, rawURL string) (target, route, *page.Meta, error) {
	t, err := parseTarget(rawURL)
	if err != nil {
		return target{}, route{}, nil, navErr(string(op), rawURL, err)
	}
	r, ok := n.match(t.path)
	if !ok {
		return target{}, route{}, nil, navErr(string(op), rawURL, ErrNoRoute)
	}
	return t, r, n.meta(r.pattern), nil
}

func (n *Navigator) match(path string) (route, bool) {
	for _, r := range n.routes {
		if matchesPattern(r.pattern, path) {
			return r, true
		}
	}
	return route{}, false
}

// open creates and registers the page, then runs its load hook.
func (n *Navigator) open(state page.State, t target, r route, meta *page.Meta) *page.Instance {
	c := r.factory(extractParams(r.pattern, t.path))
	c.SetRenderer(n)
	p := page.NewInstance(state, t.path, t.fullPath, t.query, meta, c)
	n.session.InitPage(p)
	n.byKey[p.RouteKey] = p
	if p.IsTabBar() {
		n.tabs[p.Path] = p
	}
	console.Log("[Navigator.open]", state.Type, p.RouteKey)

	if h, ok := c.(runtime.Initializer); ok {
		runtime.Invoke("OnInit", p.RouteKey, h.OnInit)
	}
	if h, ok := c.(runtime.Loader); ok {
		runtime.Invoke("OnLoad", p.RouteKey, func() { h.OnLoad(p.Query) })
	}

	n.sched.NextFrame(func() {
		if p.IsUnloaded() {
			return
		}
		n.session.OnPageReady(p)
	})
	return p
}

// show makes p the visible page: its view is cached under its route key, which
// sweeps the views of the pages above it, then mounted.
func (n *Navigator) show(p *page.Instance) {
	view, ok := n.session.Views().Get(p.RouteKey)
	if !ok {
		view = n.render(p)
	}
	n.mount(p, view)
	n.hook(p, "OnShow", func(c runtime.Component) {
		if h, ok := c.(runtime.Shower); ok {
			h.OnShow()
		}
	})
	n.session.OnPageShow(p)
}

func (n *Navigator) render(p *page.Instance) *vdom.VNode {
	view := p.Component.Render(n)
	if view == nil {
		view = vdom.Div(nil)
	}
	view.Key = p.RouteKey
	if p.IsTabBar() {
		view.SetProp(vdom.PropType, vdom.TypeTabBar)
	}
	return view
}

func (n *Navigator) mount(p *page.Instance, view *vdom.VNode) {
	n.session.Views().Set(p.RouteKey, view)
	if n.mounter == nil {
		return
	}
	if err := n.mounter.Mount(page.ContainerSelector, view); err != nil {
		console.Error("[Navigator.mount]", p.RouteKey, err.Error())
	}
}

func (n *Navigator) hideCurrent() {
	if cur := n.Current(); cur != nil {
		n.hook(cur, "OnHide", func(c runtime.Component) {
			if h, ok := c.(runtime.Hider); ok {
				h.OnHide()
			}
		})
	}
}

// close unloads p and releases its view.
func (n *Navigator) close(p *page.Instance) {
	if p.IsTabBar() {
		delete(n.tabs, p.Path)
	}
	n.session.RemovePage(p.RouteKey, true)
	if !p.IsUnmounted() {
		// The view was never cached; tear the component down here.
		n.destroy(p)
	}
}

// release is the view cache teardown: the page behind view is unmounted.
func (n *Navigator) release(view *vdom.VNode) {
	p, ok := n.byKey[view.Key]
	if !ok {
		console.Warn("[Navigator.release] no page for view", view.Key)
		return
	}
	n.destroy(p)
}

func (n *Navigator) destroy(p *page.Instance) {
	delete(n.byKey, p.RouteKey)
	p.MarkUnmounted()
	n.hook(p, "OnDestroy", func(c runtime.Component) {
		if h, ok := c.(runtime.Cleaner); ok {
			h.OnDestroy()
		}
	})
}

func (n *Navigator) hook(p *page.Instance, name string, call func(runtime.Component)) {
	runtime.Invoke(name, p.RouteKey, func() { call(p.Component) })
}

func (n *Navigator) changed(c Change) {
	console.Log(fmt.Sprintf("[Navigator] %s -> %s (%d pages)", c.Type, c.Page.RouteKey, len(n.stack)))
	if n.onChange != nil {
		n.onChange(c)
	}
}
