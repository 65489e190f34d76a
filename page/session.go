package page

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/vcrobe/nojs-shell/console"
	"github.com/vcrobe/nojs-shell/runtime"
	"github.com/vcrobe/nojs-shell/scheduler"
)

// ContainerSelector selects the host element that wraps the page content.
const ContainerSelector = "page-body"

// Layout constants, in CSS pixels.
const (
	NavigationBarHeight = 44
	TabBarHeight        = 50
)

// Options configures a Session.
type Options struct {
	Document  Document
	Scheduler scheduler.Scheduler

	// Bridge receives page scroll events. Defaults to an EventBus over the
	// session registry.
	Bridge Bridge

	// Release tears down an evicted page view. Required by the rendering layer
	// to free the resources behind the view.
	Release ReleaseFunc

	// Exempt overrides the tab-bar exemption of back-navigation sweeps.
	Exempt ExemptFunc

	// FlexDirection is the default flex direction of the native render engine.
	FlexDirection string

	// StateID seeds the page id allocator.
	StateID int
}

// Session is the navigation state of one running application: the page id
// allocator, the live pages, the retained page views and the process-wide
// host slots. A Session starts empty and lives as long as the application.
type Session struct {
	ID uuid.UUID

	ids    *IDAllocator
	pages  *Registry
	views  *ViewCache
	scroll *ScrollBridge
	bus    *EventBus

	doc           Document
	sched         scheduler.Scheduler
	flexDirection string

	curScopeID string
}

// NewSession creates a session over the host document in opts.
func NewSession(opts Options) *Session {
	if opts.Scheduler == nil {
		opts.Scheduler = scheduler.NewQueue()
	}
	if opts.FlexDirection == "" {
		opts.FlexDirection = "column"
	}

	s := &Session{
		ID:            uuid.New(),
		ids:           NewIDAllocator(opts.StateID),
		doc:           opts.Document,
		sched:         opts.Scheduler,
		flexDirection: opts.FlexDirection,
	}

	cacheOpts := []CacheOption{WithAfterEvict(s.schedulePrune)}
	if opts.Exempt != nil {
		cacheOpts = append(cacheOpts, WithExempt(opts.Exempt))
	}
	s.views = NewViewCache(opts.Release, cacheOpts...)
	s.pages = NewRegistry(s.views)
	s.bus = NewEventBus(s.pages)

	bridge := opts.Bridge
	if bridge == nil {
		bridge = s.bus
	}
	s.scroll = NewScrollBridge(opts.Document, bridge, opts.Scheduler)

	console.Log("[Session] created", s.ID.String())
	return s
}

// Pages returns the live page registry.
func (s *Session) Pages() *Registry { return s.pages }

// Views returns the page view cache.
func (s *Session) Views() *ViewCache { return s.views }

// Scroll returns the scroll bridge.
func (s *Session) Scroll() *ScrollBridge { return s.scroll }

// Events returns the in-process event bus.
func (s *Session) Events() *EventBus { return s.bus }

// IDs returns the page id allocator.
func (s *Session) IDs() *IDAllocator { return s.ids }

// NewState returns the state of a page created by typ. A non-zero id is kept,
// which restores a page from browser history.
func (s *Session) NewState(typ NavigateType, id int) State {
	if id == 0 {
		id = s.ids.Next()
	}
	return State{ID: id, Type: typ}
}

// InitPage registers p as a live page.
func (s *Session) InitPage(p *Instance) {
	s.pages.Insert(p.RouteKey, p)
}

// RemovePage unloads the page under key. With evictView its retained view is
// released as well.
func (s *Session) RemovePage(key string, evictView bool) {
	s.pages.Remove(key, evictView)
}

// GetCurrentPages returns a snapshot of the pages the user can navigate
// between.
func (s *Session) GetCurrentPages() []*Instance {
	return s.pages.Visible()
}

// OnPageShow makes p the page that owns the host document.
func (s *Session) OnPageShow(p *Instance) {
	s.updateBodyScopeID(p)
	s.updateCSSVars(p.Meta)
	s.updatePageAttrs(p.Meta)
	s.scroll.Show(p)
}

// OnPageReady marks the page container with the page scope id once the page
// finished its first paint, then runs the component ready hook.
func (s *Session) OnPageReady(p *Instance) {
	if scopeID := p.ScopeID(); scopeID != "" {
		if el := s.doc.QuerySelector(ContainerSelector); el != nil {
			el.SetAttribute(scopeID, "")
		} else {
			console.Warn("[Session.OnPageReady]", ContainerSelector, "not found")
		}
	}
	if h, ok := p.Component.(runtime.Readier); ok {
		runtime.Invoke("OnReady", p.RouteKey, h.OnReady)
	}
}

// SetPageStyle updates the style of p. Changes of disableScroll and
// onReachBottomDistance take effect on the live listeners immediately.
func (s *Session) SetPageStyle(p *Instance, style Style) {
	p.Meta.ApplyStyle(style)
	if p == s.scroll.page {
		s.updateCSSVars(p.Meta)
	}
}

// GetPageStyle returns the current style of p.
func (s *Session) GetPageStyle(p *Instance) Style {
	return p.Meta.Style()
}

// Close detaches the host listeners of the session.
func (s *Session) Close() {
	s.scroll.Close()
}

func (s *Session) schedulePrune() {
	s.sched.NextTick(func() {
		if n := s.pages.Prune(); n > 0 {
			console.Log("[Session] pruned", n, "unmounted pages")
		}
	})
}

func (s *Session) updateBodyScopeID(p *Instance) {
	scopeID := p.ScopeID()
	body := s.doc.Body()
	if s.curScopeID != "" {
		body.RemoveAttribute(s.curScopeID)
	}
	if scopeID != "" {
		body.SetAttribute(scopeID, "")
	}
	s.curScopeID = scopeID
}

func (s *Session) updateCSSVars(meta *Meta) {
	windowTop := 0
	if meta.NavigationBar.Style != NavigationStyleCustom && !meta.Transparent() {
		windowTop = NavigationBarHeight
	}
	windowBottom := 0
	if meta.IsTabBar {
		windowBottom = TabBarHeight
	}
	s.doc.SetStyleProperty("--window-top", px(windowTop))
	s.doc.SetStyleProperty("--window-bottom", px(windowBottom))
	if meta.BackgroundColorContent != "" {
		s.doc.SetStyleProperty("--page-background-color", meta.BackgroundColorContent)
	}
}

func (s *Session) updatePageAttrs(meta *Meta) {
	body := s.doc.Body()
	dirKey := "native-dir-" + s.flexDirection
	if meta.NativeRender {
		body.SetAttribute("native", "")
		body.SetAttribute(dirKey, "")
		return
	}
	body.RemoveAttribute("native")
	body.RemoveAttribute(dirKey)
}

func px(n int) string {
	return strconv.Itoa(n) + "px"
}
