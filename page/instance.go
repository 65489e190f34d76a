package page

import "github.com/vcrobe/nojs-shell/runtime"

// NavigateType names the navigation that created a page.
type NavigateType string

const (
	NavigateTo   NavigateType = "navigateTo"
	RedirectTo   NavigateType = "redirectTo"
	ReLaunch     NavigateType = "reLaunch"
	SwitchTab    NavigateType = "switchTab"
	NavigateBack NavigateType = "navigateBack"
)

// State is the history state of a page.
type State struct {
	ID   int
	Type NavigateType
}

// Instance is a live page: a component bound to a route key, plus the flags
// the lifecycle bookkeeping relies on.
type Instance struct {
	ID        int
	Path      string
	FullPath  string
	RouteKey  string
	Query     map[string]string
	Type      NavigateType
	Meta      *Meta
	Component runtime.Component

	unloaded  bool
	active    bool
	unmounted bool
}

// NewInstance binds component to path under state.
func NewInstance(state State, path, fullPath string, query map[string]string, meta *Meta, component runtime.Component) *Instance {
	if meta == nil {
		meta = NewMeta(path)
	}
	return &Instance{
		ID:        state.ID,
		Path:      path,
		FullPath:  fullPath,
		RouteKey:  RouteKey(path, state.ID),
		Query:     query,
		Type:      state.Type,
		Meta:      meta,
		Component: component,
		active:    true,
	}
}

// IsTabBar reports whether the page is a tab-bar page.
func (p *Instance) IsTabBar() bool {
	return p.Meta != nil && p.Meta.IsTabBar
}

// IsActive reports whether a tab-bar page is the selected tab.
func (p *Instance) IsActive() bool {
	return p.active
}

// SetActive selects or deselects a tab-bar page.
func (p *Instance) SetActive(active bool) {
	p.active = active
}

// IsUnloaded reports whether the page has left the navigation stack.
func (p *Instance) IsUnloaded() bool {
	return p.unloaded
}

// IsUnmounted reports whether the rendering layer has torn the page down.
func (p *Instance) IsUnmounted() bool {
	return p.unmounted
}

// MarkUnmounted is called by the rendering layer once the page view is released.
func (p *Instance) MarkUnmounted() {
	p.unmounted = true
}

// ScopeID returns the style scope id of the page component.
func (p *Instance) ScopeID() string {
	return runtime.ScopeIDOf(p.Component)
}

// HasScrollHook reports whether the component listens to page scroll.
func (p *Instance) HasScrollHook() bool {
	_, ok := p.Component.(runtime.PageScroller)
	return ok
}

// HasReachBottomHook reports whether the component listens to reach-bottom.
func (p *Instance) HasReachBottomHook() bool {
	_, ok := p.Component.(runtime.ReachBottomer)
	return ok
}

func (p *Instance) unload() {
	p.unloaded = true
	if h, ok := p.Component.(runtime.Unloader); ok {
		runtime.Invoke("OnUnload", p.RouteKey, h.OnUnload)
	}
}
