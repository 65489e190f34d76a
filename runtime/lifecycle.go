package runtime

// Optional lifecycle interfaces. The framework discovers them with type
// assertions; a component implements only the hooks it cares about.

// Initializer is called once, before the first render.
type Initializer interface {
	OnInit()
}

// Cleaner is called when the component's view is torn down.
type Cleaner interface {
	OnDestroy()
}

// Loader receives the query of the URL that opened the page.
type Loader interface {
	OnLoad(query map[string]string)
}

// Shower is called every time the page becomes the visible page.
type Shower interface {
	OnShow()
}

// Hider is called when another page covers this one.
type Hider interface {
	OnHide()
}

// Readier is called once the page has finished its first paint.
type Readier interface {
	OnReady()
}

// Unloader is called when the page leaves the navigation stack.
type Unloader interface {
	OnUnload()
}

// PageScroller receives the page scroll offset.
type PageScroller interface {
	OnPageScroll(scrollTop float64)
}

// ReachBottomer is notified when the page is scrolled near its bottom edge.
type ReachBottomer interface {
	OnReachBottom()
}

// Scoped components isolate their styles with a scope id attribute.
type Scoped interface {
	ScopeID() string
}

// ScopeIDOf returns the style scope id of c, or "".
func ScopeIDOf(c Component) string {
	if s, ok := c.(Scoped); ok {
		return s.ScopeID()
	}
	return ""
}
