package page

import (
	"github.com/vcrobe/nojs-shell/console"
	"github.com/vcrobe/nojs-shell/signals"
)

// DefaultReachBottomDistance is the distance from the bottom edge, in CSS
// pixels, at which reach-bottom fires when a page does not configure one.
const DefaultReachBottomDistance = 50

// Navigation bar styles and types.
const (
	NavigationStyleDefault = "default"
	NavigationStyleCustom  = "custom"

	NavigationBarTransparent = "transparent"
)

// NavigationBar is the navigation bar configuration of a page.
type NavigationBar struct {
	BackgroundColor string
	TitleText       string
	TitleColor      string
	TitleImage      string
	Style           string // "default" or "custom"
	Type            string // "default" or "transparent"
}

// Meta is the route metadata of a page, supplied by the route provider. The
// fields that may change while the page is visible are signals so the scroll
// bridge can follow them.
type Meta struct {
	Route                  string
	IsEntry                bool
	IsTabBar               bool
	NativeRender           bool // rendered by the native layout engine
	NavigationBar          NavigationBar
	EnablePullDownRefresh  bool
	BackgroundColorContent string

	DisableScroll       *signals.Signal[bool]
	ReachBottomDistance *signals.Signal[int] // 0 means DefaultReachBottomDistance
}

// NewMeta creates a Meta for route with live fields initialized.
func NewMeta(route string) *Meta {
	return &Meta{
		Route:               route,
		NavigationBar:       NavigationBar{Style: NavigationStyleDefault},
		DisableScroll:       signals.NewSignal(false),
		ReachBottomDistance: signals.NewSignal(0),
	}
}

// ensureSignals initializes live fields of a Meta built as a struct literal.
func (m *Meta) ensureSignals() {
	if m.DisableScroll == nil {
		m.DisableScroll = signals.NewSignal(false)
	}
	if m.ReachBottomDistance == nil {
		m.ReachBottomDistance = signals.NewSignal(0)
	}
}

// Transparent reports whether the navigation bar is transparent.
func (m *Meta) Transparent() bool {
	return m.NavigationBar.Type == NavigationBarTransparent
}

// ScrollDisabled reports the current disableScroll flag.
func (m *Meta) ScrollDisabled() bool {
	return m.DisableScroll != nil && m.DisableScroll.Get()
}

// ReachBottom returns the effective reach-bottom distance.
func (m *Meta) ReachBottom() int {
	if m.ReachBottomDistance == nil {
		return DefaultReachBottomDistance
	}
	if d := m.ReachBottomDistance.Get(); d > 0 {
		return d
	}
	return DefaultReachBottomDistance
}

// Style is a page style as exchanged with page components, keyed by the
// page.json style names.
type Style map[string]any

// Style keys.
const (
	StyleNavigationBarBackgroundColor = "navigationBarBackgroundColor"
	StyleNavigationBarTextStyle       = "navigationBarTextStyle"
	StyleNavigationBarTitleText       = "navigationBarTitleText"
	StyleTitleImage                   = "titleImage"
	StyleNavigationStyle              = "navigationStyle"
	StyleDisableScroll                = "disableScroll"
	StyleEnablePullDownRefresh        = "enablePullDownRefresh"
	StyleOnReachBottomDistance        = "onReachBottomDistance"
	StyleBackgroundColorContent       = "backgroundColorContent"
)

// NormalizeTitleColor maps the "black"/"white" text styles to colors.
func NormalizeTitleColor(textStyle string) string {
	if textStyle == "black" {
		return "#000000"
	}
	return "#ffffff"
}

// ApplyStyle updates the meta from style. Unknown keys and values of the wrong
// type are skipped.
func (m *Meta) ApplyStyle(style Style) {
	m.ensureSignals()
	for key, value := range style {
		switch key {
		case StyleNavigationBarBackgroundColor:
			if s, ok := value.(string); ok {
				m.NavigationBar.BackgroundColor = s
			}
		case StyleNavigationBarTextStyle:
			s, ok := value.(string)
			if !ok {
				continue
			}
			if s == "black" || s == "white" {
				s = NormalizeTitleColor(s)
			}
			m.NavigationBar.TitleColor = s
		case StyleNavigationBarTitleText:
			if s, ok := value.(string); ok {
				m.NavigationBar.TitleText = s
			}
		case StyleTitleImage:
			if s, ok := value.(string); ok {
				m.NavigationBar.TitleImage = s
			}
		case StyleNavigationStyle:
			if s, ok := value.(string); ok {
				m.NavigationBar.Style = s
			}
		case StyleDisableScroll:
			if b, ok := value.(bool); ok && b != m.ScrollDisabled() {
				m.DisableScroll.Set(b)
			}
		case StyleEnablePullDownRefresh:
			if b, ok := value.(bool); ok {
				m.EnablePullDownRefresh = b
			}
		case StyleOnReachBottomDistance:
			if d, ok := toInt(value); ok && d != m.ReachBottomDistance.Get() {
				m.ReachBottomDistance.Set(d)
			}
		case StyleBackgroundColorContent:
			if s, ok := value.(string); ok {
				m.BackgroundColorContent = s
			}
		default:
			console.Log("[Meta.ApplyStyle] ignoring unknown style key", key)
		}
	}
}

// Style returns the current page style with defaults filled in.
func (m *Meta) Style() Style {
	navigationStyle := m.NavigationBar.Style
	if navigationStyle == "" {
		navigationStyle = NavigationStyleDefault
	}
	return Style{
		StyleNavigationBarBackgroundColor: m.NavigationBar.BackgroundColor,
		StyleNavigationBarTextStyle:       m.NavigationBar.TitleColor,
		StyleNavigationBarTitleText:       m.NavigationBar.TitleText,
		StyleTitleImage:                   m.NavigationBar.TitleImage,
		StyleNavigationStyle:              navigationStyle,
		StyleDisableScroll:                m.ScrollDisabled(),
		StyleEnablePullDownRefresh:        m.EnablePullDownRefresh,
		StyleOnReachBottomDistance:        m.ReachBottom(),
		StyleBackgroundColorContent:       m.BackgroundColorContent,
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
