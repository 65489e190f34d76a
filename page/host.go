package page

// Document is the host document the lifecycle hooks write to: a body element
// carrying scope and render-direction markers, one queryable content
// container and the page-level scroll and touch events.
type Document interface {
	Body() Element

	// QuerySelector returns the first matching element, or nil.
	QuerySelector(selector string) Element

	// SetStyleProperty sets a CSS custom property on the root element.
	SetStyleProperty(name, value string)

	// AddEventListener attaches fn to a document event and returns the
	// function that detaches it.
	AddEventListener(event string, fn Listener) (remove func())

	// Scroll reports the current scroll metrics of the page.
	Scroll() ScrollPosition
}

// Element is a host element.
type Element interface {
	Attribute(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)
}

// Event is a host event delivered to a Listener.
type Event interface {
	PreventDefault()
}

// Listener handles a host event.
type Listener func(Event)

// ScrollPosition describes the page scroll state in CSS pixels.
type ScrollPosition struct {
	ScrollTop    float64 // distance scrolled from the top
	ScrollHeight float64 // total height of the content
	ClientHeight float64 // height of the viewport
}

// Host event names.
const (
	EventScroll    = "scroll"
	EventTouchMove = "touchmove"
)
