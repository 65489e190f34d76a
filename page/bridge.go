package page

import (
	"strconv"

	"github.com/vcrobe/nojs-shell/console"
	"github.com/vcrobe/nojs-shell/runtime"
)

// Component-layer event names.
const (
	EventPageScroll  = "onPageScroll"
	EventReachBottom = "onReachBottom"
)

// Bridge delivers host notifications to the component layer. Delivery is
// fire-and-forget.
type Bridge interface {
	// PublishHandler delivers event to the page identified by pageID.
	PublishHandler(event string, payload any, pageID int)

	// Emit broadcasts event to its subscribers.
	Emit(event string, payload any)
}

// ScrollPayload is the payload of page scroll events.
type ScrollPayload struct {
	ScrollTop float64
}

// PageScrollEvent is the page-scoped event name used by the navigation bar
// opacity animation.
func PageScrollEvent(pageID int) string {
	return strconv.Itoa(pageID) + "." + EventPageScroll
}

// EventBus is the in-process Bridge. Published events are routed to the hooks
// of the registered page they target; emitted events go to subscribers.
type EventBus struct {
	pages  *Registry
	nextID int
	subs   map[string][]subscription
}

type subscription struct {
	id int
	fn func(payload any)
}

// Compile-time assertion to ensure EventBus implements the Bridge interface.
var _ Bridge = (*EventBus)(nil)

// NewEventBus creates a bus that resolves page ids against pages.
func NewEventBus(pages *Registry) *EventBus {
	return &EventBus{pages: pages, subs: make(map[string][]subscription)}
}

func (b *EventBus) PublishHandler(event string, payload any, pageID int) {
	inst, ok := b.pages.ByID(pageID)
	if !ok {
		console.Warn("[EventBus.PublishHandler] no live page with id", pageID, "for", event)
		return
	}
	switch event {
	case EventPageScroll:
		if h, ok := inst.Component.(runtime.PageScroller); ok {
			p, _ := payload.(ScrollPayload)
			runtime.Invoke("OnPageScroll", inst.RouteKey, func() { h.OnPageScroll(p.ScrollTop) })
		}
	case EventReachBottom:
		if h, ok := inst.Component.(runtime.ReachBottomer); ok {
			runtime.Invoke("OnReachBottom", inst.RouteKey, h.OnReachBottom)
		}
	}
	b.Emit(event, payload)
}

func (b *EventBus) Emit(event string, payload any) {
	subs := append([]subscription(nil), b.subs[event]...)
	for _, s := range subs {
		s.fn(payload)
	}
}

// Subscribe registers fn for event and returns the function that removes it.
func (b *EventBus) Subscribe(event string, fn func(payload any)) (unsubscribe func()) {
	b.nextID++
	id := b.nextID
	b.subs[event] = append(b.subs[event], subscription{id: id, fn: fn})
	return func() {
		subs := b.subs[event]
		for i, s := range subs {
			if s.id == id {
				b.subs[event] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
		if len(b.subs[event]) == 0 {
			delete(b.subs, event)
		}
	}
}
