package page

import (
	"math"

	"github.com/vcrobe/nojs-shell/scheduler"
)

// ScrollListenerOptions configures a ScrollListener. Nil callbacks are skipped.
type ScrollListenerOptions struct {
	OnPageScroll        func(scrollTop float64)
	OnReachBottom       func()
	ReachBottomDistance int
}

// ScrollListener turns host scroll events into page-scroll and reach-bottom
// notifications. Reach-bottom is checked at most once per frame and fires once
// per entry into the bottom zone; it fires again without leaving the zone only
// when the content grew by more than the distance (a page loaded more items).
type ScrollListener struct {
	doc   Document
	sched scheduler.Scheduler
	opts  ScrollListenerOptions

	ticking    bool
	inZone     bool
	lastHeight float64
	stopped    bool
}

// NewScrollListener creates a listener reading scroll metrics from doc.
func NewScrollListener(doc Document, sched scheduler.Scheduler, opts ScrollListenerOptions) *ScrollListener {
	if opts.ReachBottomDistance <= 0 {
		opts.ReachBottomDistance = DefaultReachBottomDistance
	}
	return &ScrollListener{doc: doc, sched: sched, opts: opts}
}

// Handle is the host scroll event handler.
func (l *ScrollListener) Handle(Event) {
	if l.stopped {
		return
	}
	if l.opts.OnPageScroll != nil {
		l.opts.OnPageScroll(l.doc.Scroll().ScrollTop)
	}
	if l.opts.OnReachBottom != nil && !l.ticking {
		l.ticking = true
		l.sched.NextFrame(l.checkReachBottom)
	}
}

// Distance returns the reach-bottom distance in use.
func (l *ScrollListener) Distance() int {
	return l.opts.ReachBottomDistance
}

func (l *ScrollListener) checkReachBottom() {
	l.ticking = false
	if l.stopped {
		return
	}
	pos := l.doc.Scroll()
	distance := float64(l.opts.ReachBottomDistance)
	isBottom := pos.ScrollTop > 0 &&
		pos.ScrollHeight > pos.ClientHeight &&
		pos.ScrollTop+pos.ClientHeight+distance >= pos.ScrollHeight
	if !isBottom {
		l.inZone = false
		return
	}
	grew := math.Abs(pos.ScrollHeight-l.lastHeight) > distance
	if l.inZone && !grew {
		return
	}
	l.inZone = true
	l.lastHeight = pos.ScrollHeight
	l.opts.OnReachBottom()
}

func (l *ScrollListener) stop() {
	l.stopped = true
}

// ScrollBridge owns the page-level touch-block and scroll listeners. At most
// one of each is attached, scoped to the page shown last.
type ScrollBridge struct {
	doc    Document
	bridge Bridge
	sched  scheduler.Scheduler

	page         *Instance
	listener     *ScrollListener
	removeScroll func()
	removeTouch  func()
	unwatch      []func()
	generation   int
}

// NewScrollBridge creates a bridge with nothing attached.
func NewScrollBridge(doc Document, bridge Bridge, sched scheduler.Scheduler) *ScrollBridge {
	return &ScrollBridge{doc: doc, bridge: bridge, sched: sched}
}

// Show re-establishes the listeners for p, replacing those of the previous
// page. The scroll listener is attached one frame later so that layout
// settling does not fire it. While p stays current, changes of its
// disableScroll flag or reach-bottom distance swap the listeners live.
func (b *ScrollBridge) Show(p *Instance) {
	b.stopWatching()
	b.page = p
	p.Meta.ensureSignals()
	b.install(p, true)

	b.unwatch = append(b.unwatch,
		p.Meta.ReachBottomDistance.Subscribe(func(int) {
			if b.page == p && p.HasReachBottomHook() {
				b.install(p, false)
			}
		}),
		p.Meta.DisableScroll.Subscribe(func(bool) {
			if b.page == p {
				b.install(p, false)
			}
		}),
	)
}

// Close detaches every listener and subscription.
func (b *ScrollBridge) Close() {
	b.stopWatching()
	b.detach()
	b.page = nil
}

// Listener returns the current scroll listener, attached or pending.
func (b *ScrollBridge) Listener() *ScrollListener {
	return b.listener
}

// ScrollAttached reports whether a scroll listener is attached to the document.
func (b *ScrollBridge) ScrollAttached() bool {
	return b.removeScroll != nil
}

// TouchBlocked reports whether the touch-block listener is attached.
func (b *ScrollBridge) TouchBlocked() bool {
	return b.removeTouch != nil
}

func (b *ScrollBridge) install(p *Instance, deferAttach bool) {
	b.detach()

	if p.Meta.ScrollDisabled() {
		b.removeTouch = b.doc.AddEventListener(EventTouchMove, blockTouch)
		return
	}

	scrollHook := p.HasScrollHook()
	reachBottomHook := p.HasReachBottomHook()
	transparent := p.Meta.Transparent()
	if !scrollHook && !reachBottomHook && !transparent {
		return
	}

	pageID := p.ID
	var opts ScrollListenerOptions
	if scrollHook || transparent {
		opts.OnPageScroll = func(scrollTop float64) {
			payload := ScrollPayload{ScrollTop: scrollTop}
			if scrollHook {
				b.bridge.PublishHandler(EventPageScroll, payload, pageID)
			}
			if transparent {
				b.bridge.Emit(PageScrollEvent(pageID), payload)
			}
		}
	}
	if reachBottomHook {
		opts.ReachBottomDistance = p.Meta.ReachBottom()
		opts.OnReachBottom = func() {
			b.bridge.PublishHandler(EventReachBottom, struct{}{}, pageID)
		}
	}

	l := NewScrollListener(b.doc, b.sched, opts)
	b.listener = l
	gen := b.generation
	attach := func() {
		if gen != b.generation {
			return
		}
		b.removeScroll = b.doc.AddEventListener(EventScroll, l.Handle)
	}
	if deferAttach {
		b.sched.NextFrame(attach)
		return
	}
	attach()
}

// detach removes both listeners and invalidates any pending attachment.
func (b *ScrollBridge) detach() {
	b.generation++
	if b.removeTouch != nil {
		b.removeTouch()
		b.removeTouch = nil
	}
	if b.removeScroll != nil {
		b.removeScroll()
		b.removeScroll = nil
	}
	if b.listener != nil {
		b.listener.stop()
		b.listener = nil
	}
}

func (b *ScrollBridge) stopWatching() {
	for _, fn := range b.unwatch {
		fn()
	}
	b.unwatch = nil
}

func blockTouch(e Event) {
	e.PreventDefault()
}
