package router

import "github.com/vcrobe/nojs-shell/page"

// stateIDKey is the history.state field holding the page id.
const stateIDKey = "__id__"

// historyStep is the window.history call that mirrors a navigation.
type historyStep struct {
	method string // pushState, replaceState, go, or "" for none
	delta  int    // argument of go
}

// stepFor maps a navigation to its history call. Back navigations that came
// from a popstate need none; the browser already moved.
func stepFor(c Change, fromPopState bool) historyStep {
	switch c.Type {
	case page.NavigateTo:
		return historyStep{method: "pushState"}
	case page.NavigateBack:
		if fromPopState || c.Delta < 1 {
			return historyStep{}
		}
		return historyStep{method: "go", delta: -c.Delta}
	default:
		return historyStep{method: "replaceState"}
	}
}
