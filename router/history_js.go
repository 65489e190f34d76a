//go:build js || wasm

package router

import (
	"syscall/js"

	"github.com/vcrobe/nojs-shell/console"
)

// History mirrors navigations into the browser history and turns popstate
// events into back navigations.
type History struct {
	nav      *Navigator
	popstate js.Func
	popping  bool
	ignore   int
}

// BindHistory attaches the navigator to window.history.
func BindHistory(n *Navigator) *History {
	h := &History{nav: n}
	prev := n.onChange
	n.onChange = func(c Change) {
		h.record(c)
		if prev != nil {
			prev(c)
		}
	}

	h.popstate = js.FuncOf(func(this js.Value, args []js.Value) any {
		var state js.Value
		if len(args) > 0 {
			state = args[0].Get("state")
		}
		h.onPopState(state)
		return nil
	})
	js.Global().Call("addEventListener", "popstate", h.popstate)
	console.Log("[History] popstate listener registered")
	return h
}

func (h *History) record(c Change) {
	history := js.Global().Get("history")
	state := map[string]any{stateIDKey: c.Page.ID}
	step := stepFor(c, h.popping)
	switch step.method {
	case "pushState", "replaceState":
		history.Call(step.method, state, "", c.Page.FullPath)
	case "go":
		// go(-n) fires a single popstate, which is ours.
		h.ignore++
		history.Call("go", step.delta)
	}
}

func (h *History) onPopState(state js.Value) {
	if h.ignore > 0 {
		h.ignore--
		return
	}
	cur := h.nav.Current()
	if cur == nil {
		return
	}

	id := 0
	if state.Truthy() && state.Get(stateIDKey).Truthy() {
		id = state.Get(stateIDKey).Int()
	}

	delta := 0
	for _, p := range h.nav.stack {
		if p.ID > id {
			delta++
		}
	}
	if id == 0 || delta == 0 {
		loc := js.Global().Get("location")
		url := loc.Get("pathname").String() + loc.Get("search").String()
		console.Warn("[History.onPopState] cannot restore forward page", url)
		return
	}

	h.popping = true
	defer func() { h.popping = false }()
	if err := h.nav.NavigateBack(delta); err != nil {
		console.Error("[History.onPopState]", err.Error())
	}
}

// Release removes the popstate listener.
func (h *History) Release() {
	js.Global().Call("removeEventListener", "popstate", h.popstate)
	h.popstate.Release()
	console.Log("[History] popstate listener cleaned up")
}
