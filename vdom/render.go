//go:build js || wasm

package vdom

import (
	"fmt"
	"syscall/js"

	"github.com/vcrobe/nojs-shell/console"
)

// handlers holds the click callbacks of the tree mounted under each selector.
var handlers = map[string][]js.Func{}

// MountSelector replaces the children of the first element matching the CSS
// selector with the rendered node. Click callbacks of the previous tree are
// released.
func MountSelector(selector string, n *VNode) error {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return fmt.Errorf("document is not available")
	}
	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		return fmt.Errorf("mount element not found for selector: %s", selector)
	}

	for _, cb := range handlers[selector] {
		cb.Release()
	}
	handlers[selector] = nil
	mount.Call("replaceChildren")

	if n == nil {
		return nil
	}
	var funcs []js.Func
	el := createElement(doc, n, &funcs)
	handlers[selector] = funcs
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
	return nil
}

func createElement(doc js.Value, n *VNode, funcs *[]js.Func) js.Value {
	if n == nil || n.Tag == "" {
		return js.Undefined()
	}
	el := doc.Call("createElement", n.Tag)
	for k, v := range n.Attributes {
		el.Call("setAttribute", k, fmt.Sprint(v))
	}
	if n.Key != "" {
		el.Call("setAttribute", "data-key", n.Key)
	}

	switch {
	case n.Tag == "input":
		if n.Content != "" {
			el.Set("value", n.Content)
		}
	case n.Content != "":
		el.Set("textContent", n.Content)
	default:
		for _, child := range n.Children {
			childEl := createElement(doc, child, funcs)
			if childEl.Truthy() {
				el.Call("appendChild", childEl)
			}
		}
	}

	if n.OnClick != nil {
		onClick := n.OnClick
		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			onClick()
			return nil
		})
		el.Call("addEventListener", "click", cb)
		*funcs = append(*funcs, cb)
	}
	if !el.Truthy() {
		console.Error("[vdom.createElement] cannot create element", n.Tag)
	}
	return el
}
