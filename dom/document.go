//go:build js || wasm

// Package dom implements the page host document over the browser DOM.
package dom

import (
	"syscall/js"

	"github.com/vcrobe/nojs-shell/page"
	"github.com/vcrobe/nojs-shell/vdom"
)

// Document is the browser page.Document.
type Document struct {
	window js.Value
	doc    js.Value
}

// Compile-time assertion to ensure Document implements the page.Document interface.
var _ page.Document = (*Document)(nil)

// New returns the document of the current window.
func New() *Document {
	window := js.Global()
	return &Document{window: window, doc: window.Get("document")}
}

func (d *Document) Body() page.Element {
	return &Element{v: d.doc.Get("body")}
}

func (d *Document) QuerySelector(selector string) page.Element {
	v := d.doc.Call("querySelector", selector)
	if !v.Truthy() {
		return nil
	}
	return &Element{v: v}
}

// SetStyleProperty sets a custom property on the root element.
func (d *Document) SetStyleProperty(name, value string) {
	d.doc.Get("documentElement").Get("style").Call("setProperty", name, value)
}

// AddEventListener listens on the window. Listeners are registered as
// non-passive so touch handlers can prevent scrolling.
func (d *Document) AddEventListener(event string, fn page.Listener) (remove func()) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(&Event{v: args[0]})
		}
		return nil
	})
	opts := map[string]any{"passive": false}
	d.window.Call("addEventListener", event, cb, opts)

	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		d.window.Call("removeEventListener", event, cb, opts)
		cb.Release()
	}
}

func (d *Document) Scroll() page.ScrollPosition {
	root := d.doc.Get("documentElement")
	return page.ScrollPosition{
		ScrollTop:    d.window.Get("pageYOffset").Float(),
		ScrollHeight: root.Get("scrollHeight").Float(),
		ClientHeight: d.window.Get("innerHeight").Float(),
	}
}

// Mount renders view into the element matched by selector.
func (d *Document) Mount(selector string, view *vdom.VNode) error {
	return vdom.MountSelector(selector, view)
}

// Element wraps a DOM element.
type Element struct {
	v js.Value
}

func (e *Element) Attribute(name string) (string, bool) {
	if !e.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.v.Call("getAttribute", name).String(), true
}

func (e *Element) SetAttribute(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e *Element) RemoveAttribute(name string) {
	e.v.Call("removeAttribute", name)
}

// Event wraps a DOM event.
type Event struct {
	v js.Value
}

func (e *Event) PreventDefault() {
	if e.v.Get("cancelable").Bool() {
		e.v.Call("preventDefault")
	}
}
