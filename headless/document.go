// Package headless implements the page host document over an in-memory HTML
// tree. It backs native builds and tests, and renders snapshots of the shell.
package headless

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/vcrobe/nojs-shell/page"
	"github.com/vcrobe/nojs-shell/vdom"
)

// Shell is the default application shell document.
const Shell = `<!DOCTYPE html><html><head></head><body><page-body></page-body></body></html>`

// Document is an in-memory page.Document.
type Document struct {
	root   *html.Node
	html   *html.Node
	body   *html.Node
	style  map[string]string
	scroll page.ScrollPosition

	nextID    int
	listeners map[string][]listener
}

type listener struct {
	id int
	fn page.Listener
}

// Compile-time assertion to ensure Document implements the page.Document interface.
var _ page.Document = (*Document)(nil)

// New parses the default shell.
func New() *Document {
	doc, err := Parse(strings.NewReader(Shell))
	if err != nil {
		panic(err)
	}
	return doc
}

// Parse builds a document from an HTML shell.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse shell: %w", err)
	}
	d := &Document{
		root:      root,
		style:     make(map[string]string),
		listeners: make(map[string][]listener),
	}
	d.html = find(root, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "html" })
	d.body = find(root, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "body" })
	if d.html == nil || d.body == nil {
		return nil, fmt.Errorf("parse shell: missing html or body element")
	}
	return d, nil
}

func (d *Document) Body() page.Element {
	return &Element{node: d.body}
}

// QuerySelector supports tag ("page-body") and id ("#app") selectors.
func (d *Document) QuerySelector(selector string) page.Element {
	n := d.query(selector)
	if n == nil {
		return nil
	}
	return &Element{node: n}
}

func (d *Document) query(selector string) *html.Node {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return nil
	}
	if id, ok := strings.CutPrefix(selector, "#"); ok {
		return find(d.root, func(n *html.Node) bool {
			v, ok := attr(n, "id")
			return n.Type == html.ElementNode && ok && v == id
		})
	}
	return find(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == selector
	})
}

// SetStyleProperty sets a custom property in the style attribute of <html>.
func (d *Document) SetStyleProperty(name, value string) {
	d.style[name] = value
	names := make([]string, 0, len(d.style))
	for k := range d.style {
		names = append(names, k)
	}
	sort.Strings(names)
	decls := make([]string, 0, len(names))
	for _, k := range names {
		decls = append(decls, k+": "+d.style[k])
	}
	setAttr(d.html, "style", strings.Join(decls, "; "))
}

// StyleProperty returns a custom property set with SetStyleProperty.
func (d *Document) StyleProperty(name string) string {
	return d.style[name]
}

func (d *Document) AddEventListener(event string, fn page.Listener) (remove func()) {
	d.nextID++
	id := d.nextID
	d.listeners[event] = append(d.listeners[event], listener{id: id, fn: fn})
	return func() {
		ls := d.listeners[event]
		for i, l := range ls {
			if l.id == id {
				d.listeners[event] = append(ls[:i], ls[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of listeners attached to event.
func (d *Document) ListenerCount(event string) int {
	return len(d.listeners[event])
}

// Dispatch delivers event to its listeners and reports whether one of them
// prevented the default action.
func (d *Document) Dispatch(event string) bool {
	e := &Event{Type: event}
	ls := append([]listener(nil), d.listeners[event]...)
	for _, l := range ls {
		l.fn(e)
	}
	return e.DefaultPrevented
}

func (d *Document) Scroll() page.ScrollPosition {
	return d.scroll
}

// SetViewport sets the content and viewport heights.
func (d *Document) SetViewport(scrollHeight, clientHeight float64) {
	d.scroll.ScrollHeight = scrollHeight
	d.scroll.ClientHeight = clientHeight
}

// ScrollTo moves the scroll offset and dispatches a scroll event.
func (d *Document) ScrollTo(top float64) {
	d.scroll.ScrollTop = top
	d.Dispatch(page.EventScroll)
}

// Mount replaces the children of the element matched by selector with view.
func (d *Document) Mount(selector string, view *vdom.VNode) error {
	mount := d.query(selector)
	if mount == nil {
		return fmt.Errorf("mount element not found for selector: %s", selector)
	}
	for c := mount.FirstChild; c != nil; c = mount.FirstChild {
		mount.RemoveChild(c)
	}
	if view != nil {
		mount.AppendChild(toNode(view))
	}
	return nil
}

// Render serializes the document.
func (d *Document) Render() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return ""
	}
	return buf.String()
}

// Event is a headless page.Event.
type Event struct {
	Type             string
	DefaultPrevented bool
}

func (e *Event) PreventDefault() {
	e.DefaultPrevented = true
}

// Element is a headless page.Element.
type Element struct {
	node *html.Node
}

func (e *Element) Attribute(name string) (string, bool) {
	return attr(e.node, name)
}

func (e *Element) SetAttribute(name, value string) {
	setAttr(e.node, name, value)
}

func (e *Element) RemoveAttribute(name string) {
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Key != name {
			attrs = append(attrs, a)
		}
	}
	e.node.Attr = attrs
}

func toNode(v *vdom.VNode) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: v.Tag}
	keys := make([]string, 0, len(v.Attributes))
	for k := range v.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		n.Attr = append(n.Attr, html.Attribute{Key: k, Val: fmt.Sprint(v.Attributes[k])})
	}
	if v.Key != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "data-key", Val: v.Key})
	}
	if v.Content != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: v.Content})
	}
	for _, c := range v.Children {
		if c != nil {
			n.AppendChild(toNode(c))
		}
	}
	return n
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, name, value string) {
	for i, a := range n.Attr {
		if a.Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}
