package appcomponents

import (
	"github.com/vcrobe/nojs-shell/console"
	"github.com/vcrobe/nojs-shell/runtime"
	"github.com/vcrobe/nojs-shell/vdom"
)

// HomePage is the first tab. It links to the feed and counts how often the
// tab was shown.
type HomePage struct {
	runtime.ComponentBase

	Shows int
}

func (h *HomePage) ScopeID() string { return "data-v-home" }

func (h *HomePage) OnShow() {
	h.Shows++
}

// OpenFeed handles the feed button.
func (h *HomePage) OpenFeed() {
	if err := h.Navigate("/pages/feed?topic=go"); err != nil {
		console.Error("[HomePage.OpenFeed]", err.Error())
	}
}

func (h *HomePage) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "home"},
		vdom.Paragraph("Home", nil),
		vdom.Button("Open feed", map[string]any{"onClick": h.OpenFeed}),
	)
}
