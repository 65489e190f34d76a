package appcomponents

import (
	"github.com/vcrobe/nojs-shell/runtime"
	"github.com/vcrobe/nojs-shell/vdom"
)

// MinePage is the second tab.
type MinePage struct {
	runtime.ComponentBase
}

func (m *MinePage) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "mine"}, vdom.Paragraph("Mine", nil))
}
