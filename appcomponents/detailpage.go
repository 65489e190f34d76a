package appcomponents

import (
	"strconv"

	"github.com/vcrobe/nojs-shell/console"
	"github.com/vcrobe/nojs-shell/runtime"
	"github.com/vcrobe/nojs-shell/vdom"
)

// DetailPage is rendered for "/pages/detail/{id}". Its navigation bar is
// transparent; the bar fades in from the scroll offsets published on the
// event bus.
type DetailPage struct {
	runtime.ComponentBase

	ID       int
	Unloaded bool
}

// NewDetailPage parses the id route parameter.
func NewDetailPage(params map[string]string) runtime.Component {
	id, err := strconv.Atoi(params["id"])
	if err != nil {
		console.Warn("Error parsing {id} parameter in route `/pages/detail/{id}`: ", err.Error())
	}
	return &DetailPage{ID: id}
}

func (d *DetailPage) OnUnload() {
	d.Unloaded = true
}

func (d *DetailPage) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "detail"},
		vdom.Paragraph("Item "+strconv.Itoa(d.ID), nil),
	)
}
