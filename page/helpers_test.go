package page

import (
	"github.com/vcrobe/nojs-shell/runtime"
	"github.com/vcrobe/nojs-shell/vdom"
)

type stubPage struct {
	runtime.ComponentBase
	unloads int
	onUnload func()
}

func (p *stubPage) Render(runtime.Renderer) *vdom.VNode { return vdom.Div(nil) }

func (p *stubPage) OnUnload() {
	p.unloads++
	if p.onUnload != nil {
		p.onUnload()
	}
}

func newStubInstance(path string, id int, tabBar bool) (*Instance, *stubPage) {
	meta := NewMeta(path)
	meta.IsTabBar = tabBar
	c := &stubPage{}
	return NewInstance(State{ID: id, Type: NavigateTo}, path, path, nil, meta, c), c
}

func view(key string, tabBar bool) *vdom.VNode {
	v := vdom.Div(nil)
	v.Key = key
	if tabBar {
		v.SetProp(vdom.PropType, vdom.TypeTabBar)
	}
	return v
}
