package appcomponents

import (
	"fmt"

	"github.com/vcrobe/nojs-shell/console"
	"github.com/vcrobe/nojs-shell/runtime"
	"github.com/vcrobe/nojs-shell/vdom"
)

// FeedPageSize is the number of items appended per reach-bottom.
const FeedPageSize = 20

// FeedPage is an endless list: every reach-bottom appends a page of items.
type FeedPage struct {
	runtime.ComponentBase

	Topic     string
	Items     []string
	ScrollTop float64
	Loads     int
}

func (f *FeedPage) ScopeID() string { return "data-v-feed" }

func (f *FeedPage) OnLoad(query map[string]string) {
	f.Topic = query["topic"]
	f.loadMore()
}

func (f *FeedPage) OnPageScroll(scrollTop float64) {
	f.ScrollTop = scrollTop
}

func (f *FeedPage) OnReachBottom() {
	f.loadMore()
	f.StateHasChanged()
}

// OpenItem handles a click on the item at index i.
func (f *FeedPage) OpenItem(i int) {
	if err := f.Navigate(fmt.Sprintf("/pages/detail/%d", i)); err != nil {
		console.Error("[FeedPage.OpenItem]", err.Error())
	}
}

func (f *FeedPage) loadMore() {
	start := len(f.Items)
	for i := start; i < start+FeedPageSize; i++ {
		f.Items = append(f.Items, fmt.Sprintf("%s #%d", f.Topic, i))
	}
	f.Loads++
}

func (f *FeedPage) Render(r runtime.Renderer) *vdom.VNode {
	items := make([]*vdom.VNode, 0, len(f.Items))
	for i, item := range f.Items {
		items = append(items, vdom.Button(item, map[string]any{
			"class":   "feed-item",
			"onClick": func() { f.OpenItem(i) },
		}))
	}
	return vdom.Div(map[string]any{"class": "feed"}, items...)
}
