package appcomponents

import (
	"github.com/vcrobe/nojs-shell/router"
	"github.com/vcrobe/nojs-shell/runtime"
)

// Register maps the demo pages onto nav.
func Register(nav *router.Navigator) {
	nav.Handle("/pages/home", func(map[string]string) runtime.Component { return &HomePage{} })
	nav.Handle("/pages/mine", func(map[string]string) runtime.Component { return &MinePage{} })
	nav.Handle("/pages/feed", func(map[string]string) runtime.Component { return &FeedPage{} })
	nav.Handle("/pages/detail/{id}", NewDetailPage)
}
