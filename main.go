//go:build js || wasm

package main

import (
	"syscall/js"

	"github.com/vcrobe/nojs-shell/appcomponents"
	"github.com/vcrobe/nojs-shell/console"
	"github.com/vcrobe/nojs-shell/dom"
	"github.com/vcrobe/nojs-shell/manifest"
	"github.com/vcrobe/nojs-shell/page"
	"github.com/vcrobe/nojs-shell/router"
)

func main() {
	// 1. Load the page manifest
	m, err := manifest.Parse(appcomponents.Manifest, manifest.FormatTOML)
	if err != nil {
		panic("Error loading page manifest: " + err.Error())
	}
	console.SetRawLogLevel(m.LogLevel)

	// 2. Create the navigator over the browser document. A reloaded tab
	// continues the page ids stored in history.state.
	doc := dom.New()
	stateID := dom.StateID()
	nav := router.New(router.Options{
		Session: page.Options{
			Document:      doc,
			Scheduler:     dom.Scheduler{},
			FlexDirection: m.FlexDirection,
			StateID:       stateID,
		},
		Meta:    m.Meta,
		Mounter: doc,
	})

	// 3. Define routes and mirror navigations into browser history
	appcomponents.Register(nav)
	history := router.BindHistory(nav)
	defer history.Release()

	// 4. Open the page in the address bar, or the entry page
	loc := js.Global().Get("location")
	start := loc.Get("pathname").String()
	if start == "" || start == "/" {
		start = m.EntryPagePath
	} else {
		start += loc.Get("search").String()
	}
	if err := nav.Start(start, stateID); err != nil {
		panic("Error starting navigator: " + err.Error())
	}

	// Keep the Go program running
	select {}
}
