package appcomponents

import _ "embed"

// Manifest is the page manifest of the demo application.
//
//go:embed pages.toml
var Manifest []byte
