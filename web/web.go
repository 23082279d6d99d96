// Package web embeds the single-page UI for the collaborative prompt
// flow. The page is plain HTML and fetch calls against the JSON API; no
// build step, no framework.
package web

import _ "embed"

// Index is the single-page UI served at the site root.
//
//go:embed index.html
var Index []byte
