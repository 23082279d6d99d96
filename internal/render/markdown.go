// Package render converts model output to HTML for the UI. The
// brainstorming phase returns markdown (bold labels, paragraph breaks),
// which the single-page client displays as rich text.
package render

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// HTML renders the given markdown to HTML. An empty input renders to an
// empty string.
func HTML(markdown string) (string, error) {
	if markdown == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
