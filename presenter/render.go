package presenter

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	// single newlines inside a variation are meaningful (bullet lines)
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// RenderHTML converts a variation's markdown-ish content into an HTML fragment.
// Raw HTML in the input is left out of the output.
func RenderHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
