package presenter

import (
	"fmt"

	"github.com/atotto/clipboard"

	"content_variation_generator/generator"
)

// Clipboard receives the text of a single variation.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available on this system")
	}
	return clipboard.WriteAll(text)
}

// Copy puts the content of variation n (1-based) on cb.
func Copy(cb Clipboard, variations []generator.Variation, n int) error {
	if n < 1 || n > len(variations) {
		return fmt.Errorf("variation %d out of range (1-%d)", n, len(variations))
	}
	return cb.WriteAll(variations[n-1].Content)
}
