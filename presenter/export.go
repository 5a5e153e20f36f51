package presenter

import (
	"fmt"
	"strings"

	"content_variation_generator/generator"
)

const separatorWidth = 40

// FileName is the name offered for the combined download.
func FileName(brandName string) string {
	return brandName + "-content-variations.txt"
}

// ExportText joins the batch into the plain-text download body.
// Headings are numbered by position, not by Variation.ID.
func ExportText(variations []generator.Variation) string {
	var b strings.Builder
	sep := strings.Repeat("=", separatorWidth)
	for i, v := range variations {
		fmt.Fprintf(&b, "VARIATION %d: %s\n%s\n%s\n\n", i+1, v.Title, sep, v.Content)
	}
	return b.String()
}
