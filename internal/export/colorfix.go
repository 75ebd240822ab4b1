package export

import "regexp"

// Headless Chrome screenshots of pages using wide-gamut oklch() colors
// come out wrong on some builds, so every occurrence is rewritten to a
// safe fallback before rasterizing. The whole document is treated, not
// just the top element, so inherited styles are covered too.
var oklchRe = regexp.MustCompile(`oklch\([^)]*\)`)

const fallbackColor = "#000"

// NormalizeColors replaces every oklch() color value in the document
// with the fallback. Documents without such values pass through
// unchanged.
func NormalizeColors(html string) string {
	return oklchRe.ReplaceAllString(html, fallbackColor)
}
