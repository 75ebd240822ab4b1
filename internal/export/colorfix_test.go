package export

import (
	"strings"
	"testing"
)

func TestNormalizeColorsReplacesOklch(t *testing.T) {
	html := `<div style="color: oklch(0.7 0.15 180); background: oklch(95% 0.02 270 / 0.5)">hi</div>`

	out := NormalizeColors(html)
	if strings.Contains(out, "oklch") {
		t.Fatalf("oklch survived: %s", out)
	}
	if strings.Count(out, "#000") != 2 {
		t.Fatalf("expected both values replaced: %s", out)
	}
}

func TestNormalizeColorsLeavesOtherColorsAlone(t *testing.T) {
	html := `<div style="color: #ff8800; background: rgb(1,2,3)">hi</div>`

	if out := NormalizeColors(html); out != html {
		t.Fatalf("document without oklch must pass through: %s", out)
	}
}

func TestNormalizeColorsHandlesWholeDocument(t *testing.T) {
	html := `<style>.a{color:oklch(0.2 0 0)}</style><body><p style="color:oklch(0.9 0.1 120)">x</p></body>`

	out := NormalizeColors(html)
	if strings.Contains(out, "oklch") {
		t.Fatalf("style block occurrence survived: %s", out)
	}
}
