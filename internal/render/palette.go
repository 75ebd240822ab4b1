package render

// defaultPalette holds the slot-wise fallback colors: background, primary,
// surface, secondary, body text.
var defaultPalette = [5]string{"#000000", "#666666", "#ffffff", "#f3f3f3", "#4a5565"}

// Palette is the positional color set the templates draw from.
type Palette struct {
	Background string
	Primary    string
	Surface    string
	Secondary  string
	Text       string
}

// NormalizePalette pads colors to five entries, filling each missing or
// empty slot from the defaults. Extra entries beyond five are ignored.
func NormalizePalette(colors []string) Palette {
	slots := defaultPalette
	for i := 0; i < len(slots) && i < len(colors); i++ {
		if colors[i] != "" {
			slots[i] = colors[i]
		}
	}
	return Palette{
		Background: slots[0],
		Primary:    slots[1],
		Surface:    slots[2],
		Secondary:  slots[3],
		Text:       slots[4],
	}
}
