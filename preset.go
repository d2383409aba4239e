package caption

import "fmt"

// Preset is a named canvas size.
type Preset struct {
	Width, Height int
	Label         string
}

func (p Preset) String() string {
	return fmt.Sprintf("%s (%dx%d)", p.Label, p.Width, p.Height)
}

// Presets are the common social-media canvas sizes.
var Presets = []Preset{
	{Width: 1200, Height: 630, Label: "Facebook/LinkedIn Post"},
	{Width: 1080, Height: 1080, Label: "Instagram Square"},
	{Width: 1080, Height: 1350, Label: "Instagram Portrait"},
	{Width: 1200, Height: 675, Label: "Twitter Post"},
	{Width: 1280, Height: 720, Label: "YouTube Thumbnail"},
	{Width: 1200, Height: 628, Label: "Open Graph"},
}

// LookupPreset finds a preset by its exact label.
func LookupPreset(label string) (Preset, bool) {
	for _, p := range Presets {
		if p.Label == label {
			return p, true
		}
	}
	return Preset{}, false
}
