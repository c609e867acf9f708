package interaction

import (
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPalette is the fixed set of colors an interaction picks from
// A pick may coincide with the object's current or base color; no
// exclusion is applied
func DefaultPalette() []colorful.Color {
	return []colorful.Color{
		{R: 0.91, G: 0.30, B: 0.24}, // red
		{R: 0.95, G: 0.61, B: 0.07}, // orange
		{R: 0.95, G: 0.77, B: 0.06}, // yellow
		{R: 0.18, G: 0.80, B: 0.44}, // green
		{R: 0.10, G: 0.74, B: 0.61}, // teal
		{R: 0.20, G: 0.60, B: 0.86}, // blue
		{R: 0.61, G: 0.35, B: 0.71}, // purple
		{R: 0.91, G: 0.49, B: 0.68}, // pink
	}
}
