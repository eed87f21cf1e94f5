package components

import (
	"github.com/yohamta/donburi"
)

// ViewportData tracks the screen size reported by the host layout and the
// height the scene was last fitted to.
type ViewportData struct {
	Width, Height float64 // latest host size
	Applied       int     // clamped height of the last applied fit, 0 before the first
}

// Pending reports whether the host size differs from the applied fit.
func (v *ViewportData) Pending(minHeight int) bool {
	h := int(v.Height)
	if h < minHeight {
		h = minHeight
	}
	return v.Applied != h
}

// ViewportSize returns the latest host size.
func (v *ViewportData) ViewportSize() (float64, float64) {
	return v.Width, v.Height
}

var Viewport = donburi.NewComponentType[ViewportData]()
