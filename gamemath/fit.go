package gamemath

// FitResult is where and how large the background is drawn, in world units.
type FitResult struct {
	DisplayWidth  float64
	DisplayHeight float64
	OffsetX       float64
	OffsetY       float64
}

// FitBackground scales a background of the given height/width aspect so it
// covers a viewport of fixed world width and variable height.
//
// A viewport that is short relative to the image fills the full world width
// and is centered vertically; a tall one fills the full height and is
// centered horizontally. Division is only by aspect, so a zero height yields
// a degenerate result rather than a fault.
func FitBackground(viewportHeight, worldWidth, aspect float64) FitResult {
	if viewportHeight/worldWidth < aspect {
		height := worldWidth * aspect
		return FitResult{
			DisplayWidth:  worldWidth,
			DisplayHeight: height,
			OffsetX:       0,
			OffsetY:       -(height - viewportHeight) / 2,
		}
	}

	width := viewportHeight / aspect
	return FitResult{
		DisplayWidth:  width,
		DisplayHeight: viewportHeight,
		OffsetX:       (worldWidth - width) / 2,
		OffsetY:       0,
	}
}

// ClampViewportHeight guards resize events against non-positive heights.
func ClampViewportHeight(height, min int) int {
	if min < 1 {
		min = 1
	}
	if height < min {
		return min
	}
	return height
}
