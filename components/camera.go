package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // world point at the centre of the screen
	// Bounds the visible area must stay inside.
	MinX, MinY float64
	MaxX, MaxY float64
}

var Camera = donburi.NewComponentType[CameraData]()
