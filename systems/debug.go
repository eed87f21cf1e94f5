package systems

import (
	"image/color"

	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugSolidColor  = color.RGBA{100, 100, 100, 255}
	debugPlayerColor = color.RGBA{0, 0, 255, 255}
	debugOtherColor  = color.RGBA{0, 255, 255, 255}
)

// DrawDebug outlines every collision body while the debug HUD is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	space := components.Space.Get(spaceEntry)

	viewW, viewH := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	originX, originY := CameraOrigin(camera, viewW, viewH)

	for _, obj := range space.Objects() {
		// Cull
		if obj.X+obj.W < originX || obj.X > originX+viewW || obj.Y+obj.H < originY || obj.Y > originY+viewH {
			continue
		}

		c := debugOtherColor
		if obj.HasTags(tags.ResolvSolid) {
			c = debugSolidColor
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = debugPlayerColor
		}

		x, y := float32(obj.X-originX), float32(obj.Y-originY)
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)
		vector.FillRect(screen, x, y+h-1, w, 1, c, false)
		vector.FillRect(screen, x, y, 1, h, c, false)
		vector.FillRect(screen, x+w-1, y, 1, h, c, false)
	}
}
