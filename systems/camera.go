package systems

import (
	"math"

	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/config"
	"github.com/automoto/brawler/gamemath"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player with smoothing, keeping the visible area
// inside the camera bounds.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	screenWidth, screenHeight := viewportSize(e)

	targetX := playerObject.X + playerObject.W/2
	targetY := playerObject.Y + playerObject.H/2
	targetX = clampAxis(targetX, camera.MinX, camera.MaxX, screenWidth)
	targetY = clampAxis(targetY, camera.MinY, camera.MaxY, screenHeight)

	camera.Position.X = gamemath.Lerp(camera.Position.X, targetX, config.Camera.FollowSmoothingX)
	camera.Position.Y = gamemath.Lerp(camera.Position.Y, targetY, config.Camera.FollowSmoothingY)
}

// clampAxis keeps a camera centre so that [c-view/2, c+view/2] stays inside
// [lo, hi]. When the view is larger than the bounds the centre is pinned to
// the middle.
func clampAxis(c, lo, hi, view float64) float64 {
	if hi-lo <= view {
		return (lo + hi) / 2
	}
	return math.Max(lo+view/2, math.Min(hi-view/2, c))
}

// CameraOrigin returns the world point at the top-left of the screen.
func CameraOrigin(camera *components.CameraData, screenWidth, screenHeight float64) (float64, float64) {
	x := camera.Position.X - screenWidth/2
	y := camera.Position.Y - screenHeight/2
	if config.Camera.RoundPixels {
		x = math.Round(x)
		y = math.Round(y)
	}
	return x, y
}

func viewportSize(e *ecs.ECS) (float64, float64) {
	entry, ok := components.Viewport.First(e.World)
	if !ok {
		return float64(config.C.WindowWidth), float64(config.C.WindowHeight)
	}
	return components.Viewport.Get(entry).ViewportSize()
}
