package systems

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/gamemath"
	"github.com/automoto/brawler/logger"
	"github.com/automoto/brawler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateViewport refits the scene when the host size changed since the last
// fit, then pins the player to the vertical centre. Applying the same size
// twice is a no-op.
func UpdateViewport(e *ecs.ECS) {
	stageEntry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(stageEntry)
	stage := components.Stage.Get(stageEntry).Stage

	if vp.Pending(cfg.C.MinViewHeight) {
		applyViewport(e, vp, stage.WorldWidth, stage.BackgroundAspect())
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		obj.Y = float64(vp.Applied)/2 - obj.H/2
		obj.Update()
	})
}

func applyViewport(e *ecs.ECS, vp *components.ViewportData, worldWidth int, aspect float64) {
	h := gamemath.ClampViewportHeight(int(vp.Height), cfg.C.MinViewHeight)
	if float64(h) != vp.Height {
		logger.System("viewport").Debug("clamped viewport height",
			zap.Float64("reported", vp.Height),
			zap.Int("height", h))
	}
	vp.Applied = h

	fit := gamemath.FitBackground(float64(h), float64(worldWidth), aspect)

	if entry, ok := components.Background.First(e.World); ok {
		bg := components.Background.Get(entry)
		bg.Fit = fit
		bg.Redraw++
		bg.Alpha = 0
		if bg.Fade != nil {
			bg.Fade.Reset()
		}
	}

	if entry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(entry)
		camera.MinX, camera.MinY = 0, 0
		camera.MaxX = float64(worldWidth)
		camera.MaxY = float64(h)
	}

	scale := gamemath.SpriteScale(float64(h), cfg.Player.HeightFraction,
		cfg.Animations.Sheet.FrameHeight, cfg.Player.ScaleMultiplier)
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		components.Player.Get(entry).Scale = scale
		resizeBody(components.Object.Get(entry).Object,
			float64(cfg.Animations.Sheet.FrameWidth)*scale,
			float64(cfg.Animations.Sheet.FrameHeight)*scale)
	})

	logger.System("viewport").Debug("refit",
		zap.Float64("width", vp.Width),
		zap.Int("height", h),
		zap.Float64("displayWidth", fit.DisplayWidth),
		zap.Float64("displayHeight", fit.DisplayHeight),
		zap.Float64("offsetX", fit.OffsetX),
		zap.Float64("offsetY", fit.OffsetY),
		zap.Float64("playerScale", scale))
}

// resizeBody changes the body size around its horizontal centre.
func resizeBody(obj *resolv.Object, w, h float64) {
	cx := obj.X + obj.W/2
	obj.W, obj.H = w, h
	obj.X = cx - w/2
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
}

// SetViewportSize records the host size reported by the layout.
func SetViewportSize(e *ecs.ECS, width, height float64) {
	entry, ok := components.Viewport.First(e.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(entry)
	vp.Width, vp.Height = width, height
}
