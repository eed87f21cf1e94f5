package systems

import (
	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackground draws the backdrop at its current fit, tinted and faded in
// after each refit.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	originX, originY := CameraOrigin(camera, float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy()))

	components.Background.Each(ecs.World, func(e *donburi.Entry) {
		bg := components.Background.Get(e)
		if bg.Image == nil || bg.Fit.DisplayWidth <= 0 || bg.Fit.DisplayHeight <= 0 {
			return
		}
		w, h := bg.Image.Bounds().Dx(), bg.Image.Bounds().Dy()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(bg.Fit.DisplayWidth/float64(w), bg.Fit.DisplayHeight/float64(h))
		drawOp.GeoM.Translate(bg.Fit.OffsetX-originX, bg.Fit.OffsetY-originY)

		tint := float32(cfg.Background.Tint)
		drawOp.ColorScale.Scale(tint, tint, tint, 1)
		drawOp.ColorScale.ScaleAlpha(bg.Alpha)

		screen.DrawImage(bg.Image, drawOp)
	})
}

// DrawAnimated renders the current frame of every animated body, centred on
// the body and mirrored when the physics flip flag is set.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	originX, originY := CameraOrigin(camera, float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy()))

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		animData := components.Animation.Get(e)
		if animData.CurrentAnimation == nil || animData.Sheet == "" {
			return
		}
		o := components.Object.Get(e)

		frame := animData.CurrentAnimation.Frame()
		img := assets.GetFrame(animData.Sheet, frame,
			assets.FrameRect(frame, animData.Columns, animData.FrameWidth, animData.FrameHeight))

		scale := 1.0
		if e.HasComponent(components.Player) {
			scale = components.Player.Get(e).Scale
		}
		scaleX := scale
		if e.HasComponent(components.Physics) && components.Physics.Get(e).FlipX {
			scaleX = -scale
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(animData.FrameWidth)/2, -float64(animData.FrameHeight)/2)
		drawOp.GeoM.Scale(scaleX, scale)
		drawOp.GeoM.Translate(o.X+o.W/2-originX, o.Y+o.H/2-originY)

		screen.DrawImage(img, drawOp)
	})
}

// DrawTouchControls draws the on-screen buttons when touch is the active
// source.
func DrawTouchControls(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	touch, ok := components.Input.Get(entry).Source.(*input.TouchSource)
	if !ok {
		return
	}

	for _, b := range touch.Buttons() {
		c := cfg.Touch.ButtonColor
		if b.Held {
			c = cfg.Touch.ButtonActiveColor
		}
		vector.FillRect(screen, float32(b.Rect.X), float32(b.Rect.Y), float32(b.Rect.W), float32(b.Rect.H), c, false)
	}
}
