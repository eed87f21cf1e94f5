package input

import (
	"runtime"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/controller"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer is one active touch (or the mouse, with ID MousePointerID).
type Pointer struct {
	ID   int
	X, Y float64
}

// MousePointerID identifies the left mouse button when it stands in for a touch.
const MousePointerID = -1

// PointerReader lists the pointers that are currently down.
type PointerReader interface {
	AppendPointers(dst []Pointer) []Pointer
}

// Viewport reports the current screen size in world units.
type Viewport interface {
	ViewportSize() (width, height float64)
}

// EbitenPointers reads host touches plus the left mouse button.
type EbitenPointers struct {
	touchIDs []ebiten.TouchID
}

func (p *EbitenPointers) AppendPointers(dst []Pointer) []Pointer {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		dst = append(dst, Pointer{ID: int(id), X: float64(x), Y: float64(y)})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dst = append(dst, Pointer{ID: MousePointerID, X: float64(x), Y: float64(y)})
	}
	return dst
}

// TapReader lists pointers pressed on this tick.
type TapReader interface {
	AppendTaps(dst []Pointer) []Pointer
}

// EbitenTaps reads fresh touches plus a fresh left click.
type EbitenTaps struct {
	touchIDs []ebiten.TouchID
}

func (t *EbitenTaps) AppendTaps(dst []Pointer) []Pointer {
	t.touchIDs = inpututil.AppendJustPressedTouchIDs(t.touchIDs[:0])
	for _, id := range t.touchIDs {
		x, y := ebiten.TouchPosition(id)
		dst = append(dst, Pointer{ID: int(id), X: float64(x), Y: float64(y)})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dst = append(dst, Pointer{ID: MousePointerID, X: float64(x), Y: float64(y)})
	}
	return dst
}

// TouchCapable reports whether the platform is touch-first.
func TouchCapable() bool {
	return runtime.GOOS == "android" || runtime.GOOS == "ios"
}

// Rect is an axis-aligned rectangle in screen units.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ButtonID names an on-screen control.
type ButtonID int

const (
	ButtonLeft ButtonID = iota
	ButtonRight
	ButtonAction
	ButtonCount
)

// Button is an on-screen control with a sticky pressed state: a press that
// starts inside it holds until that pointer lifts or leaves the rectangle.
type Button struct {
	Rect  Rect
	Held  bool
	owner int
}

// TouchSource maps on-screen buttons to an Intent.
type TouchSource struct {
	pointers PointerReader
	viewport Viewport
	buttons  [ButtonCount]Button

	active   []Pointer
	previous map[int]bool
}

func NewTouchSource(pointers PointerReader, viewport Viewport) *TouchSource {
	if pointers == nil {
		pointers = &EbitenPointers{}
	}
	return &TouchSource{
		pointers: pointers,
		viewport: viewport,
		previous: make(map[int]bool),
	}
}

func (t *TouchSource) Name() string { return "touch" }

// Buttons returns the current layout and held state.
func (t *TouchSource) Buttons() [ButtonCount]Button {
	return t.buttons
}

func (t *TouchSource) Sample() controller.Intent {
	t.layout()
	t.active = t.pointers.AppendPointers(t.active[:0])

	for i := range t.buttons {
		b := &t.buttons[i]
		if b.Held {
			p, ok := t.find(b.owner)
			if !ok || !b.Rect.Contains(p.X, p.Y) {
				b.Held = false
			}
			continue
		}
		for _, p := range t.active {
			if !t.previous[p.ID] && b.Rect.Contains(p.X, p.Y) {
				b.Held = true
				b.owner = p.ID
				break
			}
		}
	}

	clear(t.previous)
	for _, p := range t.active {
		t.previous[p.ID] = true
	}

	return controller.Intent{
		Move:   resolve(t.buttons[ButtonLeft].Held, t.buttons[ButtonRight].Held),
		Action: t.buttons[ButtonAction].Held,
	}
}

func (t *TouchSource) find(id int) (Pointer, bool) {
	for _, p := range t.active {
		if p.ID == id {
			return p, true
		}
	}
	return Pointer{}, false
}

// layout places the buttons inside the bottom control strip: the two
// directions at the left edge and the action at the right edge.
func (t *TouchSource) layout() {
	if t.viewport == nil {
		return
	}
	w, h := t.viewport.ViewportSize()
	strip := cfg.Touch.ControlStripHeight
	size := cfg.Touch.ButtonSize
	margin := cfg.Touch.ButtonMargin
	y := h - strip + (strip-size)/2

	t.buttons[ButtonLeft].Rect = Rect{X: margin, Y: y, W: size, H: size}
	t.buttons[ButtonRight].Rect = Rect{X: margin*2 + size, Y: y, W: size, H: size}
	t.buttons[ButtonAction].Rect = Rect{X: w - margin - size, Y: y, W: size, H: size}
}

// InControlStrip reports whether a screen y falls inside the reserved bottom
// strip. Taps there belong to the controls.
func InControlStrip(y, viewportHeight float64) bool {
	return y >= viewportHeight-cfg.Touch.ControlStripHeight
}
