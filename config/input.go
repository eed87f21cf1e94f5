package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionAttack
	ActionSettings
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding lists the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// InputMode selects which input source drives the player.
type InputMode int

const (
	InputModeAuto InputMode = iota // touch on touch-first platforms or with -touch, keyboard otherwise
	InputModeKeyboard
	InputModeTouch
	InputModeCount
)

var inputModeNames = [...]string{"Auto", "Keyboard", "Touch"}

func (m InputMode) String() string {
	if m < 0 || int(m) >= len(inputModeNames) {
		return "unknown"
	}
	return inputModeNames[m]
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			},
			// Up/down are read but not used for movement yet.
			ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			},
			ActionMoveDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			},
			ActionAttack: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ},
			},
			ActionSettings: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
			},
			ActionDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
}
