package input

import (
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/controller"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyReader reports whether a key is held.
type KeyReader interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenKeys reads the host keyboard.
type EbitenKeys struct{}

func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// KeyboardSource reads the directional and action bindings from cfg.Input.
type KeyboardSource struct {
	keys    KeyReader
	current [cfg.ActionCount]bool
}

func NewKeyboardSource(keys KeyReader) *KeyboardSource {
	if keys == nil {
		keys = EbitenKeys{}
	}
	return &KeyboardSource{keys: keys}
}

func (k *KeyboardSource) Name() string { return "keyboard" }

func (k *KeyboardSource) Sample() controller.Intent {
	k.current = [cfg.ActionCount]bool{}
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if k.keys.IsKeyPressed(key) {
				k.current[actionID] = true
			}
		}
	}

	return controller.Intent{
		Move:   resolve(k.current[cfg.ActionMoveLeft], k.current[cfg.ActionMoveRight]),
		Action: k.current[cfg.ActionAttack],
	}
}

// Held reports whether an action was held on the last sample.
func (k *KeyboardSource) Held(id cfg.ActionID) bool {
	if id < 0 || id >= cfg.ActionCount {
		return false
	}
	return k.current[id]
}
