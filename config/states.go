package config

import "strings"

// AnimationKey identifies one of the player's named animations.
type AnimationKey int

// AnimNone means "no animation" (nothing emitted yet).
const AnimNone AnimationKey = -1

const (
	Idle AnimationKey = iota
	Walk
	Kick
	Punch
	Jump
	JumpKick
	Win
	Die

	AnimationCount // Must be last - used for array sizing
)

// AnimationNames maps AnimationKey to the name used in animation definitions.
var AnimationNames = map[AnimationKey]string{
	Idle:     "idle",
	Walk:     "walk",
	Kick:     "kick",
	Punch:    "punch",
	Jump:     "jump",
	JumpKick: "jumpkick",
	Win:      "win",
	Die:      "die",
}

func (k AnimationKey) String() string {
	if name, ok := AnimationNames[k]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether k names a defined animation.
func (k AnimationKey) Valid() bool {
	return k >= Idle && k < AnimationCount
}

// ParseAnimationKey returns the key with the given name (case-insensitive).
func ParseAnimationKey(name string) (AnimationKey, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range AnimationNames {
		if n == name {
			return k, true
		}
	}
	return AnimNone, false
}

// AllAnimations lists every key in declaration order.
func AllAnimations() []AnimationKey {
	keys := make([]AnimationKey, 0, AnimationCount)
	for k := Idle; k < AnimationCount; k++ {
		keys = append(keys, k)
	}
	return keys
}
