package config

// AttackMode selects how an attack animation is chosen.
type AttackMode int

const (
	AttackRandom AttackMode = iota // uniform pick from AttackSet
	AttackFixed                    // always FixedAttack
	AttackModeCount
)

func (m AttackMode) String() string {
	switch m {
	case AttackRandom:
		return "Random"
	case AttackFixed:
		return "Punch only"
	}
	return "unknown"
}

// ControllerSettings are the user-tunable behaviours of the player controller.
type ControllerSettings struct {
	AttackMode  AttackMode
	AttackSet   []AnimationKey
	FixedAttack AnimationKey
	// ResumeLast returns to the last directional animation after a one-shot
	// instead of idle.
	ResumeLast bool
	// MirrorLeft flips the sprite when facing left. The sheet faces right.
	MirrorLeft bool
	// Emotes are cycled by tapping outside the control strip.
	Emotes []AnimationKey
}

// SettingsMenuConfig contains settings screen configuration
type SettingsMenuConfig struct {
	AttackModes []AttackMode
	InputModes  []InputMode
}

var Controller ControllerSettings
var SettingsMenu SettingsMenuConfig

func init() {
	Controller = ControllerSettings{
		AttackMode:  AttackRandom,
		AttackSet:   []AnimationKey{Kick, Punch, JumpKick},
		FixedAttack: Punch,
		ResumeLast:  false,
		MirrorLeft:  true,
		Emotes:      []AnimationKey{Jump, Win, Die},
	}

	SettingsMenu = SettingsMenuConfig{
		AttackModes: []AttackMode{AttackRandom, AttackFixed},
		InputModes:  []InputMode{InputModeAuto, InputModeKeyboard, InputModeTouch},
	}
}
