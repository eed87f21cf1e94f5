package config

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed animations.yaml
var defaultAnimationsYAML []byte

// AnimationDef describes how one animation plays back.
type AnimationDef struct {
	Frames []int   `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
	Loop   bool    `yaml:"loop"`
}

// OneShot reports whether the animation plays once and signals completion.
func (d AnimationDef) OneShot() bool {
	return !d.Loop
}

// SheetDef describes the grid layout of the sprite sheet.
type SheetDef struct {
	FrameWidth  int `yaml:"frameWidth"`
	FrameHeight int `yaml:"frameHeight"`
	Columns     int `yaml:"columns"`
	Rows        int `yaml:"rows"`
}

// FrameCount is the number of cells in the sheet.
func (s SheetDef) FrameCount() int {
	return s.Columns * s.Rows
}

// AnimationSet is a validated set of player animations.
type AnimationSet struct {
	Sheet SheetDef
	Defs  map[AnimationKey]AnimationDef
}

// Def returns the definition for key.
func (s *AnimationSet) Def(key AnimationKey) (AnimationDef, bool) {
	if s == nil {
		return AnimationDef{}, false
	}
	d, ok := s.Defs[key]
	return d, ok
}

// IsOneShot reports whether key is defined and plays once.
func (s *AnimationSet) IsOneShot(key AnimationKey) bool {
	d, ok := s.Def(key)
	return ok && d.OneShot()
}

type animationFile struct {
	Sheet      SheetDef                `yaml:"sheet"`
	Animations map[string]AnimationDef `yaml:"animations"`
}

// Animations is the active player animation set.
var Animations *AnimationSet

var animationsErr error

func init() {
	Animations, animationsErr = LoadAnimations(defaultAnimationsYAML)
}

// CheckAnimations returns the error from decoding the built-in definitions.
func CheckAnimations() error {
	return animationsErr
}

// LoadAnimations decodes and validates an animation document.
func LoadAnimations(data []byte) (*AnimationSet, error) {
	var file animationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("decode: %v", err)}
	}

	set := &AnimationSet{
		Sheet: file.Sheet,
		Defs:  make(map[AnimationKey]AnimationDef, len(file.Animations)),
	}

	// Sorted so the first reported error is stable.
	names := make([]string, 0, len(file.Animations))
	for name := range file.Animations {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		key, ok := ParseAnimationKey(name)
		if !ok {
			return nil, configErrorf(name, "unknown animation")
		}
		set.Defs[key] = file.Animations[name]
	}

	if err := ValidateAnimations(set); err != nil {
		return nil, err
	}
	return set, nil
}

// ValidateAnimations checks that every key is defined and playable.
func ValidateAnimations(set *AnimationSet) error {
	if set == nil {
		return &ConfigurationError{Reason: "no animation set"}
	}
	if set.Sheet.FrameWidth <= 0 || set.Sheet.FrameHeight <= 0 {
		return configErrorf("sheet", "frame size must be positive, got %dx%d", set.Sheet.FrameWidth, set.Sheet.FrameHeight)
	}
	if set.Sheet.Columns <= 0 || set.Sheet.Rows <= 0 {
		return configErrorf("sheet", "grid must be positive, got %dx%d", set.Sheet.Columns, set.Sheet.Rows)
	}

	total := set.Sheet.FrameCount()
	for _, key := range AllAnimations() {
		def, ok := set.Defs[key]
		if !ok {
			return configErrorf(key.String(), "missing definition")
		}
		if len(def.Frames) == 0 {
			return configErrorf(key.String(), "no frames")
		}
		if def.FPS <= 0 {
			return configErrorf(key.String(), "fps must be positive, got %v", def.FPS)
		}
		for _, f := range def.Frames {
			if f < 0 || f >= total {
				return configErrorf(key.String(), "frame %d outside sheet of %d frames", f, total)
			}
		}
	}
	return nil
}
