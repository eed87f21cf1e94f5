package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAnimations(t *testing.T) {
	require.NoError(t, CheckAnimations())
	require.NotNil(t, Animations)

	assert.Equal(t, SheetDef{FrameWidth: 48, FrameHeight: 48, Columns: 5, Rows: 8}, Animations.Sheet)
	for _, key := range AllAnimations() {
		_, ok := Animations.Def(key)
		assert.True(t, ok, key.String())
	}

	assert.False(t, Animations.IsOneShot(Idle))
	assert.False(t, Animations.IsOneShot(Walk))
	assert.True(t, Animations.IsOneShot(Punch))
	assert.True(t, Animations.IsOneShot(Kick))
	assert.False(t, Animations.IsOneShot(AnimNone))

	punch, _ := Animations.Def(Punch)
	assert.Len(t, punch.Frames, 6)
	assert.InDelta(t, 12, punch.FPS, 1e-9)
}

// cloneDefault returns a mutable copy of the built-in set.
func cloneDefault(t *testing.T) *AnimationSet {
	t.Helper()
	set, err := LoadAnimations(defaultAnimationsYAML)
	require.NoError(t, err)
	return set
}

func requireConfigError(t *testing.T, err error, key string) {
	t.Helper()
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr), "got %v", err)
	assert.Equal(t, key, cfgErr.Key)
}

func TestValidateAnimations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AnimationSet)
		key    string
	}{
		{"missing definition", func(s *AnimationSet) { delete(s.Defs, Win) }, "win"},
		{"empty frames", func(s *AnimationSet) {
			d := s.Defs[Kick]
			d.Frames = nil
			s.Defs[Kick] = d
		}, "kick"},
		{"zero fps", func(s *AnimationSet) {
			d := s.Defs[Walk]
			d.FPS = 0
			s.Defs[Walk] = d
		}, "walk"},
		{"frame outside sheet", func(s *AnimationSet) {
			d := s.Defs[Die]
			d.Frames = []int{40}
			s.Defs[Die] = d
		}, "die"},
		{"negative frame", func(s *AnimationSet) {
			d := s.Defs[Idle]
			d.Frames = []int{-1}
			s.Defs[Idle] = d
		}, "idle"},
		{"zero frame size", func(s *AnimationSet) { s.Sheet.FrameWidth = 0 }, "sheet"},
		{"empty grid", func(s *AnimationSet) { s.Sheet.Rows = 0 }, "sheet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := cloneDefault(t)
			tt.mutate(set)
			requireConfigError(t, ValidateAnimations(set), tt.key)
		})
	}
}

func TestValidateNilSet(t *testing.T) {
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, ValidateAnimations(nil), &cfgErr)
}

func TestLoadAnimationsUnknownName(t *testing.T) {
	doc := `
sheet: {frameWidth: 48, frameHeight: 48, columns: 5, rows: 8}
animations:
  backflip: {frames: [0], fps: 8, loop: true}
`
	_, err := LoadAnimations([]byte(doc))
	requireConfigError(t, err, "backflip")
}

func TestLoadAnimationsBadYAML(t *testing.T) {
	_, err := LoadAnimations([]byte("sheet: [unterminated"))
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Empty(t, cfgErr.Key)
	assert.Contains(t, err.Error(), "decode")
}

func TestParseAnimationKey(t *testing.T) {
	key, ok := ParseAnimationKey("jumpkick")
	assert.True(t, ok)
	assert.Equal(t, JumpKick, key)

	_, ok = ParseAnimationKey("moonwalk")
	assert.False(t, ok)
}
