package controller

import (
	"testing"

	cfg "github.com/automoto/brawler/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqRand returns the queued values in order, then repeats the last one.
type seqRand struct {
	values []int
	calls  []int
}

func (r *seqRand) IntN(n int) int {
	r.calls = append(r.calls, n)
	v := r.values[0]
	if len(r.values) > 1 {
		r.values = r.values[1:]
	}
	return v % n
}

func newTestController(t *testing.T, mutate func(*cfg.ControllerSettings), rnd RandSource) *Controller {
	t.Helper()
	require.NoError(t, cfg.CheckAnimations())

	settings := cfg.Controller
	settings.AttackSet = append([]cfg.AnimationKey(nil), cfg.Controller.AttackSet...)
	if mutate != nil {
		mutate(&settings)
	}
	if rnd == nil {
		rnd = &seqRand{values: []int{0}}
	}
	return New(Options{
		Speed:      300,
		Settings:   settings,
		Animations: cfg.Animations,
		Rand:       rnd,
	})
}

var (
	none   = Intent{}
	left   = Intent{Move: MoveLeft}
	right  = Intent{Move: MoveRight}
	action = Intent{Action: true}
)

func TestInitialState(t *testing.T) {
	c := newTestController(t, nil, nil)

	s := c.State()
	assert.Equal(t, cfg.Idle, s.Current)
	assert.False(t, s.Locked)
	assert.Equal(t, FacingRight, s.Facing)

	// Idle is already playing at scene start.
	cmd := c.Tick(none)
	assert.False(t, cmd.HasPlay)
	assert.Zero(t, cmd.VelocityX)
}

func TestWalkEmitsPlayOnlyOnce(t *testing.T) {
	c := newTestController(t, nil, nil)

	for i := 1; i <= 20; i++ {
		cmd := c.Tick(left)
		assert.Equal(t, cfg.Walk, c.State().Current, "tick %d", i)
		assert.Equal(t, i == 1, cmd.HasPlay, "tick %d", i)
		assert.False(t, cmd.Restart)
		assert.Equal(t, -300.0, cmd.VelocityX)
	}
}

func TestDirectionChangeKeepsWalkPlaying(t *testing.T) {
	c := newTestController(t, nil, nil)

	first := c.Tick(left)
	second := c.Tick(right)

	assert.True(t, first.HasPlay)
	assert.False(t, second.HasPlay)
	assert.Equal(t, 300.0, second.VelocityX)
	assert.Equal(t, FacingRight, c.State().Facing)
}

func TestMirrorConvention(t *testing.T) {
	t.Run("left flips", func(t *testing.T) {
		c := newTestController(t, func(s *cfg.ControllerSettings) { s.MirrorLeft = true }, nil)
		assert.True(t, c.Tick(left).FlipX)
		assert.False(t, c.Tick(right).FlipX)
	})
	t.Run("right flips", func(t *testing.T) {
		c := newTestController(t, func(s *cfg.ControllerSettings) { s.MirrorLeft = false }, nil)
		assert.False(t, c.Tick(left).FlipX)
		assert.True(t, c.Tick(right).FlipX)
	})
}

func TestScenarioIdleWalkIdleAttack(t *testing.T) {
	rnd := &seqRand{values: []int{1}} // punch
	c := newTestController(t, nil, rnd)

	var got []cfg.AnimationKey
	for _, in := range []Intent{none, left, left, none, action} {
		c.Tick(in)
		got = append(got, c.State().Current)
	}
	assert.Equal(t, []cfg.AnimationKey{cfg.Idle, cfg.Walk, cfg.Walk, cfg.Idle, cfg.Punch}, got)
	assert.Equal(t, []int{3}, rnd.calls)

	// Held at the attack whatever the intent.
	for _, in := range []Intent{left, right, action, none} {
		cmd := c.Tick(in)
		assert.Equal(t, cfg.Punch, c.State().Current)
		assert.True(t, c.State().Locked)
		assert.False(t, cmd.HasPlay)
		assert.Zero(t, cmd.VelocityX)
	}

	require.True(t, c.Complete(cfg.Punch))
	assert.Equal(t, cfg.Idle, c.State().Current)
	assert.False(t, c.State().Locked)

	cmd := c.Tick(none)
	assert.True(t, cmd.HasPlay)
	assert.Equal(t, cfg.Idle, cmd.Play)
}

func TestAttackEmitsRestartEvenWhenRepeated(t *testing.T) {
	c := newTestController(t, func(s *cfg.ControllerSettings) { s.AttackMode = cfg.AttackFixed }, nil)

	cmd := c.Tick(action)
	require.True(t, cmd.HasPlay)
	assert.True(t, cmd.Restart)
	assert.Equal(t, cfg.Punch, cmd.Play)
	require.True(t, c.Complete(cfg.Punch))

	cmd = c.Tick(action)
	assert.True(t, cmd.HasPlay)
	assert.True(t, cmd.Restart)
	assert.Equal(t, cfg.Punch, cmd.Play)
}

func TestRandomAttackUsesInjectedSource(t *testing.T) {
	rnd := &seqRand{values: []int{0, 1, 2}}
	c := newTestController(t, nil, rnd)

	var picked []cfg.AnimationKey
	for i := 0; i < 3; i++ {
		cmd := c.Tick(action)
		picked = append(picked, cmd.Play)
		require.True(t, c.Complete(cmd.Play))
		c.Tick(none)
	}
	assert.Equal(t, []cfg.AnimationKey{cfg.Kick, cfg.Punch, cfg.JumpKick}, picked)
}

func TestStaleCompletionIgnored(t *testing.T) {
	c := newTestController(t, func(s *cfg.ControllerSettings) { s.AttackMode = cfg.AttackFixed }, nil)

	assert.False(t, c.Complete(cfg.Punch), "not locked")

	c.Tick(action)
	assert.False(t, c.Complete(cfg.Kick), "different one-shot")
	assert.True(t, c.State().Locked)
	assert.True(t, c.Complete(cfg.Punch))
	assert.False(t, c.Complete(cfg.Punch), "already delivered")
}

func TestResumeLastDirectionalAnimation(t *testing.T) {
	c := newTestController(t, func(s *cfg.ControllerSettings) {
		s.ResumeLast = true
		s.AttackMode = cfg.AttackFixed
	}, nil)

	c.Tick(right)
	c.Tick(action)
	require.True(t, c.Complete(cfg.Punch))

	assert.Equal(t, cfg.Walk, c.State().Current)
	assert.False(t, c.State().Locked)

	cmd := c.Tick(none)
	assert.Equal(t, cfg.Idle, cmd.Play)
	assert.True(t, cmd.HasPlay)
}

func TestLockedTicksCount(t *testing.T) {
	c := newTestController(t, nil, nil)

	c.Tick(action)
	for i := 0; i < 5; i++ {
		c.Tick(none)
	}
	assert.Equal(t, 5, c.LockedTicks())
}

func TestInvalidIntentIsNoMovement(t *testing.T) {
	c := newTestController(t, nil, nil)
	c.Tick(left)

	cmd := c.Tick(Intent{Move: Direction(42)})

	assert.Equal(t, cfg.Idle, c.State().Current)
	assert.True(t, cmd.HasPlay)
	assert.Zero(t, cmd.VelocityX)
}

func TestLoopingEmoteHoldsUntilIntent(t *testing.T) {
	c := newTestController(t, nil, nil)

	require.True(t, c.Emote(cfg.Win))
	cmd := c.Tick(none)
	assert.True(t, cmd.HasPlay)
	assert.Equal(t, cfg.Win, cmd.Play)

	for i := 0; i < 3; i++ {
		cmd = c.Tick(none)
		assert.False(t, cmd.HasPlay)
		assert.Equal(t, cfg.Win, c.State().Current)
	}

	cmd = c.Tick(left)
	assert.Equal(t, cfg.Walk, cmd.Play)
	assert.False(t, c.State().Emote)
}

func TestOneShotEmoteLocks(t *testing.T) {
	c := newTestController(t, nil, nil)

	require.True(t, c.Emote(cfg.Die))
	cmd := c.Tick(left)
	assert.Equal(t, cfg.Die, cmd.Play)
	assert.True(t, c.State().Locked)

	assert.False(t, c.Emote(cfg.Win), "refused while locked")
	assert.False(t, c.Tick(right).HasPlay)
	assert.True(t, c.Complete(cfg.Die))
}

func TestResetReemitsIdle(t *testing.T) {
	c := newTestController(t, nil, nil)
	c.Tick(action)

	c.Reset()

	assert.False(t, c.State().Locked)
	cmd := c.Tick(none)
	assert.True(t, cmd.HasPlay)
	assert.Equal(t, cfg.Idle, cmd.Play)
}
