// Package controller implements the player's animation and movement state
// machine. It is driven once per tick with an Intent and receives explicit
// completion events for one-shot animations.
package controller

import (
	"math/rand/v2"

	cfg "github.com/automoto/brawler/config"
)

// RandSource picks attack animations. *rand.Rand satisfies it.
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Options configures a Controller.
type Options struct {
	Speed      float64 // horizontal speed in world units per second
	Settings   cfg.ControllerSettings
	Animations *cfg.AnimationSet
	Rand       RandSource
}

// State is a snapshot of the controller.
type State struct {
	Current cfg.AnimationKey
	Locked  bool
	Facing  Facing
	Emote   bool // a looping emote is holding until the next intent
}

// Command is the output of one tick.
type Command struct {
	Play      cfg.AnimationKey
	HasPlay   bool // Play should be sent to the animation player
	Restart   bool // restart even if Play is already current
	VelocityX float64
	FlipX     bool
}

// Controller owns the current animation, the attack lock and facing.
type Controller struct {
	opts  Options
	state State

	emitted       cfg.AnimationKey // last key sent to the animation player
	lastLocomotor cfg.AnimationKey // last walk/idle chosen from movement intent
	pending       bool             // an emote was requested between ticks
	lockedTicks   int
}

// New returns a controller in the idle/unlocked state, facing right.
// The animation player is expected to start on idle.
func New(opts Options) *Controller {
	if opts.Rand == nil {
		opts.Rand = globalRand{}
	}
	c := &Controller{opts: opts}
	c.Reset()
	c.emitted = cfg.Idle
	return c
}

// Reset returns to idle/unlocked. The next Tick re-emits idle.
func (c *Controller) Reset() {
	c.state = State{Current: cfg.Idle, Facing: c.state.Facing}
	c.emitted = cfg.AnimNone
	c.lastLocomotor = cfg.Idle
	c.pending = false
	c.lockedTicks = 0
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// LockedTicks is the number of ticks spent in the current lock.
func (c *Controller) LockedTicks() int {
	return c.lockedTicks
}

// Settings returns the active behaviour settings.
func (c *Controller) Settings() cfg.ControllerSettings {
	return c.opts.Settings
}

// SetSettings changes behaviour settings without touching state.
func (c *Controller) SetSettings(s cfg.ControllerSettings) {
	c.opts.Settings = s
}

// SetAnimations swaps the animation definitions and resets to idle.
func (c *Controller) SetAnimations(set *cfg.AnimationSet) {
	c.opts.Animations = set
	c.Reset()
}

// Tick advances the state machine by one frame.
func (c *Controller) Tick(intent Intent) Command {
	intent = intent.Normalize()

	if c.pending {
		c.pending = false
		if c.state.Locked {
			c.lockedTicks = 0
		}
		return c.command(c.state.Current, true, 0)
	}

	// Locked: wait for the completion edge.
	if c.state.Locked {
		c.lockedTicks++
		return c.command(c.state.Current, false, 0)
	}

	if intent.Action {
		attack := c.pickAttack()
		c.state.Emote = false
		c.enter(attack)
		return c.command(attack, true, 0)
	}

	switch intent.Move {
	case MoveLeft, MoveRight:
		c.state.Emote = false
		velocity := c.opts.Speed
		c.state.Facing = FacingRight
		if intent.Move == MoveLeft {
			velocity = -velocity
			c.state.Facing = FacingLeft
		}
		c.state.Current = cfg.Walk
		c.lastLocomotor = cfg.Walk
		return c.command(cfg.Walk, false, velocity)
	}

	if c.state.Emote {
		return c.command(c.state.Current, false, 0)
	}

	c.state.Current = cfg.Idle
	c.lastLocomotor = cfg.Idle
	return c.command(cfg.Idle, false, 0)
}

// Complete delivers the completion event for a one-shot animation. Events for
// any key other than the one holding the lock are stale and ignored.
func (c *Controller) Complete(key cfg.AnimationKey) bool {
	if !c.state.Locked || key != c.state.Current {
		return false
	}

	next := cfg.Idle
	if c.opts.Settings.ResumeLast {
		next = c.lastLocomotor
	}
	c.state.Locked = false
	c.state.Emote = false
	c.state.Current = next
	c.lockedTicks = 0
	return true
}

// Emote requests a showcase animation. It is refused while locked.
// One-shot emotes lock like attacks; looping emotes hold until the next
// movement or action intent.
func (c *Controller) Emote(key cfg.AnimationKey) bool {
	if c.state.Locked || !key.Valid() {
		return false
	}
	if _, ok := c.opts.Animations.Def(key); !ok {
		return false
	}
	c.enter(key)
	c.state.Emote = !c.state.Locked
	c.pending = true
	return true
}

func (c *Controller) enter(key cfg.AnimationKey) {
	c.state.Current = key
	c.state.Locked = c.opts.Animations.IsOneShot(key)
	c.lockedTicks = 0
}

func (c *Controller) pickAttack() cfg.AnimationKey {
	s := c.opts.Settings
	if s.AttackMode == cfg.AttackFixed || len(s.AttackSet) == 0 {
		if s.FixedAttack.Valid() {
			return s.FixedAttack
		}
		return cfg.Punch
	}
	return s.AttackSet[c.opts.Rand.IntN(len(s.AttackSet))]
}

// command builds the tick output. Play is only flagged when the key differs
// from the last one sent, or when restart is requested.
func (c *Controller) command(key cfg.AnimationKey, restart bool, velocity float64) Command {
	cmd := Command{
		Play:      key,
		VelocityX: velocity,
		FlipX:     c.flip(),
	}
	if restart || key != c.emitted {
		cmd.HasPlay = true
		cmd.Restart = restart
		c.emitted = key
	}
	return cmd
}

func (c *Controller) flip() bool {
	left := c.state.Facing == FacingLeft
	if c.opts.Settings.MirrorLeft {
		return left
	}
	return !left
}
