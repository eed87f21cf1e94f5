package animations

// Animation plays an ordered sequence of sheet frames at a fixed rate.
// A looping animation repeats until replaced; a one-shot animation stops on
// its last frame and raises a single completion edge.
type Animation struct {
	Frames []int   // sheet indices in playback order
	FPS    float64 // frames per second
	Loop   bool

	tps      int     // host ticks per second
	progress float64 // accumulated FPS units; a frame advances every tps units
	index    int
	Looped   bool // wrapped at least once (looping animations)
	finished bool
	complete bool // pending completion edge
}

func (a *Animation) Update() {
	if a.finished || len(a.Frames) == 0 || a.tps <= 0 {
		return
	}

	a.progress += a.FPS
	for a.progress >= float64(a.tps) {
		a.progress -= float64(a.tps)
		a.index++
		if a.index < len(a.Frames) {
			continue
		}
		if a.Loop {
			a.index = 0
			a.Looped = true
			continue
		}
		// One-shot: hold the last frame
		a.index = len(a.Frames) - 1
		a.finished = true
		a.complete = true
		a.progress = 0
		return
	}
}

// Frame returns the sheet index of the current frame.
func (a *Animation) Frame() int {
	if len(a.Frames) == 0 {
		return 0
	}
	return a.Frames[a.index]
}

// Index returns the position within Frames.
func (a *Animation) Index() int {
	return a.index
}

// Finished reports whether a one-shot animation reached its end.
func (a *Animation) Finished() bool {
	return a.finished
}

// TakeCompleted returns true exactly once after a one-shot animation ends.
func (a *Animation) TakeCompleted() bool {
	if !a.complete {
		return false
	}
	a.complete = false
	return true
}

func (a *Animation) Restart() {
	a.index = 0
	a.progress = 0
	a.Looped = false
	a.finished = false
	a.complete = false
}

// Duration returns the length of one pass in ticks.
func (a *Animation) Duration() int {
	if a.FPS <= 0 {
		return 0
	}
	ticks := float64(len(a.Frames)) * float64(a.tps) / a.FPS
	return int(ticks + 0.5)
}

func NewAnimation(frames []int, fps float64, loop bool, tps int) *Animation {
	f := make([]int, len(frames))
	copy(f, frames)
	return &Animation{
		Frames: f,
		FPS:    fps,
		Loop:   loop,
		tps:    tps,
	}
}
