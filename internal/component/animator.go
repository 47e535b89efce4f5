// internal/component/animator.go
package component

// Clip names an animation the rendering side should play.
type Clip string

const (
	ClipIdle          Clip = "idle"
	ClipWalk          Clip = "walk"
	ClipAttack        Clip = "attack"
	ClipTeleportStart Clip = "teleport_start"
	ClipTeleportEnd   Clip = "teleport_end"
	ClipDeath         Clip = "death"
)

// Animator counts frames of the current clip. The simulation advances it one frame per
// animation tick; renderers only read it.
type Animator struct {
	Clip   Clip
	Frame  int
	Frames int
}

// Play restarts the animator on clip.
func (a *Animator) Play(clip Clip, frames int) {
	if frames < 1 {
		frames = 1
	}
	a.Clip = clip
	a.Frame = 0
	a.Frames = frames
}

// Final reports whether the clip sits on its last frame.
func (a *Animator) Final() bool {
	return a.Frame >= a.Frames-1
}

// Advance moves one frame forward (stopping on the last one) and reports Final.
func (a *Animator) Advance() bool {
	if a.Frame < a.Frames-1 {
		a.Frame++
	}
	return a.Final()
}
