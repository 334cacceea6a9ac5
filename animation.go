package segslider

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animator drives a single float property from one value to another over
// time. Implementations must call done exactly once per Animate call: with
// true when the animation runs to completion, or false when it is stopped or
// superseded by a newer Animate call.
//
// There is no global animation manager; the owner calls Update every frame.
type Animator interface {
	Animate(from, to float64, duration float32, apply func(float64), done func(finished bool))
	Stop()
	Update(dt float32)
	Active() bool
}

// tween is one in-flight animation.
type tween struct {
	tw    *gween.Tween
	to    float64
	apply func(float64)
	done  func(bool)
}

// TweenAnimator is the default Animator, backed by gween.
type TweenAnimator struct {
	Ease ease.TweenFunc
	cur  *tween
}

// NewTweenAnimator returns an animator using fn for easing. A nil fn selects
// ease.InOutQuad.
func NewTweenAnimator(fn ease.TweenFunc) *TweenAnimator {
	if fn == nil {
		fn = ease.InOutQuad
	}
	return &TweenAnimator{Ease: fn}
}

// Animate starts animating from -> to, stopping any animation already in
// flight first. A non-positive duration applies the target and completes
// before returning.
func (a *TweenAnimator) Animate(from, to float64, duration float32, apply func(float64), done func(bool)) {
	a.Stop()
	if duration <= 0 {
		if apply != nil {
			apply(to)
		}
		if done != nil {
			done(true)
		}
		return
	}
	fn := a.Ease
	if fn == nil {
		fn = ease.InOutQuad
	}
	a.cur = &tween{
		tw:    gween.New(float32(from), float32(to), duration, fn),
		to:    to,
		apply: apply,
		done:  done,
	}
}

// Stop cancels the animation in flight, if any. The property keeps its
// current interpolated value and the completion fires with false.
func (a *TweenAnimator) Stop() {
	t := a.cur
	if t == nil {
		return
	}
	a.cur = nil
	if t.done != nil {
		t.done(false)
	}
}

// Update advances the animation by dt seconds and writes the new value.
func (a *TweenAnimator) Update(dt float32) {
	t := a.cur
	if t == nil {
		return
	}
	val, finished := t.tw.Update(dt)
	if !finished {
		if t.apply != nil {
			t.apply(float64(val))
		}
		return
	}
	// Land exactly on the target; float32 interpolation is not exact.
	if t.apply != nil {
		t.apply(t.to)
	}
	// Clear before calling done so the callback may start a new animation.
	a.cur = nil
	if t.done != nil {
		t.done(true)
	}
}

// Active reports whether an animation is in flight.
func (a *TweenAnimator) Active() bool {
	return a.cur != nil
}
