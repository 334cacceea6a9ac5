package segslider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHost records what the state machine asks of the widget. Animations
// stay pending until finish is called.
type fakeHost struct {
	geom    Geometry
	thumb   float64
	commits []int
	index   int

	target  float64
	pending func(bool)
}

func newFakeHost(index int) *fakeHost {
	g := Geometry{Points: 5, Width: 200, Height: 40, CircleRadius: 4, TrackHeight: 2, ThumbRadius: 14}
	return &fakeHost{geom: g, index: index, thumb: g.Center(index).X}
}

func (h *fakeHost) geometry() Geometry  { return h.geom }
func (h *fakeHost) thumbX() float64     { return h.thumb }
func (h *fakeHost) moveThumb(x float64) { h.thumb = x }

func (h *fakeHost) animateThumb(to float64, done func(bool)) {
	h.stopAnimation()
	h.target = to
	h.pending = done
}

func (h *fakeHost) stopAnimation() {
	if d := h.pending; d != nil {
		h.pending = nil
		d(false)
	}
}

func (h *fakeHost) commitIndex(i int) {
	i = h.geom.ClampIndex(i)
	if i == h.index {
		return
	}
	h.index = i
	h.commits = append(h.commits, i)
}

// finish completes the pending animation at its target.
func (h *fakeHost) finish() {
	d := h.pending
	if d == nil {
		return
	}
	h.pending = nil
	h.thumb = h.target
	d(true)
}

func TestInteractionTapCommitsOnArrival(t *testing.T) {
	h := newFakeHost(2)
	m := newInteraction(h)

	m.tap(0)
	assert.Equal(t, StateSettling, m.state)
	assert.Empty(t, h.commits, "tap must not commit before the thumb arrives")
	assert.Equal(t, 4.0, h.target)

	h.finish()
	assert.Equal(t, []int{0}, h.commits)
	assert.Equal(t, StateIdle, m.state)
	assert.Equal(t, 4.0, h.thumb)
}

func TestInteractionDragCommitsLive(t *testing.T) {
	h := newFakeHost(2)
	m := newInteraction(h)

	m.begin()
	require.Equal(t, StateDragging, m.state)

	m.change(20) // x=120, still nearest 2
	assert.Equal(t, 120.0, h.thumb)
	assert.Empty(t, h.commits)

	m.change(30) // x=130, nearest 3
	assert.Equal(t, []int{3}, h.commits)

	m.change(-200) // clamped to the first point
	assert.Equal(t, 4.0, h.thumb)
	assert.Equal(t, []int{3, 0}, h.commits)
}

func TestInteractionDragEndCommitsBeforeSettle(t *testing.T) {
	h := newFakeHost(2)
	m := newInteraction(h)

	m.begin()
	m.end(40) // x=140, nearest 3
	assert.Equal(t, []int{3}, h.commits, "drag end commits before animating")
	assert.Equal(t, StateSettling, m.state)
	assert.Equal(t, 148.0, h.target)

	h.finish()
	assert.Equal(t, StateIdle, m.state)
	assert.Equal(t, []int{3}, h.commits)
}

func TestInteractionOvershootSettlesOnLastPoint(t *testing.T) {
	h := newFakeHost(2)
	m := newInteraction(h)

	m.begin()
	m.change(1000)
	assert.Equal(t, 196.0, h.thumb)
	m.end(1000)
	assert.Equal(t, 196.0, h.target)
	assert.Equal(t, []int{4}, h.commits)
}

func TestInteractionCancelUsesLastPosition(t *testing.T) {
	h := newFakeHost(0)
	m := newInteraction(h)

	m.begin()
	m.change(50) // x=54, nearest 1
	m.cancel()
	assert.Equal(t, []int{1}, h.commits)
	assert.Equal(t, 52.0, h.target)
	assert.Equal(t, StateSettling, m.state)
}

func TestInteractionBeginInterruptsSettle(t *testing.T) {
	h := newFakeHost(2)
	m := newInteraction(h)

	m.tap(196)
	h.thumb = 150 // partway there
	m.begin()

	assert.Equal(t, StateDragging, m.state)
	assert.Equal(t, []int{4}, h.commits, "interrupted tap still commits its index")
	require.NotNil(t, m.drag)
	assert.Equal(t, 150.0, m.drag.anchorX, "drag anchors on the interpolated position")

	m.change(0)
	assert.Equal(t, 150.0, h.thumb)
}

func TestInteractionSupersededSettleKeepsSettling(t *testing.T) {
	h := newFakeHost(2)
	m := newInteraction(h)

	m.tap(0)
	m.tap(196)
	assert.Equal(t, StateSettling, m.state, "stale completion must not return to idle")
	assert.Equal(t, []int{0}, h.commits)

	h.finish()
	assert.Equal(t, []int{0, 4}, h.commits)
	assert.Equal(t, StateIdle, m.state)
}

func TestInteractionTapIgnoredWhileDragging(t *testing.T) {
	h := newFakeHost(2)
	m := newInteraction(h)

	m.begin()
	m.tap(0)
	assert.Equal(t, StateDragging, m.state)
	assert.Nil(t, h.pending)
	assert.Empty(t, h.commits)
}

func TestInteractionEventsWithoutDragIgnored(t *testing.T) {
	h := newFakeHost(2)
	m := newInteraction(h)

	m.change(50)
	m.end(50)
	m.cancel()
	assert.Equal(t, StateIdle, m.state)
	assert.Equal(t, 100.0, h.thumb)
	assert.Empty(t, h.commits)
}

func TestInteractionSettleToIndexClamps(t *testing.T) {
	h := newFakeHost(2)
	m := newInteraction(h)

	m.settleToIndex(99)
	assert.Equal(t, 196.0, h.target)
	h.finish()
	assert.Equal(t, []int{4}, h.commits)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "dragging", StateDragging.String())
	assert.Equal(t, "settling", StateSettling.String())
	assert.Equal(t, "unknown", State(9).String())
}
