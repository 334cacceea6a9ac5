package segslider

// State is the phase of the slider's interaction state machine.
type State uint8

const (
	StateIdle     State = iota // no gesture, thumb at rest
	StateDragging              // a pan gesture is tracking the thumb
	StateSettling              // the thumb is animating onto a point
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// interactionHost is what the state machine needs from the widget. The
// slider implements it; tests substitute a fake.
type interactionHost interface {
	geometry() Geometry
	thumbX() float64
	moveThumb(x float64)
	animateThumb(to float64, done func(finished bool))
	stopAnimation()
	commitIndex(i int)
}

// dragSession lives from pan-began to pan-ended/cancelled.
type dragSession struct {
	anchorX float64
	lastX   float64
}

// interaction maps pan and tap gestures onto index selection and thumb
// movement.
type interaction struct {
	host  interactionHost
	state State
	drag  *dragSession

	// settleGen identifies the current settle so completions of superseded
	// animations cannot return the machine to idle.
	settleGen uint64
}

func newInteraction(host interactionHost) *interaction {
	return &interaction{host: host}
}

// begin starts a drag. A settle in flight is interrupted and the thumb's
// current interpolated position becomes the anchor.
func (m *interaction) begin() {
	if m.drag != nil {
		return
	}
	m.host.stopAnimation()
	x := m.host.thumbX()
	m.drag = &dragSession{anchorX: x, lastX: x}
	m.state = StateDragging
}

// change moves the thumb to anchor+tx, clamped to the first and last points,
// and commits whichever index is now nearest.
func (m *interaction) change(tx float64) {
	if m.drag == nil {
		return
	}
	g := m.host.geometry()
	x := m.candidate(g, tx)
	m.drag.lastX = x
	m.host.moveThumb(x)
	m.host.commitIndex(g.NearestIndex(x))
}

// end finishes a drag at translation tx. The index is committed before the
// settle animation starts.
func (m *interaction) end(tx float64) {
	if m.drag == nil {
		return
	}
	m.settleDrag(m.candidate(m.host.geometry(), tx))
}

// cancel finishes a drag at the last tracked position.
func (m *interaction) cancel() {
	if m.drag == nil {
		return
	}
	m.settleDrag(m.drag.lastX)
}

// tap jumps to the point nearest x. Unlike a drag, the index is committed
// only once the thumb has arrived.
func (m *interaction) tap(x float64) {
	if m.drag != nil {
		return
	}
	m.settleToIndex(m.host.geometry().NearestIndex(x))
}

// settleToIndex animates the thumb to point i and commits i on completion.
func (m *interaction) settleToIndex(i int) {
	g := m.host.geometry()
	i = g.ClampIndex(i)
	m.settle(g.Center(i).X, func() { m.host.commitIndex(i) })
}

func (m *interaction) settleDrag(x float64) {
	g := m.host.geometry()
	i := g.NearestIndex(x)
	m.drag = nil
	m.host.commitIndex(i)
	m.settle(g.Center(i).X, nil)
}

func (m *interaction) settle(to float64, onDone func()) {
	m.settleGen++
	gen := m.settleGen
	m.state = StateSettling
	m.host.animateThumb(to, func(bool) {
		if onDone != nil {
			onDone()
		}
		if m.settleGen == gen && m.state == StateSettling {
			m.state = StateIdle
		}
	})
}

func (m *interaction) candidate(g Geometry, tx float64) float64 {
	return clampFloat(m.drag.anchorX+tx, g.MinX(), g.MaxX())
}
