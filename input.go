package segslider

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels
)

// GesturePhase identifies where a pan gesture is in its lifetime.
type GesturePhase uint8

const (
	PhaseBegan     GesturePhase = iota // movement left the dead zone on the thumb
	PhaseChanged                       // pointer moved while panning
	PhaseEnded                         // pointer released while panning
	PhaseCancelled                     // pan aborted without a release
)

func (p GesturePhase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// PanEvent carries a phase and the translation since the pointer went down.
type PanEvent struct {
	Phase        GesturePhase
	TranslationX float64
	TranslationY float64
	PointerID    int
}

// TapEvent carries the local position of a press and release that never
// left the dead zone.
type TapEvent struct {
	X, Y      float64
	PointerID int
}

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	onThumb  bool // press landed in the thumb hit region
	missed   bool // press landed outside the widget; held but inert
	moved    bool // left the dead zone; no longer a tap
	dragging bool
}

// gestureRecognizer turns raw pointer samples into pan and tap gestures.
// Only one pointer owns a gesture at a time; presses from other pointers are
// ignored until it is released.
type gestureRecognizer struct {
	pointers     [maxPointers]pointerState
	owner        int // pointer that owns the current gesture, -1 if none
	dragDeadZone float64

	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	hitThumb func(x, y float64) bool
	hitTrack func(x, y float64) bool
	onPan    func(PanEvent)
	onTap    func(TapEvent)
}

func newGestureRecognizer(deadZone float64) *gestureRecognizer {
	if deadZone <= 0 {
		deadZone = defaultDragDeadZone
	}
	return &gestureRecognizer{owner: -1, dragDeadZone: deadZone}
}

// processPointer runs the pointer state machine for a single pointer sample
// in widget-local coordinates.
func (g *gestureRecognizer) processPointer(pointerID int, x, y float64, pressed bool) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &g.pointers[pointerID]
	if ps.missed {
		if !pressed {
			*ps = pointerState{}
		}
		return
	}
	if g.owner >= 0 && g.owner != pointerID {
		return
	}

	switch {
	case pressed && !ps.down:
		*ps = pointerState{
			down:   true,
			startX: x, startY: y,
			lastX: x, lastY: y,
		}
		if g.hitThumb != nil {
			ps.onThumb = g.hitThumb(x, y)
		}
		if !ps.onThumb && g.hitTrack != nil && !g.hitTrack(x, y) {
			ps.missed = true
			return
		}
		g.owner = pointerID

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		if !ps.moved {
			dx := x - ps.startX
			dy := y - ps.startY
			if math.Sqrt(dx*dx+dy*dy) > g.dragDeadZone {
				ps.moved = true
				if ps.onThumb {
					ps.dragging = true
					g.firePan(PhaseBegan, pointerID, 0, 0)
				}
			}
		}
		if ps.dragging {
			g.firePan(PhaseChanged, pointerID, x-ps.startX, y-ps.startY)
		}
		ps.lastX = x
		ps.lastY = y

	case !pressed && ps.down:
		if ps.dragging {
			g.firePan(PhaseEnded, pointerID, x-ps.startX, y-ps.startY)
		} else if !ps.moved && g.onTap != nil {
			g.onTap(TapEvent{X: x, Y: y, PointerID: pointerID})
		}
		*ps = pointerState{}
		g.owner = -1
	}
}

// cancel aborts the gesture in progress. A pan receives PhaseCancelled; a
// pending tap is dropped.
func (g *gestureRecognizer) cancel() {
	if g.owner < 0 {
		return
	}
	id := g.owner
	ps := &g.pointers[id]
	if ps.dragging {
		g.firePan(PhaseCancelled, id, ps.lastX-ps.startX, ps.lastY-ps.startY)
	}
	*ps = pointerState{}
	g.owner = -1
}

// active reports whether a pointer is currently down.
func (g *gestureRecognizer) active() bool {
	return g.owner >= 0
}

func (g *gestureRecognizer) firePan(phase GesturePhase, pointerID int, tx, ty float64) {
	if g.onPan == nil {
		return
	}
	g.onPan(PanEvent{Phase: phase, TranslationX: tx, TranslationY: ty, PointerID: pointerID})
}

// --- Device input ---

// processDevices samples the mouse (pointer 0) and touches (pointers 1-9),
// translating screen coordinates by the widget origin.
func (g *gestureRecognizer) processDevices(originX, originY float64) {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	g.processPointer(0, float64(mx)-originX, float64(my)-originY, pressed)

	touchIDs := ebiten.AppendTouchIDs(g.prevTouchIDs[:0])
	g.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := g.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		g.processPointer(slot, float64(tx)-originX, float64(ty)-originY, true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if g.touchUsed[i] && !activeSlots[i] {
			ps := &g.pointers[i]
			if ps.down {
				g.processPointer(i, ps.lastX, ps.lastY, false)
			}
			g.touchUsed[i] = false
			g.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (g *gestureRecognizer) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if g.touchUsed[i] && g.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !g.touchUsed[i] {
			g.touchUsed[i] = true
			g.touchMap[i] = tid
			return i
		}
	}
	return -1
}
