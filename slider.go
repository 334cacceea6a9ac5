package segslider

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Delegate observes index changes. IndexChanged is called exactly once per
// actual change, in the order changes happen.
type Delegate interface {
	IndexChanged(s *Slider, index int)
}

// DelegateFunc adapts a function to the Delegate interface.
type DelegateFunc func(s *Slider, index int)

// IndexChanged calls f(s, index).
func (f DelegateFunc) IndexChanged(s *Slider, index int) { f(s, index) }

// PointCounter may optionally be implemented by a Delegate to supply the
// point count dynamically. It is consulted on every geometry query.
type PointCounter interface {
	NumberOfPoints(s *Slider) int
}

// Slider is a horizontal track with N evenly spaced points and a thumb that
// snaps to one of them.
//
// A Slider is not safe for concurrent use. All calls, including input from
// platform callbacks, must happen on the goroutine running the game loop.
type Slider struct {
	cfg   Config
	frame Rect

	points int
	index  int
	thumb  float64 // thumb center x, local coordinates

	geom    Geometry
	outline Path

	delegate Delegate
	provider func() int

	machine  *interaction
	gestures *gestureRecognizer
	animator Animator
	renderer Renderer
	log      *slog.Logger

	debug     bool
	lastStats debugStats

	// Synthetic input and scripted tests.
	injectQueue     []syntheticPointerEvent
	injecting       bool
	testRunner      *TestRunner
	screenshotQueue []string

	// ScreenshotDir is the directory where Screenshot writes PNG files.
	ScreenshotDir string
}

// New creates a slider from cfg. Zero-valued fields take their defaults.
func New(cfg Config) *Slider {
	cfg.applyDefaults()
	s := &Slider{
		cfg:           cfg,
		frame:         cfg.Frame,
		points:        cfg.Points,
		animator:      cfg.Animator,
		renderer:      cfg.Renderer,
		log:           cfg.Logger.With("component", "segslider"),
		debug:         cfg.Debug,
		ScreenshotDir: cfg.ScreenshotDir,
	}
	if s.animator == nil {
		s.animator = NewTweenAnimator(cfg.Ease)
	}
	if s.renderer == nil {
		s.renderer = newEbitenRenderer()
	}
	s.machine = newInteraction(s)
	s.gestures = newGestureRecognizer(cfg.DragDeadZone)
	s.gestures.hitThumb = s.hitThumb
	s.gestures.hitTrack = s.hitTrack
	s.gestures.onPan = s.handlePan
	s.gestures.onTap = s.handleTap

	s.index = clampIndex(cfg.Index, s.PointCount())
	s.Relayout()
	return s
}

// --- Observer and point count ---

// SetDelegate sets the index observer. If d implements PointCounter it also
// supplies the point count.
func (s *Slider) SetDelegate(d Delegate) {
	s.delegate = d
	s.Relayout()
}

// SetPointCountProvider installs fn as the source of the point count,
// overriding both the stored count and a PointCounter delegate. Pass nil to
// remove it.
func (s *Slider) SetPointCountProvider(fn func() int) {
	s.provider = fn
	s.Relayout()
}

// PointCount returns the effective number of points: the provider's answer,
// else the delegate's, else the stored count. It is never less than 1.
func (s *Slider) PointCount() int {
	n := s.points
	if s.provider != nil {
		n = s.provider()
	} else if pc, ok := s.delegate.(PointCounter); ok {
		n = pc.NumberOfPoints(s)
	}
	if n < 1 {
		n = 1
	}
	return n
}

// SetPointCount changes the stored point count. Values below 1 are treated
// as 1. If the current index no longer fits it is clamped and observers are
// notified.
func (s *Slider) SetPointCount(n int) {
	if n < 1 {
		n = 1
	}
	s.points = n
	s.Relayout()
}

// --- Index ---

// CurrentIndex returns the selected index, clamped into the current range.
func (s *Slider) CurrentIndex() int {
	return clampIndex(s.index, s.PointCount())
}

// SetCurrentIndex selects i, clamped into range, and moves the thumb there
// without animation. A settle in flight is stopped first.
func (s *Slider) SetCurrentIndex(i int) {
	s.animator.Stop()
	s.commitIndex(i)
	s.Relayout()
}

// SetCurrentIndexAnimated moves the thumb to i with the settle animation and
// commits i when it arrives, exactly like a tap. A drag in progress is
// cancelled.
func (s *Slider) SetCurrentIndexAnimated(i int) {
	s.gestures.cancel()
	s.machine.settleToIndex(i)
}

// commitIndex clamps i and notifies the delegate if it differs from the
// current index.
func (s *Slider) commitIndex(i int) {
	i = clampIndex(i, s.PointCount())
	if i == s.index {
		return
	}
	old := s.index
	s.index = i
	s.log.Debug("index changed", "from", old, "to", i, "state", s.machine.state)
	if s.delegate != nil {
		s.delegate.IndexChanged(s, i)
	}
}

// --- Sizes and colors ---

// Size setters ignore NaN and infinite values and keep the previous size.

// SetTrackHeight sets the thickness of the band joining the points.
func (s *Slider) SetTrackHeight(h float64) {
	if !finite(h) {
		return
	}
	s.cfg.TrackHeight = max(h, 0)
	s.Relayout()
}

// SetThumbRadius sets the radius of the thumb.
func (s *Slider) SetThumbRadius(r float64) {
	if !finite(r) {
		return
	}
	s.cfg.ThumbRadius = max(r, 0)
	s.Relayout()
}

// SetCircleRadius sets the radius of each point, which is also the inset at
// both ends of the track.
func (s *Slider) SetCircleRadius(r float64) {
	if !finite(r) {
		return
	}
	s.cfg.CircleRadius = max(r, 0)
	s.Relayout()
}

// SetFrame moves and resizes the slider. A frame with a NaN or infinite
// field is ignored.
func (s *Slider) SetFrame(r Rect) {
	if !r.finite() {
		return
	}
	s.frame = r
	s.Relayout()
}

// Colors only affect drawing; they take effect on the next Draw.

// SetMinimumTrackColor sets the color of the track left of the thumb.
func (s *Slider) SetMinimumTrackColor(c Color) { s.cfg.MinimumTrackColor = c }

// SetMaximumTrackColor sets the color of the track right of the thumb.
func (s *Slider) SetMaximumTrackColor(c Color) { s.cfg.MaximumTrackColor = c }

// SetThumbColor sets the thumb's fill color.
func (s *Slider) SetThumbColor(c Color) { s.cfg.ThumbColor = c }

// SetShadow sets the thumb's drop shadow.
func (s *Slider) SetShadow(sh Shadow) { s.cfg.Shadow = sh }

// --- Layout ---

// Relayout recomputes geometry and the outline, clamps the index to the
// current point count and places the thumb on it without animation. A settle
// in flight is stopped.
func (s *Slider) Relayout() {
	s.animator.Stop()
	s.geom = s.geometry()
	s.outline = s.geom.Outline()
	s.commitIndex(s.index)
	s.thumb = s.geom.Center(s.index).X
	s.log.Debug("relayout", "points", s.geom.Points, "width", s.geom.Width, "index", s.index)
}

// Frame returns the slider's rectangle in screen coordinates.
func (s *Slider) Frame() Rect { return s.frame }

// Geometry returns the geometry of the last layout pass.
func (s *Slider) Geometry() Geometry { return s.geom }

// Outline returns the outline path of the last layout pass. It is empty when
// there is only one point.
func (s *Slider) Outline() Path { return s.outline }

// ThumbX returns the thumb's center in local coordinates.
func (s *Slider) ThumbX() float64 { return s.thumb }

// State returns the interaction state.
func (s *Slider) State() State { return s.machine.state }

// --- Frame loop ---

// Update runs one frame at the game's tick rate.
func (s *Slider) Update() {
	s.Tick(float32(1.0 / float64(ebiten.TPS())))
}

// Tick runs one frame of dt seconds: scripted steps, input, then animation.
func (s *Slider) Tick(dt float32) {
	if s.debug {
		start := time.Now()
		defer func() { s.lastStats.tickTime = time.Since(start) }()
	}
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	if s.PointCount() != s.geom.Points {
		s.Relayout()
	}
	if !s.processInjectedInput() && !s.injecting && !s.cfg.IgnoreDevices {
		s.gestures.processDevices(s.frame.X, s.frame.Y)
	}
	s.animator.Update(dt)
}

// Draw renders the slider onto screen and captures any queued screenshots.
func (s *Slider) Draw(screen *ebiten.Image) {
	var start time.Time
	if s.debug {
		start = time.Now()
	}
	s.renderer.Render(screen, s.Layers())
	if s.debug {
		s.lastStats.renderTime = time.Since(start)
		s.lastStats.segments = s.outline.Len()
		s.lastStats.state = s.machine.state
		s.debugLog(s.lastStats)
		if screen != nil {
			s.drawDebugOverlay(screen)
		}
	}
	s.flushScreenshots(screen)
}

// --- Gesture wiring ---

func (s *Slider) hitThumb(x, y float64) bool {
	m := s.cfg.ThumbHitMargin
	r := s.geom.ThumbFrame(s.thumb).Inset(-m.X, -m.Y)
	return r.Contains(x, y)
}

func (s *Slider) hitTrack(x, y float64) bool {
	return Rect{Width: s.geom.Width, Height: s.geom.Height}.Contains(x, y)
}

func (s *Slider) handlePan(e PanEvent) {
	switch e.Phase {
	case PhaseBegan:
		s.machine.begin()
	case PhaseChanged:
		s.machine.change(e.TranslationX)
	case PhaseEnded:
		s.machine.end(e.TranslationX)
	case PhaseCancelled:
		s.machine.cancel()
	}
}

func (s *Slider) handleTap(e TapEvent) {
	s.machine.tap(e.X)
}

// --- interactionHost ---

func (s *Slider) geometry() Geometry {
	return Geometry{
		Points:       s.PointCount(),
		Width:        s.frame.Width,
		Height:       s.frame.Height,
		CircleRadius: s.cfg.CircleRadius,
		TrackHeight:  s.cfg.TrackHeight,
		ThumbRadius:  s.cfg.ThumbRadius,
	}
}

func (s *Slider) thumbX() float64     { return s.thumb }
func (s *Slider) moveThumb(x float64) { s.thumb = x }
func (s *Slider) stopAnimation()      { s.animator.Stop() }

func (s *Slider) animateThumb(to float64, done func(bool)) {
	s.log.Debug("settle", "from", s.thumb, "to", to)
	s.animator.Animate(s.thumb, to, s.cfg.SettleDuration, s.moveThumb, done)
}
