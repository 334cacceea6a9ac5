package segslider

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// debugStats holds per-frame timing and geometry metrics.
// Only populated when the slider's debug mode is on.
type debugStats struct {
	tickTime   time.Duration
	renderTime time.Duration
	segments   int
	state      State
}

var (
	debugHitColor    = color.RGBA{R: 255, G: 64, B: 64, A: 255}
	debugCenterColor = color.RGBA{R: 0, G: 160, B: 0, A: 255}
)

// SetDebug turns debug mode on or off. In debug mode every frame logs its
// timings at debug level and Draw outlines the thumb's hit region and marks
// every point center.
func (s *Slider) SetDebug(on bool) { s.debug = on }

// debugLog records the stats of the frame just drawn.
func (s *Slider) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	s.log.Debug("frame",
		"tick", stats.tickTime,
		"render", stats.renderTime,
		"segments", stats.segments,
		"state", stats.state)
}

// drawDebugOverlay outlines the thumb hit region and marks point centers.
func (s *Slider) drawDebugOverlay(screen *ebiten.Image) {
	ox, oy := s.frame.X, s.frame.Y

	m := s.cfg.ThumbHitMargin
	hit := s.geom.ThumbFrame(s.thumb).Inset(-m.X, -m.Y)
	vector.StrokeRect(screen, float32(ox+hit.X), float32(oy+hit.Y),
		float32(hit.Width), float32(hit.Height), 1, debugHitColor, false)

	const arm = 3
	for i := 0; i < s.geom.Points; i++ {
		c := s.geom.Center(i)
		x, y := float32(ox+c.X), float32(oy+c.Y)
		vector.StrokeLine(screen, x-arm, y, x+arm, y, 1, debugCenterColor, false)
		vector.StrokeLine(screen, x, y-arm, x, y+arm, 1, debugCenterColor, false)
	}
}
