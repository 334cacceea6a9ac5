package segslider

import (
	"log/slog"

	"github.com/tanema/gween/ease"
)

// Defaults applied by New to zero-valued Config fields.
const (
	DefaultPoints         = 5
	DefaultTrackHeight    = 2.0
	DefaultThumbRadius    = 14.0
	DefaultCircleRadius   = 4.0
	DefaultSettleDuration = float32(0.25)
)

// DefaultThumbHitMargin is how far the thumb's hit region extends past its
// frame horizontally and vertically, so small thumbs stay easy to grab.
var DefaultThumbHitMargin = Vec2{X: 40, Y: 20}

// Shadow describes the drop shadow painted under the thumb. It is cosmetic
// only.
type Shadow struct {
	Color   Color
	OffsetX float64
	OffsetY float64
	Opacity float64
	Radius  float64
}

// DefaultShadow is a soft black shadow slightly below the thumb.
var DefaultShadow = Shadow{Color: ColorBlack, OffsetY: 1.5, Opacity: 0.35, Radius: 2}

// Config configures a Slider. Zero-valued fields are replaced with defaults
// by New; use the Slider setters to change values afterwards, including to
// values that would read as zero here.
type Config struct {
	Points int // number of selectable points; default 5
	Index  int // initial index, clamped into range

	// Frame is the slider's rectangle in screen coordinates.
	Frame Rect

	TrackHeight  float64 // thickness of the band joining the points; default 2
	ThumbRadius  float64 // default 14
	CircleRadius float64 // radius of each point and inset at both ends; default 4

	MinimumTrackColor Color // filled part of the track; default ColorTint
	MaximumTrackColor Color // unfilled part of the track; default ColorTrack
	ThumbColor        Color // default ColorWhite
	Shadow            Shadow

	ThumbHitMargin Vec2
	DragDeadZone   float64 // pixels of movement before a press becomes a pan; default 4

	SettleDuration float32        // seconds; default 0.25
	Ease           ease.TweenFunc // default ease.InOutQuad

	// Collaborators. Nil selects the built-in implementation.
	Animator Animator
	Renderer Renderer
	Logger   *slog.Logger

	// Debug logs per-frame timings and draws the thumb hit region and point
	// centers. See Slider.SetDebug.
	Debug bool

	// IgnoreDevices disables mouse and touch polling in Update. Injected
	// input still works.
	IgnoreDevices bool

	// ScreenshotDir is where Screenshot writes PNG files; default "screenshots".
	ScreenshotDir string
}

// DefaultConfig returns a Config with every default filled in.
func DefaultConfig() Config {
	var c Config
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Points <= 0 {
		c.Points = DefaultPoints
	}
	if !finite(c.TrackHeight) || c.TrackHeight <= 0 {
		c.TrackHeight = DefaultTrackHeight
	}
	if !finite(c.ThumbRadius) || c.ThumbRadius <= 0 {
		c.ThumbRadius = DefaultThumbRadius
	}
	if !finite(c.CircleRadius) || c.CircleRadius <= 0 {
		c.CircleRadius = DefaultCircleRadius
	}
	if c.MinimumTrackColor == (Color{}) {
		c.MinimumTrackColor = ColorTint
	}
	if c.MaximumTrackColor == (Color{}) {
		c.MaximumTrackColor = ColorTrack
	}
	if c.ThumbColor == (Color{}) {
		c.ThumbColor = ColorWhite
	}
	if c.Shadow == (Shadow{}) {
		c.Shadow = DefaultShadow
	}
	if !c.Frame.finite() {
		c.Frame = Rect{}
	}
	if c.ThumbHitMargin == (Vec2{}) || !finite(c.ThumbHitMargin.X) || !finite(c.ThumbHitMargin.Y) {
		c.ThumbHitMargin = DefaultThumbHitMargin
	}
	if !finite(c.DragDeadZone) || c.DragDeadZone <= 0 {
		c.DragDeadZone = defaultDragDeadZone
	}
	if c.SettleDuration <= 0 {
		c.SettleDuration = DefaultSettleDuration
	}
	if c.Ease == nil {
		c.Ease = ease.InOutQuad
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
}
