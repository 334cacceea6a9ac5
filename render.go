package segslider

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// defaultFlattenTolerance is the maximum distance, in pixels, between a
// flattened arc and the true curve.
const defaultFlattenTolerance = 0.2

// Renderer paints a slider from its layer description.
type Renderer interface {
	Render(dst *ebiten.Image, l Layers)
}

// Layers describes one frame of a slider for a Renderer. Coordinates other
// than Bounds are local to the slider.
//
// The track is two flat regions, Background across the whole bounds and
// Fill from the left edge to FillWidth, clipped by Outline. With a single
// point there is no outline and the track is clipped to the Dots instead.
type Layers struct {
	Bounds Rect

	Outline   Path
	Dots      []Vec2
	DotRadius float64

	Background Color
	Fill       Color
	FillWidth  float64

	Thumb       Vec2
	ThumbRadius float64
	ThumbColor  Color
	Shadow      Shadow
}

// Layers returns the current frame description.
func (s *Slider) Layers() Layers {
	g := s.geom
	l := Layers{
		Bounds:      s.frame,
		Outline:     s.outline,
		Background:  s.cfg.MaximumTrackColor,
		Fill:        s.cfg.MinimumTrackColor,
		FillWidth:   clampFloat(s.thumb, 0, math.Max(g.Width, 0)),
		Thumb:       Vec2{X: s.thumb, Y: g.Height / 2},
		ThumbRadius: g.ThumbRadius,
		ThumbColor:  s.cfg.ThumbColor,
		Shadow:      s.cfg.Shadow,
	}
	if s.outline.Empty() && g.Points == 1 {
		l.Dots = []Vec2{g.Center(0)}
		l.DotRadius = g.CircleRadius
	}
	return l
}

// maxShadowRadius bounds the blur so a huge radius cannot allocate a huge
// texture.
const maxShadowRadius = 64

// ebitenRenderer draws the track into an offscreen texture, masks it with the
// outline and composites it, then paints the thumb on top.
type ebitenRenderer struct {
	targets   rendererTargets
	blur      *blurFilter
	tolerance float64
}

func newEbitenRenderer() *ebitenRenderer {
	return &ebitenRenderer{blur: newBlurFilter(0), tolerance: defaultFlattenTolerance}
}

func (r *ebitenRenderer) Render(dst *ebiten.Image, l Layers) {
	if l.Bounds.Empty() {
		r.targets.Release()
		return
	}
	w := int(math.Ceil(l.Bounds.Width))
	h := int(math.Ceil(l.Bounds.Height))

	content := r.targets.content.fit(w, h)
	vector.DrawFilledRect(content, 0, 0, float32(l.Bounds.Width), float32(l.Bounds.Height), l.Background.RGBA(), false)
	if l.FillWidth > 0 {
		vector.DrawFilledRect(content, 0, 0, float32(l.FillWidth), float32(l.Bounds.Height), l.Fill.RGBA(), false)
	}

	mask := r.targets.mask.fit(w, h)
	r.drawMask(mask, l)

	// Keep only the parts of the track where the mask has alpha.
	var op ebiten.DrawImageOptions
	op.Blend = BlendMask.EbitenBlend()
	content.DrawImage(mask, &op)

	var out ebiten.DrawImageOptions
	out.GeoM.Translate(l.Bounds.X, l.Bounds.Y)
	dst.DrawImage(content, &out)

	r.drawThumb(dst, l)
}

func (r *ebitenRenderer) drawMask(mask *ebiten.Image, l Layers) {
	for _, d := range l.Dots {
		vector.DrawFilledCircle(mask, float32(d.X), float32(d.Y), float32(l.DotRadius), color.White, true)
	}
	if l.Outline.Empty() {
		return
	}
	verts, inds := buildPolygonFan(l.Outline.Flatten(r.tolerance), ColorWhite)
	if len(inds) == 0 {
		return
	}
	if box := computeMeshAABB(verts); box.Width <= 0 && box.Height <= 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	}
	mask.DrawTriangles(verts, inds, ensureWhitePixel(), op)
}

// drawThumb paints the blurred drop shadow, then the thumb itself.
func (r *ebitenRenderer) drawThumb(dst *ebiten.Image, l Layers) {
	if l.ThumbRadius <= 0 {
		return
	}
	cx := l.Bounds.X + l.Thumb.X
	cy := l.Bounds.Y + l.Thumb.Y

	r.drawShadow(dst, l, cx, cy)
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(l.ThumbRadius), l.ThumbColor.RGBA(), true)
}

// drawShadow draws a disc the size of the thumb offscreen, blurs it by the
// shadow radius and composites it at the shadow offset and opacity.
func (r *ebitenRenderer) drawShadow(dst *ebiten.Image, l Layers, cx, cy float64) {
	sh := l.Shadow
	if !(sh.Opacity > 0) || sh.Color.A <= 0 || !finite(sh.OffsetX) || !finite(sh.OffsetY) {
		return
	}
	r.blur.Radius = int(math.Ceil(clampFloat(sh.Radius, 0, maxShadowRadius)))
	pad := float64(r.blur.Padding() + 1)
	c := l.ThumbRadius + pad
	size := int(math.Ceil(2 * c))

	disc := r.targets.disc.fit(size, size)
	vector.DrawFilledCircle(disc, float32(c), float32(c), float32(l.ThumbRadius), sh.Color.RGBA(), true)

	blurred := r.targets.blurred.fit(size, size)
	r.blur.Apply(disc, blurred)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(cx+sh.OffsetX-c, cy+sh.OffsetY-c)
	op.ColorScale.ScaleAlpha(float32(clamp01(sh.Opacity)))
	dst.DrawImage(blurred, &op)
}
