package segslider

import "math"

// Geometry is the derived track geometry of a slider: the point count and
// every size that point placement and the outline depend on. It is a value
// type; the slider rebuilds it on every layout or configuration change.
type Geometry struct {
	Points       int
	Width        float64
	Height       float64
	CircleRadius float64
	TrackHeight  float64
	ThumbRadius  float64
}

// Center returns the center of point i.
func (g Geometry) Center(i int) Vec2 {
	return CenterForIndex(i, g.Points, g.Width, g.Height, g.CircleRadius)
}

// Percent returns the position of point i along the track in [0, 1].
func (g Geometry) Percent(i int) float64 {
	return PercentForIndex(i, g.Points)
}

// NearestIndex maps a local x coordinate to the closest point index.
func (g Geometry) NearestIndex(x float64) int {
	return NearestIndexToPoint(x, g.Width, g.CircleRadius, g.Points)
}

// MinX and MaxX are the centers of the first and last points, the range the
// thumb is allowed to travel.
func (g Geometry) MinX() float64 { return g.Center(0).X }
func (g Geometry) MaxX() float64 { return g.Center(g.Points - 1).X }

// ClampIndex clamps i into [0, Points-1]. A geometry with no points clamps
// everything to 0.
func (g Geometry) ClampIndex(i int) int {
	return clampIndex(i, g.Points)
}

// ThumbFrame returns the thumb's bounding box when centered on x.
func (g Geometry) ThumbFrame(x float64) Rect {
	r := g.ThumbRadius
	return Rect{X: x - r, Y: g.Height/2 - r, Width: 2 * r, Height: 2 * r}
}

// Outline builds the bead-chain outline for this geometry.
func (g Geometry) Outline() Path {
	return BuildOutlinePath(g.Points, g.Width, g.Height, g.CircleRadius, g.TrackHeight)
}

// CenterForIndex returns the center of point i out of n points spread across
// a track of the given width, inset by circleRadius at both ends. The y
// coordinate is always the vertical midline.
//
// A single point sits in the middle of the track. n <= 0 returns the origin.
func CenterForIndex(i, n int, width, height, circleRadius float64) Vec2 {
	switch {
	case n <= 0:
		return Vec2{}
	case n == 1:
		return Vec2{X: width / 2, Y: height / 2}
	}
	i = clampIndex(i, n)
	x := circleRadius + float64(i)*(width-2*circleRadius)/float64(n-1)
	return Vec2{X: clampFloat(x, 0, math.Max(width, 0)), Y: height / 2}
}

// PercentForIndex returns i/(n-1), with i clamped into range. Tracks with fewer
// than two points have no span and report 0.
func PercentForIndex(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(clampIndex(i, n)) / float64(n-1)
}

// NearestIndexToPoint is the inverse of CenterForIndex along x: it converts x
// into a fractional index, rounds half away from zero and clamps the result
// into [0, n-1].
func NearestIndexToPoint(x, width, circleRadius float64, n int) int {
	if n <= 1 {
		return 0
	}
	span := width - 2*circleRadius
	if span <= 0 || !finite(x) {
		return 0
	}
	value := clampFloat((x-circleRadius)/span*float64(n-1), 0, float64(n-1))
	return clampIndex(int(math.Round(value)), n)
}

func clampIndex(i, n int) int {
	if i > n-1 {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// clampFloat clamps v into [lo, hi]. NaN maps to lo.
func clampFloat(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
