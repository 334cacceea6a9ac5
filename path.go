package segslider

import "math"

const twoPi = 2 * math.Pi

// Arc is a circular arc swept clockwise (increasing angle in the y-down
// frame) from StartAngle to EndAngle.
type Arc struct {
	Center     Vec2
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// Sweep returns the clockwise angular extent of the arc in (0, 2π]. Equal
// start and end angles describe a full circle.
func (a Arc) Sweep() float64 {
	d := math.Mod(a.EndAngle-a.StartAngle, twoPi)
	if d <= 1e-12 {
		d += twoPi
	}
	return d
}

// PointAt returns the point on the arc's circle at the given angle.
func (a Arc) PointAt(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: a.Center.X + a.Radius*cos, Y: a.Center.Y + a.Radius*sin}
}

// Start returns the first point of the arc.
func (a Arc) Start() Vec2 { return a.PointAt(a.StartAngle) }

// End returns the last point of the arc.
func (a Arc) End() Vec2 { return a.PointAt(a.StartAngle + a.Sweep()) }

// PathSegment is one step of an outline: an arc around a point followed by a
// straight line to the next point's tangent.
type PathSegment struct {
	Arc    Arc
	LineTo Vec2
}

// Path is a sequence of arc+line segments. It is built fresh on every
// geometry change and never edited in place.
type Path struct {
	Segments []PathSegment
	Closed   bool
}

// Len returns the number of segments.
func (p Path) Len() int { return len(p.Segments) }

// Empty reports whether the path has no segments.
func (p Path) Empty() bool { return len(p.Segments) == 0 }

// Start returns the first point of the path, or the zero vector for an empty path.
func (p Path) Start() Vec2 {
	if p.Empty() {
		return Vec2{}
	}
	return p.Segments[0].Arc.Start()
}

// End returns the last point of the path, or the zero vector for an empty path.
func (p Path) End() Vec2 {
	if p.Empty() {
		return Vec2{}
	}
	return p.Segments[len(p.Segments)-1].LineTo
}

// Bounds returns a conservative bounding box: every arc's full circle and
// every line endpoint.
func (p Path) Bounds() Rect {
	if p.Empty() {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(x0, y0, x1, y1 float64) {
		minX, minY = math.Min(minX, x0), math.Min(minY, y0)
		maxX, maxY = math.Max(maxX, x1), math.Max(maxY, y1)
	}
	for _, s := range p.Segments {
		c, r := s.Arc.Center, s.Arc.Radius
		grow(c.X-r, c.Y-r, c.X+r, c.Y+r)
		grow(s.LineTo.X, s.LineTo.Y, s.LineTo.X, s.LineTo.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Flatten converts the path into a polyline whose arcs deviate from the true
// curve by at most tolerance. For closed paths the duplicated end point is
// dropped.
func (p Path) Flatten(tolerance float64) []Vec2 {
	if p.Empty() {
		return nil
	}
	if tolerance <= 0 {
		tolerance = 0.25
	}
	pts := make([]Vec2, 0, len(p.Segments)*16)
	push := func(v Vec2) {
		if n := len(pts); n > 0 && nearlyEqual(pts[n-1], v) {
			return
		}
		pts = append(pts, v)
	}
	for _, s := range p.Segments {
		steps := arcSteps(s.Arc.Radius, s.Arc.Sweep(), tolerance)
		sweep := s.Arc.Sweep()
		for k := 0; k <= steps; k++ {
			push(s.Arc.PointAt(s.Arc.StartAngle + sweep*float64(k)/float64(steps)))
		}
		push(s.LineTo)
	}
	if p.Closed && len(pts) > 1 && nearlyEqual(pts[0], pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// arcSteps returns how many chords are needed so that no chord strays more
// than tolerance from an arc of the given radius and sweep.
func arcSteps(radius, sweep, tolerance float64) int {
	if radius <= tolerance {
		return max(1, int(math.Ceil(sweep/(math.Pi/2))))
	}
	step := 2 * math.Acos(1-tolerance/radius)
	return max(1, int(math.Ceil(sweep/step)))
}

func nearlyEqual(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

// BuildOutlinePath builds the closed "bead chain" outline for n points: a band
// of height trackHeight joining a circle of radius circleRadius around every
// point. The path walks the top edge from the first point to the last, then
// the bottom edge back, for 2*(n-1) segments in total.
//
// Fewer than two points produce an empty path; the caller draws a single
// static point instead. A track thicker than the circles is clamped to the
// circle diameter.
func BuildOutlinePath(n int, width, height, circleRadius, trackHeight float64) Path {
	if n <= 1 || circleRadius <= 0 || !finite(circleRadius) {
		return Path{}
	}

	half := clampFloat(trackHeight/2, 0, circleRadius)
	angle := math.Asin(half / circleRadius)
	a := math.Sqrt(circleRadius*circleRadius - half*half)

	// Top edge visits 0..n-1, bottom edge returns n-2..0.
	point := func(i int) int {
		if i >= n {
			return (n - 2) - (i - n)
		}
		return i
	}
	center := func(i int) Vec2 {
		return CenterForIndex(point(i), n, width, height, circleRadius)
	}
	above := func(c Vec2) Vec2 { return Vec2{X: c.X - a, Y: c.Y - half} }
	below := func(c Vec2) Vec2 { return Vec2{X: c.X + a, Y: c.Y + half} }

	iterations := 2 * (n - 1)
	segs := make([]PathSegment, 0, iterations)
	for i := 0; i < iterations; i++ {
		c := center(i)
		next := center(i + 1)

		var start, end float64
		var to Vec2
		switch {
		case i == 0:
			start, end, to = angle, -angle, above(next)
		case i == n-1:
			start, end, to = math.Pi+angle, math.Pi-angle, below(next)
		case i < n-1:
			start, end, to = math.Pi+angle, -angle, above(next)
		default:
			start, end, to = angle, math.Pi-angle, below(next)
		}

		segs = append(segs, PathSegment{
			Arc:    Arc{Center: c, Radius: circleRadius, StartAngle: start, EndAngle: end},
			LineTo: to,
		})
	}
	return Path{Segments: segs, Closed: true}
}
