package segslider

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestCenterForIndexScenario(t *testing.T) {
	// N=5 across 200px with 4px insets.
	tests := []struct {
		i     int
		wantX float64
	}{
		{0, 4},
		{1, 52},
		{2, 100},
		{3, 148},
		{4, 196},
	}
	for _, tt := range tests {
		got := CenterForIndex(tt.i, 5, 200, 40, 4)
		if diff := cmp.Diff(Vec2{X: tt.wantX, Y: 20}, got, approx); diff != "" {
			t.Errorf("CenterForIndex(%d) mismatch (-want +got):\n%s", tt.i, diff)
		}
	}
}

func TestCenterForIndexEndpointsPinnedToInsets(t *testing.T) {
	for n := 2; n <= 40; n++ {
		for _, r := range []float64{0, 1, 4, 9.5} {
			first := CenterForIndex(0, n, 300, 30, r)
			last := CenterForIndex(n-1, n, 300, 30, r)
			if math.Abs(first.X-r) > 1e-9 {
				t.Errorf("n=%d r=%v: first.X = %v, want %v", n, r, first.X, r)
			}
			if math.Abs(last.X-(300-r)) > 1e-9 {
				t.Errorf("n=%d r=%v: last.X = %v, want %v", n, r, last.X, 300-r)
			}
		}
	}
}

func TestCenterForIndexSinglePoint(t *testing.T) {
	for _, r := range []float64{0, 4, 50, 500} {
		got := CenterForIndex(0, 1, 120, 30, r)
		if got != (Vec2{X: 60, Y: 15}) {
			t.Errorf("r=%v: got %+v, want (60, 15)", r, got)
		}
	}
}

func TestCenterForIndexNoPoints(t *testing.T) {
	if got := CenterForIndex(3, 0, 200, 40, 4); got != (Vec2{}) {
		t.Errorf("n=0: got %+v, want origin", got)
	}
	if got := CenterForIndex(0, -2, 200, 40, 4); got != (Vec2{}) {
		t.Errorf("n<0: got %+v, want origin", got)
	}
}

func TestCenterForIndexClampsIndex(t *testing.T) {
	if got := CenterForIndex(-3, 5, 200, 40, 4); got.X != 4 {
		t.Errorf("negative index: X = %v, want 4", got.X)
	}
	if got := CenterForIndex(9, 5, 200, 40, 4); got.X != 196 {
		t.Errorf("index past end: X = %v, want 196", got.X)
	}
}

func TestCenterForIndexDegenerateTrack(t *testing.T) {
	// Insets wider than the track: points may coincide but stay inside it.
	for i := 0; i < 4; i++ {
		c := CenterForIndex(i, 4, 6, 10, 5)
		if !finite(c.X) || c.X < 0 || c.X > 6 {
			t.Errorf("i=%d: X = %v, want within [0, 6]", i, c.X)
		}
	}
	c := CenterForIndex(1, 3, 0, 10, 4)
	if c.X != 0 {
		t.Errorf("zero width: X = %v, want 0", c.X)
	}
}

func TestPercentForIndex(t *testing.T) {
	tests := []struct {
		i, n int
		want float64
	}{
		{0, 5, 0},
		{2, 5, 0.5},
		{4, 5, 1},
		{7, 5, 1},
		{-1, 5, 0},
		{0, 1, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := PercentForIndex(tt.i, tt.n); got != tt.want {
			t.Errorf("PercentForIndex(%d, %d) = %v, want %v", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestNearestIndexRoundTrip(t *testing.T) {
	for n := 2; n <= 64; n++ {
		for _, w := range []float64{50, 200, 1000} {
			for _, r := range []float64{0, 4, 10} {
				for i := 0; i < n; i++ {
					x := CenterForIndex(i, n, w, 20, r).X
					if got := NearestIndexToPoint(x, w, r, n); got != i {
						t.Fatalf("n=%d w=%v r=%v: NearestIndexToPoint(center(%d)) = %d", n, w, r, i, got)
					}
				}
			}
		}
	}
}

func TestNearestIndexToPoint(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want int
	}{
		{"left edge", 0, 0},
		{"far left", -500, 0},
		{"far right", 900, 4},
		{"right edge", 200, 4},
		{"just below midpoint", 27.999, 0},
		{"midpoint rounds up", 28, 1},
		{"midpoint between 2 and 3", 124, 3},
		{"center", 100, 2},
		{"NaN", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearestIndexToPoint(tt.x, 200, 4, 5); got != tt.want {
				t.Errorf("NearestIndexToPoint(%v) = %d, want %d", tt.x, got, tt.want)
			}
		})
	}
}

func TestNearestIndexToPointMonotonic(t *testing.T) {
	prev := NearestIndexToPoint(-50, 300, 6, 7)
	for x := -50.0; x <= 350; x += 0.25 {
		got := NearestIndexToPoint(x, 300, 6, 7)
		if got < prev {
			t.Fatalf("not monotonic: x=%v gave %d after %d", x, got, prev)
		}
		prev = got
	}
}

func TestNearestIndexToPointDegenerate(t *testing.T) {
	if got := NearestIndexToPoint(50, 200, 4, 1); got != 0 {
		t.Errorf("single point: got %d, want 0", got)
	}
	if got := NearestIndexToPoint(50, 200, 4, 0); got != 0 {
		t.Errorf("no points: got %d, want 0", got)
	}
	if got := NearestIndexToPoint(3, 8, 4, 5); got != 0 {
		t.Errorf("zero span: got %d, want 0", got)
	}
}

func TestGeometryHelpers(t *testing.T) {
	g := Geometry{Points: 5, Width: 200, Height: 40, CircleRadius: 4, TrackHeight: 2, ThumbRadius: 14}

	if g.MinX() != 4 || g.MaxX() != 196 {
		t.Errorf("MinX/MaxX = %v/%v, want 4/196", g.MinX(), g.MaxX())
	}
	if g.ClampIndex(12) != 4 || g.ClampIndex(-1) != 0 {
		t.Error("ClampIndex should clamp into [0, 4]")
	}
	want := Rect{X: 86, Y: 6, Width: 28, Height: 28}
	if got := g.ThumbFrame(100); got != want {
		t.Errorf("ThumbFrame(100) = %+v, want %+v", got, want)
	}
	if g.Outline().Len() != 8 {
		t.Errorf("Outline().Len() = %d, want 8", g.Outline().Len())
	}
}
