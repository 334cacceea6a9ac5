package segslider

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxFanVertices is the largest polygon a uint16 index buffer can address.
const maxFanVertices = math.MaxUint16 + 1

// buildPolygonFan generates vertices and indices for a fan-triangulated
// polygon tinted with c. N vertices, 3*(N-2) indices.
//
// A fan only covers a non-convex polygon correctly when drawn with a
// non-zero or even-odd fill rule, which is how the outline mask is drawn.
func buildPolygonFan(points []Vec2, c Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 || n > maxFanVertices {
		return nil, nil
	}

	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, (n-2)*3)

	cr, cg, cb, ca := float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A)
	for i, p := range points {
		verts[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	// Fan triangulation: vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}

	return verts, inds
}

// computeMeshAABB scans DstX/DstY of the given vertices and returns
// the axis-aligned bounding box in local space.
func computeMeshAABB(verts []ebiten.Vertex) Rect {
	if len(verts) == 0 {
		return Rect{}
	}
	minX := float64(verts[0].DstX)
	minY := float64(verts[0].DstY)
	maxX := minX
	maxY := minY
	for i := 1; i < len(verts); i++ {
		x := float64(verts[i].DstX)
		y := float64(verts[i].DstY)
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// --- White pixel singleton (no sync.Once, segslider is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the source texture of untextured meshes.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
