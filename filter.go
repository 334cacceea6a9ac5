package segslider

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// blurFilter applies a Kawase iterative blur using downscale/upscale passes.
// No Kage shader needed: bilinear filtering during DrawImage does the work.
type blurFilter struct {
	Radius int
	temps  []*ebiten.Image
	imgOp  ebiten.DrawImageOptions
}

func newBlurFilter(radius int) *blurFilter {
	if radius < 0 {
		radius = 0
	}
	return &blurFilter{Radius: radius}
}

// blurPasses returns how many halvings approximate a blur of the given
// radius: log2(radius), minimum 1. A non-positive radius needs none.
func blurPasses(radius int) int {
	if radius <= 0 {
		return 0
	}
	return max(1, int(math.Ceil(math.Log2(float64(radius)))))
}

// Apply renders a blurred copy of src into dst. With a zero radius src is
// copied unchanged.
func (f *blurFilter) Apply(src, dst *ebiten.Image) {
	op := &f.imgOp
	passes := blurPasses(f.Radius)
	if passes == 0 {
		op.GeoM.Reset()
		op.ColorScale.Reset()
		op.Filter = ebiten.FilterNearest
		dst.DrawImage(src, op)
		return
	}

	srcBounds := src.Bounds()
	w, h := srcBounds.Dx(), srcBounds.Dy()

	// One temp per downscale; the chain is reused on the way back up.
	for len(f.temps) < passes {
		f.temps = append(f.temps, nil)
	}
	for i := passes; i < len(f.temps); i++ {
		if f.temps[i] != nil {
			f.temps[i].Deallocate()
			f.temps[i] = nil
		}
	}
	f.temps = f.temps[:passes]

	current := src
	for i := 0; i < passes; i++ {
		w = max(w/2, 1)
		h = max(h/2, 1)
		if f.temps[i] == nil || f.temps[i].Bounds().Dx() != w || f.temps[i].Bounds().Dy() != h {
			if f.temps[i] != nil {
				f.temps[i].Deallocate()
			}
			f.temps[i] = ebiten.NewImage(w, h)
		} else {
			f.temps[i].Clear()
		}
		f.scaleInto(f.temps[i], current)
		current = f.temps[i]
	}

	for i := passes - 2; i >= 0; i-- {
		f.temps[i].Clear()
		f.scaleInto(f.temps[i], current)
		current = f.temps[i]
	}

	f.scaleInto(dst, current)
}

// scaleInto draws src stretched over the whole of dst with bilinear filtering.
func (f *blurFilter) scaleInto(dst, src *ebiten.Image) {
	op := &f.imgOp
	op.GeoM.Reset()
	op.ColorScale.Reset()
	sw := float64(src.Bounds().Dx())
	sh := float64(src.Bounds().Dy())
	tw := float64(dst.Bounds().Dx())
	th := float64(dst.Bounds().Dy())
	op.GeoM.Scale(tw/sw, th/sh)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
}

// Padding returns the blur radius; offscreen buffers are expanded by this much
// to avoid clipping.
func (f *blurFilter) Padding() int { return f.Radius }
