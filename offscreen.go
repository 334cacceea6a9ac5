package segslider

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// offscreen is a scratch texture owned by a renderer. It keeps one image and
// reallocates only when the requested size changes, so a slider whose frame
// and thumb stay put draws without allocating.
type offscreen struct {
	img  *ebiten.Image
	w, h int
}

// fit returns a cleared image of exactly w×h pixels (at least 1×1).
func (o *offscreen) fit(w, h int) *ebiten.Image {
	w, h = max(w, 1), max(h, 1)
	if o.img != nil && o.w == w && o.h == h {
		o.img.Clear()
		return o.img
	}
	o.release()
	o.img = ebiten.NewImageWithOptions(image.Rect(0, 0, w, h), &ebiten.NewImageOptions{Unmanaged: true})
	o.w, o.h = w, h
	return o.img
}

// release frees the image. The next fit allocates a new one.
func (o *offscreen) release() {
	if o.img != nil {
		o.img.Deallocate()
	}
	*o = offscreen{}
}

// rendererTargets are the scratch textures of one ebitenRenderer. The track
// pair is sized to the slider bounds and the shadow pair to the padded thumb.
type rendererTargets struct {
	content offscreen
	mask    offscreen
	disc    offscreen
	blurred offscreen
}

// Release frees every scratch texture.
func (t *rendererTargets) Release() {
	t.content.release()
	t.mask.release()
	t.disc.release()
	t.blurred.release()
}
