// Package segslider is a discrete-position slider widget for [Ebitengine].
//
// A [Slider] draws a horizontal track with N evenly spaced points joined by a
// thin band, like beads on a string, and a round thumb that always comes to
// rest on one of them. Dragging the thumb tracks the pointer and updates the
// selected index live; releasing it, or tapping anywhere on the track, settles
// the thumb onto the nearest point with a short tween (via [gween]).
//
// # Quick start
//
//	s := segslider.New(segslider.Config{
//		Points: 5,
//		Frame:  segslider.Rect{X: 40, Y: 200, Width: 560, Height: 40},
//	})
//	s.SetDelegate(segslider.DelegateFunc(func(_ *segslider.Slider, i int) {
//		fmt.Println("selected", i)
//	}))
//	segslider.Run(s, segslider.RunConfig{Title: "Slider", Width: 640, Height: 480})
//
// Or embed it in your own [ebiten.Game] by calling [Slider.Update] and
// [Slider.Draw] from the game's Update and Draw.
//
// # Geometry
//
// Point placement, the inverse mapping from an x coordinate to an index, and
// the outline path are plain functions ([CenterForIndex],
// [NearestIndexToPoint], [BuildOutlinePath]) with no hidden state, so they can
// be used and tested without a window.
//
// # Threading
//
// A Slider is single-threaded. Everything, including input delivered from
// other goroutines, must be marshaled onto the game loop before calling in.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package segslider
