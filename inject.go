package segslider

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates. It is converted to local coordinates by the slider's frame,
// exactly like real mouse input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next frame.
func (s *Slider) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (s *Slider) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (s *Slider) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: false})
}

// InjectTap queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (s *Slider) InjectTap(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The sequence consumes `frames` frames; the minimum is 2.
func (s *Slider) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// processInjectedInput pops one event from the inject queue and feeds it to
// the gesture recognizer as pointer 0. Returns true if an event was consumed.
func (s *Slider) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.injecting = evt.pressed
	s.gestures.processPointer(0, evt.screenX-s.frame.X, evt.screenY-s.frame.Y, evt.pressed)
	return true
}
