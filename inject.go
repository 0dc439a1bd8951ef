package stamp

// InjectPress queues a primary mouse press at the given host coordinates.
// The event is consumed on the next frame's processInput call.
func (h *Host) InjectPress(x, y float64) {
	h.injectQueue = append(h.injectQueue, PointerEvent{
		Kind: PointerMouse, Phase: PhaseDown, X: x, Y: y, Button: MouseButtonLeft,
	})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (h *Host) InjectMove(x, y float64) {
	h.injectQueue = append(h.injectQueue, PointerEvent{
		Kind: PointerMouse, Phase: PhaseMove, X: x, Y: y, Button: MouseButtonLeft,
	})
}

// InjectRelease queues a primary mouse release.
func (h *Host) InjectRelease(x, y float64) {
	h.injectQueue = append(h.injectQueue, PointerEvent{
		Kind: PointerMouse, Phase: PhaseUp, X: x, Y: y, Button: MouseButtonLeft,
	})
}

// InjectTouch queues a touch event carrying the given touch points.
func (h *Host) InjectTouch(phase Phase, touches ...Vec2) {
	h.injectQueue = append(h.injectQueue, PointerEvent{
		Kind: PointerTouch, Phase: phase, Touches: touches,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (h *Host) InjectClick(x, y float64) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, a move to
// (toX, toY) and release there. The sequence consumes frames+1 frames.
// Minimum frames is 2.
func (h *Host) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	h.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		h.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	h.InjectMove(toX, toY)
	h.InjectRelease(toX, toY)
}

// Pending returns the number of queued injected events.
func (h *Host) Pending() int {
	return len(h.injectQueue)
}

// processInjectedInput pops one event from the inject queue and routes it.
// Returns true if an event was consumed (device input should be skipped).
func (h *Host) processInjectedInput() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	ev := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue[len(h.injectQueue)-1] = PointerEvent{}
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	h.HandlePointer(ev)
	return true
}
