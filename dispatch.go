package stamp

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerEvent)
}

type handlerRegistry struct {
	pointerMove []pointerHandler
	pointerUp   []pointerHandler
	nextID      uint32
}

// Dispatcher is the document-level listener set. Widgets subscribe to moves
// and releases only while one of their sessions is open, so events reach a
// widget even when the pointer has left its bounds.
type Dispatcher struct {
	handlers handlerRegistry
	buf      []pointerHandler
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	phase Phase
}

// Remove unregisters this callback so it no longer fires. Removing twice, or
// removing the zero handle, does nothing.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.phase {
	case PhaseMove:
		h.reg.pointerMove = removePointerHandler(h.reg.pointerMove, h.id)
	case PhaseUp:
		h.reg.pointerUp = removePointerHandler(h.reg.pointerUp, h.id)
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// OnPointerMove registers a callback for pointer moves.
func (d *Dispatcher) OnPointerMove(fn func(PointerEvent)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.pointerMove = append(d.handlers.pointerMove, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, phase: PhaseMove}
}

// OnPointerUp registers a callback for pointer releases.
func (d *Dispatcher) OnPointerUp(fn func(PointerEvent)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.pointerUp = append(d.handlers.pointerUp, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, phase: PhaseUp}
}

// Len returns the number of registered callbacks.
func (d *Dispatcher) Len() int {
	return len(d.handlers.pointerMove) + len(d.handlers.pointerUp)
}

// Dispatch delivers ev to the callbacks registered for its phase. Callbacks
// may remove themselves (or others) while being dispatched; the set is
// snapshotted first. Down events have no document-level callbacks.
func (d *Dispatcher) Dispatch(ev PointerEvent) {
	var src []pointerHandler
	switch ev.Phase {
	case PhaseMove:
		src = d.handlers.pointerMove
	case PhaseUp:
		src = d.handlers.pointerUp
	default:
		return
	}
	if len(src) == 0 {
		return
	}
	d.buf = append(d.buf[:0], src...)
	for i := range d.buf {
		fn := d.buf[i].fn
		guard("pointer handler", func() { fn(ev) })
	}
	clear(d.buf)
	d.buf = d.buf[:0]
}
