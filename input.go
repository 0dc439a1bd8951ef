package stamp

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key repeat timing for the editor, in ticks.
const (
	keyRepeatDelay    = 30
	keyRepeatInterval = 3
)

// inputState is what the device poller remembers between frames.
type inputState struct {
	mouseX, mouseY float64
	touchDown      bool
	touchIDs       []ebiten.TouchID
	touches        []Vec2
	chars          []rune
}

// EnableDevices turns on polling of the real mouse, touch screen and
// keyboard in Update. Hosts driven only by injected input leave it off.
func (h *Host) EnableDevices(enabled bool) {
	h.devices = enabled
}

// processInput is called from Host.Update. Injected events take priority;
// while any are queued, device input is skipped.
func (h *Host) processInput() {
	if h.processInjectedInput() {
		return
	}
	if !h.devices {
		return
	}
	h.processMousePointer()
	h.processTouchPointers()
	h.processKeys()
	h.updateCursor()
}

// processMousePointer turns mouse polling into pointer events.
func (h *Host) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	moved := x != h.input.mouseX || y != h.input.mouseY
	h.input.mouseX, h.input.mouseY = x, y

	ev := PointerEvent{Kind: PointerMouse, X: x, Y: y}
	if moved {
		ev.Phase = PhaseMove
		h.HandlePointer(ev)
	}
	for _, b := range [...]struct {
		eb  ebiten.MouseButton
		btn MouseButton
	}{
		{ebiten.MouseButtonLeft, MouseButtonLeft},
		{ebiten.MouseButtonRight, MouseButtonRight},
		{ebiten.MouseButtonMiddle, MouseButtonMiddle},
	} {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			ev.Phase, ev.Button = PhaseDown, b.btn
			h.HandlePointer(ev)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		ev.Phase, ev.Button = PhaseUp, MouseButtonLeft
		h.HandlePointer(ev)
	}
}

// processTouchPointers turns the touch list into pointer events. A session
// starts with the first finger down and ends when the last finger lifts;
// in between, only the first touch in the list moves the session.
func (h *Host) processTouchPointers() {
	in := &h.input
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	prev := append([]Vec2(nil), in.touches...)
	in.touches = in.touches[:0]
	for _, id := range in.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		in.touches = append(in.touches, Vec2{float64(tx), float64(ty)})
	}

	switch {
	case len(in.touches) > 0 && !in.touchDown:
		in.touchDown = true
		h.HandlePointer(PointerEvent{Kind: PointerTouch, Phase: PhaseDown, Touches: in.touches})
	case len(in.touches) > 0:
		if len(prev) == 0 || prev[0] != in.touches[0] {
			h.HandlePointer(PointerEvent{Kind: PointerTouch, Phase: PhaseMove, Touches: in.touches})
		}
	case in.touchDown:
		in.touchDown = false
		h.HandlePointer(PointerEvent{Kind: PointerTouch, Phase: PhaseUp})
	}
}

// processKeys feeds typed characters and editing keys to the focused widget.
func (h *Host) processKeys() {
	if h.editor.target == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.editor.blur()
		return
	}
	h.input.chars = ebiten.AppendInputChars(h.input.chars[:0])
	if len(h.input.chars) > 0 {
		h.editor.insert(string(h.input.chars))
	}
	if repeatingKeyPressed(ebiten.KeyEnter) || repeatingKeyPressed(ebiten.KeyNumpadEnter) {
		h.editor.insert("\n")
	}
	if repeatingKeyPressed(ebiten.KeyBackspace) {
		h.editor.backspace()
	}
}

// updateCursor shows a move cursor over widget bodies and a diagonal resize
// cursor over resize handles or during a resize.
func (h *Host) updateCursor() {
	shape := ebiten.CursorShapeDefault
	for i := len(h.widgets) - 1; i >= 0; i-- {
		w := h.widgets[i]
		if w.IsResizing() {
			shape = ebiten.CursorShapeNWSEResize
			break
		}
		if w.IsDragging() {
			shape = ebiten.CursorShapeMove
			break
		}
	}
	if shape == ebiten.CursorShapeDefault {
		if w, region := h.hitWidget(h.input.mouseX, h.input.mouseY); w != nil {
			shape = ebiten.CursorShapeMove
			if region == HitResizeHandle {
				shape = ebiten.CursorShapeNWSEResize
			}
		}
	}
	ebiten.SetCursorShape(shape)
}

// hitWidget returns the topmost widget under (x, y).
func (h *Host) hitWidget(x, y float64) (*Widget, HitRegion) {
	for i := len(h.widgets) - 1; i >= 0; i-- {
		if region := h.widgets[i].HitTest(x, y); region != HitNone {
			return h.widgets[i], region
		}
	}
	return nil, HitNone
}

// repeatingKeyPressed reports a press on the first tick and then at the
// repeat interval while the key is held.
func repeatingKeyPressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}
