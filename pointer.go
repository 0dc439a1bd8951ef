package stamp

import "math"

// State is the interaction state of a widget.
type State uint8

const (
	StateIdle          State = iota // no session open
	StateDragCandidate              // pressed on the body, threshold not yet exceeded
	StateDragActive                 // dragging
	StateResizing                   // pressed on the resize handle
)

func (s State) String() string {
	switch s {
	case StateDragCandidate:
		return "drag-candidate"
	case StateDragActive:
		return "drag-active"
	case StateResizing:
		return "resizing"
	default:
		return "idle"
	}
}

// PointerKind tells mouse input from touch input.
type PointerKind uint8

const (
	PointerMouse PointerKind = iota
	PointerTouch
)

// Phase is the position of an event within a press/release cycle.
type Phase uint8

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
)

// PointerEvent is one normalized mouse or touch event in host coordinates.
// Touch events carry every active touch point; only the first is used.
type PointerEvent struct {
	Kind    PointerKind
	Phase   Phase
	X, Y    float64 // mouse position, ignored for touch
	Touches []Vec2
	Button  MouseButton
}

// Point returns the coordinate that drives the session. For touch events it
// is the first touch point; ok is false when the touch list is empty.
func (e PointerEvent) Point() (p Vec2, ok bool) {
	if e.Kind == PointerTouch {
		if len(e.Touches) == 0 {
			return Vec2{}, false
		}
		return e.Touches[0], true
	}
	return Vec2{e.X, e.Y}, true
}

// primary reports whether the event comes from the primary button. Touches
// always count as primary.
func (e PointerEvent) primary() bool {
	return e.Kind == PointerTouch || e.Button == MouseButtonLeft
}

// IntentKind is what a pointer move asks the widget to do.
type IntentKind uint8

const (
	IntentNone   IntentKind = iota
	IntentMove              // set Position
	IntentResize            // set Size and FontSize together
)

// Intent is the result of feeding one pointer move into a PointerTracker.
// Values are absolute, computed from the session origin.
type Intent struct {
	Kind     IntentKind
	Position Vec2
	Size     Size
	FontSize float64
	Promoted bool // this move confirmed the drag
}

// session lives from press to release.
type session struct {
	mode   State
	anchor Vec2
	origin Geometry
}

// PointerTracker turns the moves of one press/release cycle into move or
// resize intents. The zero value is idle.
type PointerTracker struct {
	sess *session
}

// Start opens a session at (x, y). mode must be StateDragCandidate or
// StateResizing; any other value opens a drag candidate. origin is the widget
// state at press time and is the reference for every later move.
func (t *PointerTracker) Start(x, y float64, mode State, origin Geometry) {
	if mode != StateResizing {
		mode = StateDragCandidate
	}
	t.sess = &session{
		mode:   mode,
		anchor: Vec2{x, y},
		origin: origin,
	}
}

// Active reports whether a session is open.
func (t *PointerTracker) Active() bool {
	return t.sess != nil
}

// State returns the session mode, or StateIdle when no session is open.
func (t *PointerTracker) State() State {
	if t.sess == nil {
		return StateIdle
	}
	return t.sess.mode
}

// Origin returns the geometry captured at Start.
func (t *PointerTracker) Origin() (Geometry, bool) {
	if t.sess == nil {
		return Geometry{}, false
	}
	return t.sess.origin, true
}

// Move feeds a pointer position into the open session. ok is false when no
// session is open or the move produced nothing (candidate below threshold).
func (t *PointerTracker) Move(x, y float64) (in Intent, ok bool) {
	s := t.sess
	if s == nil {
		return Intent{}, false
	}
	dx := x - s.anchor.X
	dy := y - s.anchor.Y

	switch s.mode {
	case StateDragCandidate:
		if math.Abs(dx) <= DragThreshold && math.Abs(dy) <= DragThreshold {
			return Intent{}, false
		}
		s.mode = StateDragActive
		in.Promoted = true
		fallthrough
	case StateDragActive:
		in.Kind = IntentMove
		in.Position = Vec2{s.origin.Position.X + dx, s.origin.Position.Y + dy}
		return in, true
	case StateResizing:
		return resizeIntent(s.origin, dx, dy), true
	}
	return Intent{}, false
}

// End closes the session. click is true when the pointer never left the
// drag threshold, in which case no geometry changed.
func (t *PointerTracker) End() (click bool) {
	if t.sess == nil {
		return false
	}
	click = t.sess.mode == StateDragCandidate
	t.sess = nil
	return click
}

// resizeIntent applies the size floors and couples the font size to the
// width ratio against the session origin.
func resizeIntent(origin Geometry, dx, dy float64) Intent {
	w := math.Max(MinWidth, origin.Size.Width+dx)
	h := math.Max(MinHeight, origin.Size.Height+dy)
	scale := 1.0
	if origin.Size.Width > 0 {
		scale = w / origin.Size.Width
	}
	return Intent{
		Kind:     IntentResize,
		Size:     Size{w, h},
		FontSize: clamp(origin.FontSize*scale, MinFontSize, MaxFontSize),
	}
}
