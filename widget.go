package stamp

// Defaults applied by NewWidget to zero-valued config fields.
const (
	DefaultWidth      = 80.0
	DefaultHeight     = 40.0
	DefaultFontSize   = 10.0
	DefaultFontWeight = 500
	DefaultFontFamily = `"Segoe UI Variable", "Segoe UI", "Arial", sans-serif`
)

// Style is the fixed look of a widget. It is set once at creation.
type Style struct {
	Background Color
	Text       Color
	FontFamily string
	FontWeight int
	Digital    bool
}

// DefaultStyle is white text on black in the default family.
func DefaultStyle() Style {
	return Style{
		Background: ColorBlack,
		Text:       ColorWhite,
		FontFamily: DefaultFontFamily,
		FontWeight: DefaultFontWeight,
	}
}

// WidgetConfig describes a widget at creation time. Zero size, font size and
// style fields fall back to the defaults.
type WidgetConfig struct {
	Name     string
	Position Vec2
	Size     Size
	FontSize float64
	Content  Content
	Style    Style
}

// HitRegion is the part of a widget under a point.
type HitRegion uint8

const (
	HitNone HitRegion = iota
	HitBody
	HitResizeHandle
)

// Widget is one draggable, resizable text label. Each widget tracks its own
// sessions; widgets never coordinate with each other.
type Widget struct {
	name    string
	geom    Geometry
	content Content
	style   Style

	tracker PointerTracker
	subs    [2]CallbackHandle
	fade    fade
	debug   bool

	// hostHook is set by the owning Host.
	hostHook func(WidgetEvent)

	// OnChange, when set, is called after every event with the widget state
	// that resulted from it.
	OnChange func(WidgetEvent)
}

// NewWidget creates an idle widget.
func NewWidget(cfg WidgetConfig) *Widget {
	if cfg.Size.Width == 0 {
		cfg.Size.Width = DefaultWidth
	}
	if cfg.Size.Height == 0 {
		cfg.Size.Height = DefaultHeight
	}
	if cfg.FontSize == 0 {
		cfg.FontSize = DefaultFontSize
	}
	st := cfg.Style
	if st == (Style{}) {
		st = DefaultStyle()
	}
	if st.FontFamily == "" {
		st.FontFamily = DefaultFontFamily
	}
	if st.FontWeight == 0 {
		st.FontWeight = DefaultFontWeight
	}
	return &Widget{
		name: cfg.Name,
		geom: Geometry{
			Position: cfg.Position,
			Size:     cfg.Size,
			FontSize: cfg.FontSize,
		},
		content: cfg.Content,
		style:   st,
		fade:    newFade(),
	}
}

func (w *Widget) Name() string { return w.name }
func (w *Widget) Geometry() Geometry { return w.geom }
func (w *Widget) Position() Vec2 { return w.geom.Position }
func (w *Widget) Size() Size { return w.geom.Size }
func (w *Widget) FontSize() float64 { return w.geom.FontSize }
func (w *Widget) Content() Content { return w.content }
func (w *Widget) Text() string { return w.content.String() }
func (w *Widget) Style() Style { return w.style }
func (w *Widget) State() State { return w.tracker.State() }
func (w *Widget) IsDragging() bool { return w.tracker.State() == StateDragActive }
func (w *Widget) IsResizing() bool { return w.tracker.State() == StateResizing }
func (w *Widget) SessionOpen() bool { return w.tracker.Active() }
func (w *Widget) Opacity() float64 { return w.fade.value }
func (w *Widget) Bounds() Rect { return w.geom.Bounds() }
func (w *Widget) setDebug(enabled bool) { w.debug = enabled }

// HitTest reports which part of the widget lies under (x, y). The resize
// handle is the ResizeHandleSize square in the bottom-right corner.
func (w *Widget) HitTest(x, y float64) HitRegion {
	b := w.geom.Bounds()
	if !b.Contains(x, y) {
		return HitNone
	}
	handle := Rect{
		X:      b.X + b.Width - ResizeHandleSize,
		Y:      b.Y + b.Height - ResizeHandleSize,
		Width:  ResizeHandleSize,
		Height: ResizeHandleSize,
	}
	if handle.Contains(x, y) {
		return HitResizeHandle
	}
	return HitBody
}

// PointerDown opens a session for a press on region and subscribes the
// widget to document-level moves and releases on d. It reports whether a
// session was opened: only a primary press on the body or handle of an idle
// widget opens one.
func (w *Widget) PointerDown(d *Dispatcher, ev PointerEvent, region HitRegion) bool {
	if w.tracker.Active() || !ev.primary() || region == HitNone {
		return false
	}
	p, ok := ev.Point()
	if !ok {
		return false
	}
	mode := StateDragCandidate
	if region == HitResizeHandle {
		mode = StateResizing
	}
	w.tracker.Start(p.X, p.Y, mode, w.geom)
	w.subs[0] = d.OnPointerMove(w.pointerMove)
	w.subs[1] = d.OnPointerUp(w.pointerUp)

	w.transition(StateIdle)
	if mode == StateResizing {
		w.fade.retarget(activeOpacity)
	}
	w.emit(EventSessionStart)
	return true
}

func (w *Widget) pointerMove(ev PointerEvent) {
	p, ok := ev.Point()
	if !ok {
		return
	}
	from := w.tracker.State()
	in, ok := w.tracker.Move(p.X, p.Y)
	if !ok {
		return
	}
	switch in.Kind {
	case IntentMove:
		w.geom.Position = in.Position
		if in.Promoted {
			w.transition(from)
			w.fade.retarget(activeOpacity)
			w.emit(EventDragStart)
		}
		w.emit(EventMove)
	case IntentResize:
		w.geom.Size = in.Size
		w.geom.FontSize = in.FontSize
		w.emit(EventResize)
	}
}

func (w *Widget) pointerUp(PointerEvent) {
	from := w.tracker.State()
	defer w.closeSession()
	w.tracker.End()
	w.transition(from)
	switch from {
	case StateDragCandidate:
		w.emit(EventClick)
	case StateDragActive:
		w.emit(EventDragEnd)
	case StateResizing:
		w.emit(EventResizeEnd)
	}
}

// closeSession releases the document subscriptions and ends the tracker
// session. Safe to call repeatedly.
func (w *Widget) closeSession() {
	for i := range w.subs {
		w.subs[i].Remove()
		w.subs[i] = CallbackHandle{}
	}
	w.tracker.End()
	w.fade.retarget(restOpacity)
}

// Cancel ends an open session without a release. Geometry keeps its last
// value and no end event fires.
func (w *Widget) Cancel() {
	if !w.tracker.Active() {
		return
	}
	from := w.tracker.State()
	w.closeSession()
	w.transition(from)
}

// SetFontSize replaces the font size from outside a session. The value
// becomes the baseline for the next resize.
func (w *Widget) SetFontSize(size float64) {
	w.geom.FontSize = size
	w.emit(EventFontOverride)
}

// SetContent replaces the text from the external content source.
func (w *Widget) SetContent(c Content) {
	w.content = c
	w.emit(EventContentSet)
}

// Edit replaces the text with a user edit. The text is sanitized first and
// the stored result is returned.
func (w *Widget) Edit(raw string) string {
	s := SanitizeText(raw)
	w.content = Line(s)
	w.emit(EventContentEdit)
	return s
}

func (w *Widget) transition(from State) {
	if w.debug {
		if to := w.tracker.State(); to != from {
			debugTransition(w.name, from, to)
		}
	}
}

func (w *Widget) emit(t EventType) {
	ev := WidgetEvent{
		Type:     t,
		Widget:   w.name,
		State:    w.tracker.State(),
		Geometry: w.geom,
		Content:  w.content.String(),
	}
	if w.hostHook != nil {
		hook := w.hostHook
		guard("host hook", func() { hook(ev) })
	}
	if w.OnChange != nil {
		fn := w.OnChange
		guard("widget change callback", func() { fn(ev) })
	}
}
