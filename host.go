package stamp

import (
	"image"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Host is the canvas: a background image with overlay widgets on top. It
// routes presses to the widget under the pointer and moves/releases to
// whichever widgets hold an open session. It holds no drag state itself.
type Host struct {
	// ClearColor fills the area around the image.
	ClearColor Color
	// ExportDir receives exported PNGs.
	ExportDir string
	// OnImageLoaded, when set, is called with the natural image size after
	// SetImage.
	OnImageLoaded func(width, height int)
	// OnExported, when set, is called with the path of every written export.
	OnExported func(path string)

	image      image.Image
	bg         *ebiten.Image
	natW, natH int
	layout     Layout
	view       Rect // image placement on the last drawn screen
	faces      faceCache

	widgets    []*Widget
	dispatcher Dispatcher
	store      *ContentStore
	editor     editor

	settings    Settings
	customFonts bool
	baselines   map[string]float64

	sink  EventSink
	debug bool

	devices     bool
	input       inputState
	injectQueue []PointerEvent
	script      *ScriptRunner
	exportQueue []string
}

// NewHost creates an empty host with the initial label texts in its
// content store.
func NewHost() *Host {
	h := &Host{
		ClearColor: Color{R: 0.035, G: 0.035, B: 0.043, A: 1},
		ExportDir:  "exports",
	}
	h.resetState()
	return h
}

// resetState restores the content store and settings to their defaults.
func (h *Host) resetState() {
	h.store = NewContentStore()
	h.store.Set(WidgetTime, Line(InitialTimeText))
	h.store.Set(WidgetDate, Lines(InitialDateLines...))
	h.settings = DefaultSettings()
	h.customFonts = false
	h.baselines = make(map[string]float64)
}

// SetImage replaces the background and recreates the preset widgets for
// layout. Any previous widgets, sessions, edits and settings are discarded.
func (h *Host) SetImage(img image.Image, layout Layout) {
	h.Reset()
	h.image = img
	h.layout = layout
	b := img.Bounds()
	h.natW, h.natH = b.Dx(), b.Dy()

	dateSize, timeSize := h.settings.fontSizes(h.customFonts)
	for _, cfg := range Presets(layout) {
		if c, ok := h.store.Get(cfg.Name); ok {
			cfg.Content = c
		}
		switch cfg.Name {
		case WidgetDate:
			cfg.FontSize = dateSize
		case WidgetTime:
			cfg.FontSize = timeSize
		}
		h.baselines[cfg.Name] = cfg.FontSize
		h.AddWidget(cfg)
	}

	if h.OnImageLoaded != nil {
		fn := h.OnImageLoaded
		guard("image loaded callback", func() { fn(h.natW, h.natH) })
	}
}

// Reset discards the image, the widgets with their open sessions, the
// editor focus, user edits and settings.
func (h *Host) Reset() {
	h.CancelSessions()
	h.editor.blur()
	h.widgets = nil
	h.image = nil
	if h.bg != nil {
		h.bg.Deallocate()
		h.bg = nil
	}
	h.natW, h.natH = 0, 0
	h.layout = LayoutFull
	h.resetState()
}

// AddWidget creates a widget on top of the existing ones.
func (h *Host) AddWidget(cfg WidgetConfig) *Widget {
	w := NewWidget(cfg)
	w.hostHook = h.widgetEvent
	w.setDebug(h.debug)
	h.widgets = append(h.widgets, w)
	return w
}

// HasImage reports whether an image is loaded.
func (h *Host) HasImage() bool { return h.image != nil }

// Image returns the background image.
func (h *Host) Image() image.Image { return h.image }

// NaturalSize returns the pixel size of the background image.
func (h *Host) NaturalSize() (width, height int) { return h.natW, h.natH }

// Layout returns the preset layout of the current image.
func (h *Host) Layout() Layout { return h.layout }

// Store returns the content store.
func (h *Host) Store() *ContentStore { return h.store }

// Settings returns the last applied settings.
func (h *Host) Settings() Settings { return h.settings }

// Widgets returns the widgets in stacking order.
func (h *Host) Widgets() []*Widget { return slices.Clone(h.widgets) }

// Widget returns the widget named name, or nil.
func (h *Host) Widget(name string) *Widget {
	for _, w := range h.widgets {
		if w.name == name {
			return w
		}
	}
	return nil
}

// Focused returns the widget whose text is being edited, or nil.
func (h *Host) Focused() *Widget { return h.editor.target }

// OpenSessions returns the number of document-level subscriptions held by
// open sessions.
func (h *Host) OpenSessions() int { return h.dispatcher.Len() }

// SetEventSink forwards every widget event to sink. Pass nil to stop.
func (h *Host) SetEventSink(sink EventSink) {
	h.sink = sink
}

// SetDebugMode enables or disables logging of widget state transitions.
func (h *Host) SetDebugMode(enabled bool) {
	h.debug = enabled
	for _, w := range h.widgets {
		w.setDebug(enabled)
	}
}

// CancelSessions closes every open session without a release.
func (h *Host) CancelSessions() {
	for _, w := range h.widgets {
		w.Cancel()
	}
}

// HandlePointer routes one pointer event. A primary press goes to the
// topmost widget under the point; moves and releases go to the widgets
// that subscribed when their session opened.
func (h *Host) HandlePointer(ev PointerEvent) {
	if ev.Phase != PhaseDown {
		h.dispatcher.Dispatch(ev)
		return
	}
	if !ev.primary() {
		return
	}
	p, ok := ev.Point()
	if !ok {
		return
	}
	w, region := h.hitWidget(p.X, p.Y)
	if w == nil {
		h.editor.blur()
		return
	}
	if h.editor.target != nil && h.editor.target != w {
		h.editor.blur()
	}
	w.PointerDown(&h.dispatcher, ev, region)
}

// ApplyContent pushes a new source value for the named widget. Single-line
// text changes only if the value differs from the previous source value;
// multi-line text is always replaced.
func (h *Host) ApplyContent(name string, c Content) {
	if !h.store.Set(name, c) {
		return
	}
	if w := h.Widget(name); w != nil {
		w.SetContent(c)
	}
}

// ApplyText applies the text fields of s to both labels and enables the
// custom font sizes, like submitting the text form.
func (h *Host) ApplyText(s Settings) {
	h.settings.Time = s.Time
	h.settings.Date = s.Date
	h.settings.TimeWithAmPm = s.TimeWithAmPm
	h.ApplyContent(WidgetTime, s.TimeContent())
	h.ApplyContent(WidgetDate, s.DateContent())
	h.customFonts = true
	h.pushFontSizes()
}

// ApplyFontSizes stores the font size fields of s and enables them.
func (h *Host) ApplyFontSizes(s Settings) {
	h.settings.TimeFontSize = s.TimeFontSize
	h.settings.DateFontSize = s.DateFontSize
	h.customFonts = true
	h.pushFontSizes()
}

// ResetFontSizes clears the custom font sizes and returns both labels to
// their preset sizes.
func (h *Host) ResetFontSizes() {
	h.settings.TimeFontSize = ""
	h.settings.DateFontSize = ""
	h.customFonts = false
	h.pushFontSizes()
}

// pushFontSizes sends a new baseline to a widget only when its effective
// size changed since the last push.
func (h *Host) pushFontSizes() {
	dateSize, timeSize := h.settings.fontSizes(h.customFonts)
	for _, e := range [...]struct {
		name string
		size float64
	}{{WidgetDate, dateSize}, {WidgetTime, timeSize}} {
		if old, ok := h.baselines[e.name]; ok && old == e.size {
			continue
		}
		h.baselines[e.name] = e.size
		if w := h.Widget(e.name); w != nil {
			w.SetFontSize(e.size)
		}
	}
}

// widgetEvent is every widget's host hook.
func (h *Host) widgetEvent(ev WidgetEvent) {
	switch ev.Type {
	case EventClick:
		if w := h.Widget(ev.Widget); w != nil {
			h.editor.focus(w)
		}
	case EventContentEdit:
		h.store.record(ev.Widget, h.Widget(ev.Widget).Content())
	case EventContentSet:
		if t := h.editor.target; t != nil && t.name == ev.Widget {
			h.editor.focus(t)
		}
	}
	if h.sink != nil {
		sink := h.sink
		guard("event sink", func() { sink.EmitEvent(ev) })
	}
}

// Update advances one frame: scripted steps, input, and opacity fades.
func (h *Host) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if h.script != nil {
		h.script.step(h)
	}
	h.processInput()
	for _, w := range h.widgets {
		w.fade.update(dt)
	}
}
