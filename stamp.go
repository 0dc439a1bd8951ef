package stamp

import (
	"fmt"
	"strconv"
	"strings"
)

// Interaction limits shared by every overlay widget.
const (
	DragThreshold    = 5.0  // pixels of movement before a press becomes a drag
	MinWidth         = 50.0 // resize floor
	MinHeight        = 20.0 // resize floor
	MinFontSize      = 8.0
	MaxFontSize      = 20.0
	ResizeHandleSize = 16.0 // bottom-right hit square
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite and ColorBlack are the default label colors.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("stamp: invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("stamp: invalid color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// mustHex is for the fixed preset palette only.
func mustHex(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Vec2 is a 2D vector used for positions and pointer coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Size is a width and height in pixels.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Geometry is the interactive part of a widget's state.
type Geometry struct {
	Position Vec2
	Size     Size
	FontSize float64
}

// Bounds returns the widget rectangle in host coordinates.
func (g Geometry) Bounds() Rect {
	return Rect{g.Position.X, g.Position.Y, g.Size.Width, g.Size.Height}
}

// Layout selects one of the two coordinate presets used when an image is loaded.
type Layout uint8

const (
	LayoutFull    Layout = iota // full screenshot
	LayoutCropped               // cropped screenshot
)

func (l Layout) String() string {
	switch l {
	case LayoutCropped:
		return "cropped"
	default:
		return "full"
	}
}

// ParseLayout accepts "full" or "cropped" (case insensitive, empty means full).
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "full":
		return LayoutFull, nil
	case "cropped":
		return LayoutCropped, nil
	}
	return LayoutFull, fmt.Errorf("stamp: unknown layout %q", s)
}

// EventType identifies a widget event delivered to Widget.OnChange and the
// host's EventSink.
type EventType uint8

const (
	EventSessionStart EventType = iota // press on body or resize handle
	EventDragStart                     // movement exceeded DragThreshold
	EventMove                          // position changed during a drag
	EventResize                        // size and font size changed during a resize
	EventDragEnd                       // release after a drag
	EventResizeEnd                     // release after a resize
	EventClick                         // release without a drag
	EventContentEdit                   // text changed by the user
	EventContentSet                    // text replaced from the content source
	EventFontOverride                  // font size set from outside a session
)

var eventNames = [...]string{
	"session-start", "drag-start", "move", "resize", "drag-end",
	"resize-end", "click", "content-edit", "content-set", "font-override",
}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "event(" + strconv.Itoa(int(e)) + ")"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// WidgetEvent carries a widget's state after an event. It is what the host
// exposes outward for rendering and export.
type WidgetEvent struct {
	Type     EventType
	Widget   string
	State    State
	Geometry Geometry
	Content  string
}

// EventSink receives widget events forwarded by a Host.
type EventSink interface {
	EmitEvent(event WidgetEvent)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
