package stamp

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// labelPadding is the inset between a widget's edge and its text.
const labelPadding = 4.0

var handleHoverColor = Color{1, 1, 1, 0.1}

// Draw renders the image and widgets onto screen, then writes any queued
// exports.
func (h *Host) Draw(screen *ebiten.Image) {
	sb := screen.Bounds()
	h.view = containRect(h.natW, h.natH, sb.Dx(), sb.Dy())
	h.drawScene(screen, viewport{image: h.view, scale: 1, chrome: true})
	h.flushExports()
}

// viewport maps container coordinates onto a draw target.
type viewport struct {
	image            Rect    // where the image lands on the target
	scale            float64 // target pixels per container pixel
	originX, originY float64 // container point drawn at the target's origin
	chrome           bool    // hover highlight and caret
}

func (v viewport) point(x, y float64) (float32, float32) {
	return float32((x - v.originX) * v.scale), float32((y - v.originY) * v.scale)
}

func (h *Host) drawScene(dst *ebiten.Image, v viewport) {
	dst.Fill(h.ClearColor.toRGBA())

	if h.image != nil && v.image.Width > 0 && v.image.Height > 0 {
		if h.bg == nil {
			h.bg = ebiten.NewImageFromImage(h.image)
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(v.image.Width/float64(h.natW), v.image.Height/float64(h.natH))
		op.GeoM.Translate(v.image.X, v.image.Y)
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(h.bg, op)
	}

	for _, w := range h.widgets {
		h.drawWidget(dst, w, v)
	}
}

// containRect fits an image of natural size (iw, ih) inside (sw, sh)
// without upscaling, centered. Widgets are not adjusted to it.
func containRect(iw, ih, sw, sh int) Rect {
	if iw <= 0 || ih <= 0 {
		return Rect{}
	}
	scale := min(1, float64(sw)/float64(iw), float64(sh)/float64(ih))
	w, h := float64(iw)*scale, float64(ih)*scale
	return Rect{
		X:      (float64(sw) - w) / 2,
		Y:      (float64(sh) - h) / 2,
		Width:  w,
		Height: h,
	}
}

func (h *Host) drawWidget(dst *ebiten.Image, w *Widget, v viewport) {
	b := w.Bounds()
	alpha := w.Opacity()
	st := w.style
	x, y := v.point(b.X, b.Y)
	bw, bh := float32(b.Width*v.scale), float32(b.Height*v.scale)

	bg := st.Background
	bg.A *= alpha
	vector.DrawFilledRect(dst, x, y, bw, bh, bg.toRGBA(), true)

	if v.chrome && !w.SessionOpen() && w.HitTest(h.input.mouseX, h.input.mouseY) == HitResizeHandle {
		hc := handleHoverColor
		hc.A *= alpha
		hs := float32(ResizeHandleSize * v.scale)
		vector.DrawFilledRect(dst, x+bw-hs, y+bh-hs, hs, hs, hc.toRGBA(), true)
	}

	face, err := h.faces.face(st, w.FontSize()*v.scale)
	if err != nil {
		logf("draw %q: %v", w.name, err)
		return
	}
	lh := lineHeight(face)
	pad := labelPadding * v.scale
	content := w.Text()

	op := &text.DrawOptions{}
	op.LineSpacing = lh
	op.PrimaryAlign = text.AlignEnd
	op.GeoM.Translate(float64(x+bw)-pad, float64(y)+pad)
	op.ColorScale.ScaleWithColor(st.Text.toRGBA())
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, content, face, op)

	if v.chrome && h.editor.target == w {
		lines := strings.Count(content, "\n")
		tc := st.Text
		tc.A *= alpha
		vector.DrawFilledRect(dst,
			x+bw-float32(pad)+1, y+float32(pad+float64(lines)*lh),
			1, float32(lh), tc.toRGBA(), false)
	}
}

// toRGBA converts a Color to a color.RGBA-compatible value (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}
