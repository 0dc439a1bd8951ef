package stamp

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9.-]+`)

// Export queues a labeled PNG of the image with its widgets at the image's
// natural size. Queued exports are written at the end of the next Draw call
// to ExportDir with a timestamped name.
func (h *Host) Export(label string) {
	h.exportQueue = append(h.exportQueue, label)
}

// exportViewport maps the widgets as they sit over the on-screen image rect
// onto a canvas of the image's natural size.
func exportViewport(natW, natH int, onScreen Rect) viewport {
	v := viewport{image: Rect{Width: float64(natW), Height: float64(natH)}, scale: 1}
	if onScreen.Width > 0 {
		v.scale = float64(natW) / onScreen.Width
		v.originX, v.originY = onScreen.X, onScreen.Y
	}
	return v
}

// exportName returns the file name for an export labeled label taken at t.
func exportName(label string, t time.Time) string {
	slug := strings.Trim(unsafeNameChars.ReplaceAllString(strings.TrimSpace(label), "_"), "_")
	if slug == "" {
		slug = "export"
	}
	return fmt.Sprintf("%s_%s.png", t.Format("20060102_150405"), slug)
}

// flushExports renders the scene off screen once and writes it for every
// queued label.
func (h *Host) flushExports() {
	if len(h.exportQueue) == 0 {
		return
	}
	defer func() { h.exportQueue = h.exportQueue[:0] }()

	if h.image == nil {
		logf("export: no image loaded, dropping %d export(s)", len(h.exportQueue))
		return
	}
	if err := os.MkdirAll(h.ExportDir, 0o755); err != nil {
		logf("export: mkdir %s: %v", h.ExportDir, err)
		return
	}

	canvas := ebiten.NewImage(h.natW, h.natH)
	defer canvas.Deallocate()
	h.drawScene(canvas, exportViewport(h.natW, h.natH, h.view))
	pix := make([]byte, 4*h.natW*h.natH)
	canvas.ReadPixels(pix)

	now := time.Now()
	for _, label := range h.exportQueue {
		path := filepath.Join(h.ExportDir, exportName(label, now))
		if err := writeExport(path, pix, h.natW, h.natH); err != nil {
			logf("export: %v", err)
			continue
		}
		if h.OnExported != nil {
			fn := h.OnExported
			guard("export callback", func() { fn(path) })
		}
	}
}

// writeExport encodes premultiplied RGBA pixels as a PNG at path.
func writeExport(path string, pix []byte, w, h int) error {
	if len(pix) != 4*w*h {
		return fmt.Errorf("export %s: %d bytes for %dx%d pixels", path, len(pix), w, h)
	}
	img := &image.RGBA{Pix: pix, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
