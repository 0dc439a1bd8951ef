package stamp

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Label fonts. CSS family names are kept on Style for export and display;
// rendering maps them onto the Go fonts by weight, and the digital flag onto
// Go Mono Bold.
var (
	fontsOnce sync.Once
	fontsErr  error
	fontSrcs  struct {
		regular, medium, bold, digital *text.GoTextFaceSource
	}
)

func loadFontSources() error {
	fontsOnce.Do(func() {
		load := func(name string, data []byte) *text.GoTextFaceSource {
			if fontsErr != nil {
				return nil
			}
			src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
			if err != nil {
				fontsErr = fmt.Errorf("stamp: failed to parse %s font: %w", name, err)
			}
			return src
		}
		fontSrcs.regular = load("regular", goregular.TTF)
		fontSrcs.medium = load("medium", gomedium.TTF)
		fontSrcs.bold = load("bold", gobold.TTF)
		fontSrcs.digital = load("digital", gomonobold.TTF)
	})
	return fontsErr
}

// fontVariant picks the font source for a style.
type fontVariant uint8

const (
	fontRegular fontVariant = iota
	fontMedium
	fontBold
	fontDigital
)

func variantFor(st Style) fontVariant {
	switch {
	case st.Digital:
		return fontDigital
	case st.FontWeight >= 600:
		return fontBold
	case st.FontWeight >= 500:
		return fontMedium
	default:
		return fontRegular
	}
}

type faceKey struct {
	variant fontVariant
	size    float64
}

// faceCache keeps one GoTextFace per variant and size; sizes change
// continuously during a resize, so old entries are dropped past a bound.
type faceCache struct {
	faces map[faceKey]*text.GoTextFace
}

const maxCachedFaces = 64

func (c *faceCache) face(st Style, size float64) (*text.GoTextFace, error) {
	if err := loadFontSources(); err != nil {
		return nil, err
	}
	k := faceKey{variantFor(st), size}
	if f, ok := c.faces[k]; ok {
		return f, nil
	}
	if c.faces == nil || len(c.faces) >= maxCachedFaces {
		c.faces = make(map[faceKey]*text.GoTextFace)
	}
	var src *text.GoTextFaceSource
	switch k.variant {
	case fontDigital:
		src = fontSrcs.digital
	case fontBold:
		src = fontSrcs.bold
	case fontMedium:
		src = fontSrcs.medium
	default:
		src = fontSrcs.regular
	}
	f := &text.GoTextFace{Source: src, Size: size}
	c.faces[k] = f
	return f, nil
}

// lineHeight returns the vertical distance between baselines.
func lineHeight(f *text.GoTextFace) float64 {
	m := f.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
