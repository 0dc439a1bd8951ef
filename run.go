package stamp

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS draws the FPS and TPS counters in the top-left corner.
	ShowFPS bool
	// ExitWhenScriptDone ends the game loop once an attached script has
	// finished and its last export has been written.
	ExitWhenScriptDone bool
	// Layout is the initial layout for dropped images. Tab switches it while
	// the upload prompt is shown.
	Layout Layout
}

// Game adapts a Host to ebiten.Game and adds the editor's shell: the upload
// prompt, dropped files, export and reset shortcuts.
type Game struct {
	host       *Host
	cfg        RunConfig
	status     string
	dropLayout Layout

	fpsText    string
	fpsElapsed float64
}

// NewGame wraps h for ebiten.RunGame with device input enabled.
func NewGame(h *Host, cfg RunConfig) *Game {
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 540
	}
	h.EnableDevices(true)
	return &Game{host: h, cfg: cfg, dropLayout: cfg.Layout}
}

// Run opens a window and runs h until the window is closed.
func Run(h *Host, cfg RunConfig) error {
	g := NewGame(h, cfg)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	h := g.host
	if files := ebiten.DroppedFiles(); files != nil {
		g.loadDropped(files)
	}

	if !h.HasImage() && inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.toggleLayout()
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) && h.HasImage() {
		h.Export("export")
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		h.Reset()
		g.status = ""
	}

	h.Update()

	if g.cfg.ShowFPS {
		g.fpsElapsed += 1.0 / float64(ebiten.TPS())
		if g.fpsElapsed >= 0.5 || g.fpsText == "" {
			g.fpsElapsed = 0
			g.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		}
	}

	if g.cfg.ExitWhenScriptDone && h.script != nil && h.script.Done() && len(h.exportQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) toggleLayout() {
	if g.dropLayout == LayoutFull {
		g.dropLayout = LayoutCropped
	} else {
		g.dropLayout = LayoutFull
	}
}

// loadDropped replaces the image with the first dropped file, placing the
// labels for the layout chosen at the prompt.
func (g *Game) loadDropped(files fs.FS) {
	name, err := FirstFile(files)
	if err != nil {
		g.status = err.Error()
		logf("drop: %v", err)
		return
	}
	img, err := LoadImageFS(files, name)
	if err != nil {
		g.status = err.Error()
		logf("drop %s: %v", name, err)
		return
	}
	g.status = ""
	g.host.SetImage(img, g.dropLayout)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.host.Draw(screen)
	if !g.host.HasImage() {
		g.drawPrompt(screen)
	}
	if g.cfg.ShowFPS {
		vector.DrawFilledRect(screen, 0, 0, 100, 32, color.RGBA{0, 0, 0, 128}, false)
		ebitenutil.DebugPrint(screen, g.fpsText)
	}
}

func (g *Game) drawPrompt(screen *ebiten.Image) {
	b := screen.Bounds()
	x, y := b.Dx()/2-120, b.Dy()/2-24
	ebitenutil.DebugPrintAt(screen, "Drop a screenshot here", x, y)
	ebitenutil.DebugPrintAt(screen, "PNG, JPEG or WebP up to 10MB", x, y+16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Layout: %s (Tab to switch)", g.dropLayout), x, y+32)
	if g.status != "" {
		ebitenutil.DebugPrintAt(screen, g.status, x, y+56)
	}
}

// Layout implements ebiten.Game. The logical screen is the window itself:
// the image is contained inside it and widget coordinates stay in unscaled
// window pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.cfg.Width, g.cfg.Height
	}
	return outsideWidth, outsideHeight
}
