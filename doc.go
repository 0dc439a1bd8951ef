// Package stamp places draggable, resizable text labels over a screenshot
// with [Ebitengine].
//
// A [Host] owns the background image and a stack of [Widget] values. Each
// widget runs its own pointer session: a press on the body starts a drag
// candidate that becomes a drag once the pointer travels more than
// [DragThreshold] pixels, and a press on the bottom-right handle starts a
// resize that scales the font with the width. Moves and releases reach a
// widget only through subscriptions it holds on the host's [Dispatcher]
// while its session is open.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	img, err := stamp.LoadImageFile("shot.png")
//	if err != nil {
//		log.Fatal(err)
//	}
//	host := stamp.NewHost()
//	host.SetImage(img, stamp.LayoutFull)
//	stamp.Run(host, stamp.RunConfig{
//		Title: "Stamp", Width: 960, Height: 540,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Host.Update] and [Host.Draw] directly:
//
//	type Game struct{ host *stamp.Host }
//
//	func (g *Game) Update() error              { g.host.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)       { g.host.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// The logical screen should be the window size. The host contains the image
// inside it without upscaling, and widgets keep unscaled window coordinates,
// so [DragThreshold] is measured in window pixels.
//
// Call [Host.EnableDevices] when driving the host yourself; otherwise it
// only consumes injected input.
//
// # Content
//
// Label texts live in a [ContentStore]. [Host.ApplyText] and
// [Host.ApplyFontSizes] push new values from a [Settings] form; a
// single-line value that equals the previous one leaves user edits alone,
// while the multi-line date is always replaced. Clicking a label
// without dragging focuses it for editing, and typed text is passed
// through [SanitizeText].
//
// # Automation
//
// [LoadScript] reads a YAML input script that presses, drags, types,
// changes settings and exports PNGs frame by frame. The ecs submodule
// forwards widget events into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package stamp
