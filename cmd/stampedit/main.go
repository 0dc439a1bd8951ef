// Stampedit opens a screenshot and overlays draggable time and date labels.
//
// Usage:
//
//	go run ./cmd/stampedit [flags]
//
// Flags:
//
//	-config <file>      YAML or TOML config file
//	-image <file>       Screenshot to open (PNG, JPEG or WebP)
//	-layout <name>      Preset layout: full or cropped
//	-script <file>      YAML input script to replay
//	-export-dir <dir>   Directory for exported PNGs
//	-exit               Quit once the script has finished
//	-debug              Log widget state transitions
//	-fps                Show FPS counter
//
// Controls:
//
//	Drag label        - Move it
//	Drag corner       - Resize it (font scales with width)
//	Click label       - Edit its text, Escape to stop editing
//	Ctrl+S            - Export the picture as PNG
//	Ctrl+N            - Discard the picture and start over
//	Drop file         - Open a new screenshot
package main

import (
	"flag"
	"log"
	"os"

	"github.com/phanxgames/stamp"
)

var (
	configFlag    = flag.String("config", "", "YAML or TOML config file")
	imageFlag     = flag.String("image", "", "Screenshot to open")
	layoutFlag    = flag.String("layout", "", "Preset layout: full or cropped")
	scriptFlag    = flag.String("script", "", "YAML input script to replay")
	exportDirFlag = flag.String("export-dir", "", "Directory for exported PNGs")
	exitFlag      = flag.Bool("exit", false, "Quit once the script has finished")
	debugFlag     = flag.Bool("debug", false, "Log widget state transitions")
	fpsFlag       = flag.Bool("fps", false, "Show FPS counter")
)

func main() {
	flag.Parse()

	cfg := stamp.DefaultConfig()
	if *configFlag != "" {
		var err error
		if cfg, err = stamp.LoadConfig(*configFlag); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	if *imageFlag != "" {
		cfg.Image = *imageFlag
	}
	if *layoutFlag != "" {
		cfg.Layout = *layoutFlag
	}
	if *scriptFlag != "" {
		cfg.Script = *scriptFlag
	}
	if *exportDirFlag != "" {
		cfg.ExportDir = *exportDirFlag
	}
	cfg.Debug = cfg.Debug || *debugFlag

	layout, err := stamp.ParseLayout(cfg.Layout)
	if err != nil {
		log.Fatalf("layout: %v", err)
	}

	host := stamp.NewHost()
	host.ExportDir = cfg.ExportDir
	host.SetDebugMode(cfg.Debug)
	host.OnImageLoaded = func(w, h int) {
		log.Printf("image loaded: %dx%d", w, h)
	}
	host.OnExported = func(path string) {
		log.Printf("exported %s", path)
	}

	if cfg.Image != "" {
		img, err := stamp.LoadImageFile(cfg.Image)
		if err != nil {
			log.Fatalf("image: %v", err)
		}
		host.SetImage(img, layout)
		if cfg.ApplySettings {
			host.ApplyText(cfg.Settings)
			host.ApplyFontSizes(cfg.Settings)
		}
	}

	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			log.Fatalf("script: %v", err)
		}
		runner, err := stamp.LoadScript(data)
		if err != nil {
			log.Fatalf("script: %v", err)
		}
		host.SetScript(runner)
	}

	if err := stamp.Run(host, stamp.RunConfig{
		Title:              cfg.Title,
		Width:              cfg.Width,
		Height:             cfg.Height,
		ShowFPS:            *fpsFlag,
		ExitWhenScriptDone: *exitFlag,
		Layout:             layout,
	}); err != nil {
		log.Fatal(err)
	}
}
