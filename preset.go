package stamp

// Widget names used by the presets, the content store and the settings.
const (
	WidgetDate = "date"
	WidgetTime = "time"
)

// Preset font sizes, used again when custom sizes are reset.
const (
	DateFontSize = 7.0
	TimeFontSize = 10.0
)

const timeFontFamily = `"Google Sans", "Roboto", "Arial", sans-serif`

// Preset coordinates are in the pixel space of the reference screenshot and
// are not scaled to the loaded image.
var (
	datePresetFull    = Geometry{Position: Vec2{1722, 912}, Size: Size{80, 43.8}, FontSize: DateFontSize}
	datePresetCropped = Geometry{Position: Vec2{1783, 910}, Size: Size{80, 43.8}, FontSize: DateFontSize}
	timePresetFull    = Geometry{Position: Vec2{128, 860}, Size: Size{70, 30}, FontSize: TimeFontSize}
	timePresetCropped = Geometry{Position: Vec2{56.80, 854}, Size: Size{70, 30}, FontSize: TimeFontSize}
)

// Presets returns the widget configurations for layout in stacking order
// (the last one is drawn on top). Contents are left empty; the host fills
// them from its content store.
func Presets(layout Layout) []WidgetConfig {
	date := WidgetConfig{
		Name: WidgetDate,
		Style: Style{
			Background: mustHex("#1d2526"),
			Text:       mustHex("#ffffff"),
			FontFamily: DefaultFontFamily,
			FontWeight: DefaultFontWeight,
		},
	}
	tm := WidgetConfig{
		Name: WidgetTime,
		Style: Style{
			Background: mustHex("#131313"),
			Text:       mustHex("#ffffff"),
			FontFamily: timeFontFamily,
			FontWeight: DefaultFontWeight,
			Digital:    true,
		},
	}

	dg, tg := datePresetFull, timePresetFull
	if layout == LayoutCropped {
		dg, tg = datePresetCropped, timePresetCropped
		date.Style.Background = mustHex("#eadacc")
		date.Style.Text = mustHex("#000000")
	}
	date.Position, date.Size, date.FontSize = dg.Position, dg.Size, dg.FontSize
	tm.Position, tm.Size, tm.FontSize = tg.Position, tg.Size, tg.FontSize

	return []WidgetConfig{date, tm}
}
