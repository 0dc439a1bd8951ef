package stamp

import "strings"

// Initial label texts shown before any settings are applied.
const InitialTimeText = "11:23 AM"

// InitialDateLines is the initial two-line date label.
var InitialDateLines = []string{"11:29", "13-10-2025"}

// Settings mirrors the settings form: text fields for the labels and
// optional font sizes entered as text.
type Settings struct {
	Time         string `yaml:"time" toml:"time"`
	Date         string `yaml:"date" toml:"date"`
	TimeWithAmPm string `yaml:"time_with_ampm" toml:"time_with_ampm"`
	TimeFontSize string `yaml:"time_font_size" toml:"time_font_size"`
	DateFontSize string `yaml:"date_font_size" toml:"date_font_size"`
}

// DefaultSettings returns the form defaults.
func DefaultSettings() Settings {
	return Settings{
		Time:         "11:57",
		Date:         "11-10-2023",
		TimeWithAmPm: "11:57 AM",
	}
}

// TimeContent is the content the time label gets when the text is applied.
func (s Settings) TimeContent() Content { return Line(s.TimeWithAmPm) }

// DateContent is the content the date label gets when the text is applied.
func (s Settings) DateContent() Content { return Lines(s.Time, s.Date) }

// fontSizes resolves the effective font size of both labels. Custom values
// are used only when enabled and parseable.
func (s Settings) fontSizes(custom bool) (date, tm float64) {
	date, tm = DateFontSize, TimeFontSize
	if !custom {
		return date, tm
	}
	if v, ok := parseLeadingInt(s.DateFontSize); ok {
		date = v
	}
	if v, ok := parseLeadingInt(s.TimeFontSize); ok {
		tm = v
	}
	return date, tm
}

// parseLeadingInt reads an optionally signed run of decimal digits after
// leading whitespace and ignores whatever follows ("12px" is 12).
func parseLeadingInt(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, digits := 0.0, 0
	for ; digits < len(s) && s[digits] >= '0' && s[digits] <= '9'; digits++ {
		n = n*10 + float64(s[digits]-'0')
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
