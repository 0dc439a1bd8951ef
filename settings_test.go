package stamp

import "testing"

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12", 12, true},
		{"  14px", 14, true},
		{"+9", 9, true},
		{"-3", -3, true},
		{"7.5", 7, true},
		{"", 0, false},
		{"px12", 0, false},
		{"-", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseLeadingInt(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseLeadingInt(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSettings_FontSizes(t *testing.T) {
	s := Settings{DateFontSize: "11", TimeFontSize: "16"}
	if d, tm := s.fontSizes(false); d != DateFontSize || tm != TimeFontSize {
		t.Errorf("disabled = %v, %v; want presets", d, tm)
	}
	if d, tm := s.fontSizes(true); d != 11 || tm != 16 {
		t.Errorf("enabled = %v, %v; want 11, 16", d, tm)
	}
	s.TimeFontSize = ""
	if _, tm := s.fontSizes(true); tm != TimeFontSize {
		t.Errorf("empty time size = %v, want preset", tm)
	}
}

func TestSettings_Content(t *testing.T) {
	s := DefaultSettings()
	if got := s.TimeContent(); got.IsMulti() || got.String() != "11:57 AM" {
		t.Errorf("TimeContent = %q", got.String())
	}
	if got := s.DateContent(); !got.IsMulti() || got.String() != "11:57\n11-10-2023" {
		t.Errorf("DateContent = %q", got.String())
	}
}
