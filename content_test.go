package stamp

import (
	"slices"
	"testing"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"11:57 AM", "11:57 AM"},
		{"  padded \n", "padded"},
		{"<script>alert(1)</script>", "scriptalert(1)/script"},
		{"JavaScript:void(0)", "void(0)"},
		{"x onload=y ONCLICK=z", "x y z"},
		{"a > b < c", "a  b  c"},
		{"line1\nline2", "line1\nline2"},
	}
	for _, tt := range tests {
		if got := SanitizeText(tt.in); got != tt.want {
			t.Errorf("SanitizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContent(t *testing.T) {
	single := Line("a\nb")
	multi := Lines("a", "b")
	if single.String() != multi.String() {
		t.Errorf("rendered text differs: %q vs %q", single, multi)
	}
	if single.Equal(multi) {
		t.Error("single and multi-line content should not be equal")
	}
	if !multi.Equal(Lines("a", "b")) {
		t.Error("identical multi-line content should be equal")
	}

	lines := []string{"x", "y"}
	c := Lines(lines...)
	lines[0] = "changed"
	if c.Lines()[0] != "x" {
		t.Error("Lines should copy its input")
	}
}

func TestContentStore_SetOnlyOnChange(t *testing.T) {
	s := NewContentStore()
	if !s.Set("time", Line("10:00")) {
		t.Error("first Set should report a change")
	}
	if s.Set("time", Line("10:00")) {
		t.Error("same value should not report a change")
	}
	if !s.Set("time", Line("11:00")) {
		t.Error("new value should report a change")
	}
	if !s.Set("date", Lines("11:00", "01-01-2025")) {
		t.Error("new name should report a change")
	}
	if got := s.Names(); !slices.Equal(got, []string{"time", "date"}) {
		t.Errorf("Names = %v", got)
	}
}

func TestContentStore_MultiLineAlwaysReplaces(t *testing.T) {
	s := NewContentStore()
	s.Set("date", Lines("11:57", "11-10-2023"))
	s.record("date", Line("edited"))
	if !s.Set("date", Lines("11:57", "11-10-2023")) {
		t.Error("re-submitting multi-line content should report a change")
	}
	if c, _ := s.Get("date"); !c.Equal(Lines("11:57", "11-10-2023")) {
		t.Errorf("current = %q, want the re-submitted value", c.String())
	}
	if got := s.Names(); !slices.Equal(got, []string{"date"}) {
		t.Errorf("Names = %v", got)
	}
}

func TestContentStore_EditSurvivesSameSource(t *testing.T) {
	s := NewContentStore()
	var edits []string
	s.OnEdit = func(name string, c Content) { edits = append(edits, name+"="+c.String()) }

	s.Set("time", Line("10:00"))
	s.record("time", Line("edited"))
	if s.Set("time", Line("10:00")) {
		t.Error("re-applying the same source value should not replace the edit")
	}
	if c, _ := s.Get("time"); c.String() != "edited" {
		t.Errorf("current = %q, want edited", c.String())
	}
	if !s.Set("time", Line("12:00")) {
		t.Error("a different source value should replace the edit")
	}
	if c, _ := s.Get("time"); c.String() != "12:00" {
		t.Errorf("current = %q, want 12:00", c.String())
	}
	if !slices.Equal(edits, []string{"time=edited"}) {
		t.Errorf("edits = %v", edits)
	}
}

func TestContentStore_GetMissing(t *testing.T) {
	s := NewContentStore()
	if _, ok := s.Get("nope"); ok {
		t.Error("Get on a missing name should report false")
	}
}
