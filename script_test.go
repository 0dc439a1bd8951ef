package stamp

import (
	"errors"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`
steps:
  - action: export
    label: initial
  - action: click
    x: 100
    y: 200
  - action: wait
    frames: 3
  - action: settext
    settings:
      time_with_ampm: "09:15 PM"
`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "export" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Settings.TimeWithAmPm != "09:15 PM" {
		t.Error("step 3 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	if _, err := LoadScript([]byte("steps: [")); err == nil {
		t.Error("expected error for invalid YAML")
	}
	if _, err := LoadScript([]byte("steps:\n  - action: explode\n")); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestLoadScript_Empty(t *testing.T) {
	_, err := LoadScript([]byte("steps: []"))
	if !errors.Is(err, ErrEmptyScript) {
		t.Errorf("err = %v, want ErrEmptyScript", err)
	}
}

func TestRunnerStep_Drag(t *testing.T) {
	h := newLoadedHost(LayoutFull)
	runner, err := LoadScript([]byte(`
steps:
  - action: drag
    from_x: 150
    from_y: 870
    to_x: 250
    to_y: 870
    frames: 4
  - action: export
    label: moved
`))
	if err != nil {
		t.Fatal(err)
	}
	h.SetScript(runner)

	for i := 0; i < 20 && !runner.Done(); i++ {
		h.Update()
	}
	if !runner.Done() {
		t.Fatal("runner should be done")
	}
	if got := h.Widget(WidgetTime).Position(); got != (Vec2{228, 860}) {
		t.Errorf("position = %+v, want (228, 860)", got)
	}
	if len(h.exportQueue) != 1 || h.exportQueue[0] != "moved" {
		t.Errorf("exportQueue = %v", h.exportQueue)
	}
}

func TestRunnerStep_EditAndSettings(t *testing.T) {
	h := newLoadedHost(LayoutFull)
	runner, err := LoadScript([]byte(`
steps:
  - action: click
    x: 1730
    y: 920
  - action: type
    text: "!"
  - action: setfont
    settings:
      date_font_size: "9"
  - action: settext
    settings:
      time: "08:00"
      date: "01-01-2026"
      time_with_ampm: "08:00 AM"
`))
	if err != nil {
		t.Fatal(err)
	}
	h.SetScript(runner)

	// The click needs its two queued events drained before "type" runs.
	for i := 0; i < 20 && !runner.Done(); i++ {
		h.Update()
	}
	if !runner.Done() {
		t.Fatal("runner should be done")
	}
	if got := h.Widget(WidgetDate).FontSize(); got != 9 {
		t.Errorf("date font = %v, want 9", got)
	}
	if got := h.Widget(WidgetDate).Text(); got != "08:00\n01-01-2026" {
		t.Errorf("date = %q", got)
	}
	if got := h.Widget(WidgetTime).Text(); got != "08:00 AM" {
		t.Errorf("time = %q", got)
	}
}

func TestRunnerStep_TypeWaitsForClick(t *testing.T) {
	h := newLoadedHost(LayoutFull)
	runner, err := LoadScript([]byte(`
steps:
  - action: click
    x: 150
    y: 870
  - action: type
    text: "!"
`))
	if err != nil {
		t.Fatal(err)
	}
	h.SetScript(runner)
	for i := 0; i < 10 && !runner.Done(); i++ {
		h.Update()
	}
	if got := h.Widget(WidgetTime).Text(); got != "11:23 AM!" {
		t.Errorf("time = %q, want typed text", got)
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	h := NewHost()
	runner, err := LoadScript([]byte(`
steps:
  - action: wait
    frames: 3
  - action: export
    label: done
`))
	if err != nil {
		t.Fatal(err)
	}

	// Frame 1: execute wait (waitCount becomes 2).
	runner.step(h)
	// Frames 2 and 3: count down.
	runner.step(h)
	runner.step(h)
	if runner.Done() || len(h.exportQueue) != 0 {
		t.Fatal("export step should not run during the wait")
	}

	// Frame 4: execute export step, runner finishes.
	runner.step(h)
	if !runner.Done() {
		t.Error("runner should be done after export step")
	}
	if len(h.exportQueue) != 1 || h.exportQueue[0] != "done" {
		t.Errorf("expected export 'done', got %v", h.exportQueue)
	}
}
