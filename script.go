package stamp

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrEmptyScript is returned by LoadScript for a script without steps.
var ErrEmptyScript = errors.New("stamp: script has no steps")

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"from_x,omitempty"`
	FromY  float64 `yaml:"from_y,omitempty"`
	ToX    float64 `yaml:"to_x,omitempty"`
	ToY    float64 `yaml:"to_y,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	Text   string  `yaml:"text,omitempty"`

	// settext and setfont take their values from here.
	Settings Settings `yaml:"settings,omitempty"`
}

type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner replays a YAML input script one step per frame, waiting for
// injected pointer events to drain between steps. Attach it with
// Host.SetScript.
//
//	steps:
//	  - action: drag
//	    from_x: 150
//	    from_y: 870
//	    to_x: 400
//	    to_y: 600
//	    frames: 10
//	  - action: export
//	    label: moved
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML input script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("stamp: parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, ErrEmptyScript
	}
	for i, st := range s.Steps {
		if !knownAction(st.Action) {
			return nil, fmt.Errorf("stamp: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

func knownAction(a string) bool {
	switch a {
	case "press", "move", "release", "click", "drag", "type", "backspace",
		"settext", "setfont", "resetfont", "export", "wait":
		return true
	}
	return false
}

// SetScript attaches r to the host. Its steps run from Host.Update before
// input is processed.
func (h *Host) SetScript(r *ScriptRunner) {
	h.script = r
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(h *Host) {
	if r.done {
		return
	}
	if len(h.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		h.InjectPress(st.X, st.Y)
	case "move":
		h.InjectMove(st.X, st.Y)
	case "release":
		h.InjectRelease(st.X, st.Y)
	case "click":
		h.InjectClick(st.X, st.Y)
	case "drag":
		h.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "type":
		h.TypeText(st.Text)
	case "backspace":
		h.Backspace()
	case "settext":
		h.ApplyText(st.Settings)
	case "setfont":
		h.ApplyFontSizes(st.Settings)
	case "resetfont":
		h.ResetFontSizes()
	case "export":
		h.Export(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(h.injectQueue) == 0 {
		r.done = true
	}
}
