package stamp

import (
	"bytes"
	"strings"
	"testing"
)

// captureLog redirects library diagnostics for the duration of a test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := logOutput
	logOutput = &buf
	t.Cleanup(func() { logOutput = old })
	return &buf
}

func TestDispatcher_PhaseRouting(t *testing.T) {
	var d Dispatcher
	var moves, ups int
	d.OnPointerMove(func(PointerEvent) { moves++ })
	d.OnPointerUp(func(PointerEvent) { ups++ })

	d.Dispatch(PointerEvent{Phase: PhaseMove})
	d.Dispatch(PointerEvent{Phase: PhaseMove})
	d.Dispatch(PointerEvent{Phase: PhaseUp})
	d.Dispatch(PointerEvent{Phase: PhaseDown})

	if moves != 2 || ups != 1 {
		t.Errorf("moves=%d ups=%d, want 2 and 1", moves, ups)
	}
	if d.Len() != 2 {
		t.Errorf("Len = %d, want 2", d.Len())
	}
}

func TestDispatcher_Remove(t *testing.T) {
	var d Dispatcher
	var a, b int
	ha := d.OnPointerMove(func(PointerEvent) { a++ })
	d.OnPointerMove(func(PointerEvent) { b++ })

	ha.Remove()
	ha.Remove()
	CallbackHandle{}.Remove()

	d.Dispatch(PointerEvent{Phase: PhaseMove})
	if a != 0 || b != 1 {
		t.Errorf("a=%d b=%d, want 0 and 1", a, b)
	}
	if d.Len() != 1 {
		t.Errorf("Len = %d, want 1", d.Len())
	}
}

func TestDispatcher_RemoveDuringDispatch(t *testing.T) {
	var d Dispatcher
	var calls []string
	var h1, h2 CallbackHandle
	h1 = d.OnPointerUp(func(PointerEvent) {
		calls = append(calls, "first")
		h1.Remove()
		h2.Remove()
	})
	h2 = d.OnPointerUp(func(PointerEvent) { calls = append(calls, "second") })

	d.Dispatch(PointerEvent{Phase: PhaseUp})
	if strings.Join(calls, ",") != "first,second" {
		t.Errorf("calls = %v, want both handlers from the snapshot", calls)
	}
	if d.Len() != 0 {
		t.Errorf("Len = %d, want 0", d.Len())
	}

	calls = nil
	d.Dispatch(PointerEvent{Phase: PhaseUp})
	if len(calls) != 0 {
		t.Errorf("removed handlers still called: %v", calls)
	}
}

func TestDispatcher_PanicIsLogged(t *testing.T) {
	buf := captureLog(t)
	var d Dispatcher
	var after bool
	d.OnPointerMove(func(PointerEvent) { panic("boom") })
	d.OnPointerMove(func(PointerEvent) { after = true })

	d.Dispatch(PointerEvent{Phase: PhaseMove})

	if !after {
		t.Error("handler after a panicking one should still run")
	}
	if !strings.Contains(buf.String(), "[stamp] pointer handler: boom") {
		t.Errorf("log = %q", buf.String())
	}
}
