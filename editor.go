package stamp

// editor is the text input surface. It keeps the raw keystroke buffer of the
// focused widget; the widget stores the sanitized form of that buffer.
type editor struct {
	target *Widget
	buf    []rune
}

func (e *editor) focus(w *Widget) {
	e.target = w
	e.buf = append(e.buf[:0], []rune(w.Text())...)
}

func (e *editor) blur() {
	e.target = nil
	e.buf = e.buf[:0]
}

func (e *editor) insert(s string) {
	if e.target == nil || s == "" {
		return
	}
	e.buf = append(e.buf, []rune(s)...)
	e.target.Edit(string(e.buf))
}

func (e *editor) backspace() {
	if e.target == nil || len(e.buf) == 0 {
		return
	}
	e.buf = e.buf[:len(e.buf)-1]
	e.target.Edit(string(e.buf))
}

// TypeText inserts s at the end of the focused widget's text. Newlines in s
// start new lines. It does nothing when no widget is focused.
func (h *Host) TypeText(s string) {
	h.editor.insert(s)
}

// Backspace deletes the last character of the focused widget's text.
func (h *Host) Backspace() {
	h.editor.backspace()
}

// Focus starts editing w, as a click on it would.
func (h *Host) Focus(w *Widget) {
	h.editor.focus(w)
}

// Blur stops editing.
func (h *Host) Blur() {
	h.editor.blur()
}
