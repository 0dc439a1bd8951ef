package stamp

import (
	"regexp"
	"slices"
	"strings"
)

// Content is the text of one label: a single string or an ordered list of
// lines rendered joined by newlines.
type Content struct {
	lines []string
	multi bool
}

// Line returns single-string content. The string may itself contain newlines.
func Line(s string) Content {
	return Content{lines: []string{s}}
}

// Lines returns multi-line content.
func Lines(lines ...string) Content {
	return Content{lines: slices.Clone(lines), multi: true}
}

// IsMulti reports whether the content was built from a list of lines.
func (c Content) IsMulti() bool { return c.multi }

// Lines returns a copy of the lines as supplied.
func (c Content) Lines() []string { return slices.Clone(c.lines) }

// String returns the displayed text.
func (c Content) String() string {
	return strings.Join(c.lines, "\n")
}

// Equal reports whether two contents have the same shape and text.
func (c Content) Equal(o Content) bool {
	return c.multi == o.multi && slices.Equal(c.lines, o.lines)
}

var (
	reAngle      = regexp.MustCompile(`[<>]`)
	reJavascript = regexp.MustCompile(`(?i)javascript:`)
	reHandler    = regexp.MustCompile(`(?i)on\w+=`)
)

// SanitizeText strips markup-like fragments from user edits: angle brackets,
// "javascript:" and "on<word>=" (both case insensitive). Surrounding
// whitespace is trimmed.
func SanitizeText(s string) string {
	s = reAngle.ReplaceAllString(s, "")
	s = reJavascript.ReplaceAllString(s, "")
	s = reHandler.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ContentStore holds the text of each named widget. It tracks two values
// per name: the last value supplied by the external source, and the current
// value including user edits. A single-line source value only propagates when
// it differs from the previous one, so re-applying the same settings does not
// discard edits. Multi-line values are rebuilt on every submit and always
// propagate.
type ContentStore struct {
	current map[string]Content
	source  map[string]Content
	order   []string

	// OnEdit, when set, is called after a user edit is recorded.
	OnEdit func(name string, c Content)
}

// NewContentStore creates an empty store.
func NewContentStore() *ContentStore {
	return &ContentStore{
		current: make(map[string]Content),
		source:  make(map[string]Content),
	}
}

// Set records a source value for name and reports whether it replaced the
// current value. An unchanged single-line value is skipped; a multi-line value
// always replaces the current one.
func (s *ContentStore) Set(name string, c Content) bool {
	old, ok := s.source[name]
	if ok && !c.IsMulti() && old.Equal(c) {
		return false
	}
	if _, seen := s.current[name]; !seen {
		s.order = append(s.order, name)
	}
	s.source[name] = c
	s.current[name] = c
	return true
}

// Get returns the current content of name.
func (s *ContentStore) Get(name string) (Content, bool) {
	c, ok := s.current[name]
	return c, ok
}

// Names returns the stored names in insertion order.
func (s *ContentStore) Names() []string {
	return slices.Clone(s.order)
}

// record stores a user edit and notifies OnEdit.
func (s *ContentStore) record(name string, c Content) {
	if _, seen := s.current[name]; !seen {
		s.order = append(s.order, name)
	}
	s.current[name] = c
	if s.OnEdit != nil {
		fn := s.OnEdit
		guard("content edit callback", func() { fn(name, c) })
	}
}
