package state

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
)

// SearchState holds the filter box. The applied query stays in effect after
// the box is closed until it is cleared.
type SearchState struct {
	Input textinput.Model
}

// NewSearchState wraps a configured text input.
func NewSearchState(input textinput.Model) *SearchState {
	return &SearchState{Input: input}
}

// Query returns the trimmed filter text.
func (s *SearchState) Query() string {
	return strings.TrimSpace(s.Input.Value())
}

// Active reports whether a filter is applied.
func (s *SearchState) Active() bool {
	return s.Query() != ""
}

// Clear removes the filter.
func (s *SearchState) Clear() {
	s.Input.SetValue("")
	s.Input.Blur()
}
