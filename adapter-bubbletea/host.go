package bubble_adapter

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/ionut-t/calkeys/navigator"
)

type Clipboard interface {
	Write(text string) error
}

type atottoClipboard struct{}

func (c *atottoClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

// surface is what the editor probes before interpreting a key. The Model is
// copied on every update, so the editor holds a pointer that the Model keeps
// in sync.
type surface struct {
	fieldFocused bool
	calendar     bool
}

func (s *surface) TextInputFocused() bool { return s.fieldFocused }
func (s *surface) CalendarPresent() bool  { return s.calendar }

// linkQueue collects the navigator's requests until Update turns them into
// commands.
type linkQueue struct {
	pending []navigator.Navigation
}

func (q *linkQueue) Navigate(nav navigator.Navigation) error {
	q.pending = append(q.pending, nav)
	return nil
}

func (q *linkQueue) drain() []navigator.Navigation {
	pending := q.pending
	q.pending = nil
	return pending
}

type keyMap struct {
	Quit       key.Binding
	QuitNormal key.Binding
	FocusField key.Binding
	BlurField  key.Binding
}

var defaultKeyMap = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	QuitNormal: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	FocusField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "notes"),
	),
	BlurField: key.NewBinding(
		key.WithKeys("esc", "tab"),
		key.WithHelp("esc", "leave notes"),
	),
}
