package core

import "context"

// Editor represents the modal command layer
type Editor interface {
	// Event handling
	HandleKey(key KeyEvent) (KeyResult, error)

	// Mode handling
	GetMode() EditorMode
	Reset(mode Mode)
	IsNormalMode() bool
	IsInsertMode() bool
	IsGotoMode() bool
	IsSearchMode() bool

	// Buffer editing
	EditBuffer(key KeyEvent) bool

	// Preview
	RequestPreview()
	ApplyPreview(result PreviewResult) bool

	// State Management
	GetState() State
	Overlay() Overlay
	Surface() Surface

	DispatchSignal(signal Signal)
}

// KeyResult is the outcome of a single key press.
type KeyResult struct {
	Handled bool
	// Preview is set when the key changed the buffer in insert mode and a
	// lookup should be started for the new contents.
	Preview *PreviewRequest
}

// Surface lets the editor probe the page it is overlaid on.
type Surface interface {
	// TextInputFocused reports whether an ordinary text field has focus.
	TextInputFocused() bool
	// CalendarPresent reports whether a calendar is shown that can be moved.
	CalendarPresent() bool
}

// Interpretation is a natural-language event description as understood by
// the preview service. Empty optional fields were not recognised.
type Interpretation struct {
	Summary  string
	Date     string
	Time     string
	Location string
	Duration string
}

// Interpreter turns free text into an Interpretation.
type Interpreter interface {
	Interpret(ctx context.Context, text string) (Interpretation, error)
}
