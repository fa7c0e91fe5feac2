package core

import (
	"fmt"
	"log"
)

// State represents the complete current state of the editor
type State struct {
	Mode    Mode     // Current mode
	Buffer  string   // Text typed since the last reset
	History []string // Buffer snapshots, one per edit, most recent last
	Hint    string   // Preview of the buffer, insert mode only

	// Generation increases on every reset. Preview lookups carry the
	// generation they were issued in.
	Generation uint64
}

// InitialState creates a default state
func InitialState() State {
	return State{
		Mode:    NormalMode,
		Buffer:  "",
		History: []string{},
		Hint:    "",
	}
}

// Concrete implementation of Editor
type editor struct {
	currentMode EditorMode
	modes       map[Mode]EditorMode
	state       State

	surface Surface
	bus     *Bus

	pendingPreview *PreviewRequest
}

// New creates a new editor instance. Signals are published on bus, which may
// be nil when nobody listens. surface may be nil when the host has neither
// form fields nor a calendar.
func New(bus *Bus, surface Surface) Editor {
	e := &editor{
		modes:   make(map[Mode]EditorMode),
		state:   InitialState(),
		surface: surface,
		bus:     bus,
	}

	e.modes[NormalMode] = NewNormalMode()
	e.modes[InsertMode] = NewInsertMode()
	e.modes[GotoMode] = NewGotoMode()
	e.modes[SearchMode] = NewSearchMode()

	e.currentMode = e.modes[e.state.Mode]

	return e
}

// Reset switches to mode and discards the buffer, its history and the hint.
func (e *editor) Reset(mode Mode) {
	if mode != e.state.Mode {
		log.Println("changing mode to", mode)
	}

	e.currentMode = e.modes[mode]
	e.state.Mode = mode
	e.state.Buffer = ""
	e.state.History = []string{}
	e.state.Hint = ""
	e.state.Generation++
	e.pendingPreview = nil
}

func (e *editor) HandleKey(key KeyEvent) (KeyResult, error) {
	e.pendingPreview = nil

	if e.state.Mode == NormalMode && e.surface != nil && e.surface.TextInputFocused() {
		return KeyResult{}, nil
	}

	if e.currentMode == nil {
		err := fmt.Errorf("%w: %s", ErrInvalidMode, e.state.Mode)
		log.Println(err)
		return KeyResult{}, NewError(ErrInvalidModeId, err)
	}

	handled := e.currentMode.HandleKey(e, key)

	result := KeyResult{Handled: handled, Preview: e.pendingPreview}
	e.pendingPreview = nil

	return result, nil
}

func (e *editor) GetMode() EditorMode {
	return e.currentMode
}

func (e *editor) GetState() State {
	state := e.state
	state.History = append([]string(nil), e.state.History...)
	return state
}

func (e *editor) Surface() Surface {
	return e.surface
}

func (e *editor) Overlay() Overlay {
	return RenderOverlay(e.state)
}

func (e *editor) IsNormalMode() bool {
	return e.state.Mode == NormalMode
}

func (e *editor) IsInsertMode() bool {
	return e.state.Mode == InsertMode
}

func (e *editor) IsGotoMode() bool {
	return e.state.Mode == GotoMode
}

func (e *editor) IsSearchMode() bool {
	return e.state.Mode == SearchMode
}
