package core

type normalMode struct{}

func NewNormalMode() EditorMode { return &normalMode{} }

func (m *normalMode) Name() Mode { return NormalMode }

func (m *normalMode) HandleKey(editor Editor, key KeyEvent) bool {
	// Browser and terminal shortcuts pass through untouched
	if key.HasCommandModifier() {
		return false
	}

	switch key.Rune {
	case 'h':
		return move(editor, DirectionLeft)
	case 'j':
		return move(editor, DirectionDown)
	case 'k':
		return move(editor, DirectionUp)
	case 'l':
		return move(editor, DirectionRight)

	case 'i':
		editor.Reset(InsertMode)
		return true
	case 'g':
		editor.Reset(GotoMode)
		return true
	case '/':
		editor.Reset(SearchMode)
		return true
	}

	return false
}

// move emits a move signal when there is a calendar to move.
func move(editor Editor, direction Direction) bool {
	surface := editor.Surface()
	if surface == nil || !surface.CalendarPresent() {
		return false
	}
	editor.DispatchSignal(NewMoveSignal(direction))
	return true
}
