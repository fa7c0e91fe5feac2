package core

type gotoMode struct{}

func NewGotoMode() EditorMode { return &gotoMode{} }

func (m *gotoMode) Name() Mode { return GotoMode }

func (m *gotoMode) HandleKey(editor Editor, key KeyEvent) bool {
	buffer := editor.GetState().Buffer

	switch {
	case key.Key == KeyEscape:
		editor.Reset(NormalMode)
		return true

	case key.Key == KeyEnter:
		editor.DispatchSignal(NewGotoSignal(buffer))
		editor.Reset(NormalMode)
		return true

	// gg jumps to today
	case key.Rune == 'g' && buffer == "":
		editor.DispatchSignal(NewGotoSignal(GotoNow))
		editor.Reset(NormalMode)
		return true

	default:
		return editor.EditBuffer(key)
	}
}
