package core

type searchMode struct{}

func NewSearchMode() EditorMode  { return &searchMode{} }
func (m *searchMode) Name() Mode { return SearchMode }

func (m *searchMode) HandleKey(editor Editor, key KeyEvent) bool {
	switch key.Key {
	case KeyEscape:
		editor.Reset(NormalMode)
		return true

	case KeyEnter:
		editor.DispatchSignal(NewSearchSignal(editor.GetState().Buffer))
		editor.Reset(NormalMode)
		return true

	default:
		return editor.EditBuffer(key)
	}
}
