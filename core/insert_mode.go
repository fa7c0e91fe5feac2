package core

type insertMode struct{}

func NewInsertMode() EditorMode { return &insertMode{} }

func (m *insertMode) Name() Mode { return InsertMode }

func (m *insertMode) HandleKey(editor Editor, key KeyEvent) bool {
	switch key.Key {
	case KeyEscape:
		editor.Reset(NormalMode)
		return true

	case KeyEnter:
		editor.DispatchSignal(NewInsertSignal(editor.GetState().Buffer))
		editor.Reset(NormalMode)
		return true

	default:
		return editor.EditBuffer(key)
	}
}
