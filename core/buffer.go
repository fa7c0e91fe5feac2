package core

import "log"

// EditBuffer applies a key to the buffer. Backspace restores the snapshot
// taken before the previous edit; any other character is appended after
// saving a snapshot. Keys without a character are not handled.
func (e *editor) EditBuffer(key KeyEvent) bool {
	if key.IsBareModifier() {
		return false
	}

	switch {
	case key.Key == KeyBackspace:
		e.undo()
	case key.Rune != 0:
		e.saveHistory()
		e.state.Buffer += string(key.Rune)
	default:
		return false
	}

	log.Printf("buffer: %q", e.state.Buffer)

	if e.IsInsertMode() {
		e.RequestPreview()
	}

	return true
}

func (e *editor) saveHistory() {
	e.state.History = append(e.state.History, e.state.Buffer)
}

// undo pops the latest snapshot. An empty history leaves the buffer as is.
func (e *editor) undo() {
	n := len(e.state.History)
	if n == 0 {
		return
	}
	e.state.Buffer = e.state.History[n-1]
	e.state.History = e.state.History[:n-1]
}
