package core

type Mode string

const (
	NormalMode Mode = "normal"
	InsertMode Mode = "insert"
	GotoMode   Mode = "goto"
	SearchMode Mode = "search"
)

// Modes returns every mode the editor can be in.
func Modes() []Mode {
	return []Mode{NormalMode, InsertMode, GotoMode, SearchMode}
}

// MaxModeLength is the length of the longest mode name. The overlay pads the
// mode label to it so the buffer does not shift when the mode changes.
func MaxModeLength() int {
	longest := 0
	for _, m := range Modes() {
		longest = max(longest, len(m))
	}
	return longest
}

func (m Mode) String() string { return string(m) }

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case NormalMode, InsertMode, GotoMode, SearchMode:
		return true
	}
	return false
}

// EditorMode interprets keys for a single mode.
// HandleKey reports whether the key was consumed; a consumed key must not
// reach the host's default handling.
type EditorMode interface {
	Name() Mode
	HandleKey(editor Editor, key KeyEvent) bool
}
