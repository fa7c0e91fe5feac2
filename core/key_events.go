package core

import (
	"fmt"
	"strings"
)

// --- KeyCode, KeyModifiers, Key ---

// KeyCode represents non-character keys
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyDelete

	// Bare modifier presses (no character attached)
	KeyControl
	KeyMeta
	KeyAlt
	KeyShift
)

// KeyModifiers represents modifier keys held during a keystroke
type KeyModifiers uint8

const (
	ModNone KeyModifiers = 0
	ModCtrl KeyModifiers = 1 << iota
	ModAlt
	ModShift
	ModMeta
)

// KeyEvent represents a keyboard input event
type KeyEvent struct {
	Rune      rune
	Key       KeyCode
	Modifiers KeyModifiers
}

// Char returns a KeyEvent for a plain character key.
func Char(r rune) KeyEvent {
	return KeyEvent{Rune: r}
}

// IsBareModifier reports whether the event is a modifier key pressed on its own.
func (k KeyEvent) IsBareModifier() bool {
	if k.Rune != 0 {
		return false
	}
	switch k.Key {
	case KeyControl, KeyMeta, KeyAlt, KeyShift:
		return true
	}
	return false
}

// HasCommandModifier reports whether control, meta or alt is held.
// Shift is not a command modifier: it only changes which character is typed.
func (k KeyEvent) HasCommandModifier() bool {
	return k.Modifiers&(ModCtrl|ModMeta|ModAlt) != 0
}

// String returns a string representation of a Key
func (k KeyEvent) String() string {
	var parts []string

	if k.Modifiers&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if k.Modifiers&ModMeta != 0 {
		parts = append(parts, "Meta")
	}
	if k.Modifiers&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if k.Modifiers&ModShift != 0 {
		parts = append(parts, "Shift")
	}

	if k.Rune != 0 {
		parts = append(parts, string(k.Rune))
	} else {
		switch k.Key {
		case KeyEnter:
			parts = append(parts, "Enter")
		case KeyTab:
			parts = append(parts, "Tab")
		case KeyBackspace:
			parts = append(parts, "Backspace")
		case KeyEscape:
			parts = append(parts, "Escape")
		case KeySpace:
			parts = append(parts, "Space")
		case KeyUp:
			parts = append(parts, "Up")
		case KeyDown:
			parts = append(parts, "Down")
		case KeyLeft:
			parts = append(parts, "Left")
		case KeyRight:
			parts = append(parts, "Right")
		case KeyDelete:
			parts = append(parts, "Delete")
		case KeyControl:
			parts = append(parts, "Control")
		case KeyMeta:
			parts = append(parts, "Meta")
		case KeyAlt:
			parts = append(parts, "Alt")
		case KeyShift:
			parts = append(parts, "Shift")
		case KeyUnknown:
			parts = append(parts, "Unknown")
		default:
			parts = append(parts, fmt.Sprintf("SpecialKey(%d)", k.Key))
		}
	}

	return strings.Join(parts, "+")
}
