package core

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CursorMarker is drawn after the buffer contents.
const CursorMarker = "_"

// maxGotoDate bounds the numbers that are displayed as dates in goto mode.
const maxGotoDate = 99991231

// Overlay is what a host draws for the current state.
type Overlay struct {
	Visible     bool
	ModeLabel   string
	Buffer      string
	Hint        string
	HintVisible bool
}

// RenderOverlay projects state onto an Overlay.
func RenderOverlay(state State) Overlay {
	if state.Mode == NormalMode {
		return Overlay{}
	}

	buffer := state.Buffer
	if state.Mode == GotoMode {
		buffer = FormatGotoBuffer(buffer)
	}

	return Overlay{
		Visible:     true,
		ModeLabel:   fmt.Sprintf("%-*s", MaxModeLength(), state.Mode),
		Buffer:      buffer + CursorMarker,
		Hint:        state.Hint,
		HintVisible: state.Hint != "",
	}
}

// FormatGotoBuffer groups a numeric goto buffer like a YYYY-MM-DD date, so
// "20240115" reads "2024-01-15". Anything that is not a short number within
// the date range is returned unchanged.
func FormatGotoBuffer(buffer string) string {
	if buffer == "" || utf8.RuneCountInString(buffer) >= 9 || strings.Contains(buffer, " ") {
		return buffer
	}

	n, ok := leadingInt(buffer)
	if !ok || n > maxGotoDate || n < -maxGotoDate {
		return buffer
	}

	var sb strings.Builder
	digits := buffer
	if digits[0] == '-' || digits[0] == '+' {
		sb.WriteByte(digits[0])
		digits = digits[1:]
	}

	for i, r := range []rune(digits) {
		if i == 4 || i == 6 {
			sb.WriteByte('-')
		}
		sb.WriteRune(r)
	}

	return sb.String()
}

// leadingInt reads an optionally signed decimal number from the start of s,
// ignoring whatever follows the digits. It fails when s does not start with
// a number.
func leadingInt(s string) (int64, bool) {
	i := 0
	negative := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		negative = s[i] == '-'
		i++
	}

	start := i
	var n int64
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int64(s[i]-'0')
	}
	if i == start {
		return 0, false
	}

	if negative {
		n = -n
	}
	return n, true
}
