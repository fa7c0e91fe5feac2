package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

// LoadingSuffix is appended to the hint while a lookup is in flight.
const LoadingSuffix = "..."

const unknownField = "?"

// PreviewRequest is a lookup for Text issued during Generation.
type PreviewRequest struct {
	Text       string
	Generation uint64
}

// PreviewResult is the hint computed for a request.
type PreviewResult struct {
	Request PreviewRequest
	Hint    string
}

// RequestPreview schedules a lookup for the current buffer. Outside insert
// mode, or with an empty buffer, the hint is cleared and nothing is looked up.
func (e *editor) RequestPreview() {
	if e.state.Buffer == "" || !e.IsInsertMode() {
		e.state.Hint = ""
		e.pendingPreview = nil
		return
	}

	if !strings.HasSuffix(e.state.Hint, LoadingSuffix) {
		e.state.Hint += LoadingSuffix
	}

	e.pendingPreview = &PreviewRequest{
		Text:       e.state.Buffer,
		Generation: e.state.Generation,
	}
}

// ApplyPreview stores the hint of a finished lookup unless the editor left
// insert mode (or reset) since the lookup was issued. Lookups issued in the
// same insert session are not ordered: the last one applied wins.
func (e *editor) ApplyPreview(result PreviewResult) bool {
	if result.Request.Generation != e.state.Generation || !e.IsInsertMode() {
		log.Printf("discarding stale preview for %q", result.Request.Text)
		return false
	}

	// the hint stays empty while the buffer is
	if e.state.Buffer == "" {
		return false
	}

	e.state.Hint = result.Hint
	return true
}

// FetchPreview looks req up with interp and formats the outcome as a hint.
// It never fails: errors become the hint text.
func FetchPreview(ctx context.Context, interp Interpreter, req PreviewRequest) PreviewResult {
	result := PreviewResult{Request: req}

	if interp == nil {
		result.Hint = errorHint(ErrNoInterpreter)
		return result
	}
	if req.Text == "" {
		result.Hint = errorHint(ErrEmptyBuffer)
		return result
	}

	interpretation, err := interp.Interpret(ctx, req.Text)
	if err != nil {
		var rejection *RejectionError
		if errors.As(err, &rejection) {
			result.Hint = FormatHint(Interpretation{Summary: req.Text}, "hint: "+rejection.Hint)
			return result
		}

		log.Printf("preview lookup for %q failed: %v", req.Text, err)
		result.Hint = errorHint(err)
		return result
	}

	result.Hint = FormatHint(interpretation, "")
	return result
}

// FormatHint renders an interpretation as the four labelled hint lines
// followed by extra.
func FormatHint(i Interpretation, extra string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "What: %s\n", orUnknown(i.Summary))
	fmt.Fprintf(&sb, "When: %s %s\n", orUnknown(i.Date), orUnknown(i.Time))
	fmt.Fprintf(&sb, "Where: %s\n", orUnknown(i.Location))
	fmt.Fprintf(&sb, "For how long: %s\n", orUnknown(i.Duration))
	sb.WriteString(extra)

	return sb.String()
}

func errorHint(err error) string {
	return "error: " + err.Error()
}

func orUnknown(s string) string {
	if s == "" {
		return unknownField
	}
	return s
}
