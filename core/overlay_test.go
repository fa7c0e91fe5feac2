package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFormatGotoBuffer(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"20240115", "2024-01-15"},
		{"2024", "2024"},
		{"20241", "2024-1"},
		{"202401", "2024-01"},
		{"-20240115", "-20240115"},
		{"-2024011", "-2024-01-1"},
		{"abc", "abc"},
		{"999912311", "999912311"},
		{"99991231", "9999-12-31"},
		{"99991232", "99991232"},
		{"2024 01", "2024 01"},
		{"", ""},
		{"-", "-"},
		{"2024x", "2024-x"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatGotoBuffer(tt.in))
		})
	}
}

func TestRenderOverlay(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Overlay
	}{
		{
			name:  "normal mode hides everything",
			state: State{Mode: NormalMode, Hint: "leftover"},
			want:  Overlay{},
		},
		{
			name:  "insert mode with hint",
			state: State{Mode: InsertMode, Buffer: "dinner", Hint: "What: dinner"},
			want: Overlay{
				Visible:     true,
				ModeLabel:   "insert",
				Buffer:      "dinner_",
				Hint:        "What: dinner",
				HintVisible: true,
			},
		},
		{
			name:  "goto mode formats dates",
			state: State{Mode: GotoMode, Buffer: "20240115"},
			want: Overlay{
				Visible:   true,
				ModeLabel: "goto  ",
				Buffer:    "2024-01-15_",
			},
		},
		{
			name:  "search mode keeps raw buffer",
			state: State{Mode: SearchMode, Buffer: "20240115"},
			want: Overlay{
				Visible:   true,
				ModeLabel: "search",
				Buffer:    "20240115_",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, RenderOverlay(tt.state)); diff != "" {
				t.Errorf("RenderOverlay() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEditorOverlayTracksState(t *testing.T) {
	e, _ := newTestEditor(t, nil)
	assert.False(t, e.Overlay().Visible)

	press(t, e, Char('g'))
	typeText(t, e, "202401")

	overlay := e.Overlay()
	assert.True(t, overlay.Visible)
	assert.Equal(t, "2024-01_", overlay.Buffer)
	assert.False(t, overlay.HintVisible)
}
