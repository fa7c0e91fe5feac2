package bubble_adapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGotoTarget(t *testing.T) {
	tests := []struct {
		target  string
		want    string
		wantErr bool
	}{
		{target: "20240115", want: "2024-01-15"},
		{target: "2024-01-15", want: "2024-01-15"},
		{target: "2024-01", want: "2024-01-01"},
		{target: "202401", want: "2024-01-01"},
		{target: "2024", want: "2024-01-01"},
		{target: " 2024 ", want: "2024-01-01"},
		{target: "20241340", wantErr: true},
		{target: "tomorrow", wantErr: true},
		{target: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got, err := parseGotoTarget(tt.target)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, dateOf(got))
		})
	}
}

func TestWeekCalendar(t *testing.T) {
	t.Run("monday start", func(t *testing.T) {
		c := newWeekCalendar(time.Monday, func() time.Time { return wednesday })
		assert.Equal(t, "2024-03-11", dateOf(c.Start()))

		assert.True(t, c.Previous())
		assert.Equal(t, "2024-03-04", dateOf(c.Start()))

		c.JumpTo(time.Date(2024, time.January, 21, 23, 0, 0, 0, time.Local))
		assert.Equal(t, "2024-01-15", dateOf(c.Start()))

		c.Today()
		assert.Equal(t, "2024-03-11", dateOf(c.Start()))
	})

	t.Run("sunday start", func(t *testing.T) {
		c := newWeekCalendar(time.Sunday, func() time.Time { return wednesday })
		assert.Equal(t, "2024-03-10", dateOf(c.Start()))

		assert.True(t, c.Next())
		assert.Equal(t, "2024-03-17", dateOf(c.Start()))
	})

	t.Run("view", func(t *testing.T) {
		c := newWeekCalendar(time.Monday, func() time.Time { return wednesday })
		view := c.View(DefaultTheme, 80)

		assert.Contains(t, view, "Mon 11 Mar 2024 - Sun 17 Mar 2024")
		assert.Contains(t, view, "Wed")
	})
}

func TestTruncateLeft(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "lunch_", 10, "lunch_"},
		{"exact", "lunch_", 6, "lunch_"},
		{"keeps the end", "lunch with sam_", 6, "< sam_"},
		{"wide runes", "会議の予定_", 6, "<予定_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncateLeft(tt.in, tt.width))
		})
	}
}
