package bubble_adapter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const daysPerWeek = 7

// gotoLayouts are the date forms accepted as goto targets, most specific first.
var gotoLayouts = []string{
	"20060102",
	"2006-01-02",
	"2006-01",
	"200601",
	"2006",
}

// weekCalendar is a one-week calendar surface. Its previous and next
// controls move the visible week.
type weekCalendar struct {
	start        time.Time
	firstWeekday time.Weekday
	now          func() time.Time
}

func newWeekCalendar(firstWeekday time.Weekday, now func() time.Time) *weekCalendar {
	c := &weekCalendar{firstWeekday: firstWeekday, now: now}
	c.Today()
	return c
}

func (c *weekCalendar) Previous() bool {
	c.start = c.start.AddDate(0, 0, -daysPerWeek)
	return true
}

func (c *weekCalendar) Next() bool {
	c.start = c.start.AddDate(0, 0, daysPerWeek)
	return true
}

// Today shows the week containing the current date.
func (c *weekCalendar) Today() {
	c.JumpTo(c.now())
}

// JumpTo shows the week containing t.
func (c *weekCalendar) JumpTo(t time.Time) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	offset := (int(day.Weekday()) - int(c.firstWeekday) + daysPerWeek) % daysPerWeek
	c.start = day.AddDate(0, 0, -offset)
}

func (c *weekCalendar) Start() time.Time {
	return c.start
}

func (c *weekCalendar) View(theme Theme, width int) string {
	end := c.start.AddDate(0, 0, daysPerWeek-1)
	title := theme.CalendarHeaderStyle.Render(
		fmt.Sprintf("%s - %s", c.start.Format("Mon 2 Jan 2006"), end.Format("Mon 2 Jan 2006")),
	)

	colWidth := max(6, width/daysPerWeek-1)
	today := c.now()

	days := make([]string, 0, daysPerWeek)
	for i := 0; i < daysPerWeek; i++ {
		day := c.start.AddDate(0, 0, i)
		style := theme.CalendarDayStyle
		if sameDay(day, today) {
			style = theme.CalendarTodayStyle
		}
		days = append(days, style.Width(colWidth).Render(day.Format("Mon")+"\n"+day.Format("02")))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, days...),
	)
}

// parseGotoTarget reads a goto target as a date. Partial dates pick the
// first day of the month or year.
func parseGotoTarget(target string) (time.Time, error) {
	target = strings.TrimSpace(target)
	for _, layout := range gotoLayouts {
		if len(layout) != len(target) {
			continue
		}
		if t, err := time.ParseInLocation(layout, target, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not a date", target)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
