package bubble_adapter

import "time"

var (
	EmptyMessage = ""
	TodayMessage = "today"
)

func openLinkMessage(url string) string {
	return "open " + url
}

func weekMessage(start time.Time) string {
	return "week of " + start.Format("2006-01-02")
}
