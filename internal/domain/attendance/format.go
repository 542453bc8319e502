package attendance

import (
	"fmt"
	"time"
)

const (
	Time12HrLayout    = "03:04 PM"
	DateTimeISOLayout = "2006-01-02T15:04:05Z"
	DayNameLayout     = "Monday"
)

// FormatSecondsToTime renders a duration like "9h : 21m :30s". Zero
// renders empty; sign is dropped.
func FormatSecondsToTime(seconds int) string {
	if seconds == 0 {
		return ""
	}
	if seconds < 0 {
		seconds = -seconds
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%dh : %dm :%ds", hours, minutes, secs)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm :%ds", minutes, secs)
	}
	return fmt.Sprintf("%ds", secs)
}

// FormatSecondsToHoursMins renders a total like "210 Hrs 53 Mins".
func FormatSecondsToHoursMins(seconds int) string {
	if seconds < 0 {
		seconds = -seconds
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%d Hrs %d Mins", hours, minutes)
}

// FormatTime12Hr renders a punch like "10:23 AM"; nil renders empty.
func FormatTime12Hr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(Time12HrLayout)
}

// FormatDateTimeISO renders a UTC timestamp like "2025-12-01T07:17:00Z";
// nil renders empty.
func FormatDateTimeISO(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(DateTimeISOLayout)
}
