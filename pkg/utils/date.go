package utils

import "time"

// DateTimeLayout is the timestamp format the Goodtill API uses for the
// from/to query parameters and for timestamps in its payloads.
const DateTimeLayout = "2006-01-02 15:04:05"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DayWindow returns the inclusive 00:00:00-23:59:59 window for the given day,
// formatted the way the sales endpoint expects.
func DayWindow(day time.Time) (string, string) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())

	return start.Format(DateTimeLayout), end.Format(DateTimeLayout)
}

// Yesterday returns the calendar day before now, truncated to a date.
func Yesterday() time.Time {
	y := time.Now().AddDate(0, 0, -1)
	return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, y.Location())
}
