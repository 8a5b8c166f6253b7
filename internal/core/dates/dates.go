// Package dates formats record timestamps and parses the date strings
// users type into due-date fields.
package dates

import "time"

// TimestampLayout is the ISO 8601 layout used for createdAt/updatedAt fields.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Format renders t in UTC using TimestampLayout.
func Format(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Parse accepts full timestamps or plain YYYY-MM-DD dates.
// ok is false for empty or unrecognised input.
func Parse(s string) (t time.Time, ok bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
