package proposicao

import (
	"fmt"
	"strings"
	"time"
)

// Layouts the API and the bulk annual files have been seen to emit,
// tried in order. Day-first layouts cover the pt-BR bulk files.
var instantLayouts = []string{
	"2006-01-02T15:04:05.000Z07:00",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
}

// ParseInstant converts an arbitrary date/time representation into a local
// instant. It passes through time.Time values, parses strings against the
// known layouts, and returns nil for anything unreadable. Parse failures are
// ordinary here, not errors: upstream date fields are inconsistent by nature.
func ParseInstant(value any) *time.Time {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		if v.IsZero() {
			return nil
		}
		t := v
		return &t
	case *time.Time:
		if v == nil || v.IsZero() {
			return nil
		}
		t := *v
		return &t
	}

	s := strings.TrimSpace(fmt.Sprint(value))
	if s == "" {
		return nil
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t
		}
	}
	return nil
}

// DaysSince reports how many whole days have passed from value to the
// current local day. See DaysSinceAt.
func DaysSince(value any) *int {
	return DaysSinceAt(value, time.Now())
}

// DaysSinceAt computes (today - value's calendar date) in days against an
// explicit reference day, so callers can pin "today" in tests. The result is
// negative for future-dated values; unreadable values yield nil.
func DaysSinceAt(value any, today time.Time) *int {
	t := ParseInstant(value)
	if t == nil {
		return nil
	}
	y, m, d := t.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	y, m, d = today.Date()
	to := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	days := int(to.Sub(from).Hours() / 24)
	return &days
}
