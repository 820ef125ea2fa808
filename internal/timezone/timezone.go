package timezone

import "time"

// Loyalty cutoffs and time-range filters are anchored to UTC so that a
// caller supplying only a calendar date gets a deterministic instant.

const dateLayout = "2006-01-02"

// DayStartUTC truncates t to the start of its calendar day in UTC.
func DayStartUTC(t time.Time) time.Time {
	u := t.UTC()
	y, m, d := u.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date into the start of that day in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DayStartUTC(t), nil
}
