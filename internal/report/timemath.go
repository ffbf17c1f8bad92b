// Package report derives calendar grids, elapsed-day classifications, task
// partitions, and per-staff/per-type activity summaries from record lists the
// repositories have already fetched and joined. Everything here is pure: no
// I/O, no clock reads, no shared state.
package report

import "strings"

// DurationMinutes returns the whole minutes between two wall-clock times in
// HH:MM or HH:MM:SS form, truncating sub-minute remainders. It reports false
// when either input is absent or unparseable, or when end is earlier than
// start (there is no multi-day activity concept, so a negative span is bad
// data rather than a midnight crossing).
func DurationMinutes(start, end *string) (int, bool) {
	if start == nil || end == nil {
		return 0, false
	}
	s, ok := parseClockSeconds(*start)
	if !ok {
		return 0, false
	}
	e, ok := parseClockSeconds(*end)
	if !ok {
		return 0, false
	}
	diff := e - s
	if diff < 0 {
		return 0, false
	}
	return diff / 60, true
}

// FormatTimeOfDay trims a stored time to its HH:MM prefix for display.
// Returns "" for absent or malformed input.
func FormatTimeOfDay(t *string) string {
	if t == nil {
		return ""
	}
	if _, ok := parseClockSeconds(*t); !ok {
		return ""
	}
	return (*t)[:5]
}

// parseClockSeconds converts "HH:MM" or "HH:MM:SS" to seconds since midnight.
func parseClockSeconds(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}
	h, ok := parseClockField(parts[0], 23)
	if !ok {
		return 0, false
	}
	m, ok := parseClockField(parts[1], 59)
	if !ok {
		return 0, false
	}
	sec := 0
	if len(parts) == 3 {
		sec, ok = parseClockField(parts[2], 59)
		if !ok {
			return 0, false
		}
	}
	return h*3600 + m*60 + sec, true
}

func parseClockField(s string, max int) (int, bool) {
	if len(s) != 2 {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	if n > max {
		return 0, false
	}
	return n, true
}
