package normalize

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMinutes converts an "HH:MM" or "HH:MM:SS" time-of-day string into
// minutes from midnight.
func ParseMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid time format: %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time format: %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time format: %q", s)
	}
	return h*60 + m, nil
}

// ParseDeadline extracts the time-of-day portion of a deadline string,
// which may arrive as a bare "HH:MM:SS" or as an ISO datetime
// ("YYYY-MM-DDTHH:MM:SS"). An empty or unparseable deadline is reported
// via ok == false rather than an error: the original treats a malformed
// deadline as "no deadline" instead of failing the whole request.
func ParseDeadline(s string) (minutes int, ok bool) {
	if s == "" {
		return 0, false
	}
	timePart := s
	if idx := strings.Index(s, "T"); idx >= 0 {
		timePart = s[idx+1:]
	}
	m, err := ParseMinutes(timePart)
	if err != nil {
		return 0, false
	}
	return m, true
}
