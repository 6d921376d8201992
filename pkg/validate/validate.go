package validate

import (
	"fmt"
	"regexp"
	"time"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email checks the address against the same loose pattern the web forms use
func Email(address string) error {
	if !emailRe.MatchString(address) {
		return fmt.Errorf("invalid email address: %s", address)
	}
	return nil
}

// FutureDate parses an ISO date and rejects dates in the past
func FutureDate(value string) (string, error) {
	d, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}

	today := time.Now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	if d.Before(today) {
		return "", fmt.Errorf("date cannot be in the past: %s", value)
	}

	return d.Format("2006-01-02"), nil
}

// DateRange validates a start/end pair of future dates with start <= end
func DateRange(start, end string) (string, string, error) {
	s, err := FutureDate(start)
	if err != nil {
		return "", "", err
	}
	e, err := FutureDate(end)
	if err != nil {
		return "", "", err
	}
	if e < s {
		return "", "", fmt.Errorf("end date %s is before start date %s", end, start)
	}
	return s, e, nil
}
