// Package alerts computes dashboard-ready views over already-loaded
// collections: expiry windows, maintenance alerts, document compliance and
// low-stock detection. Everything here is a pure function with no
// persistence side effects.
package alerts

import (
	"fmt"
	"time"
)

// Expirable is any record carrying an expiry date string.
type Expirable interface {
	Expiry() string
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate parses a stored date string and strips the time of day, so all
// expiry comparisons work on calendar dates.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

// DaysToExpire returns the number of calendar days until the record expires.
// Already-expired records yield a negative count.
func DaysToExpire(e Expirable, today time.Time) (int, error) {
	expire, err := ParseDate(e.Expiry())
	if err != nil {
		return 0, err
	}
	day, err := ParseDate(today.Format("2006-01-02"))
	if err != nil {
		return 0, err
	}
	return int(expire.Sub(day).Hours() / 24), nil
}

// ExpiringWithin returns every record whose expiry date falls on or before
// today plus daysAhead. Already-expired records are included: the result is
// a "needs attention" superset, not a future-only window.
func ExpiringWithin[T Expirable](records []T, today time.Time, daysAhead int) ([]T, error) {
	expiring := []T{}
	for _, r := range records {
		days, err := DaysToExpire(r, today)
		if err != nil {
			return nil, err
		}
		if days <= daysAhead {
			expiring = append(expiring, r)
		}
	}
	return expiring, nil
}

// ExpiringStrictlyWithin is ExpiringWithin without the already-expired
// records, for callers that only want upcoming expirations.
func ExpiringStrictlyWithin[T Expirable](records []T, today time.Time, daysAhead int) ([]T, error) {
	expiring := []T{}
	for _, r := range records {
		days, err := DaysToExpire(r, today)
		if err != nil {
			return nil, err
		}
		if days >= 0 && days <= daysAhead {
			expiring = append(expiring, r)
		}
	}
	return expiring, nil
}
