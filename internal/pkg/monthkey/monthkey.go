package monthkey

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Key identifies a payroll month, serialized as "<MONTH>_<YEAR>" with the
// French month name in uppercase, e.g. "MARS_2024". This is the format the
// monthly-data map and the closing coordinator key on.
type Key struct {
	Month time.Month
	Year  int
}

var monthNames = [13]string{
	"",
	"JANVIER",
	"FEVRIER",
	"MARS",
	"AVRIL",
	"MAI",
	"JUIN",
	"JUILLET",
	"AOUT",
	"SEPTEMBRE",
	"OCTOBRE",
	"NOVEMBRE",
	"DECEMBRE",
}

// Parse parses a month key string. The month name must match one of the
// twelve French names exactly (case-insensitive).
func Parse(s string) (Key, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "_", 2)
	if len(parts) != 2 {
		return Key{}, fmt.Errorf("invalid month key %q", s)
	}

	name := strings.ToUpper(parts[0])
	month := time.Month(0)
	for m := time.January; m <= time.December; m++ {
		if monthNames[m] == name {
			month = m
			break
		}
	}
	if month == 0 {
		return Key{}, fmt.Errorf("invalid month key %q: unknown month name %q", s, parts[0])
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil || year < 1900 || year > 9999 {
		return Key{}, fmt.Errorf("invalid month key %q: bad year %q", s, parts[1])
	}

	return Key{Month: month, Year: year}, nil
}

// FromTime returns the key of the month containing t.
func FromTime(t time.Time) Key {
	return Key{Month: t.Month(), Year: t.Year()}
}

func (k Key) String() string {
	return fmt.Sprintf("%s_%d", monthNames[k.Month], k.Year)
}

// FirstOfMonth returns midnight UTC on the first calendar day of the month.
func (k Key) FirstOfMonth() time.Time {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Next returns the key of the following month.
func (k Key) Next() Key {
	if k.Month == time.December {
		return Key{Month: time.January, Year: k.Year + 1}
	}
	return Key{Month: k.Month + 1, Year: k.Year}
}

// IsZero reports whether k is the zero key.
func (k Key) IsZero() bool {
	return k.Month == 0 && k.Year == 0
}
