package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day or zone attached.
// It is comparable and safe to use inside map keys.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate accepts "YYYY-MM-DD" or a full RFC3339 timestamp (the date part in UTC is kept).
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return DateOf(t.UTC()), nil
}

// MustParseDate is ParseDate for literals in seed data and tests.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current calendar day in loc.
func Today(loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(time.Now().In(loc))
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateLayout)
}

// AddDays normalizes through time.Time so month and year boundaries roll over.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Compare returns -1, 0 or +1.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// DaysUntil is the signed number of days from d to o.
func (d Date) DaysUntil(o Date) int {
	return int(o.Time().Sub(d.Time()).Hours() / 24)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// DateRange is a half-open stay [Start, End): End is the checkout day and is not occupied.
type DateRange struct {
	Start Date `json:"startDate"`
	End   Date `json:"endDate"`
}

// Valid reports whether End is strictly after Start.
func (r DateRange) Valid() bool {
	return r.End.After(r.Start)
}

// Overlaps is the half-open test s1 < e2 && s2 < e1, so a checkout day is free for a check-in.
func (r DateRange) Overlaps(o DateRange) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

// OverlapsDays reports whether the stay occupies any night in the inclusive day span [first, last].
func (r DateRange) OverlapsDays(first, last Date) bool {
	return !r.Start.After(last) && first.Before(r.End)
}

// Contains reports whether day is one of the occupied nights.
func (r DateRange) Contains(day Date) bool {
	return !day.Before(r.Start) && day.Before(r.End)
}

// Nights is the number of occupied days.
func (r DateRange) Nights() int {
	return r.Start.DaysUntil(r.End)
}

// LastNight is the final occupied day (End - 1).
func (r DateRange) LastNight() Date {
	return r.End.AddDays(-1)
}

// EachDay calls fn for every day in the inclusive span [first, last].
func EachDay(first, last Date, fn func(Date)) {
	for d := first; !d.After(last); d = d.AddDays(1) {
		fn(d)
	}
}
