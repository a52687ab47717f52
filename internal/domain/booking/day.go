package booking

import (
	"errors"
	"time"
)

const dayLayout = "2006-01-02"

var ErrInvalidDay = errors.New("booking: day must be in YYYY-MM-DD format")

// Day is a single calendar day. Time of day is irrelevant everywhere in this
// service, so days are normalized to midnight UTC.
type Day struct {
	t time.Time
}

func NewDay(t time.Time) Day {
	return Day{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDay reads a YYYY-MM-DD wire value.
func ParseDay(raw string) (Day, error) {
	t, err := time.Parse(dayLayout, raw)
	if err != nil {
		return Day{}, ErrInvalidDay
	}
	return NewDay(t), nil
}

// Today returns the current calendar day in UTC.
func Today(now time.Time) Day {
	return NewDay(now.UTC())
}

func (d Day) IsZero() bool { return d.t.IsZero() }

func (d Day) String() string { return d.t.Format(dayLayout) }

func (d Day) Equal(other Day) bool { return d.t.Equal(other.t) }

func (d Day) Before(other Day) bool { return d.t.Before(other.t) }

func (d Day) After(other Day) bool { return d.t.After(other.t) }

// Next returns the following calendar day. Calendar arithmetic, not a 24h
// offset, so the sequence stays correct across DST transitions.
func (d Day) Next() Day {
	return NewDay(d.t.AddDate(0, 0, 1))
}

// DaysUntil counts whole calendar days from d to other.
func (d Day) DaysUntil(other Day) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

// BookedSet is the set of calendar days already reserved for a listing,
// supplied by the API and used only for client-side pre-validation.
type BookedSet map[string]struct{}

// NewBookedSet parses the API's booked-dates strings, skipping malformed entries
// the way the original front-end does.
func NewBookedSet(raw []string) BookedSet {
	set := make(BookedSet, len(raw))
	for _, s := range raw {
		d, err := ParseDay(s)
		if err != nil {
			continue
		}
		set[d.String()] = struct{}{}
	}
	return set
}

func (s BookedSet) Contains(d Day) bool {
	_, ok := s[d.String()]
	return ok
}
