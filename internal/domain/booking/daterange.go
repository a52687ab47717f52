package booking

import (
	"errors"
)

var (
	ErrRangeIncomplete  = errors.New("booking: date range is incomplete")
	ErrStartInPast      = errors.New("booking: start day is in the past")
	ErrRangeUnavailable = errors.New("booking: selected range includes unavailable dates")
)

// DateRange is an inclusive interval [Start, End] of calendar days. A range
// with only Start set is a partial pick awaiting the end day; it is a legal
// intermediate state, not an error.
type DateRange struct {
	Start Day
	End   Day
}

// NewDateRange builds a complete range from a user's pick. A reversed pair is
// swapped so that Start = min and End = max; a single-day booking
// (start == end) is allowed.
func NewDateRange(start, end Day) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrRangeIncomplete
	}
	if end.Before(start) {
		start, end = end, start
	}
	return DateRange{Start: start, End: end}, nil
}

func (r DateRange) IsZero() bool { return r.Start.IsZero() && r.End.IsZero() }

// Complete reports whether both endpoints have been picked.
func (r DateRange) Complete() bool { return !r.Start.IsZero() && !r.End.IsZero() }

// Nights is the number of nights the range covers; a single-day booking is one day, zero nights.
func (r DateRange) Nights() int {
	if !r.Complete() {
		return 0
	}
	return r.Start.DaysUntil(r.End)
}

// Validate checks the range against the minimum selectable day and the
// listing's booked-dates set. Pure; no network access.
func (r DateRange) Validate(minDay Day, booked BookedSet) error {
	if !r.Complete() {
		return ErrRangeIncomplete
	}
	if r.Start.Before(minDay) {
		return ErrStartInPast
	}
	for d := r.Start; !d.After(r.End); d = d.Next() {
		if booked.Contains(d) {
			return ErrRangeUnavailable
		}
	}
	return nil
}

// Days expands the range into the ordered day-string sequence sent to the
// booking API: one entry per calendar day from Start through End inclusive.
func (r DateRange) Days() []string {
	if !r.Complete() {
		return nil
	}
	days := make([]string, 0, r.Start.DaysUntil(r.End)+1)
	for d := r.Start; !d.After(r.End); d = d.Next() {
		days = append(days, d.String())
	}
	return days
}
