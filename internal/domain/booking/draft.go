package booking

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/asghar-0017/aparntment-frontend/internal/domain/listing"
)

// RangeUnavailableMessage is the inline error shown when a pick overlaps
// already-booked days.
const RangeUnavailableMessage = "selected range includes unavailable dates"

// ContactDetails are the visitor's details attached to a booking request.
// Free text apart from the email shape; required at submission time.
type ContactDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// FieldError is a user-correctable validation failure on one draft field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

// Draft is the in-progress, client-side reservation attempt for one listing.
// It is created when the booking interaction opens, mutated by user input and
// discarded on cancel or successful submission.
type Draft struct {
	ListingID listing.ListingID
	Contact   ContactDetails
	Range     DateRange
	Tier      listing.PriceTier

	// RangeError is the inline message from the last rejected date pick,
	// empty once a valid range is accepted.
	RangeError string
}

func NewDraft(id listing.ListingID) *Draft {
	return &Draft{ListingID: id}
}

// PickStart records the first half of a range pick and clears any stale end.
func (d *Draft) PickStart(start Day) {
	d.Range = DateRange{Start: start}
}

// PickRange applies a complete (start, end) pick against the listing's
// booked-dates set. A reversed pair is swapped. Rejection resets the draft
// range to empty and records an inline error; acceptance stores the range and
// clears any prior error.
func (d *Draft) PickRange(start, end Day, minDay Day, booked BookedSet) error {
	r, err := NewDateRange(start, end)
	if err != nil {
		return err
	}
	if err := r.Validate(minDay, booked); err != nil {
		d.Range = DateRange{}
		if errors.Is(err, ErrStartInPast) {
			d.RangeError = "start date is in the past"
		} else {
			d.RangeError = RangeUnavailableMessage
		}
		return err
	}
	d.Range = r
	d.RangeError = ""
	return nil
}

// Reset clears all user input, returning the draft to its opened state.
func (d *Draft) Reset() {
	d.Contact = ContactDetails{}
	d.Range = DateRange{}
	d.Tier = ""
	d.RangeError = ""
}

// Validate gates submission: every field error it returns is user-correctable
// and nothing may reach the network until the slice is empty.
func (d *Draft) Validate(l listing.Listing) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(d.Contact.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	email := strings.TrimSpace(d.Contact.Email)
	if email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, FieldError{Field: "email", Message: "email is not valid"})
	}
	if strings.TrimSpace(d.Contact.Phone) == "" {
		errs = append(errs, FieldError{Field: "phone", Message: "phone is required"})
	}
	if !d.Range.Complete() {
		errs = append(errs, FieldError{Field: "dates", Message: "select a start and end date"})
	}
	if tiers := l.Tiers(); len(tiers) > 0 {
		if d.Tier == "" {
			errs = append(errs, FieldError{Field: "priceOption", Message: "choose a price option"})
		} else if !l.Offers(d.Tier) {
			errs = append(errs, FieldError{Field: "priceOption", Message: "price option not offered for this listing"})
		}
	}
	return errs
}
