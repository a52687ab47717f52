package bookingflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/asghar-0017/aparntment-frontend/internal/domain/booking"
	"github.com/asghar-0017/aparntment-frontend/internal/domain/listing"
	"github.com/asghar-0017/aparntment-frontend/internal/infra/api"
)

// GenericFailureMessage is shown when the server gave no error message.
const GenericFailureMessage = "Something went wrong. Please try again."

var (
	ErrSubmissionInFlight = errors.New("bookingflow: submission already in flight")
	ErrClosed             = errors.New("bookingflow: booking interaction closed")
)

// ValidationError aggregates the field errors that blocked a submission.
type ValidationError struct {
	Fields []booking.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("bookingflow: draft invalid (%d field errors)", len(e.Fields))
}

// BookingAPI is the slice of the upstream client the submitter needs.
type BookingAPI interface {
	Book(ctx context.Context, req api.BookingRequest) error
}

// Submitter owns one booking draft's submission lifecycle. At most one
// submission is in flight per instance; a second Submit while one is running
// is a no-op. A response arriving after Close is discarded without touching
// the draft.
type Submitter struct {
	apt    listing.Listing
	booked booking.BookedSet
	api    BookingAPI
	logger *slog.Logger
	now    func() time.Time

	onSuccess func()

	inFlight atomic.Bool

	mu        sync.Mutex
	closed    bool
	draft     *booking.Draft
	lastError string
}

// Options configures optional submitter collaborators.
type Options struct {
	Logger    *slog.Logger
	OnSuccess func()
	Now       func() time.Time
}

func NewSubmitter(apt listing.Listing, client BookingAPI, opts Options) *Submitter {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Submitter{
		apt:       apt,
		booked:    booking.NewBookedSet(apt.BookedDates),
		api:       client,
		logger:    opts.Logger,
		now:       now,
		onSuccess: opts.OnSuccess,
		draft:     booking.NewDraft(apt.ID),
	}
}

// PickStart records the first half of a date pick.
func (s *Submitter) PickStart(start booking.Day) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.draft.PickStart(start)
}

// PickRange validates a complete pick against the listing's booked dates.
func (s *Submitter) PickRange(start, end booking.Day) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return s.draft.PickRange(start, end, booking.Today(s.now()), s.booked)
}

// SetContact updates the draft's contact details.
func (s *Submitter) SetContact(c booking.ContactDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.draft.Contact = c
}

// SetTier updates the selected price tier.
func (s *Submitter) SetTier(tier listing.PriceTier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.draft.Tier = tier
}

// Draft returns a snapshot of the current draft state.
func (s *Submitter) Draft() booking.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.draft
}

// InFlight reports whether a submission is currently running.
func (s *Submitter) InFlight() bool { return s.inFlight.Load() }

// LastError returns the message from the most recent failed submission.
func (s *Submitter) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Close ends the booking interaction. Any submission response that arrives
// afterwards is discarded.
func (s *Submitter) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Submit validates the draft and, when complete, sends one booking request.
// Local validation failures never reach the network. On success the draft is
// reset and the success callback fires once; on failure the draft is
// preserved so the visitor can retry without re-entering anything.
func (s *Submitter) Submit(ctx context.Context) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if fields := s.draft.Validate(s.apt); len(fields) > 0 {
		s.mu.Unlock()
		return &ValidationError{Fields: fields}
	}
	req := api.BookingRequest{
		ApartmentID:   string(s.apt.ID),
		SelectedDates: s.draft.Range.Days(),
		PriceOption:   string(s.draft.Tier),
		UserDetails:   s.draft.Contact,
	}
	s.mu.Unlock()

	err := s.api.Book(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		// The visitor navigated away while the request was running.
		return ErrClosed
	}
	if err != nil {
		s.lastError = failureMessage(err)
		if s.logger != nil {
			s.logger.Warn("booking submission failed", "apartment_id", s.apt.ID, "error", err)
		}
		return err
	}

	s.draft.Reset()
	s.lastError = ""
	if s.logger != nil {
		s.logger.Info("booking submitted", "apartment_id", s.apt.ID, "days", len(req.SelectedDates))
	}
	if s.onSuccess != nil {
		s.onSuccess()
	}
	return nil
}

func failureMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return GenericFailureMessage
}
