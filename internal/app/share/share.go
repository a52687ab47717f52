// Package share builds shareable links for listings: the public detail URL,
// optionally shortened, wrapped in a WhatsApp deep link with a prefilled
// message.
package share

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/asghar-0017/aparntment-frontend/internal/domain/listing"
)

// URLShortener shortens a link best-effort; implementations return the
// original URL on any failure.
type URLShortener interface {
	ShortenURL(ctx context.Context, longURL string) string
}

type Service struct {
	shortener      URLShortener
	publicBaseURL  string
	whatsAppNumber string
}

func NewService(shortener URLShortener, publicBaseURL, whatsAppNumber string) *Service {
	return &Service{
		shortener:      shortener,
		publicBaseURL:  strings.TrimRight(publicBaseURL, "/"),
		whatsAppNumber: strings.TrimPrefix(whatsAppNumber, "+"),
	}
}

// ListingURL is the public detail-page link for a listing, shortened when the
// shortener cooperates.
func (s *Service) ListingURL(ctx context.Context, id listing.ListingID) string {
	long := fmt.Sprintf("%s/apartments/%s", s.publicBaseURL, url.PathEscape(string(id)))
	if s.shortener == nil {
		return long
	}
	return s.shortener.ShortenURL(ctx, long)
}

// WhatsAppLink builds a wa.me deep link with a prefilled enquiry message for
// the listing.
func (s *Service) WhatsAppLink(ctx context.Context, l listing.Listing) string {
	link := s.ListingURL(ctx, l.ID)
	msg := fmt.Sprintf("Hi! I'm interested in %s", l.Title)
	if l.City != "" {
		msg += " in " + l.City
	}
	if l.PricePerDay > 0 {
		msg += fmt.Sprintf(" (PKR %d/day)", l.PricePerDay)
	}
	msg += ": " + link
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsAppNumber, url.QueryEscape(msg))
}
