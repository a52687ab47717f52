package listing

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound      = errors.New("listing: not found")
	ErrUnknownTier   = errors.New("listing: unknown price tier")
	ErrTierNotOffers = errors.New("listing: listing does not offer this price tier")
)

type ListingID string

// PriceTier is one of the billing granularities a listing may offer.
type PriceTier string

const (
	TierDay   PriceTier = "day"
	TierWeek  PriceTier = "week"
	TierMonth PriceTier = "month"
)

// ParseTier maps a wire value onto a known tier.
func ParseTier(raw string) (PriceTier, error) {
	switch PriceTier(strings.ToLower(strings.TrimSpace(raw))) {
	case TierDay:
		return TierDay, nil
	case TierWeek:
		return TierWeek, nil
	case TierMonth:
		return TierMonth, nil
	default:
		return "", ErrUnknownTier
	}
}

// Listing is the read-only catalog entry served by the external booking API.
// JSON tags follow the API's wire format.
type Listing struct {
	ID            ListingID `json:"_id"`
	Title         string    `json:"title"`
	City          string    `json:"city"`
	PropertyType  string    `json:"type"`
	Image         string    `json:"image,omitempty"`
	Images        []string  `json:"images,omitempty"`
	PricePerDay   int64     `json:"pricePerDay,omitempty"`
	PricePerWeek  int64     `json:"pricePerWeek,omitempty"`
	PricePerMonth int64     `json:"pricePerMonth,omitempty"`
	Amenities     []string  `json:"amenities"`
	BookedDates   []string  `json:"bookedDates,omitempty"`
}

// Tiers lists the price tiers this listing actually offers, in day/week/month order.
func (l Listing) Tiers() []PriceTier {
	var tiers []PriceTier
	if l.PricePerDay > 0 {
		tiers = append(tiers, TierDay)
	}
	if l.PricePerWeek > 0 {
		tiers = append(tiers, TierWeek)
	}
	if l.PricePerMonth > 0 {
		tiers = append(tiers, TierMonth)
	}
	return tiers
}

// Offers reports whether the listing exposes a price for the given tier.
func (l Listing) Offers(tier PriceTier) bool {
	switch tier {
	case TierDay:
		return l.PricePerDay > 0
	case TierWeek:
		return l.PricePerWeek > 0
	case TierMonth:
		return l.PricePerMonth > 0
	default:
		return false
	}
}

// Gallery returns the ordered image references for the listing. Listings that
// predate the multi-image API expose a single Image field.
func (l Listing) Gallery() []string {
	if len(l.Images) > 0 {
		return l.Images
	}
	if l.Image != "" {
		return []string{l.Image}
	}
	return nil
}

// Catalog is the read side of the external API from this service's point of view.
type Catalog interface {
	Apartments(ctx context.Context) ([]Listing, error)
	Apartment(ctx context.Context, id ListingID) (*Listing, error)
}
