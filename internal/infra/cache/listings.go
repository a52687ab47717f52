package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/asghar-0017/aparntment-frontend/internal/domain/listing"
)

const (
	catalogKey      = "listings:catalog"
	apartmentPrefix = "listings:apartment:"
)

// Listings caches the read-only, possibly stale, copies of catalog data that
// each page view works from. Store failures are logged and the fetch goes
// upstream.
type Listings struct {
	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

func NewListings(store Store, ttl time.Duration, logger *slog.Logger) *Listings {
	return &Listings{store: store, ttl: ttl, logger: logger}
}

// Catalog returns the cached catalog or fetches it. The bool reports a cache hit.
func (c *Listings) Catalog(ctx context.Context, fetch func(context.Context) ([]listing.Listing, error)) ([]listing.Listing, bool, error) {
	if raw, ok := c.get(ctx, catalogKey); ok {
		var apartments []listing.Listing
		if err := json.Unmarshal([]byte(raw), &apartments); err == nil {
			return apartments, true, nil
		}
		c.drop(ctx, catalogKey)
	}
	apartments, err := fetch(ctx)
	if err != nil {
		return nil, false, err
	}
	c.put(ctx, catalogKey, apartments)
	return apartments, false, nil
}

// Apartment returns one cached listing or fetches it.
func (c *Listings) Apartment(ctx context.Context, id listing.ListingID, fetch func(context.Context) (*listing.Listing, error)) (*listing.Listing, bool, error) {
	key := apartmentPrefix + string(id)
	if raw, ok := c.get(ctx, key); ok {
		var apt listing.Listing
		if err := json.Unmarshal([]byte(raw), &apt); err == nil {
			return &apt, true, nil
		}
		c.drop(ctx, key)
	}
	apt, err := fetch(ctx)
	if err != nil {
		return nil, false, err
	}
	c.put(ctx, key, apt)
	return apt, false, nil
}

func (c *Listings) get(ctx context.Context, key string) (string, bool) {
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("cache read failed", "key", key, "error", err)
		}
		return "", false
	}
	return raw, ok
}

func (c *Listings) put(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.store.Set(ctx, key, string(raw), c.ttl); err != nil && c.logger != nil {
		c.logger.Warn("cache write failed", "key", key, "error", err)
	}
}

func (c *Listings) drop(ctx context.Context, key string) {
	if err := c.store.Delete(ctx, key); err != nil && c.logger != nil {
		c.logger.Warn("cache delete failed", "key", key, "error", err)
	}
}
