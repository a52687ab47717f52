package ginserver

import (
	"context"
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"github.com/asghar-0017/aparntment-frontend/internal/domain/booking"
	"github.com/asghar-0017/aparntment-frontend/internal/domain/listing"
	"github.com/asghar-0017/aparntment-frontend/internal/infra/api"
	"github.com/asghar-0017/aparntment-frontend/internal/infra/cache"
)

// AvailabilitySearcher is the slice of the upstream client used for the
// date-window search.
type AvailabilitySearcher interface {
	Available(ctx context.Context, start, end booking.Day) ([]listing.Listing, error)
}

// ListingHandler serves the catalog and detail views from the cached copy of
// the upstream API.
type ListingHandler struct {
	Catalog      listing.Catalog
	Cache        *cache.Listings
	Availability AvailabilitySearcher
}

// List responds with the full apartment catalog.
func (h ListingHandler) List(c *gin.Context) {
	apartments, hit, err := h.Cache.Catalog(c.Request.Context(), h.Catalog.Apartments)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.Header("X-Cache", cacheStatus(hit))
	c.JSON(http.StatusOK, apartments)
}

// Get responds with a single apartment.
func (h ListingHandler) Get(c *gin.Context) {
	id := listing.ListingID(c.Param("id"))
	apt, hit, err := h.Cache.Apartment(c.Request.Context(), id, func(ctx context.Context) (*listing.Listing, error) {
		return h.Catalog.Apartment(ctx, id)
	})
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "apartment not found"})
			return
		}
		writeUpstreamError(c, err)
		return
	}
	c.Header("X-Cache", cacheStatus(hit))
	c.JSON(http.StatusOK, apt)
}

// Search responds with apartments available inside an inclusive date window.
func (h ListingHandler) Search(c *gin.Context) {
	start, err := booking.ParseDay(c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be in YYYY-MM-DD format"})
		return
	}
	end, err := booking.ParseDay(c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be in YYYY-MM-DD format"})
		return
	}
	if end.Before(start) {
		start, end = end, start
	}
	apartments, err := h.Availability.Available(c.Request.Context(), start, end)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, apartments)
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

// writeUpstreamError maps upstream API failures onto this service's responses:
// a structured API error keeps its status and message, anything else becomes
// a bad-gateway with a generic message.
func writeUpstreamError(c *gin.Context, err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = "upstream request failed"
		}
		c.JSON(apiErr.Status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "upstream request failed"})
}
