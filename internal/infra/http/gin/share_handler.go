package ginserver

import (
	"context"
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"github.com/asghar-0017/aparntment-frontend/internal/app/share"
	"github.com/asghar-0017/aparntment-frontend/internal/domain/listing"
	"github.com/asghar-0017/aparntment-frontend/internal/infra/api"
	"github.com/asghar-0017/aparntment-frontend/internal/infra/cache"
)

// ShareHandler produces shareable links for a listing.
type ShareHandler struct {
	Catalog listing.Catalog
	Cache   *cache.Listings
	Share   *share.Service
}

func (h ShareHandler) Get(c *gin.Context) {
	id := listing.ListingID(c.Param("id"))
	apt, _, err := h.Cache.Apartment(c.Request.Context(), id, func(ctx context.Context) (*listing.Listing, error) {
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
	c.JSON(http.StatusOK, gin.H{
		"url":      h.Share.ListingURL(c.Request.Context(), apt.ID),
		"whatsapp": h.Share.WhatsAppLink(c.Request.Context(), *apt),
	})
}
