package ginserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"github.com/asghar-0017/aparntment-frontend/internal/app/bookingflow"
	"github.com/asghar-0017/aparntment-frontend/internal/domain/booking"
	"github.com/asghar-0017/aparntment-frontend/internal/domain/listing"
	"github.com/asghar-0017/aparntment-frontend/internal/infra/api"
	"github.com/asghar-0017/aparntment-frontend/internal/infra/cache"
)

// BookingHandler runs one booking draft per request: local validation first,
// then a single forwarded submission to the upstream API.
type BookingHandler struct {
	Catalog listing.Catalog
	Cache   *cache.Listings
	API     bookingflow.BookingAPI
	Logger  *slog.Logger
}

type bookRequest struct {
	StartDate   string                 `json:"startDate"`
	EndDate     string                 `json:"endDate"`
	PriceOption string                 `json:"priceOption"`
	UserDetails booking.ContactDetails `json:"userDetails"`
}

type bookResponse struct {
	Status        string   `json:"status"`
	ApartmentID   string   `json:"apartmentId"`
	SelectedDates []string `json:"selectedDates"`
}

// Book validates the visitor's draft against the listing's booked dates and
// forwards it. Validation failures never reach the upstream API.
func (h BookingHandler) Book(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

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

	start, err := booking.ParseDay(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []booking.FieldError{{Field: "startDate", Message: err.Error()}}})
		return
	}
	end, err := booking.ParseDay(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []booking.FieldError{{Field: "endDate", Message: err.Error()}}})
		return
	}

	submitter := bookingflow.NewSubmitter(*apt, h.API, bookingflow.Options{Logger: h.Logger})
	if err := submitter.PickRange(start, end); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, booking.ErrRangeUnavailable) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": submitter.Draft().RangeError})
		return
	}
	submitter.SetContact(req.UserDetails)
	if req.PriceOption != "" {
		tier, err := listing.ParseTier(req.PriceOption)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []booking.FieldError{{Field: "priceOption", Message: "unknown price option"}}})
			return
		}
		submitter.SetTier(tier)
	}

	selected := submitter.Draft().Range.Days()
	if err := submitter.Submit(c.Request.Context()); err != nil {
		var vErr *bookingflow.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": vErr.Fields})
			return
		}
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			msg := apiErr.Message
			if msg == "" {
				msg = bookingflow.GenericFailureMessage
			}
			c.JSON(apiErr.Status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": bookingflow.GenericFailureMessage})
		return
	}

	c.JSON(http.StatusCreated, bookResponse{
		Status:        "booked",
		ApartmentID:   string(apt.ID),
		SelectedDates: selected,
	})
}
