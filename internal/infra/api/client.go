package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/asghar-0017/aparntment-frontend/internal/domain/booking"
	"github.com/asghar-0017/aparntment-frontend/internal/domain/listing"
)

// DefaultTimeout bounds every upstream call; expiry surfaces as a transport failure.
const DefaultTimeout = 10 * time.Second

const (
	endpointApartments = "/get-apparntment"
	endpointApartment  = "/apartments"
	endpointAvailable  = "/available"
	endpointBook       = "/book"
	endpointReport     = "/report"
	endpointShortenURL = "/shorten-url"
)

var ErrNotFound = errors.New("api: not found")

// Error is a non-2xx response from the booking API, carrying the server's
// error message when it sent one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// Client wraps the external booking/listing API with thin JSON fetch helpers.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Apartments fetches the full listing catalog.
func (c *Client) Apartments(ctx context.Context) ([]listing.Listing, error) {
	var apartments []listing.Listing
	if err := c.getJSON(ctx, endpointApartments, nil, &apartments); err != nil {
		return nil, err
	}
	return apartments, nil
}

// Apartment fetches a single listing by id.
func (c *Client) Apartment(ctx context.Context, id listing.ListingID) (*listing.Listing, error) {
	var apt listing.Listing
	err := c.getJSON(ctx, endpointApartment+"/"+url.PathEscape(string(id)), nil, &apt)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &apt, nil
}

// Available fetches listings with free days inside the inclusive window.
func (c *Client) Available(ctx context.Context, start, end booking.Day) ([]listing.Listing, error) {
	query := url.Values{}
	query.Set("startDate", start.String())
	query.Set("endDate", end.String())
	var apartments []listing.Listing
	if err := c.getJSON(ctx, endpointAvailable, query, &apartments); err != nil {
		return nil, err
	}
	return apartments, nil
}

// BookingRequest is the wire entity sent once per submission.
type BookingRequest struct {
	ApartmentID   string                 `json:"apartmentId"`
	SelectedDates []string               `json:"selectedDates"`
	PriceOption   string                 `json:"priceOption,omitempty"`
	UserDetails   booking.ContactDetails `json:"userDetails"`
}

// Book submits one booking request. The result is only a success or failure
// signal; failures carry the server's message via *Error.
func (c *Client) Book(ctx context.Context, req BookingRequest) error {
	return c.postJSON(ctx, endpointBook, req, nil)
}

// ReportRequest carries a visitor-submitted issue report.
type ReportRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Report forwards an issue report to the API.
func (c *Client) Report(ctx context.Context, req ReportRequest) error {
	return c.postJSON(ctx, endpointReport, req, nil)
}

type shortenRequest struct {
	URL string `json:"url"`
}

type shortenResponse struct {
	ShortURL string `json:"shortUrl"`
}

// ShortenURL asks the API for a shareable short link. Best-effort: any
// failure falls back to the original URL and never blocks the caller.
func (c *Client) ShortenURL(ctx context.Context, longURL string) string {
	var resp shortenResponse
	if err := c.postJSON(ctx, endpointShortenURL, shortenRequest{URL: longURL}, &resp); err != nil {
		if c.logger != nil {
			c.logger.Debug("url shorten failed, using long url", "error", err)
		}
		return longURL
	}
	if resp.ShortURL == "" {
		return longURL
	}
	return resp.ShortURL
}

func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	target := c.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("api: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api: request failed: %w", err)
	}
	defer resp.Body.Close()

	// An HTML body means we hit an error page rather than the API.
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "text/html") {
		return &Error{Status: resp.StatusCode, Message: "api endpoint not found or server error"}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &Error{Status: resp.StatusCode, Message: decodeErrorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}

func decodeErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(raw))
}

var _ listing.Catalog = (*Client)(nil)
