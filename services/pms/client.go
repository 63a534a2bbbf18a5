// Package pms implements the typed HTTP client for the eZee property
// management system: login with transparent token refresh, single-retry
// transport and fail-fast validation of every response shape.
package pms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	// tokenSafetyMargin is subtracted from the token expiry when
	// deciding whether the cached token is still usable. It absorbs
	// clock skew and in-flight latency.
	tokenSafetyMargin = 60 * time.Second

	// retryBackoff is the fixed delay before the single 5xx retry.
	retryBackoff = 500 * time.Millisecond

	// requestTimeout bounds every PMS round-trip, the login exchange
	// included.
	requestTimeout = 15 * time.Second
)

// Config is the immutable connection descriptor for one tenant.
type Config struct {
	BaseURL       string
	HotelCode     string
	Username      string
	Password      string
	WebhookSecret string
}

// Client talks to the eZee PMS. The token state is guarded by a mutex so
// concurrent operations on one instance trigger a single login.
type Client struct {
	cfg        Config
	httpClient *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewClient creates a client for the given tenant configuration.
func NewClient(cfg Config) *Client {
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Availability queries room availability between start and end
// (inclusive, "YYYY-MM-DD"). roomTypeID narrows the query to a single
// room type when non-empty.
func (c *Client) Availability(ctx context.Context, start, end, roomTypeID string) ([]AvailabilityItem, error) {
	if err := c.ensureToken(ctx); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/availability?hotel_code=%s&start=%s&end=%s",
		url.QueryEscape(c.cfg.HotelCode), url.QueryEscape(start), url.QueryEscape(end))
	if roomTypeID != "" {
		path += "&room_type_id=" + url.QueryEscape(roomTypeID)
	}
	raw, err := c.request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeAvailability(raw)
}

// CreateBooking posts the booking payload to the PMS. The payload shape
// is not enforced here beyond what the PMS itself rejects.
func (c *Client) CreateBooking(ctx context.Context, payload interface{}) (*BookingResult, error) {
	if err := c.ensureToken(ctx); err != nil {
		return nil, err
	}
	raw, err := c.request(ctx, http.MethodPost, "/booking", payload)
	if err != nil {
		return nil, err
	}
	return decodeBooking(raw)
}

// GetBooking fetches a booking by its confirmation number.
func (c *Client) GetBooking(ctx context.Context, confirmationNumber string) (*BookingResult, error) {
	if err := c.ensureToken(ctx); err != nil {
		return nil, err
	}
	raw, err := c.request(ctx, http.MethodGet, "/booking/"+url.PathEscape(confirmationNumber), nil)
	if err != nil {
		return nil, err
	}
	return decodeBookingEnvelope(raw)
}

// CancelBooking requests cancellation of a booking. The PMS is expected
// to return the booking in its new status; the change is not verified
// independently.
func (c *Client) CancelBooking(ctx context.Context, confirmationNumber string) (*BookingResult, error) {
	if err := c.ensureToken(ctx); err != nil {
		return nil, err
	}
	body := map[string]string{"confirmationNumber": confirmationNumber}
	raw, err := c.request(ctx, http.MethodPost, "/booking/cancel", body)
	if err != nil {
		return nil, err
	}
	return decodeBooking(raw)
}
