package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"cityweather/internal/weather"
)

// Client resolves the host's approximate coordinates from its public IP.
// It is the service-side stand-in for device geolocation and implements
// weather.Geolocator.
type Client struct {
	endpoint string
	rest     *resty.Client
}

// NewClient creates a Client for the given lookup endpoint. An empty endpoint
// disables geolocation entirely.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		rest:     resty.New().SetTimeout(timeout),
	}
}

// Locate performs a single-shot coordinate lookup.
func (c *Client) Locate(ctx context.Context) (float64, float64, error) {
	if c.endpoint == "" {
		return 0, 0, weather.ErrGeolocationUnsupported
	}

	resp, err := c.rest.R().SetContext(ctx).Get(c.endpoint)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", weather.ErrGeolocationDenied, err)
	}
	if resp.StatusCode() != 200 {
		return 0, 0, fmt.Errorf("%w: status %d", weather.ErrGeolocationDenied, resp.StatusCode())
	}

	var payload struct {
		Status  string  `json:"status"`
		Message string  `json:"message"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", weather.ErrGeolocationDenied, err)
	}

	if payload.Status != "success" {
		return 0, 0, fmt.Errorf("%w: %s", weather.ErrGeolocationDenied, payload.Message)
	}

	return payload.Lat, payload.Lon, nil
}
