package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"cityweather/internal/weather"
)

const (
	defaultGeoBaseURL  = "https://api.openweathermap.org/geo/1.0"
	defaultDataBaseURL = "https://api.openweathermap.org/data/3.0"

	maxHourlySamples = 48
	maxDailySamples  = 8
)

// Client talks to the OpenWeather geocoding and One Call endpoints. It
// implements weather.Geocoder and weather.SnapshotProvider. Units are fixed
// to metric.
type Client struct {
	apiKey      string
	rest        *resty.Client
	circuit     *gobreaker.CircuitBreaker
	geoBaseURL  string
	dataBaseURL string
}

// NewClient creates a Client with the given credential and request timeout.
func NewClient(apiKey string, timeout time.Duration) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		apiKey:      apiKey,
		rest:        resty.New().SetTimeout(timeout),
		circuit:     cb,
		geoBaseURL:  defaultGeoBaseURL,
		dataBaseURL: defaultDataBaseURL,
	}
}

type geoResult struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// GeocodeByName resolves a free-text place query. The first upstream match is
// authoritative; an empty result set is weather.ErrNotFound.
func (c *Client) GeocodeByName(ctx context.Context, query string) (weather.Location, error) {
	params := map[string]string{
		"q":     query,
		"limit": "1",
		"appid": c.apiKey,
	}
	return c.geocode(ctx, c.geoBaseURL+"/direct", params)
}

// GeocodeByCoords reverse-resolves a coordinate pair, with the same
// first-match rule as GeocodeByName.
func (c *Client) GeocodeByCoords(ctx context.Context, lat, lon float64) (weather.Location, error) {
	params := map[string]string{
		"lat":   formatCoord(lat),
		"lon":   formatCoord(lon),
		"limit": "1",
		"appid": c.apiKey,
	}
	return c.geocode(ctx, c.geoBaseURL+"/reverse", params)
}

func (c *Client) geocode(ctx context.Context, url string, params map[string]string) (weather.Location, error) {
	var results []geoResult
	if err := c.get(ctx, url, params, &results); err != nil {
		return weather.Location{}, err
	}

	if len(results) == 0 {
		return weather.Location{}, weather.ErrNotFound
	}

	first := results[0]
	return weather.Location{
		Name:    first.Name,
		Country: first.Country,
		Lat:     first.Lat,
		Lon:     first.Lon,
	}, nil
}

type conditionInfo struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// FetchSnapshot fetches current, hourly and daily weather for the
// coordinates, excluding minute-level and alert data.
func (c *Client) FetchSnapshot(ctx context.Context, lat, lon float64) (weather.Snapshot, error) {
	params := map[string]string{
		"lat":     formatCoord(lat),
		"lon":     formatCoord(lon),
		"exclude": "minutely,alerts",
		"units":   "metric",
		"appid":   c.apiKey,
	}

	var payload struct {
		Current struct {
			Dt        int64           `json:"dt"`
			Temp      float64         `json:"temp"`
			FeelsLike float64         `json:"feels_like"`
			Humidity  float64         `json:"humidity"`
			WindSpeed float64         `json:"wind_speed"`
			Weather   []conditionInfo `json:"weather"`
		} `json:"current"`
		Hourly []struct {
			Dt      int64           `json:"dt"`
			Temp    float64         `json:"temp"`
			Weather []conditionInfo `json:"weather"`
		} `json:"hourly"`
		Daily []struct {
			Dt   int64 `json:"dt"`
			Temp struct {
				Min float64 `json:"min"`
				Max float64 `json:"max"`
			} `json:"temp"`
			Weather []conditionInfo `json:"weather"`
		} `json:"daily"`
	}

	if err := c.get(ctx, c.dataBaseURL+"/onecall", params, &payload); err != nil {
		return weather.Snapshot{}, err
	}

	code, label := firstCondition(payload.Current.Weather)
	snap := weather.Snapshot{
		Current: weather.CurrentConditions{
			Temperature: payload.Current.Temp,
			FeelsLike:   payload.Current.FeelsLike,
			Humidity:    payload.Current.Humidity,
			WindSpeed:   payload.Current.WindSpeed,
			Code:        code,
			Label:       label,
		},
	}

	hourly := payload.Hourly
	if len(hourly) > maxHourlySamples {
		hourly = hourly[:maxHourlySamples]
	}
	for _, h := range hourly {
		hc, _ := firstCondition(h.Weather)
		snap.Hourly = append(snap.Hourly, weather.HourSample{
			Timestamp:   h.Dt,
			Temperature: h.Temp,
			Code:        hc,
		})
	}

	daily := payload.Daily
	if len(daily) > maxDailySamples {
		daily = daily[:maxDailySamples]
	}
	for _, d := range daily {
		dc, dl := firstCondition(d.Weather)
		snap.Daily = append(snap.Daily, weather.DaySample{
			Timestamp: d.Dt,
			TempMin:   d.Temp.Min,
			TempMax:   d.Temp.Max,
			Code:      dc,
			Label:     dl,
		})
	}

	return snap, nil
}

// get executes one GET through the circuit breaker and decodes the body into
// out. There are no retries; each failure is terminal for the request.
func (c *Client) get(ctx context.Context, url string, params map[string]string, out interface{}) error {
	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, execErr := c.rest.R().SetContext(ctx).SetQueryParams(params).Get(url)
		if execErr != nil {
			return nil, fmt.Errorf("%w: %v", weather.ErrNetwork, execErr)
		}

		if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
			return nil, fmt.Errorf("%w: status %d", weather.ErrNetwork, resp.StatusCode())
		}

		return resp.Body(), nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: %v", weather.ErrNetwork, err)
		}
		return err
	}

	body, ok := result.([]byte)
	if !ok {
		return fmt.Errorf("unexpected result type from circuit breaker")
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func firstCondition(items []conditionInfo) (code, label string) {
	if len(items) == 0 {
		return "", ""
	}
	return items[0].Icon, items[0].Description
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
