package openweather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cityweather/internal/weather"
)

func newTestClient(upstream string) *Client {
	c := NewClient("test-key", 2*time.Second)
	c.geoBaseURL = upstream
	c.dataBaseURL = upstream
	return c
}

// TestGeocodeByNameFirstResultWins serves two candidates and checks that only
// the first one is used.
func TestGeocodeByNameFirstResultWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/direct" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "London" || q.Get("limit") != "1" || q.Get("appid") != "test-key" {
			t.Errorf("unexpected query parameters: %v", q)
		}
		fmt.Fprint(w, `[
			{"name":"London","country":"GB","lat":51.5,"lon":-0.12},
			{"name":"London","country":"CA","lat":42.98,"lon":-81.24}
		]`)
	}))
	defer srv.Close()

	loc, err := newTestClient(srv.URL).GeocodeByName(context.Background(), "London")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := weather.Location{Name: "London", Country: "GB", Lat: 51.5, Lon: -0.12}
	if loc != want {
		t.Fatalf("got %+v, want %+v", loc, want)
	}
}

func TestGeocodeEmptyResultIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	if _, err := client.GeocodeByName(context.Background(), "Atlantis"); !errors.Is(err, weather.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := client.GeocodeByCoords(context.Background(), 0, 0); !errors.Is(err, weather.ErrNotFound) {
		t.Fatalf("expected ErrNotFound from reverse lookup, got %v", err)
	}
}

func TestNon2xxIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	if _, err := client.GeocodeByName(context.Background(), "London"); !errors.Is(err, weather.ErrNetwork) {
		t.Fatalf("expected ErrNetwork from geocoding, got %v", err)
	}
	if _, err := client.FetchSnapshot(context.Background(), 51.5, -0.12); !errors.Is(err, weather.ErrNetwork) {
		t.Fatalf("expected ErrNetwork from onecall, got %v", err)
	}
}

func TestFetchSnapshotDecodesOneCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/onecall" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("exclude") != "minutely,alerts" || q.Get("units") != "metric" {
			t.Errorf("unexpected query parameters: %v", q)
		}
		fmt.Fprint(w, `{
			"current": {
				"dt": 1700000000,
				"temp": 15.4,
				"feels_like": 14.1,
				"humidity": 72,
				"wind_speed": 3.6,
				"weather": [{"main":"Clouds","description":"scattered clouds","icon":"03d"}]
			},
			"hourly": [
				{"dt": 1700000000, "temp": 15.4, "weather": [{"icon":"03d"}]},
				{"dt": 1700003600, "temp": 14.8, "weather": [{"icon":"10n"}]}
			],
			"daily": [
				{"dt": 1700000000, "temp": {"min": 9.2, "max": 16.1}, "weather": [{"description":"light rain","icon":"10d"}]},
				{"dt": 1700086400, "temp": {"min": 8.0, "max": 13.3}, "weather": [{"description":"snow","icon":"13d"}]}
			]
		}`)
	}))
	defer srv.Close()

	snap, err := newTestClient(srv.URL).FetchSnapshot(context.Background(), 51.5, -0.12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cur := snap.Current
	if cur.Temperature != 15.4 || cur.FeelsLike != 14.1 || cur.Humidity != 72 || cur.WindSpeed != 3.6 {
		t.Fatalf("unexpected current conditions: %+v", cur)
	}
	if cur.Code != "03d" || cur.Label != "scattered clouds" {
		t.Fatalf("unexpected current condition code/label: %+v", cur)
	}

	if len(snap.Hourly) != 2 {
		t.Fatalf("expected 2 hourly samples, got %d", len(snap.Hourly))
	}
	if snap.Hourly[1].Code != "10n" || snap.Hourly[1].Temperature != 14.8 {
		t.Fatalf("unexpected hourly sample: %+v", snap.Hourly[1])
	}

	if len(snap.Daily) != 2 {
		t.Fatalf("expected 2 daily samples, got %d", len(snap.Daily))
	}
	day := snap.Daily[1]
	if day.TempMin != 8.0 || day.TempMax != 13.3 || day.Code != "13d" || day.Label != "snow" {
		t.Fatalf("unexpected daily sample: %+v", day)
	}
}
