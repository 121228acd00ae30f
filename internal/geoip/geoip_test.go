package geoip

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

func TestLocateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"status":"success","lat":52.52,"lon":13.4}`)
	}))
	defer srv.Close()

	lat, lon, err := NewClient(srv.URL, time.Second).Locate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lat != 52.52 || lon != 13.4 {
		t.Fatalf("got %v,%v", lat, lon)
	}
}

func TestLocateFailStatusIsDenied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"status":"fail","message":"private range"}`)
	}))
	defer srv.Close()

	_, _, err := NewClient(srv.URL, time.Second).Locate(context.Background())
	if !errors.Is(err, weather.ErrGeolocationDenied) {
		t.Fatalf("expected ErrGeolocationDenied, got %v", err)
	}
}

func TestLocateWithoutEndpointIsUnsupported(t *testing.T) {
	_, _, err := NewClient("", time.Second).Locate(context.Background())
	if !errors.Is(err, weather.ErrGeolocationUnsupported) {
		t.Fatalf("expected ErrGeolocationUnsupported, got %v", err)
	}
}
