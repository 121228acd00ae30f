package weather

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a geocoding lookup yields no results.
	ErrNotFound = errors.New("no matching location")

	// ErrNetwork is returned on transport failures and non-2xx upstream responses.
	ErrNetwork = errors.New("weather api unavailable")

	// ErrGeolocationDenied is returned when the geolocation collaborator
	// answered but refused or failed to produce coordinates.
	ErrGeolocationDenied = errors.New("geolocation denied")

	// ErrGeolocationUnsupported is returned when no geolocation collaborator
	// is available at all.
	ErrGeolocationUnsupported = errors.New("geolocation not supported")
)

// Geocoder resolves place queries or coordinates to a canonical Location.
// Both lookups take the first upstream match as authoritative.
type Geocoder interface {
	GeocodeByName(ctx context.Context, query string) (Location, error)
	GeocodeByCoords(ctx context.Context, lat, lon float64) (Location, error)
}

// SnapshotProvider fetches a weather snapshot for resolved coordinates.
type SnapshotProvider interface {
	FetchSnapshot(ctx context.Context, lat, lon float64) (Snapshot, error)
}

// Geolocator is the device-geolocation collaborator: a single-shot lookup of
// the caller's approximate coordinates.
type Geolocator interface {
	Locate(ctx context.Context) (lat, lon float64, err error)
}

// StateStore is the contract the view-state holder must satisfy. Begin opens
// a new flow and returns its sequence number; Complete and Fail publish a
// terminal result and report whether it was applied (a result from a
// superseded flow is discarded).
type StateStore interface {
	Begin() uint64
	Complete(seq uint64, loc Location, snap Snapshot) bool
	Fail(seq uint64, message string) bool
	Current() Status
}
