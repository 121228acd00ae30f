package weather

import (
	"context"
	"errors"
	"log"
)

// Service orchestrates location resolution and weather fetching and publishes
// the resulting view state.
//
// Within one flow the fetch only starts after resolution succeeds. Overlapping
// flows are allowed; each one carries a sequence number issued by the state
// store, and only the newest flow may publish a terminal result.
type Service struct {
	geocoder Geocoder
	provider SnapshotProvider
	locator  Geolocator
	states   StateStore

	// defaultQuery is the city searched when geolocation is unavailable.
	defaultQuery string
}

// NewService creates a new Service.
func NewService(geocoder Geocoder, provider SnapshotProvider, locator Geolocator, states StateStore, defaultQuery string) *Service {
	return &Service{
		geocoder:     geocoder,
		provider:     provider,
		locator:      locator,
		states:       states,
		defaultQuery: defaultQuery,
	}
}

// Start runs the app-start flow: attempt device geolocation and resolve the
// resulting coordinates. When the device cannot be located, the geolocation
// failure is surfaced and the flow falls back to a text search with the
// default query.
func (s *Service) Start(ctx context.Context) Status {
	seq := s.states.Begin()

	lat, lon, err := s.locator.Locate(ctx)
	if err != nil {
		log.Printf("geolocation unavailable: %v", err)
		s.states.Fail(seq, geolocationMessage(err))
		return s.Search(ctx, s.defaultQuery)
	}

	loc, err := s.geocoder.GeocodeByCoords(ctx, lat, lon)
	if err != nil {
		s.states.Fail(seq, messageFor(err))
		return s.states.Current()
	}

	return s.fetch(ctx, seq, loc)
}

// Search runs a text-search flow for the given query.
func (s *Service) Search(ctx context.Context, query string) Status {
	seq := s.states.Begin()

	loc, err := s.geocoder.GeocodeByName(ctx, query)
	if err != nil {
		s.states.Fail(seq, messageFor(err))
		return s.states.Current()
	}

	return s.fetch(ctx, seq, loc)
}

// Refresh re-fetches the snapshot for the currently displayed location.
// It is a no-op unless a location is currently shown.
func (s *Service) Refresh(ctx context.Context) Status {
	cur := s.states.Current()
	if cur.Phase != PhaseReady {
		return cur
	}

	seq := s.states.Begin()
	return s.fetch(ctx, seq, cur.Location)
}

// Status returns the current view state.
func (s *Service) Status() Status {
	return s.states.Current()
}

func (s *Service) fetch(ctx context.Context, seq uint64, loc Location) Status {
	snap, err := s.provider.FetchSnapshot(ctx, loc.Lat, loc.Lon)
	if err != nil {
		s.states.Fail(seq, messageFor(err))
		return s.states.Current()
	}

	if !s.states.Complete(seq, loc, snap) {
		log.Printf("discarding stale result for %s", loc.Key())
	}
	return s.states.Current()
}

// messageFor translates an operation error into the single human-readable
// message the view renders.
func messageFor(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "location not found"
	case errors.Is(err, ErrNetwork):
		return "weather service is unavailable, please try again"
	default:
		return err.Error()
	}
}

func geolocationMessage(err error) string {
	if errors.Is(err, ErrGeolocationUnsupported) {
		return "geolocation is not supported, falling back to city search"
	}
	return "geolocation permission denied, falling back to city search"
}
