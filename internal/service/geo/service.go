// Package geo resolves the user's location, either by explicit city
// selection or by a one-shot position fix plus reverse geocoding.
package geo

import (
	"context"
	"fmt"
	"log"

	"github.com/civishield/civi-shield/backend/internal/bus"
	"github.com/civishield/civi-shield/backend/internal/model/location"
)

// gpsStateLabel marks locations that could be fixed but not geocoded.
const gpsStateLabel = "GPS Location"

// Service owns location resolution and broadcasts every change.
type Service struct {
	state    *bus.Broadcaster
	locator  Locator
	geocoder Geocoder
}

// NewService creates the location service. geocoder may be nil, in which
// case every detection falls back to the coordinate label.
func NewService(state *bus.Broadcaster, locator Locator, geocoder Geocoder) *Service {
	return &Service{state: state, locator: locator, geocoder: geocoder}
}

// Supported reports whether position detection is available at all.
func (s *Service) Supported() bool {
	return s.locator != nil && s.locator.Supported()
}

// DetectLocation performs one position fix. On success the coordinates are
// reverse-geocoded to a city/state; a geocoding failure degrades to a
// coordinate label instead. A position failure leaves the location unchanged
// and is returned for the caller to surface. Exactly one broadcast happens
// per successful detection; there are no retries.
func (s *Service) DetectLocation(ctx context.Context) (location.Data, error) {
	if !s.Supported() {
		return location.Data{}, ErrUnsupported
	}

	pos, err := s.locator.CurrentPosition(ctx)
	if err != nil {
		return location.Data{}, fmt.Errorf("acquire position: %w", err)
	}

	loc := s.resolve(ctx, pos)
	s.state.SetLocation(loc)
	log.Printf("[geo] location detected: %s, %s", loc.Name, loc.State)
	return loc, nil
}

// DetectFromPosition resolves a fix the client already acquired, for pages
// where the browser owns the geolocation permission prompt.
func (s *Service) DetectFromPosition(ctx context.Context, pos Position) location.Data {
	loc := s.resolve(ctx, pos)
	s.state.SetLocation(loc)
	log.Printf("[geo] location detected: %s, %s", loc.Name, loc.State)
	return loc
}

// Select sets the location from the fixed city list and broadcasts it.
func (s *Service) Select(city location.City) location.Data {
	loc := location.Data{Name: city.Name, State: city.State}
	s.state.SetLocation(loc)
	return loc
}

func (s *Service) resolve(ctx context.Context, pos Position) location.Data {
	coords := &location.Coordinates{Lat: pos.Lat, Lng: pos.Lng}

	if s.geocoder != nil {
		place, err := s.geocoder.Reverse(ctx, pos.Lat, pos.Lng)
		if err == nil {
			return location.Data{Name: place.City, State: place.State, Coordinates: coords}
		}
		log.Printf("[geo] reverse geocoding failed, labeling coordinates: %v", err)
	}

	return location.Data{
		Name:        fmt.Sprintf("%.4f, %.4f", pos.Lat, pos.Lng),
		State:       gpsStateLabel,
		Coordinates: coords,
	}
}
