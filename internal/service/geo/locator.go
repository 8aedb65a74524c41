package geo

import (
	"context"
	"errors"
)

// Position is one geolocation fix.
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ErrUnsupported is returned when no positioning capability is present.
var ErrUnsupported = errors.New("geolocation capability unavailable")

// Locator abstracts the positioning capability.
type Locator interface {
	Supported() bool
	CurrentPosition(ctx context.Context) (Position, error)
}

// NoopLocator stands in when positioning is absent.
type NoopLocator struct{}

func (NoopLocator) Supported() bool { return false }

func (NoopLocator) CurrentPosition(context.Context) (Position, error) {
	return Position{}, ErrUnsupported
}

// StaticLocator reports a fixed position, as when the page forwards the
// browser fix with the detect request.
type StaticLocator struct {
	Pos Position
}

func (StaticLocator) Supported() bool { return true }

func (l StaticLocator) CurrentPosition(context.Context) (Position, error) {
	return l.Pos, nil
}
