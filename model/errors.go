package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLocation      = errors.New("location outside arena")
	ErrInsufficientResource = errors.New("insufficient resource")
	ErrOccupiedCell         = errors.New("cell occupied")
	ErrIllegalPlacement     = errors.New("placement not allowed for this side")
	ErrNoPath               = errors.New("no path from location")
	ErrMalformedRecord      = errors.New("malformed engine record")
)

// LocationError reports a query or placement at a coordinate outside the diamond.
type LocationError struct {
	Location Location
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidLocation, e.Location)
}

func (e *LocationError) Unwrap() error { return ErrInvalidLocation }

// CheckLocation returns a *LocationError when l is outside the arena.
func CheckLocation(l Location) error {
	if !InArena(l) {
		return &LocationError{Location: l}
	}
	return nil
}
