package repository

import "errors"

// ErrFilmNotFound is returned when no persisted film matches the lookup.
// Handlers should translate this into an HTTP 404 response.
var ErrFilmNotFound = errors.New("film not found")
