// Package boxoffice scrapes the weekend ranking and per-film weekly tables
// from the box-office source and turns them into typed records.  These
// sentinel values let callers distinguish a missing table from a source
// outage: handlers translate ErrNotFound into a 404 and ErrUpstream into a
// 502, never into an empty-but-successful response.
package boxoffice

import "errors"

// ErrNotFound is returned when a page fetched successfully but carries no
// ranking or weekly table.  Not an error state for the caller; it means
// "the source has nothing for this query".
var ErrNotFound = errors.New("not found")

// ErrMalformedRow marks a single weekly row that lacks the structure
// needed to parse it.  The row is dropped and the sequence continues.
var ErrMalformedRow = errors.New("malformed row")

// ErrUpstream wraps a non-success HTTP status from the source.  It aborts
// the enclosing operation so an outage is never masked as zero figures.
var ErrUpstream = errors.New("upstream failure")
