package listing

import "errors"

// Errors returned by the listing service. Handlers translate these into API
// error codes.
var (
	// ErrRankItemNotFound covers unknown ids and malformed ids alike; the
	// two are indistinguishable for clients.
	ErrRankItemNotFound = errors.New("rank item not found")

	// ErrRankItemConflict signals a duplicate site_name or rank, detected
	// by the storage layer's unique constraints.
	ErrRankItemConflict = errors.New("site name or rank already in use")

	// ErrDatabaseOperation wraps any other storage failure.
	ErrDatabaseOperation = errors.New("database operation error")
)
