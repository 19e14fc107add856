package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates no price record exists for the requested item/store.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidQuery indicates a malformed search parameter (price bound, sort order).
	ErrInvalidQuery = errors.New("invalid search query")

	// ErrCatalogUnavailable indicates the upstream catalog could not be fetched.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrCatalogRejected indicates the upstream answered with success=false.
	ErrCatalogRejected = errors.New("catalog request rejected by upstream")

	// ErrSnapshotMissing indicates no catalog snapshot has been stored yet.
	ErrSnapshotMissing = errors.New("catalog snapshot missing")
)
