package domain

import "errors"

// Sentinel errors for the shopping list domain. Use errors.Is() to check these.
var (
	// ErrBlankName indicates an add with an empty or whitespace-only name.
	ErrBlankName = errors.New("item name must not be blank")

	// ErrEntryNotFound indicates no entry with the given id exists in the list.
	ErrEntryNotFound = errors.New("shopping list entry not found")

	// ErrEmptyList indicates an operation that needs at least one entry.
	ErrEmptyList = errors.New("shopping list is empty")

	// ErrConfirmationRequired indicates a destructive operation was not confirmed.
	ErrConfirmationRequired = errors.New("confirmation required to clear the shopping list")
)
