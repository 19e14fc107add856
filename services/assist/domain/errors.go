package domain

import "errors"

// Sentinel errors for the AI assist domain. Use errors.Is() to check these.
// The three upstream errors are the user-facing failure categories:
// connectivity, server error, and anything else.
var (
	// ErrBlankPrompt indicates an empty search query or list prompt.
	ErrBlankPrompt = errors.New("prompt must not be blank")

	// ErrInvalidBudget indicates a negative budget.
	ErrInvalidBudget = errors.New("budget must not be negative")

	// ErrAssistUnreachable indicates the assistant could not be contacted.
	ErrAssistUnreachable = errors.New("could not reach the AI assistant; check your connection")

	// ErrAssistUpstream indicates the assistant answered with an HTTP error.
	ErrAssistUpstream = errors.New("the AI assistant returned a server error")

	// ErrAssistFailed covers every other assistant failure (malformed or rejected answers).
	ErrAssistFailed = errors.New("AI request failed")
)
