package model

import "errors"

// Common errors used across the application.
// The quiz core itself never returns errors; these belong to the outer layers.
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Catalog errors
	ErrEntityNotFound   = errors.New("entity not found")
	ErrInvalidCatalog   = errors.New("invalid catalog")
	ErrCatalogNotLoaded = errors.New("catalog not loaded")
)
