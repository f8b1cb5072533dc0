package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgTemplateNotFound = "template not found"
	ErrMsgDuplicateID      = "duplicate template id"

	// Loader errors
	ErrMsgInvalidCatalog = "invalid catalog"

	// Wear state errors (used for partial matches)
	ErrMsgInvalidWearState = "invalid wear state"
)

// Common domain errors
// These errors should be used consistently across all layers of the engine.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrTemplateNotFound = errors.New(ErrMsgTemplateNotFound)
	ErrDuplicateID      = errors.New(ErrMsgDuplicateID)
	ErrInvalidCatalog   = errors.New(ErrMsgInvalidCatalog)
	ErrInvalidWearState = errors.New(ErrMsgInvalidWearState)
)
