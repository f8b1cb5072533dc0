package catalog

// ==================== Configuration File Names ====================

// Catalog configuration file names
const (
	// SchemaPath is the JSON schema the catalog file is validated against
	SchemaPath = "configs/schemas/catalog.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgCatalogNil         = "catalog is nil"
	ErrMsgNoTemplatesDefined = "no templates defined"
	ErrMsgEmptyID            = "has empty id"
	ErrMsgEmptyName          = "has empty name"
	ErrMsgNoBaseClasses      = "has no base classes"
	ErrMsgNegativeBasePrice  = "has negative base_price"
	ErrMsgNegativeMaximum    = "has negative maximum"
	ErrMsgEmptySlotID        = "has a slot with empty id"
	ErrMsgBadSlotMaxCount    = "has a slot with non-positive max_count"
	ErrMsgNegativePrice      = "has negative price book entry"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded = "Catalog loaded"
)
