// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired     = "auth.required"
	KeyAuthInvalidToken = "auth.invalid_token"
	KeyAuthTokenExpired = "auth.token_expired"
	KeyAuthForbidden    = "auth.forbidden"

	// Products
	KeyProductCreated  = "product.created"
	KeyProductUpdated  = "product.updated"
	KeyProductDeleted  = "product.deleted"
	KeyProductNotFound = "product.not_found"
	KeyProductExists   = "product.exists"

	// Imports
	KeyImportNoFile          = "import.no_file"
	KeyImportUnsupportedType = "import.unsupported_type"
	KeyImportRunning         = "import.running"
	KeyImportParseError      = "import.parse_error"
	KeyImportEmpty           = "import.empty"

	// Tagging
	KeyTagsComplete      = "tags.complete"
	KeyTagsProductTagged = "tags.product_tagged"

	// Scraping
	KeyScrapePageNotFound = "scrape.not_found"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// System
	KeyDatabaseError      = "system.database_error"
	KeyServiceUnavailable = "system.unavailable"
	KeyInternalError      = "system.internal_error"
	KeyRateLimitExceeded  = "system.rate_limit"
)
