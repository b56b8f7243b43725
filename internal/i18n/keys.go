package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates a body that could not be decoded.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a route or resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyOrderNotFound indicates an unknown or expired order.
	ErrKeyOrderNotFound = "error.order_not_found"
	// ErrKeyProductNotFound indicates a product id outside the catalog.
	ErrKeyProductNotFound = "error.product_not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyExportFailed indicates an export could not be delivered.
	ErrKeyExportFailed = "error.export_failed"
	// ErrKeyExportLogUnavailable indicates the export log store is disabled or down.
	ErrKeyExportLogUnavailable = "error.export_log_unavailable"
	// ErrKeyValidationQuantity indicates a missing quantity field.
	ErrKeyValidationQuantity = "error.validation.quantity"
	// ErrKeyValidationChannel indicates an unknown export channel filter.
	ErrKeyValidationChannel = "error.validation.channel"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyOrderCreated indicates a new order session.
	SuccessKeyOrderCreated = "success.order_created"
	// SuccessKeyQuantityUpdated indicates an accepted quantity change.
	SuccessKeyQuantityUpdated = "success.quantity_updated"
	// SuccessKeyQuantityCleared indicates a quantity stored as zero.
	SuccessKeyQuantityCleared = "success.quantity_cleared"
)
