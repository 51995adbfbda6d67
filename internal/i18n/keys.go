// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthForbidden          = "auth.forbidden"

	// Members
	KeyMemberNotFound  = "member.not_found"
	KeyMemberExists    = "member.exists"
	KeyMemberWithdrawn = "member.withdrawn"

	// Products
	KeyProductNotFound       = "product.not_found"
	KeyProductExists         = "product.exists"
	KeySupplyProductNotFound = "supply_product.not_found"
	KeyClientProductExists   = "client_product.exists"

	// Devices and tags
	KeyDeviceNotFound = "device.not_found"
	KeyDeviceExists   = "device.exists"
	KeyChipNotFound   = "chip.not_found"

	// Storage
	KeyStorageUnavailable = "storage.unavailable"
	KeyFileInvalid        = "file.invalid"
	KeyFileUploadFailed   = "file.upload_failed"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// Common
	KeyRateLimited   = "common.rate_limited"
	KeyInternalError = "common.internal_error"
)
