// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthRegisterSuccess    = "auth.register_success"

	// User Management
	KeyUserNotFound = "user.not_found"

	// Products
	KeyProductCreated    = "product.created"
	KeyProductUpdated    = "product.updated"
	KeyProductDeleted    = "product.deleted"
	KeyProductNotFound   = "product.not_found"
	KeyProductOutOfStock = "product.out_of_stock"
	KeyProductHasOrders  = "product.has_orders"

	// Stock
	KeyStockAdjusted        = "stock.adjusted"
	KeyStockWouldGoNegative = "stock.would_go_negative"

	// Orders
	KeyOrderPlaced   = "order.placed"
	KeyOrderNotFound = "order.not_found"

	// Requests
	KeyRequestCreated          = "request.created"
	KeyRequestUpdated          = "request.updated"
	KeyRequestDeleted          = "request.deleted"
	KeyRequestNotFound         = "request.not_found"
	KeyRequestSupported        = "request.supported"
	KeyRequestAlreadySupported = "request.already_supported"
	KeyRequestSupportRemoved   = "request.support_removed"

	// News
	KeyNewsCreated  = "news.created"
	KeyNewsUpdated  = "news.updated"
	KeyNewsDeleted  = "news.deleted"
	KeyNewsNotFound = "news.not_found"

	// Payments
	KeyPaymentSuccess = "payment.success"
	KeyPaymentFailed  = "payment.failed"

	// Admin
	KeyAdminActionSuccess = "admin.action_success"
	KeyAdminAccessDenied  = "admin.access_denied"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// File Upload
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
)
