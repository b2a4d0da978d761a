package errors

import (
	"net/http"

	"skywitness/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Sighting-related errors
	ErrSightingNotFound = NewBaseError(
		http.StatusNotFound,
		"SIGHTING_NOT_FOUND",
		"找不到該目擊回報",
		"",
	)

	ErrSightingExpired = NewBaseError(
		http.StatusGone,
		"SIGHTING_EXPIRED",
		"該目擊回報已過期",
		"",
	)

	ErrSightingCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"SIGHTING_CREATION_FAILED",
		"建立目擊回報失敗",
		"",
	)

	ErrSightingLimitExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"SIGHTING_LIMIT_EXCEEDED",
		"已達單一裝置的有效目擊回報上限",
		"",
	)

	// Guidance-related errors
	ErrInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATE",
		"無效的座標",
		"",
	)

	ErrGuidanceUnavailable = NewBaseError(
		http.StatusUnprocessableEntity,
		"GUIDANCE_UNAVAILABLE",
		"無法計算導引方位",
		"",
	)

	ErrWindInfeasible = NewBaseError(
		http.StatusUnprocessableEntity,
		"WIND_INFEASIBLE",
		"風速過強，無法計算修正航向",
		"",
	)

	ErrInterceptUnreachable = NewBaseError(
		http.StatusUnprocessableEntity,
		"INTERCEPT_UNREACHABLE",
		"目標速度過快，無法攔截",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"找不到該裝置",
		"",
	)

	ErrDeviceAlreadyExists = NewBaseError(
		http.StatusConflict,
		"DEVICE_ALREADY_EXISTS",
		"此裝置已註冊",
		"",
	)

	ErrDeviceKeyInvalid = NewBaseError(
		http.StatusUnauthorized,
		"DEVICE_KEY_INVALID",
		"無效的裝置金鑰",
		"",
	)

	// Subscription-related errors
	ErrSubscriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIPTION_NOT_FOUND",
		"找不到該訂閱",
		"",
	)

	ErrSubscriptionOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"SUBSCRIPTION_OWNERSHIP_VIOLATION",
		"您沒有權限存取此訂閱",
		"",
	)

	ErrSubscriptionLimitExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"SUBSCRIPTION_LIMIT_EXCEEDED",
		"已達到單一裝置的訂閱上限",
		"",
	)

	// Share link-related errors
	ErrShareTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SHARE_TOKEN_INVALID",
		"無效或已過期的分享連結",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
