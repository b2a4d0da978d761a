package response

import (
	"net/http"

	domainerrors "skywitness/internal/domain/errors"
	"skywitness/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "SIGHTING_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// Forbidden 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, "")
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

// Conflict 409 error
func Conflict(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusConflict, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

// sentinelStatus maps use-case sentinel errors onto HTTP responses.
var sentinelStatus = []struct {
	err       error
	status    int
	errorCode string
}{
	{impl.ErrSightingNotFound, http.StatusNotFound, "SIGHTING_NOT_FOUND"},
	{impl.ErrSubscriptionNotFound, http.StatusNotFound, "SUBSCRIPTION_NOT_FOUND"},
	{impl.ErrDeviceNotFound, http.StatusNotFound, "DEVICE_NOT_FOUND"},
	{impl.ErrInvalidSightingPosition, http.StatusBadRequest, "INVALID_COORDINATE"},
	{impl.ErrEmptyDescription, http.StatusBadRequest, "EMPTY_DESCRIPTION"},
	{impl.ErrInvalidRadius, http.StatusBadRequest, "INVALID_RADIUS"},
	{impl.ErrMissingDeviceKey, http.StatusBadRequest, "MISSING_DEVICE_KEY"},
	{impl.ErrMissingFCMToken, http.StatusBadRequest, "MISSING_FCM_TOKEN"},
}

// HandleAppError maps a domain error onto the unified response envelope.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	for _, mapping := range sentinelStatus {
		if errors.Is(err, mapping.err) {
			return Error(c, mapping.status, mapping.errorCode, mapping.err.Error(), "")
		}
	}

	return InternalServerError(c, "INTERNAL_ERROR", err.Error())
}
