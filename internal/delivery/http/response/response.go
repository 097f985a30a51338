package response

import (
	"net/http"

	deliverycontext "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success   bool       `json:"success"`
	Code      int        `json:"code"`    // HTTP status code
	Message   string     `json:"message"` // User-friendly message, usually the backend's own
	Data      any        `json:"data,omitempty"`
	Error     *ErrorInfo `json:"error,omitempty"`
	RequestID string     `json:"request_id,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string            `json:"code"` // Business error code, e.g., "BANNER_LIMIT_REACHED"
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"` // Per-field form errors
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success:   true,
		Code:      statusCode,
		Message:   message,
		Data:      data,
		RequestID: deliverycontext.GetRequestIDFromContext(c.Request().Context()),
	})
}

// OK is a 200 with the default message
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data, "")
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode, message, details string, fields map[string]string) error {
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
			Fields:  fields,
		},
		RequestID: deliverycontext.GetRequestIDFromContext(c.Request().Context()),
	})
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "", nil)
}
