package handler

import (
	"net/http"

	"skywitness/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAuthMiddleware tests the device authentication middleware
// This endpoint requires a valid device key in the X-Device-Key header
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	// Get device information from context (set by device auth middleware)
	deviceID := c.Get("deviceID")

	return response.Success(c, http.StatusOK, map[string]interface{}{
		"message":  "Authentication middleware test successful",
		"deviceID": deviceID,
		"status":   "authenticated",
	}, "Authentication middleware test successful")
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]interface{}{
		"message": "Public endpoint test successful",
		"status":  "public",
	}, "Public endpoint test successful")
}
