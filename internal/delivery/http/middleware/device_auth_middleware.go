package middleware

import (
	"net/http"

	"skywitness/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DeviceKeyHeader carries the opaque key a device received at registration.
const DeviceKeyHeader = "X-Device-Key"

const deviceIDContextKey = "deviceID"

// DeviceAuthMiddleware authenticates requests by their device key header.
type DeviceAuthMiddleware struct {
	deviceUC usecase.DeviceUsecase
}

// NewDeviceAuthMiddleware is the constructor for DeviceAuthMiddleware.
func NewDeviceAuthMiddleware(deviceUC usecase.DeviceUsecase) *DeviceAuthMiddleware {
	return &DeviceAuthMiddleware{deviceUC: deviceUC}
}

// Authenticate resolves the device key to an active device and stores its ID
// on the request context for handlers to use.
func (m *DeviceAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		deviceKey := c.Request().Header.Get(DeviceKeyHeader)
		if deviceKey == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Device key header is missing"})
		}

		device, err := m.deviceUC.AuthenticateDevice(c.Request().Context(), deviceKey)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or inactive device key"})
		}

		c.Set(deviceIDContextKey, device.ID)

		return next(c)
	}
}

// GetDeviceID extracts the authenticated device ID set by Authenticate.
func GetDeviceID(c echo.Context) (uuid.UUID, bool) {
	deviceID, ok := c.Get(deviceIDContextKey).(uuid.UUID)

	return deviceID, ok
}
