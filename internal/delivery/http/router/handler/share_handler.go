package handler

import (
	"log/slog"
	"net/http"

	"skywitness/internal/delivery/http/response"
	"skywitness/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShareHandlerParams holds dependencies for ShareHandler, injected by Fx.
type ShareHandlerParams struct {
	fx.In

	ShareUC usecase.ShareUsecase
	Logger  *slog.Logger
}

// ShareHandler holds dependencies for share-link handlers
type ShareHandler struct {
	shareUC usecase.ShareUsecase
	logger  *slog.Logger
}

// NewShareHandler is the constructor for ShareHandler
func NewShareHandler(params ShareHandlerParams) *ShareHandler {
	return &ShareHandler{
		shareUC: params.ShareUC,
		logger:  params.Logger,
	}
}

// ShareLinkResponse represents the response body for a created share link
type ShareLinkResponse struct {
	SightingID uuid.UUID `json:"sighting_id"`
	Token      string    `json:"token"`
	URL        string    `json:"url"`
}

// CreateShareLink handles signing a share link for a sighting
func (h *ShareHandler) CreateShareLink(c echo.Context) error {
	sightingID, err := uuid.Parse(c.Param("sightingId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sighting ID")
	}

	link, err := h.shareUC.CreateShareLink(c.Request().Context(), sightingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ShareLinkResponse{
		SightingID: link.SightingID,
		Token:      link.Token,
		URL:        link.URL,
	}, "Share link created successfully")
}

// GetShareQR handles rendering the share link's QR code as a PNG image
func (h *ShareHandler) GetShareQR(c echo.Context) error {
	sightingID, err := uuid.Parse(c.Param("sightingId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid sighting ID")
	}

	link, err := h.shareUC.CreateShareLink(c.Request().Context(), sightingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", link.QRCodePNG)
}

// ResolveShareToken handles opening a shared sighting by its token
func (h *ShareHandler) ResolveShareToken(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing share token")
	}

	sighting, err := h.shareUC.ResolveShareToken(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sighting, "Shared sighting retrieved successfully")
}
