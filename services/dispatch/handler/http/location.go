package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/streetcab/dispatch/internal/pkg/models"
	"github.com/streetcab/dispatch/internal/utils"
	"github.com/streetcab/dispatch/services/dispatch"
)

// LocationHandler handles HTTP requests for driver presence and positions
type LocationHandler struct {
	locationUC dispatch.LocationUC
	presenceUC dispatch.PresenceUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC dispatch.LocationUC, presenceUC dispatch.PresenceUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		presenceUC: presenceUC,
	}
}

// LocationRequest is the request body for a driver position update
type LocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpdateLocation handles POST /drivers/:driverID/location
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	update := &models.LocationUpdate{
		DriverID: driverID,
		Location: models.Location{
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			Timestamp: time.Now(),
		},
		CreatedAt: time.Now(),
	}

	if err := h.locationUC.UpdateDriverLocation(c.Request().Context(), update); err != nil {
		return mapDispatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", nil)
}

// SetOnline handles POST /drivers/:driverID/online
func (h *LocationHandler) SetOnline(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	if err := h.presenceUC.SetOnline(c.Request().Context(), driverID, models.RoleDriver); err != nil {
		return mapDispatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver online", nil)
}

// SetOffline handles POST /drivers/:driverID/offline
func (h *LocationHandler) SetOffline(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	if err := h.presenceUC.SetOffline(c.Request().Context(), driverID, models.RoleDriver); err != nil {
		return mapDispatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver offline", nil)
}
