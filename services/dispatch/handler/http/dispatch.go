package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/streetcab/dispatch/internal/utils"
	"github.com/streetcab/dispatch/services/dispatch"
)

// DispatchHandler handles HTTP requests for dispatch operations
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch HTTP handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: dispatchUC,
	}
}

// NearestRequest carries the query parameters for a nearest-drivers lookup
type NearestRequest struct {
	OrderType string  `query:"order_type"`
	Latitude  float64 `query:"latitude"`
	Longitude float64 `query:"longitude"`
	RadiusM   float64 `query:"radius_m"`
}

// ClaimRequest is the request body for an order claim
type ClaimRequest struct {
	DriverID string `json:"driver_id"`
}

// FindNearestDrivers handles GET /dispatch/nearest
func (h *DispatchHandler) FindNearestDrivers(c echo.Context) error {
	var req NearestRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters: "+err.Error())
	}
	if req.OrderType == "" {
		return utils.BadRequestResponse(c, "order_type is required")
	}

	drivers, err := h.dispatchUC.FindNearestDrivers(c.Request().Context(), req.OrderType, req.Latitude, req.Longitude, req.RadiusM)
	if err != nil {
		return mapDispatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearest drivers", drivers)
}

// ClaimOrder handles POST /orders/:orderID/claim
func (h *DispatchHandler) ClaimOrder(c echo.Context) error {
	orderID := c.Param("orderID")
	if orderID == "" {
		return utils.BadRequestResponse(c, "Order ID is required")
	}

	var req ClaimRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.DriverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	if err := h.dispatchUC.Claim(c.Request().Context(), orderID, req.DriverID); err != nil {
		return mapDispatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Order claimed", echo.Map{
		"order_id":  orderID,
		"driver_id": req.DriverID,
	})
}

// ReleaseOrder handles POST /orders/:orderID/release
func (h *DispatchHandler) ReleaseOrder(c echo.Context) error {
	orderID := c.Param("orderID")
	if orderID == "" {
		return utils.BadRequestResponse(c, "Order ID is required")
	}

	if err := h.dispatchUC.Release(c.Request().Context(), orderID); err != nil {
		return mapDispatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Order released", echo.Map{
		"order_id": orderID,
	})
}

// mapDispatchError translates the dispatch error taxonomy to HTTP statuses.
// Contention outcomes map to 409 with distinct messages so callers can retry
// against the next candidate.
func mapDispatchError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, dispatch.ErrInvalidCoordinate),
		errors.Is(err, dispatch.ErrUnknownCategory):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, dispatch.ErrAlreadyClaimed),
		errors.Is(err, dispatch.ErrDriverBusy):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, dispatch.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, dispatch.ErrStorageUnavailable):
		return utils.ServiceUnavailableResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}
