package handler

import (
	"github.com/labstack/echo/v4"
	natspkg "github.com/streetcab/dispatch/internal/pkg/nats"
	wspkg "github.com/streetcab/dispatch/internal/pkg/websocket"
	"github.com/streetcab/dispatch/services/dispatch"
	httpHandler "github.com/streetcab/dispatch/services/dispatch/handler/http"
	natsHandler "github.com/streetcab/dispatch/services/dispatch/handler/nats"
	wsHandler "github.com/streetcab/dispatch/services/dispatch/handler/websocket"
)

// Handler combines all handlers for the dispatch service
type Handler struct {
	dispatchHTTP *httpHandler.DispatchHandler
	locationHTTP *httpHandler.LocationHandler
	dispatchNATS *natsHandler.DispatchHandler
	dispatchWS   *wsHandler.DispatchWSHandler
}

// NewHandler creates a new combined handler
func NewHandler(
	dispatchUC dispatch.DispatchUC,
	locationUC dispatch.LocationUC,
	presenceUC dispatch.PresenceUC,
	natsClient *natspkg.Client,
	wsManager *wspkg.Manager,
) *Handler {
	return &Handler{
		dispatchHTTP: httpHandler.NewDispatchHandler(dispatchUC),
		locationHTTP: httpHandler.NewLocationHandler(locationUC, presenceUC),
		dispatchNATS: natsHandler.NewDispatchHandler(locationUC, presenceUC, natsClient),
		dispatchWS:   wsHandler.NewDispatchWSHandler(wsManager, locationUC, presenceUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	driverGroup := e.Group("/drivers")
	driverGroup.POST("/:driverID/location", h.locationHTTP.UpdateLocation)
	driverGroup.POST("/:driverID/online", h.locationHTTP.SetOnline)
	driverGroup.POST("/:driverID/offline", h.locationHTTP.SetOffline)

	e.GET("/dispatch/nearest", h.dispatchHTTP.FindNearestDrivers)

	orderGroup := e.Group("/orders")
	orderGroup.POST("/:orderID/claim", h.dispatchHTTP.ClaimOrder)
	orderGroup.POST("/:orderID/release", h.dispatchHTTP.ReleaseOrder)

	e.GET("/ws", h.dispatchWS.HandleConnection)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.dispatchNATS.InitNATSConsumers()
}
