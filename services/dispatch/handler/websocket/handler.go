package websocket

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/streetcab/dispatch/internal/pkg/constants"
	"github.com/streetcab/dispatch/internal/pkg/logger"
	"github.com/streetcab/dispatch/internal/pkg/models"
	wspkg "github.com/streetcab/dispatch/internal/pkg/websocket"
	"github.com/streetcab/dispatch/services/dispatch"
)

// DispatchWSHandler serves the authenticated driver socket: presence binding
// on connect/disconnect and a stream of location updates in between.
type DispatchWSHandler struct {
	manager    *wspkg.Manager
	locationUC dispatch.LocationUC
	presenceUC dispatch.PresenceUC
}

// NewDispatchWSHandler creates a new WebSocket handler
func NewDispatchWSHandler(manager *wspkg.Manager, locationUC dispatch.LocationUC, presenceUC dispatch.PresenceUC) *DispatchWSHandler {
	return &DispatchWSHandler{
		manager:    manager,
		locationUC: locationUC,
		presenceUC: presenceUC,
	}
}

// HandleConnection handles GET /ws
func (h *DispatchWSHandler) HandleConnection(c echo.Context) error {
	return h.manager.HandleConnection(c, h.serveClient)
}

func (h *DispatchWSHandler) serveClient(client *models.WebSocketClient, ws *websocket.Conn) error {
	ctx := context.Background()

	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.SocketID)

	if err := h.presenceUC.BindSocket(ctx, client.UserID, client.Role, client.SocketID); err != nil {
		logger.Error("Failed to bind socket",
			logger.String("user_id", client.UserID),
			logger.Err(err))
		return err
	}
	if err := h.presenceUC.SetOnline(ctx, client.UserID, client.Role); err != nil {
		logger.Error("Failed to set user online",
			logger.String("user_id", client.UserID),
			logger.Err(err))
		return err
	}

	logger.Info("Socket connected",
		logger.String("user_id", client.UserID),
		logger.String("socket_id", client.SocketID),
		logger.String("role", client.Role))

	defer h.disconnect(ctx, client)

	for {
		var msg models.WSMessage
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Socket closed unexpectedly",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			return nil
		}

		if err := h.handleMessage(client, msg); err != nil {
			logger.Error("Error handling socket message",
				logger.String("user_id", client.UserID),
				logger.String("event", msg.Event),
				logger.Err(err))
		}
	}
}

// disconnect applies the clean-close presence cascade. A dead connection
// that never reaches this path is reconciled by the socket sweep instead.
func (h *DispatchWSHandler) disconnect(ctx context.Context, client *models.WebSocketClient) {
	if err := h.presenceUC.SetOffline(ctx, client.UserID, client.Role); err != nil {
		logger.Error("Failed to set user offline on disconnect",
			logger.String("user_id", client.UserID),
			logger.Err(err))
	}
	if err := h.presenceUC.UnbindSocket(ctx, client.UserID); err != nil {
		logger.Error("Failed to unbind socket on disconnect",
			logger.String("user_id", client.UserID),
			logger.Err(err))
	}

	logger.Info("Socket disconnected",
		logger.String("user_id", client.UserID),
		logger.String("socket_id", client.SocketID))
}

func (h *DispatchWSHandler) handleMessage(client *models.WebSocketClient, msg models.WSMessage) error {
	switch msg.Event {
	case constants.EventLocationUpdate:
		return h.handleLocationUpdate(client, msg.Data)
	case constants.EventBeacon:
		return h.handleBeacon(client, msg.Data)
	default:
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidMessage, "unknown event: "+msg.Event)
	}
}

// handleBeacon toggles availability for the connected user
func (h *DispatchWSHandler) handleBeacon(client *models.WebSocketClient, data json.RawMessage) error {
	var event models.BeaconEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidMessage, "invalid beacon format")
	}

	event.UserID = client.UserID
	event.Role = client.Role

	return h.presenceUC.HandleBeaconEvent(event)
}

// handleLocationUpdate processes location updates streamed by drivers
func (h *DispatchWSHandler) handleLocationUpdate(client *models.WebSocketClient, data json.RawMessage) error {
	var update models.LocationUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		logger.Error("Error parsing location update",
			logger.String("user_id", client.UserID),
			logger.ErrorField(err))
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidLocation, "invalid location format")
	}

	update.DriverID = client.UserID

	if err := h.locationUC.UpdateDriverLocation(context.Background(), &update); err != nil {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidLocation, err.Error())
	}

	return nil
}
