package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/streetcab/dispatch/internal/pkg/logger"
	"github.com/streetcab/dispatch/internal/pkg/models"
)

// Manager manages WebSocket connections and client state.
// It is the transport-level source of truth for socket liveness, so it also
// serves as the connection probe used by the presence sweep.
type Manager struct {
	sync.RWMutex
	clients  map[string]*models.WebSocketClient // keyed by socket ID
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*models.WebSocketClient),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client.SocketID = uuid.New().String()
	client.Conn = ws

	return handleClient(client, ws)
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := m.validateToken(parts[1])
	if err != nil {
		logger.Warn("Token validation failed",
			logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

// validateToken validates the JWT token and returns the claims
func (m *Manager) validateToken(tokenString string) (*models.WebSocketClaims, error) {
	claims := &models.WebSocketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.SocketID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(socketID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, socketID)
}

// GetClient returns a client by socket ID
func (m *Manager) GetClient(socketID string) (*models.WebSocketClient, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[socketID]
	return client, exists
}

// IsConnectionActive reports whether a socket is still registered.
// Implements the transport liveness probe consumed by the presence sweep.
func (m *Manager) IsConnectionActive(socketID string) bool {
	m.RLock()
	defer m.RUnlock()
	_, exists := m.clients[socketID]
	return exists
}

// SendMessage marshals and sends an event to a connection
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal message data: %w", err)
	}

	return conn.WriteJSON(models.WSMessage{
		Event: event,
		Data:  payload,
	})
}

// SendErrorMessage sends an error event to a connection
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code, message string) error {
	payload, err := json.Marshal(models.WSErrorMessage{Code: code, Message: message})
	if err != nil {
		return err
	}

	return conn.WriteJSON(models.WSMessage{
		Event: "error",
		Data:  payload,
	})
}
