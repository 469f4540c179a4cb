package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/streetcab/dispatch/internal/pkg/constants"
	"github.com/streetcab/dispatch/internal/pkg/logger"
	"github.com/streetcab/dispatch/internal/pkg/models"
	natspkg "github.com/streetcab/dispatch/internal/pkg/nats"
	"github.com/streetcab/dispatch/services/dispatch"
)

// DispatchHandler handles NATS subscriptions for the dispatch service
type DispatchHandler struct {
	locationUC dispatch.LocationUC
	presenceUC dispatch.PresenceUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewDispatchHandler creates a new dispatch NATS handler
func NewDispatchHandler(locationUC dispatch.LocationUC, presenceUC dispatch.PresenceUC, client *natspkg.Client) *DispatchHandler {
	return &DispatchHandler{
		locationUC: locationUC,
		presenceUC: presenceUC,
		natsClient: client,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers initializes all NATS consumers for the dispatch service
func (h *DispatchHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectDriverBeacon, func(msg *nats.Msg) {
		if err := h.handleBeaconEvent(msg.Data); err != nil {
			logger.Error("Error handling beacon event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to beacon events: %w", err)
	}
	h.subs = append(h.subs, sub)

	sub, err = h.natsClient.Subscribe(constants.SubjectLocationUpdate, func(msg *nats.Msg) {
		if err := h.handleLocationUpdate(msg.Data); err != nil {
			logger.Error("Error handling location update", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to location updates: %w", err)
	}
	h.subs = append(h.subs, sub)

	return nil
}

// handleBeaconEvent processes online/offline toggle events
func (h *DispatchHandler) handleBeaconEvent(msg []byte) error {
	var event models.BeaconEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		logger.Error("Failed to unmarshal beacon event", logger.Err(err))
		return err
	}

	logger.Info("Received beacon event",
		logger.String("user_id", event.UserID),
		logger.String("role", event.Role),
		logger.Bool("is_active", event.IsActive))

	return h.presenceUC.HandleBeaconEvent(event)
}

// handleLocationUpdate processes driver GPS updates
func (h *DispatchHandler) handleLocationUpdate(msg []byte) error {
	var update models.LocationUpdate
	if err := json.Unmarshal(msg, &update); err != nil {
		logger.Error("Failed to unmarshal location update", logger.Err(err))
		return err
	}

	return h.locationUC.UpdateDriverLocation(context.Background(), &update)
}
