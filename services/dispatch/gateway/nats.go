package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/streetcab/dispatch/internal/pkg/constants"
	"github.com/streetcab/dispatch/internal/pkg/logger"
	"github.com/streetcab/dispatch/internal/pkg/models"
	natspkg "github.com/streetcab/dispatch/internal/pkg/nats"
)

// DispatchGW publishes dispatch lifecycle events over NATS
type DispatchGW struct {
	natsClient *natspkg.Client
}

// NewDispatchGW creates a new dispatch gateway instance
func NewDispatchGW(client *natspkg.Client) *DispatchGW {
	return &DispatchGW{
		natsClient: client,
	}
}

func (g *DispatchGW) publish(ctx context.Context, subject string, event *models.DispatchEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch event: %w", err)
	}

	if err := g.natsClient.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish dispatch event: %w", err)
	}

	logger.Debug("Published dispatch event",
		logger.String("subject", subject),
		logger.String("order_id", event.OrderID),
		logger.String("status", event.Status))

	return nil
}

// NotifyClaimed publishes a successful claim
func (g *DispatchGW) NotifyClaimed(ctx context.Context, event *models.DispatchEvent) error {
	return g.publish(ctx, constants.SubjectOrderClaimed, event)
}

// NotifyReleased publishes a claim release
func (g *DispatchGW) NotifyReleased(ctx context.Context, event *models.DispatchEvent) error {
	return g.publish(ctx, constants.SubjectOrderReleased, event)
}

// NotifyExpired publishes an order expiry
func (g *DispatchGW) NotifyExpired(ctx context.Context, event *models.DispatchEvent) error {
	return g.publish(ctx, constants.SubjectOrderExpired, event)
}
