package dispatch

import (
	"context"

	"github.com/streetcab/dispatch/internal/pkg/models"
)

// DispatchGW publishes dispatch lifecycle events. Fire-and-forget: a publish
// failure is logged by the caller and never rolls back the transition.
type DispatchGW interface {
	NotifyClaimed(ctx context.Context, event *models.DispatchEvent) error
	NotifyReleased(ctx context.Context, event *models.DispatchEvent) error
	NotifyExpired(ctx context.Context, event *models.DispatchEvent) error
}

// TransportSignal probes transport-layer connection liveness
type TransportSignal interface {
	IsConnectionActive(socketID string) bool
}
