package dispatch

import (
	"context"

	"github.com/streetcab/dispatch/internal/pkg/models"
)

// DispatchUC is the order/driver matching coordinator
type DispatchUC interface {
	FindCandidates(ctx context.Context, orderType string, latitude, longitude float64) ([]*models.NearbyDriver, error)
	FindNearestDrivers(ctx context.Context, orderType string, latitude, longitude, radiusM float64) ([]*models.NearbyDriver, error)
	Claim(ctx context.Context, orderID, driverID string) error
	Release(ctx context.Context, orderID string) error
	Dispatch(ctx context.Context, order *models.OrderRequest) (*models.NearbyDriver, error)
}

// LocationUC processes driver position updates
type LocationUC interface {
	UpdateDriverLocation(ctx context.Context, update *models.LocationUpdate) error
}

// PresenceUC manages online/offline state and socket bindings
type PresenceUC interface {
	SetOnline(ctx context.Context, userID, role string) error
	SetOffline(ctx context.Context, userID, role string) error
	BindSocket(ctx context.Context, userID, role, socketID string) error
	UnbindSocket(ctx context.Context, userID string) error
	HandleBeaconEvent(event models.BeaconEvent) error
}

// SweeperUC hosts the periodic consistency sweeps
type SweeperUC interface {
	ExpirePendingOrders(ctx context.Context) error
	ReconcileSockets(ctx context.Context) error
	PurgeStalePositions(ctx context.Context) error
}
