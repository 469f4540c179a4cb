package dispatch

import (
	"context"
	"time"

	"github.com/streetcab/dispatch/internal/pkg/models"
)

// GeoRepo maintains the per-category spatial sets of online driver positions
type GeoRepo interface {
	UpsertPosition(ctx context.Context, category, driverID string, latitude, longitude float64) error
	RecordPosition(ctx context.Context, driverID string, latitude, longitude float64) error
	RemovePosition(ctx context.Context, category, driverID string) error
	RemoveFromAllCategories(ctx context.Context, driverID string) error
	QueryNearest(ctx context.Context, category string, latitude, longitude, radiusM float64, limit int) ([]*models.NearbyDriver, error)
	LastKnownPosition(ctx context.Context, driverID string) (*models.DriverPosition, error)
	StaleDrivers(ctx context.Context, olderThan time.Time) ([]string, error)
	ForgetDriver(ctx context.Context, driverID string) error
}

// PresenceRepo tracks online/offline state and socket bindings
type PresenceRepo interface {
	SetOnline(ctx context.Context, userID, role string) error
	SetOffline(ctx context.Context, userID, role string) error
	IsOnline(ctx context.Context, userID, role string) (bool, error)
	BindSocket(ctx context.Context, userID, role, socketID string) error
	UnbindSocket(ctx context.Context, userID string) error
	SocketForUser(ctx context.Context, userID string) (string, error)
	UserForSocket(ctx context.Context, socketID string) (string, error)
	BoundSockets(ctx context.Context) (map[string]models.SocketBinding, error)
}

// ClaimRepo owns the ephemeral claim tokens guarding order assignment
type ClaimRepo interface {
	// Claim atomically binds driverID to orderID. Returns ErrAlreadyClaimed
	// if the order has a live token, ErrDriverBusy if the driver does.
	Claim(ctx context.Context, orderID, driverID string) error
	// Release drops the order's token and returns the driver it bound.
	// Returns "" without error when no token exists (idempotent).
	Release(ctx context.Context, orderID string) (string, error)
	ActiveOrderFor(ctx context.Context, driverID string) (string, error)
}

// OrderRepo is the durable order record collaborator. Dispatch reads order
// facts and writes status transitions through it, never directly.
type OrderRepo interface {
	GetOrder(ctx context.Context, orderID string) (*models.OrderRequest, error)
	UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus, update models.OrderStatusUpdate) error
	FindPending(ctx context.Context, olderThan time.Time) ([]*models.OrderRequest, error)
}

// LicenseRepo resolves which service categories a driver may serve
type LicenseRepo interface {
	CategoriesFor(ctx context.Context, driverID string) ([]string, error)
}
