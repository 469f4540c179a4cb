package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/streetcab/dispatch/internal/pkg/logger"
	"github.com/streetcab/dispatch/internal/pkg/models"
	"github.com/streetcab/dispatch/services/dispatch"
)

// SweeperUC hosts the periodic consistency sweeps. Sweeps are a safety net
// against crashed clients and leaked state, not real-time correctness; every
// error is terminal to the tick and the next tick starts clean.
type SweeperUC struct {
	cfg       *models.Config
	dispatch  *DispatchUC
	geoRepo   dispatch.GeoRepo
	presence  dispatch.PresenceRepo
	orders    dispatch.OrderRepo
	transport dispatch.TransportSignal
	gateway   dispatch.DispatchGW
}

// NewSweeperUC creates a new sweeper use case
func NewSweeperUC(
	cfg *models.Config,
	dispatchUC *DispatchUC,
	geoRepo dispatch.GeoRepo,
	presence dispatch.PresenceRepo,
	orders dispatch.OrderRepo,
	transport dispatch.TransportSignal,
	gateway dispatch.DispatchGW,
) *SweeperUC {
	return &SweeperUC{
		cfg:       cfg,
		dispatch:  dispatchUC,
		geoRepo:   geoRepo,
		presence:  presence,
		orders:    orders,
		transport: transport,
		gateway:   gateway,
	}
}

// ExpirePendingOrders rejects orders that stayed unmatched past the timeout
// and releases any claim they still hold
func (uc *SweeperUC) ExpirePendingOrders(ctx context.Context) error {
	timeout := time.Duration(uc.cfg.Dispatch.OrderTimeoutSec) * time.Second
	cutoff := time.Now().Add(-timeout)

	pending, err := uc.orders.FindPending(ctx, cutoff)
	if err != nil {
		return storageErr(err)
	}

	for _, order := range pending {
		// A live candidate probe tells a true no-driver expiry apart from a
		// geo storage outage; the client-facing reason must not conflate them
		reason := models.ReasonNoDriversFound
		if _, err := uc.dispatch.FindCandidates(ctx, order.OrderType, order.Latitude, order.Longitude); errors.Is(err, dispatch.ErrStorageUnavailable) {
			reason = models.ReasonStorageError
		}

		update := models.OrderStatusUpdate{Reason: reason}
		if err := uc.orders.UpdateStatus(ctx, order.OrderID, models.OrderStatusExpired, update); err != nil {
			logger.Error("Failed to expire order",
				logger.String("order_id", order.OrderID),
				logger.Err(err))
			continue
		}

		if err := uc.dispatch.Release(ctx, order.OrderID); err != nil {
			logger.Error("Failed to release expired order",
				logger.String("order_id", order.OrderID),
				logger.Err(err))
		}

		event := &models.DispatchEvent{
			OrderID:   order.OrderID,
			ClientID:  order.ClientID,
			OrderType: order.OrderType,
			Status:    string(models.OrderStatusExpired),
			Reason:    reason,
			Timestamp: time.Now(),
		}
		if err := uc.gateway.NotifyExpired(ctx, event); err != nil {
			logger.Warn("Failed to publish expiry event",
				logger.String("order_id", order.OrderID),
				logger.Err(err))
		}

		logger.Info("Expired unmatched order",
			logger.String("order_id", order.OrderID),
			logger.String("order_type", order.OrderType))
	}

	return nil
}

// ReconcileSockets detects transport connections that died without a clean
// disconnect and applies the implicit offline + unbind for them
func (uc *SweeperUC) ReconcileSockets(ctx context.Context) error {
	bindings, err := uc.presence.BoundSockets(ctx)
	if err != nil {
		return storageErr(err)
	}

	for socketID, binding := range bindings {
		if uc.transport.IsConnectionActive(socketID) {
			continue
		}

		logger.Info("Reaping dead socket",
			logger.String("socket_id", socketID),
			logger.String("user_id", binding.UserID),
			logger.String("role", binding.Role))

		if err := uc.dispatch.SetOffline(ctx, binding.UserID, binding.Role); err != nil {
			logger.Error("Failed to set user offline during socket sweep",
				logger.String("user_id", binding.UserID),
				logger.Err(err))
			continue
		}
		if err := uc.presence.UnbindSocket(ctx, binding.UserID); err != nil {
			logger.Error("Failed to unbind dead socket",
				logger.String("user_id", binding.UserID),
				logger.Err(err))
		}
	}

	return nil
}

// PurgeStalePositions evicts geo entries whose position was last updated
// before the staleness bound, independent of explicit offline signals
func (uc *SweeperUC) PurgeStalePositions(ctx context.Context) error {
	bound := time.Duration(uc.cfg.Dispatch.StalePositionSec) * time.Second
	cutoff := time.Now().Add(-bound)

	stale, err := uc.geoRepo.StaleDrivers(ctx, cutoff)
	if err != nil {
		return storageErr(err)
	}

	for _, driverID := range stale {
		if err := uc.geoRepo.RemoveFromAllCategories(ctx, driverID); err != nil {
			logger.Error("Failed to purge stale driver from geo index",
				logger.String("driver_id", driverID),
				logger.Err(err))
			continue
		}
		if err := uc.geoRepo.ForgetDriver(ctx, driverID); err != nil {
			logger.Error("Failed to drop stale driver position",
				logger.String("driver_id", driverID),
				logger.Err(err))
		}
	}

	if len(stale) > 0 {
		logger.Info("Purged stale driver positions", logger.Int("count", len(stale)))
	}

	return nil
}
