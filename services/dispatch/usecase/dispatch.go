package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/streetcab/dispatch/internal/pkg/logger"
	"github.com/streetcab/dispatch/internal/pkg/models"
	"github.com/streetcab/dispatch/services/dispatch"
)

// knownCategory reports whether the category partitions the geo index
func knownCategory(orderType string) bool {
	for _, category := range models.OrderTypes {
		if category == orderType {
			return true
		}
	}
	return false
}

// storageErr collapses backing-store failures into the one infra failure mode
// callers handle, keeping contention outcomes separate.
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", dispatch.ErrStorageUnavailable, err)
}

// FindCandidates returns candidate drivers for an order type around a point,
// nearest first, using the category's radius policy. Drivers already holding
// a claim for another order are filtered out. Idempotent: safe to call again
// on every re-broadcast.
func (uc *DispatchUC) FindCandidates(ctx context.Context, orderType string, latitude, longitude float64) ([]*models.NearbyDriver, error) {
	return uc.FindNearestDrivers(ctx, orderType, latitude, longitude, uc.cfg.Dispatch.RadiusFor(orderType))
}

// FindNearestDrivers is FindCandidates with an explicit radius override
func (uc *DispatchUC) FindNearestDrivers(ctx context.Context, orderType string, latitude, longitude, radiusM float64) ([]*models.NearbyDriver, error) {
	if !knownCategory(orderType) {
		return nil, fmt.Errorf("category %q: %w", orderType, dispatch.ErrUnknownCategory)
	}
	if radiusM <= 0 {
		radiusM = uc.cfg.Dispatch.RadiusFor(orderType)
	}

	nearby, err := uc.geoRepo.QueryNearest(ctx, orderType, latitude, longitude, radiusM, uc.cfg.Dispatch.CandidateLimit)
	if err != nil {
		if errors.Is(err, dispatch.ErrInvalidCoordinate) {
			return nil, err
		}
		return nil, storageErr(err)
	}

	candidates := make([]*models.NearbyDriver, 0, len(nearby))
	for _, driver := range nearby {
		activeOrder, err := uc.claims.ActiveOrderFor(ctx, driver.DriverID)
		if err != nil {
			return nil, storageErr(err)
		}
		if activeOrder != "" {
			continue
		}
		candidates = append(candidates, driver)
	}

	return candidates, nil
}

// Claim atomically assigns a driver to an order. Exactly one claim per order
// succeeds; a driver already bound elsewhere is refused. On success the
// driver leaves every geo set, the durable order transitions CREATED→STARTED
// and the claim event is published (publish failure never rolls back).
func (uc *DispatchUC) Claim(ctx context.Context, orderID, driverID string) error {
	if err := uc.claims.Claim(ctx, orderID, driverID); err != nil {
		if errors.Is(err, dispatch.ErrAlreadyClaimed) || errors.Is(err, dispatch.ErrDriverBusy) {
			return err
		}
		return storageErr(err)
	}

	// The driver is committed: no other pending order may see it
	if err := uc.geoRepo.RemoveFromAllCategories(ctx, driverID); err != nil {
		logger.Error("Failed to remove claimed driver from geo index",
			logger.String("driver_id", driverID),
			logger.Err(err))
	}

	if err := uc.orders.UpdateStatus(ctx, orderID, models.OrderStatusStarted, models.OrderStatusUpdate{DriverID: driverID}); err != nil {
		// The durable record could not transition; undo the token so the
		// order stays claimable, and put the already-evicted driver back
		// into the geo index instead of leaving them invisible until the
		// next GPS push.
		if _, relErr := uc.claims.Release(ctx, orderID); relErr != nil {
			logger.Error("Failed to roll back claim token",
				logger.String("order_id", orderID),
				logger.Err(relErr))
		} else if reErr := uc.reinsertDriver(ctx, driverID); reErr != nil {
			logger.Warn("Failed to reinsert driver after claim rollback",
				logger.String("driver_id", driverID),
				logger.Err(reErr))
		}
		if errors.Is(err, dispatch.ErrNotFound) {
			return err
		}
		return storageErr(err)
	}

	event := &models.DispatchEvent{
		OrderID:   orderID,
		DriverID:  driverID,
		Status:    string(models.OrderStatusStarted),
		Timestamp: time.Now(),
	}
	if err := uc.dispatchGW.NotifyClaimed(ctx, event); err != nil {
		logger.Warn("Failed to publish claim event",
			logger.String("order_id", orderID),
			logger.String("driver_id", driverID),
			logger.Err(err))
	}

	logger.Info("Order claimed",
		logger.String("order_id", orderID),
		logger.String("driver_id", driverID))

	return nil
}

// Release drops the order's claim token and returns the driver to the geo
// index if still online. Idempotent: releasing twice, or after expiry, is a
// no-op.
func (uc *DispatchUC) Release(ctx context.Context, orderID string) error {
	driverID, err := uc.claims.Release(ctx, orderID)
	if err != nil {
		return storageErr(err)
	}
	if driverID == "" {
		return nil
	}

	if err := uc.reinsertDriver(ctx, driverID); err != nil {
		logger.Warn("Failed to reinsert released driver",
			logger.String("driver_id", driverID),
			logger.Err(err))
	}

	event := &models.DispatchEvent{
		OrderID:   orderID,
		DriverID:  driverID,
		Status:    "RELEASED",
		Timestamp: time.Now(),
	}
	if err := uc.dispatchGW.NotifyReleased(ctx, event); err != nil {
		logger.Warn("Failed to publish release event",
			logger.String("order_id", orderID),
			logger.Err(err))
	}

	logger.Info("Order claim released",
		logger.String("order_id", orderID),
		logger.String("driver_id", driverID))

	return nil
}

// reinsertDriver puts a driver back into its licensed category sets at the
// last known position, if the driver is still online
func (uc *DispatchUC) reinsertDriver(ctx context.Context, driverID string) error {
	online, err := uc.presence.IsOnline(ctx, driverID, models.RoleDriver)
	if err != nil {
		return err
	}
	if !online {
		return nil
	}

	position, err := uc.geoRepo.LastKnownPosition(ctx, driverID)
	if err != nil {
		if errors.Is(err, dispatch.ErrNotFound) {
			return nil
		}
		return err
	}

	categories, err := uc.licenses.CategoriesFor(ctx, driverID)
	if err != nil {
		return err
	}

	for _, category := range categories {
		if err := uc.geoRepo.UpsertPosition(ctx, category, driverID, position.Latitude, position.Longitude); err != nil {
			return err
		}
	}
	return nil
}

// Dispatch walks the candidate list for an order, attempting a claim on each
// in ascending-distance order. Contention outcomes advance to the next
// candidate; the loop is bounded by the candidate list. An exhausted list
// leaves the order pending for the next re-broadcast.
func (uc *DispatchUC) Dispatch(ctx context.Context, order *models.OrderRequest) (*models.NearbyDriver, error) {
	candidates, err := uc.FindCandidates(ctx, order.OrderType, order.Latitude, order.Longitude)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("order %s: %w", order.OrderID, dispatch.ErrNoCandidates)
	}

	for _, candidate := range candidates {
		err := uc.Claim(ctx, order.OrderID, candidate.DriverID)
		if err == nil {
			return candidate, nil
		}
		if errors.Is(err, dispatch.ErrAlreadyClaimed) {
			// Another driver won this order while we were matching
			return nil, err
		}
		if errors.Is(err, dispatch.ErrDriverBusy) {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("order %s: %w", order.OrderID, dispatch.ErrNoCandidates)
}
