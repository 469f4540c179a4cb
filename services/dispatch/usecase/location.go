package usecase

import (
	"context"
	"errors"

	"github.com/streetcab/dispatch/internal/pkg/logger"
	"github.com/streetcab/dispatch/internal/pkg/models"
	"github.com/streetcab/dispatch/services/dispatch"
)

// UpdateDriverLocation processes a driver GPS update. A driver appears in a
// category's geo set only while online, licensed for it, and not committed to
// an order; a busy driver's position is still recorded for the recovery path.
func (uc *DispatchUC) UpdateDriverLocation(ctx context.Context, update *models.LocationUpdate) error {
	online, err := uc.presence.IsOnline(ctx, update.DriverID, models.RoleDriver)
	if err != nil {
		return storageErr(err)
	}
	if !online {
		logger.Debug("Dropping location update from offline driver",
			logger.String("driver_id", update.DriverID))
		return nil
	}

	activeOrder, err := uc.claims.ActiveOrderFor(ctx, update.DriverID)
	if err != nil {
		return storageErr(err)
	}
	if activeOrder != "" {
		// Keep the last-known position fresh without exposing the driver
		// to pending orders
		if err := uc.geoRepo.RecordPosition(ctx, update.DriverID, update.Location.Latitude, update.Location.Longitude); err != nil {
			if errors.Is(err, dispatch.ErrInvalidCoordinate) {
				return err
			}
			return storageErr(err)
		}
		return nil
	}

	categories, err := uc.licenses.CategoriesFor(ctx, update.DriverID)
	if err != nil {
		return storageErr(err)
	}
	if len(categories) == 0 {
		logger.Warn("Online driver holds no valid license",
			logger.String("driver_id", update.DriverID))
		return nil
	}

	for _, category := range categories {
		if err := uc.geoRepo.UpsertPosition(ctx, category, update.DriverID, update.Location.Latitude, update.Location.Longitude); err != nil {
			if errors.Is(err, dispatch.ErrInvalidCoordinate) {
				return err
			}
			return storageErr(err)
		}
	}

	return nil
}
