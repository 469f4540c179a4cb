package usecase

import (
	"context"

	"github.com/streetcab/dispatch/internal/pkg/logger"
	"github.com/streetcab/dispatch/internal/pkg/models"
)

// SetOnline marks a user online
func (uc *DispatchUC) SetOnline(ctx context.Context, userID, role string) error {
	if err := uc.presence.SetOnline(ctx, userID, role); err != nil {
		return storageErr(err)
	}

	logger.Info("User online",
		logger.String("user_id", userID),
		logger.String("role", role))
	return nil
}

// SetOffline marks a user offline. For drivers this also evicts every
// category geo entry so pending orders stop seeing them.
func (uc *DispatchUC) SetOffline(ctx context.Context, userID, role string) error {
	if err := uc.presence.SetOffline(ctx, userID, role); err != nil {
		return storageErr(err)
	}

	if role == models.RoleDriver {
		if err := uc.geoRepo.RemoveFromAllCategories(ctx, userID); err != nil {
			return storageErr(err)
		}
	}

	logger.Info("User offline",
		logger.String("user_id", userID),
		logger.String("role", role))
	return nil
}

// BindSocket records a user's active socket session
func (uc *DispatchUC) BindSocket(ctx context.Context, userID, role, socketID string) error {
	if err := uc.presence.BindSocket(ctx, userID, role, socketID); err != nil {
		return storageErr(err)
	}
	return nil
}

// UnbindSocket drops a user's socket session. Idempotent.
func (uc *DispatchUC) UnbindSocket(ctx context.Context, userID string) error {
	if err := uc.presence.UnbindSocket(ctx, userID); err != nil {
		return storageErr(err)
	}
	return nil
}

// HandleBeaconEvent processes online/offline toggles from the event stream
func (uc *DispatchUC) HandleBeaconEvent(event models.BeaconEvent) error {
	ctx := context.Background()

	role := event.Role
	if role == "" {
		role = models.RoleDriver
	}

	if !event.IsActive {
		return uc.SetOffline(ctx, event.UserID, role)
	}

	if err := uc.SetOnline(ctx, event.UserID, role); err != nil {
		return err
	}

	// A beacon with a position doubles as the first location fix
	if role == models.RoleDriver && (event.Location.Latitude != 0 || event.Location.Longitude != 0) {
		return uc.UpdateDriverLocation(ctx, &models.LocationUpdate{
			DriverID:  event.UserID,
			Location:  event.Location,
			CreatedAt: event.Timestamp,
		})
	}

	return nil
}
