package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/streetcab/dispatch/internal/pkg/models"
	"github.com/streetcab/dispatch/services/dispatch"
	"github.com/stretchr/testify/assert"
)

func locationUpdate(driverID string, lat, lng float64) *models.LocationUpdate {
	return &models.LocationUpdate{
		DriverID: driverID,
		Location: models.Location{
			Latitude:  lat,
			Longitude: lng,
			Timestamp: time.Now(),
		},
		CreatedAt: time.Now(),
	}
}

func TestUpdateDriverLocation_OfflineDriverDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)

	m.presence.EXPECT().IsOnline(gomock.Any(), "driver-1", models.RoleDriver).Return(false, nil)

	// No geo writes happen for an offline driver
	assert.NoError(t, uc.UpdateDriverLocation(context.Background(), locationUpdate("driver-1", 43.2220, 76.8512)))
}

func TestUpdateDriverLocation_BusyDriverRecordedNotIndexed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)

	m.presence.EXPECT().IsOnline(gomock.Any(), "driver-1", models.RoleDriver).Return(true, nil)
	m.claims.EXPECT().ActiveOrderFor(gomock.Any(), "driver-1").Return("order-1", nil)
	m.geoRepo.EXPECT().RecordPosition(gomock.Any(), "driver-1", 43.2220, 76.8512).Return(nil)

	assert.NoError(t, uc.UpdateDriverLocation(context.Background(), locationUpdate("driver-1", 43.2220, 76.8512)))
}

func TestUpdateDriverLocation_IndexedPerLicense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)

	m.presence.EXPECT().IsOnline(gomock.Any(), "driver-1", models.RoleDriver).Return(true, nil)
	m.claims.EXPECT().ActiveOrderFor(gomock.Any(), "driver-1").Return("", nil)
	m.licenses.EXPECT().CategoriesFor(gomock.Any(), "driver-1").Return([]string{models.OrderTypeTaxi, models.OrderTypeCargo}, nil)
	m.geoRepo.EXPECT().UpsertPosition(gomock.Any(), models.OrderTypeTaxi, "driver-1", 43.2220, 76.8512).Return(nil)
	m.geoRepo.EXPECT().UpsertPosition(gomock.Any(), models.OrderTypeCargo, "driver-1", 43.2220, 76.8512).Return(nil)

	assert.NoError(t, uc.UpdateDriverLocation(context.Background(), locationUpdate("driver-1", 43.2220, 76.8512)))
}

func TestUpdateDriverLocation_NoLicenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)

	m.presence.EXPECT().IsOnline(gomock.Any(), "driver-1", models.RoleDriver).Return(true, nil)
	m.claims.EXPECT().ActiveOrderFor(gomock.Any(), "driver-1").Return("", nil)
	m.licenses.EXPECT().CategoriesFor(gomock.Any(), "driver-1").Return(nil, nil)

	assert.NoError(t, uc.UpdateDriverLocation(context.Background(), locationUpdate("driver-1", 43.2220, 76.8512)))
}

func TestUpdateDriverLocation_InvalidCoordinatePassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)

	m.presence.EXPECT().IsOnline(gomock.Any(), "driver-1", models.RoleDriver).Return(true, nil)
	m.claims.EXPECT().ActiveOrderFor(gomock.Any(), "driver-1").Return("", nil)
	m.licenses.EXPECT().CategoriesFor(gomock.Any(), "driver-1").Return([]string{models.OrderTypeTaxi}, nil)
	m.geoRepo.EXPECT().
		UpsertPosition(gomock.Any(), models.OrderTypeTaxi, "driver-1", 95.0, 76.8512).
		Return(fmt.Errorf("lat out of range: %w", dispatch.ErrInvalidCoordinate))

	err := uc.UpdateDriverLocation(context.Background(), locationUpdate("driver-1", 95.0, 76.8512))
	assert.ErrorIs(t, err, dispatch.ErrInvalidCoordinate)
	assert.NotErrorIs(t, err, dispatch.ErrStorageUnavailable)
}

func TestSetOffline_DriverLeavesGeoIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)

	m.presence.EXPECT().SetOffline(gomock.Any(), "driver-1", models.RoleDriver).Return(nil)
	m.geoRepo.EXPECT().RemoveFromAllCategories(gomock.Any(), "driver-1").Return(nil)

	assert.NoError(t, uc.SetOffline(context.Background(), "driver-1", models.RoleDriver))
}

func TestSetOffline_ClientSkipsGeoIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)

	m.presence.EXPECT().SetOffline(gomock.Any(), "client-1", models.RoleClient).Return(nil)

	assert.NoError(t, uc.SetOffline(context.Background(), "client-1", models.RoleClient))
}

func TestHandleBeaconEvent_InactiveGoesOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)

	m.presence.EXPECT().SetOffline(gomock.Any(), "driver-1", models.RoleDriver).Return(nil)
	m.geoRepo.EXPECT().RemoveFromAllCategories(gomock.Any(), "driver-1").Return(nil)

	assert.NoError(t, uc.HandleBeaconEvent(models.BeaconEvent{
		UserID:   "driver-1",
		IsActive: false,
	}))
}

func TestHandleBeaconEvent_ActiveWithLocationIndexes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)

	m.presence.EXPECT().SetOnline(gomock.Any(), "driver-1", models.RoleDriver).Return(nil)
	m.presence.EXPECT().IsOnline(gomock.Any(), "driver-1", models.RoleDriver).Return(true, nil)
	m.claims.EXPECT().ActiveOrderFor(gomock.Any(), "driver-1").Return("", nil)
	m.licenses.EXPECT().CategoriesFor(gomock.Any(), "driver-1").Return([]string{models.OrderTypeTaxi}, nil)
	m.geoRepo.EXPECT().UpsertPosition(gomock.Any(), models.OrderTypeTaxi, "driver-1", 43.2220, 76.8512).Return(nil)

	assert.NoError(t, uc.HandleBeaconEvent(models.BeaconEvent{
		UserID:   "driver-1",
		Role:     models.RoleDriver,
		IsActive: true,
		Location: models.Location{Latitude: 43.2220, Longitude: 76.8512},
	}))
}

func TestHandleBeaconEvent_ActiveWithoutLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)

	m.presence.EXPECT().SetOnline(gomock.Any(), "driver-1", models.RoleDriver).Return(nil)

	assert.NoError(t, uc.HandleBeaconEvent(models.BeaconEvent{
		UserID:   "driver-1",
		IsActive: true,
	}))
}
