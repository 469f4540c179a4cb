package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/streetcab/dispatch/internal/pkg/models"
	"github.com/streetcab/dispatch/services/dispatch"
	"github.com/streetcab/dispatch/services/dispatch/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dispatchMocks struct {
	geoRepo  *mocks.MockGeoRepo
	presence *mocks.MockPresenceRepo
	claims   *mocks.MockClaimRepo
	orders   *mocks.MockOrderRepo
	licenses *mocks.MockLicenseRepo
	gateway  *mocks.MockDispatchGW
}

func newDispatchUC(ctrl *gomock.Controller) (*DispatchUC, dispatchMocks) {
	m := dispatchMocks{
		geoRepo:  mocks.NewMockGeoRepo(ctrl),
		presence: mocks.NewMockPresenceRepo(ctrl),
		claims:   mocks.NewMockClaimRepo(ctrl),
		orders:   mocks.NewMockOrderRepo(ctrl),
		licenses: mocks.NewMockLicenseRepo(ctrl),
		gateway:  mocks.NewMockDispatchGW(ctrl),
	}

	cfg := &models.Config{
		Dispatch: models.DispatchConfig{
			SearchRadiusM:    20000,
			IntercityRadiusM: 300000,
			CandidateLimit:   10,
		},
	}

	return NewDispatchUC(cfg, m.geoRepo, m.presence, m.claims, m.orders, m.licenses, m.gateway), m
}

func TestFindNearestDrivers_FiltersBusyDrivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)
	ctx := context.Background()

	nearby := []*models.NearbyDriver{
		{DriverID: "driver-free", DistanceM: 12},
		{DriverID: "driver-busy", DistanceM: 48},
	}
	m.geoRepo.EXPECT().
		QueryNearest(gomock.Any(), models.OrderTypeTaxi, 43.2220, 76.8512, 20000.0, 10).
		Return(nearby, nil)
	m.claims.EXPECT().ActiveOrderFor(gomock.Any(), "driver-free").Return("", nil)
	m.claims.EXPECT().ActiveOrderFor(gomock.Any(), "driver-busy").Return("order-elsewhere", nil)

	candidates, err := uc.FindNearestDrivers(ctx, models.OrderTypeTaxi, 43.2220, 76.8512, 20000)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "driver-free", candidates[0].DriverID)
}

func TestFindNearestDrivers_UnknownCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newDispatchUC(ctrl)

	_, err := uc.FindNearestDrivers(context.Background(), "HELICOPTER", 43.2220, 76.8512, 20000)
	assert.ErrorIs(t, err, dispatch.ErrUnknownCategory)
}

func TestFindCandidates_UsesCategoryRadiusPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)
	ctx := context.Background()

	// City categories search at the default radius
	m.geoRepo.EXPECT().
		QueryNearest(gomock.Any(), models.OrderTypeTaxi, 43.2220, 76.8512, 20000.0, 10).
		Return(nil, nil)
	_, err := uc.FindCandidates(ctx, models.OrderTypeTaxi, 43.2220, 76.8512)
	require.NoError(t, err)

	// Intercity searches at the widened radius
	m.geoRepo.EXPECT().
		QueryNearest(gomock.Any(), models.OrderTypeIntercityTaxi, 43.2220, 76.8512, 300000.0, 10).
		Return(nil, nil)
	_, err = uc.FindCandidates(ctx, models.OrderTypeIntercityTaxi, 43.2220, 76.8512)
	require.NoError(t, err)
}

func TestFindNearestDrivers_ZeroRadiusFallsBackToPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)

	m.geoRepo.EXPECT().
		QueryNearest(gomock.Any(), models.OrderTypeDelivery, 43.2220, 76.8512, 20000.0, 10).
		Return(nil, nil)

	_, err := uc.FindNearestDrivers(context.Background(), models.OrderTypeDelivery, 43.2220, 76.8512, 0)
	require.NoError(t, err)
}

func TestFindNearestDrivers_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)

	m.geoRepo.EXPECT().
		QueryNearest(gomock.Any(), models.OrderTypeTaxi, 43.2220, 76.8512, 20000.0, 10).
		Return(nil, errors.New("connection reset"))

	_, err := uc.FindNearestDrivers(context.Background(), models.OrderTypeTaxi, 43.2220, 76.8512, 20000)
	assert.ErrorIs(t, err, dispatch.ErrStorageUnavailable)
}

func TestClaim_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)
	ctx := context.Background()

	m.claims.EXPECT().Claim(gomock.Any(), "order-1", "driver-1").Return(nil)
	m.geoRepo.EXPECT().RemoveFromAllCategories(gomock.Any(), "driver-1").Return(nil)
	m.orders.EXPECT().
		UpdateStatus(gomock.Any(), "order-1", models.OrderStatusStarted, models.OrderStatusUpdate{DriverID: "driver-1"}).
		Return(nil)
	m.gateway.EXPECT().NotifyClaimed(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, uc.Claim(ctx, "order-1", "driver-1"))
}

func TestClaim_AlreadyClaimed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)

	m.claims.EXPECT().
		Claim(gomock.Any(), "order-1", "driver-2").
		Return(fmt.Errorf("order order-1: %w", dispatch.ErrAlreadyClaimed))

	err := uc.Claim(context.Background(), "order-1", "driver-2")
	assert.ErrorIs(t, err, dispatch.ErrAlreadyClaimed)
}

func TestClaim_PersistenceFailureRollsBackToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)

	m.claims.EXPECT().Claim(gomock.Any(), "order-1", "driver-1").Return(nil)
	m.geoRepo.EXPECT().RemoveFromAllCategories(gomock.Any(), "driver-1").Return(nil)
	m.orders.EXPECT().
		UpdateStatus(gomock.Any(), "order-1", models.OrderStatusStarted, gomock.Any()).
		Return(errors.New("db down"))
	m.claims.EXPECT().Release(gomock.Any(), "order-1").Return("driver-1", nil)

	// The rollback also restores the evicted driver's geo visibility
	m.presence.EXPECT().IsOnline(gomock.Any(), "driver-1", models.RoleDriver).Return(true, nil)
	m.geoRepo.EXPECT().LastKnownPosition(gomock.Any(), "driver-1").Return(&models.DriverPosition{
		DriverID:  "driver-1",
		Latitude:  43.2220,
		Longitude: 76.8512,
	}, nil)
	m.licenses.EXPECT().CategoriesFor(gomock.Any(), "driver-1").Return([]string{models.OrderTypeTaxi}, nil)
	m.geoRepo.EXPECT().UpsertPosition(gomock.Any(), models.OrderTypeTaxi, "driver-1", 43.2220, 76.8512).Return(nil)

	err := uc.Claim(context.Background(), "order-1", "driver-1")
	assert.ErrorIs(t, err, dispatch.ErrStorageUnavailable)
}

func TestClaim_GeoEvictionFailureDoesNotAbort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)

	m.claims.EXPECT().Claim(gomock.Any(), "order-1", "driver-1").Return(nil)
	m.geoRepo.EXPECT().RemoveFromAllCategories(gomock.Any(), "driver-1").Return(errors.New("timeout"))
	m.orders.EXPECT().
		UpdateStatus(gomock.Any(), "order-1", models.OrderStatusStarted, gomock.Any()).
		Return(nil)
	m.gateway.EXPECT().NotifyClaimed(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, uc.Claim(context.Background(), "order-1", "driver-1"))
}

func TestRelease_NoTokenIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)

	m.claims.EXPECT().Release(gomock.Any(), "order-1").Return("", nil)

	assert.NoError(t, uc.Release(context.Background(), "order-1"))
}

func TestRelease_ReinsertsOnlineDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)
	ctx := context.Background()

	m.claims.EXPECT().Release(gomock.Any(), "order-1").Return("driver-1", nil)
	m.presence.EXPECT().IsOnline(gomock.Any(), "driver-1", models.RoleDriver).Return(true, nil)
	m.geoRepo.EXPECT().LastKnownPosition(gomock.Any(), "driver-1").Return(&models.DriverPosition{
		DriverID:  "driver-1",
		Latitude:  43.2220,
		Longitude: 76.8512,
	}, nil)
	m.licenses.EXPECT().CategoriesFor(gomock.Any(), "driver-1").Return([]string{models.OrderTypeTaxi, models.OrderTypeDelivery}, nil)
	m.geoRepo.EXPECT().UpsertPosition(gomock.Any(), models.OrderTypeTaxi, "driver-1", 43.2220, 76.8512).Return(nil)
	m.geoRepo.EXPECT().UpsertPosition(gomock.Any(), models.OrderTypeDelivery, "driver-1", 43.2220, 76.8512).Return(nil)
	m.gateway.EXPECT().NotifyReleased(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, uc.Release(ctx, "order-1"))
}

func TestRelease_OfflineDriverNotReinserted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)

	m.claims.EXPECT().Release(gomock.Any(), "order-1").Return("driver-1", nil)
	m.presence.EXPECT().IsOnline(gomock.Any(), "driver-1", models.RoleDriver).Return(false, nil)
	m.gateway.EXPECT().NotifyReleased(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, uc.Release(context.Background(), "order-1"))
}

func TestDispatch_AdvancesPastBusyDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)
	ctx := context.Background()

	order := &models.OrderRequest{
		OrderID:   "order-1",
		OrderType: models.OrderTypeTaxi,
		Latitude:  43.2220,
		Longitude: 76.8512,
	}

	nearby := []*models.NearbyDriver{
		{DriverID: "driver-a", DistanceM: 10},
		{DriverID: "driver-b", DistanceM: 20},
	}
	m.geoRepo.EXPECT().
		QueryNearest(gomock.Any(), models.OrderTypeTaxi, 43.2220, 76.8512, 20000.0, 10).
		Return(nearby, nil)
	m.claims.EXPECT().ActiveOrderFor(gomock.Any(), "driver-a").Return("", nil)
	m.claims.EXPECT().ActiveOrderFor(gomock.Any(), "driver-b").Return("", nil)

	// driver-a grabbed another order between the query and the claim
	m.claims.EXPECT().
		Claim(gomock.Any(), "order-1", "driver-a").
		Return(fmt.Errorf("driver driver-a: %w", dispatch.ErrDriverBusy))

	m.claims.EXPECT().Claim(gomock.Any(), "order-1", "driver-b").Return(nil)
	m.geoRepo.EXPECT().RemoveFromAllCategories(gomock.Any(), "driver-b").Return(nil)
	m.orders.EXPECT().
		UpdateStatus(gomock.Any(), "order-1", models.OrderStatusStarted, models.OrderStatusUpdate{DriverID: "driver-b"}).
		Return(nil)
	m.gateway.EXPECT().NotifyClaimed(gomock.Any(), gomock.Any()).Return(nil)

	winner, err := uc.Dispatch(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, "driver-b", winner.DriverID)
}

func TestDispatch_StopsWhenOrderAlreadyClaimed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)

	order := &models.OrderRequest{
		OrderID:   "order-1",
		OrderType: models.OrderTypeTaxi,
		Latitude:  43.2220,
		Longitude: 76.8512,
	}

	m.geoRepo.EXPECT().
		QueryNearest(gomock.Any(), models.OrderTypeTaxi, 43.2220, 76.8512, 20000.0, 10).
		Return([]*models.NearbyDriver{{DriverID: "driver-a"}, {DriverID: "driver-b"}}, nil)
	m.claims.EXPECT().ActiveOrderFor(gomock.Any(), "driver-a").Return("", nil)
	m.claims.EXPECT().ActiveOrderFor(gomock.Any(), "driver-b").Return("", nil)
	m.claims.EXPECT().
		Claim(gomock.Any(), "order-1", "driver-a").
		Return(fmt.Errorf("order order-1: %w", dispatch.ErrAlreadyClaimed))

	_, err := uc.Dispatch(context.Background(), order)
	assert.ErrorIs(t, err, dispatch.ErrAlreadyClaimed)
}

func TestDispatch_NoCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newDispatchUC(ctrl)

	order := &models.OrderRequest{
		OrderID:   "order-1",
		OrderType: models.OrderTypeTaxi,
		Latitude:  43.2220,
		Longitude: 76.8512,
	}

	m.geoRepo.EXPECT().
		QueryNearest(gomock.Any(), models.OrderTypeTaxi, 43.2220, 76.8512, 20000.0, 10).
		Return(nil, nil)

	_, err := uc.Dispatch(context.Background(), order)
	assert.ErrorIs(t, err, dispatch.ErrNoCandidates)
}
