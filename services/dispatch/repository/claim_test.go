package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/streetcab/dispatch/internal/pkg/constants"
	"github.com/streetcab/dispatch/services/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaim_Success(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewClaimRepository(client, 2*time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Claim(ctx, "order-1", "driver-1"))

	// Both claim slots exist with the TTL applied
	orderKey := fmt.Sprintf(constants.KeyOrderClaim, "order-1")
	driverKey := fmt.Sprintf(constants.KeyDriverClaim, "driver-1")
	gotOrder, err := mr.Get(orderKey)
	require.NoError(t, err)
	assert.Equal(t, "driver-1", gotOrder)
	gotDriver, err := mr.Get(driverKey)
	require.NoError(t, err)
	assert.Equal(t, "order-1", gotDriver)
	assert.Greater(t, mr.TTL(orderKey), time.Duration(0))
	assert.Greater(t, mr.TTL(driverKey), time.Duration(0))
}

func TestClaim_AlreadyClaimed(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewClaimRepository(client, 2*time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Claim(ctx, "order-1", "driver-1"))

	err := repo.Claim(ctx, "order-1", "driver-2")
	assert.ErrorIs(t, err, dispatch.ErrAlreadyClaimed)

	// The loser must leave no state behind
	driverKey := fmt.Sprintf(constants.KeyDriverClaim, "driver-2")
	assert.False(t, mr.Exists(driverKey))
}

func TestClaim_DriverBusy(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewClaimRepository(client, 2*time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Claim(ctx, "order-1", "driver-1"))

	err := repo.Claim(ctx, "order-2", "driver-1")
	assert.ErrorIs(t, err, dispatch.ErrDriverBusy)

	orderKey := fmt.Sprintf(constants.KeyOrderClaim, "order-2")
	assert.False(t, mr.Exists(orderKey))
}

func TestClaim_ExactlyOneWinner(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewClaimRepository(client, 2*time.Minute)
	ctx := context.Background()

	const contenders = 10
	var wg sync.WaitGroup
	errs := make([]error, contenders)

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Claim(ctx, "order-hot", fmt.Sprintf("driver-%d", i))
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, dispatch.ErrAlreadyClaimed)
		}
	}
	assert.Equal(t, 1, wins)
}

func TestRelease_ReturnsBoundDriver(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewClaimRepository(client, 2*time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Claim(ctx, "order-1", "driver-1"))

	driverID, err := repo.Release(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, "driver-1", driverID)

	// Both slots are gone and the driver can claim again
	assert.False(t, mr.Exists(fmt.Sprintf(constants.KeyOrderClaim, "order-1")))
	assert.False(t, mr.Exists(fmt.Sprintf(constants.KeyDriverClaim, "driver-1")))
	assert.NoError(t, repo.Claim(ctx, "order-2", "driver-1"))
}

func TestRelease_Idempotent(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewClaimRepository(client, 2*time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Claim(ctx, "order-1", "driver-1"))

	driverID, err := repo.Release(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, "driver-1", driverID)

	driverID, err = repo.Release(ctx, "order-1")
	require.NoError(t, err)
	assert.Empty(t, driverID)
}

func TestRelease_UnclaimedOrder(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewClaimRepository(client, 2*time.Minute)

	driverID, err := repo.Release(context.Background(), "order-never-claimed")
	require.NoError(t, err)
	assert.Empty(t, driverID)
}

func TestActiveOrderFor(t *testing.T) {
	mr, client := setupMiniredis(t)
	defer mr.Close()

	repo := NewClaimRepository(client, 2*time.Minute)
	ctx := context.Background()

	orderID, err := repo.ActiveOrderFor(ctx, "driver-1")
	require.NoError(t, err)
	assert.Empty(t, orderID)

	require.NoError(t, repo.Claim(ctx, "order-1", "driver-1"))

	orderID, err = repo.ActiveOrderFor(ctx, "driver-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", orderID)
}
