package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/streetcab/dispatch/internal/pkg/constants"
	"github.com/streetcab/dispatch/internal/pkg/database"
	"github.com/streetcab/dispatch/services/dispatch"
)

// claimScript is the claim linearization point. It checks and sets the
// order's claim slot and the driver's busy slot in one server-side step, so
// two drivers can never both win an order and one driver can never win two
// orders. Replies: OK, ALREADY_CLAIMED, DRIVER_BUSY.
//
// KEYS[1] = claim:order:{orderID}   value: driverID
// KEYS[2] = claim:driver:{driverID} value: orderID
// ARGV[1] = driverID, ARGV[2] = orderID, ARGV[3] = TTL seconds
const claimScript = `
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 'ALREADY_CLAIMED'
end
if redis.call('EXISTS', KEYS[2]) == 1 then
	return 'DRIVER_BUSY'
end
redis.call('SET', KEYS[1], ARGV[1], 'EX', tonumber(ARGV[3]))
redis.call('SET', KEYS[2], ARGV[2], 'EX', tonumber(ARGV[3]))
return 'OK'
`

// releaseScript deletes both claim slots in one step and replies with the
// driver the token bound, or '' when no token existed.
//
// KEYS[1] = claim:order:{orderID}
// ARGV[1] = driver claim key format
const releaseScript = `
local driver = redis.call('GET', KEYS[1])
if not driver then
	return ''
end
redis.call('DEL', KEYS[1])
redis.call('DEL', string.format(ARGV[1], driver))
return driver
`

// ClaimRepo implements the claim token store over Redis with TTL'd keys.
// Tokens are ephemeral: a crashed caller cannot wedge an order past the TTL.
type ClaimRepo struct {
	redisClient *database.RedisClient
	claimTTL    time.Duration
}

// NewClaimRepository creates a new claim repository
func NewClaimRepository(redisClient *database.RedisClient, claimTTL time.Duration) *ClaimRepo {
	if claimTTL <= 0 {
		claimTTL = 2 * time.Minute
	}
	return &ClaimRepo{
		redisClient: redisClient,
		claimTTL:    claimTTL,
	}
}

// Claim atomically binds driverID to orderID
func (r *ClaimRepo) Claim(ctx context.Context, orderID, driverID string) error {
	orderKey := fmt.Sprintf(constants.KeyOrderClaim, orderID)
	driverKey := fmt.Sprintf(constants.KeyDriverClaim, driverID)
	ttlSec := int(r.claimTTL.Seconds())

	result, err := r.redisClient.Eval(ctx, claimScript, []string{orderKey, driverKey}, driverID, orderID, ttlSec)
	if err != nil {
		return fmt.Errorf("failed to execute claim: %w", err)
	}

	switch result {
	case "OK":
		return nil
	case "ALREADY_CLAIMED":
		return fmt.Errorf("order %s: %w", orderID, dispatch.ErrAlreadyClaimed)
	case "DRIVER_BUSY":
		return fmt.Errorf("driver %s: %w", driverID, dispatch.ErrDriverBusy)
	default:
		return fmt.Errorf("unexpected claim reply: %v", result)
	}
}

// Release drops the order's claim token and returns the driver it bound.
// Releasing an unclaimed order returns "" with no error.
func (r *ClaimRepo) Release(ctx context.Context, orderID string) (string, error) {
	orderKey := fmt.Sprintf(constants.KeyOrderClaim, orderID)

	result, err := r.redisClient.Eval(ctx, releaseScript, []string{orderKey}, constants.KeyDriverClaim)
	if err != nil {
		return "", fmt.Errorf("failed to execute release: %w", err)
	}

	driverID, _ := result.(string)
	return driverID, nil
}

// ActiveOrderFor returns the order a driver is currently claimed to, or ""
func (r *ClaimRepo) ActiveOrderFor(ctx context.Context, driverID string) (string, error) {
	driverKey := fmt.Sprintf(constants.KeyDriverClaim, driverID)

	orderID, err := r.redisClient.Get(ctx, driverKey)
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read driver claim: %w", err)
	}
	return orderID, nil
}
