package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/streetcab/dispatch/internal/pkg/constants"
	"github.com/streetcab/dispatch/internal/pkg/database"
	"github.com/streetcab/dispatch/internal/pkg/models"
	"github.com/streetcab/dispatch/services/dispatch"
)

// bindScript supersedes any previous binding and installs the new one in a
// single server-side step, so two concurrent binds for the same user can
// never leave two hash entries behind.
//
// KEYS[1] = socket:user:{userID}  value: socketID
// KEYS[2] = socket bindings hash  field: socketID, value: role:userID
// ARGV[1] = socketID, ARGV[2] = role:userID, ARGV[3] = TTL seconds
const bindScript = `
local old = redis.call('GET', KEYS[1])
if old and old ~= ARGV[1] then
	redis.call('HDEL', KEYS[2], old)
end
redis.call('SET', KEYS[1], ARGV[1], 'EX', tonumber(ARGV[3]))
redis.call('HSET', KEYS[2], ARGV[1], ARGV[2])
return 'OK'
`

// unbindScript drops both directions of the binding atomically. Replies with
// the unbound socketID, or '' when the user had no binding.
//
// KEYS[1] = socket:user:{userID}
// KEYS[2] = socket bindings hash
const unbindScript = `
local socket = redis.call('GET', KEYS[1])
if not socket then
	return ''
end
redis.call('DEL', KEYS[1])
redis.call('HDEL', KEYS[2], socket)
return socket
`

// PresenceRepo implements the presence registry over Redis: membership sets
// for online users plus a two-way user/socket binding. At most one socket per
// user; the latest bind wins and the stale reverse mapping is dropped in the
// same atomic step.
type PresenceRepo struct {
	redisClient *database.RedisClient
	bindingTTL  time.Duration
}

// NewPresenceRepository creates a new presence repository
func NewPresenceRepository(redisClient *database.RedisClient, bindingTTL time.Duration) *PresenceRepo {
	if bindingTTL <= 0 {
		bindingTTL = 24 * time.Hour
	}
	return &PresenceRepo{
		redisClient: redisClient,
		bindingTTL:  bindingTTL,
	}
}

func onlineKey(role string) string {
	if role == models.RoleClient {
		return constants.KeyOnlineClients
	}
	return constants.KeyOnlineDrivers
}

// bindingValue packs the role into the hash value so the liveness sweep can
// apply the right offline cascade without a per-socket lookup
func bindingValue(userID, role string) string {
	return role + ":" + userID
}

func parseBinding(value string) models.SocketBinding {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return models.SocketBinding{UserID: value, Role: models.RoleDriver}
	}
	return models.SocketBinding{UserID: parts[1], Role: parts[0]}
}

// SetOnline marks a user online
func (r *PresenceRepo) SetOnline(ctx context.Context, userID, role string) error {
	if err := r.redisClient.SAdd(ctx, onlineKey(role), userID); err != nil {
		return fmt.Errorf("failed to set user online: %w", err)
	}
	return nil
}

// SetOffline marks a user offline. Absent users are a no-op.
func (r *PresenceRepo) SetOffline(ctx context.Context, userID, role string) error {
	if err := r.redisClient.SRem(ctx, onlineKey(role), userID); err != nil {
		return fmt.Errorf("failed to set user offline: %w", err)
	}
	return nil
}

// IsOnline reports online membership for a user
func (r *PresenceRepo) IsOnline(ctx context.Context, userID, role string) (bool, error) {
	online, err := r.redisClient.SIsMember(ctx, onlineKey(role), userID)
	if err != nil {
		return false, fmt.Errorf("failed to check online state: %w", err)
	}
	return online, nil
}

// BindSocket records the user's active socket. A previous binding is
// superseded, not errored: its reverse mapping is removed in the same atomic
// step. Closing the superseded transport is the caller's concern.
func (r *PresenceRepo) BindSocket(ctx context.Context, userID, role, socketID string) error {
	userKey := fmt.Sprintf(constants.KeyUserSocket, userID)
	ttlSec := int(r.bindingTTL.Seconds())

	keys := []string{userKey, constants.KeySocketBindings}
	if _, err := r.redisClient.Eval(ctx, bindScript, keys, socketID, bindingValue(userID, role), ttlSec); err != nil {
		return fmt.Errorf("failed to bind socket: %w", err)
	}
	return nil
}

// UnbindSocket removes the user's socket binding. Idempotent.
func (r *PresenceRepo) UnbindSocket(ctx context.Context, userID string) error {
	userKey := fmt.Sprintf(constants.KeyUserSocket, userID)

	keys := []string{userKey, constants.KeySocketBindings}
	if _, err := r.redisClient.Eval(ctx, unbindScript, keys); err != nil {
		return fmt.Errorf("failed to unbind socket: %w", err)
	}
	return nil
}

// SocketForUser resolves a user's active socket, or ErrNotFound
func (r *PresenceRepo) SocketForUser(ctx context.Context, userID string) (string, error) {
	socketID, err := r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyUserSocket, userID))
	if err == redis.Nil {
		return "", fmt.Errorf("user %s: %w", userID, dispatch.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve socket: %w", err)
	}
	return socketID, nil
}

// UserForSocket resolves the user bound to a socket, or ErrNotFound
func (r *PresenceRepo) UserForSocket(ctx context.Context, socketID string) (string, error) {
	values, err := r.redisClient.HMGet(ctx, constants.KeySocketBindings, socketID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve socket user: %w", err)
	}
	if len(values) == 0 || values[0] == "" {
		return "", fmt.Errorf("socket %s: %w", socketID, dispatch.ErrNotFound)
	}
	return parseBinding(values[0]).UserID, nil
}

// BoundSockets returns the socketID -> binding map for the liveness sweep
func (r *PresenceRepo) BoundSockets(ctx context.Context) (map[string]models.SocketBinding, error) {
	entries, err := r.redisClient.HGetAll(ctx, constants.KeySocketBindings)
	if err != nil {
		return nil, fmt.Errorf("failed to list socket bindings: %w", err)
	}

	bindings := make(map[string]models.SocketBinding, len(entries))
	for socketID, value := range entries {
		bindings[socketID] = parseBinding(value)
	}
	return bindings, nil
}
