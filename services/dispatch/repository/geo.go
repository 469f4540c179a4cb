package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/streetcab/dispatch/internal/pkg/constants"
	"github.com/streetcab/dispatch/internal/pkg/database"
	"github.com/streetcab/dispatch/internal/pkg/models"
	"github.com/streetcab/dispatch/internal/utils"
	"github.com/streetcab/dispatch/services/dispatch"
)

// locationTTL bounds how long a last-known position survives without updates
const locationTTL = 24 * time.Hour

// GeoRepo implements the geo index over Redis geospatial sorted sets:
// one GEO set per category plus a per-driver last-known-position hash and a
// last-seen sorted set driving the staleness sweep.
type GeoRepo struct {
	redisClient *database.RedisClient
}

// NewGeoRepository creates a new geo index repository
func NewGeoRepository(redisClient *database.RedisClient) *GeoRepo {
	return &GeoRepo{redisClient: redisClient}
}

// UpsertPosition inserts or overwrites a driver's position in a category set.
// The geo entry, the location hash and the last-seen score are written in one
// transactional pipeline so a driver is never half-indexed.
func (r *GeoRepo) UpsertPosition(ctx context.Context, category, driverID string, latitude, longitude float64) error {
	if !utils.ValidCoordinate(latitude, longitude) {
		return fmt.Errorf("%w: lat=%f lng=%f", dispatch.ErrInvalidCoordinate, latitude, longitude)
	}

	now := time.Now()
	geoKey := fmt.Sprintf(constants.KeyCategoryGeo, category)
	locationKey := fmt.Sprintf(constants.KeyDriverLocation, driverID)

	opCtx, cancel := r.redisClient.WithTimeout(ctx)
	defer cancel()

	pipe := r.redisClient.TxPipeline()
	pipe.GeoAdd(opCtx, geoKey, &redis.GeoLocation{
		Longitude: longitude,
		Latitude:  latitude,
		Name:      driverID,
	})
	pipe.HSet(opCtx, locationKey, map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(longitude, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(now.Unix(), 10),
	})
	pipe.Expire(opCtx, locationKey, locationTTL)
	pipe.ZAdd(opCtx, constants.KeyDriverSeen, &redis.Z{Score: float64(now.Unix()), Member: driverID})

	if _, err := pipe.Exec(opCtx); err != nil {
		return fmt.Errorf("failed to upsert driver position: %w", err)
	}

	return nil
}

// RecordPosition refreshes a driver's last-known position and last-seen score
// without touching any category geo set. Used while a driver is committed to
// an order and must stay invisible to pending matches.
func (r *GeoRepo) RecordPosition(ctx context.Context, driverID string, latitude, longitude float64) error {
	if !utils.ValidCoordinate(latitude, longitude) {
		return fmt.Errorf("%w: lat=%f lng=%f", dispatch.ErrInvalidCoordinate, latitude, longitude)
	}

	now := time.Now()
	locationKey := fmt.Sprintf(constants.KeyDriverLocation, driverID)

	opCtx, cancel := r.redisClient.WithTimeout(ctx)
	defer cancel()

	pipe := r.redisClient.TxPipeline()
	pipe.HSet(opCtx, locationKey, map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(longitude, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(now.Unix(), 10),
	})
	pipe.Expire(opCtx, locationKey, locationTTL)
	pipe.ZAdd(opCtx, constants.KeyDriverSeen, &redis.Z{Score: float64(now.Unix()), Member: driverID})

	if _, err := pipe.Exec(opCtx); err != nil {
		return fmt.Errorf("failed to record driver position: %w", err)
	}

	return nil
}

// RemovePosition removes a driver from a category set. Removing an absent
// driver is a no-op.
func (r *GeoRepo) RemovePosition(ctx context.Context, category, driverID string) error {
	geoKey := fmt.Sprintf(constants.KeyCategoryGeo, category)
	if err := r.redisClient.ZRem(ctx, geoKey, driverID); err != nil {
		return fmt.Errorf("failed to remove driver from geo index: %w", err)
	}
	return nil
}

// RemoveFromAllCategories drops a driver from every category set
func (r *GeoRepo) RemoveFromAllCategories(ctx context.Context, driverID string) error {
	opCtx, cancel := r.redisClient.WithTimeout(ctx)
	defer cancel()

	pipe := r.redisClient.TxPipeline()
	for _, category := range models.OrderTypes {
		pipe.ZRem(opCtx, fmt.Sprintf(constants.KeyCategoryGeo, category), driverID)
	}

	if _, err := pipe.Exec(opCtx); err != nil {
		return fmt.Errorf("failed to remove driver from geo index: %w", err)
	}
	return nil
}

// QueryNearest returns up to limit drivers within radiusM of the query point,
// nearest first. Distances are exact haversine values from the stored coords.
func (r *GeoRepo) QueryNearest(ctx context.Context, category string, latitude, longitude, radiusM float64, limit int) ([]*models.NearbyDriver, error) {
	if !utils.ValidCoordinate(latitude, longitude) {
		return nil, fmt.Errorf("%w: lat=%f lng=%f", dispatch.ErrInvalidCoordinate, latitude, longitude)
	}

	geoKey := fmt.Sprintf(constants.KeyCategoryGeo, category)
	locations, err := r.redisClient.GeoRadius(ctx, geoKey, longitude, latitude, radiusM, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index: %w", err)
	}

	origin := utils.GeoPoint{Latitude: latitude, Longitude: longitude}
	drivers := make([]*models.NearbyDriver, 0, len(locations))
	for _, loc := range locations {
		drivers = append(drivers, &models.NearbyDriver{
			DriverID: loc.Name,
			Location: models.Location{
				Latitude:  loc.Latitude,
				Longitude: loc.Longitude,
			},
			DistanceM: utils.CalculateDistanceM(origin, utils.GeoPoint{
				Latitude:  loc.Latitude,
				Longitude: loc.Longitude,
			}),
		})
	}

	return drivers, nil
}

// LastKnownPosition returns the driver's last stored position, or ErrNotFound
func (r *GeoRepo) LastKnownPosition(ctx context.Context, driverID string) (*models.DriverPosition, error) {
	locationKey := fmt.Sprintf(constants.KeyDriverLocation, driverID)

	values, err := r.redisClient.HMGet(ctx, locationKey,
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldTimestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver position: %w", err)
	}

	if len(values) != 3 || values[0] == "" || values[1] == "" {
		return nil, fmt.Errorf("driver %s: %w", driverID, dispatch.ErrNotFound)
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}
	ts, err := strconv.ParseInt(values[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	return &models.DriverPosition{
		DriverID:      driverID,
		Latitude:      lat,
		Longitude:     lng,
		LastUpdatedAt: time.Unix(ts, 0),
	}, nil
}

// StaleDrivers returns drivers whose last position update predates olderThan
func (r *GeoRepo) StaleDrivers(ctx context.Context, olderThan time.Time) ([]string, error) {
	max := strconv.FormatInt(olderThan.Unix(), 10)
	drivers, err := r.redisClient.ZRangeByScore(ctx, constants.KeyDriverSeen, "-inf", max)
	if err != nil {
		return nil, fmt.Errorf("failed to scan stale drivers: %w", err)
	}
	return drivers, nil
}

// ForgetDriver drops the last-known position and the last-seen entry.
// Used by the staleness sweep after the geo sets are cleared.
func (r *GeoRepo) ForgetDriver(ctx context.Context, driverID string) error {
	locationKey := fmt.Sprintf(constants.KeyDriverLocation, driverID)

	opCtx, cancel := r.redisClient.WithTimeout(ctx)
	defer cancel()

	pipe := r.redisClient.TxPipeline()
	pipe.Del(opCtx, locationKey)
	pipe.ZRem(opCtx, constants.KeyDriverSeen, driverID)

	if _, err := pipe.Exec(opCtx); err != nil {
		return fmt.Errorf("failed to forget driver: %w", err)
	}
	return nil
}
