package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// LicenseRepo resolves a driver's licensed service categories from Postgres
type LicenseRepo struct {
	db *sqlx.DB
}

// NewLicenseRepository creates a new license directory adapter
func NewLicenseRepository(db *sqlx.DB) *LicenseRepo {
	return &LicenseRepo{db: db}
}

// CategoriesFor returns the categories the driver holds a valid license for.
// A driver with no licenses gets an empty slice, not an error.
func (r *LicenseRepo) CategoriesFor(ctx context.Context, driverID string) ([]string, error) {
	query := `
		SELECT category
		FROM driver_licenses
		WHERE driver_id = $1
		  AND active = TRUE
		  AND (expires_at IS NULL OR expires_at > NOW())
		ORDER BY category
	`

	var categories []string
	if err := r.db.SelectContext(ctx, &categories, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to load driver licenses: %w", err)
	}

	return categories, nil
}
