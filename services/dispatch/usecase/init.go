package usecase

import (
	"github.com/streetcab/dispatch/internal/pkg/models"
	"github.com/streetcab/dispatch/services/dispatch"
)

// DispatchUC implements the dispatch coordinator and its supporting flows
type DispatchUC struct {
	cfg        *models.Config
	geoRepo    dispatch.GeoRepo
	presence   dispatch.PresenceRepo
	claims     dispatch.ClaimRepo
	orders     dispatch.OrderRepo
	licenses   dispatch.LicenseRepo
	dispatchGW dispatch.DispatchGW
}

// NewDispatchUC creates a new dispatch use case
func NewDispatchUC(
	cfg *models.Config,
	geoRepo dispatch.GeoRepo,
	presence dispatch.PresenceRepo,
	claims dispatch.ClaimRepo,
	orders dispatch.OrderRepo,
	licenses dispatch.LicenseRepo,
	dispatchGW dispatch.DispatchGW,
) *DispatchUC {
	return &DispatchUC{
		cfg:        cfg,
		geoRepo:    geoRepo,
		presence:   presence,
		claims:     claims,
		orders:     orders,
		licenses:   licenses,
		dispatchGW: dispatchGW,
	}
}
