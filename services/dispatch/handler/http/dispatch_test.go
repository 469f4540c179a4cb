package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/streetcab/dispatch/internal/pkg/models"
	"github.com/streetcab/dispatch/services/dispatch"
	"github.com/streetcab/dispatch/services/dispatch/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindNearestDrivers_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatchUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockDispatchUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dispatch/nearest?order_type=TAXI&latitude=43.2220&longitude=76.8512", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	drivers := []*models.NearbyDriver{
		{DriverID: "driver-1", DistanceM: 14.8},
	}
	mockDispatchUC.EXPECT().
		FindNearestDrivers(gomock.Any(), "TAXI", 43.2220, 76.8512, 0.0).
		Return(drivers, nil)

	// Act
	err := handler.FindNearestDrivers(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	data, ok := response["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "driver-1", first["driver_id"])
}

func TestFindNearestDrivers_MissingOrderType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatchUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockDispatchUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dispatch/nearest?latitude=43.2220&longitude=76.8512", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.FindNearestDrivers(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindNearestDrivers_InvalidCoordinate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatchUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockDispatchUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dispatch/nearest?order_type=TAXI&latitude=95.0&longitude=76.8512", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockDispatchUC.EXPECT().
		FindNearestDrivers(gomock.Any(), "TAXI", 95.0, 76.8512, 0.0).
		Return(nil, fmt.Errorf("lat out of range: %w", dispatch.ErrInvalidCoordinate))

	err := handler.FindNearestDrivers(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClaimOrder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatchUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockDispatchUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/orders/order-1/claim", strings.NewReader(`{"driver_id":"driver-1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orderID")
	c.SetParamValues("order-1")

	mockDispatchUC.EXPECT().Claim(gomock.Any(), "order-1", "driver-1").Return(nil)

	err := handler.ClaimOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClaimOrder_ContentionMapsToConflict(t *testing.T) {
	testCases := []struct {
		name    string
		claimed error
	}{
		{name: "Already Claimed", claimed: fmt.Errorf("order order-1: %w", dispatch.ErrAlreadyClaimed)},
		{name: "Driver Busy", claimed: fmt.Errorf("driver driver-1: %w", dispatch.ErrDriverBusy)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDispatchUC := mocks.NewMockDispatchUC(ctrl)
			handler := NewDispatchHandler(mockDispatchUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/orders/order-1/claim", strings.NewReader(`{"driver_id":"driver-1"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("orderID")
			c.SetParamValues("order-1")

			mockDispatchUC.EXPECT().Claim(gomock.Any(), "order-1", "driver-1").Return(tc.claimed)

			err := handler.ClaimOrder(c)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusConflict, rec.Code)
		})
	}
}

func TestClaimOrder_StorageUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatchUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockDispatchUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/orders/order-1/claim", strings.NewReader(`{"driver_id":"driver-1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orderID")
	c.SetParamValues("order-1")

	mockDispatchUC.EXPECT().
		Claim(gomock.Any(), "order-1", "driver-1").
		Return(fmt.Errorf("%w: redis timeout", dispatch.ErrStorageUnavailable))

	err := handler.ClaimOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestClaimOrder_UnknownOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatchUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockDispatchUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/orders/order-missing/claim", strings.NewReader(`{"driver_id":"driver-1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orderID")
	c.SetParamValues("order-missing")

	mockDispatchUC.EXPECT().
		Claim(gomock.Any(), "order-missing", "driver-1").
		Return(fmt.Errorf("order order-missing: %w", dispatch.ErrNotFound))

	err := handler.ClaimOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClaimOrder_MissingDriverID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatchUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockDispatchUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/orders/order-1/claim", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orderID")
	c.SetParamValues("order-1")

	err := handler.ClaimOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReleaseOrder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatchUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockDispatchUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/orders/order-1/release", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orderID")
	c.SetParamValues("order-1")

	mockDispatchUC.EXPECT().Release(gomock.Any(), "order-1").Return(nil)

	err := handler.ReleaseOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReleaseOrder_UnexpectedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDispatchUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockDispatchUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/orders/order-1/release", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orderID")
	c.SetParamValues("order-1")

	mockDispatchUC.EXPECT().Release(gomock.Any(), "order-1").Return(errors.New("boom"))

	err := handler.ReleaseOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
