package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/ridenaija/ridenaija/internal/pkg/models"
	"github.com/ridenaija/ridenaija/services/trips"
	"github.com/ridenaija/ridenaija/services/trips/mocks"
)

func TestSearchTrips_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTripUC := mocks.NewMockTripUC(ctrl)
	tripHandler := NewTripHandler(mockTripUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/trips?from=Lagos&to=Abuja", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockTripUC.EXPECT().
		SearchTrips(gomock.Any(), &models.TripFilter{From: "Lagos", To: "Abuja"}).
		Return([]*models.Trip{{ID: uuid.New()}}, nil)

	err := tripHandler.SearchTrips(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])
}

func TestGetTrip_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTripUC := mocks.NewMockTripUC(ctrl)
	tripHandler := NewTripHandler(mockTripUC)

	tripID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/trips/"+tripID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(tripID.String())

	mockTripUC.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, FromLocation: "Lagos"}, nil)

	err := tripHandler.GetTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTrip_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTripUC := mocks.NewMockTripUC(ctrl)
	tripHandler := NewTripHandler(mockTripUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/trips/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := tripHandler.GetTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTrip_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTripUC := mocks.NewMockTripUC(ctrl)
	tripHandler := NewTripHandler(mockTripUC)

	tripID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/trips/"+tripID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(tripID.String())

	mockTripUC.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(nil, trips.ErrTripNotFound)

	err := tripHandler.GetTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTripUC := mocks.NewMockTripUC(ctrl)
	tripHandler := NewTripHandler(mockTripUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cities", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockTripUC.EXPECT().
		Cities().
		Return([]models.City{{ID: 1, Name: "Lagos"}})

	err := tripHandler.GetCities(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTripUC := mocks.NewMockTripUC(ctrl)
	tripHandler := NewTripHandler(mockTripUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/routes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockTripUC.EXPECT().
		Routes().
		Return([]models.Route{{From: "Lagos", To: "Abuja"}})

	err := tripHandler.GetRoutes(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
