package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/ridenaija/ridenaija/internal/pkg/models"
	"github.com/ridenaija/ridenaija/services/bookings"
	"github.com/ridenaija/ridenaija/services/bookings/mocks"
)

func newBookingTestContext(method, path, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != uuid.Nil {
		c.Set("user_id", userID)
	}
	return c, rec
}

func TestCreateBooking_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	bookingHandler := NewBookingHandler(mockBookingUC)

	userID := uuid.New()
	tripID := uuid.New()
	bookingID := uuid.New()

	requestBody := `{"trip_id":"` + tripID.String() + `","seats":2,"notes":"window seat"}`
	c, rec := newBookingTestContext(http.MethodPost, "/api/bookings", requestBody, userID)

	mockBookingUC.EXPECT().
		Reserve(gomock.Any(), userID, gomock.Any()).
		Return(&models.BookingConfirmation{
			Booking:  &models.Booking{ID: bookingID, BookingReference: "RNJ-K7M2PQ-X"},
			Redirect: "/payment?booking_id=" + bookingID.String(),
		}, nil)

	err := bookingHandler.CreateBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "/payment?booking_id="+bookingID.String(), data["redirect"])
}

func TestCreateBooking_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	bookingHandler := NewBookingHandler(mockBookingUC)

	c, rec := newBookingTestContext(http.MethodPost, "/api/bookings", `{"seats":1}`, uuid.Nil)

	err := bookingHandler.CreateBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateBooking_ErrorMapping(t *testing.T) {
	userID := uuid.New()
	tripID := uuid.New()
	requestBody := `{"trip_id":"` + tripID.String() + `","seats":5}`

	testCases := []struct {
		name     string
		ucErr    error
		wantCode int
	}{
		{name: "trip not found", ucErr: bookings.ErrTripNotFound, wantCode: http.StatusNotFound},
		{name: "not bookable", ucErr: bookings.ErrTripNotBookable, wantCode: http.StatusBadRequest},
		{name: "insufficient seats", ucErr: &bookings.InsufficientSeatsError{Requested: 5, Available: 3}, wantCode: http.StatusBadRequest},
		{name: "concurrency conflict", ucErr: bookings.ErrConcurrencyConflict, wantCode: http.StatusConflict},
		{name: "internal", ucErr: assert.AnError, wantCode: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBookingUC := mocks.NewMockBookingUC(ctrl)
			bookingHandler := NewBookingHandler(mockBookingUC)

			c, rec := newBookingTestContext(http.MethodPost, "/api/bookings", requestBody, userID)

			mockBookingUC.EXPECT().
				Reserve(gomock.Any(), userID, gomock.Any()).
				Return(nil, tc.ucErr)

			err := bookingHandler.CreateBooking(c)

			assert.NoError(t, err)
			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestCreateBooking_InsufficientSeatsReportsAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	bookingHandler := NewBookingHandler(mockBookingUC)

	userID := uuid.New()
	requestBody := `{"trip_id":"` + uuid.New().String() + `","seats":5}`
	c, rec := newBookingTestContext(http.MethodPost, "/api/bookings", requestBody, userID)

	mockBookingUC.EXPECT().
		Reserve(gomock.Any(), userID, gomock.Any()).
		Return(nil, &bookings.InsufficientSeatsError{Requested: 5, Available: 3})

	err := bookingHandler.CreateBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "available 3")
}

func TestListUserBookings_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	bookingHandler := NewBookingHandler(mockBookingUC)

	userID := uuid.New()
	c, rec := newBookingTestContext(http.MethodGet, "/api/bookings", "", userID)

	mockBookingUC.EXPECT().
		ListUserBookings(gomock.Any(), userID).
		Return([]*models.Booking{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	err := bookingHandler.ListUserBookings(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["count"])
}

func TestGetBooking_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	bookingHandler := NewBookingHandler(mockBookingUC)

	userID := uuid.New()
	bookingID := uuid.New()

	c, rec := newBookingTestContext(http.MethodGet, "/api/bookings/"+bookingID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(bookingID.String())

	mockBookingUC.EXPECT().
		GetBooking(gomock.Any(), bookingID, userID).
		Return(&models.Booking{ID: bookingID}, nil)

	err := bookingHandler.GetBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetBooking_ForeignReadsAsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	bookingHandler := NewBookingHandler(mockBookingUC)

	userID := uuid.New()
	bookingID := uuid.New()

	c, rec := newBookingTestContext(http.MethodGet, "/api/bookings/"+bookingID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(bookingID.String())

	mockBookingUC.EXPECT().
		GetBooking(gomock.Any(), bookingID, userID).
		Return(nil, bookings.ErrBookingNotFound)

	err := bookingHandler.GetBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetBooking_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	bookingHandler := NewBookingHandler(mockBookingUC)

	c, rec := newBookingTestContext(http.MethodGet, "/api/bookings/nope", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("nope")

	err := bookingHandler.GetBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessPayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	bookingHandler := NewBookingHandler(mockBookingUC)

	userID := uuid.New()
	bookingID := uuid.New()

	requestBody := `{"booking_id":"` + bookingID.String() + `"}`
	c, rec := newBookingTestContext(http.MethodPost, "/api/payment/process", requestBody, userID)

	mockBookingUC.EXPECT().
		SettlePayment(gomock.Any(), bookingID, userID).
		Return(&models.PaymentReceipt{
			BookingReference: "RNJ-K7M2PQ-X",
			ReceiptNumber:    "RCT-W8HJ3QZM-F",
			TotalAmount:      3000000,
		}, nil)

	err := bookingHandler.ProcessPayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "/bookings", data["redirect"])
}

func TestProcessPayment_MissingBookingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	bookingHandler := NewBookingHandler(mockBookingUC)

	c, rec := newBookingTestContext(http.MethodPost, "/api/payment/process", `{}`, uuid.New())

	err := bookingHandler.ProcessPayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessPayment_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	bookingHandler := NewBookingHandler(mockBookingUC)

	userID := uuid.New()
	bookingID := uuid.New()

	requestBody := `{"booking_id":"` + bookingID.String() + `"}`
	c, rec := newBookingTestContext(http.MethodPost, "/api/payment/process", requestBody, userID)

	mockBookingUC.EXPECT().
		SettlePayment(gomock.Any(), bookingID, userID).
		Return(nil, bookings.ErrBookingNotFound)

	err := bookingHandler.ProcessPayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelBooking_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	bookingHandler := NewBookingHandler(mockBookingUC)

	userID := uuid.New()
	bookingID := uuid.New()

	c, rec := newBookingTestContext(http.MethodPost, "/api/bookings/"+bookingID.String()+"/cancel", "", userID)
	c.SetParamNames("id")
	c.SetParamValues(bookingID.String())

	mockBookingUC.EXPECT().
		CancelBooking(gomock.Any(), bookingID, userID).
		Return(&models.Booking{ID: bookingID, Status: models.BookingStatusCancelled}, nil)

	err := bookingHandler.CancelBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cancelled")
}

func TestCancelBooking_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name     string
		ucErr    error
		wantCode int
	}{
		{name: "not found", ucErr: bookings.ErrBookingNotFound, wantCode: http.StatusNotFound},
		{name: "already cancelled", ucErr: bookings.ErrBookingNotCancellable, wantCode: http.StatusBadRequest},
		{name: "conflict", ucErr: bookings.ErrConcurrencyConflict, wantCode: http.StatusConflict},
		{name: "internal", ucErr: assert.AnError, wantCode: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBookingUC := mocks.NewMockBookingUC(ctrl)
			bookingHandler := NewBookingHandler(mockBookingUC)

			userID := uuid.New()
			bookingID := uuid.New()

			c, rec := newBookingTestContext(http.MethodPost, "/api/bookings/"+bookingID.String()+"/cancel", "", userID)
			c.SetParamNames("id")
			c.SetParamValues(bookingID.String())

			mockBookingUC.EXPECT().
				CancelBooking(gomock.Any(), bookingID, userID).
				Return(nil, tc.ucErr)

			err := bookingHandler.CancelBooking(c)

			assert.NoError(t, err)
			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}
