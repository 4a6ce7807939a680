package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridenaija/ridenaija/internal/pkg/logger"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
	"github.com/ridenaija/ridenaija/services/bookings"
	"github.com/ridenaija/ridenaija/services/bookings/mocks"
)

func setupBookingUCTest(t *testing.T) (*BookingUC, *mocks.MockBookingRepo, *mocks.MockBookingGW, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	mockGW := mocks.NewMockBookingGW(ctrl)

	zapLogger, err := logger.NewZapLogger("bookings-test", models.LoggerConfig{Level: "error"}, nil)
	require.NoError(t, err)

	cfg := &models.Config{
		Booking: models.BookingConfig{MaxReserveAttempts: 2},
	}

	uc := NewBookingUC(mockRepo, mockGW, cfg, zapLogger)
	return uc, mockRepo, mockGW, ctrl
}

func TestReserve_Success(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupBookingUCTest(t)
	defer ctrl.Finish()

	passengerID := uuid.New()
	tripID := uuid.New()
	bookingID := uuid.New()

	mockRepo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking *models.Booking) error {
			assert.Equal(t, tripID, booking.TripID)
			assert.Equal(t, passengerID, booking.PassengerID)
			assert.Equal(t, 2, booking.Seats)
			assert.True(t, strings.HasPrefix(booking.BookingReference, "RNJ-"))
			assert.True(t, strings.HasPrefix(booking.ReceiptNumber, "RCT-"))

			booking.ID = bookingID
			booking.TotalPrice = 3000000
			booking.Status = models.BookingStatusConfirmed
			booking.PaymentStatus = models.PaymentStatusPending
			return nil
		})

	mockGW.EXPECT().
		PublishBookingCreated(gomock.Any(), gomock.Any()).
		Return(nil)

	confirmation, err := uc.Reserve(context.Background(), passengerID, &models.ReserveRequest{
		TripID: tripID,
		Seats:  2,
		Notes:  "window seat",
	})

	require.NoError(t, err)
	require.NotNil(t, confirmation)
	assert.Equal(t, bookingID, confirmation.Booking.ID)
	assert.Equal(t, "/payment?booking_id="+bookingID.String(), confirmation.Redirect)
}

func TestReserve_Validation(t *testing.T) {
	uc, _, _, ctrl := setupBookingUCTest(t)
	defer ctrl.Finish()

	_, err := uc.Reserve(context.Background(), uuid.New(), &models.ReserveRequest{Seats: 1})
	assert.Error(t, err, "missing trip ID must be rejected")

	_, err = uc.Reserve(context.Background(), uuid.New(), &models.ReserveRequest{TripID: uuid.New(), Seats: 0})
	assert.Error(t, err, "zero seats must be rejected")

	_, err = uc.Reserve(context.Background(), uuid.New(), &models.ReserveRequest{TripID: uuid.New(), Seats: -1})
	assert.Error(t, err, "negative seats must be rejected")
}

func TestReserve_RetriesOnConflictWithFreshReferences(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupBookingUCTest(t)
	defer ctrl.Finish()

	var firstRef string

	first := mockRepo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking *models.Booking) error {
			firstRef = booking.BookingReference
			return bookings.ErrConcurrencyConflict
		})

	mockRepo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		After(first).
		DoAndReturn(func(_ context.Context, booking *models.Booking) error {
			assert.NotEqual(t, firstRef, booking.BookingReference, "retry must use a fresh reference")
			booking.ID = uuid.New()
			return nil
		})

	mockGW.EXPECT().
		PublishBookingCreated(gomock.Any(), gomock.Any()).
		Return(nil)

	confirmation, err := uc.Reserve(context.Background(), uuid.New(), &models.ReserveRequest{
		TripID: uuid.New(),
		Seats:  1,
	})

	require.NoError(t, err)
	assert.NotNil(t, confirmation)
}

func TestReserve_ConflictBudgetExhausted(t *testing.T) {
	uc, mockRepo, _, ctrl := setupBookingUCTest(t)
	defer ctrl.Finish()

	// MaxReserveAttempts is 2, so the initial try plus 2 retries
	mockRepo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		Times(3).
		Return(bookings.ErrConcurrencyConflict)

	confirmation, err := uc.Reserve(context.Background(), uuid.New(), &models.ReserveRequest{
		TripID: uuid.New(),
		Seats:  1,
	})

	assert.ErrorIs(t, err, bookings.ErrConcurrencyConflict)
	assert.Nil(t, confirmation)
}

func TestReserve_InsufficientSeatsNotRetried(t *testing.T) {
	uc, mockRepo, _, ctrl := setupBookingUCTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		Times(1).
		Return(&bookings.InsufficientSeatsError{Requested: 5, Available: 3})

	confirmation, err := uc.Reserve(context.Background(), uuid.New(), &models.ReserveRequest{
		TripID: uuid.New(),
		Seats:  5,
	})

	var insufficient *bookings.InsufficientSeatsError
	assert.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 3, insufficient.Available)
	assert.Nil(t, confirmation)
}

func TestReserve_TripNotFoundNotRetried(t *testing.T) {
	uc, mockRepo, _, ctrl := setupBookingUCTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		Times(1).
		Return(bookings.ErrTripNotFound)

	_, err := uc.Reserve(context.Background(), uuid.New(), &models.ReserveRequest{
		TripID: uuid.New(),
		Seats:  1,
	})

	assert.ErrorIs(t, err, bookings.ErrTripNotFound)
}

func TestReserve_PublishFailureDoesNotFailBooking(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupBookingUCTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking *models.Booking) error {
			booking.ID = uuid.New()
			return nil
		})

	mockGW.EXPECT().
		PublishBookingCreated(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	confirmation, err := uc.Reserve(context.Background(), uuid.New(), &models.ReserveRequest{
		TripID: uuid.New(),
		Seats:  1,
	})

	assert.NoError(t, err)
	assert.NotNil(t, confirmation)
}

func TestReserve_SanitizesNotes(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupBookingUCTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking *models.Booking) error {
			assert.Equal(t, "window seat please", booking.Notes)
			booking.ID = uuid.New()
			return nil
		})

	mockGW.EXPECT().
		PublishBookingCreated(gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := uc.Reserve(context.Background(), uuid.New(), &models.ReserveRequest{
		TripID: uuid.New(),
		Seats:  1,
		Notes:  "  window\tseat\nplease ",
	})

	assert.NoError(t, err)
}

func TestGetBooking_PassesThrough(t *testing.T) {
	uc, mockRepo, _, ctrl := setupBookingUCTest(t)
	defer ctrl.Finish()

	bookingID := uuid.New()
	passengerID := uuid.New()

	mockRepo.EXPECT().
		GetBooking(gomock.Any(), bookingID, passengerID).
		Return(&models.Booking{ID: bookingID}, nil)

	booking, err := uc.GetBooking(context.Background(), bookingID, passengerID)
	require.NoError(t, err)
	assert.Equal(t, bookingID, booking.ID)
}

func TestListUserBookings_PassesThrough(t *testing.T) {
	uc, mockRepo, _, ctrl := setupBookingUCTest(t)
	defer ctrl.Finish()

	passengerID := uuid.New()

	mockRepo.EXPECT().
		ListUserBookings(gomock.Any(), passengerID).
		Return([]*models.Booking{{ID: uuid.New()}}, nil)

	bookingList, err := uc.ListUserBookings(context.Background(), passengerID)
	require.NoError(t, err)
	assert.Len(t, bookingList, 1)
}

func TestCancelBooking_Success(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupBookingUCTest(t)
	defer ctrl.Finish()

	bookingID := uuid.New()
	passengerID := uuid.New()

	mockRepo.EXPECT().
		CancelBooking(gomock.Any(), bookingID, passengerID).
		Return(&models.Booking{
			ID:               bookingID,
			PassengerID:      passengerID,
			Seats:            2,
			Status:           models.BookingStatusCancelled,
			BookingReference: "RNJ-K7M2PQ-X",
		}, nil)

	mockGW.EXPECT().
		PublishBookingCancelled(gomock.Any(), gomock.Any()).
		Return(nil)

	booking, err := uc.CancelBooking(context.Background(), bookingID, passengerID)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, booking.Status)
}

func TestCancelBooking_NotFoundPassesThrough(t *testing.T) {
	uc, mockRepo, _, ctrl := setupBookingUCTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		CancelBooking(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, bookings.ErrBookingNotFound)

	booking, err := uc.CancelBooking(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, bookings.ErrBookingNotFound)
	assert.Nil(t, booking)
}

func TestCancelBooking_PublishFailureDoesNotFailCancel(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupBookingUCTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		CancelBooking(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.Booking{ID: uuid.New(), Status: models.BookingStatusCancelled}, nil)

	mockGW.EXPECT().
		PublishBookingCancelled(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	booking, err := uc.CancelBooking(context.Background(), uuid.New(), uuid.New())

	assert.NoError(t, err)
	assert.NotNil(t, booking)
}
