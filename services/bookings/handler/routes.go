package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/ridenaija/ridenaija/internal/pkg/middleware"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
	"github.com/ridenaija/ridenaija/services/bookings/handler/http"
	"github.com/ridenaija/ridenaija/services/bookings/handler/nats"
)

// Handler coordinates the HTTP and NATS handlers for the bookings service
type Handler struct {
	bookingHandler *http.BookingHandler
	natsHandler    *nats.NatsHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	bookingHandler *http.BookingHandler,
	natsHandler *nats.NatsHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		bookingHandler: bookingHandler,
		natsHandler:    natsHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the booking routes and starts the NATS consumers.
// All booking routes require authentication; reservation creation is
// additionally rate limited per passenger.
func (h *Handler) RegisterRoutes(e *echo.Echo, redisClient *redis.Client) error {
	jwtMiddleware := middleware.JWTAuthMiddleware(h.cfg.JWT)

	rateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient,
		Key:         "ratelimit:bookings",
		Limit:       h.cfg.Booking.RateLimit,
		Period:      time.Duration(h.cfg.Booking.RateLimitPeriodSec) * time.Second,
	})

	bookingGroup := e.Group("/api/bookings", jwtMiddleware)
	bookingGroup.POST("", h.bookingHandler.CreateBooking, rateLimiter)
	bookingGroup.GET("", h.bookingHandler.ListUserBookings)
	bookingGroup.GET("/:id", h.bookingHandler.GetBooking)
	bookingGroup.POST("/:id/cancel", h.bookingHandler.CancelBooking)

	paymentGroup := e.Group("/api/payment", jwtMiddleware)
	paymentGroup.POST("/process", h.bookingHandler.ProcessPayment)

	return h.natsHandler.InitConsumers()
}

// Close drains the NATS consumers
func (h *Handler) Close() {
	h.natsHandler.Close()
}
