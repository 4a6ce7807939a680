package constants

// NATS Subjects
const (
	// Booking events
	SubjectBookingCreated   = "booking.created"
	SubjectBookingPaid      = "booking.paid"
	SubjectBookingCancelled = "booking.cancelled"

	// Payment settlement collaborator
	SubjectPaymentSettled = "payment.settled"
)

// Queue groups
const (
	QueueGroupBookings = "bookings-service"
)
