package trips

import "errors"

// ErrTripNotFound is returned when a trip lookup finds nothing.
var ErrTripNotFound = errors.New("trip not found")
