package utils

import "errors"

var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrTripNotFound       = errors.New("trip not found")
	ErrItineraryNotFound  = errors.New("itinerary not found")
	ErrStopNotFound       = errors.New("stop not found")
	ErrItemNotFound       = errors.New("itinerary item not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidState       = errors.New("invalid itinerary state")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
)
