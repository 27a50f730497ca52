package utils

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrPlaceNotFound   = errors.New("place not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrAmenityNotFound = errors.New("amenity not found")
	ErrOwnerNotFound   = errors.New("owner not found")

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrDuplicateAmenity   = errors.New("amenity name already exists")
	ErrAlreadyReviewed    = errors.New("user has already reviewed this place")
	ErrOwnPlaceReview     = errors.New("cannot review your own place")

	ErrValidation    = errors.New("validation error")
	ErrDatabaseError = errors.New("database error")
)
