package service

import "errors"

// Validation and lookup failures handlers map to 4xx responses.
// Anything else coming out of a service is a 500.
var (
	ErrMissingField     = errors.New("required field missing")
	ErrDuplicateEmail   = errors.New("email is already taken")
	ErrInvalidOTP       = errors.New("invalid otp")
	ErrEmailUnverified  = errors.New("email not verified")
	ErrAuthFailed       = errors.New("authentication failed")
	ErrUserNotFound     = errors.New("user not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidRating    = errors.New("rating must be an integer between 1 and 5")
	ErrNoChanges        = errors.New("no data provided to update")
	ErrPasswordMismatch = errors.New("passwords do not match")
)
