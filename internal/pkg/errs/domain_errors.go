package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Property errors
	ErrPropertyNotFound = errors.New("property not found")
	ErrPropertyInactive = errors.New("property is not active")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrDatesUnavailable = errors.New("requested dates are unavailable")
	ErrBookingConflict  = errors.New("booking conflict")
	ErrInvalidStayRange = errors.New("invalid stay range")
	ErrTooManyGuests    = errors.New("guest count exceeds property capacity")
	ErrStayTooShort     = errors.New("stay is shorter than the property minimum")

	// Pricing rule errors
	ErrPricingRuleNotFound = errors.New("pricing rule not found")
	ErrInvalidPricingRule  = errors.New("invalid pricing rule")

	// Price suggestion errors
	ErrSuggestionNotFound = errors.New("price suggestion not found")
	ErrSuggestionDecided  = errors.New("price suggestion already decided")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
