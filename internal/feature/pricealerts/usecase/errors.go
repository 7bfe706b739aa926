// Package usecase implements the price alert business logic.
package usecase

import "stockwatch/internal/shared/apperr"

var (
	// ErrUserNotFound is returned when the referenced user is not registered.
	ErrUserNotFound = apperr.New(apperr.ErrNotFound, "user not found")

	// ErrStockNotFound is returned when the referenced stock is not in the catalog.
	ErrStockNotFound = apperr.New(apperr.ErrNotFound, "stock not found")

	// ErrAlertNotFound is returned when no alert matches the given id.
	ErrAlertNotFound = apperr.New(apperr.ErrNotFound, "price alert not found")

	// ErrInvalidTargetPrice is returned when the target price is not positive.
	ErrInvalidTargetPrice = apperr.New(apperr.ErrValidation, "target price must be greater than 0")

	// ErrTargetPriceScale is returned when the target price has more than two decimal places.
	ErrTargetPriceScale = apperr.New(apperr.ErrValidation, "target price must have at most 2 decimal places")

	// ErrInvalidAlertType is returned for an alert type other than above or below.
	ErrInvalidAlertType = apperr.New(apperr.ErrValidation, "alert type must be above or below")

	// ErrAlertInactive is returned when triggering an inactive alert.
	ErrAlertInactive = apperr.New(apperr.ErrValidation, "price alert is not active")

	// ErrInvalidTriggerTime is returned when the trigger time is zero.
	ErrInvalidTriggerTime = apperr.New(apperr.ErrValidation, "trigger time is required")
)
