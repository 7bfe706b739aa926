// Package usecase implements the portfolio membership business logic.
package usecase

import "stockwatch/internal/shared/apperr"

var (
	// ErrUserNotFound is returned when the referenced user is not registered.
	ErrUserNotFound = apperr.New(apperr.ErrNotFound, "user not found")

	// ErrStockNotFound is returned when the referenced stock is not in the catalog.
	ErrStockNotFound = apperr.New(apperr.ErrNotFound, "stock not found")

	// ErrMembershipNotFound is returned when the user does not hold the stock.
	ErrMembershipNotFound = apperr.New(apperr.ErrNotFound, "stock is not in portfolio")

	// ErrAlreadyInPortfolio is returned when the user already holds the stock.
	ErrAlreadyInPortfolio = apperr.New(apperr.ErrConflict, "stock already in portfolio")
)
