// Package usecase implements the stock catalog business logic.
package usecase

import "stockwatch/internal/shared/apperr"

var (
	// ErrStockNotFound is returned when no stock matches the given id or symbol.
	ErrStockNotFound = apperr.New(apperr.ErrNotFound, "stock not found")

	// ErrSymbolTaken is returned when a stock with the same symbol is already registered.
	ErrSymbolTaken = apperr.New(apperr.ErrConflict, "stock symbol already exists")
)
