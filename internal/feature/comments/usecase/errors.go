// Package usecase implements the stock comment business logic.
package usecase

import "stockwatch/internal/shared/apperr"

var (
	// ErrStockNotFound is returned when the referenced stock is not in the catalog.
	ErrStockNotFound = apperr.New(apperr.ErrNotFound, "stock not found")

	// ErrCommentNotFound is returned when no comment matches the given id.
	ErrCommentNotFound = apperr.New(apperr.ErrNotFound, "comment not found")

	// ErrBlankTitle is returned when a comment title is empty or whitespace.
	ErrBlankTitle = apperr.New(apperr.ErrValidation, "title must not be blank")

	// ErrBlankContent is returned when a new comment has no content.
	ErrBlankContent = apperr.New(apperr.ErrValidation, "content must not be blank")
)
