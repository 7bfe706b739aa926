package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"stockwatch/internal/feature/portfolio/domain/entity"
)

// MembershipRepository abstracts the persistence layer for portfolio memberships.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MembershipRepository interface {
	// Create inserts m unless the key is already present, in which case it returns
	// ErrAlreadyInPortfolio. The check is made by the store itself.
	Create(ctx context.Context, m *entity.Membership) error
	// Delete returns ErrMembershipNotFound when nothing was deleted.
	Delete(ctx context.Context, key entity.MembershipKey) error
	ListByUser(ctx context.Context, userID string) ([]entity.Membership, error)
	ListByStock(ctx context.Context, stockID uint) ([]entity.Membership, error)
	Exists(ctx context.Context, key entity.MembershipKey) (bool, error)
}

// UserLookup reports whether a user is registered.
type UserLookup interface {
	UserExists(ctx context.Context, userID string) (bool, error)
}

// StockLookup reports whether a stock is in the catalog.
type StockLookup interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// PortfolioUsecase provides the portfolio membership operations.
type PortfolioUsecase struct {
	repo   MembershipRepository
	users  UserLookup
	stocks StockLookup
}

// NewPortfolioUsecase creates a new PortfolioUsecase.
func NewPortfolioUsecase(repo MembershipRepository, users UserLookup, stocks StockLookup) *PortfolioUsecase {
	return &PortfolioUsecase{repo: repo, users: users, stocks: stocks}
}

// Add puts the stock into the user's portfolio.
// The user is checked before the stock, so a request naming neither reports the user.
func (u *PortfolioUsecase) Add(ctx context.Context, userID string, stockID uint) (*entity.Membership, error) {
	if err := u.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	ok, err := u.stocks.Exists(ctx, stockID)
	if err != nil {
		return nil, fmt.Errorf("check stock %d: %w", stockID, err)
	}
	if !ok {
		return nil, ErrStockNotFound
	}

	m := &entity.Membership{UserID: userID, StockID: stockID}
	if err := u.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	slog.Info("portfolio stock added", "user_id", userID, "stock_id", stockID)
	return m, nil
}

// Remove takes the stock out of the user's portfolio.
func (u *PortfolioUsecase) Remove(ctx context.Context, userID string, stockID uint) error {
	if err := u.repo.Delete(ctx, entity.MembershipKey{UserID: userID, StockID: stockID}); err != nil {
		return err
	}
	slog.Info("portfolio stock removed", "user_id", userID, "stock_id", stockID)
	return nil
}

// ListForUser returns the memberships of a registered user.
func (u *PortfolioUsecase) ListForUser(ctx context.Context, userID string) ([]entity.Membership, error) {
	if err := u.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return u.repo.ListByUser(ctx, userID)
}

// ListForStock returns the memberships that reference stockID.
// The stock is not checked, so a deleted stock can still list its orphans.
func (u *PortfolioUsecase) ListForStock(ctx context.Context, stockID uint) ([]entity.Membership, error) {
	return u.repo.ListByStock(ctx, stockID)
}

// Exists reports whether the user holds the stock. Store failures are logged
// and reported as false.
func (u *PortfolioUsecase) Exists(ctx context.Context, userID string, stockID uint) bool {
	ok, err := u.repo.Exists(ctx, entity.MembershipKey{UserID: userID, StockID: stockID})
	if err != nil {
		slog.Error("portfolio exists check failed", "error", err, "user_id", userID, "stock_id", stockID)
		return false
	}
	return ok
}

func (u *PortfolioUsecase) requireUser(ctx context.Context, userID string) error {
	ok, err := u.users.UserExists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user %s: %w", userID, err)
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}
