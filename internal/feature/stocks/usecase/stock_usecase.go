package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"stockwatch/internal/feature/stocks/domain/entity"
	"stockwatch/internal/shared/apperr"
)

// StockRepository abstracts the persistence layer for the stock catalog.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type StockRepository interface {
	// Create persists s and assigns its ID. It returns ErrSymbolTaken when the symbol is
	// already registered; the check is made by the store itself.
	Create(ctx context.Context, s *entity.Stock) error
	// FindByID returns ErrStockNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.Stock, error)
	// FindBySymbol is an exact, case-sensitive match. It returns ErrStockNotFound when absent.
	FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error)
	List(ctx context.Context) ([]entity.Stock, error)
	ListByIndustry(ctx context.Context, industry string) ([]entity.Stock, error)
	SearchByCompanyName(ctx context.Context, fragment string) ([]entity.Stock, error)
	// Update writes every mutable field of s. It returns ErrStockNotFound when the row is gone.
	Update(ctx context.Context, s *entity.Stock) error
	// Delete returns ErrStockNotFound when nothing was deleted.
	Delete(ctx context.Context, id uint) error
	// ExistsByID always reads the store; implementations must not serve it from a cache.
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// StockUsecase provides the stock catalog operations.
type StockUsecase struct {
	repo StockRepository
}

// NewStockUsecase creates a new StockUsecase with the given repository.
func NewStockUsecase(r StockRepository) *StockUsecase {
	return &StockUsecase{repo: r}
}

// Create registers a new stock.
func (u *StockUsecase) Create(ctx context.Context, in entity.NewStock) (*entity.Stock, error) {
	if err := validateNewStock(in); err != nil {
		return nil, err
	}

	s := &entity.Stock{
		Symbol:      in.Symbol,
		CompanyName: in.CompanyName,
		Purchase:    in.Purchase,
		LastDiv:     in.LastDiv,
		Industry:    in.Industry,
		MarketCap:   in.MarketCap,
	}
	if err := u.repo.Create(ctx, s); err != nil {
		if errors.Is(err, ErrSymbolTaken) {
			return nil, fmt.Errorf("%w: %s", ErrSymbolTaken, in.Symbol)
		}
		return nil, err
	}
	slog.Info("stock created", "id", s.ID, "symbol", s.Symbol)
	return s, nil
}

// GetByID returns the stock with the given id.
func (u *StockUsecase) GetByID(ctx context.Context, id uint) (*entity.Stock, error) {
	return u.repo.FindByID(ctx, id)
}

// GetBySymbol returns the stock with exactly the given symbol.
func (u *StockUsecase) GetBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	return u.repo.FindBySymbol(ctx, symbol)
}

// ListAll returns every stock in the catalog.
func (u *StockUsecase) ListAll(ctx context.Context) ([]entity.Stock, error) {
	return u.repo.List(ctx)
}

// ListByIndustry returns the stocks whose industry equals industry exactly.
func (u *StockUsecase) ListByIndustry(ctx context.Context, industry string) ([]entity.Stock, error) {
	return u.repo.ListByIndustry(ctx, industry)
}

// SearchByCompanyName returns the stocks whose company name contains fragment, ignoring case.
func (u *StockUsecase) SearchByCompanyName(ctx context.Context, fragment string) ([]entity.Stock, error) {
	return u.repo.SearchByCompanyName(ctx, fragment)
}

// Update applies a merge-patch to the stock with the given id.
func (u *StockUsecase) Update(ctx context.Context, id uint, patch entity.StockPatch) (*entity.Stock, error) {
	s, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return s, nil
	}

	s.Apply(patch)
	if err := u.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Delete removes the stock. Portfolio memberships, alerts and comments that
// reference it are left in place.
func (u *StockUsecase) Delete(ctx context.Context, id uint) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("stock deleted", "id", id)
	return nil
}

// Exists reports whether a stock with the given id is registered.
// Portfolio and alert creation rely on it, so it bypasses any lookup cache.
func (u *StockUsecase) Exists(ctx context.Context, id uint) (bool, error) {
	return u.repo.ExistsByID(ctx, id)
}

func validateNewStock(in entity.NewStock) error {
	if strings.TrimSpace(in.Symbol) == "" {
		return apperr.Validation("symbol is required")
	}
	if utf8.RuneCountInString(in.Symbol) > entity.MaxSymbolLength {
		return apperr.Validation(fmt.Sprintf("symbol must be at most %d characters", entity.MaxSymbolLength))
	}
	if strings.TrimSpace(in.CompanyName) == "" {
		return apperr.Validation("company name is required")
	}
	return validateAmounts(&in.Purchase, &in.LastDiv, in.MarketCap)
}

func validatePatch(p entity.StockPatch) error {
	if p.CompanyName != nil && strings.TrimSpace(*p.CompanyName) == "" {
		return apperr.Validation("company name must not be blank")
	}
	return validateAmounts(p.Purchase, p.LastDiv, p.MarketCap)
}

func validateAmounts(purchase, lastDiv *decimal.Decimal, marketCap *int64) error {
	if purchase != nil && !purchase.IsPositive() {
		return apperr.Validation("purchase price must be greater than 0")
	}
	if lastDiv != nil && lastDiv.IsNegative() {
		return apperr.Validation("last dividend cannot be negative")
	}
	if (purchase != nil && !entity.FitsPriceScale(*purchase)) || (lastDiv != nil && !entity.FitsPriceScale(*lastDiv)) {
		return apperr.Validation(fmt.Sprintf("amounts must have at most %d decimal places", entity.PriceScale))
	}
	if marketCap != nil && *marketCap < 0 {
		return apperr.Validation("market cap cannot be negative")
	}
	return nil
}
