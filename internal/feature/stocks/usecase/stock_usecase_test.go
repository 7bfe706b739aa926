package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockwatch/internal/feature/stocks/domain/entity"
	"stockwatch/internal/feature/stocks/usecase"
	"stockwatch/internal/shared/apperr"
)

// mockStockRepository はStockRepositoryインターフェースのモック実装です。
type mockStockRepository struct {
	CreateFunc              func(ctx context.Context, s *entity.Stock) error
	FindByIDFunc            func(ctx context.Context, id uint) (*entity.Stock, error)
	FindBySymbolFunc        func(ctx context.Context, symbol string) (*entity.Stock, error)
	ListFunc                func(ctx context.Context) ([]entity.Stock, error)
	ListByIndustryFunc      func(ctx context.Context, industry string) ([]entity.Stock, error)
	SearchByCompanyNameFunc func(ctx context.Context, fragment string) ([]entity.Stock, error)
	UpdateFunc              func(ctx context.Context, s *entity.Stock) error
	DeleteFunc              func(ctx context.Context, id uint) error
	ExistsByIDFunc          func(ctx context.Context, id uint) (bool, error)
}

func (m *mockStockRepository) Create(ctx context.Context, s *entity.Stock) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return nil
}

func (m *mockStockRepository) FindByID(ctx context.Context, id uint) (*entity.Stock, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, usecase.ErrStockNotFound
}

func (m *mockStockRepository) FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	if m.FindBySymbolFunc != nil {
		return m.FindBySymbolFunc(ctx, symbol)
	}
	return nil, usecase.ErrStockNotFound
}

func (m *mockStockRepository) List(ctx context.Context) ([]entity.Stock, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockStockRepository) ListByIndustry(ctx context.Context, industry string) ([]entity.Stock, error) {
	if m.ListByIndustryFunc != nil {
		return m.ListByIndustryFunc(ctx, industry)
	}
	return nil, nil
}

func (m *mockStockRepository) SearchByCompanyName(ctx context.Context, fragment string) ([]entity.Stock, error) {
	if m.SearchByCompanyNameFunc != nil {
		return m.SearchByCompanyNameFunc(ctx, fragment)
	}
	return nil, nil
}

func (m *mockStockRepository) Update(ctx context.Context, s *entity.Stock) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockStockRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockStockRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return false, nil
}

func ptr[T any](v T) *T { return &v }

func acme() *entity.Stock {
	return &entity.Stock{
		ID:          1,
		Symbol:      "ACME",
		CompanyName: "Acme Co",
		Purchase:    decimal.RequireFromString("10.00"),
		LastDiv:     decimal.RequireFromString("0.50"),
		Industry:    ptr("Manufacturing"),
	}
}

// TestStockUsecase_Create は銘柄登録のバリデーションと重複時の挙動を検証します。
func TestStockUsecase_Create(t *testing.T) {
	t.Parallel()

	valid := entity.NewStock{
		Symbol:      "ACME",
		CompanyName: "Acme Co",
		Purchase:    decimal.RequireFromString("10.00"),
		LastDiv:     decimal.RequireFromString("0.50"),
	}

	tests := []struct {
		name       string
		in         func() entity.NewStock
		createFunc func(ctx context.Context, s *entity.Stock) error
		wantKind   error
		wantErrIs  error
		wantCalled bool
	}{
		{
			name:       "success: assigns id from repository",
			in:         func() entity.NewStock { return valid },
			createFunc: func(ctx context.Context, s *entity.Stock) error { s.ID = 7; return nil },
			wantCalled: true,
		},
		{
			name: "failure: blank symbol",
			in: func() entity.NewStock {
				v := valid
				v.Symbol = "   "
				return v
			},
			wantKind: apperr.ErrValidation,
		},
		{
			name: "failure: symbol longer than 10 characters",
			in: func() entity.NewStock {
				v := valid
				v.Symbol = "ABCDEFGHIJK"
				return v
			},
			wantKind: apperr.ErrValidation,
		},
		{
			name: "failure: blank company name",
			in: func() entity.NewStock {
				v := valid
				v.CompanyName = ""
				return v
			},
			wantKind: apperr.ErrValidation,
		},
		{
			name: "failure: zero purchase price",
			in: func() entity.NewStock {
				v := valid
				v.Purchase = decimal.Zero
				return v
			},
			wantKind: apperr.ErrValidation,
		},
		{
			name: "failure: negative last dividend",
			in: func() entity.NewStock {
				v := valid
				v.LastDiv = decimal.RequireFromString("-0.01")
				return v
			},
			wantKind: apperr.ErrValidation,
		},
		{
			name: "failure: purchase below storable precision",
			in: func() entity.NewStock {
				v := valid
				v.Purchase = decimal.RequireFromString("0.001")
				return v
			},
			wantKind: apperr.ErrValidation,
		},
		{
			name: "failure: last dividend with three decimal places",
			in: func() entity.NewStock {
				v := valid
				v.LastDiv = decimal.RequireFromString("0.505")
				return v
			},
			wantKind: apperr.ErrValidation,
		},
		{
			name: "failure: negative market cap",
			in: func() entity.NewStock {
				v := valid
				v.MarketCap = ptr(int64(-1))
				return v
			},
			wantKind: apperr.ErrValidation,
		},
		{
			name:       "failure: symbol already registered",
			in:         func() entity.NewStock { return valid },
			createFunc: func(ctx context.Context, s *entity.Stock) error { return usecase.ErrSymbolTaken },
			wantKind:   apperr.ErrConflict,
			wantErrIs:  usecase.ErrSymbolTaken,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			repo := &mockStockRepository{
				CreateFunc: func(ctx context.Context, s *entity.Stock) error {
					called = true
					if tt.createFunc != nil {
						return tt.createFunc(ctx, s)
					}
					return nil
				},
			}
			uc := usecase.NewStockUsecase(repo)

			got, err := uc.Create(context.Background(), tt.in())

			assert.Equal(t, tt.wantCalled, called)
			if tt.wantKind != nil {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.ErrorIs(t, err, tt.wantKind)
				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(7), got.ID)
			assert.Equal(t, "ACME", got.Symbol)
			assert.Nil(t, got.Industry)
			assert.Nil(t, got.MarketCap)
		})
	}
}

// TestStockUsecase_Update_MergePatch は指定されたフィールドのみが上書きされることを検証します。
func TestStockUsecase_Update_MergePatch(t *testing.T) {
	t.Parallel()

	var saved *entity.Stock
	repo := &mockStockRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Stock, error) { return acme(), nil },
		UpdateFunc: func(ctx context.Context, s *entity.Stock) error {
			saved = s
			return nil
		},
	}
	uc := usecase.NewStockUsecase(repo)

	newPrice := decimal.NewFromInt(42)
	got, err := uc.Update(context.Background(), 1, entity.StockPatch{Purchase: &newPrice})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.True(t, got.Purchase.Equal(newPrice))
	assert.Equal(t, "ACME", got.Symbol)
	assert.Equal(t, "Acme Co", got.CompanyName)
	assert.True(t, got.LastDiv.Equal(decimal.RequireFromString("0.50")))
	require.NotNil(t, got.Industry)
	assert.Equal(t, "Manufacturing", *got.Industry)
	assert.Nil(t, got.MarketCap)
}

// TestStockUsecase_Update はUpdateのエラー経路を検証します。
func TestStockUsecase_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		patch       entity.StockPatch
		findErr     error
		wantErr     error
		wantUpdated bool
	}{
		{
			name:    "failure: stock not found",
			patch:   entity.StockPatch{CompanyName: ptr("New")},
			findErr: usecase.ErrStockNotFound,
			wantErr: apperr.ErrNotFound,
		},
		{
			name:    "failure: blank company name",
			patch:   entity.StockPatch{CompanyName: ptr(" ")},
			wantErr: apperr.ErrValidation,
		},
		{
			name:    "failure: non-positive purchase",
			patch:   entity.StockPatch{Purchase: ptr(decimal.NewFromInt(-5))},
			wantErr: apperr.ErrValidation,
		},
		{
			name:    "failure: purchase with three decimal places",
			patch:   entity.StockPatch{Purchase: ptr(decimal.RequireFromString("12.345"))},
			wantErr: apperr.ErrValidation,
		},
		{
			name:  "success: empty patch does not write",
			patch: entity.StockPatch{},
		},
		{
			name:        "success: clears nothing when only market cap set",
			patch:       entity.StockPatch{MarketCap: ptr(int64(1_000_000))},
			wantUpdated: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			updated := false
			repo := &mockStockRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*entity.Stock, error) {
					if tt.findErr != nil {
						return nil, tt.findErr
					}
					return acme(), nil
				},
				UpdateFunc: func(ctx context.Context, s *entity.Stock) error {
					updated = true
					return nil
				},
			}
			uc := usecase.NewStockUsecase(repo)

			got, err := uc.Update(context.Background(), 1, tt.patch)

			assert.Equal(t, tt.wantUpdated, updated)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ACME", got.Symbol)
		})
	}
}

// TestStockUsecase_Delete はDeleteがリポジトリのエラーをそのまま返すことを検証します。
func TestStockUsecase_Delete(t *testing.T) {
	t.Parallel()

	repo := &mockStockRepository{
		DeleteFunc: func(ctx context.Context, id uint) error {
			if id == 1 {
				return nil
			}
			return usecase.ErrStockNotFound
		},
	}
	uc := usecase.NewStockUsecase(repo)

	assert.NoError(t, uc.Delete(context.Background(), 1))
	assert.ErrorIs(t, uc.Delete(context.Background(), 2), apperr.ErrNotFound)
}

// TestStockUsecase_Exists はExistsの結果を検証します。
func TestStockUsecase_Exists(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection refused")
	repo := &mockStockRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Stock, error) {
			t.Error("Exists must not go through FindByID")
			return acme(), nil
		},
		ExistsByIDFunc: func(ctx context.Context, id uint) (bool, error) {
			switch id {
			case 1:
				return true, nil
			case 2:
				return false, nil
			default:
				return false, dbErr
			}
		},
	}
	uc := usecase.NewStockUsecase(repo)

	ok, err := uc.Exists(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.Exists(context.Background(), 2)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = uc.Exists(context.Background(), 3)
	assert.ErrorIs(t, err, dbErr)
	assert.False(t, ok)
}

// TestStockUsecase_Queries は参照系メソッドがリポジトリに委譲されることを検証します。
func TestStockUsecase_Queries(t *testing.T) {
	t.Parallel()

	var gotIndustry, gotFragment, gotSymbol string
	repo := &mockStockRepository{
		FindBySymbolFunc: func(ctx context.Context, symbol string) (*entity.Stock, error) {
			gotSymbol = symbol
			return acme(), nil
		},
		ListFunc: func(ctx context.Context) ([]entity.Stock, error) {
			return []entity.Stock{*acme()}, nil
		},
		ListByIndustryFunc: func(ctx context.Context, industry string) ([]entity.Stock, error) {
			gotIndustry = industry
			return []entity.Stock{*acme()}, nil
		},
		SearchByCompanyNameFunc: func(ctx context.Context, fragment string) ([]entity.Stock, error) {
			gotFragment = fragment
			return nil, nil
		},
	}
	uc := usecase.NewStockUsecase(repo)
	ctx := context.Background()

	s, err := uc.GetBySymbol(ctx, "ACME")
	require.NoError(t, err)
	assert.Equal(t, "ACME", s.Symbol)
	assert.Equal(t, "ACME", gotSymbol)

	all, err := uc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = uc.ListByIndustry(ctx, "Manufacturing")
	require.NoError(t, err)
	assert.Equal(t, "Manufacturing", gotIndustry)

	found, err := uc.SearchByCompanyName(ctx, "acme")
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.Equal(t, "acme", gotFragment)

	_, err = uc.GetByID(ctx, 99)
	assert.ErrorIs(t, err, usecase.ErrStockNotFound)
}
