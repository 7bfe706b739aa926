// Package adapters はstocksフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stockwatch/internal/feature/stocks/domain/entity"
	"stockwatch/internal/feature/stocks/usecase"
	"stockwatch/internal/platform/db"
)

// stockRepository はStockRepositoryインターフェースのGORM実装です。
type stockRepository struct {
	db *gorm.DB
}

// stockRepositoryがStockRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.StockRepository = (*stockRepository)(nil)

// NewStockRepository は指定されたDB接続でstockRepositoryの新しいインスタンスを生成します。
func NewStockRepository(db *gorm.DB) *stockRepository {
	return &stockRepository{db: db}
}

// Create は銘柄を追加します。
// シンボルの一意性はON CONFLICT DO NOTHINGで保証し、挿入されなかった場合はErrSymbolTakenを返します。
func (r *stockRepository) Create(ctx context.Context, s *entity.Stock) error {
	m := StockModelFromEntity(s)
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "symbol"}}, DoNothing: true}).
		Create(m)
	if res.Error != nil {
		if db.IsUniqueViolation(res.Error) {
			return usecase.ErrSymbolTaken
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrSymbolTaken
	}
	s.ID = m.ID
	return nil
}

// FindByID はIDで銘柄を取得します。
func (r *stockRepository) FindByID(ctx context.Context, id uint) (*entity.Stock, error) {
	var m StockModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStockNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// FindBySymbol はシンボルの完全一致で銘柄を取得します。
func (r *stockRepository) FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	var m StockModel
	if err := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStockNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// ExistsByID はIDの銘柄が登録済みかを返します。
func (r *stockRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&StockModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// List はID順にすべての銘柄を返します。
func (r *stockRepository) List(ctx context.Context) ([]entity.Stock, error) {
	var ms []StockModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return toEntities(ms), nil
}

// ListByIndustry は業種が完全一致する銘柄を返します。
func (r *stockRepository) ListByIndustry(ctx context.Context, industry string) ([]entity.Stock, error) {
	var ms []StockModel
	if err := r.db.WithContext(ctx).
		Where("industry = ?", industry).
		Order("id ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return toEntities(ms), nil
}

// SearchByCompanyName は会社名の部分一致（大文字小文字を区別しない）で銘柄を返します。
// SQLのLOWERはドライバーや照合順序によってASCIIしか変換しないため、比較はGo側で行います。
func (r *stockRepository) SearchByCompanyName(ctx context.Context, fragment string) ([]entity.Stock, error) {
	var ms []StockModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	needle := strings.ToLower(fragment)
	matched := ms[:0]
	for _, m := range ms {
		if strings.Contains(strings.ToLower(m.CompanyName), needle) {
			matched = append(matched, m)
		}
	}
	return toEntities(matched), nil
}

// Update はシンボル以外の全フィールドを書き込みます。
func (r *stockRepository) Update(ctx context.Context, s *entity.Stock) error {
	m := StockModelFromEntity(s)
	res := r.db.WithContext(ctx).
		Model(&StockModel{}).
		Where("id = ?", s.ID).
		Select("company_name", "purchase", "last_div", "industry", "market_cap", "updated_at").
		Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrStockNotFound
	}
	return nil
}

// Delete は銘柄を削除します。依存するレコードは確認しません。
func (r *stockRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&StockModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrStockNotFound
	}
	return nil
}
