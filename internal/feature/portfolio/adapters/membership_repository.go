// Package adapters はportfolioフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stockwatch/internal/feature/portfolio/domain/entity"
	"stockwatch/internal/feature/portfolio/usecase"
	"stockwatch/internal/platform/db"
)

type membershipRepository struct {
	db *gorm.DB
}

var _ usecase.MembershipRepository = (*membershipRepository)(nil)

// NewMembershipRepository は新しいmembershipRepositoryを生成します。
func NewMembershipRepository(db *gorm.DB) *membershipRepository {
	return &membershipRepository{db: db}
}

// Create は条件付きINSERTでメンバーシップを追加します。
// 同じキーが既に存在する場合は行が挿入されず、usecase.ErrAlreadyInPortfolioを返します。
func (r *membershipRepository) Create(ctx context.Context, m *entity.Membership) error {
	row := MembershipModel{UserID: m.UserID, StockID: m.StockID}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row)
	if res.Error != nil {
		if db.IsUniqueViolation(res.Error) {
			return usecase.ErrAlreadyInPortfolio
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAlreadyInPortfolio
	}
	m.CreatedAt = row.CreatedAt
	return nil
}

// Delete はメンバーシップを削除します。
func (r *membershipRepository) Delete(ctx context.Context, key entity.MembershipKey) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND stock_id = ?", key.UserID, key.StockID).
		Delete(&MembershipModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrMembershipNotFound
	}
	return nil
}

// ListByUser はユーザーのメンバーシップを追加順に返します。
func (r *membershipRepository) ListByUser(ctx context.Context, userID string) ([]entity.Membership, error) {
	var rows []MembershipModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").Order("stock_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

// ListByStock は銘柄を参照するメンバーシップを追加順に返します。
func (r *membershipRepository) ListByStock(ctx context.Context, stockID uint) ([]entity.Membership, error) {
	var rows []MembershipModel
	if err := r.db.WithContext(ctx).
		Where("stock_id = ?", stockID).
		Order("created_at ASC").Order("user_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *membershipRepository) Exists(ctx context.Context, key entity.MembershipKey) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&MembershipModel{}).
		Where("user_id = ? AND stock_id = ?", key.UserID, key.StockID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
