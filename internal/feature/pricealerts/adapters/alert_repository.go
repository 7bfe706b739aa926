// Package adapters はpricealertsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stockwatch/internal/feature/pricealerts/domain/entity"
	"stockwatch/internal/feature/pricealerts/usecase"
)

type alertRepository struct {
	db *gorm.DB
}

var _ usecase.AlertRepository = (*alertRepository)(nil)

// NewAlertRepository は新しいalertRepositoryを生成します。
func NewAlertRepository(db *gorm.DB) *alertRepository {
	return &alertRepository{db: db}
}

// Create はアラートを追加し、採番されたIDをaに書き戻します。
func (r *alertRepository) Create(ctx context.Context, a *entity.PriceAlert) error {
	m := AlertModelFromEntity(a)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	a.ID = m.ID
	return nil
}

func (r *alertRepository) FindByID(ctx context.Context, id uint) (*entity.PriceAlert, error) {
	var m AlertModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAlertNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// ListByUser はユーザーのアラートを作成順に返します。
func (r *alertRepository) ListByUser(ctx context.Context, userID string, activeOnly bool) ([]entity.PriceAlert, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var ms []AlertModel
	if err := q.Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return toEntities(ms), nil
}

// ListActiveByStock は銘柄の有効なアラートを作成順に返します。
func (r *alertRepository) ListActiveByStock(ctx context.Context, stockID uint) ([]entity.PriceAlert, error) {
	var ms []AlertModel
	if err := r.db.WithContext(ctx).
		Where("stock_id = ? AND is_active = ?", stockID, true).
		Order("id ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return toEntities(ms), nil
}

// UpdateState は有効フラグとトリガー時刻だけを書き込みます。
// ゼロ値（false, NULL）も書き込むためmapで更新します。
func (r *alertRepository) UpdateState(ctx context.Context, a *entity.PriceAlert) error {
	res := r.db.WithContext(ctx).
		Model(&AlertModel{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{"is_active": a.IsActive, "triggered_at": a.TriggeredAt})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAlertNotFound
	}
	return nil
}

func (r *alertRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&AlertModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAlertNotFound
	}
	return nil
}
