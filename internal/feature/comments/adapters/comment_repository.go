// Package adapters はcommentsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stockwatch/internal/feature/comments/domain/entity"
	"stockwatch/internal/feature/comments/usecase"
)

type commentRepository struct {
	db *gorm.DB
}

var _ usecase.CommentRepository = (*commentRepository)(nil)

// NewCommentRepository は新しいcommentRepositoryを生成します。
func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, c *entity.Comment) error {
	m := CommentModelFromEntity(c)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	c.ID = m.ID
	c.CreatedAt = m.CreatedAt
	return nil
}

func (r *commentRepository) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	var m CommentModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCommentNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// ListByStock は銘柄のコメントを新しい順に返します。作成日時が同じ場合はIDの大きい方が先です。
func (r *commentRepository) ListByStock(ctx context.Context, stockID uint) ([]entity.Comment, error) {
	var ms []CommentModel
	if err := r.db.WithContext(ctx).
		Where("stock_id = ?", stockID).
		Order("created_at DESC").Order("id DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Comment, 0, len(ms))
	for i := range ms {
		out = append(out, *ms[i].ToEntity())
	}
	return out, nil
}

func (r *commentRepository) CountByStock(ctx context.Context, stockID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&CommentModel{}).Where("stock_id = ?", stockID).Count(&n).Error
	return n, err
}

// Update はタイトルと本文を書き込みます。作成日時と銘柄IDは変更しません。
func (r *commentRepository) Update(ctx context.Context, c *entity.Comment) error {
	res := r.db.WithContext(ctx).
		Model(&CommentModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{"title": c.Title, "content": c.Content})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCommentNotFound
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&CommentModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCommentNotFound
	}
	return nil
}
