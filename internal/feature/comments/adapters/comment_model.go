package adapters

import (
	"time"

	"stockwatch/internal/feature/comments/domain/entity"
)

// CommentModel はcommentsテーブルのGORMモデルです。
type CommentModel struct {
	ID        uint      `gorm:"primaryKey"`
	StockID   uint      `gorm:"not null;index:idx_comments_stock_created,priority:1"`
	Title     string    `gorm:"size:255;not null"`
	Content   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index:idx_comments_stock_created,priority:2"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (m *CommentModel) ToEntity() *entity.Comment {
	return &entity.Comment{
		ID:        m.ID,
		StockID:   m.StockID,
		Title:     m.Title,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func CommentModelFromEntity(c *entity.Comment) *CommentModel {
	return &CommentModel{
		ID:        c.ID,
		StockID:   c.StockID,
		Title:     c.Title,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
