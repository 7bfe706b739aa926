// Package dto はcommentsフィーチャーのHTTPトランスポート層のDTOを定義します。
package dto

import (
	"time"

	"stockwatch/internal/feature/comments/domain/entity"
)

// CreateCommentRequest はPOST /commentsのリクエストボディです。
type CreateCommentRequest struct {
	StockID uint   `json:"stockId" binding:"required"`
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
}

// UpdateCommentRequest はPUT /comments/:idのリクエストボディです。省略したフィールドは変更しません。
type UpdateCommentRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=255"`
	Content *string `json:"content"`
}

func (r UpdateCommentRequest) ToPatch() entity.CommentPatch {
	return entity.CommentPatch{Title: r.Title, Content: r.Content}
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	StockID   uint      `json:"stockId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// CountResponse はGET /comments/stock/:stockId/countのレスポンスです。
type CountResponse struct {
	StockID uint  `json:"stockId"`
	Count   int64 `json:"count"`
}

func FromEntity(c *entity.Comment) CommentResponse {
	return CommentResponse{ID: c.ID, StockID: c.StockID, Title: c.Title, Content: c.Content, CreatedAt: c.CreatedAt}
}

// FromEntities は空のスライスに対しても[]を返します。
func FromEntities(cs []entity.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(cs))
	for i := range cs {
		out = append(out, FromEntity(&cs[i]))
	}
	return out
}
