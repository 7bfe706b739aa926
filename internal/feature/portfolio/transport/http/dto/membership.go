// Package dto はportfolioフィーチャーのHTTPトランスポート層のDTOを定義します。
package dto

import (
	"time"

	"stockwatch/internal/feature/portfolio/domain/entity"
)

// AddRequest はPOST /portfolioのリクエストボディです。
type AddRequest struct {
	StockID uint `json:"stockId" binding:"required"`
}

// MembershipResponse はポートフォリオの1件を表します。
type MembershipResponse struct {
	UserID    string    `json:"userId"`
	StockID   uint      `json:"stockId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExistsResponse はGET /portfolio/check/:stockIdのレスポンスです。
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

func FromEntity(m *entity.Membership) MembershipResponse {
	return MembershipResponse{UserID: m.UserID, StockID: m.StockID, CreatedAt: m.CreatedAt}
}

// FromEntities は空のスライスに対しても[]を返します。
func FromEntities(ms []entity.Membership) []MembershipResponse {
	out := make([]MembershipResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromEntity(&ms[i]))
	}
	return out
}
