// Package dto はpricealertsフィーチャーのHTTPトランスポート層のDTOを定義します。
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"stockwatch/internal/feature/pricealerts/domain/entity"
)

// CreateAlertRequest はPOST /alertsのリクエストボディです。
// alertTypeは "above" / "below"（大文字小文字を区別しない）を受け付けます。
type CreateAlertRequest struct {
	StockID     uint             `json:"stockId" binding:"required"`
	TargetPrice *decimal.Decimal `json:"targetPrice" binding:"required"`
	AlertType   string           `json:"alertType" binding:"required"`
}

// ToNewAlert はリクエストをユースケースの入力に変換します。
func (r CreateAlertRequest) ToNewAlert(userID string) entity.NewAlert {
	return entity.NewAlert{
		UserID:      userID,
		StockID:     r.StockID,
		TargetPrice: *r.TargetPrice,
		AlertType:   r.AlertType,
	}
}

// TriggerRequest はPOST /alerts/:id/triggerのリクエストボディです。
// triggeredAtを省略した場合はサーバーの現在時刻を使います。
type TriggerRequest struct {
	TriggeredAt *time.Time `json:"triggeredAt"`
}

type AlertResponse struct {
	ID          uint            `json:"id"`
	UserID      string          `json:"userId"`
	StockID     uint            `json:"stockId"`
	TargetPrice decimal.Decimal `json:"targetPrice"`
	AlertType   string          `json:"alertType"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	TriggeredAt *time.Time      `json:"triggeredAt"`
}

func FromEntity(a *entity.PriceAlert) AlertResponse {
	return AlertResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		StockID:     a.StockID,
		TargetPrice: a.TargetPrice,
		AlertType:   string(a.AlertType),
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
		TriggeredAt: a.TriggeredAt,
	}
}

// FromEntities は空のスライスに対しても[]を返します。
func FromEntities(as []entity.PriceAlert) []AlertResponse {
	out := make([]AlertResponse, 0, len(as))
	for i := range as {
		out = append(out, FromEntity(&as[i]))
	}
	return out
}
