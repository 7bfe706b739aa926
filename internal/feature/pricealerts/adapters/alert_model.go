package adapters

import (
	"time"

	"github.com/shopspring/decimal"

	"stockwatch/internal/feature/pricealerts/domain/entity"
)

// AlertModel はprice_alertsテーブルのGORMモデルです。
// 銘柄・ユーザーへの外部キーは張りません。銘柄を削除してもアラートは残ります。
type AlertModel struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      string          `gorm:"type:varchar(36);not null;index:idx_price_alerts_user_active,priority:1"`
	StockID     uint            `gorm:"not null;index:idx_price_alerts_stock_active,priority:1"`
	TargetPrice decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	AlertType   string          `gorm:"size:20;not null"`
	IsActive    bool            `gorm:"not null;index:idx_price_alerts_user_active,priority:2;index:idx_price_alerts_stock_active,priority:2"`
	CreatedAt   time.Time       `gorm:"not null"`
	TriggeredAt *time.Time
}

// TableName はGORMのテーブル名を返します。
func (AlertModel) TableName() string {
	return "price_alerts"
}

// ToEntity はモデルをドメインエンティティに変換します。
func (m *AlertModel) ToEntity() *entity.PriceAlert {
	return &entity.PriceAlert{
		ID:          m.ID,
		UserID:      m.UserID,
		StockID:     m.StockID,
		TargetPrice: m.TargetPrice,
		AlertType:   entity.AlertType(m.AlertType),
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		TriggeredAt: m.TriggeredAt,
	}
}

// AlertModelFromEntity はドメインエンティティからモデルを生成します。
func AlertModelFromEntity(a *entity.PriceAlert) *AlertModel {
	return &AlertModel{
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

func toEntities(ms []AlertModel) []entity.PriceAlert {
	out := make([]entity.PriceAlert, 0, len(ms))
	for i := range ms {
		out = append(out, *ms[i].ToEntity())
	}
	return out
}
