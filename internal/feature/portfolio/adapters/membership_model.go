package adapters

import (
	"time"

	"stockwatch/internal/feature/portfolio/domain/entity"
)

// MembershipModel はportfoliosテーブルのGORMモデルです。
// (user_id, stock_id) の複合主キーが一意性を保証します。
type MembershipModel struct {
	UserID    string `gorm:"type:varchar(36);primaryKey"`
	StockID   uint   `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time
}

// TableName はGORMのテーブル名を返します。
func (MembershipModel) TableName() string {
	return "portfolios"
}

func (m MembershipModel) toEntity() entity.Membership {
	return entity.Membership{UserID: m.UserID, StockID: m.StockID, CreatedAt: m.CreatedAt}
}

func toEntities(ms []MembershipModel) []entity.Membership {
	out := make([]entity.Membership, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.toEntity())
	}
	return out
}
