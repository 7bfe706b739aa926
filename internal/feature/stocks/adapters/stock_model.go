package adapters

import (
	"time"

	"github.com/shopspring/decimal"

	"stockwatch/internal/feature/stocks/domain/entity"
)

// StockModel is the GORM model for the stocks table.
type StockModel struct {
	ID          uint            `gorm:"primaryKey"`
	Symbol      string          `gorm:"size:10;not null;uniqueIndex:idx_stocks_symbol"`
	CompanyName string          `gorm:"size:255;not null;index:idx_stocks_company_name"`
	Purchase    decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	LastDiv     decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Industry    *string         `gorm:"size:100;index"`
	MarketCap   *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM.
func (StockModel) TableName() string {
	return "stocks"
}

// ToEntity converts the GORM model to a domain entity.
func (m *StockModel) ToEntity() *entity.Stock {
	return &entity.Stock{
		ID:          m.ID,
		Symbol:      m.Symbol,
		CompanyName: m.CompanyName,
		Purchase:    m.Purchase,
		LastDiv:     m.LastDiv,
		Industry:    m.Industry,
		MarketCap:   m.MarketCap,
	}
}

// StockModelFromEntity converts a domain entity to a GORM model.
func StockModelFromEntity(s *entity.Stock) *StockModel {
	return &StockModel{
		ID:          s.ID,
		Symbol:      s.Symbol,
		CompanyName: s.CompanyName,
		Purchase:    s.Purchase,
		LastDiv:     s.LastDiv,
		Industry:    s.Industry,
		MarketCap:   s.MarketCap,
	}
}

func toEntities(ms []StockModel) []entity.Stock {
	out := make([]entity.Stock, 0, len(ms))
	for i := range ms {
		out = append(out, *ms[i].ToEntity())
	}
	return out
}
