// Package dto defines the JSON shapes of the stocks endpoints.
package dto

import (
	"github.com/shopspring/decimal"

	"stockwatch/internal/feature/stocks/domain/entity"
)

// CreateStockRequest is the body of POST /stocks.
type CreateStockRequest struct {
	Symbol      string           `json:"symbol" binding:"required,max=10"`
	CompanyName string           `json:"companyName" binding:"required"`
	Purchase    *decimal.Decimal `json:"purchase" binding:"required"`
	LastDiv     *decimal.Decimal `json:"lastDiv" binding:"required"`
	Industry    *string          `json:"industry" binding:"omitempty,max=100"`
	MarketCap   *int64           `json:"marketCap"`
}

// ToNewStock converts the request into the usecase input.
func (r CreateStockRequest) ToNewStock() entity.NewStock {
	return entity.NewStock{
		Symbol:      r.Symbol,
		CompanyName: r.CompanyName,
		Purchase:    *r.Purchase,
		LastDiv:     *r.LastDiv,
		Industry:    r.Industry,
		MarketCap:   r.MarketCap,
	}
}

// UpdateStockRequest is the body of PUT /stocks/:id. Omitted fields are left unchanged.
type UpdateStockRequest struct {
	CompanyName *string          `json:"companyName"`
	Purchase    *decimal.Decimal `json:"purchase"`
	LastDiv     *decimal.Decimal `json:"lastDiv"`
	Industry    *string          `json:"industry" binding:"omitempty,max=100"`
	MarketCap   *int64           `json:"marketCap"`
}

// ToPatch converts the request into a merge-patch.
func (r UpdateStockRequest) ToPatch() entity.StockPatch {
	return entity.StockPatch{
		CompanyName: r.CompanyName,
		Purchase:    r.Purchase,
		LastDiv:     r.LastDiv,
		Industry:    r.Industry,
		MarketCap:   r.MarketCap,
	}
}

// StockResponse is the JSON representation of a stock.
type StockResponse struct {
	ID          uint            `json:"id"`
	Symbol      string          `json:"symbol"`
	CompanyName string          `json:"companyName"`
	Purchase    decimal.Decimal `json:"purchase"`
	LastDiv     decimal.Decimal `json:"lastDiv"`
	Industry    *string         `json:"industry"`
	MarketCap   *int64          `json:"marketCap"`
}

// FromEntity builds the response for s.
func FromEntity(s *entity.Stock) StockResponse {
	return StockResponse{
		ID:          s.ID,
		Symbol:      s.Symbol,
		CompanyName: s.CompanyName,
		Purchase:    s.Purchase,
		LastDiv:     s.LastDiv,
		Industry:    s.Industry,
		MarketCap:   s.MarketCap,
	}
}

// FromEntities builds responses for ss, never returning nil.
func FromEntities(ss []entity.Stock) []StockResponse {
	out := make([]StockResponse, 0, len(ss))
	for i := range ss {
		out = append(out, FromEntity(&ss[i]))
	}
	return out
}
