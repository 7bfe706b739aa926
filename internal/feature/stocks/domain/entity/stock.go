// Package entity defines the domain models for the stocks feature.
package entity

import "github.com/shopspring/decimal"

// MaxSymbolLength is the longest ticker symbol the catalog accepts.
const MaxSymbolLength = 10

// PriceScale is the number of decimal places stored for money columns.
const PriceScale = 2

// FitsPriceScale reports whether d is stored without rounding.
func FitsPriceScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(PriceScale))
}

// Stock represents a tradable instrument in the catalog.
// Symbol is unique across the catalog and compared case-sensitively.
type Stock struct {
	ID          uint
	Symbol      string
	CompanyName string
	Purchase    decimal.Decimal // purchase price, always > 0
	LastDiv     decimal.Decimal // last dividend, always >= 0
	Industry    *string
	MarketCap   *int64
}

// NewStock carries the fields needed to register a stock.
type NewStock struct {
	Symbol      string
	CompanyName string
	Purchase    decimal.Decimal
	LastDiv     decimal.Decimal
	Industry    *string
	MarketCap   *int64
}

// StockPatch is a merge-patch: nil fields leave the stored value untouched.
// The symbol cannot be patched.
type StockPatch struct {
	CompanyName *string
	Purchase    *decimal.Decimal
	LastDiv     *decimal.Decimal
	Industry    *string
	MarketCap   *int64
}

// IsEmpty reports whether the patch changes nothing.
func (p StockPatch) IsEmpty() bool {
	return p.CompanyName == nil && p.Purchase == nil && p.LastDiv == nil &&
		p.Industry == nil && p.MarketCap == nil
}

// Apply overwrites the fields of s that p supplies.
func (s *Stock) Apply(p StockPatch) {
	if p.CompanyName != nil {
		s.CompanyName = *p.CompanyName
	}
	if p.Purchase != nil {
		s.Purchase = *p.Purchase
	}
	if p.LastDiv != nil {
		s.LastDiv = *p.LastDiv
	}
	if p.Industry != nil {
		v := *p.Industry
		s.Industry = &v
	}
	if p.MarketCap != nil {
		v := *p.MarketCap
		s.MarketCap = &v
	}
}
