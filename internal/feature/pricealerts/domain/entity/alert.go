// Package entity defines the domain models for the price alert feature.
package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AlertType is the direction in which the price must cross the target.
type AlertType string

const (
	AlertTypeAbove AlertType = "PRICE_ABOVE"
	AlertTypeBelow AlertType = "PRICE_BELOW"
)

// ParseAlertType accepts "above", "below" and the canonical names, ignoring case.
func ParseAlertType(s string) (AlertType, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ABOVE", string(AlertTypeAbove):
		return AlertTypeAbove, true
	case "BELOW", string(AlertTypeBelow):
		return AlertTypeBelow, true
	default:
		return "", false
	}
}

// PriceAlert is a user's watch condition on one stock.
//
// An alert is created active with no trigger time. It stays until deleted;
// deactivating it discards the trigger time and reactivating does not restore it.
type PriceAlert struct {
	ID          uint
	UserID      string
	StockID     uint
	TargetPrice decimal.Decimal
	AlertType   AlertType
	IsActive    bool
	CreatedAt   time.Time
	TriggeredAt *time.Time
}

// PriceScale is the number of decimal places stored for TargetPrice.
const PriceScale = 2

// FitsPriceScale reports whether d is stored without rounding.
func FitsPriceScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(PriceScale))
}

// NewAlert carries the caller's input for creating an alert.
// AlertType is raw text and is parsed with ParseAlertType.
type NewAlert struct {
	UserID      string
	StockID     uint
	TargetPrice decimal.Decimal
	AlertType   string
}

// SetActive sets the active flag. Deactivating clears TriggeredAt.
func (a *PriceAlert) SetActive(active bool) {
	a.IsActive = active
	if !active {
		a.TriggeredAt = nil
	}
}

// MarkTriggered records the time the condition was met.
func (a *PriceAlert) MarkTriggered(at time.Time) {
	t := at
	a.TriggeredAt = &t
}

// IsSatisfiedBy reports whether price meets the alert condition.
func (a PriceAlert) IsSatisfiedBy(price decimal.Decimal) bool {
	switch a.AlertType {
	case AlertTypeAbove:
		return price.GreaterThanOrEqual(a.TargetPrice)
	case AlertTypeBelow:
		return price.LessThanOrEqual(a.TargetPrice)
	default:
		return false
	}
}
