// Package entity defines the domain models for the portfolio feature.
package entity

import "time"

// MembershipKey identifies a membership. A user holds a given stock at most once.
type MembershipKey struct {
	UserID  string
	StockID uint
}

// Membership records that a user tracks a stock in their portfolio.
type Membership struct {
	UserID    string
	StockID   uint
	CreatedAt time.Time
}

// Key returns the identity of m.
func (m Membership) Key() MembershipKey {
	return MembershipKey{UserID: m.UserID, StockID: m.StockID}
}
