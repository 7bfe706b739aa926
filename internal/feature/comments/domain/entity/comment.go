// Package entity defines the domain models for the comments feature.
package entity

import "time"

// Comment is a note attached to a stock.
type Comment struct {
	ID        uint
	StockID   uint
	Title     string
	Content   string
	CreatedAt time.Time
}

// CommentPatch is a merge-patch: nil fields leave the stored value untouched.
type CommentPatch struct {
	Title   *string
	Content *string
}

// IsEmpty reports whether the patch changes nothing.
func (p CommentPatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil
}

// Apply overwrites the fields of c that p supplies.
func (c *Comment) Apply(p CommentPatch) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Content != nil {
		c.Content = *p.Content
	}
}
