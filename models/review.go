package models

import "time"

// Review is immutable once created; at most one per (user, order).
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_reviews_user_order" json:"user_id"`
	User      User      `json:"user"`
	OrderID   uint      `gorm:"not null;uniqueIndex:idx_reviews_user_order" json:"order_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Review    string    `gorm:"not null" json:"review"`
	CreatedAt time.Time `json:"created_at"`
}
