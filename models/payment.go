package models

import "time"

const (
	PaymentStatusFailed    = 0
	PaymentStatusSucceeded = 1
)

type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      User      `json:"user"`
	OrderID   uint      `gorm:"uniqueIndex;not null" json:"order_id"`
	Order     Order     `json:"order"`
	Status    int       `gorm:"default:0" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
