package models

import "time"

const (
	OrderStatusPlaced    = 0
	OrderStatusCompleted = 1
)

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	OrderRef    string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID      uint        `gorm:"index;not null" json:"user_id"`
	User        User        `json:"user"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	SubTotal    float64     `gorm:"not null" json:"sub_total"`
	FinalAmount float64     `gorm:"not null" json:"final_amount"`
	Status      int         `gorm:"default:0" json:"status"`
	Review      *Review     `gorm:"foreignKey:OrderID" json:"review"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderItem is a snapshot of a cart line at settlement time.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `json:"product"`
	Qty       int     `gorm:"not null" json:"qty"`
	Price     float64 `gorm:"not null" json:"price"`
	Amount    float64 `gorm:"not null" json:"amount"`
}
