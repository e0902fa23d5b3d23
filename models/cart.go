package models

import "time"

// Cart is one per user. Totals are derived from the item list and kept equal
// to the sum of item amounts; an emptied cart is deleted, never persisted.
type Cart struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Items       []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	SubTotal    float64    `gorm:"not null" json:"sub_total"`
	FinalAmount float64    `gorm:"not null" json:"final_amount"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CartItem carries a unit price snapshot taken at the last mutation that
// touched the line, not the live catalog price.
type CartItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	CartID    uint    `gorm:"index" json:"cart_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `json:"product"`
	Qty       int     `gorm:"not null" json:"qty"`
	Price     float64 `gorm:"not null" json:"price"`
	Amount    float64 `gorm:"not null" json:"amount"`
}
