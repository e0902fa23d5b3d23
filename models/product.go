package models

import "time"

type Product struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	BrandID       uint        `gorm:"index;not null" json:"brand_id"`
	Brand         Brand       `json:"brand"`
	ColorID       uint        `gorm:"not null" json:"color_id"`
	Color         Color       `json:"color"`
	SizeID        uint        `gorm:"not null" json:"size_id"`
	Size          Size        `json:"size"`
	CategoryID    uint        `gorm:"index;not null" json:"category_id"`
	Category      Category    `json:"category"`
	SubCategoryID uint        `gorm:"not null" json:"sub_category_id"`
	SubCategory   SubCategory `json:"sub_category"`
	Title         string      `gorm:"not null" json:"title"`
	Description   string      `json:"description"`
	Price         float64     `gorm:"not null" json:"price"`
	Stock         int         `gorm:"not null" json:"stock"` // never below zero
	Image         string      `json:"image"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
