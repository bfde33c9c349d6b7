package model

import "github.com/shopspring/decimal"

type MenuItem struct {
	DTO
	Title      string          `gorm:"not null;index" json:"title"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null;index" json:"price"`
	Featured   bool            `gorm:"not null;default:false;index" json:"featured"`
	CategoryID uint            `gorm:"not null" json:"categoryId"`
	Category   *Category       `gorm:"constraint:OnDelete:RESTRICT" json:"category,omitempty"`
	Image      *string         `json:"image,omitempty"`
}

type MenuItems []MenuItem

type CreateMenuItemInput struct {
	Title      string          `validate:"required,max=255" json:"title"`
	Price      decimal.Decimal `validate:"required" json:"price"`
	Featured   bool            `json:"featured"`
	CategoryID uint            `validate:"required" json:"categoryId"`
}

type EditMenuItemInput struct {
	Title      *string          `json:"title"`
	Price      *decimal.Decimal `json:"price"`
	Featured   *bool            `json:"featured"`
	CategoryID *uint            `json:"categoryId"`
}

// FilterMenuItem carries the query-string filters of the menu-item listing.
type FilterMenuItem struct {
	Pagination
	CategoryID *uint            `json:"categoryId"`
	PriceMin   *decimal.Decimal `json:"priceMin"`
	PriceMax   *decimal.Decimal `json:"priceMax"`
	SearchKey  string           `json:"searchKey"`
	Ordering   string           `json:"ordering"` // price or -price
}
