package model

import "github.com/shopspring/decimal"

// CartLine is one pending (user, menu item) selection. UnitPrice is snapshotted
// at add time; Price is always Quantity x UnitPrice, never set independently.
type CartLine struct {
	DTO
	UserID     uint            `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"userId"`
	User       *User           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	MenuItemID uint            `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"menuItemId"`
	MenuItem   *MenuItem       `gorm:"constraint:OnDelete:CASCADE" json:"menuItem,omitempty"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

type CartLines []CartLine

type AddToCartInput struct {
	MenuItemID uint `validate:"required" json:"menuItemId"`
	Quantity   int  `validate:"omitempty,min=1" json:"quantity"`
}

// Quantity is a pointer so an omitted field can be told apart from an explicit
// zero; omitted keeps the line's current quantity.
type UpdateCartLineInput struct {
	Quantity *int `json:"quantity"`
}
