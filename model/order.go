package model

import "github.com/shopspring/decimal"

const (
	OrderPending   = "PENDING"
	OrderReady     = "READY"
	OrderDelivered = "DELIVERED"
	OrderCancelled = "CANCELLED"
)

// OrderStatuses is the set accepted on status update.
var OrderStatuses = []string{OrderPending, OrderReady, OrderDelivered, OrderCancelled}

type Order struct {
	DTO
	PublicCode     string          `gorm:"uniqueIndex;size:20" json:"publicCode"`
	UserID         uint            `gorm:"not null;index" json:"userId"`
	User           *User           `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	DeliveryCrewID *uint           `gorm:"index" json:"deliveryCrewId"`
	DeliveryCrew   *User           `gorm:"foreignKey:DeliveryCrewID;constraint:OnDelete:SET NULL" json:"deliveryCrew,omitempty"`
	Status         string          `gorm:"not null;default:PENDING" json:"status"`
	Total          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Items          []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type Orders []Order

// OrderItem snapshots one cart line at checkout. Quantity and Price are
// immutable after creation.
type OrderItem struct {
	DTO
	OrderID    uint            `gorm:"not null;uniqueIndex:idx_order_item" json:"orderId"`
	MenuItemID uint            `gorm:"not null;uniqueIndex:idx_order_item" json:"menuItemId"`
	MenuItem   *MenuItem       `gorm:"constraint:OnDelete:CASCADE" json:"menuItem,omitempty"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

type CheckoutInput struct {
	Tip       decimal.Decimal `json:"tip"`
	BonusUsed decimal.Decimal `json:"bonusUsed"`
}

type UpdateOrderInput struct {
	Status         *string `json:"status"`
	DeliveryCrewID *uint   `json:"deliveryCrewId"`
}

// CheckoutResult is the response payload of a successful checkout. Total is
// the stored pre-bonus value; TotalAfterBonus is informational only.
type CheckoutResult struct {
	Order           *Order          `json:"order"`
	Total           decimal.Decimal `json:"total"`
	BonusUsed       decimal.Decimal `json:"bonusUsed"`
	BonusEarned     decimal.Decimal `json:"bonusEarned"`
	TotalAfterBonus decimal.Decimal `json:"totalAfterBonus"`
	Tip             decimal.Decimal `json:"tip"`
}
