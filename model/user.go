package model

import "github.com/shopspring/decimal"

type User struct {
	DTO
	Username    string          `gorm:"uniqueIndex;not null" json:"username"`
	Email       string          `json:"email"`
	Password    string          `gorm:"not null" json:"-"`
	IsSuperuser bool            `gorm:"not null;default:false" json:"isSuperuser"`
	BonusEarned decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"bonusEarned"`
	Tip         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"tip"`
	Groups      []Group         `gorm:"many2many:user_groups" json:"groups,omitempty"`
}

type Users []User

type Group struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// Role is the caller's capability, resolved once per request from the superuser
// flag and group membership.
type Role int

const (
	RoleAnonymous Role = iota
	RoleCustomer
	RoleDeliveryCrew
	RoleManager
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleDeliveryCrew:
		return "delivery_crew"
	case RoleManager:
		return "manager"
	case RoleAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}

// IsStaff reports whether the role may touch other users' orders.
func (r Role) IsStaff() bool {
	return r == RoleDeliveryCrew || r == RoleManager || r == RoleAdmin
}

type RegisterUserInput struct {
	Username string `validate:"required,min=3,max=50" json:"username"`
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required,min=6,max=50" json:"password"`
}

type GroupMemberInput struct {
	Username string `validate:"required" json:"username"`
}
