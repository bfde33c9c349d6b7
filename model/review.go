package model

// Review is not unique per (user, menu item); a user may review an item more
// than once.
type Review struct {
	DTO
	UserID     uint      `gorm:"not null;index" json:"userId"`
	User       *User     `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	MenuItemID uint      `gorm:"not null;index" json:"menuItemId"`
	MenuItem   *MenuItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `json:"comment"`
}

type Reviews []Review

type CreateReviewInput struct {
	Rating  int    `validate:"required,min=1,max=5" json:"rating"`
	Comment string `json:"comment"`
}
