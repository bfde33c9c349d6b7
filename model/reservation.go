package model

type Reservation struct {
	DTO
	UserID         *uint  `json:"userId"`
	User           *User  `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Date           string `gorm:"not null" json:"date"` // YYYY-MM-DD
	Time           string `gorm:"not null" json:"time"` // HH:MM
	PhoneNumber    string `gorm:"size:15;not null" json:"phoneNumber"`
	NumberOfGuests int    `gorm:"not null" json:"numberOfGuests"`
	Message        string `json:"message"`
}

type Reservations []Reservation

type CreateReservationInput struct {
	Date           string `validate:"required,datetime=2006-01-02" json:"date"`
	Time           string `validate:"required,datetime=15:04" json:"time"`
	PhoneNumber    string `validate:"required,max=15" json:"phoneNumber"`
	NumberOfGuests int    `validate:"required,min=1" json:"numberOfGuests"`
	Message        string `json:"message"`
}

type EditReservationInput struct {
	Date           *string `validate:"omitempty,datetime=2006-01-02" json:"date"`
	Time           *string `validate:"omitempty,datetime=15:04" json:"time"`
	PhoneNumber    *string `validate:"omitempty,max=15" json:"phoneNumber"`
	NumberOfGuests *int    `validate:"omitempty,min=1" json:"numberOfGuests"`
	Message        *string `json:"message"`
}
