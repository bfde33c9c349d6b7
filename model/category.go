package model

type Category struct {
	DTO
	Slug  string `gorm:"uniqueIndex;not null" json:"slug"`
	Title string `gorm:"not null;index" json:"title"`
}

type Categories []Category

type CreateCategoryInput struct {
	Title string `validate:"required,max=255" json:"title"`
}
