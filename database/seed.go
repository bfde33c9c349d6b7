package database

import (
	"log"
	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	for _, name := range []string{constants.GROUP_MANAGER, constants.GROUP_DELIVERY_CREW} {
		group := model.Group{Name: name}
		if err := db.Where(model.Group{Name: name}).FirstOrCreate(&group).Error; err != nil {
			log.Println("failed to seed group:", name, "error:", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("123456rm"), 10)
	if err != nil {
		log.Println("failed to hash admin password, skipping admin seed:", err)
	} else {
		admin := model.User{
			Username:    "Administration",
			Email:       "admin@restaurant.local",
			Password:    string(hash),
			IsSuperuser: true,
		}
		if err := db.Where(model.User{Username: admin.Username}).FirstOrCreate(&admin).Error; err != nil {
			log.Println("failed to seed admin user:", err)
		}
	}

	categories := []model.Category{
		{Title: "Appetizers"},
		{Title: "Main Courses"},
		{Title: "Desserts"},
		{Title: "Drinks"},
	}
	for i := range categories {
		categories[i].Slug = slug.Make(categories[i].Title)
		if err := db.Where(model.Category{Slug: categories[i].Slug}).FirstOrCreate(&categories[i]).Error; err != nil {
			log.Println("failed to seed category:", categories[i].Title, "error:", err)
		}
	}

	var mains model.Category
	db.Where(model.Category{Slug: "main-courses"}).First(&mains)
	if mains.ID == 0 {
		return
	}

	items := []model.MenuItem{
		{Title: "Grilled Salmon", Price: decimal.NewFromFloat(14.50), Featured: true, CategoryID: mains.ID},
		{Title: "Margherita Pizza", Price: decimal.NewFromFloat(9.90), CategoryID: mains.ID},
		{Title: "Pasta Carbonara", Price: decimal.NewFromFloat(11.00), CategoryID: mains.ID},
	}
	for i := range items {
		if err := db.Where(model.MenuItem{Title: items[i].Title, CategoryID: items[i].CategoryID}).FirstOrCreate(&items[i]).Error; err != nil {
			log.Println("failed to seed menu item:", items[i].Title, "error:", err)
		}
	}
}
