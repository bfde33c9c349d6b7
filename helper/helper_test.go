package helper

import (
	"fmt"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	for _, name := range []string{constants.GROUP_MANAGER, constants.GROUP_DELIVERY_CREW} {
		if err := db.Create(&model.Group{Name: name}).Error; err != nil {
			t.Fatalf("seed group %s: %v", name, err)
		}
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, bonus string) *model.User {
	t.Helper()

	user := model.User{
		Username:    username,
		Email:       username + "@example.com",
		Password:    "x",
		BonusEarned: decimal.RequireFromString(bonus),
		Tip:         decimal.Zero,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return &user
}

var seedSeq atomic.Uint64

func seedMenuItem(t *testing.T, db *gorm.DB, title string, price string) *model.MenuItem {
	t.Helper()

	category := model.Category{
		Slug:  fmt.Sprintf("mains-%s-%d", strings.ToLower(title), seedSeq.Add(1)),
		Title: "Mains",
	}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	item := model.MenuItem{
		Title:      title,
		Price:      decimal.RequireFromString(price),
		CategoryID: category.ID,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed menu item %s: %v", title, err)
	}
	return &item
}

func addToGroup(t *testing.T, db *gorm.DB, user *model.User, groupName string) {
	t.Helper()

	var group model.Group
	if err := db.Where(model.Group{Name: groupName}).First(&group).Error; err != nil {
		t.Fatalf("group %s not seeded: %v", groupName, err)
	}
	if err := db.Model(user).Association("Groups").Append(&group); err != nil {
		t.Fatalf("add %s to group %s: %v", user.Username, groupName, err)
	}
	user.Groups = append(user.Groups, group)
}

func mustDecimal(t *testing.T, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("got %s, want %s", got, want)
	}
}
