package helper

import (
	"errors"
	"restaurant_manager/model"

	"gorm.io/gorm"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrCartLineNotFound = errors.New("cart line not found")
)

// AddToCart creates a cart line for (user, item) or merges into the existing
// one. The returned flag reports whether a new line was created. UnitPrice is
// snapshotted from the current menu-item price on first add; the line price is
// recomputed from quantity either way.
func AddToCart(db *gorm.DB, userID uint, menuItemID uint, quantity int) (*model.CartLine, bool, error) {
	if quantity < 1 {
		quantity = 1
	}

	var item model.MenuItem
	if err := db.First(&item, menuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrMenuItemNotFound
		}
		return nil, false, err
	}

	var line model.CartLine
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&line).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			line = model.CartLine{
				UserID:     userID,
				MenuItemID: menuItemID,
				Quantity:   quantity,
				UnitPrice:  item.Price,
				Price:      item.Price.Mul(decimalFromInt(quantity)),
			}
			created = true
			return tx.Create(&line).Error
		}
		if err != nil {
			return err
		}

		line.Quantity += quantity
		line.Price = line.UnitPrice.Mul(decimalFromInt(line.Quantity))
		return tx.Save(&line).Error
	})
	if err != nil {
		return nil, false, err
	}

	return &line, created, nil
}

// UpdateCartLine sets a new quantity on the caller's line for menuItemID.
// A nil quantity keeps the current one; a quantity below 1 removes the line.
// The returned flag reports removal.
func UpdateCartLine(db *gorm.DB, userID uint, menuItemID uint, quantity *int) (*model.CartLine, bool, error) {
	var line model.CartLine
	if err := db.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrCartLineNotFound
		}
		return nil, false, err
	}

	newQuantity := line.Quantity
	if quantity != nil {
		newQuantity = *quantity
	}

	if newQuantity < 1 {
		if err := db.Delete(&line).Error; err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	line.Quantity = newQuantity
	line.Price = line.UnitPrice.Mul(decimalFromInt(newQuantity))
	if err := db.Save(&line).Error; err != nil {
		return nil, false, err
	}

	return &line, false, nil
}

// RemoveCartLine deletes the caller's line for menuItemID.
func RemoveCartLine(db *gorm.DB, userID uint, menuItemID uint) error {
	var line model.CartLine
	if err := db.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartLineNotFound
		}
		return err
	}
	return db.Delete(&line).Error
}

// ClearCart drops every line of the user's cart.
func ClearCart(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&model.CartLine{}).Error
}
