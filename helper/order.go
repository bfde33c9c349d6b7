package helper

import (
	"errors"
	"log"
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEmptyCart           = errors.New("no items in cart")
	ErrInsufficientBonus   = errors.New("insufficient bonus balance")
	ErrNegativeAmount      = errors.New("tip and bonus must be non-negative")
	ErrInvalidDeliveryCrew = errors.New("invalid delivery crew id")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrOrderNotFound       = errors.New("order not found")
)

func decimalFromInt(v int) decimal.Decimal {
	return decimal.NewFromInt(int64(v))
}

// lockForUpdate takes a row lock on postgres. SQLite (tests) has no row locks;
// its transactions are serialized by the single writer.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// PlaceOrder converts the user's cart into an order in one transaction: sum
// the cart, redeem bonus, persist order + items, clear the cart, accrue the
// new bonus and hold the tip. The user row is locked first so two concurrent
// checkouts for the same user cannot both read the same balance.
func PlaceOrder(db *gorm.DB, userID uint, input model.CheckoutInput, bonusPct decimal.Decimal) (*model.CheckoutResult, error) {
	tip := input.Tip
	bonusUsed := input.BonusUsed
	if tip.IsNegative() || bonusUsed.IsNegative() {
		return nil, ErrNegativeAmount
	}

	var result model.CheckoutResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := lockForUpdate(tx).First(&user, userID).Error; err != nil {
			return err
		}

		var lines model.CartLines
		if err := tx.Where("user_id = ?", userID).Order("id").Find(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		for _, line := range lines {
			total = total.Add(line.Price)
		}

		if bonusUsed.GreaterThan(user.BonusEarned) {
			return ErrInsufficientBonus
		}

		// the stored total stays pre-bonus; over-redemption clamps bonusUsed
		// down to the total instead of driving the figure negative
		totalAfterBonus := total.Sub(bonusUsed)
		if totalAfterBonus.IsNegative() {
			totalAfterBonus = decimal.Zero
			bonusUsed = total
		}

		order := model.Order{
			PublicCode: "ORD-" + uuid.New().String()[:8],
			UserID:     userID,
			Status:     model.OrderPending,
			Total:      total,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		items := make([]model.OrderItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, model.OrderItem{
				OrderID:    order.ID,
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				Price:      line.Price,
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.CartLine{}).Error; err != nil {
			return err
		}

		accrued := totalAfterBonus.Mul(bonusPct).Div(decimal.NewFromInt(100)).Round(2)
		user.BonusEarned = user.BonusEarned.Add(accrued).Sub(bonusUsed)
		if tip.IsPositive() {
			user.Tip = user.Tip.Add(tip)
		}
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		order.Items = items
		result = model.CheckoutResult{
			Order:           &order,
			Total:           total,
			BonusUsed:       bonusUsed,
			BonusEarned:     user.BonusEarned,
			TotalAfterBonus: totalAfterBonus,
			Tip:             tip,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdateOrder applies a status change and/or delivery-crew assignment. When
// the order moves to READY or DELIVERED with a crew assigned and the customer
// holds a tip, the whole tip moves to the crew member in the same transaction.
func UpdateOrder(db *gorm.DB, orderID uint, input model.UpdateOrderInput) (*model.Order, error) {
	var out model.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var order model.Order
		if err := lockForUpdate(tx).First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if input.DeliveryCrewID != nil {
			var crew model.User
			err := tx.Joins("JOIN user_groups ON user_groups.user_id = users.id").
				Joins("JOIN groups ON groups.id = user_groups.group_id").
				Where("users.id = ? AND groups.name = ?", *input.DeliveryCrewID, constants.GROUP_DELIVERY_CREW).
				First(&crew).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrInvalidDeliveryCrew
				}
				return err
			}
			order.DeliveryCrewID = input.DeliveryCrewID
		}

		newStatus := ""
		if input.Status != nil {
			if !utils.IsValidValueOfConstant(*input.Status, model.OrderStatuses) {
				return ErrInvalidStatus
			}
			order.Status = *input.Status
			newStatus = *input.Status
		}

		if newStatus == model.OrderReady || newStatus == model.OrderDelivered {
			if order.DeliveryCrewID != nil {
				var customer model.User
				if err := lockForUpdate(tx).First(&customer, order.UserID).Error; err != nil {
					return err
				}
				if customer.Tip.IsPositive() {
					var crew model.User
					if err := lockForUpdate(tx).First(&crew, *order.DeliveryCrewID).Error; err != nil {
						return err
					}
					crew.Tip = crew.Tip.Add(customer.Tip)
					customer.Tip = decimal.Zero
					if err := tx.Save(&customer).Error; err != nil {
						return err
					}
					if err := tx.Save(&crew).Error; err != nil {
						return err
					}
				} else {
					log.Printf("order %d has no tip to transfer", order.ID)
				}
			} else {
				log.Printf("order %d has no delivery crew assigned for tip transfer", order.ID)
			}
		}

		if err := tx.Save(&order).Error; err != nil {
			return err
		}
		out = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// OrdersScope narrows the order listing to what the caller may see: admins
// and managers see everything, delivery crew their assignments, customers
// their own orders.
func OrdersScope(db *gorm.DB, user *model.User, role model.Role) *gorm.DB {
	query := db.Model(&model.Order{})
	switch role {
	case model.RoleAdmin, model.RoleManager:
		return query
	case model.RoleDeliveryCrew:
		return query.Where("delivery_crew_id = ?", user.ID)
	default:
		return query.Where("user_id = ?", user.ID)
	}
}
