package helper

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var testBonusPct = decimal.NewFromFloat(2.0)

func TestPlaceOrder(t *testing.T) {
	t.Run("converts cart to order and settles bonus and tip", func(t *testing.T) {
		db := newTestDB(t)
		user := seedUser(t, db, "alice", "3.00")
		item := seedMenuItem(t, db, "Margherita", "5.00")
		if _, _, err := AddToCart(db, user.ID, item.ID, 2); err != nil {
			t.Fatalf("add to cart: %v", err)
		}

		result, err := PlaceOrder(db, user.ID, model.CheckoutInput{
			Tip:       decimal.RequireFromString("2.00"),
			BonusUsed: decimal.RequireFromString("1.00"),
		}, testBonusPct)
		if err != nil {
			t.Fatalf("place order: %v", err)
		}

		mustDecimal(t, result.Total, "10.00")
		mustDecimal(t, result.TotalAfterBonus, "9.00")
		mustDecimal(t, result.BonusUsed, "1.00")
		// 3.00 - 1.00 redeemed + 9.00 * 2% accrued
		mustDecimal(t, result.BonusEarned, "2.18")

		var stored model.User
		if err := db.First(&stored, user.ID).Error; err != nil {
			t.Fatalf("reload user: %v", err)
		}
		mustDecimal(t, stored.BonusEarned, "2.18")
		mustDecimal(t, stored.Tip, "2.00")

		var order model.Order
		if err := db.Preload("Items").First(&order, result.Order.ID).Error; err != nil {
			t.Fatalf("reload order: %v", err)
		}
		if order.Status != model.OrderPending {
			t.Fatalf("status = %s, want %s", order.Status, model.OrderPending)
		}
		mustDecimal(t, order.Total, "10.00")
		if len(order.Items) != 1 {
			t.Fatalf("order items = %d, want 1", len(order.Items))
		}
		if order.Items[0].Quantity != 2 || order.Items[0].MenuItemID != item.ID {
			t.Fatalf("order item not copied from cart: %+v", order.Items[0])
		}
		mustDecimal(t, order.Items[0].Price, "10.00")
		if order.PublicCode == "" {
			t.Fatal("order has no public code")
		}

		var remaining int64
		db.Model(&model.CartLine{}).Where("user_id = ?", user.ID).Count(&remaining)
		if remaining != 0 {
			t.Fatalf("cart lines remaining = %d, want 0", remaining)
		}
	})

	t.Run("clamps bonus redemption at the order total", func(t *testing.T) {
		db := newTestDB(t)
		user := seedUser(t, db, "bob", "50.00")
		item := seedMenuItem(t, db, "Carbonara", "5.00")
		if _, _, err := AddToCart(db, user.ID, item.ID, 2); err != nil {
			t.Fatalf("add to cart: %v", err)
		}

		result, err := PlaceOrder(db, user.ID, model.CheckoutInput{
			BonusUsed: decimal.RequireFromString("50.00"),
		}, testBonusPct)
		if err != nil {
			t.Fatalf("place order: %v", err)
		}

		mustDecimal(t, result.Total, "10.00")
		mustDecimal(t, result.TotalAfterBonus, "0.00")
		mustDecimal(t, result.BonusUsed, "10.00")
		// nothing accrues on a fully redeemed order
		mustDecimal(t, result.BonusEarned, "40.00")
	})

	t.Run("rejects bonus above balance without touching state", func(t *testing.T) {
		db := newTestDB(t)
		user := seedUser(t, db, "carol", "3.00")
		item := seedMenuItem(t, db, "Tiramisu", "4.00")
		if _, _, err := AddToCart(db, user.ID, item.ID, 1); err != nil {
			t.Fatalf("add to cart: %v", err)
		}

		_, err := PlaceOrder(db, user.ID, model.CheckoutInput{
			BonusUsed: decimal.RequireFromString("3.01"),
		}, testBonusPct)
		if !errors.Is(err, ErrInsufficientBonus) {
			t.Fatalf("err = %v, want ErrInsufficientBonus", err)
		}

		var orders int64
		db.Model(&model.Order{}).Count(&orders)
		if orders != 0 {
			t.Fatalf("orders created = %d, want 0", orders)
		}
		var lines int64
		db.Model(&model.CartLine{}).Where("user_id = ?", user.ID).Count(&lines)
		if lines != 1 {
			t.Fatalf("cart lines = %d, want 1 (kept)", lines)
		}
		var stored model.User
		db.First(&stored, user.ID)
		mustDecimal(t, stored.BonusEarned, "3.00")
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		db := newTestDB(t)
		user := seedUser(t, db, "dave", "0.00")

		_, err := PlaceOrder(db, user.ID, model.CheckoutInput{}, testBonusPct)
		if !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("err = %v, want ErrEmptyCart", err)
		}
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		db := newTestDB(t)
		user := seedUser(t, db, "erin", "0.00")

		_, err := PlaceOrder(db, user.ID, model.CheckoutInput{
			Tip: decimal.RequireFromString("-1.00"),
		}, testBonusPct)
		if !errors.Is(err, ErrNegativeAmount) {
			t.Fatalf("err = %v, want ErrNegativeAmount", err)
		}
	})
}

// placeSeededOrder puts one item in the user's cart and checks it out.
func placeSeededOrder(t *testing.T, db *gorm.DB, user *model.User, tip string) *model.Order {
	t.Helper()

	item := seedMenuItem(t, db, "Lasagna-"+user.Username, "12.00")
	if _, _, err := AddToCart(db, user.ID, item.ID, 1); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	result, err := PlaceOrder(db, user.ID, model.CheckoutInput{
		Tip: decimal.RequireFromString(tip),
	}, testBonusPct)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	return result.Order
}

func TestUpdateOrder(t *testing.T) {
	t.Run("pays the held tip to the crew on READY", func(t *testing.T) {
		db := newTestDB(t)
		customer := seedUser(t, db, "frank", "0.00")
		crew := seedUser(t, db, "grace", "0.00")
		addToGroup(t, db, crew, constants.GROUP_DELIVERY_CREW)
		order := placeSeededOrder(t, db, customer, "2.50")

		updated, err := UpdateOrder(db, order.ID, model.UpdateOrderInput{
			Status:         utils.Ptr(model.OrderReady),
			DeliveryCrewID: &crew.ID,
		})
		if err != nil {
			t.Fatalf("update order: %v", err)
		}
		if updated.Status != model.OrderReady {
			t.Fatalf("status = %s, want %s", updated.Status, model.OrderReady)
		}
		if updated.DeliveryCrewID == nil || *updated.DeliveryCrewID != crew.ID {
			t.Fatalf("delivery crew = %v, want %d", updated.DeliveryCrewID, crew.ID)
		}

		var storedCustomer, storedCrew model.User
		db.First(&storedCustomer, customer.ID)
		db.First(&storedCrew, crew.ID)
		mustDecimal(t, storedCustomer.Tip, "0.00")
		mustDecimal(t, storedCrew.Tip, "2.50")
	})

	t.Run("does not pay twice on DELIVERED after READY", func(t *testing.T) {
		db := newTestDB(t)
		customer := seedUser(t, db, "heidi", "0.00")
		crew := seedUser(t, db, "ivan", "0.00")
		addToGroup(t, db, crew, constants.GROUP_DELIVERY_CREW)
		order := placeSeededOrder(t, db, customer, "3.00")

		for _, status := range []string{model.OrderReady, model.OrderDelivered} {
			if _, err := UpdateOrder(db, order.ID, model.UpdateOrderInput{
				Status:         utils.Ptr(status),
				DeliveryCrewID: &crew.ID,
			}); err != nil {
				t.Fatalf("update to %s: %v", status, err)
			}
		}

		var storedCrew model.User
		db.First(&storedCrew, crew.ID)
		mustDecimal(t, storedCrew.Tip, "3.00")
	})

	t.Run("READY without crew leaves the tip with the customer", func(t *testing.T) {
		db := newTestDB(t)
		customer := seedUser(t, db, "judy", "0.00")
		order := placeSeededOrder(t, db, customer, "1.00")

		if _, err := UpdateOrder(db, order.ID, model.UpdateOrderInput{
			Status: utils.Ptr(model.OrderReady),
		}); err != nil {
			t.Fatalf("update order: %v", err)
		}

		var stored model.User
		db.First(&stored, customer.ID)
		mustDecimal(t, stored.Tip, "1.00")
	})

	t.Run("rejects a crew id outside the Delivery Crew group", func(t *testing.T) {
		db := newTestDB(t)
		customer := seedUser(t, db, "mallory", "0.00")
		outsider := seedUser(t, db, "oscar", "0.00")
		order := placeSeededOrder(t, db, customer, "0.00")

		_, err := UpdateOrder(db, order.ID, model.UpdateOrderInput{
			DeliveryCrewID: &outsider.ID,
		})
		if !errors.Is(err, ErrInvalidDeliveryCrew) {
			t.Fatalf("err = %v, want ErrInvalidDeliveryCrew", err)
		}

		var stored model.Order
		db.First(&stored, order.ID)
		if stored.DeliveryCrewID != nil {
			t.Fatalf("crew assigned = %d, want none", *stored.DeliveryCrewID)
		}
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		db := newTestDB(t)
		customer := seedUser(t, db, "peggy", "0.00")
		order := placeSeededOrder(t, db, customer, "0.00")

		_, err := UpdateOrder(db, order.ID, model.UpdateOrderInput{
			Status: utils.Ptr("SHIPPED"),
		})
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("err = %v, want ErrInvalidStatus", err)
		}
	})

	t.Run("rejects an unknown order", func(t *testing.T) {
		db := newTestDB(t)

		_, err := UpdateOrder(db, 999, model.UpdateOrderInput{
			Status: utils.Ptr(model.OrderCancelled),
		})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("err = %v, want ErrOrderNotFound", err)
		}
	})
}

func TestOrdersScope(t *testing.T) {
	db := newTestDB(t)
	customer := seedUser(t, db, "quinn", "0.00")
	other := seedUser(t, db, "rupert", "0.00")
	crew := seedUser(t, db, "sybil", "0.00")
	addToGroup(t, db, crew, constants.GROUP_DELIVERY_CREW)
	manager := seedUser(t, db, "trent", "0.00")
	addToGroup(t, db, manager, constants.GROUP_MANAGER)

	own := placeSeededOrder(t, db, customer, "0.00")
	foreign := placeSeededOrder(t, db, other, "0.00")
	assigned := placeSeededOrder(t, db, other, "0.00")
	if _, err := UpdateOrder(db, assigned.ID, model.UpdateOrderInput{DeliveryCrewID: &crew.ID}); err != nil {
		t.Fatalf("assign crew: %v", err)
	}

	tests := []struct {
		name string
		user *model.User
		role model.Role
		want []uint
	}{
		{"manager sees all", manager, model.RoleManager, []uint{own.ID, foreign.ID, assigned.ID}},
		{"delivery crew sees assignments", crew, model.RoleDeliveryCrew, []uint{assigned.ID}},
		{"customer sees own", customer, model.RoleCustomer, []uint{own.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var orders model.Orders
			if err := OrdersScope(db, tt.user, tt.role).Order("id").Find(&orders).Error; err != nil {
				t.Fatalf("list orders: %v", err)
			}
			if len(orders) != len(tt.want) {
				t.Fatalf("orders = %d, want %d", len(orders), len(tt.want))
			}
			for i, id := range tt.want {
				if orders[i].ID != id {
					t.Fatalf("order[%d].ID = %d, want %d", i, orders[i].ID, id)
				}
			}
		})
	}
}
