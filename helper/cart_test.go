package helper

import (
	"encoding/json"
	"errors"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"testing"
)

func TestAddToCart(t *testing.T) {
	t.Run("creates a line and snapshots the unit price", func(t *testing.T) {
		db := newTestDB(t)
		user := seedUser(t, db, "alice", "0.00")
		item := seedMenuItem(t, db, "Margherita", "5.00")

		line, created, err := AddToCart(db, user.ID, item.ID, 2)
		if err != nil {
			t.Fatalf("add to cart: %v", err)
		}
		if !created {
			t.Fatal("created = false, want true for a fresh line")
		}
		if line.Quantity != 2 {
			t.Fatalf("quantity = %d, want 2", line.Quantity)
		}
		mustDecimal(t, line.UnitPrice, "5.00")
		mustDecimal(t, line.Price, "10.00")
	})

	t.Run("merges quantities into the existing line", func(t *testing.T) {
		db := newTestDB(t)
		user := seedUser(t, db, "bob", "0.00")
		item := seedMenuItem(t, db, "Carbonara", "4.50")

		if _, _, err := AddToCart(db, user.ID, item.ID, 2); err != nil {
			t.Fatalf("first add: %v", err)
		}
		line, created, err := AddToCart(db, user.ID, item.ID, 3)
		if err != nil {
			t.Fatalf("second add: %v", err)
		}
		if created {
			t.Fatal("created = true, want false for a merge")
		}
		if line.Quantity != 5 {
			t.Fatalf("quantity = %d, want 5", line.Quantity)
		}
		mustDecimal(t, line.Price, "22.50")

		var count int64
		db.Model(&model.CartLine{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 1 {
			t.Fatalf("cart lines = %d, want 1", count)
		}
	})

	t.Run("defaults quantity below one to one", func(t *testing.T) {
		db := newTestDB(t)
		user := seedUser(t, db, "carol", "0.00")
		item := seedMenuItem(t, db, "Tiramisu", "3.00")

		line, _, err := AddToCart(db, user.ID, item.ID, 0)
		if err != nil {
			t.Fatalf("add to cart: %v", err)
		}
		if line.Quantity != 1 {
			t.Fatalf("quantity = %d, want 1", line.Quantity)
		}
	})

	t.Run("rejects an unknown menu item", func(t *testing.T) {
		db := newTestDB(t)
		user := seedUser(t, db, "dave", "0.00")

		_, _, err := AddToCart(db, user.ID, 999, 1)
		if !errors.Is(err, ErrMenuItemNotFound) {
			t.Fatalf("err = %v, want ErrMenuItemNotFound", err)
		}
	})
}

func TestUpdateCartLine(t *testing.T) {
	t.Run("recomputes the line price from the snapshot", func(t *testing.T) {
		db := newTestDB(t)
		user := seedUser(t, db, "erin", "0.00")
		item := seedMenuItem(t, db, "Bruschetta", "2.50")
		if _, _, err := AddToCart(db, user.ID, item.ID, 1); err != nil {
			t.Fatalf("add to cart: %v", err)
		}

		// a later price change must not affect the snapshotted line
		if err := db.Model(item).Update("price", "9.99").Error; err != nil {
			t.Fatalf("reprice item: %v", err)
		}

		line, removed, err := UpdateCartLine(db, user.ID, item.ID, utils.Ptr(4))
		if err != nil {
			t.Fatalf("update line: %v", err)
		}
		if removed {
			t.Fatal("removed = true, want false")
		}
		mustDecimal(t, line.Price, "10.00")
	})

	t.Run("keeps the quantity when the body omits it", func(t *testing.T) {
		db := newTestDB(t)
		user := seedUser(t, db, "olivia", "0.00")
		item := seedMenuItem(t, db, "Arancini", "4.00")
		if _, _, err := AddToCart(db, user.ID, item.ID, 2); err != nil {
			t.Fatalf("add to cart: %v", err)
		}

		var input model.UpdateCartLineInput
		if err := json.Unmarshal([]byte(`{}`), &input); err != nil {
			t.Fatalf("unmarshal empty body: %v", err)
		}

		line, removed, err := UpdateCartLine(db, user.ID, item.ID, input.Quantity)
		if err != nil {
			t.Fatalf("update line: %v", err)
		}
		if removed {
			t.Fatal("removed = true, want line kept")
		}
		if line.Quantity != 2 {
			t.Fatalf("quantity = %d, want 2", line.Quantity)
		}
		mustDecimal(t, line.Price, "8.00")
	})

	t.Run("removes the line when quantity drops below one", func(t *testing.T) {
		db := newTestDB(t)
		user := seedUser(t, db, "frank", "0.00")
		item := seedMenuItem(t, db, "Focaccia", "3.00")
		if _, _, err := AddToCart(db, user.ID, item.ID, 2); err != nil {
			t.Fatalf("add to cart: %v", err)
		}

		_, removed, err := UpdateCartLine(db, user.ID, item.ID, utils.Ptr(0))
		if err != nil {
			t.Fatalf("update line: %v", err)
		}
		if !removed {
			t.Fatal("removed = false, want true")
		}

		var count int64
		db.Model(&model.CartLine{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 0 {
			t.Fatalf("cart lines = %d, want 0", count)
		}
	})

	t.Run("reports a missing line", func(t *testing.T) {
		db := newTestDB(t)
		user := seedUser(t, db, "grace", "0.00")

		_, _, err := UpdateCartLine(db, user.ID, 999, utils.Ptr(1))
		if !errors.Is(err, ErrCartLineNotFound) {
			t.Fatalf("err = %v, want ErrCartLineNotFound", err)
		}
	})
}

func TestClearCart(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "heidi", "0.00")
	other := seedUser(t, db, "ivan", "0.00")
	itemA := seedMenuItem(t, db, "Gnocchi", "6.00")
	itemB := seedMenuItem(t, db, "Risotto", "8.00")
	for _, id := range []uint{itemA.ID, itemB.ID} {
		if _, _, err := AddToCart(db, user.ID, id, 1); err != nil {
			t.Fatalf("add to cart: %v", err)
		}
	}
	if _, _, err := AddToCart(db, other.ID, itemA.ID, 1); err != nil {
		t.Fatalf("add to other cart: %v", err)
	}

	if err := ClearCart(db, user.ID); err != nil {
		t.Fatalf("clear cart: %v", err)
	}

	var mine, theirs int64
	db.Model(&model.CartLine{}).Where("user_id = ?", user.ID).Count(&mine)
	db.Model(&model.CartLine{}).Where("user_id = ?", other.ID).Count(&theirs)
	if mine != 0 {
		t.Fatalf("own cart lines = %d, want 0", mine)
	}
	if theirs != 1 {
		t.Fatalf("other cart lines = %d, want 1 (untouched)", theirs)
	}
}
