package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func GetOrders(c *fiber.Ctx) error {
	user, role := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	var orders model.Orders
	if err := helper.OrdersScope(database.DB, user, role).
		Preload("Items").
		Preload("Items.MenuItem").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}

func Checkout(c *fiber.Ctx) error {
	user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	input := c.Locals("input").(model.CheckoutInput)

	result, err := helper.PlaceOrder(database.DB, user.ID, input, config.BonusPercentage())
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrEmptyCart):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "No items in cart", err)
		case errors.Is(err, helper.ErrInsufficientBonus):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Insufficient bonus balance", err)
		case errors.Is(err, helper.ErrNegativeAmount):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Tip and bonus must be non-negative", err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	var created model.Order
	if err := database.DB.Preload("Items").Preload("Items.MenuItem").First(&created, result.Order.ID).Error; err == nil {
		result.Order = &created
	}

	itemTitles := make([]string, 0, len(result.Order.Items))
	for _, item := range result.Order.Items {
		title := fmt.Sprintf("item #%d", item.MenuItemID)
		if item.MenuItem != nil {
			title = item.MenuItem.Title
		}
		itemTitles = append(itemTitles, fmt.Sprintf("%dx %s", item.Quantity, title))
	}
	utils.SendOrderConfirmationEmail(user.Email, utils.OrderConfirmationData{
		OrderCode:       result.Order.PublicCode,
		Username:        user.Username,
		Items:           strings.Join(itemTitles, ", "),
		Total:           result.Total.StringFixed(2),
		TotalAfterBonus: result.TotalAfterBonus.StringFixed(2),
		BonusUsed:       result.BonusUsed.StringFixed(2),
		Tip:             result.Tip.StringFixed(2),
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, result)
}

func GetOrderById(c *fiber.Ctx) error {
	user, role := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	id := c.Locals("inputId").(int)

	var order model.Order
	if err := helper.OrdersScope(database.DB, user, role).
		Preload("Items").
		Preload("Items.MenuItem").
		First(&order, "orders.id = ?", id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}

	// one QR for the whole order, scanned at pickup/delivery
	qrBase64 := ""
	qrBytes, err := utils.GenerateQRCode(order.PublicCode, 400)
	if err != nil {
		log.Printf("failed to generate QR for order %s: %v", order.PublicCode, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"order":  order,
		"qrCode": qrBase64,
	})
}

func UpdateOrder(c *fiber.Ctx) error {
	user, role := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}
	if !role.IsStaff() {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, errors.New("customers cannot update orders"))
	}

	id := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateOrderInput)

	// delivery crew may only move the status of their own assignments
	if role == model.RoleDeliveryCrew {
		if input.DeliveryCrewID != nil {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, errors.New("delivery crew cannot reassign orders"))
		}
		var assigned int64
		database.DB.Model(&model.Order{}).
			Where("id = ? AND delivery_crew_id = ?", id, user.ID).
			Count(&assigned)
		if assigned == 0 {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", nil)
		}
	}

	order, err := helper.UpdateOrder(database.DB, uint(id), input)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrOrderNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
		case errors.Is(err, helper.ErrInvalidDeliveryCrew):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid delivery crew ID", err)
		case errors.Is(err, helper.ErrInvalidStatus):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid order status", err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}
