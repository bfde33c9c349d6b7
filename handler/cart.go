package handler

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func GetCart(c *fiber.Ctx) error {
	user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	var lines model.CartLines
	if err := database.DB.Preload("MenuItem").Where("user_id = ?", user.ID).Order("id").Find(&lines).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"lines": lines,
		"total": total,
	})
}

func AddToCart(c *fiber.Ctx) error {
	user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	input := c.Locals("input").(model.AddToCartInput)

	line, created, err := helper.AddToCart(database.DB, user.ID, input.MenuItemID, input.Quantity)
	if err != nil {
		if errors.Is(err, helper.ErrMenuItemNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Menu item not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// 201 on a new line, 200 when the quantity merged into an existing one
	if created {
		return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
			"message": "Item added to cart",
			"line":    line,
		})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Item already in cart, quantity updated",
		"line":    line,
	})
}

func ClearCart(c *fiber.Ctx) error {
	user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	if err := helper.ClearCart(database.DB, user.ID); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Cart cleared"})
}

func UpdateCartLine(c *fiber.Ctx) error {
	user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	menuItemID := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateCartLineInput)

	line, removed, err := helper.UpdateCartLine(database.DB, user.ID, uint(menuItemID), input.Quantity)
	if err != nil {
		if errors.Is(err, helper.ErrCartLineNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Cart line not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if removed {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Item removed from cart"})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, line)
}

func RemoveCartLine(c *fiber.Ctx) error {
	user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	menuItemID := c.Locals("inputId").(int)

	if err := helper.RemoveCartLine(database.DB, user.ID, uint(menuItemID)); err != nil {
		if errors.Is(err, helper.ErrCartLineNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Cart line not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Cart line deleted"})
}
