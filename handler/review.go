package handler

import (
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetReviews(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var item model.MenuItem
	if err := database.DB.First(&item, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Menu item not found", err)
	}

	var reviews model.Reviews
	if err := database.DB.Where("menu_item_id = ?", item.ID).Order("created_at desc").Find(&reviews).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reviews)
}

func CreateReview(c *fiber.Ctx) error {
	user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	id := c.Locals("inputId").(int)
	input := c.Locals("input").(model.CreateReviewInput)

	var item model.MenuItem
	if err := database.DB.First(&item, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Menu item not found", err)
	}

	review := model.Review{
		UserID:     user.ID,
		MenuItemID: item.ID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, review)
}
