package handler

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetCategories(c *fiber.Ctx) error {
	var categories model.Categories
	if err := database.DB.Order("title").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func CreateCategory(c *fiber.Ctx) error {
	user, role := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}
	if role != model.RoleAdmin && role != model.RoleManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}

	input := c.Locals("input").(model.CreateCategoryInput)

	category := model.Category{
		Title: input.Title,
		Slug:  helper.GenerateUniqueCategorySlug(database.DB, input.Title),
	}
	if err := database.DB.Create(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, category)
}

func DeleteCategory(c *fiber.Ctx) error {
	user, role := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}
	if role != model.RoleAdmin && role != model.RoleManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}

	id := c.Locals("inputId").(int)

	var category model.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Category not found", err)
	}

	// delete is protected while menu items reference the category
	var count int64
	database.DB.Model(&model.MenuItem{}).Where("category_id = ?", category.ID).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Category still has menu items", errors.New("category referenced"))
	}

	if err := database.DB.Delete(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Category deleted"})
}
