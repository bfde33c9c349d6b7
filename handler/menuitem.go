package handler

import (
	"context"
	"fmt"
	"mime/multipart"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func parseMenuItemFilter(c *fiber.Ctx) model.FilterMenuItem {
	var filter model.FilterMenuItem

	if raw := c.Query("category"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			filter.CategoryID = utils.Ptr(uint(id))
		}
	}
	if raw := c.Query("price_min"); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil {
			filter.PriceMin = &v
		}
	}
	if raw := c.Query("price_max"); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil {
			filter.PriceMax = &v
		}
	}
	filter.SearchKey = c.Query("search")
	filter.Ordering = c.Query("ordering")
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.Limit = &v
		}
	}
	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.Page = &v
		}
	}

	return filter
}

func GetMenuItems(c *fiber.Ctx) error {
	filter := parseMenuItemFilter(c)

	query := database.DB.Model(&model.MenuItem{}).
		Joins("JOIN categories ON categories.id = menu_items.category_id").
		Preload("Category")

	if filter.CategoryID != nil {
		query = query.Where("menu_items.category_id = ?", *filter.CategoryID)
	}
	if filter.PriceMin != nil {
		query = query.Where("menu_items.price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("menu_items.price <= ?", *filter.PriceMax)
	}
	if filter.SearchKey != "" {
		like := "%" + filter.SearchKey + "%"
		query = query.Where("LOWER(menu_items.title) LIKE LOWER(?) OR LOWER(categories.title) LIKE LOWER(?)", like, like)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	switch filter.Ordering {
	case "price":
		query = query.Order("menu_items.price asc")
	case "-price":
		query = query.Order("menu_items.price desc")
	default:
		query = query.Order("menu_items.category_id asc, menu_items.id asc")
	}

	var items model.MenuItems
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       items,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetMenuItemById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var item model.MenuItem
	if err := database.DB.Preload("Category").First(&item, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Menu item not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func CreateMenuItem(c *fiber.Ctx) error {
	user, role := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}
	if role != model.RoleAdmin && role != model.RoleManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}

	input := c.Locals("input").(model.CreateMenuItemInput)

	var category model.Category
	if err := database.DB.First(&category, input.CategoryID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Category not found", err)
	}

	var item model.MenuItem
	copier.Copy(&item, &input)
	if err := database.DB.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func EditMenuItem(c *fiber.Ctx) error {
	user, role := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}
	if role != model.RoleAdmin && role != model.RoleManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}

	id := c.Locals("inputId").(int)
	input := c.Locals("input").(model.EditMenuItemInput)

	var item model.MenuItem
	if err := database.DB.First(&item, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Menu item not found", err)
	}

	if input.CategoryID != nil {
		var category model.Category
		if err := database.DB.First(&category, *input.CategoryID).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Category not found", err)
		}
	}

	copier.Copy(&item, &input)
	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func DeleteMenuItem(c *fiber.Ctx) error {
	user, role := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}
	if role != model.RoleAdmin && role != model.RoleManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}

	id := c.Locals("inputId").(int)

	var item model.MenuItem
	if err := database.DB.First(&item, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Menu item not found", err)
	}

	// dependent cart lines and order items go with the item
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", item.ID).Delete(&model.CartLine{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_item_id = ?", item.ID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_item_id = ?", item.ID).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Menu item deleted"})
}

func UploadMenuItemImage(c *fiber.Ctx) error {
	user, role := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}
	if role != model.RoleAdmin && role != model.RoleManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}

	id := c.Locals("inputId").(int)
	file := c.Locals("imageFile").(*multipart.FileHeader)

	var item model.MenuItem
	if err := database.DB.First(&item, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Menu item not found", err)
	}

	f, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot open uploaded file", err)
	}
	defer f.Close()

	cld := helper.InitCloudinary()
	publicID := fmt.Sprintf("menuitem_%d_%d", item.ID, time.Now().UnixNano())
	uploadResult, err := cld.Upload.Upload(context.Background(), f, uploader.UploadParams{
		Folder:       "menu_images",
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}

	item.Image = &uploadResult.SecureURL
	if err := database.DB.Save(&item).Error; err != nil {
		// roll back the uploaded asset so Cloudinary does not keep an orphan
		cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: uploadResult.PublicID})
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}
