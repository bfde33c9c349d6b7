package handler

import (
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetReservations(c *fiber.Ctx) error {
	user, role := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	query := database.DB.Model(&model.Reservation{})
	if role != model.RoleAdmin && role != model.RoleManager {
		query = query.Where("user_id = ?", user.ID)
	}

	var reservations model.Reservations
	if err := query.Order("date, time").Find(&reservations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservations)
}

func CreateReservation(c *fiber.Ctx) error {
	user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	input := c.Locals("input").(model.CreateReservationInput)

	var reservation model.Reservation
	copier.Copy(&reservation, &input)
	reservation.UserID = &user.ID

	if err := database.DB.Create(&reservation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, reservation)
}

func GetReservationById(c *fiber.Ctx) error {
	user, role := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	id := c.Locals("inputId").(int)

	var reservation model.Reservation
	if err := database.DB.First(&reservation, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation not found", err)
	}

	owner := reservation.UserID != nil && *reservation.UserID == user.ID
	if !owner && role != model.RoleAdmin && role != model.RoleManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

func EditReservation(c *fiber.Ctx) error {
	_, role := helper.GetInfoUserFromToken(c)
	if role != model.RoleAdmin && role != model.RoleManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}

	id := c.Locals("inputId").(int)
	input := c.Locals("input").(model.EditReservationInput)

	var reservation model.Reservation
	if err := database.DB.First(&reservation, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation not found", err)
	}

	copier.Copy(&reservation, &input)
	if err := database.DB.Save(&reservation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}
