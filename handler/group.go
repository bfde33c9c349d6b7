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

func groupMembers(groupName string) (model.Users, error) {
	var users model.Users
	err := database.DB.
		Joins("JOIN user_groups ON user_groups.user_id = users.id").
		Joins("JOIN groups ON groups.id = user_groups.group_id").
		Where("groups.name = ?", groupName).
		Find(&users).Error
	return users, err
}

func mutateGroup(c *fiber.Ctx, groupName string, add bool) error {
	input := c.Locals("input").(model.GroupMemberInput)

	member, err := helper.GetUserByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if member == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", errors.New("username not exists"))
	}

	var group model.Group
	if err := database.DB.Where(model.Group{Name: groupName}).First(&group).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	assoc := database.DB.Model(member).Association("Groups")
	if add {
		if err := assoc.Append(&group); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "user added to the " + groupName + " group"})
	}
	if err := assoc.Delete(&group); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "user removed from the " + groupName + " group"})
}

// Manager membership: admin only.

func GetManagers(c *fiber.Ctx) error {
	_, role := helper.GetInfoUserFromToken(c)
	if role != model.RoleAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}

	users, err := groupMembers(constants.GROUP_MANAGER)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, users)
}

func AddManager(c *fiber.Ctx) error {
	_, role := helper.GetInfoUserFromToken(c)
	if role != model.RoleAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}
	return mutateGroup(c, constants.GROUP_MANAGER, true)
}

func RemoveManager(c *fiber.Ctx) error {
	_, role := helper.GetInfoUserFromToken(c)
	if role != model.RoleAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}
	return mutateGroup(c, constants.GROUP_MANAGER, false)
}

// Delivery crew membership: listing is open to any authenticated caller,
// mutation takes admin or manager.

func GetDeliveryCrew(c *fiber.Ctx) error {
	user, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}

	users, err := groupMembers(constants.GROUP_DELIVERY_CREW)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, users)
}

func AddDeliveryCrew(c *fiber.Ctx) error {
	_, role := helper.GetInfoUserFromToken(c)
	if role != model.RoleAdmin && role != model.RoleManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}
	return mutateGroup(c, constants.GROUP_DELIVERY_CREW, true)
}

func RemoveDeliveryCrew(c *fiber.Ctx) error {
	_, role := helper.GetInfoUserFromToken(c)
	if role != model.RoleAdmin && role != model.RoleManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}
	return mutateGroup(c, constants.GROUP_DELIVERY_CREW, false)
}
