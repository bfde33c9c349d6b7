package validate

import (
	"errors"
	"fmt"
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CheckoutInput

		// an empty body means no tip and no bonus redemption
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&input); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": fmt.Sprintf("Invalid input %s", err.Error()),
				})
			}
		}

		if input.Tip.IsNegative() || input.BonusUsed.IsNegative() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "tip and bonusUsed must not be negative",
			})
		}

		c.Locals("input", input)

		return c.Next()
	}
}

func UpdateOrder(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateOrderInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.Status != nil && !utils.IsValidValueOfConstant(*input.Status, model.OrderStatuses) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("status must be one of %v", model.OrderStatuses),
			})
		}

		c.Locals("inputId", id)
		c.Locals("input", input)

		return c.Next()
	}
}
