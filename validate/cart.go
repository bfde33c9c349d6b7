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

func AddToCart() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AddToCartInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		// quantity defaults to 1 when omitted
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		c.Locals("input", input)

		return c.Next()
	}
}

func UpdateCartLine(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateCartLineInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		c.Locals("inputId", id)
		c.Locals("input", input)

		return c.Next()
	}
}
