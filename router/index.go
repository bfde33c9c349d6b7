package router

import (
	"restaurant_manager/handler"
	"restaurant_manager/middleware"
	"restaurant_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.RegisterUser(), handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)

	categories := v1.Group("/categories", logger.New())
	categories.Get("/", middleware.OptionalJWT(), handler.GetCategories)
	categories.Post("/", middleware.Protected(), validate.CreateCategory(), handler.CreateCategory)
	categories.Delete("/:categoryId", middleware.Protected(), validate.GetById("categoryId"), handler.DeleteCategory)

	menuItems := v1.Group("/menu-items", logger.New())
	menuItems.Get("/", middleware.OptionalJWT(), handler.GetMenuItems)
	menuItems.Post("/", middleware.Protected(), validate.CreateMenuItem(), handler.CreateMenuItem)
	menuItems.Get("/:menuItemId", middleware.OptionalJWT(), validate.GetById("menuItemId"), handler.GetMenuItemById)
	menuItems.Put("/:menuItemId", middleware.Protected(), validate.EditMenuItem("menuItemId"), handler.EditMenuItem)
	menuItems.Delete("/:menuItemId", middleware.Protected(), validate.GetById("menuItemId"), handler.DeleteMenuItem)
	menuItems.Post("/:menuItemId/image", middleware.Protected(), validate.UploadMenuItemImage("menuItemId"), handler.UploadMenuItemImage)
	menuItems.Get("/:menuItemId/reviews", middleware.OptionalJWT(), validate.GetById("menuItemId"), handler.GetReviews)
	menuItems.Post("/:menuItemId/reviews", middleware.Protected(), validate.CreateReview("menuItemId"), handler.CreateReview)

	cart := v1.Group("/cart", logger.New())
	cart.Get("/", middleware.Protected(), handler.GetCart)
	cart.Post("/", middleware.Protected(), validate.AddToCart(), handler.AddToCart)
	cart.Delete("/", middleware.Protected(), handler.ClearCart)
	cart.Put("/:menuItemId", middleware.Protected(), validate.UpdateCartLine("menuItemId"), handler.UpdateCartLine)
	cart.Delete("/:menuItemId", middleware.Protected(), validate.GetById("menuItemId"), handler.RemoveCartLine)

	orders := v1.Group("/orders", logger.New())
	orders.Get("/", middleware.Protected(), handler.GetOrders)
	orders.Post("/", middleware.Protected(), validate.Checkout(), handler.Checkout)
	orders.Get("/:orderId", middleware.Protected(), validate.GetById("orderId"), handler.GetOrderById)
	orders.Put("/:orderId", middleware.Protected(), validate.UpdateOrder("orderId"), handler.UpdateOrder)

	groups := v1.Group("/groups", logger.New())
	groups.Get("/manager/users", middleware.Protected(), handler.GetManagers)
	groups.Post("/manager/users", middleware.Protected(), validate.GroupMember(), handler.AddManager)
	groups.Delete("/manager/users", middleware.Protected(), validate.GroupMember(), handler.RemoveManager)
	groups.Get("/delivery-crew/users", middleware.Protected(), handler.GetDeliveryCrew)
	groups.Post("/delivery-crew/users", middleware.Protected(), validate.GroupMember(), handler.AddDeliveryCrew)
	groups.Delete("/delivery-crew/users", middleware.Protected(), validate.GroupMember(), handler.RemoveDeliveryCrew)

	reservations := v1.Group("/reservations", logger.New())
	reservations.Get("/", middleware.Protected(), handler.GetReservations)
	reservations.Post("/", middleware.Protected(), validate.CreateReservation(), handler.CreateReservation)
	reservations.Get("/:reservationId", middleware.Protected(), validate.GetById("reservationId"), handler.GetReservationById)
	reservations.Put("/:reservationId", middleware.Protected(), validate.EditReservation("reservationId"), handler.EditReservation)
}
