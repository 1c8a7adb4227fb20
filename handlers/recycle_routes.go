// handlers/recycle_routes.go
package handlers

import (
	"errors"

	"ecocycle-service/middleware"
	"ecocycle-service/services"

	"github.com/gofiber/fiber/v2"
)

// serviceErr translates a service error into the matching HTTP response.
func serviceErr(c *fiber.Ctx, err error, msg string) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": msg,
			"cause": err.Error(),
		})
	}
}

func SetupRecycleRoutes(app *fiber.App, recyclingService *services.RecyclingService, catalogService *services.CatalogService) {
	// 🔓 Public routes — catalog is not user-scoped
	app.Get("/search", func(c *fiber.Ctx) error {
		results, err := catalogService.Search(c.Query("q", ""))
		if err != nil {
			return serviceErr(c, err, "search failed")
		}
		return c.JSON(results)
	})

	app.Get("/categories", func(c *fiber.Ctx) error {
		cats, err := catalogService.Categories()
		if err != nil {
			return serviceErr(c, err, "failed to list categories")
		}
		return c.JSON(cats)
	})

	app.Post("/users", func(c *fiber.Ctx) error {
		var req struct {
			Username string `json:"username"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
		}
		user, err := recyclingService.CreateUser(req.Username)
		if err != nil {
			return serviceErr(c, err, "failed to create user")
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	})

	// 🔐 Secured routes — require user context
	app.Post("/recycle", middleware.UserContextMiddleware(), func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		var req struct {
			Item string `json:"item" form:"item"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		result, err := recyclingService.Recycle(userID, req.Item)
		if err != nil {
			return serviceErr(c, err, "recycle failed")
		}
		return c.JSON(result)
	})

	secured := app.Group("/user", middleware.UserContextMiddleware())

	secured.Get("/profile", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		user, err := recyclingService.GetUser(userID)
		if err != nil {
			return serviceErr(c, err, "failed to fetch user")
		}
		return c.JSON(user)
	})
}
