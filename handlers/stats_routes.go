// handlers/stats_routes.go
package handlers

import (
	"strconv"

	"ecocycle-service/middleware"
	"ecocycle-service/services"

	"github.com/gofiber/fiber/v2"
)

func SetupStatsRoutes(app *fiber.App, analyticsService *services.AnalyticsService, recordService *services.RecordService) {
	// 🔓 Community-wide stats need no user context
	app.Get("/community/stats", func(c *fiber.Ctx) error {
		stats, err := analyticsService.CommunityStats()
		if err != nil {
			return serviceErr(c, err, "failed to compute community stats")
		}
		return c.JSON(stats)
	})

	app.Get("/community/snapshots", func(c *fiber.Ctx) error {
		limit, _ := strconv.Atoi(c.Query("limit", "10"))
		snaps, err := analyticsService.RecentSnapshots(limit)
		if err != nil {
			return serviceErr(c, err, "failed to fetch snapshots")
		}
		return c.JSON(snaps)
	})

	// Category distribution is community-wide by default, user-scoped when
	// the gateway forwards a user identity.
	app.Get("/categories/distribution", func(c *fiber.Ctx) error {
		dist, err := analyticsService.CategoryDistribution(c.Get("X-User-ID"))
		if err != nil {
			return serviceErr(c, err, "failed to compute category distribution")
		}
		return c.JSON(dist)
	})

	// 🔐 Secured routes — require user context
	secured := app.Group("/user", middleware.UserContextMiddleware())

	secured.Get("/stats", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		stats, err := analyticsService.UserStats(userID)
		if err != nil {
			return serviceErr(c, err, "failed to compute user stats")
		}
		return c.JSON(stats)
	})

	secured.Get("/records", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		page, _ := strconv.Atoi(c.Query("page", "1"))
		perPage, _ := strconv.Atoi(c.Query("per_page", "10"))

		pageData, err := recordService.ListRecords(userID, page, perPage)
		if err != nil {
			return serviceErr(c, err, "failed to list records")
		}
		return c.JSON(pageData)
	})
}
