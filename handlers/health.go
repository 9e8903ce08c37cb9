package handlers

import (
	"github.com/collegemetrics/api/database"
	"github.com/gofiber/fiber/v2"
)

// HandleCheckHealth reports liveness and storage reachability
func HandleCheckHealth(c *fiber.Ctx, store database.Storage) error {
	if err := store.HealthCheck(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "degraded",
			"database": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
