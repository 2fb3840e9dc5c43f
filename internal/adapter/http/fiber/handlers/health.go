package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/techmayne/photobot/internal/ports"
)

type HealthHandler struct {
	db    *gorm.DB
	cache ports.Cache
	log   *zap.Logger
}

func NewHealthHandler(db *gorm.DB, cache ports.Cache, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:    db,
		cache: cache,
		log:   log,
	}
}

// Live handles GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready: the process is ready only when both the
// database and the cache respond.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	checks := fiber.Map{
		"database": "ok",
		"cache":    "ok",
	}
	healthy := true

	if sqlDB, err := h.db.DB(); err != nil {
		checks["database"] = err.Error()
		healthy = false
	} else if err := sqlDB.PingContext(c.Context()); err != nil {
		checks["database"] = err.Error()
		healthy = false
	}

	if err := h.cache.Ping(); err != nil {
		checks["cache"] = err.Error()
		healthy = false
	}

	if !healthy {
		h.log.Warn("Readiness check failed", zap.Any("checks", checks))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"checks": checks,
		})
	}

	return c.JSON(fiber.Map{
		"status": "ready",
		"checks": checks,
	})
}
