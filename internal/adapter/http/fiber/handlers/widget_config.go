package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/techmayne/photobot/internal/service/chat"
)

type WidgetConfigHandler struct {
	chat *chat.Service
	log  *zap.Logger
}

func NewWidgetConfigHandler(chatService *chat.Service, log *zap.Logger) *WidgetConfigHandler {
	return &WidgetConfigHandler{
		chat: chatService,
		log:  log,
	}
}

// Get handles GET /api/config/:clientToken. Only the public widget fields
// leave this endpoint; the token itself is never echoed back.
func (h *WidgetConfigHandler) Get(c *fiber.Ctx) error {
	token := c.Params("clientToken")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing client token"})
	}

	client, err := h.chat.ResolveClient(c.Context(), token)
	if err != nil {
		if errors.Is(err, chat.ErrClientNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
		}
		h.log.Error("Widget config lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load config"})
	}

	return c.JSON(client.WidgetConfig())
}
