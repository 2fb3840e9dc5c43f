package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/techmayne/photobot/internal/service/chat"
)

type ChatHandler struct {
	chat *chat.Service
	log  *zap.Logger
}

func NewChatHandler(chatService *chat.Service, log *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chat: chatService,
		log:  log,
	}
}

type ChatMessageRequest struct {
	ClientToken string `json:"clientToken"`
	VisitorID   string `json:"visitorId"`
	Message     string `json:"message"`
}

// Message handles POST /api/chat/message.
func (h *ChatHandler) Message(c *fiber.Ctx) error {
	var req ChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	if req.ClientToken == "" || req.VisitorID == "" || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields: clientToken, visitorId, message",
		})
	}

	res, err := h.chat.HandleMessage(c.Context(), req.ClientToken, req.VisitorID, req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrClientNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
		}
		h.log.Error("Chat turn failed",
			zap.String("visitor_id", req.VisitorID),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process message"})
	}

	return c.JSON(res)
}
