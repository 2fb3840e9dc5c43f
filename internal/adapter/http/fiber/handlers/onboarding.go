package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/techmayne/photobot/internal/service/onboarding"
)

type OnboardingHandler struct {
	onboarding *onboarding.Service
	log        *zap.Logger
}

func NewOnboardingHandler(onboardingService *onboarding.Service, log *zap.Logger) *OnboardingHandler {
	return &OnboardingHandler{
		onboarding: onboardingService,
		log:        log,
	}
}

// Create handles POST /api/onboarding/create.
func (h *OnboardingHandler) Create(c *fiber.Ctx) error {
	var req onboarding.Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.onboarding.Create(c.Context(), &req)
	if err != nil {
		h.log.Error("Onboarding failed",
			zap.String("business_name", req.BusinessName),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create client"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"client": fiber.Map{
			"id":           result.Client.ID,
			"businessName": result.Client.BusinessName,
			"websiteUrl":   result.Client.WebsiteURL,
			"clientToken":  result.Client.ClientToken,
		},
		"embedCode": result.EmbedCode,
		"message":   "Client created successfully! Use the embed code to install the widget.",
	})
}
