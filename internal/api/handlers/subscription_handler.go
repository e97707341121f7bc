package handlers

import (
	"Furnicare-Backend/domain"
	"Furnicare-Backend/internal/api/presenters"
	"Furnicare-Backend/pkg/subscription"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SubscriptionHandler interface {
		CreateSubscription(c *fiber.Ctx) error
		MidtransWebhookHandler(c *fiber.Ctx) error
	}

	subscriptionHandler struct {
		subscriptionService subscription.SubscriptionService
		validator           *validator.Validate
	}
)

func NewSubscriptionHandler(subscriptionService subscription.SubscriptionService, validator *validator.Validate) SubscriptionHandler {
	return &subscriptionHandler{
		subscriptionService: subscriptionService,
		validator:           validator,
	}
}

func (h *subscriptionHandler) CreateSubscription(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.subscriptionService.CreateSubscription(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateSubscription, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateSubscription)
}

func (h *subscriptionHandler) MidtransWebhookHandler(c *fiber.Ctx) error {
	req := new(domain.MidtransWebhookRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedHandleWebhook, err)
	}

	if err := h.subscriptionService.HandleWebhook(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedHandleWebhook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessHandleWebhook)
}
