package handlers

import (
	"Furnicare-Backend/domain"
	"Furnicare-Backend/internal/api/presenters"
	"Furnicare-Backend/pkg/furniture"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FurnitureHandler interface {
		AddFurniture(c *fiber.Ctx) error
		GetFurnitureList(c *fiber.Ctx) error
		GetFurnitureDetails(c *fiber.Ctx) error
		UpdateFurniture(c *fiber.Ctx) error
		DeleteFurniture(c *fiber.Ctx) error
		UploadFurniturePhoto(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		AddLocation(c *fiber.Ctx) error
		GetLocations(c *fiber.Ctx) error
		UpdateLocation(c *fiber.Ctx) error
		DeleteLocation(c *fiber.Ctx) error
	}

	furnitureHandler struct {
		furnitureService furniture.FurnitureService
		validator        *validator.Validate
	}
)

func NewFurnitureHandler(furnitureService furniture.FurnitureService, validator *validator.Validate) FurnitureHandler {
	return &furnitureHandler{
		furnitureService: furnitureService,
		validator:        validator,
	}
}

func (h *furnitureHandler) AddFurniture(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddFurnitureRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFurniture, err)
	}

	res, err := h.furnitureService.AddFurniture(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFurniture, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFurniture)
}

func (h *furnitureHandler) GetFurnitureList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	categoryID := c.Query("category_id")
	locationID := c.Query("location_id")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	items, count, err := h.furnitureService.GetFurnitureList(c.Context(), userID, categoryID, locationID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFurniture, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetFurniture)
}

func (h *furnitureHandler) GetFurnitureDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	furnitureID := c.Params("id")

	res, err := h.furnitureService.GetFurnitureByID(c.Context(), furnitureID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFurniture, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFurniture)
}

func (h *furnitureHandler) UpdateFurniture(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	furnitureID := c.Params("id")
	req := new(domain.UpdateFurnitureRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFurniture, err)
	}

	if err := h.furnitureService.UpdateFurniture(c.Context(), furnitureID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFurniture, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateFurniture)
}

func (h *furnitureHandler) DeleteFurniture(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	furnitureID := c.Params("id")

	if err := h.furnitureService.DeleteFurniture(c.Context(), furnitureID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFurniture, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFurniture)
}

func (h *furnitureHandler) UploadFurniturePhoto(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadFurniturePhotoRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Photo = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, err)
	}

	imageURL, err := h.furnitureService.UploadFurniturePhoto(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"image_url": imageURL}, fiber.StatusOK, domain.MessageSuccessUploadPhoto)
}

func (h *furnitureHandler) GetCategories(c *fiber.Ctx) error {
	res, err := h.furnitureService.GetCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *furnitureHandler) AddLocation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddLocationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddLocation, err)
	}

	res, err := h.furnitureService.AddLocation(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddLocation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddLocation)
}

func (h *furnitureHandler) GetLocations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.furnitureService.GetLocations(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLocations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLocations)
}

func (h *furnitureHandler) UpdateLocation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	locationID := c.Params("id")
	req := new(domain.UpdateLocationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateLocation, err)
	}

	if err := h.furnitureService.UpdateLocation(c.Context(), locationID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateLocation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateLocation)
}

func (h *furnitureHandler) DeleteLocation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	locationID := c.Params("id")

	if err := h.furnitureService.DeleteLocation(c.Context(), locationID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteLocation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteLocation)
}
