package handlers

import (
	"Furnicare-Backend/domain"
	"Furnicare-Backend/internal/api/presenters"
	"Furnicare-Backend/pkg/maintenance"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MaintenanceHandler interface {
		AddTask(c *fiber.Ctx) error
		GetTasks(c *fiber.Ctx) error
		UpdateTask(c *fiber.Ctx) error
		DeleteTask(c *fiber.Ctx) error
		LogRecord(c *fiber.Ctx) error
		GetRecords(c *fiber.Ctx) error
		DeleteRecord(c *fiber.Ctx) error
		GetSummary(c *fiber.Ctx) error
		GetBoard(c *fiber.Ctx) error
	}

	maintenanceHandler struct {
		maintenanceService maintenance.MaintenanceService
		validator          *validator.Validate
	}
)

func NewMaintenanceHandler(maintenanceService maintenance.MaintenanceService, validator *validator.Validate) MaintenanceHandler {
	return &maintenanceHandler{
		maintenanceService: maintenanceService,
		validator:          validator,
	}
}

func (h *maintenanceHandler) AddTask(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddTaskRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddTask, err)
	}

	res, err := h.maintenanceService.AddTask(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddTask, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddTask)
}

func (h *maintenanceHandler) GetTasks(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	furnitureID := c.Params("furniture_id")

	res, err := h.maintenanceService.GetTasks(c.Context(), furnitureID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTasks, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTasks)
}

func (h *maintenanceHandler) UpdateTask(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	taskID := c.Params("id")
	req := new(domain.UpdateTaskRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTask, err)
	}

	if err := h.maintenanceService.UpdateTask(c.Context(), taskID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTask, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateTask)
}

func (h *maintenanceHandler) DeleteTask(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	taskID := c.Params("id")

	if err := h.maintenanceService.DeleteTask(c.Context(), taskID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteTask, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteTask)
}

func (h *maintenanceHandler) LogRecord(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.LogRecordRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogRecord, err)
	}

	res, err := h.maintenanceService.LogRecord(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogRecord, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessLogRecord)
}

func (h *maintenanceHandler) GetRecords(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	taskID := c.Params("task_id")

	res, err := h.maintenanceService.GetRecords(c.Context(), taskID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecords, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecords)
}

func (h *maintenanceHandler) DeleteRecord(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recordID := c.Params("id")

	if err := h.maintenanceService.DeleteRecord(c.Context(), recordID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecord, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecord)
}

func (h *maintenanceHandler) GetSummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.maintenanceService.GetSummary(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSummary)
}

func (h *maintenanceHandler) GetBoard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.maintenanceService.GetBoard(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBoard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBoard)
}
