package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddTask      = "maintenance task added successfully"
	MessageSuccessGetTasks     = "maintenance tasks retrieved successfully"
	MessageSuccessUpdateTask   = "maintenance task updated successfully"
	MessageSuccessDeleteTask   = "maintenance task deleted successfully"
	MessageSuccessLogRecord    = "maintenance record logged successfully"
	MessageSuccessGetRecords   = "maintenance records retrieved successfully"
	MessageSuccessDeleteRecord = "maintenance record deleted successfully"
	MessageSuccessGetSummary   = "maintenance summary retrieved successfully"
	MessageSuccessGetBoard     = "maintenance board retrieved successfully"

	MessageFailedAddTask      = "failed to add maintenance task"
	MessageFailedGetTasks     = "failed to retrieve maintenance tasks"
	MessageFailedUpdateTask   = "failed to update maintenance task"
	MessageFailedDeleteTask   = "failed to delete maintenance task"
	MessageFailedLogRecord    = "failed to log maintenance record"
	MessageFailedGetRecords   = "failed to retrieve maintenance records"
	MessageFailedDeleteRecord = "failed to delete maintenance record"
	MessageFailedGetSummary   = "failed to retrieve maintenance summary"
	MessageFailedGetBoard     = "failed to retrieve maintenance board"

	ErrTaskNotFound         = errors.New("maintenance task not found")
	ErrRecordNotFound       = errors.New("maintenance record not found")
	ErrUnsupportedCycleUnit = errors.New("unsupported cycle unit")
	ErrInvalidCycleValue    = errors.New("cycle value must be positive")
	ErrInvalidPerformedDate = errors.New("invalid performed date")
)

type (
	AddTaskRequest struct {
		FurnitureID string `json:"furniture_id" validate:"required,uuid"`
		Name        string `json:"name" validate:"required"`
		CycleValue  int    `json:"cycle_value" validate:"required,min=1"`
		CycleUnit   string `json:"cycle_unit" validate:"required,oneof=days weeks months years"`
	}

	UpdateTaskRequest struct {
		Name       string `json:"name" validate:"omitempty"`
		CycleValue int    `json:"cycle_value" validate:"omitempty,min=1"`
		CycleUnit  string `json:"cycle_unit" validate:"omitempty,oneof=days weeks months years"`
		IsActive   *bool  `json:"is_active" validate:"omitempty"`
	}

	TaskResponse struct {
		ID          string    `json:"id"`
		FurnitureID string    `json:"furniture_id"`
		Name        string    `json:"name"`
		CycleValue  int       `json:"cycle_value"`
		CycleUnit   string    `json:"cycle_unit"`
		IsActive    bool      `json:"is_active"`
		CreatedAt   time.Time `json:"created_at"`
	}

	LogRecordRequest struct {
		TaskID      string `json:"task_id" validate:"required,uuid"`
		PerformedAt string `json:"performed_at" validate:"required"`
		Status      string `json:"status" validate:"required,oneof=Completed Skipped Partial"`
	}

	RecordResponse struct {
		ID          string    `json:"id"`
		TaskID      string    `json:"task_id"`
		TaskName    string    `json:"task_name"`
		PerformedAt time.Time `json:"performed_at"`
		NextDueDate time.Time `json:"next_due_date"`
		Status      string    `json:"status"`
		CycleValue  int       `json:"cycle_value"`
		CycleUnit   string    `json:"cycle_unit"`
	}

	MaintenanceSummaryResponse struct {
		ActiveTaskCount int        `json:"active_task_count"`
		NearestTaskName *string    `json:"nearest_task_name"`
		NearestDueDate  *time.Time `json:"nearest_due_date"`
	}

	MaintenanceSummaryItemResponse struct {
		FurnitureID   string    `json:"furniture_id"`
		FurnitureName string    `json:"furniture_name"`
		TaskID        string    `json:"task_id"`
		TaskName      string    `json:"task_name"`
		PerformedAt   time.Time `json:"performed_at"`
		NextDueDate   time.Time `json:"next_due_date"`
	}

	MaintenanceBoardResponse struct {
		Overdue []MaintenanceSummaryItemResponse `json:"overdue"`
		DueSoon []MaintenanceSummaryItemResponse `json:"due_soon"`
		Later   []MaintenanceSummaryItemResponse `json:"later"`
	}
)
