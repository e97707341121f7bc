package maintenance

import (
	"Furnicare-Backend/domain"
	"Furnicare-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MaintenanceService interface {
		AddTask(ctx context.Context, req domain.AddTaskRequest, userID string) (domain.TaskResponse, error)
		GetTasks(ctx context.Context, furnitureID string, userID string) ([]domain.TaskResponse, error)
		UpdateTask(ctx context.Context, taskID string, req domain.UpdateTaskRequest, userID string) error
		DeleteTask(ctx context.Context, taskID string, userID string) error

		LogRecord(ctx context.Context, req domain.LogRecordRequest, userID string) (domain.RecordResponse, error)
		GetRecords(ctx context.Context, taskID string, userID string) ([]domain.RecordResponse, error)
		DeleteRecord(ctx context.Context, recordID string, userID string) error

		GetSummary(ctx context.Context, userID string) ([]domain.MaintenanceSummaryItemResponse, error)
		GetBoard(ctx context.Context, userID string) (domain.MaintenanceBoardResponse, error)
		GetFurnitureSummary(ctx context.Context, furnitureID string) (domain.MaintenanceSummaryResponse, error)
	}

	maintenanceService struct {
		maintenanceRepository MaintenanceRepository
		now                   func() time.Time
	}
)

func NewMaintenanceService(maintenanceRepository MaintenanceRepository) MaintenanceService {
	return &maintenanceService{
		maintenanceRepository: maintenanceRepository,
		now:                   time.Now,
	}
}

func (s *maintenanceService) AddTask(ctx context.Context, req domain.AddTaskRequest, userID string) (domain.TaskResponse, error) {
	furniture, err := s.ownedFurniture(ctx, req.FurnitureID, userID)
	if err != nil {
		return domain.TaskResponse{}, err
	}

	active := true
	task := &entities.MaintenanceTask{
		ID:          uuid.New(),
		FurnitureID: furniture.ID,
		Name:        req.Name,
		CycleValue:  req.CycleValue,
		CycleUnit:   req.CycleUnit,
		IsActive:    &active,
	}

	if err := s.maintenanceRepository.AddTask(ctx, task); err != nil {
		return domain.TaskResponse{}, err
	}

	return s.taskResponse(task), nil
}

func (s *maintenanceService) GetTasks(ctx context.Context, furnitureID string, userID string) ([]domain.TaskResponse, error) {
	if _, err := s.ownedFurniture(ctx, furnitureID, userID); err != nil {
		return nil, err
	}

	tasks, err := s.maintenanceRepository.GetTasksByFurniture(ctx, furnitureID)
	if err != nil {
		return nil, err
	}

	response := []domain.TaskResponse{}
	for _, task := range tasks {
		response = append(response, s.taskResponse(task))
	}
	return response, nil
}

func (s *maintenanceService) UpdateTask(ctx context.Context, taskID string, req domain.UpdateTaskRequest, userID string) error {
	task, err := s.ownedTask(ctx, taskID, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		task.Name = req.Name
	}
	if req.CycleValue > 0 {
		task.CycleValue = req.CycleValue
	}
	if req.CycleUnit != "" {
		task.CycleUnit = req.CycleUnit
	}
	if req.IsActive != nil {
		task.IsActive = req.IsActive
	}

	return s.maintenanceRepository.UpdateTask(ctx, task)
}

func (s *maintenanceService) DeleteTask(ctx context.Context, taskID string, userID string) error {
	if _, err := s.ownedTask(ctx, taskID, userID); err != nil {
		return err
	}
	return s.maintenanceRepository.DeleteTask(ctx, taskID)
}

// LogRecord computes the next due date from the task's current cycle and
// persists it together with a snapshot of the task fields. The stored due
// date is never recomputed afterwards.
func (s *maintenanceService) LogRecord(ctx context.Context, req domain.LogRecordRequest, userID string) (domain.RecordResponse, error) {
	performedAt, err := time.Parse("2006-01-02", req.PerformedAt)
	if err != nil {
		return domain.RecordResponse{}, domain.ErrInvalidPerformedDate
	}

	task, err := s.ownedTask(ctx, req.TaskID, userID)
	if err != nil {
		return domain.RecordResponse{}, err
	}

	nextDueDate, err := CalculateNextDueDate(performedAt, task.CycleValue, task.CycleUnit)
	if err != nil {
		return domain.RecordResponse{}, err
	}

	record := &entities.MaintenanceRecord{
		ID:          uuid.New(),
		TaskID:      task.ID,
		PerformedAt: performedAt,
		NextDueDate: nextDueDate,
		Status:      req.Status,
		TaskName:    task.Name,
		CycleValue:  task.CycleValue,
		CycleUnit:   task.CycleUnit,
	}

	if err := s.maintenanceRepository.AddRecord(ctx, record); err != nil {
		return domain.RecordResponse{}, err
	}

	return recordResponse(record), nil
}

func (s *maintenanceService) GetRecords(ctx context.Context, taskID string, userID string) ([]domain.RecordResponse, error) {
	if _, err := s.ownedTask(ctx, taskID, userID); err != nil {
		return nil, err
	}

	records, err := s.maintenanceRepository.GetRecordsByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	response := []domain.RecordResponse{}
	for _, record := range records {
		response = append(response, recordResponse(record))
	}
	return response, nil
}

func (s *maintenanceService) DeleteRecord(ctx context.Context, recordID string, userID string) error {
	record, err := s.maintenanceRepository.GetRecordByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecordNotFound
		}
		return err
	}

	if _, err := s.ownedTask(ctx, record.TaskID.String(), userID); err != nil {
		return err
	}

	return s.maintenanceRepository.DeleteRecord(ctx, recordID)
}

func (s *maintenanceService) GetSummary(ctx context.Context, userID string) ([]domain.MaintenanceSummaryItemResponse, error) {
	furniture, tasks, records, err := s.maintenanceRepository.GetUserMaintenanceData(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := SummarizeAllTasks(furniture, tasks, records)

	response := []domain.MaintenanceSummaryItemResponse{}
	for _, item := range items {
		response = append(response, summaryItemResponse(item))
	}
	return response, nil
}

func (s *maintenanceService) GetBoard(ctx context.Context, userID string) (domain.MaintenanceBoardResponse, error) {
	furniture, tasks, records, err := s.maintenanceRepository.GetUserMaintenanceData(ctx, userID)
	if err != nil {
		return domain.MaintenanceBoardResponse{}, err
	}

	board := GroupBoard(SummarizeAllTasks(furniture, tasks, records), startOfDay(s.now()))

	response := domain.MaintenanceBoardResponse{
		Overdue: []domain.MaintenanceSummaryItemResponse{},
		DueSoon: []domain.MaintenanceSummaryItemResponse{},
		Later:   []domain.MaintenanceSummaryItemResponse{},
	}
	for _, item := range board.Overdue {
		response.Overdue = append(response.Overdue, summaryItemResponse(item))
	}
	for _, item := range board.DueSoon {
		response.DueSoon = append(response.DueSoon, summaryItemResponse(item))
	}
	for _, item := range board.Later {
		response.Later = append(response.Later, summaryItemResponse(item))
	}
	return response, nil
}

// GetFurnitureSummary backs the furniture detail screen. Ownership is the
// caller's concern; the furniture service checks it before delegating here.
func (s *maintenanceService) GetFurnitureSummary(ctx context.Context, furnitureID string) (domain.MaintenanceSummaryResponse, error) {
	tasks, err := s.maintenanceRepository.GetTasksByFurniture(ctx, furnitureID)
	if err != nil {
		return domain.MaintenanceSummaryResponse{}, err
	}

	records, err := s.maintenanceRepository.GetRecordsByFurniture(ctx, furnitureID)
	if err != nil {
		return domain.MaintenanceSummaryResponse{}, err
	}

	summary := SummarizeForFurniture(tasks, records, startOfDay(s.now()))
	return domain.MaintenanceSummaryResponse{
		ActiveTaskCount: summary.ActiveTaskCount,
		NearestTaskName: summary.NearestTaskName,
		NearestDueDate:  summary.NearestDueDate,
	}, nil
}

func (s *maintenanceService) ownedFurniture(ctx context.Context, furnitureID string, userID string) (*entities.Furniture, error) {
	furniture, err := s.maintenanceRepository.GetFurnitureByID(ctx, furnitureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFurnitureNotFound
		}
		return nil, err
	}
	if furniture.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}
	return furniture, nil
}

func (s *maintenanceService) ownedTask(ctx context.Context, taskID string, userID string) (*entities.MaintenanceTask, error) {
	task, err := s.maintenanceRepository.GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	if _, err := s.ownedFurniture(ctx, task.FurnitureID.String(), userID); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *maintenanceService) taskResponse(task *entities.MaintenanceTask) domain.TaskResponse {
	normalized := NormalizeTask(task, s.now())
	return domain.TaskResponse{
		ID:          normalized.ID.String(),
		FurnitureID: normalized.FurnitureID.String(),
		Name:        normalized.Name,
		CycleValue:  normalized.CycleValue,
		CycleUnit:   normalized.CycleUnit,
		IsActive:    normalized.IsActive,
		CreatedAt:   normalized.CreatedAt,
	}
}

func recordResponse(record *entities.MaintenanceRecord) domain.RecordResponse {
	return domain.RecordResponse{
		ID:          record.ID.String(),
		TaskID:      record.TaskID.String(),
		TaskName:    record.TaskName,
		PerformedAt: record.PerformedAt,
		NextDueDate: record.NextDueDate,
		Status:      record.Status,
		CycleValue:  record.CycleValue,
		CycleUnit:   record.CycleUnit,
	}
}

func summaryItemResponse(item SummaryItem) domain.MaintenanceSummaryItemResponse {
	return domain.MaintenanceSummaryItemResponse{
		FurnitureID:   item.FurnitureID.String(),
		FurnitureName: item.FurnitureName,
		TaskID:        item.TaskID.String(),
		TaskName:      item.TaskName,
		PerformedAt:   item.PerformedAt,
		NextDueDate:   item.NextDueDate,
	}
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
