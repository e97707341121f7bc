package maintenance

import (
	"Furnicare-Backend/entities"
	"time"

	"github.com/google/uuid"
)

// DueSoonWindow is how far ahead of "now" a due date still counts as
// due-soon on the board.
const DueSoonWindow = 7 * 24 * time.Hour

type (
	// NormalizedTask is a task after legacy-null cleanup: a missing active
	// flag means inactive, a zero created-at is backfilled from the clock.
	NormalizedTask struct {
		ID          uuid.UUID
		FurnitureID uuid.UUID
		Name        string
		CycleValue  int
		CycleUnit   string
		IsActive    bool
		CreatedAt   time.Time
	}

	// Summary is the per-furniture rollup shown on the detail screen.
	Summary struct {
		ActiveTaskCount int
		NearestTaskName *string
		NearestDueDate  *time.Time
	}

	// SummaryItem is one task's latest state on the calendar/board, built
	// from its most recently performed record.
	SummaryItem struct {
		FurnitureID   uuid.UUID
		FurnitureName string
		TaskID        uuid.UUID
		TaskName      string
		PerformedAt   time.Time
		NextDueDate   time.Time
	}

	// Board buckets summary items relative to "now".
	Board struct {
		Overdue []SummaryItem
		DueSoon []SummaryItem
		Later   []SummaryItem
	}
)

func NormalizeTask(task *entities.MaintenanceTask, now time.Time) NormalizedTask {
	normalized := NormalizedTask{
		ID:          task.ID,
		FurnitureID: task.FurnitureID,
		Name:        task.Name,
		CycleValue:  task.CycleValue,
		CycleUnit:   task.CycleUnit,
		IsActive:    task.IsActive != nil && *task.IsActive,
		CreatedAt:   task.CreatedAt,
	}
	if normalized.CreatedAt.IsZero() {
		normalized.CreatedAt = now
	}
	return normalized
}

// SummarizeForFurniture rolls up one furniture item's tasks and records:
// the active task count and the nearest record whose due date is today or
// later. Ties on the due date keep the first record encountered.
func SummarizeForFurniture(tasks []*entities.MaintenanceTask, records []*entities.MaintenanceRecord, now time.Time) Summary {
	summary := Summary{}

	for _, task := range tasks {
		if NormalizeTask(task, now).IsActive {
			summary.ActiveTaskCount++
		}
	}

	for _, record := range records {
		if record.NextDueDate.Before(now) {
			continue
		}
		if summary.NearestDueDate == nil || record.NextDueDate.Before(*summary.NearestDueDate) {
			due := record.NextDueDate
			name := record.TaskName
			summary.NearestDueDate = &due
			summary.NearestTaskName = &name
		}
	}

	return summary
}

// SummarizeAllTasks joins every task's most recently performed record with
// its owning furniture. Tasks without any record are excluded; empty
// upstream collections yield an empty list. Ordering follows the task
// input order, sorting for presentation is the caller's concern.
func SummarizeAllTasks(furniture []*entities.Furniture, tasks []*entities.MaintenanceTask, records []*entities.MaintenanceRecord) []SummaryItem {
	items := []SummaryItem{}
	if len(furniture) == 0 || len(tasks) == 0 || len(records) == 0 {
		return items
	}

	furnitureNames := make(map[uuid.UUID]string, len(furniture))
	for _, f := range furniture {
		furnitureNames[f.ID] = f.Name
	}

	latest := make(map[uuid.UUID]*entities.MaintenanceRecord, len(tasks))
	for _, record := range records {
		current, ok := latest[record.TaskID]
		if !ok || record.PerformedAt.After(current.PerformedAt) {
			latest[record.TaskID] = record
		}
	}

	for _, task := range tasks {
		record, ok := latest[task.ID]
		if !ok {
			continue
		}
		name, ok := furnitureNames[task.FurnitureID]
		if !ok {
			continue
		}
		items = append(items, SummaryItem{
			FurnitureID:   task.FurnitureID,
			FurnitureName: name,
			TaskID:        task.ID,
			TaskName:      task.Name,
			PerformedAt:   record.PerformedAt,
			NextDueDate:   record.NextDueDate,
		})
	}

	return items
}

// GroupBoard buckets summary items: overdue before now, due-soon within the
// next seven days (inclusive), later beyond that.
func GroupBoard(items []SummaryItem, now time.Time) Board {
	board := Board{
		Overdue: []SummaryItem{},
		DueSoon: []SummaryItem{},
		Later:   []SummaryItem{},
	}

	horizon := now.Add(DueSoonWindow)
	for _, item := range items {
		switch {
		case item.NextDueDate.Before(now):
			board.Overdue = append(board.Overdue, item)
		case item.NextDueDate.After(horizon):
			board.Later = append(board.Later, item)
		default:
			board.DueSoon = append(board.DueSoon, item)
		}
	}

	return board
}
