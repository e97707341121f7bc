package maintenance

import (
	"Furnicare-Backend/entities"
	"testing"
	"time"

	"github.com/google/uuid"
)

func boolPtr(b bool) *bool { return &b }

func task(furnitureID uuid.UUID, name string, active *bool) *entities.MaintenanceTask {
	return &entities.MaintenanceTask{
		ID:          uuid.New(),
		FurnitureID: furnitureID,
		Name:        name,
		CycleValue:  1,
		CycleUnit:   CycleUnitMonths,
		IsActive:    active,
	}
}

func record(taskID uuid.UUID, taskName string, performedAt, nextDueDate time.Time) *entities.MaintenanceRecord {
	return &entities.MaintenanceRecord{
		ID:          uuid.New(),
		TaskID:      taskID,
		TaskName:    taskName,
		PerformedAt: performedAt,
		NextDueDate: nextDueDate,
		Status:      "Completed",
	}
}

func TestNormalizeTask(t *testing.T) {
	now := date("2025-06-01")

	nilFlag := task(uuid.New(), "oil", nil)
	if NormalizeTask(nilFlag, now).IsActive {
		t.Error("nil active flag should normalize to inactive")
	}

	inactive := task(uuid.New(), "oil", boolPtr(false))
	if NormalizeTask(inactive, now).IsActive {
		t.Error("false active flag should stay inactive")
	}

	active := task(uuid.New(), "oil", boolPtr(true))
	if !NormalizeTask(active, now).IsActive {
		t.Error("true active flag should stay active")
	}

	if got := NormalizeTask(nilFlag, now).CreatedAt; !got.Equal(now) {
		t.Errorf("zero created-at should backfill to now, got %s", got)
	}

	createdAt := date("2024-01-01")
	active.CreatedAt = createdAt
	if got := NormalizeTask(active, now).CreatedAt; !got.Equal(createdAt) {
		t.Errorf("existing created-at should be kept, got %s", got)
	}
}

func TestSummarizeForFurnitureEmpty(t *testing.T) {
	summary := SummarizeForFurniture(nil, nil, date("2025-06-01"))

	if summary.ActiveTaskCount != 0 {
		t.Errorf("got active count %d, want 0", summary.ActiveTaskCount)
	}
	if summary.NearestTaskName != nil {
		t.Errorf("got nearest task %q, want nil", *summary.NearestTaskName)
	}
	if summary.NearestDueDate != nil {
		t.Errorf("got nearest due %s, want nil", *summary.NearestDueDate)
	}
}

func TestSummarizeForFurnitureActiveCount(t *testing.T) {
	furnitureID := uuid.New()
	tasks := []*entities.MaintenanceTask{
		task(furnitureID, "oil", boolPtr(true)),
		task(furnitureID, "wax", boolPtr(false)),
		task(furnitureID, "dust", nil),
		task(furnitureID, "polish", boolPtr(true)),
	}

	summary := SummarizeForFurniture(tasks, nil, date("2025-06-01"))
	if summary.ActiveTaskCount != 2 {
		t.Errorf("got active count %d, want 2", summary.ActiveTaskCount)
	}
}

func TestSummarizeForFurnitureAllInactive(t *testing.T) {
	furnitureID := uuid.New()
	tasks := []*entities.MaintenanceTask{
		task(furnitureID, "oil", boolPtr(false)),
		task(furnitureID, "wax", nil),
	}

	summary := SummarizeForFurniture(tasks, nil, date("2025-06-01"))
	if summary.ActiveTaskCount != 0 {
		t.Errorf("got active count %d, want 0", summary.ActiveTaskCount)
	}
}

func TestSummarizeForFurnitureNearest(t *testing.T) {
	now := date("2025-06-01")
	oil := uuid.New()
	wax := uuid.New()
	records := []*entities.MaintenanceRecord{
		record(wax, "wax", date("2025-05-01"), date("2025-07-01")),
		record(oil, "oil", date("2025-05-10"), date("2025-06-10")),
		record(oil, "oil old", date("2025-01-01"), date("2025-02-01")), // past due, skipped
	}

	summary := SummarizeForFurniture(nil, records, now)
	if summary.NearestTaskName == nil || *summary.NearestTaskName != "oil" {
		t.Fatalf("got nearest task %v, want oil", summary.NearestTaskName)
	}
	if !summary.NearestDueDate.Equal(date("2025-06-10")) {
		t.Errorf("got nearest due %s, want 2025-06-10", summary.NearestDueDate)
	}
}

func TestSummarizeForFurnitureDueTodayIncluded(t *testing.T) {
	now := date("2025-06-01")
	records := []*entities.MaintenanceRecord{
		record(uuid.New(), "oil", date("2025-05-01"), now),
	}

	summary := SummarizeForFurniture(nil, records, now)
	if summary.NearestDueDate == nil || !summary.NearestDueDate.Equal(now) {
		t.Errorf("a due date equal to now should be selected, got %v", summary.NearestDueDate)
	}
}

func TestSummarizeForFurnitureTieKeepsFirst(t *testing.T) {
	now := date("2025-06-01")
	due := date("2025-06-10")
	records := []*entities.MaintenanceRecord{
		record(uuid.New(), "first", date("2025-05-10"), due),
		record(uuid.New(), "second", date("2025-05-11"), due),
	}

	summary := SummarizeForFurniture(nil, records, now)
	if summary.NearestTaskName == nil || *summary.NearestTaskName != "first" {
		t.Errorf("tie on due date should keep the first record, got %v", summary.NearestTaskName)
	}
}

func TestSummarizeAllTasksEmptyInputs(t *testing.T) {
	f := &entities.Furniture{ID: uuid.New(), Name: "dining table"}
	tk := task(f.ID, "oil", boolPtr(true))
	r := record(tk.ID, "oil", date("2025-05-01"), date("2025-06-01"))

	cases := []struct {
		name      string
		furniture []*entities.Furniture
		tasks     []*entities.MaintenanceTask
		records   []*entities.MaintenanceRecord
	}{
		{"no furniture", nil, []*entities.MaintenanceTask{tk}, []*entities.MaintenanceRecord{r}},
		{"no tasks", []*entities.Furniture{f}, nil, []*entities.MaintenanceRecord{r}},
		{"no records", []*entities.Furniture{f}, []*entities.MaintenanceTask{tk}, nil},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			items := SummarizeAllTasks(tt.furniture, tt.tasks, tt.records)
			if len(items) != 0 {
				t.Errorf("got %d items, want 0", len(items))
			}
		})
	}
}

func TestSummarizeAllTasksExcludesTasksWithoutRecords(t *testing.T) {
	f := &entities.Furniture{ID: uuid.New(), Name: "dining table"}
	withHistory := task(f.ID, "oil", boolPtr(true))
	withoutHistory := task(f.ID, "wax", boolPtr(true))
	records := []*entities.MaintenanceRecord{
		record(withHistory.ID, "oil", date("2025-05-01"), date("2025-06-01")),
	}

	items := SummarizeAllTasks(
		[]*entities.Furniture{f},
		[]*entities.MaintenanceTask{withHistory, withoutHistory},
		records,
	)

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].TaskID != withHistory.ID {
		t.Errorf("got task %s, want %s", items[0].TaskID, withHistory.ID)
	}
}

func TestSummarizeAllTasksPicksLatestRecord(t *testing.T) {
	f := &entities.Furniture{ID: uuid.New(), Name: "armchair"}
	tk := task(f.ID, "clean", boolPtr(true))
	records := []*entities.MaintenanceRecord{
		record(tk.ID, "clean", date("2025-03-01"), date("2025-04-01")),
		record(tk.ID, "clean", date("2025-05-01"), date("2025-06-01")),
		record(tk.ID, "clean", date("2025-04-01"), date("2025-05-01")),
	}

	items := SummarizeAllTasks([]*entities.Furniture{f}, []*entities.MaintenanceTask{tk}, records)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if !items[0].PerformedAt.Equal(date("2025-05-01")) {
		t.Errorf("got performed-at %s, want 2025-05-01", items[0].PerformedAt)
	}
	if !items[0].NextDueDate.Equal(date("2025-06-01")) {
		t.Errorf("got next due %s, want 2025-06-01", items[0].NextDueDate)
	}
	if items[0].FurnitureName != "armchair" {
		t.Errorf("got furniture name %q, want armchair", items[0].FurnitureName)
	}
}

func TestGroupBoard(t *testing.T) {
	now := date("2025-06-01")
	items := []SummaryItem{
		{TaskName: "overdue", NextDueDate: date("2025-05-20")},
		{TaskName: "due today", NextDueDate: now},
		{TaskName: "due in a week", NextDueDate: date("2025-06-08")},
		{TaskName: "later", NextDueDate: date("2025-06-09")},
	}

	board := GroupBoard(items, now)

	if len(board.Overdue) != 1 || board.Overdue[0].TaskName != "overdue" {
		t.Errorf("overdue bucket wrong: %+v", board.Overdue)
	}
	if len(board.DueSoon) != 2 {
		t.Fatalf("got %d due-soon items, want 2", len(board.DueSoon))
	}
	if board.DueSoon[0].TaskName != "due today" || board.DueSoon[1].TaskName != "due in a week" {
		t.Errorf("due-soon bucket wrong: %+v", board.DueSoon)
	}
	if len(board.Later) != 1 || board.Later[0].TaskName != "later" {
		t.Errorf("later bucket wrong: %+v", board.Later)
	}
}
