package maintenance

import (
	"Furnicare-Backend/domain"
	"Furnicare-Backend/entities"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	furniture    map[uuid.UUID]*entities.Furniture
	tasks        map[uuid.UUID]*entities.MaintenanceTask
	records      map[uuid.UUID]*entities.MaintenanceRecord
	deletedTasks map[uuid.UUID]bool
}

func newTestRepo() *testRepo {
	return &testRepo{
		furniture:    map[uuid.UUID]*entities.Furniture{},
		tasks:        map[uuid.UUID]*entities.MaintenanceTask{},
		records:      map[uuid.UUID]*entities.MaintenanceRecord{},
		deletedTasks: map[uuid.UUID]bool{},
	}
}

func (r *testRepo) AddTask(ctx context.Context, task *entities.MaintenanceTask) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *testRepo) GetTaskByID(ctx context.Context, id string) (*entities.MaintenanceTask, error) {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	task, ok := r.tasks[taskID]
	if !ok || r.deletedTasks[taskID] {
		return nil, gorm.ErrRecordNotFound
	}
	return task, nil
}

func (r *testRepo) GetTasksByFurniture(ctx context.Context, furnitureID string) ([]*entities.MaintenanceTask, error) {
	var tasks []*entities.MaintenanceTask
	for _, task := range r.tasks {
		if task.FurnitureID.String() == furnitureID && !r.deletedTasks[task.ID] {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (r *testRepo) UpdateTask(ctx context.Context, task *entities.MaintenanceTask) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *testRepo) DeleteTask(ctx context.Context, id string) error {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	r.deletedTasks[taskID] = true
	return nil
}

func (r *testRepo) AddRecord(ctx context.Context, record *entities.MaintenanceRecord) error {
	r.records[record.ID] = record
	return nil
}

func (r *testRepo) GetRecordByID(ctx context.Context, id string) (*entities.MaintenanceRecord, error) {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	record, ok := r.records[recordID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return record, nil
}

func (r *testRepo) GetRecordsByTask(ctx context.Context, taskID string) ([]*entities.MaintenanceRecord, error) {
	var records []*entities.MaintenanceRecord
	for _, record := range r.records {
		if record.TaskID.String() == taskID {
			records = append(records, record)
		}
	}
	return records, nil
}

func (r *testRepo) GetRecordsByFurniture(ctx context.Context, furnitureID string) ([]*entities.MaintenanceRecord, error) {
	var records []*entities.MaintenanceRecord
	for _, record := range r.records {
		task, ok := r.tasks[record.TaskID]
		if ok && task.FurnitureID.String() == furnitureID && !r.deletedTasks[task.ID] {
			records = append(records, record)
		}
	}
	return records, nil
}

func (r *testRepo) DeleteRecord(ctx context.Context, id string) error {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	delete(r.records, recordID)
	return nil
}

func (r *testRepo) GetFurnitureByID(ctx context.Context, id string) (*entities.Furniture, error) {
	furnitureID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	furniture, ok := r.furniture[furnitureID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return furniture, nil
}

func (r *testRepo) GetUserMaintenanceData(ctx context.Context, userID string) ([]*entities.Furniture, []*entities.MaintenanceTask, []*entities.MaintenanceRecord, error) {
	var furniture []*entities.Furniture
	owned := map[uuid.UUID]bool{}
	for _, f := range r.furniture {
		if f.UserID.String() == userID {
			furniture = append(furniture, f)
			owned[f.ID] = true
		}
	}

	var tasks []*entities.MaintenanceTask
	ownedTasks := map[uuid.UUID]bool{}
	for _, task := range r.tasks {
		if owned[task.FurnitureID] && !r.deletedTasks[task.ID] {
			tasks = append(tasks, task)
			ownedTasks[task.ID] = true
		}
	}

	var records []*entities.MaintenanceRecord
	for _, record := range r.records {
		if ownedTasks[record.TaskID] {
			records = append(records, record)
		}
	}

	return furniture, tasks, records, nil
}

// -------------------------
// Fixtures
// -------------------------

func newTestService(repo *testRepo, now time.Time) *maintenanceService {
	return &maintenanceService{
		maintenanceRepository: repo,
		now:                   func() time.Time { return now },
	}
}

func seedFurniture(repo *testRepo, userID uuid.UUID, name string) *entities.Furniture {
	furniture := &entities.Furniture{ID: uuid.New(), UserID: userID, Name: name}
	repo.furniture[furniture.ID] = furniture
	return furniture
}

func seedTask(repo *testRepo, furnitureID uuid.UUID, name string, cycleValue int, cycleUnit string) *entities.MaintenanceTask {
	active := true
	task := &entities.MaintenanceTask{
		ID:          uuid.New(),
		FurnitureID: furnitureID,
		Name:        name,
		CycleValue:  cycleValue,
		CycleUnit:   cycleUnit,
		IsActive:    &active,
	}
	repo.tasks[task.ID] = task
	return task
}

// -------------------------
// Tests
// -------------------------

func TestLogRecordComputesNextDueDate(t *testing.T) {
	repo := newTestRepo()
	owner := uuid.New()
	furniture := seedFurniture(repo, owner, "dining table")
	tk := seedTask(repo, furniture.ID, "oil the top", 3, CycleUnitMonths)

	svc := newTestService(repo, date("2025-06-01"))

	res, err := svc.LogRecord(context.Background(), domain.LogRecordRequest{
		TaskID:      tk.ID.String(),
		PerformedAt: "2025-05-20",
		Status:      "Completed",
	}, owner.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The persisted due date and the pure function must agree.
	want, err := CalculateNextDueDate(date("2025-05-20"), tk.CycleValue, tk.CycleUnit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.NextDueDate.Equal(want) {
		t.Errorf("got next due %s, want %s", res.NextDueDate, want)
	}

	recordID, err := uuid.Parse(res.ID)
	if err != nil {
		t.Fatalf("bad record id: %v", err)
	}
	stored := repo.records[recordID]
	if stored == nil {
		t.Fatal("record was not persisted")
	}
	if !stored.NextDueDate.Equal(want) {
		t.Errorf("stored next due %s, want %s", stored.NextDueDate, want)
	}
	if stored.TaskName != "oil the top" || stored.CycleValue != 3 || stored.CycleUnit != CycleUnitMonths {
		t.Errorf("task snapshot not denormalized onto record: %+v", stored)
	}
}

func TestLogRecordTaskNotFound(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, date("2025-06-01"))

	_, err := svc.LogRecord(context.Background(), domain.LogRecordRequest{
		TaskID:      uuid.New().String(),
		PerformedAt: "2025-05-20",
		Status:      "Completed",
	}, uuid.New().String())
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("got %v, want ErrTaskNotFound", err)
	}
}

func TestLogRecordWrongOwner(t *testing.T) {
	repo := newTestRepo()
	owner := uuid.New()
	furniture := seedFurniture(repo, owner, "dining table")
	tk := seedTask(repo, furniture.ID, "oil the top", 3, CycleUnitMonths)

	svc := newTestService(repo, date("2025-06-01"))

	_, err := svc.LogRecord(context.Background(), domain.LogRecordRequest{
		TaskID:      tk.ID.String(),
		PerformedAt: "2025-05-20",
		Status:      "Completed",
	}, uuid.New().String())
	if !errors.Is(err, domain.ErrUnauthorizedAccess) {
		t.Errorf("got %v, want ErrUnauthorizedAccess", err)
	}
}

func TestLogRecordInvalidPerformedDate(t *testing.T) {
	repo := newTestRepo()
	owner := uuid.New()
	furniture := seedFurniture(repo, owner, "dining table")
	tk := seedTask(repo, furniture.ID, "oil the top", 3, CycleUnitMonths)

	svc := newTestService(repo, date("2025-06-01"))

	_, err := svc.LogRecord(context.Background(), domain.LogRecordRequest{
		TaskID:      tk.ID.String(),
		PerformedAt: "20-05-2025",
		Status:      "Completed",
	}, owner.String())
	if !errors.Is(err, domain.ErrInvalidPerformedDate) {
		t.Errorf("got %v, want ErrInvalidPerformedDate", err)
	}
}

func TestGetFurnitureSummary(t *testing.T) {
	repo := newTestRepo()
	owner := uuid.New()
	furniture := seedFurniture(repo, owner, "dining table")
	oil := seedTask(repo, furniture.ID, "oil the top", 3, CycleUnitMonths)
	seedTask(repo, furniture.ID, "tighten screws", 6, CycleUnitMonths)

	oilRecord := &entities.MaintenanceRecord{
		ID:          uuid.New(),
		TaskID:      oil.ID,
		TaskName:    oil.Name,
		PerformedAt: date("2025-05-20"),
		NextDueDate: date("2025-08-20"),
		Status:      "Completed",
	}
	repo.records[oilRecord.ID] = oilRecord

	svc := newTestService(repo, date("2025-06-01"))

	summary, err := svc.GetFurnitureSummary(context.Background(), furniture.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.ActiveTaskCount != 2 {
		t.Errorf("got active count %d, want 2", summary.ActiveTaskCount)
	}
	if summary.NearestTaskName == nil || *summary.NearestTaskName != "oil the top" {
		t.Errorf("got nearest task %v, want oil the top", summary.NearestTaskName)
	}
	if summary.NearestDueDate == nil || !summary.NearestDueDate.Equal(date("2025-08-20")) {
		t.Errorf("got nearest due %v, want 2025-08-20", summary.NearestDueDate)
	}
}

func TestGetFurnitureSummaryIgnoresDeletedTaskRecords(t *testing.T) {
	repo := newTestRepo()
	owner := uuid.New()
	furniture := seedFurniture(repo, owner, "dining table")
	keep := seedTask(repo, furniture.ID, "tighten screws", 6, CycleUnitMonths)
	remove := seedTask(repo, furniture.ID, "oil the top", 3, CycleUnitMonths)

	keepRecord := &entities.MaintenanceRecord{
		ID:          uuid.New(),
		TaskID:      keep.ID,
		TaskName:    keep.Name,
		PerformedAt: date("2025-05-01"),
		NextDueDate: date("2025-11-01"),
		Status:      "Completed",
	}
	removeRecord := &entities.MaintenanceRecord{
		ID:          uuid.New(),
		TaskID:      remove.ID,
		TaskName:    remove.Name,
		PerformedAt: date("2025-05-20"),
		NextDueDate: date("2025-08-20"),
		Status:      "Completed",
	}
	repo.records[keepRecord.ID] = keepRecord
	repo.records[removeRecord.ID] = removeRecord

	svc := newTestService(repo, date("2025-06-01"))

	if err := svc.DeleteTask(context.Background(), remove.ID.String(), owner.String()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, err := svc.GetFurnitureSummary(context.Background(), furniture.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.ActiveTaskCount != 1 {
		t.Errorf("got active count %d, want 1", summary.ActiveTaskCount)
	}
	// The deleted task's record would otherwise win as nearest due.
	if summary.NearestTaskName == nil || *summary.NearestTaskName != "tighten screws" {
		t.Errorf("got nearest task %v, want tighten screws", summary.NearestTaskName)
	}
	if summary.NearestDueDate == nil || !summary.NearestDueDate.Equal(date("2025-11-01")) {
		t.Errorf("got nearest due %v, want 2025-11-01", summary.NearestDueDate)
	}
}

func TestGetSummaryEmptyUser(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, date("2025-06-01"))

	items, err := svc.GetSummary(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}

func TestGetBoardBuckets(t *testing.T) {
	repo := newTestRepo()
	owner := uuid.New()
	furniture := seedFurniture(repo, owner, "bookshelf")
	overdueTask := seedTask(repo, furniture.ID, "dust shelves", 1, CycleUnitWeeks)
	laterTask := seedTask(repo, furniture.ID, "re-oil wood", 6, CycleUnitMonths)

	overdueRecord := &entities.MaintenanceRecord{
		ID:          uuid.New(),
		TaskID:      overdueTask.ID,
		TaskName:    overdueTask.Name,
		PerformedAt: date("2025-05-01"),
		NextDueDate: date("2025-05-08"),
		Status:      "Completed",
	}
	laterRecord := &entities.MaintenanceRecord{
		ID:          uuid.New(),
		TaskID:      laterTask.ID,
		TaskName:    laterTask.Name,
		PerformedAt: date("2025-05-01"),
		NextDueDate: date("2025-11-01"),
		Status:      "Completed",
	}
	repo.records[overdueRecord.ID] = overdueRecord
	repo.records[laterRecord.ID] = laterRecord

	svc := newTestService(repo, date("2025-06-01"))

	board, err := svc.GetBoard(context.Background(), owner.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(board.Overdue) != 1 || board.Overdue[0].TaskName != "dust shelves" {
		t.Errorf("overdue bucket wrong: %+v", board.Overdue)
	}
	if len(board.DueSoon) != 0 {
		t.Errorf("due-soon bucket wrong: %+v", board.DueSoon)
	}
	if len(board.Later) != 1 || board.Later[0].TaskName != "re-oil wood" {
		t.Errorf("later bucket wrong: %+v", board.Later)
	}
}

func TestUpdateTaskToggleActive(t *testing.T) {
	repo := newTestRepo()
	owner := uuid.New()
	furniture := seedFurniture(repo, owner, "dining table")
	tk := seedTask(repo, furniture.ID, "oil the top", 3, CycleUnitMonths)

	svc := newTestService(repo, date("2025-06-01"))

	inactive := false
	err := svc.UpdateTask(context.Background(), tk.ID.String(), domain.UpdateTaskRequest{IsActive: &inactive}, owner.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored := repo.tasks[tk.ID]; stored.IsActive == nil || *stored.IsActive {
		t.Error("task should be inactive after toggle")
	}
}
