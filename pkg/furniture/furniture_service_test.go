package furniture

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
// Test doubles
// -------------------------

type testFurnitureRepo struct {
	furniture  map[uuid.UUID]*entities.Furniture
	categories map[uuid.UUID]*entities.Category
	locations  map[uuid.UUID]*entities.Location
}

func newTestFurnitureRepo() *testFurnitureRepo {
	return &testFurnitureRepo{
		furniture:  map[uuid.UUID]*entities.Furniture{},
		categories: map[uuid.UUID]*entities.Category{},
		locations:  map[uuid.UUID]*entities.Location{},
	}
}

func (r *testFurnitureRepo) AddFurniture(ctx context.Context, furniture *entities.Furniture) error {
	r.furniture[furniture.ID] = furniture
	return nil
}

func (r *testFurnitureRepo) GetFurnitureByID(ctx context.Context, id string) (*entities.Furniture, error) {
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

func (r *testFurnitureRepo) UpdateFurniture(ctx context.Context, furniture *entities.Furniture) error {
	r.furniture[furniture.ID] = furniture
	return nil
}

func (r *testFurnitureRepo) DeleteFurniture(ctx context.Context, id string) error {
	furnitureID, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	delete(r.furniture, furnitureID)
	return nil
}

func (r *testFurnitureRepo) GetFurnitureList(ctx context.Context, userID string, categoryID string, locationID string, page, limit int) ([]*entities.Furniture, int64, error) {
	var list []*entities.Furniture
	for _, furniture := range r.furniture {
		if furniture.UserID.String() == userID {
			list = append(list, furniture)
		}
	}
	return list, int64(len(list)), nil
}

func (r *testFurnitureRepo) CountFurnitureByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, furniture := range r.furniture {
		if furniture.UserID.String() == userID {
			count++
		}
	}
	return count, nil
}

func (r *testFurnitureRepo) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	for _, category := range r.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

func (r *testFurnitureRepo) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	category, ok := r.categories[categoryID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return category, nil
}

func (r *testFurnitureRepo) AddLocation(ctx context.Context, location *entities.Location) error {
	r.locations[location.ID] = location
	return nil
}

func (r *testFurnitureRepo) GetLocationByID(ctx context.Context, id string) (*entities.Location, error) {
	locationID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	location, ok := r.locations[locationID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return location, nil
}

func (r *testFurnitureRepo) GetLocationsByUser(ctx context.Context, userID string) ([]*entities.Location, error) {
	var locations []*entities.Location
	for _, location := range r.locations {
		if location.UserID.String() == userID {
			locations = append(locations, location)
		}
	}
	return locations, nil
}

func (r *testFurnitureRepo) UpdateLocation(ctx context.Context, location *entities.Location) error {
	r.locations[location.ID] = location
	return nil
}

func (r *testFurnitureRepo) DeleteLocation(ctx context.Context, id string) error {
	locationID, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	delete(r.locations, locationID)
	return nil
}

type testUserRepo struct {
	users map[uuid.UUID]*entities.User
}

func (r *testUserRepo) RegisterUser(ctx context.Context, user *entities.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *testUserRepo) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	user, ok := r.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *testUserRepo) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *testUserRepo) CheckEmailExist(ctx context.Context, email string) (bool, error) {
	_, err := r.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func (r *testUserRepo) UpdateUser(ctx context.Context, user *entities.User) error {
	r.users[user.ID] = user
	return nil
}

type testMaintenanceService struct {
	summary domain.MaintenanceSummaryResponse
}

func (s *testMaintenanceService) AddTask(ctx context.Context, req domain.AddTaskRequest, userID string) (domain.TaskResponse, error) {
	return domain.TaskResponse{}, nil
}

func (s *testMaintenanceService) GetTasks(ctx context.Context, furnitureID string, userID string) ([]domain.TaskResponse, error) {
	return nil, nil
}

func (s *testMaintenanceService) UpdateTask(ctx context.Context, taskID string, req domain.UpdateTaskRequest, userID string) error {
	return nil
}

func (s *testMaintenanceService) DeleteTask(ctx context.Context, taskID string, userID string) error {
	return nil
}

func (s *testMaintenanceService) LogRecord(ctx context.Context, req domain.LogRecordRequest, userID string) (domain.RecordResponse, error) {
	return domain.RecordResponse{}, nil
}

func (s *testMaintenanceService) GetRecords(ctx context.Context, taskID string, userID string) ([]domain.RecordResponse, error) {
	return nil, nil
}

func (s *testMaintenanceService) DeleteRecord(ctx context.Context, recordID string, userID string) error {
	return nil
}

func (s *testMaintenanceService) GetSummary(ctx context.Context, userID string) ([]domain.MaintenanceSummaryItemResponse, error) {
	return nil, nil
}

func (s *testMaintenanceService) GetBoard(ctx context.Context, userID string) (domain.MaintenanceBoardResponse, error) {
	return domain.MaintenanceBoardResponse{}, nil
}

func (s *testMaintenanceService) GetFurnitureSummary(ctx context.Context, furnitureID string) (domain.MaintenanceSummaryResponse, error) {
	return s.summary, nil
}

// -------------------------
// Fixtures
// -------------------------

type testEnv struct {
	repo  *testFurnitureRepo
	users *testUserRepo
	svc   FurnitureService
}

func newTestEnv() *testEnv {
	repo := newTestFurnitureRepo()
	users := &testUserRepo{users: map[uuid.UUID]*entities.User{}}
	svc := NewFurnitureService(repo, users, &testMaintenanceService{}, nil)
	return &testEnv{repo: repo, users: users, svc: svc}
}

func (e *testEnv) seedUser(premium bool) *entities.User {
	user := &entities.User{ID: uuid.New(), Name: "Ani", Email: uuid.NewString() + "@mail.com", IsPremium: premium}
	e.users.users[user.ID] = user
	return user
}

func (e *testEnv) seedCategory(name string) *entities.Category {
	category := &entities.Category{ID: uuid.New(), Name: name}
	e.repo.categories[category.ID] = category
	return category
}

func (e *testEnv) seedFurniture(userID uuid.UUID, categoryID uuid.UUID, name string) *entities.Furniture {
	furniture := &entities.Furniture{ID: uuid.New(), UserID: userID, CategoryID: categoryID, Name: name}
	e.repo.furniture[furniture.ID] = furniture
	return furniture
}

// -------------------------
// Tests
// -------------------------

func TestAddFurniture(t *testing.T) {
	env := newTestEnv()
	owner := env.seedUser(false)
	category := env.seedCategory("Table")

	res, err := env.svc.AddFurniture(context.Background(), domain.AddFurnitureRequest{
		Name:        "dining table",
		Brand:       "Informa",
		CategoryID:  category.ID.String(),
		PurchasedAt: "2024-03-10",
	}, owner.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Name != "dining table" || res.CategoryName != "Table" {
		t.Errorf("unexpected response: %+v", res)
	}
	if res.PurchasedAt == nil || !res.PurchasedAt.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("got purchased-at %v, want 2024-03-10", res.PurchasedAt)
	}
	if len(env.repo.furniture) != 1 {
		t.Errorf("got %d stored items, want 1", len(env.repo.furniture))
	}
}

func TestAddFurnitureFreeLimit(t *testing.T) {
	env := newTestEnv()
	owner := env.seedUser(false)
	category := env.seedCategory("Chair")

	for i := 0; i < DefaultFreeFurnitureLimit; i++ {
		env.seedFurniture(owner.ID, category.ID, "chair")
	}

	_, err := env.svc.AddFurniture(context.Background(), domain.AddFurnitureRequest{
		Name:       "one too many",
		CategoryID: category.ID.String(),
	}, owner.ID.String())
	if !errors.Is(err, domain.ErrFurnitureLimitReached) {
		t.Errorf("got %v, want ErrFurnitureLimitReached", err)
	}
}

func TestAddFurniturePremiumSkipsLimit(t *testing.T) {
	env := newTestEnv()
	owner := env.seedUser(true)
	category := env.seedCategory("Chair")

	for i := 0; i < DefaultFreeFurnitureLimit+5; i++ {
		env.seedFurniture(owner.ID, category.ID, "chair")
	}

	_, err := env.svc.AddFurniture(context.Background(), domain.AddFurnitureRequest{
		Name:       "still fine",
		CategoryID: category.ID.String(),
	}, owner.ID.String())
	if err != nil {
		t.Errorf("premium account should not hit the free limit, got %v", err)
	}
}

func TestAddFurnitureUnknownCategory(t *testing.T) {
	env := newTestEnv()
	owner := env.seedUser(false)

	_, err := env.svc.AddFurniture(context.Background(), domain.AddFurnitureRequest{
		Name:       "dining table",
		CategoryID: uuid.New().String(),
	}, owner.ID.String())
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("got %v, want ErrCategoryNotFound", err)
	}
}

func TestAddFurnitureInvalidPurchaseDate(t *testing.T) {
	env := newTestEnv()
	owner := env.seedUser(false)
	category := env.seedCategory("Table")

	_, err := env.svc.AddFurniture(context.Background(), domain.AddFurnitureRequest{
		Name:        "dining table",
		CategoryID:  category.ID.String(),
		PurchasedAt: "10/03/2024",
	}, owner.ID.String())
	if !errors.Is(err, domain.ErrInvalidPurchaseDate) {
		t.Errorf("got %v, want ErrInvalidPurchaseDate", err)
	}
}

func TestGetFurnitureByIDIncludesSummary(t *testing.T) {
	env := newTestEnv()
	owner := env.seedUser(false)
	category := env.seedCategory("Table")
	furniture := env.seedFurniture(owner.ID, category.ID, "dining table")

	nearest := "oil the top"
	due := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)
	env.svc = NewFurnitureService(env.repo, env.users, &testMaintenanceService{
		summary: domain.MaintenanceSummaryResponse{
			ActiveTaskCount: 2,
			NearestTaskName: &nearest,
			NearestDueDate:  &due,
		},
	}, nil)

	res, err := env.svc.GetFurnitureByID(context.Background(), furniture.ID.String(), owner.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Maintenance.ActiveTaskCount != 2 {
		t.Errorf("got active count %d, want 2", res.Maintenance.ActiveTaskCount)
	}
	if res.Maintenance.NearestTaskName == nil || *res.Maintenance.NearestTaskName != "oil the top" {
		t.Errorf("got nearest task %v, want oil the top", res.Maintenance.NearestTaskName)
	}
}

func TestGetFurnitureByIDWrongOwner(t *testing.T) {
	env := newTestEnv()
	owner := env.seedUser(false)
	category := env.seedCategory("Table")
	furniture := env.seedFurniture(owner.ID, category.ID, "dining table")

	_, err := env.svc.GetFurnitureByID(context.Background(), furniture.ID.String(), uuid.New().String())
	if !errors.Is(err, domain.ErrUnauthorizedAccess) {
		t.Errorf("got %v, want ErrUnauthorizedAccess", err)
	}
}

func TestGetFurnitureByIDNotFound(t *testing.T) {
	env := newTestEnv()
	owner := env.seedUser(false)

	_, err := env.svc.GetFurnitureByID(context.Background(), uuid.New().String(), owner.ID.String())
	if !errors.Is(err, domain.ErrFurnitureNotFound) {
		t.Errorf("got %v, want ErrFurnitureNotFound", err)
	}
}

func TestDeleteLocationWrongOwner(t *testing.T) {
	env := newTestEnv()
	owner := env.seedUser(false)

	location := &entities.Location{ID: uuid.New(), UserID: owner.ID, Name: "living room"}
	env.repo.locations[location.ID] = location

	err := env.svc.DeleteLocation(context.Background(), location.ID.String(), uuid.New().String())
	if !errors.Is(err, domain.ErrUnauthorizedAccess) {
		t.Errorf("got %v, want ErrUnauthorizedAccess", err)
	}
}

func TestUpdateFurniturePartialFields(t *testing.T) {
	env := newTestEnv()
	owner := env.seedUser(false)
	category := env.seedCategory("Table")
	furniture := env.seedFurniture(owner.ID, category.ID, "dining table")
	furniture.Brand = "Informa"

	err := env.svc.UpdateFurniture(context.Background(), furniture.ID.String(), domain.UpdateFurnitureRequest{
		Name: "kitchen table",
	}, owner.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := env.repo.furniture[furniture.ID]
	if stored.Name != "kitchen table" {
		t.Errorf("got name %q, want kitchen table", stored.Name)
	}
	if stored.Brand != "Informa" {
		t.Errorf("brand should be untouched, got %q", stored.Brand)
	}
}
