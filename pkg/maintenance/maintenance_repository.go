package maintenance

import (
	"Furnicare-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	MaintenanceRepository interface {
		AddTask(ctx context.Context, task *entities.MaintenanceTask) error
		GetTaskByID(ctx context.Context, id string) (*entities.MaintenanceTask, error)
		GetTasksByFurniture(ctx context.Context, furnitureID string) ([]*entities.MaintenanceTask, error)
		UpdateTask(ctx context.Context, task *entities.MaintenanceTask) error
		DeleteTask(ctx context.Context, id string) error

		AddRecord(ctx context.Context, record *entities.MaintenanceRecord) error
		GetRecordByID(ctx context.Context, id string) (*entities.MaintenanceRecord, error)
		GetRecordsByTask(ctx context.Context, taskID string) ([]*entities.MaintenanceRecord, error)
		GetRecordsByFurniture(ctx context.Context, furnitureID string) ([]*entities.MaintenanceRecord, error)
		DeleteRecord(ctx context.Context, id string) error

		GetFurnitureByID(ctx context.Context, id string) (*entities.Furniture, error)
		GetUserMaintenanceData(ctx context.Context, userID string) ([]*entities.Furniture, []*entities.MaintenanceTask, []*entities.MaintenanceRecord, error)
	}

	maintenanceRepository struct {
		db *gorm.DB
	}
)

func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) AddTask(ctx context.Context, task *entities.MaintenanceTask) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *maintenanceRepository) GetTaskByID(ctx context.Context, id string) (*entities.MaintenanceTask, error) {
	var task entities.MaintenanceTask
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *maintenanceRepository) GetTasksByFurniture(ctx context.Context, furnitureID string) ([]*entities.MaintenanceTask, error) {
	var tasks []*entities.MaintenanceTask
	if err := r.db.WithContext(ctx).
		Where("furniture_id = ?", furnitureID).
		Order("created_at asc").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *maintenanceRepository) UpdateTask(ctx context.Context, task *entities.MaintenanceTask) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *maintenanceRepository) DeleteTask(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MaintenanceTask{}).Error
}

func (r *maintenanceRepository) AddRecord(ctx context.Context, record *entities.MaintenanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *maintenanceRepository) GetRecordByID(ctx context.Context, id string) (*entities.MaintenanceRecord, error) {
	var record entities.MaintenanceRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *maintenanceRepository) GetRecordsByTask(ctx context.Context, taskID string) ([]*entities.MaintenanceRecord, error) {
	var records []*entities.MaintenanceRecord
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("performed_at desc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *maintenanceRepository) GetRecordsByFurniture(ctx context.Context, furnitureID string) ([]*entities.MaintenanceRecord, error) {
	var records []*entities.MaintenanceRecord
	if err := r.db.WithContext(ctx).
		Joins("JOIN maintenance_tasks ON maintenance_tasks.id = maintenance_records.task_id").
		Where("maintenance_tasks.furniture_id = ? AND maintenance_tasks.deleted_at IS NULL", furnitureID).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *maintenanceRepository) DeleteRecord(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MaintenanceRecord{}).Error
}

func (r *maintenanceRepository) GetFurnitureByID(ctx context.Context, id string) (*entities.Furniture, error) {
	var furniture entities.Furniture
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&furniture).Error; err != nil {
		return nil, err
	}
	return &furniture, nil
}

// GetUserMaintenanceData fetches the three collections backing the
// all-tasks summary through one session. The queries are still separate
// reads; the summary accepts whatever snapshot they observe.
func (r *maintenanceRepository) GetUserMaintenanceData(ctx context.Context, userID string) ([]*entities.Furniture, []*entities.MaintenanceTask, []*entities.MaintenanceRecord, error) {
	session := r.db.WithContext(ctx)

	var furniture []*entities.Furniture
	if err := session.Where("user_id = ?", userID).Find(&furniture).Error; err != nil {
		return nil, nil, nil, err
	}

	var tasks []*entities.MaintenanceTask
	if err := session.
		Joins("JOIN furnitures ON furnitures.id = maintenance_tasks.furniture_id").
		Where("furnitures.user_id = ? AND furnitures.deleted_at IS NULL", userID).
		Order("maintenance_tasks.created_at asc").
		Find(&tasks).Error; err != nil {
		return nil, nil, nil, err
	}

	var records []*entities.MaintenanceRecord
	if err := session.
		Joins("JOIN maintenance_tasks ON maintenance_tasks.id = maintenance_records.task_id").
		Joins("JOIN furnitures ON furnitures.id = maintenance_tasks.furniture_id").
		Where("furnitures.user_id = ? AND furnitures.deleted_at IS NULL AND maintenance_tasks.deleted_at IS NULL", userID).
		Find(&records).Error; err != nil {
		return nil, nil, nil, err
	}

	return furniture, tasks, records, nil
}
