package entities

import (
	"time"

	"github.com/google/uuid"
)

type MaintenanceTask struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FurnitureID uuid.UUID `json:"furniture_id"`
	Name        string    `json:"name"`
	CycleValue  int       `json:"cycle_value"`
	CycleUnit   string    `json:"cycle_unit"` // "days", "weeks", "months", "years"
	// Nullable for rows imported before the flag existed; treated as inactive.
	IsActive *bool `json:"is_active"`

	Furniture *Furniture           `gorm:"foreignKey:FurnitureID"`
	Records   []*MaintenanceRecord `gorm:"foreignKey:TaskID"`
	Timestamp
}

type MaintenanceRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	TaskID      uuid.UUID `json:"task_id"`
	PerformedAt time.Time `json:"performed_at"`
	NextDueDate time.Time `json:"next_due_date"`
	Status      string    `json:"status"` // "Completed", "Skipped", "Partial"

	// Snapshot of the task at recording time; not recomputed on read.
	TaskName   string `json:"task_name"`
	CycleValue int    `json:"cycle_value"`
	CycleUnit  string `json:"cycle_unit"`

	Task *MaintenanceTask `gorm:"foreignKey:TaskID"`
	Timestamp
}
