package entities

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`
	Icon string    `json:"icon,omitempty"`

	Furniture []*Furniture `gorm:"foreignKey:CategoryID"`
	Timestamp
}

type Location struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`

	User      *User        `gorm:"foreignKey:UserID"`
	Furniture []*Furniture `gorm:"foreignKey:LocationID"`
	Timestamp
}

type Furniture struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	Name           string     `json:"name"`
	Brand          string     `json:"brand,omitempty"`
	CategoryID     uuid.UUID  `json:"category_id"`
	LocationID     *uuid.UUID `json:"location_id,omitempty"`
	ImageURL       string     `json:"image_url,omitempty"`
	PurchasedAt    *time.Time `json:"purchased_at,omitempty"`
	PurchaseSource string     `json:"purchase_source,omitempty"`
	Notes          string     `gorm:"type:text" json:"notes,omitempty"`

	User             *User              `gorm:"foreignKey:UserID"`
	Category         *Category          `gorm:"foreignKey:CategoryID"`
	Location         *Location          `gorm:"foreignKey:LocationID"`
	MaintenanceTasks []*MaintenanceTask `gorm:"foreignKey:FurnitureID"`
	Timestamp
}
