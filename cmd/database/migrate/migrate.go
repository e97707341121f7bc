package migration

import (
	"Furnicare-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Transaction{}); err != nil {
		log.Fatalf("Error migrating transaction database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Location{}); err != nil {
		log.Fatalf("Error migrating location database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Furniture{}); err != nil {
		log.Fatalf("Error migrating furniture database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MaintenanceTask{}); err != nil {
		log.Fatalf("Error migrating maintenance task database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MaintenanceRecord{}); err != nil {
		log.Fatalf("Error migrating maintenance record database: %v", err)
		return err
	}

	if err := seedCategories(db); err != nil {
		log.Fatalf("Error seeding categories: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

func seedCategories(db *gorm.DB) error {
	defaults := []entities.Category{
		{Name: "Table", Icon: "table"},
		{Name: "Chair", Icon: "chair"},
		{Name: "Sofa", Icon: "sofa"},
		{Name: "Bed", Icon: "bed"},
		{Name: "Cabinet", Icon: "cabinet"},
		{Name: "Shelf", Icon: "shelf"},
		{Name: "Desk", Icon: "desk"},
		{Name: "Other", Icon: "box"},
	}

	for _, category := range defaults {
		if err := db.Where("name = ?", category.Name).
			FirstOrCreate(&entities.Category{}, category).Error; err != nil {
			return err
		}
	}
	return nil
}
