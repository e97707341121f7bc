package furniture

import (
	"Furnicare-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	FurnitureRepository interface {
		AddFurniture(ctx context.Context, furniture *entities.Furniture) error
		GetFurnitureByID(ctx context.Context, id string) (*entities.Furniture, error)
		UpdateFurniture(ctx context.Context, furniture *entities.Furniture) error
		DeleteFurniture(ctx context.Context, id string) error
		GetFurnitureList(ctx context.Context, userID string, categoryID string, locationID string, page, limit int) ([]*entities.Furniture, int64, error)
		CountFurnitureByUser(ctx context.Context, userID string) (int64, error)

		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetCategoryByID(ctx context.Context, id string) (*entities.Category, error)

		AddLocation(ctx context.Context, location *entities.Location) error
		GetLocationByID(ctx context.Context, id string) (*entities.Location, error)
		GetLocationsByUser(ctx context.Context, userID string) ([]*entities.Location, error)
		UpdateLocation(ctx context.Context, location *entities.Location) error
		DeleteLocation(ctx context.Context, id string) error
	}

	furnitureRepository struct {
		db *gorm.DB
	}
)

func NewFurnitureRepository(db *gorm.DB) FurnitureRepository {
	return &furnitureRepository{db: db}
}

func (r *furnitureRepository) AddFurniture(ctx context.Context, furniture *entities.Furniture) error {
	return r.db.WithContext(ctx).Create(furniture).Error
}

func (r *furnitureRepository) GetFurnitureByID(ctx context.Context, id string) (*entities.Furniture, error) {
	var furniture entities.Furniture
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Location").
		Where("id = ?", id).
		First(&furniture).Error; err != nil {
		return nil, err
	}
	return &furniture, nil
}

func (r *furnitureRepository) UpdateFurniture(ctx context.Context, furniture *entities.Furniture) error {
	return r.db.WithContext(ctx).Save(furniture).Error
}

func (r *furnitureRepository) DeleteFurniture(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Furniture{}).Error
}

func (r *furnitureRepository) GetFurnitureList(ctx context.Context, userID string, categoryID string, locationID string, page, limit int) ([]*entities.Furniture, int64, error) {
	var furniture []*entities.Furniture
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if locationID != "" {
		query = query.Where("location_id = ?", locationID)
	}

	if err := query.Model(&entities.Furniture{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Category").
		Preload("Location").
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&furniture).Error; err != nil {
		return nil, 0, err
	}

	return furniture, count, nil
}

func (r *furnitureRepository) CountFurnitureByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Furniture{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *furnitureRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *furnitureRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *furnitureRepository) AddLocation(ctx context.Context, location *entities.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *furnitureRepository) GetLocationByID(ctx context.Context, id string) (*entities.Location, error) {
	var location entities.Location
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *furnitureRepository) GetLocationsByUser(ctx context.Context, userID string) ([]*entities.Location, error) {
	var locations []*entities.Location
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name asc").
		Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *furnitureRepository) UpdateLocation(ctx context.Context, location *entities.Location) error {
	return r.db.WithContext(ctx).Save(location).Error
}

func (r *furnitureRepository) DeleteLocation(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Location{}).Error
}
