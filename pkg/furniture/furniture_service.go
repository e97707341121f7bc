package furniture

import (
	"Furnicare-Backend/domain"
	"Furnicare-Backend/entities"
	"Furnicare-Backend/internal/utils"
	"Furnicare-Backend/internal/utils/storage"
	"Furnicare-Backend/pkg/maintenance"
	"Furnicare-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultFreeFurnitureLimit caps catalogued items for non-premium accounts
// when the config does not override it.
const DefaultFreeFurnitureLimit = 10

type (
	FurnitureService interface {
		AddFurniture(ctx context.Context, req domain.AddFurnitureRequest, userID string) (domain.FurnitureResponse, error)
		GetFurnitureList(ctx context.Context, userID string, categoryID, locationID string, page, limit int) ([]domain.FurnitureResponse, int64, error)
		GetFurnitureByID(ctx context.Context, id string, userID string) (domain.FurnitureDetailResponse, error)
		UpdateFurniture(ctx context.Context, id string, req domain.UpdateFurnitureRequest, userID string) error
		DeleteFurniture(ctx context.Context, id string, userID string) error
		UploadFurniturePhoto(ctx context.Context, req domain.UploadFurniturePhotoRequest, userID string) (string, error)

		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)

		AddLocation(ctx context.Context, req domain.AddLocationRequest, userID string) (domain.LocationResponse, error)
		GetLocations(ctx context.Context, userID string) ([]domain.LocationResponse, error)
		UpdateLocation(ctx context.Context, id string, req domain.UpdateLocationRequest, userID string) error
		DeleteLocation(ctx context.Context, id string, userID string) error
	}

	furnitureService struct {
		furnitureRepository FurnitureRepository
		userRepository      user.UserRepository
		maintenanceService  maintenance.MaintenanceService
		s3                  storage.AwsS3
	}
)

func NewFurnitureService(
	furnitureRepository FurnitureRepository,
	userRepository user.UserRepository,
	maintenanceService maintenance.MaintenanceService,
	s3 storage.AwsS3,
) FurnitureService {
	return &furnitureService{
		furnitureRepository: furnitureRepository,
		userRepository:      userRepository,
		maintenanceService:  maintenanceService,
		s3:                  s3,
	}
}

func (s *furnitureService) AddFurniture(ctx context.Context, req domain.AddFurnitureRequest, userID string) (domain.FurnitureResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FurnitureResponse{}, domain.ErrParseUUID
	}

	owner, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.FurnitureResponse{}, err
	}

	if !owner.IsPremium {
		count, err := s.furnitureRepository.CountFurnitureByUser(ctx, userID)
		if err != nil {
			return domain.FurnitureResponse{}, err
		}
		if count >= int64(freeFurnitureLimit()) {
			return domain.FurnitureResponse{}, domain.ErrFurnitureLimitReached
		}
	}

	category, err := s.furnitureRepository.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FurnitureResponse{}, domain.ErrCategoryNotFound
		}
		return domain.FurnitureResponse{}, err
	}

	furniture := &entities.Furniture{
		ID:             uuid.New(),
		UserID:         userUUID,
		Name:           req.Name,
		Brand:          req.Brand,
		CategoryID:     category.ID,
		PurchaseSource: req.PurchaseSource,
		Notes:          req.Notes,
	}

	if req.LocationID != "" {
		location, err := s.ownedLocation(ctx, req.LocationID, userID)
		if err != nil {
			return domain.FurnitureResponse{}, err
		}
		furniture.LocationID = &location.ID
	}

	if req.PurchasedAt != "" {
		purchasedAt, err := time.Parse("2006-01-02", req.PurchasedAt)
		if err != nil {
			return domain.FurnitureResponse{}, domain.ErrInvalidPurchaseDate
		}
		furniture.PurchasedAt = &purchasedAt
	}

	if err := s.furnitureRepository.AddFurniture(ctx, furniture); err != nil {
		return domain.FurnitureResponse{}, err
	}

	furniture.Category = category
	return furnitureResponse(furniture), nil
}

func (s *furnitureService) GetFurnitureList(ctx context.Context, userID string, categoryID, locationID string, page, limit int) ([]domain.FurnitureResponse, int64, error) {
	furnitureList, count, err := s.furnitureRepository.GetFurnitureList(ctx, userID, categoryID, locationID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := []domain.FurnitureResponse{}
	for _, item := range furnitureList {
		response = append(response, furnitureResponse(item))
	}
	return response, count, nil
}

func (s *furnitureService) GetFurnitureByID(ctx context.Context, id string, userID string) (domain.FurnitureDetailResponse, error) {
	furniture, err := s.ownedFurniture(ctx, id, userID)
	if err != nil {
		return domain.FurnitureDetailResponse{}, err
	}

	summary, err := s.maintenanceService.GetFurnitureSummary(ctx, id)
	if err != nil {
		return domain.FurnitureDetailResponse{}, err
	}

	return domain.FurnitureDetailResponse{
		FurnitureResponse: furnitureResponse(furniture),
		Maintenance:       summary,
	}, nil
}

func (s *furnitureService) UpdateFurniture(ctx context.Context, id string, req domain.UpdateFurnitureRequest, userID string) error {
	furniture, err := s.ownedFurniture(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		furniture.Name = req.Name
	}
	if req.Brand != "" {
		furniture.Brand = req.Brand
	}
	if req.PurchaseSource != "" {
		furniture.PurchaseSource = req.PurchaseSource
	}
	if req.Notes != "" {
		furniture.Notes = req.Notes
	}

	if req.CategoryID != "" {
		category, err := s.furnitureRepository.GetCategoryByID(ctx, req.CategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCategoryNotFound
			}
			return err
		}
		furniture.CategoryID = category.ID
	}

	if req.LocationID != "" {
		location, err := s.ownedLocation(ctx, req.LocationID, userID)
		if err != nil {
			return err
		}
		furniture.LocationID = &location.ID
	}

	if req.PurchasedAt != "" {
		purchasedAt, err := time.Parse("2006-01-02", req.PurchasedAt)
		if err != nil {
			return domain.ErrInvalidPurchaseDate
		}
		furniture.PurchasedAt = &purchasedAt
	}

	return s.furnitureRepository.UpdateFurniture(ctx, furniture)
}

func (s *furnitureService) DeleteFurniture(ctx context.Context, id string, userID string) error {
	furniture, err := s.ownedFurniture(ctx, id, userID)
	if err != nil {
		return err
	}

	if furniture.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(furniture.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.furnitureRepository.DeleteFurniture(ctx, id)
}

func (s *furnitureService) UploadFurniturePhoto(ctx context.Context, req domain.UploadFurniturePhotoRequest, userID string) (string, error) {
	furniture, err := s.ownedFurniture(ctx, req.FurnitureID, userID)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("furniture-%s", furniture.ID.String())
	var objectKey string
	var uploadErr error

	if furniture.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(furniture.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Photo, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Photo, "furniture", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Photo, "furniture", storage.AllowImage...)
	}

	if uploadErr != nil {
		return "", uploadErr
	}

	furniture.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.furnitureRepository.UpdateFurniture(ctx, furniture); err != nil {
		return "", err
	}

	return furniture.ImageURL, nil
}

func (s *furnitureService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.furnitureRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	response := []domain.CategoryResponse{}
	for _, category := range categories {
		response = append(response, domain.CategoryResponse{
			ID:   category.ID.String(),
			Name: category.Name,
			Icon: category.Icon,
		})
	}
	return response, nil
}

func (s *furnitureService) AddLocation(ctx context.Context, req domain.AddLocationRequest, userID string) (domain.LocationResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.LocationResponse{}, domain.ErrParseUUID
	}

	location := &entities.Location{
		ID:     uuid.New(),
		UserID: userUUID,
		Name:   req.Name,
	}

	if err := s.furnitureRepository.AddLocation(ctx, location); err != nil {
		return domain.LocationResponse{}, err
	}

	return domain.LocationResponse{ID: location.ID.String(), Name: location.Name}, nil
}

func (s *furnitureService) GetLocations(ctx context.Context, userID string) ([]domain.LocationResponse, error) {
	locations, err := s.furnitureRepository.GetLocationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := []domain.LocationResponse{}
	for _, location := range locations {
		response = append(response, domain.LocationResponse{
			ID:   location.ID.String(),
			Name: location.Name,
		})
	}
	return response, nil
}

func (s *furnitureService) UpdateLocation(ctx context.Context, id string, req domain.UpdateLocationRequest, userID string) error {
	location, err := s.ownedLocation(ctx, id, userID)
	if err != nil {
		return err
	}

	location.Name = req.Name
	return s.furnitureRepository.UpdateLocation(ctx, location)
}

func (s *furnitureService) DeleteLocation(ctx context.Context, id string, userID string) error {
	if _, err := s.ownedLocation(ctx, id, userID); err != nil {
		return err
	}
	return s.furnitureRepository.DeleteLocation(ctx, id)
}

func (s *furnitureService) ownedFurniture(ctx context.Context, id string, userID string) (*entities.Furniture, error) {
	furniture, err := s.furnitureRepository.GetFurnitureByID(ctx, id)
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

func (s *furnitureService) ownedLocation(ctx context.Context, id string, userID string) (*entities.Location, error) {
	location, err := s.furnitureRepository.GetLocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, err
	}
	if location.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}
	return location, nil
}

func furnitureResponse(furniture *entities.Furniture) domain.FurnitureResponse {
	response := domain.FurnitureResponse{
		ID:             furniture.ID.String(),
		Name:           furniture.Name,
		Brand:          furniture.Brand,
		CategoryID:     furniture.CategoryID.String(),
		ImageURL:       furniture.ImageURL,
		PurchasedAt:    furniture.PurchasedAt,
		PurchaseSource: furniture.PurchaseSource,
		Notes:          furniture.Notes,
		CreatedAt:      furniture.CreatedAt,
	}
	if furniture.Category != nil {
		response.CategoryName = furniture.Category.Name
	}
	if furniture.LocationID != nil {
		response.LocationID = furniture.LocationID.String()
	}
	if furniture.Location != nil {
		response.LocationName = furniture.Location.Name
	}
	return response
}

func freeFurnitureLimit() int {
	limit, err := strconv.Atoi(utils.GetConfig("FREE_FURNITURE_LIMIT"))
	if err != nil || limit < 1 {
		return DefaultFreeFurnitureLimit
	}
	return limit
}
