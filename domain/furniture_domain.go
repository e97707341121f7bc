package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFurniture    = "furniture added successfully"
	MessageSuccessUpdateFurniture = "furniture updated successfully"
	MessageSuccessDeleteFurniture = "furniture deleted successfully"
	MessageSuccessGetFurniture    = "furniture retrieved successfully"
	MessageSuccessUploadPhoto     = "furniture photo uploaded successfully"
	MessageSuccessGetCategories   = "categories retrieved successfully"
	MessageSuccessAddLocation     = "location added successfully"
	MessageSuccessGetLocations    = "locations retrieved successfully"
	MessageSuccessUpdateLocation  = "location updated successfully"
	MessageSuccessDeleteLocation  = "location deleted successfully"

	MessageFailedAddFurniture    = "failed to add furniture"
	MessageFailedUpdateFurniture = "failed to update furniture"
	MessageFailedDeleteFurniture = "failed to delete furniture"
	MessageFailedGetFurniture    = "failed to retrieve furniture"
	MessageFailedUploadPhoto     = "failed to upload furniture photo"
	MessageFailedGetCategories   = "failed to retrieve categories"
	MessageFailedAddLocation     = "failed to add location"
	MessageFailedGetLocations    = "failed to retrieve locations"
	MessageFailedUpdateLocation  = "failed to update location"
	MessageFailedDeleteLocation  = "failed to delete location"

	ErrFurnitureNotFound     = errors.New("furniture not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrLocationNotFound      = errors.New("location not found")
	ErrInvalidPurchaseDate   = errors.New("invalid purchase date")
	ErrUnauthorizedAccess    = errors.New("unauthorized access to resource")
	ErrFurnitureLimitReached = errors.New("furniture limit reached, upgrade to premium")
)

type (
	AddFurnitureRequest struct {
		Name           string `json:"name" validate:"required"`
		Brand          string `json:"brand" validate:"omitempty"`
		CategoryID     string `json:"category_id" validate:"required,uuid"`
		LocationID     string `json:"location_id" validate:"omitempty,uuid"`
		PurchasedAt    string `json:"purchased_at" validate:"omitempty"`
		PurchaseSource string `json:"purchase_source" validate:"omitempty"`
		Notes          string `json:"notes" validate:"omitempty"`
	}

	UpdateFurnitureRequest struct {
		Name           string `json:"name" validate:"omitempty"`
		Brand          string `json:"brand" validate:"omitempty"`
		CategoryID     string `json:"category_id" validate:"omitempty,uuid"`
		LocationID     string `json:"location_id" validate:"omitempty,uuid"`
		PurchasedAt    string `json:"purchased_at" validate:"omitempty"`
		PurchaseSource string `json:"purchase_source" validate:"omitempty"`
		Notes          string `json:"notes" validate:"omitempty"`
	}

	UploadFurniturePhotoRequest struct {
		FurnitureID string                `json:"furniture_id" form:"furniture_id" validate:"required,uuid"`
		Photo       *multipart.FileHeader `json:"photo" form:"photo" validate:"required"`
	}

	FurnitureResponse struct {
		ID             string     `json:"id"`
		Name           string     `json:"name"`
		Brand          string     `json:"brand,omitempty"`
		CategoryID     string     `json:"category_id"`
		CategoryName   string     `json:"category_name,omitempty"`
		LocationID     string     `json:"location_id,omitempty"`
		LocationName   string     `json:"location_name,omitempty"`
		ImageURL       string     `json:"image_url,omitempty"`
		PurchasedAt    *time.Time `json:"purchased_at,omitempty"`
		PurchaseSource string     `json:"purchase_source,omitempty"`
		Notes          string     `json:"notes,omitempty"`
		CreatedAt      time.Time  `json:"created_at"`
	}

	FurnitureDetailResponse struct {
		FurnitureResponse
		Maintenance MaintenanceSummaryResponse `json:"maintenance"`
	}

	CategoryResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Icon string `json:"icon,omitempty"`
	}

	AddLocationRequest struct {
		Name string `json:"name" validate:"required"`
	}

	UpdateLocationRequest struct {
		Name string `json:"name" validate:"required"`
	}

	LocationResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
)
