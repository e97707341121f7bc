package subscription

import (
	"Furnicare-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	SubscriptionRepository interface {
		CreateTransaction(ctx context.Context, transaction *entities.Transaction) error
		GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.Transaction, error)
		UpdateTransaction(ctx context.Context, transaction *entities.Transaction) error
	}

	subscriptionRepository struct {
		db *gorm.DB
	}
)

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) CreateTransaction(ctx context.Context, transaction *entities.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *subscriptionRepository) GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.Transaction, error) {
	var transaction entities.Transaction
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&transaction).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *subscriptionRepository) UpdateTransaction(ctx context.Context, transaction *entities.Transaction) error {
	return r.db.WithContext(ctx).Save(transaction).Error
}
