package subscription

import (
	"Furnicare-Backend/domain"
	"Furnicare-Backend/entities"
	"Furnicare-Backend/internal/utils"
	"Furnicare-Backend/pkg/user"
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

// PremiumPrice is the one-off premium upgrade price in IDR.
const PremiumPrice int64 = 49000

type (
	SubscriptionService interface {
		CreateSubscription(ctx context.Context, userID string) (domain.CreateSubscriptionResponse, error)
		HandleWebhook(ctx context.Context, req domain.MidtransWebhookRequest) error
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
		userRepository         user.UserRepository
		snapClient             snap.Client
		serverKey              string
	}
)

func NewSubscriptionService(subscriptionRepository SubscriptionRepository, userRepository user.UserRepository) SubscriptionService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	serverKey := utils.GetConfig("SERVER_KEY")
	var snapClient snap.Client
	snapClient.New(serverKey, env)

	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		userRepository:         userRepository,
		snapClient:             snapClient,
		serverKey:              serverKey,
	}
}

func (s *subscriptionService) CreateSubscription(ctx context.Context, userID string) (domain.CreateSubscriptionResponse, error) {
	owner, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CreateSubscriptionResponse{}, domain.ErrUserNotFound
		}
		return domain.CreateSubscriptionResponse{}, err
	}

	if owner.IsPremium {
		return domain.CreateSubscriptionResponse{}, domain.ErrAlreadyPremium
	}

	orderID := fmt.Sprintf("premium-%s", uuid.New().String())
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: PremiumPrice,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: owner.Name,
			Email: owner.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    "premium-upgrade",
				Name:  "Furnicare Premium",
				Price: PremiumPrice,
				Qty:   1,
			},
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.CreateSubscriptionResponse{}, snapErr
	}

	transaction := &entities.Transaction{
		ID:      uuid.New(),
		UserID:  owner.ID,
		OrderID: orderID,
		Amount:  PremiumPrice,
		Status:  "Pending",
		SnapURL: snapResp.RedirectURL,
	}

	if err := s.subscriptionRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.CreateSubscriptionResponse{}, err
	}

	return domain.CreateSubscriptionResponse{
		OrderID:     orderID,
		Token:       snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

func (s *subscriptionService) HandleWebhook(ctx context.Context, req domain.MidtransWebhookRequest) error {
	if !s.validSignature(req) {
		return domain.ErrWebhookSignatureInvalid
	}

	transaction, err := s.subscriptionRepository.GetTransactionByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		if req.FraudStatus == "challenge" || req.FraudStatus == "deny" {
			transaction.Status = "Failed"
			return s.subscriptionRepository.UpdateTransaction(ctx, transaction)
		}

		now := time.Now()
		transaction.Status = "Settled"
		transaction.PaidAt = &now
		if err := s.subscriptionRepository.UpdateTransaction(ctx, transaction); err != nil {
			return err
		}

		owner, err := s.userRepository.GetUserByID(ctx, transaction.UserID.String())
		if err != nil {
			return err
		}
		owner.IsPremium = true
		owner.PremiumSince = &now
		return s.userRepository.UpdateUser(ctx, owner)
	case "deny", "cancel", "expire", "failure":
		transaction.Status = "Failed"
		return s.subscriptionRepository.UpdateTransaction(ctx, transaction)
	default:
		// "pending" and anything unrecognized leaves the row untouched.
		return nil
	}
}

// validSignature checks the midtrans notification signature:
// sha512(order_id + status_code + gross_amount + server key), hex encoded.
func (s *subscriptionService) validSignature(req domain.MidtransWebhookRequest) bool {
	payload := req.OrderID + req.StatusCode + req.GrossAmount + s.serverKey
	sum := sha512.Sum512([]byte(payload))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(req.SignatureKey)) == 1
}
