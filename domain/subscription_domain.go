package domain

import "errors"

var (
	MessageSuccessCreateSubscription = "subscription checkout created successfully"
	MessageSuccessHandleWebhook      = "webhook processed successfully"

	MessageFailedCreateSubscription = "failed to create subscription checkout"
	MessageFailedHandleWebhook      = "failed to process webhook"

	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrAlreadyPremium          = errors.New("user already premium")
	ErrWebhookSignatureInvalid = errors.New("webhook signature invalid")
)

type (
	CreateSubscriptionResponse struct {
		OrderID     string `json:"order_id"`
		Token       string `json:"token"`
		RedirectURL string `json:"redirect_url"`
	}

	MidtransWebhookRequest struct {
		OrderID           string `json:"order_id" validate:"required"`
		TransactionStatus string `json:"transaction_status" validate:"required"`
		StatusCode        string `json:"status_code" validate:"required"`
		GrossAmount       string `json:"gross_amount" validate:"required"`
		SignatureKey      string `json:"signature_key" validate:"required"`
		FraudStatus       string `json:"fraud_status"`
	}
)
