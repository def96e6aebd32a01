package models

import (
	"time"
)

// PaymentMethodMobileMoney is the only payment method the /pay endpoint
// accepts.
const PaymentMethodMobileMoney = "mobile-money"

// PayRequest represents an incoming payment initiation request
type PayRequest struct {
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	CompetitionID string  `json:"competitionId"`
}

// PayResponse represents the response to a payment initiation request
type PayResponse struct {
	TransactionID string             `json:"transactionId"`
	Status        TransactionStatus  `json:"status"`
	Provider      CollectionResponse `json:"provider"`
}

// CollectionRequest is the ioTec collect call payload: a request asking the
// provider to pull funds from the payer's mobile-money wallet.
type CollectionRequest struct {
	Category   string  `json:"category"`
	WalletID   string  `json:"walletId"`
	ExternalID string  `json:"externalId"`
	Payer      string  `json:"payer"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	PayerNote  string  `json:"payerNote"`
	PayeeNote  string  `json:"payeeNote"`
}

// CollectionResponse is the provider's view of a collection request
type CollectionResponse struct {
	ID            string  `json:"id"`
	ExternalID    string  `json:"externalId"`
	Status        string  `json:"status"`
	StatusMessage string  `json:"statusMessage"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}

// TokenResponse is the identity endpoint's answer to a client-credentials
// grant
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Notification is the record accepted by the notification sink
type Notification struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
	UserID  string `json:"userId"`
}

// VerificationCode is a single-use 6-digit code keyed by email, valid for
// ten minutes, cross-referencing the transaction it was issued for.
type VerificationCode struct {
	Email         string    `json:"email"`
	Code          string    `json:"code"`
	TransactionID string    `json:"transactionId"`
	Used          bool      `json:"used"`
	CreatedAt     time.Time `json:"createdAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
}
