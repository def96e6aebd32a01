package models

import (
	"strings"
	"time"
)

// TransactionStatus is the closed set of payment states. Provider strings
// are normalized into this set at the store boundary and never propagated
// raw into business logic.
type TransactionStatus string

const (
	StatusPending    TransactionStatus = "PENDING"
	StatusSuccessful TransactionStatus = "SUCCESSFUL"
	StatusFailed     TransactionStatus = "FAILED"
	StatusCancelled  TransactionStatus = "CANCELLED"
	StatusUnknown    TransactionStatus = "UNKNOWN"
)

// NormalizeStatus maps a raw provider or client status string onto the
// closed enumeration. SUCCESS and SUCCESSFUL are the same state; matching
// is case-insensitive; anything unrecognized is UNKNOWN.
func NormalizeStatus(raw string) TransactionStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PENDING", "SENTTOVENDOR":
		return StatusPending
	case "SUCCESS", "SUCCESSFUL":
		return StatusSuccessful
	case "FAILED", "FAILURE":
		return StatusFailed
	case "CANCELLED":
		return StatusCancelled
	default:
		return StatusUnknown
	}
}

// IsTerminal reports whether no further transition is expected without a
// manual override.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusSuccessful || s == StatusFailed || s == StatusCancelled
}

// Transaction represents one payment attempt. The transaction ID is
// generated locally by the initiator, never by the provider, so it stays
// stable across provider downtime.
type Transaction struct {
	TransactionID         string            `json:"transactionId" db:"transaction_id"`
	ProviderTransactionID *string           `json:"providerTransactionId,omitempty" db:"provider_transaction_id"`
	Amount                float64           `json:"amount" db:"amount"`
	Currency              string            `json:"currency" db:"currency"`
	PayerPhone            string            `json:"payerPhone" db:"payer_phone"`
	PayerEmail            string            `json:"payerEmail" db:"payer_email"`
	PayerName             string            `json:"payerName" db:"payer_name"`
	Status                TransactionStatus `json:"status" db:"status"`
	StatusMessage         string            `json:"statusMessage" db:"status_message"`
	CompetitionID         string            `json:"competitionId" db:"competition_id"`
	ManuallyUpdatedBy     *string           `json:"manuallyUpdatedBy,omitempty" db:"manually_updated_by"`
	ManuallyUpdatedAt     *time.Time        `json:"manuallyUpdatedAt,omitempty" db:"manually_updated_at"`
	CreatedAt             time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt             time.Time         `json:"updatedAt" db:"updated_at"`
}

// StatusUpdate carries a partial status write for a transaction. Only the
// supplied fields change; updated_at is always refreshed by the store.
type StatusUpdate struct {
	Status                TransactionStatus
	StatusMessage         string
	ProviderTransactionID *string
}
