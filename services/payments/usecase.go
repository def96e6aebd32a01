package payments

import (
	"context"

	"github.com/kasozi/talentpay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kasozi/talentpay/services/payments PaymentUC

// PaymentUC represents the payment usecase interface
type PaymentUC interface {
	// InitiatePayment validates the request, submits a collection request
	// to the provider and records the initial transaction state.
	InitiatePayment(ctx context.Context, req *models.PayRequest) (*models.PayResponse, error)

	// ResolveStatus resolves the current status for a transaction id,
	// consulting the store first and falling back to a live provider
	// query, writing back any change.
	ResolveStatus(ctx context.Context, transactionID string) (*models.Transaction, error)

	// ResolveStatusStoreOnly bypasses the provider and trusts the store as
	// the sole source of truth.
	ResolveStatusStoreOnly(ctx context.Context, transactionID string) (*models.Transaction, error)

	// ForceStatus is the admin override: unconditionally sets status and
	// message, recording who did it and when.
	ForceStatus(ctx context.Context, transactionID string, status models.TransactionStatus, message, actor string) (*models.Transaction, error)

	// UserPayments lists a payer's transactions, most recent first.
	UserPayments(ctx context.Context, email string) ([]*models.Transaction, error)

	// Verification code side flow
	IssueVerificationCode(ctx context.Context, email, transactionID string) (*models.VerificationCode, error)
	ConfirmVerificationCode(ctx context.Context, email, code string) (string, error)
}
