package payments

import (
	"context"
	"time"

	"github.com/kasozi/talentpay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kasozi/talentpay/services/payments PaymentRepo,MirrorRepo

// PaymentRepo is the durable transaction store: the single source of truth
// consulted before re-querying the provider.
type PaymentRepo interface {
	// Create inserts a new transaction record.
	Create(ctx context.Context, tx *models.Transaction) error

	// Get returns the transaction or a NotFoundError.
	Get(ctx context.Context, transactionID string) (*models.Transaction, error)

	// UpdateStatus merges the supplied fields and refreshes updated_at.
	// The write is conditional: it never regresses a terminal status, so
	// it is idempotent under retry and safe against a slow provider
	// response clobbering a newer terminal state.
	UpdateStatus(ctx context.Context, transactionID string, update models.StatusUpdate) error

	// ForceUpdateStatus bypasses the terminal-status guard and records the
	// acting admin. Administrative escape hatch.
	ForceUpdateStatus(ctx context.Context, transactionID string, status models.TransactionStatus, message, actor string) error

	// QueryByPhone returns transactions for a payer phone, most recent
	// first, capped at limit.
	QueryByPhone(ctx context.Context, phone string, limit int) ([]*models.Transaction, error)

	// QueryByEmail returns transactions for a payer email, most recent
	// first.
	QueryByEmail(ctx context.Context, email string) ([]*models.Transaction, error)
}

// MirrorRepo is the best-effort client-visible mirror of transaction state
// plus the verification-code store. Writes are fire-and-forget from the
// request path's point of view; the side-effect queue owns retries.
type MirrorRepo interface {
	// MirrorTransaction records the latest state for fallback lookups.
	MirrorTransaction(ctx context.Context, tx *models.Transaction) error

	// LatestByPhone returns the most recent mirrored transaction for a
	// phone number, or nil when none exists.
	LatestByPhone(ctx context.Context, phone string) (*models.Transaction, error)

	// Verification codes, keyed by email, TTL-enforced.
	SaveVerificationCode(ctx context.Context, code *models.VerificationCode, ttl time.Duration) error
	GetVerificationCode(ctx context.Context, email string) (*models.VerificationCode, error)
	MarkVerificationCodeUsed(ctx context.Context, email string) error
}
