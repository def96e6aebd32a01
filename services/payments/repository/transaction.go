package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kasozi/talentpay/internal/pkg/apperrors"
	"github.com/kasozi/talentpay/internal/pkg/models"
)

// TransactionRepo is the PostgreSQL-backed transaction store
type TransactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepo creates a new transaction repository
func NewTransactionRepo(db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{db: db}
}

const transactionColumns = `transaction_id, provider_transaction_id, amount, currency,
		payer_phone, payer_email, payer_name, status, status_message,
		competition_id, manually_updated_by, manually_updated_at, created_at, updated_at`

// Create inserts a new transaction record
func (r *TransactionRepo) Create(ctx context.Context, tx *models.Transaction) error {
	now := time.Now().UTC()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	query := `
		INSERT INTO transactions (transaction_id, provider_transaction_id, amount, currency,
			payer_phone, payer_email, payer_name, status, status_message,
			competition_id, created_at, updated_at
		) VALUES (:transaction_id, :provider_transaction_id, :amount, :currency,
			:payer_phone, :payer_email, :payer_name, :status, :status_message,
			:competition_id, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, tx)
	if err != nil {
		return &apperrors.StoreError{Op: "create", Err: err}
	}

	return nil
}

// Get retrieves a transaction by its id
func (r *TransactionRepo) Get(ctx context.Context, transactionID string) (*models.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE transaction_id = $1`, transactionColumns)

	var tx models.Transaction
	err := r.db.GetContext(ctx, &tx, query, transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &apperrors.NotFoundError{TransactionID: transactionID}
		}
		return nil, &apperrors.StoreError{Op: "get", Err: err}
	}

	return &tx, nil
}

// UpdateStatus merges the supplied fields into the record. The predicate
// excludes terminal rows, so a late provider response can never overwrite
// a SUCCESSFUL, FAILED or CANCELLED state written by a webhook or an admin.
// Zero rows affected on a terminal record is not an error.
func (r *TransactionRepo) UpdateStatus(ctx context.Context, transactionID string, update models.StatusUpdate) error {
	query := `
		UPDATE transactions
		SET status = $1,
			status_message = $2,
			provider_transaction_id = COALESCE($3, provider_transaction_id),
			updated_at = $4
		WHERE transaction_id = $5
		  AND status NOT IN ('SUCCESSFUL', 'FAILED', 'CANCELLED')
	`

	res, err := r.db.ExecContext(ctx, query,
		update.Status,
		update.StatusMessage,
		update.ProviderTransactionID,
		time.Now().UTC(),
		transactionID,
	)
	if err != nil {
		return &apperrors.StoreError{Op: "update", Err: err}
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return &apperrors.StoreError{Op: "update", Err: err}
	}
	if rows == 0 {
		// Either the record is already terminal (idempotent no-op) or it
		// does not exist; distinguish the two.
		if _, err := r.Get(ctx, transactionID); err != nil {
			return err
		}
	}

	return nil
}

// ForceUpdateStatus sets status unconditionally and records the acting
// admin. Bypasses the terminal-status guard.
func (r *TransactionRepo) ForceUpdateStatus(ctx context.Context, transactionID string, status models.TransactionStatus, message, actor string) error {
	query := `
		UPDATE transactions
		SET status = $1,
			status_message = $2,
			manually_updated_by = $3,
			manually_updated_at = $4,
			updated_at = $4
		WHERE transaction_id = $5
	`

	res, err := r.db.ExecContext(ctx, query, status, message, actor, time.Now().UTC(), transactionID)
	if err != nil {
		return &apperrors.StoreError{Op: "force-update", Err: err}
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return &apperrors.StoreError{Op: "force-update", Err: err}
	}
	if rows == 0 {
		return &apperrors.NotFoundError{TransactionID: transactionID}
	}

	return nil
}

// QueryByPhone returns a payer's transactions, most recent first
func (r *TransactionRepo) QueryByPhone(ctx context.Context, phone string, limit int) ([]*models.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}

	query := fmt.Sprintf(`
		SELECT %s FROM transactions
		WHERE payer_phone = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, transactionColumns)

	var txs []*models.Transaction
	if err := r.db.SelectContext(ctx, &txs, query, phone, limit); err != nil {
		return nil, &apperrors.StoreError{Op: "query-by-phone", Err: err}
	}

	return txs, nil
}

// QueryByEmail returns a payer's transactions, most recent first
func (r *TransactionRepo) QueryByEmail(ctx context.Context, email string) ([]*models.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM transactions
		WHERE payer_email = $1
		ORDER BY created_at DESC
	`, transactionColumns)

	var txs []*models.Transaction
	if err := r.db.SelectContext(ctx, &txs, query, email); err != nil {
		return nil, &apperrors.StoreError{Op: "query-by-email", Err: err}
	}

	return txs, nil
}
