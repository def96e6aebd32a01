package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/kasozi/talentpay/internal/pkg/apperrors"
	"github.com/kasozi/talentpay/internal/pkg/models"
	"github.com/kasozi/talentpay/internal/utils"
)

// verificationTTL is the validity window for an issued code
const verificationTTL = 10 * time.Minute

// IssueVerificationCode generates a single-use 6-digit code for an email,
// cross-referencing the transaction it confirms. A new code replaces any
// pending one for the same email.
func (uc *PaymentUC) IssueVerificationCode(ctx context.Context, email, transactionID string) (*models.VerificationCode, error) {
	if !utils.ValidateEmail(email) {
		return nil, apperrors.NewValidation("email", "must be a valid email address")
	}

	// The transaction must exist before a code can reference it.
	if _, err := uc.repo.Get(ctx, transactionID); err != nil {
		return nil, err
	}

	digits, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}

	now := time.Now().UTC()
	code := &models.VerificationCode{
		Email:         email,
		Code:          fmt.Sprintf("%06d", digits.Int64()),
		TransactionID: transactionID,
		CreatedAt:     now,
		ExpiresAt:     now.Add(verificationTTL),
	}

	if err := uc.mirror.SaveVerificationCode(ctx, code, verificationTTL); err != nil {
		return nil, err
	}

	return code, nil
}

// ConfirmVerificationCode validates a code and marks it used, returning
// the linked transaction id. Expired or already-used codes are rejected.
func (uc *PaymentUC) ConfirmVerificationCode(ctx context.Context, email, code string) (string, error) {
	stored, err := uc.mirror.GetVerificationCode(ctx, email)
	if err != nil {
		return "", err
	}
	if stored == nil {
		return "", apperrors.NewValidation("code", "no verification code pending for this email")
	}
	if stored.Used {
		return "", apperrors.NewValidation("code", "verification code already used")
	}
	if time.Now().After(stored.ExpiresAt) {
		return "", apperrors.NewValidation("code", "verification code expired")
	}
	if stored.Code != code {
		return "", apperrors.NewValidation("code", "verification code does not match")
	}

	if err := uc.mirror.MarkVerificationCodeUsed(ctx, email); err != nil {
		return "", err
	}

	return stored.TransactionID, nil
}
