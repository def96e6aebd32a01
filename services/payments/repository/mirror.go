package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/kasozi/talentpay/internal/pkg/database"
	"github.com/kasozi/talentpay/internal/pkg/models"
)

const (
	// keyLatestByPhone holds the most recent transaction state for a payer
	// phone, used by the client-side fallback lookup.
	keyLatestByPhone = "payments:latest:%s"

	// keyVerificationCode holds the pending verification code for an email.
	keyVerificationCode = "payments:verify:%s"

	// mirrorTTL bounds how long a fallback record stays readable. Fallback
	// results are best-effort approximations, stale data has no value.
	mirrorTTL = 24 * time.Hour
)

// MirrorRepo is the Redis-backed client-visible mirror: latest transaction
// state per phone plus verification codes.
type MirrorRepo struct {
	redisClient *database.RedisClient
}

// NewMirrorRepo creates a new mirror repository
func NewMirrorRepo(redisClient *database.RedisClient) *MirrorRepo {
	return &MirrorRepo{redisClient: redisClient}
}

// MirrorTransaction records the latest state for a payer phone
func (r *MirrorRepo) MirrorTransaction(ctx context.Context, tx *models.Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	key := fmt.Sprintf(keyLatestByPhone, tx.PayerPhone)
	if err := r.redisClient.Set(ctx, key, data, mirrorTTL); err != nil {
		return fmt.Errorf("failed to mirror transaction: %w", err)
	}

	return nil
}

// LatestByPhone returns the most recent mirrored transaction for a phone,
// or nil when none exists
func (r *MirrorRepo) LatestByPhone(ctx context.Context, phone string) (*models.Transaction, error) {
	key := fmt.Sprintf(keyLatestByPhone, phone)
	val, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read mirror: %w", err)
	}

	var tx models.Transaction
	if err := json.Unmarshal([]byte(val), &tx); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mirrored transaction: %w", err)
	}

	return &tx, nil
}

// SaveVerificationCode stores a verification code with its TTL
func (r *MirrorRepo) SaveVerificationCode(ctx context.Context, code *models.VerificationCode, ttl time.Duration) error {
	data, err := json.Marshal(code)
	if err != nil {
		return fmt.Errorf("failed to marshal verification code: %w", err)
	}

	key := fmt.Sprintf(keyVerificationCode, code.Email)
	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	return nil
}

// GetVerificationCode retrieves the pending code for an email
func (r *MirrorRepo) GetVerificationCode(ctx context.Context, email string) (*models.VerificationCode, error) {
	key := fmt.Sprintf(keyVerificationCode, email)
	val, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read verification code: %w", err)
	}

	var code models.VerificationCode
	if err := json.Unmarshal([]byte(val), &code); err != nil {
		return nil, fmt.Errorf("failed to unmarshal verification code: %w", err)
	}

	return &code, nil
}

// MarkVerificationCodeUsed flags the code as consumed, keeping the
// remaining TTL so a replay inside the window is still rejected
func (r *MirrorRepo) MarkVerificationCodeUsed(ctx context.Context, email string) error {
	code, err := r.GetVerificationCode(ctx, email)
	if err != nil {
		return err
	}
	if code == nil {
		return fmt.Errorf("verification code not found")
	}

	code.Used = true

	ttl := time.Until(code.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}

	return r.SaveVerificationCode(ctx, code, ttl)
}
