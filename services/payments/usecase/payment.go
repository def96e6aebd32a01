package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/kasozi/talentpay/internal/pkg/apperrors"
	"github.com/kasozi/talentpay/internal/pkg/logger"
	"github.com/kasozi/talentpay/internal/pkg/models"
	"github.com/kasozi/talentpay/internal/utils"
	"github.com/kasozi/talentpay/services/payments"
)

// PaymentUC implements the payments.PaymentUC interface
type PaymentUC struct {
	cfg         *models.Config
	repo        payments.PaymentRepo
	mirror      payments.MirrorRepo
	provider    payments.ProviderGW
	sideEffects *SideEffectQueue
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	repo payments.PaymentRepo,
	mirror payments.MirrorRepo,
	provider payments.ProviderGW,
	sideEffects *SideEffectQueue,
) *PaymentUC {
	return &PaymentUC{
		cfg:         cfg,
		repo:        repo,
		mirror:      mirror,
		provider:    provider,
		sideEffects: sideEffects,
	}
}

// newTransactionID generates a locally-unique transaction identifier:
// TXN_<millis>_<base36 suffix>. Generated here, never by the provider, so
// it stays stable across provider downtime.
func newTransactionID() string {
	suffix := strconv.FormatInt(rand.Int63n(1<<47), 36)
	return fmt.Sprintf("TXN_%d_%s", time.Now().UnixMilli(), suffix)
}

// InitiatePayment validates the request, submits a collection request and
// records the initial transaction state. Validation failures happen before
// any network call; exactly one store write happens per call, on the
// success and the failure path alike.
func (uc *PaymentUC) InitiatePayment(ctx context.Context, req *models.PayRequest) (*models.PayResponse, error) {
	if req.Amount <= 0 {
		return nil, apperrors.NewValidation("amount", "must be a positive number")
	}
	if req.Phone == "" {
		return nil, apperrors.NewValidation("phone", "is required")
	}
	phone, err := utils.NormalizePhone(req.Phone)
	if err != nil {
		return nil, apperrors.NewValidation("phone", err.Error())
	}
	if !utils.ValidateEmail(req.Email) {
		return nil, apperrors.NewValidation("email", "must be a valid email address")
	}

	tx := &models.Transaction{
		TransactionID: newTransactionID(),
		Amount:        req.Amount,
		Currency:      uc.cfg.IoTec.Currency,
		PayerPhone:    phone,
		PayerEmail:    req.Email,
		PayerName:     req.Name,
		CompetitionID: req.CompetitionID,
	}

	collectReq := &models.CollectionRequest{
		Category:   "MobileMoney",
		WalletID:   uc.cfg.IoTec.WalletID,
		ExternalID: tx.TransactionID,
		Payer:      phone,
		Amount:     req.Amount,
		Currency:   uc.cfg.IoTec.Currency,
		PayerNote:  fmt.Sprintf("Entry fee for %s", req.CompetitionID),
		PayeeNote:  fmt.Sprintf("Collection for %s", tx.TransactionID),
	}

	providerResp, err := uc.provider.RequestCollection(ctx, collectReq)
	if err != nil {
		// Record the failure best-effort: a store error is logged, never
		// fatal to the response.
		tx.Status = models.StatusFailed
		tx.StatusMessage = err.Error()
		if storeErr := uc.repo.Create(ctx, tx); storeErr != nil {
			logger.Error("Failed to persist failed transaction",
				logger.ErrorField(storeErr),
				logger.String("transaction_id", tx.TransactionID))
		}
		return nil, err
	}

	tx.Status = models.NormalizeStatus(providerResp.Status)
	if tx.Status == models.StatusUnknown {
		tx.Status = models.StatusPending
	}
	tx.StatusMessage = providerResp.StatusMessage
	if providerResp.ID != "" {
		providerID := providerResp.ID
		tx.ProviderTransactionID = &providerID
	}

	if storeErr := uc.repo.Create(ctx, tx); storeErr != nil {
		logger.Error("Failed to persist pending transaction",
			logger.ErrorField(storeErr),
			logger.String("transaction_id", tx.TransactionID))
	}

	uc.enqueueSideEffects(tx, "Payment initiated",
		fmt.Sprintf("Your payment of %.0f %s is being processed", tx.Amount, tx.Currency))

	return &models.PayResponse{
		TransactionID: tx.TransactionID,
		Status:        tx.Status,
		Provider:      *providerResp,
	}, nil
}

// ResolveStatus resolves the current status for a transaction id. The
// store is authoritative once terminal; only non-terminal records trigger
// a live provider query, and any change is written back.
func (uc *PaymentUC) ResolveStatus(ctx context.Context, transactionID string) (*models.Transaction, error) {
	tx, err := uc.repo.Get(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if tx.Status.IsTerminal() {
		return tx, nil
	}

	providerResp, err := uc.provider.GetCollectionStatus(ctx, transactionID)
	if err != nil {
		// Last known store record beats a hard failure.
		logger.Warn("Provider status query failed, returning last known state",
			logger.ErrorField(err),
			logger.String("transaction_id", transactionID))
		return tx, nil
	}

	status := models.NormalizeStatus(providerResp.Status)
	update := models.StatusUpdate{
		Status:        status,
		StatusMessage: providerResp.StatusMessage,
	}
	if providerResp.ID != "" {
		providerID := providerResp.ID
		update.ProviderTransactionID = &providerID
	}

	if err := uc.repo.UpdateStatus(ctx, transactionID, update); err != nil {
		logger.Error("Failed to write back provider status",
			logger.ErrorField(err),
			logger.String("transaction_id", transactionID))
		return tx, nil
	}

	refreshed, err := uc.repo.Get(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if refreshed.Status != tx.Status {
		uc.enqueueSideEffects(refreshed, "Payment update", statusMessage(refreshed))
	}

	return refreshed, nil
}

// ResolveStatusStoreOnly bypasses the provider entirely; used when the
// store is considered authoritative, e.g. webhook-driven updates already
// landed there.
func (uc *PaymentUC) ResolveStatusStoreOnly(ctx context.Context, transactionID string) (*models.Transaction, error) {
	return uc.repo.Get(ctx, transactionID)
}

// allowedForcedStatuses is the admin override's permitted target set
var allowedForcedStatuses = map[models.TransactionStatus]bool{
	models.StatusSuccessful: true,
	models.StatusFailed:     true,
	models.StatusPending:    true,
	models.StatusCancelled:  true,
}

// ForceStatus unconditionally sets status and message, recording the
// acting admin. Bypasses the terminal-status guard: this is the
// administrative escape hatch.
func (uc *PaymentUC) ForceStatus(ctx context.Context, transactionID string, status models.TransactionStatus, message, actor string) (*models.Transaction, error) {
	if !allowedForcedStatuses[status] {
		return nil, apperrors.NewValidation("status",
			"must be one of SUCCESSFUL, FAILED, PENDING, CANCELLED")
	}

	if err := uc.repo.ForceUpdateStatus(ctx, transactionID, status, message, actor); err != nil {
		return nil, err
	}

	tx, err := uc.repo.Get(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	logger.Info("Payment status manually overridden",
		logger.String("transaction_id", transactionID),
		logger.String("status", string(status)),
		logger.String("actor", actor))

	uc.enqueueSideEffects(tx, "Payment update", statusMessage(tx))

	return tx, nil
}

// UserPayments lists a payer's transactions, most recent first
func (uc *PaymentUC) UserPayments(ctx context.Context, email string) ([]*models.Transaction, error) {
	if !utils.ValidateEmail(email) {
		return nil, apperrors.NewValidation("email", "must be a valid email address")
	}

	return uc.repo.QueryByEmail(ctx, email)
}

// enqueueSideEffects hands the notification and the mirror write to the
// side-effect queue; neither blocks nor fails the caller.
func (uc *PaymentUC) enqueueSideEffects(tx *models.Transaction, title, message string) {
	if uc.sideEffects == nil {
		return
	}

	uc.sideEffects.EnqueueMirror(tx)
	uc.sideEffects.EnqueueNotification(&models.Notification{
		Title:   title,
		Message: message,
		Type:    "payment",
		UserID:  tx.PayerEmail,
	})
}

func statusMessage(tx *models.Transaction) string {
	switch tx.Status {
	case models.StatusSuccessful:
		return fmt.Sprintf("Your payment of %.0f %s was received", tx.Amount, tx.Currency)
	case models.StatusFailed:
		return fmt.Sprintf("Your payment failed: %s", tx.StatusMessage)
	case models.StatusCancelled:
		return "Your payment was cancelled"
	default:
		return "Your payment is being processed"
	}
}
