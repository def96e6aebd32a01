package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kasozi/talentpay/internal/pkg/apperrors"
	"github.com/kasozi/talentpay/internal/pkg/logger"
	"github.com/kasozi/talentpay/internal/pkg/middleware"
	"github.com/kasozi/talentpay/internal/pkg/models"
	"github.com/kasozi/talentpay/internal/utils"
	"github.com/kasozi/talentpay/services/payments"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payments.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// Pay handles payment initiation requests
func (h *PaymentHandler) Pay(c echo.Context) error {
	var req models.PayRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for payment initiation",
			logger.ErrorField(err),
			logger.String("endpoint", "Pay"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.Method != models.PaymentMethodMobileMoney {
		return utils.BadRequestResponse(c, "Unsupported payment method")
	}

	resp, err := h.paymentUC.InitiatePayment(c.Request().Context(), &req)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// PaymentStatus handles status resolution requests: store first, provider
// second
func (h *PaymentHandler) PaymentStatus(c echo.Context) error {
	transactionID := c.Param("transactionId")
	if transactionID == "" {
		return utils.BadRequestResponse(c, "Transaction ID is required")
	}

	tx, err := h.paymentUC.ResolveStatus(c.Request().Context(), transactionID)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, tx)
}

type checkStatusRequest struct {
	TransactionID string `json:"transactionId"`
}

// CheckPaymentStatus handles store-only status lookups
func (h *PaymentHandler) CheckPaymentStatus(c echo.Context) error {
	var req checkStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.TransactionID == "" {
		return utils.BadRequestResponse(c, "Transaction ID is required")
	}

	tx, err := h.paymentUC.ResolveStatusStoreOnly(c.Request().Context(), req.TransactionID)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":       true,
		"paymentStatus": tx.Status,
		"statusMessage": tx.StatusMessage,
		"transaction":   tx,
	})
}

type adminUpdateRequest struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	StatusMessage string `json:"statusMessage"`
}

// AdminUpdatePaymentStatus handles the admin-only status override
func (h *PaymentHandler) AdminUpdatePaymentStatus(c echo.Context) error {
	var req adminUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.TransactionID == "" {
		return utils.BadRequestResponse(c, "Transaction ID is required")
	}

	actor := middleware.Actor(c)
	status := models.NormalizeStatus(req.Status)

	tx, err := h.paymentUC.ForceStatus(c.Request().Context(), req.TransactionID, status, req.StatusMessage, actor)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":   true,
		"newStatus": tx.Status,
	})
}

type userPaymentsRequest struct {
	Email string `json:"email"`
}

// UserPayments lists a payer's transactions, most recent first
func (h *PaymentHandler) UserPayments(c echo.Context) error {
	var req userPaymentsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	txs, err := h.paymentUC.UserPayments(c.Request().Context(), req.Email)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"payments": txs,
	})
}

type issueCodeRequest struct {
	Email         string `json:"email"`
	TransactionID string `json:"transactionId"`
}

// IssueVerificationCode issues a 6-digit email confirmation code
func (h *PaymentHandler) IssueVerificationCode(c echo.Context) error {
	var req issueCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	code, err := h.paymentUC.IssueVerificationCode(c.Request().Context(), req.Email, req.TransactionID)
	if err != nil {
		return h.mapError(c, err)
	}

	// The code itself goes out through the email channel, not the API
	// response.
	return utils.SuccessResponse(c, http.StatusOK, "Verification code issued", map[string]interface{}{
		"email":     code.Email,
		"expiresAt": code.ExpiresAt,
	})
}

type confirmCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// ConfirmVerificationCode confirms an email verification code
func (h *PaymentHandler) ConfirmVerificationCode(c echo.Context) error {
	var req confirmCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	transactionID, err := h.paymentUC.ConfirmVerificationCode(c.Request().Context(), req.Email, req.Code)
	if err != nil {
		return h.mapError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification code confirmed", map[string]interface{}{
		"transactionId": transactionID,
	})
}

// mapError translates the error taxonomy onto HTTP status codes
func (h *PaymentHandler) mapError(c echo.Context, err error) error {
	if apperrors.IsValidation(err) {
		return utils.BadRequestResponse(c, err.Error())
	}
	if apperrors.IsNotFound(err) {
		return utils.NotFoundResponse(c, err.Error())
	}
	if pe, ok := apperrors.AsProvider(err); ok {
		if pe.Unreachable() {
			return utils.ServiceUnavailableResponse(c, "Payment provider unavailable")
		}
		return utils.BadGatewayResponse(c, pe.Body)
	}
	if apperrors.IsStore(err) {
		// A store outage is unavailability, not a client error: 503 lets
		// polling clients switch to the fallback lookup.
		logger.Error("Store failure handling payment request",
			logger.ErrorField(err),
			logger.String("path", c.Request().URL.Path))
		return utils.ServiceUnavailableResponse(c, "")
	}

	logger.Error("Unexpected error handling payment request",
		logger.ErrorField(err),
		logger.String("path", c.Request().URL.Path))
	return utils.InternalServerErrorResponse(c, "")
}
