package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kasozi/talentpay/internal/pkg/middleware"
	"github.com/kasozi/talentpay/internal/pkg/models"
	httphandler "github.com/kasozi/talentpay/services/payments/handler/http"
)

// Handler coordinates the HTTP handlers for the payments service
type Handler struct {
	paymentHandler *httphandler.PaymentHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(paymentHandler *httphandler.PaymentHandler, cfg *models.Config) *Handler {
	return &Handler{
		paymentHandler: paymentHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the payment routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public payment surface
	e.POST("/pay", h.paymentHandler.Pay)
	e.GET("/payment-status/:transactionId", h.paymentHandler.PaymentStatus)
	e.POST("/check-payment-status", h.paymentHandler.CheckPaymentStatus)
	e.POST("/user-payments", h.paymentHandler.UserPayments)

	// Email verification side flow
	verificationGroup := e.Group("/verification")
	verificationGroup.POST("/issue", h.paymentHandler.IssueVerificationCode)
	verificationGroup.POST("/confirm", h.paymentHandler.ConfirmVerificationCode)

	// Admin routes behind the bearer role check
	adminGroup := e.Group("/admin", middleware.AdminJWT(h.cfg.JWT))
	adminGroup.POST("/update-payment-status", h.paymentHandler.AdminUpdatePaymentStatus)
}
