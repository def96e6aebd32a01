package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasozi/talentpay/internal/pkg/apperrors"
	"github.com/kasozi/talentpay/internal/pkg/models"
	"github.com/kasozi/talentpay/services/payments/mocks"
)

func setupHandlerTest(t *testing.T) (*gomock.Controller, *mocks.MockPaymentUC, *PaymentHandler, *echo.Echo) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPaymentUC(ctrl)
	return ctrl, mockUC, NewPaymentHandler(mockUC), echo.New()
}

func jsonRequest(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPay_Success(t *testing.T) {
	// Arrange
	ctrl, mockUC, handler, e := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return(&models.PayResponse{
			TransactionID: "TXN_1700000000000_abc123",
			Status:        models.StatusPending,
		}, nil)

	c, rec := jsonRequest(e, http.MethodPost, "/pay",
		`{"method":"mobile-money","amount":10000,"phone":"0701234567","email":"payer@example.com","competitionId":"comp-42"}`)

	// Act
	require.NoError(t, handler.Pay(c))

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.PayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "TXN_1700000000000_abc123", resp.TransactionID)
	assert.Equal(t, models.StatusPending, resp.Status)
}

func TestPay_RejectsUnsupportedMethod(t *testing.T) {
	ctrl, _, handler, e := setupHandlerTest(t)
	defer ctrl.Finish()

	// The usecase must never be invoked for an unsupported method.
	c, rec := jsonRequest(e, http.MethodPost, "/pay",
		`{"method":"card","amount":10000,"phone":"0701234567","email":"payer@example.com"}`)

	require.NoError(t, handler.Pay(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unsupported payment method")
}

func TestPay_ValidationErrorMapsTo400(t *testing.T) {
	ctrl, mockUC, handler, e := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidation("amount", "must be a positive number"))

	c, rec := jsonRequest(e, http.MethodPost, "/pay",
		`{"method":"mobile-money","amount":-5,"phone":"0701234567","email":"payer@example.com"}`)

	require.NoError(t, handler.Pay(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "amount")
}

func TestPay_ProviderUnreachableMapsTo503(t *testing.T) {
	ctrl, mockUC, handler, e := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return(nil, &apperrors.ProviderError{Err: errors.New("connection refused")})

	c, rec := jsonRequest(e, http.MethodPost, "/pay",
		`{"method":"mobile-money","amount":10000,"phone":"0701234567","email":"payer@example.com"}`)

	require.NoError(t, handler.Pay(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPay_ProviderRejectionMapsTo502(t *testing.T) {
	ctrl, mockUC, handler, e := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return(nil, &apperrors.ProviderError{StatusCode: http.StatusBadRequest, Body: "wallet not found"})

	c, rec := jsonRequest(e, http.MethodPost, "/pay",
		`{"method":"mobile-money","amount":10000,"phone":"0701234567","email":"payer@example.com"}`)

	require.NoError(t, handler.Pay(c))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "wallet not found")
}

func TestCheckPaymentStatus_StoreFailureMapsTo503(t *testing.T) {
	ctrl, mockUC, handler, e := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		ResolveStatusStoreOnly(gomock.Any(), "TXN_x").
		Return(nil, &apperrors.StoreError{Op: "get", Err: errors.New("connection reset")})

	c, rec := jsonRequest(e, http.MethodPost, "/check-payment-status", `{"transactionId":"TXN_x"}`)

	require.NoError(t, handler.CheckPaymentStatus(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPaymentStatus_Success(t *testing.T) {
	ctrl, mockUC, handler, e := setupHandlerTest(t)
	defer ctrl.Finish()

	txnID := "TXN_1700000000000_abc123"
	mockUC.EXPECT().
		ResolveStatus(gomock.Any(), txnID).
		Return(&models.Transaction{
			TransactionID: txnID,
			Status:        models.StatusSuccessful,
		}, nil)

	c, rec := jsonRequest(e, http.MethodGet, "/payment-status/"+txnID, "")
	c.SetParamNames("transactionId")
	c.SetParamValues(txnID)

	require.NoError(t, handler.PaymentStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var tx models.Transaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tx))
	assert.Equal(t, models.StatusSuccessful, tx.Status)
}

func TestPaymentStatus_NotFound(t *testing.T) {
	ctrl, mockUC, handler, e := setupHandlerTest(t)
	defer ctrl.Finish()

	txnID := "TXN_missing"
	mockUC.EXPECT().
		ResolveStatus(gomock.Any(), txnID).
		Return(nil, &apperrors.NotFoundError{TransactionID: txnID})

	c, rec := jsonRequest(e, http.MethodGet, "/payment-status/"+txnID, "")
	c.SetParamNames("transactionId")
	c.SetParamValues(txnID)

	require.NoError(t, handler.PaymentStatus(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckPaymentStatus_Success(t *testing.T) {
	ctrl, mockUC, handler, e := setupHandlerTest(t)
	defer ctrl.Finish()

	txnID := "TXN_1700000000000_abc123"
	mockUC.EXPECT().
		ResolveStatusStoreOnly(gomock.Any(), txnID).
		Return(&models.Transaction{
			TransactionID: txnID,
			Status:        models.StatusSuccessful,
			StatusMessage: "Transaction complete",
		}, nil)

	c, rec := jsonRequest(e, http.MethodPost, "/check-payment-status",
		`{"transactionId":"`+txnID+`"}`)

	require.NoError(t, handler.CheckPaymentStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "SUCCESSFUL", body["paymentStatus"])
}

func TestCheckPaymentStatus_MissingTransactionID(t *testing.T) {
	ctrl, _, handler, e := setupHandlerTest(t)
	defer ctrl.Finish()

	c, rec := jsonRequest(e, http.MethodPost, "/check-payment-status", `{}`)

	require.NoError(t, handler.CheckPaymentStatus(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminUpdatePaymentStatus_Success(t *testing.T) {
	// Arrange
	ctrl, mockUC, handler, e := setupHandlerTest(t)
	defer ctrl.Finish()

	txnID := "TXN_1700000000000_abc123"
	mockUC.EXPECT().
		ForceStatus(gomock.Any(), txnID, models.StatusSuccessful, "manual reconciliation", "admin@talentpay.ug").
		Return(&models.Transaction{
			TransactionID: txnID,
			Status:        models.StatusSuccessful,
		}, nil)

	c, rec := jsonRequest(e, http.MethodPost, "/admin/update-payment-status",
		`{"transactionId":"`+txnID+`","status":"success","statusMessage":"manual reconciliation"}`)
	c.Set("actor", "admin@talentpay.ug")

	// Act: the lowercase provider-style status is normalized before the
	// usecase sees it.
	require.NoError(t, handler.AdminUpdatePaymentStatus(c))

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "SUCCESSFUL", body["newStatus"])
}

func TestUserPayments_Success(t *testing.T) {
	ctrl, mockUC, handler, e := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		UserPayments(gomock.Any(), "payer@example.com").
		Return([]*models.Transaction{
			{TransactionID: "TXN_2_b", Status: models.StatusSuccessful},
			{TransactionID: "TXN_1_a", Status: models.StatusFailed},
		}, nil)

	c, rec := jsonRequest(e, http.MethodPost, "/user-payments", `{"email":"payer@example.com"}`)

	require.NoError(t, handler.UserPayments(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Payments []*models.Transaction `json:"payments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Payments, 2)
	assert.Equal(t, "TXN_2_b", body.Payments[0].TransactionID)
}

func TestIssueVerificationCode_CodeNeverInResponse(t *testing.T) {
	ctrl, mockUC, handler, e := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		IssueVerificationCode(gomock.Any(), "payer@example.com", "TXN_1700000000000_abc123").
		Return(&models.VerificationCode{
			Email: "payer@example.com",
			Code:  "123456",
		}, nil)

	c, rec := jsonRequest(e, http.MethodPost, "/verification/issue",
		`{"email":"payer@example.com","transactionId":"TXN_1700000000000_abc123"}`)

	require.NoError(t, handler.IssueVerificationCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "123456")
}

func TestConfirmVerificationCode_Success(t *testing.T) {
	ctrl, mockUC, handler, e := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		ConfirmVerificationCode(gomock.Any(), "payer@example.com", "123456").
		Return("TXN_1700000000000_abc123", nil)

	c, rec := jsonRequest(e, http.MethodPost, "/verification/confirm",
		`{"email":"payer@example.com","code":"123456"}`)

	require.NoError(t, handler.ConfirmVerificationCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TXN_1700000000000_abc123")
}
