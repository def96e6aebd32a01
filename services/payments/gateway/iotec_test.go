package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasozi/talentpay/internal/pkg/apperrors"
	"github.com/kasozi/talentpay/internal/pkg/models"
)

func newTokenServer(t *testing.T, tokenCalls *int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(tokenCalls, 1)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		assert.Equal(t, "client-1", r.FormValue("client_id"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.TokenResponse{
			AccessToken: "token-xyz",
			TokenType:   "Bearer",
			ExpiresIn:   3600,
		})
	}))
}

func newClient(authURL, baseURL string) *IoTecClient {
	return NewIoTecClient(models.IoTecConfig{
		AuthURL:        authURL,
		BaseURL:        baseURL,
		ClientID:       "client-1",
		ClientSecret:   "secret",
		WalletID:       "wallet-001",
		Currency:       "UGX",
		RequestTimeout: 5,
	})
}

func TestAccessToken_CachedAcrossCalls(t *testing.T) {
	// Arrange
	var tokenCalls int32
	authServer := newTokenServer(t, &tokenCalls)
	defer authServer.Close()

	client := newClient(authServer.URL, "http://unused")

	// Act
	token1, err := client.AccessToken(context.Background())
	require.NoError(t, err)
	token2, err := client.AccessToken(context.Background())
	require.NoError(t, err)

	// Assert: the second call is served from cache.
	assert.Equal(t, "token-xyz", token1)
	assert.Equal(t, token1, token2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}

func TestAccessToken_RefreshesNearExpiry(t *testing.T) {
	var tokenCalls int32
	authServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&tokenCalls, 1)
		// Expires inside the slack window, so the cache is never warm.
		json.NewEncoder(w).Encode(models.TokenResponse{
			AccessToken: "short-lived",
			ExpiresIn:   10,
		})
	}))
	defer authServer.Close()

	client := newClient(authServer.URL, "http://unused")

	_, err := client.AccessToken(context.Background())
	require.NoError(t, err)
	_, err = client.AccessToken(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&tokenCalls))
}

func TestAccessToken_IdentityRejection(t *testing.T) {
	authServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_client"}`, http.StatusUnauthorized)
	}))
	defer authServer.Close()

	client := newClient(authServer.URL, "http://unused")

	_, err := client.AccessToken(context.Background())

	require.Error(t, err)
	var authErr *apperrors.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
}

func TestRequestCollection_Success(t *testing.T) {
	// Arrange
	var tokenCalls int32
	authServer := newTokenServer(t, &tokenCalls)
	defer authServer.Close()

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/collections/collect", r.URL.Path)
		assert.Equal(t, "Bearer token-xyz", r.Header.Get("Authorization"))

		var req models.CollectionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "MobileMoney", req.Category)

		json.NewEncoder(w).Encode(models.CollectionResponse{
			ID:         "prov-abc",
			ExternalID: req.ExternalID,
			Status:     "Pending",
		})
	}))
	defer apiServer.Close()

	client := newClient(authServer.URL, apiServer.URL)

	// Act
	resp, err := client.RequestCollection(context.Background(), &models.CollectionRequest{
		Category:   "MobileMoney",
		WalletID:   "wallet-001",
		ExternalID: "TXN_1700000000000_abc123",
		Payer:      "256701234567",
		Amount:     10000,
		Currency:   "UGX",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "prov-abc", resp.ID)
	assert.Equal(t, "Pending", resp.Status)
}

func TestRequestCollection_ProviderServerError(t *testing.T) {
	var tokenCalls int32
	authServer := newTokenServer(t, &tokenCalls)
	defer authServer.Close()

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream wallet unavailable", http.StatusServiceUnavailable)
	}))
	defer apiServer.Close()

	client := newClient(authServer.URL, apiServer.URL)

	_, err := client.RequestCollection(context.Background(), &models.CollectionRequest{})

	require.Error(t, err)
	var provErr *apperrors.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusServiceUnavailable, provErr.StatusCode)
	assert.True(t, provErr.Unreachable())
}

func TestRequestCollection_ProviderRejection(t *testing.T) {
	var tokenCalls int32
	authServer := newTokenServer(t, &tokenCalls)
	defer authServer.Close()

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"wallet not found"}`, http.StatusBadRequest)
	}))
	defer apiServer.Close()

	client := newClient(authServer.URL, apiServer.URL)

	_, err := client.RequestCollection(context.Background(), &models.CollectionRequest{})

	require.Error(t, err)
	var provErr *apperrors.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusBadRequest, provErr.StatusCode)
	assert.False(t, provErr.Unreachable())
}

func TestGetCollectionStatus_Success(t *testing.T) {
	var tokenCalls int32
	authServer := newTokenServer(t, &tokenCalls)
	defer authServer.Close()

	txnID := "TXN_1700000000000_abc123"
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/collections/external-id/"+txnID, r.URL.Path)

		json.NewEncoder(w).Encode(models.CollectionResponse{
			ID:         "prov-abc",
			ExternalID: txnID,
			Status:     "Success",
		})
	}))
	defer apiServer.Close()

	client := newClient(authServer.URL, apiServer.URL)

	resp, err := client.GetCollectionStatus(context.Background(), txnID)

	require.NoError(t, err)
	assert.Equal(t, "Success", resp.Status)
	assert.Equal(t, txnID, resp.ExternalID)
}

func TestGetCollectionStatus_TransportError(t *testing.T) {
	var tokenCalls int32
	authServer := newTokenServer(t, &tokenCalls)
	defer authServer.Close()

	// Point the API client at a closed server to force a transport error.
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	apiServer.Close()

	client := newClient(authServer.URL, apiServer.URL)

	_, err := client.GetCollectionStatus(context.Background(), "TXN_x")

	require.Error(t, err)
	var provErr *apperrors.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.True(t, provErr.Unreachable())
}
