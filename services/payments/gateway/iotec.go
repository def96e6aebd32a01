package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/kasozi/talentpay/internal/pkg/apperrors"
	httpclient "github.com/kasozi/talentpay/internal/pkg/http"
	"github.com/kasozi/talentpay/internal/pkg/models"
)

// tokenExpirySlack is how long before expiry a cached token is discarded
const tokenExpirySlack = 30 * time.Second

// IoTecClient talks to the ioTec identity and collections APIs. Access
// tokens are cached until shortly before expiry; the identity endpoint is
// only hit when the cache is cold or stale.
type IoTecClient struct {
	cfg        models.IoTecConfig
	authClient *httpclient.Client
	apiClient  *httpclient.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewIoTecClient creates a new ioTec gateway client
func NewIoTecClient(cfg models.IoTecConfig) *IoTecClient {
	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	return &IoTecClient{
		cfg:        cfg,
		authClient: httpclient.NewClient(cfg.AuthURL, timeout),
		apiClient:  httpclient.NewClient(cfg.BaseURL, timeout),
	}
}

// AccessToken returns a valid bearer token, fetching a fresh one from the
// identity endpoint when the cached token is missing or near expiry.
func (c *IoTecClient) AccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	values := url.Values{}
	values.Set("grant_type", "client_credentials")
	values.Set("client_id", c.cfg.ClientID)
	values.Set("client_secret", c.cfg.ClientSecret)

	var tokenResp models.TokenResponse
	err := c.authClient.PostForm(ctx, "", values, &tokenResp)
	if err != nil {
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) {
			return "", &apperrors.AuthError{StatusCode: statusErr.StatusCode, Body: statusErr.Body}
		}
		return "", fmt.Errorf("failed to reach identity endpoint: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return "", &apperrors.AuthError{StatusCode: 200, Body: "identity endpoint returned no access token"}
	}

	c.token = tokenResp.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn)*time.Second - tokenExpirySlack)

	return c.token, nil
}

// RequestCollection submits a collection request to the provider
func (c *IoTecClient) RequestCollection(ctx context.Context, req *models.CollectionRequest) (*models.CollectionResponse, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	var resp models.CollectionResponse
	err = c.apiClient.PostJSON(ctx, "/api/collections/collect", req, &resp, bearerHeader(token))
	if err != nil {
		return nil, providerError(err)
	}

	return &resp, nil
}

// GetCollectionStatus queries the provider's transaction-status endpoint by
// our external id
func (c *IoTecClient) GetCollectionStatus(ctx context.Context, externalID string) (*models.CollectionResponse, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	var resp models.CollectionResponse
	path := fmt.Sprintf("/api/collections/external-id/%s", url.PathEscape(externalID))
	err = c.apiClient.GetJSON(ctx, path, &resp, bearerHeader(token))
	if err != nil {
		return nil, providerError(err)
	}

	return &resp, nil
}

func bearerHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// providerError classifies a transport or status failure from the
// collections API
func providerError(err error) error {
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		return &apperrors.ProviderError{StatusCode: statusErr.StatusCode, Body: statusErr.Body}
	}
	return &apperrors.ProviderError{Err: err}
}
