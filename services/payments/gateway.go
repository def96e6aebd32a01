package payments

import (
	"context"

	"github.com/kasozi/talentpay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kasozi/talentpay/services/payments ProviderGW,NotificationGW

// ProviderGW is the mobile-money provider gateway
type ProviderGW interface {
	// RequestCollection asks the provider to pull funds from the payer's
	// wallet. The externalId inside the request is our transaction id.
	RequestCollection(ctx context.Context, req *models.CollectionRequest) (*models.CollectionResponse, error)

	// GetCollectionStatus queries the provider for the current state of a
	// collection identified by our external id.
	GetCollectionStatus(ctx context.Context, externalID string) (*models.CollectionResponse, error)
}

// NotificationGW accepts notification records for delivery to users
type NotificationGW interface {
	PublishNotification(ctx context.Context, n *models.Notification) error
}
