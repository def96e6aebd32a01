package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	natspkg "github.com/kasozi/talentpay/internal/pkg/nats"
	"github.com/kasozi/talentpay/internal/pkg/models"
)

// SubjectNotifications is the subject notification records are published on
const SubjectNotifications = "payments.notifications"

// NotificationClient publishes notification records over NATS
type NotificationClient struct {
	natsClient *natspkg.Client
}

// NewNotificationClient creates a new notification gateway
func NewNotificationClient(natsClient *natspkg.Client) *NotificationClient {
	return &NotificationClient{natsClient: natsClient}
}

// PublishNotification sends a notification record to the sink
func (g *NotificationClient) PublishNotification(ctx context.Context, n *models.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := g.natsClient.Publish(SubjectNotifications, data); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}
