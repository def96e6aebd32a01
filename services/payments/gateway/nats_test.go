package gateway

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasozi/talentpay/internal/pkg/models"
	natspkg "github.com/kasozi/talentpay/internal/pkg/nats"
)

var testNatsURL = "nats://127.0.0.1:8379"

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8379
	testNatsServer := natsserver.RunServer(&opts)
	code := m.Run()
	testNatsServer.Shutdown()
	os.Exit(code)
}

func TestPublishNotification_Success(t *testing.T) {
	// Arrange
	nc, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err, "Failed to connect to NATS server")
	defer nc.Close()

	received := make(chan *nats.Msg, 1)
	sub, err := nc.Subscribe(SubjectNotifications, func(msg *nats.Msg) {
		received <- msg
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	gw := NewNotificationClient(nc)

	notification := &models.Notification{
		ID:      "notif-1",
		Title:   "Payment update",
		Message: "Your payment of 10000 UGX was received",
		Type:    "payment",
		UserID:  "payer@example.com",
	}

	// Act
	err = gw.PublishNotification(context.Background(), notification)
	require.NoError(t, err)

	// Assert
	select {
	case msg := <-received:
		var got models.Notification
		require.NoError(t, json.Unmarshal(msg.Data, &got))
		assert.Equal(t, notification.ID, got.ID)
		assert.Equal(t, notification.UserID, got.UserID)
		assert.Equal(t, "payment", got.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for notification on " + SubjectNotifications)
	}
}
