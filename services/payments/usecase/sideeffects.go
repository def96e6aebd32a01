package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kasozi/talentpay/internal/pkg/logger"
	"github.com/kasozi/talentpay/internal/pkg/models"
	"github.com/kasozi/talentpay/internal/pkg/retry"
	"github.com/kasozi/talentpay/services/payments"
)

// sideEffectKind discriminates queued tasks
type sideEffectKind int

const (
	effectNotification sideEffectKind = iota
	effectMirror
)

type sideEffectTask struct {
	kind         sideEffectKind
	notification *models.Notification
	transaction  *models.Transaction
}

// SideEffectQueue runs notification publishes and mirror writes off the
// request path on a single worker with retries. Failures are logged, never
// surfaced to the request that enqueued them. Enqueueing never blocks:
// when the buffer is full the task is dropped with a log line.
type SideEffectQueue struct {
	mirror   payments.MirrorRepo
	notifier payments.NotificationGW
	retrier  *retry.Retrier

	tasks chan sideEffectTask
	done  chan struct{}
}

// NewSideEffectQueue creates the queue and starts its worker
func NewSideEffectQueue(mirror payments.MirrorRepo, notifier payments.NotificationGW, zapLogger *logger.ZapLogger) *SideEffectQueue {
	q := &SideEffectQueue{
		mirror:   mirror,
		notifier: notifier,
		retrier: retry.New(retry.Config{
			MaxRetries: 3,
			BaseDelay:  200 * time.Millisecond,
			MaxDelay:   5 * time.Second,
			Multiplier: 2.0,
			Jitter:     true,
			RetryableFunc: func(err error) bool {
				return true
			},
		}, zapLogger),
		tasks: make(chan sideEffectTask, 256),
		done:  make(chan struct{}),
	}

	go q.run()

	return q
}

// EnqueueNotification queues a notification record for delivery
func (q *SideEffectQueue) EnqueueNotification(n *models.Notification) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}

	select {
	case q.tasks <- sideEffectTask{kind: effectNotification, notification: n}:
	default:
		logger.Warn("Side-effect queue full, dropping notification",
			logger.String("user_id", n.UserID))
	}
}

// EnqueueMirror queues a mirror write of the transaction's latest state
func (q *SideEffectQueue) EnqueueMirror(tx *models.Transaction) {
	copied := *tx

	select {
	case q.tasks <- sideEffectTask{kind: effectMirror, transaction: &copied}:
	default:
		logger.Warn("Side-effect queue full, dropping mirror write",
			logger.String("transaction_id", tx.TransactionID))
	}
}

// Close stops the worker after draining queued tasks
func (q *SideEffectQueue) Close() {
	close(q.tasks)
	<-q.done
}

func (q *SideEffectQueue) run() {
	defer close(q.done)

	for task := range q.tasks {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		q.process(ctx, task)
		cancel()
	}
}

func (q *SideEffectQueue) process(ctx context.Context, task sideEffectTask) {
	var err error

	switch task.kind {
	case effectNotification:
		err = q.retrier.Execute(ctx, func(ctx context.Context) error {
			return q.notifier.PublishNotification(ctx, task.notification)
		})
		if err != nil {
			logger.Error("Notification delivery failed",
				logger.ErrorField(err),
				logger.String("user_id", task.notification.UserID))
		}
	case effectMirror:
		err = q.retrier.Execute(ctx, func(ctx context.Context) error {
			return q.mirror.MirrorTransaction(ctx, task.transaction)
		})
		if err != nil {
			logger.Error("Mirror write failed",
				logger.ErrorField(err),
				logger.String("transaction_id", task.transaction.TransactionID))
		}
	}
}
