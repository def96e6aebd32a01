// Package pollclient implements the client-side payment status poll loop:
// a cooperative, timer-driven state machine that checks the payment
// service on a fixed schedule until a terminal state or the attempt
// ceiling, with a manual one-shot re-check once the loop has given up.
package pollclient

import (
	"context"
	"errors"
	"sync"
	"time"

	httpclient "github.com/kasozi/talentpay/internal/pkg/http"
	"github.com/kasozi/talentpay/internal/pkg/logger"
	"github.com/kasozi/talentpay/internal/pkg/models"
)

// State is the poll loop's lifecycle state
type State string

const (
	StateIdle       State = "IDLE"
	StateProcessing State = "PROCESSING"
	StateConfirmed  State = "CONFIRMED"
	StateFailed     State = "FAILED"
	StateTimedOut   State = "TIMED_OUT"
	StateUnknown    State = "UNKNOWN"
)

// Result is the outcome of one status check or of the whole watch
type Result struct {
	State        State
	Transaction  *models.Transaction
	Attempts     int
	FromFallback bool // status came from the client-side cache, not the service
}

// Fallback is the secondary lookup path used when the primary service is
// unreachable. Results are best-effort approximations, never
// authoritative.
type Fallback interface {
	LatestByPhone(ctx context.Context, phone string) (*models.Transaction, error)
}

// Config holds the poll loop configuration
type Config struct {
	BaseURL        string
	Interval       time.Duration // fixed delay between checks
	MaxAttempts    int           // attempt ceiling before the loop gives up
	RequestTimeout time.Duration // per-request timeout for status checks
}

// DefaultConfig matches the service's polling contract: every 5 seconds,
// 24 attempts.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:        baseURL,
		Interval:       5 * time.Second,
		MaxAttempts:    24,
		RequestTimeout: 10 * time.Second,
	}
}

// Poller drives the status checks for one transaction
type Poller struct {
	cfg      Config
	client   *httpclient.Client
	fallback Fallback // optional
	phone    string   // payer phone for fallback lookups

	mu       sync.Mutex
	state    State
	attempts int
	last     *models.Transaction
}

// New creates a poller for a transaction. The fallback may be nil; the
// phone is only needed when a fallback is supplied.
func New(cfg Config, fallback Fallback, phone string) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 24
	}

	return &Poller{
		cfg:      cfg,
		client:   httpclient.NewClient(cfg.BaseURL, cfg.RequestTimeout),
		fallback: fallback,
		phone:    phone,
		state:    StateIdle,
	}
}

// State returns the current lifecycle state
func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Watch polls until a terminal state, the attempt ceiling or context
// cancellation. Checks never overlap: each check completes, including
// error handling, before the next delay starts.
func (p *Poller) Watch(ctx context.Context, transactionID string) (*Result, error) {
	p.mu.Lock()
	p.state = StateProcessing
	p.attempts = 0
	p.mu.Unlock()

	for {
		p.mu.Lock()
		p.attempts++
		attempts := p.attempts
		p.mu.Unlock()

		result := p.checkOnce(ctx, transactionID)
		result.Attempts = attempts

		switch result.State {
		case StateConfirmed, StateFailed, StateUnknown:
			p.setState(result.State, result.Transaction)
			return result, nil
		}

		if attempts >= p.cfg.MaxAttempts {
			result.State = StateTimedOut
			p.setState(StateTimedOut, result.Transaction)
			return result, nil
		}

		select {
		case <-ctx.Done():
			p.setState(StateTimedOut, result.Transaction)
			return nil, ctx.Err()
		case <-time.After(p.cfg.Interval):
		}
	}
}

// CheckAgain issues a single status check without resuming the automatic
// loop. Only meaningful after the loop ended in TIMED_OUT or UNKNOWN.
func (p *Poller) CheckAgain(ctx context.Context, transactionID string) (*Result, error) {
	p.mu.Lock()
	if p.state != StateTimedOut && p.state != StateUnknown {
		state := p.state
		p.mu.Unlock()
		return nil, errors.New("manual check only available after timeout or unknown, current state: " + string(state))
	}
	p.attempts++
	attempts := p.attempts
	p.mu.Unlock()

	result := p.checkOnce(ctx, transactionID)
	result.Attempts = attempts

	switch result.State {
	case StateConfirmed, StateFailed:
		p.setState(result.State, result.Transaction)
	default:
		// A pending or unknown answer leaves the loop stopped; the caller
		// may check again.
		if result.State == StateProcessing {
			result.State = StateTimedOut
		}
		p.setState(result.State, result.Transaction)
	}

	return result, nil
}

// checkOnce performs one status request. PENDING maps onto
// StateProcessing; transport failures and 503s consult the fallback.
func (p *Poller) checkOnce(ctx context.Context, transactionID string) *Result {
	var tx models.Transaction
	err := p.client.GetJSON(ctx, "/payment-status/"+transactionID, &tx, nil)
	if err != nil {
		return p.handleUnreachable(ctx, err)
	}

	p.mu.Lock()
	p.last = &tx
	p.mu.Unlock()

	switch models.NormalizeStatus(string(tx.Status)) {
	case models.StatusSuccessful:
		return &Result{State: StateConfirmed, Transaction: &tx}
	case models.StatusFailed, models.StatusCancelled:
		return &Result{State: StateFailed, Transaction: &tx}
	case models.StatusPending:
		return &Result{State: StateProcessing, Transaction: &tx}
	default:
		return &Result{State: StateUnknown, Transaction: &tx}
	}
}

// handleUnreachable decides what one failed check means. Only a 503 or a
// transport-level failure activates the fallback; other statuses are
// transient errors that keep the loop in PROCESSING.
func (p *Poller) handleUnreachable(ctx context.Context, err error) *Result {
	var statusErr *httpclient.StatusError
	unreachable := !errors.As(err, &statusErr) || statusErr.StatusCode == 503

	if !unreachable || p.fallback == nil || p.phone == "" {
		logger.Debug("Status check failed, will retry", logger.Err(err))
		return &Result{State: StateProcessing}
	}

	logger.Warn("Payment service unreachable, consulting client-side cache",
		logger.Err(err))

	tx, fbErr := p.fallback.LatestByPhone(ctx, p.phone)
	if fbErr != nil || tx == nil {
		return &Result{State: StateProcessing}
	}

	result := &Result{Transaction: tx, FromFallback: true}
	switch tx.Status {
	case models.StatusSuccessful:
		result.State = StateConfirmed
	case models.StatusFailed, models.StatusCancelled:
		result.State = StateFailed
	default:
		// The approximation is still pending; keep polling the primary.
		result.State = StateProcessing
	}

	return result
}

func (p *Poller) setState(state State, tx *models.Transaction) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = state
	if tx != nil {
		p.last = tx
	}
}

// Last returns the most recent transaction snapshot seen by the poller
func (p *Poller) Last() *models.Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}
