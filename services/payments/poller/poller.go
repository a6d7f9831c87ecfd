package poller

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hatynka/storefront/internal/pkg/apperrors"
	httpclient "github.com/hatynka/storefront/internal/pkg/http"
	"github.com/hatynka/storefront/internal/pkg/logger"
	"github.com/hatynka/storefront/internal/pkg/models"
)

const (
	DefaultInterval = 4 * time.Second
	DefaultTimeout  = 180 * time.Second
)

// State is the poller's position in its lifecycle
type State string

const (
	StateWaiting  State = "waiting"
	StatePolling  State = "polling"
	StateDone     State = "done"
	StateTimedOut State = "timed-out"
	StateFailed   State = "failed"
)

var (
	ErrAlreadyStarted = errors.New("poller already started")
	ErrMissingOrderID = errors.New("return url has no order reference")
	ErrOrderNotFound  = errors.New("no payment found for the order reference")
	ErrTimedOut       = errors.New("payment was not confirmed in time")
)

// Confirmer asks the payments service to confirm an order
type Confirmer interface {
	ConfirmOrder(ctx context.Context, req models.ConfirmOrderRequest) (*models.ConfirmOrderResponse, error)
}

// Config controls where the poller sends the customer and how long it waits
type Config struct {
	SiteURL  string
	Interval time.Duration
	Timeout  time.Duration
}

// Result is returned once the order exists
type Result struct {
	OrderID       string
	TransactionID string
	RedirectURL   string
}

// Poller repeatedly calls confirm-order until the order exists or time runs out
type Poller struct {
	cfg       Config
	confirmer Confirmer
	params    ReturnParams
	clock     Clock

	once   sync.Once
	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
}

// New creates a poller for one checkout return
func New(cfg Config, confirmer Confirmer, params ReturnParams) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Poller{
		cfg:       cfg,
		confirmer: confirmer,
		params:    params,
		clock:     realClock{},
		state:     StateWaiting,
	}
}

// WithClock replaces the time source
func (p *Poller) WithClock(clock Clock) *Poller {
	p.clock = clock
	return p
}

// State returns the current state
func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Poller) setState(state State) {
	p.mu.Lock()
	p.state = state
	p.mu.Unlock()
}

// Stop cancels a running poll. It is safe to call at any time.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Run polls until the order is confirmed, the ceiling is reached, or ctx is
// cancelled. It may be called once; later calls return ErrAlreadyStarted.
func (p *Poller) Run(ctx context.Context) (*Result, error) {
	started := false
	p.once.Do(func() { started = true })
	if !started {
		return nil, ErrAlreadyStarted
	}

	if p.params.OrderID == "" {
		p.setState(StateFailed)
		return nil, ErrMissingOrderID
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	p.mu.Lock()
	p.cancel = cancel
	p.state = StatePolling
	p.mu.Unlock()

	req := models.ConfirmOrderRequest{
		Method: models.PaymentMethodLiqPay,
		AdditionalData: models.ConfirmOrderData{
			OrderID:       p.params.OrderID,
			CustomerEmail: p.params.Email,
		},
	}
	deadline := p.clock.Now().Add(p.cfg.Timeout)

	for attempt := 1; ; attempt++ {
		resp, err := p.confirmer.ConfirmOrder(ctx, req)
		if err == nil {
			p.setState(StateDone)
			logger.Info("Order confirmed",
				logger.String("gateway_order_id", p.params.OrderID),
				logger.String("order_id", resp.OrderID),
				logger.Int("attempt", attempt))
			return &Result{
				OrderID:       resp.OrderID,
				TransactionID: resp.TransactionID,
				RedirectURL:   p.redirectURL(resp.OrderID),
			}, nil
		}

		if ctx.Err() != nil {
			p.setState(StateFailed)
			return nil, ctx.Err()
		}
		if permanent := permanentError(err); permanent != nil {
			p.setState(StateFailed)
			logger.Warn("Order confirmation failed",
				logger.String("gateway_order_id", p.params.OrderID),
				logger.Err(err))
			return nil, permanent
		}

		logger.Debug("Payment still processing",
			logger.String("gateway_order_id", p.params.OrderID),
			logger.Int("attempt", attempt),
			logger.Err(err))

		select {
		case <-ctx.Done():
			p.setState(StateFailed)
			return nil, ctx.Err()
		case <-p.clock.After(p.cfg.Interval):
		}

		if !p.clock.Now().Before(deadline) {
			p.setState(StateTimedOut)
			logger.Warn("Gave up waiting for order confirmation",
				logger.String("gateway_order_id", p.params.OrderID),
				logger.Int("attempts", attempt),
				logger.Duration("timeout", p.cfg.Timeout))
			return nil, ErrTimedOut
		}
	}
}

// permanentError returns the error to stop on, or nil to keep polling.
// Only an unknown order reference stops the poll; every other rejection is
// retried until the ceiling.
func permanentError(err error) error {
	var (
		status  int
		httpErr *httpclient.HTTPError
		appErr  *apperrors.Error
	)
	switch {
	case errors.As(err, &httpErr):
		status = httpErr.StatusCode
	case errors.As(err, &appErr):
		status = apperrors.HTTPStatus(err)
	}

	if status == http.StatusNotFound {
		return ErrOrderNotFound
	}
	return nil
}

func (p *Poller) redirectURL(orderID string) string {
	target := strings.TrimRight(p.cfg.SiteURL, "/") + "/orders/" + url.PathEscape(orderID)
	if p.params.Email != "" {
		target += "?email=" + url.QueryEscape(p.params.Email)
	}
	return target
}
