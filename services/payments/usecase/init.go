package usecase

import (
	"errors"
	"time"

	"github.com/hatynka/storefront/internal/pkg/liqpay"
	"github.com/hatynka/storefront/internal/pkg/logger"
	"github.com/hatynka/storefront/internal/pkg/models"
	"github.com/hatynka/storefront/internal/pkg/retry"
	"github.com/hatynka/storefront/services/payments"
)

// errLockHeld signals that another caller is creating the order right now
var errLockHeld = errors.New("order lock is held by another caller")

// PaymentUC implements the payment use case interface
type PaymentUC struct {
	cfg         *models.Config
	paymentRepo payments.PaymentRepo
	orderLocker payments.OrderLocker
	paymentGW   payments.PaymentGW
	liqpay      *liqpay.Client
	lockRetrier *retry.Retrier
	now         func() time.Time
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	paymentRepo payments.PaymentRepo,
	orderLocker payments.OrderLocker,
	paymentGW payments.PaymentGW,
	liqpayClient *liqpay.Client,
) *PaymentUC {
	lockRetrier := retry.New(retry.Config{
		MaxRetries: cfg.Payments.OrderLockRetries,
		BaseDelay:  cfg.Payments.OrderLockBaseWait,
		MaxDelay:   2 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
		RetryableFunc: func(err error) bool {
			return errors.Is(err, errLockHeld)
		},
	}, logger.GetGlobalLogger())

	return &PaymentUC{
		cfg:         cfg,
		paymentRepo: paymentRepo,
		orderLocker: orderLocker,
		paymentGW:   paymentGW,
		liqpay:      liqpayClient,
		lockRetrier: lockRetrier,
		now:         models.Now,
	}
}

func (uc *PaymentUC) currency() string {
	if uc.cfg.Storefront.Currency == "" {
		return "UAH"
	}
	return uc.cfg.Storefront.Currency
}
