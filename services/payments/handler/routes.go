package handler

import (
	"github.com/go-redis/redis/v8"
	"github.com/hatynka/storefront/internal/pkg/constants"
	"github.com/hatynka/storefront/internal/pkg/middleware"
	"github.com/hatynka/storefront/internal/pkg/models"
	nrpkg "github.com/hatynka/storefront/internal/pkg/newrelic"
	"github.com/hatynka/storefront/services/payments"
	httpHandler "github.com/hatynka/storefront/services/payments/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the payments service
type Handler struct {
	paymentsHTTP *httpHandler.PaymentsHandler
	redisClient  *redis.Client
	cfg          *models.Config
}

// NewHandler creates a new combined handler. redisClient backs the
// confirm-order rate limiter and may be nil to disable it.
func NewHandler(paymentUC payments.PaymentUC, redisClient *redis.Client, cfg *models.Config) *Handler {
	return &Handler{
		paymentsHTTP: httpHandler.NewPaymentsHandler(paymentUC),
		redisClient:  redisClient,
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	paymentsGroup := e.Group("/api/payments")

	// Storefront checkout; a bearer token is honoured but not required
	paymentsGroup.POST("/:method/initiate", h.paymentsHTTP.Initiate, middleware.OptionalJWTMiddleware(h.cfg.JWT))

	// Gateway webhook, authenticated by the payload signature
	paymentsGroup.POST("/:method/callback", h.paymentsHTTP.Callback)

	confirmMiddleware := []echo.MiddlewareFunc{}
	if h.redisClient != nil {
		confirmMiddleware = append(confirmMiddleware,
			middleware.IPRateLimiter(constants.ConfirmOrderRateLimit, constants.ConfirmOrderRatePeriod, h.redisClient))
	}
	paymentsGroup.POST("/:method/confirm-order", h.paymentsHTTP.ConfirmOrder, confirmMiddleware...)

	// Support tooling (API key required)
	paymentsGroup.GET("/transactions/:orderID",
		nrpkg.TraceHandler("Payments.GetTransaction", h.paymentsHTTP.GetTransaction),
		middleware.ValidateAPIKey(h.cfg.APIKey.Support))
}
