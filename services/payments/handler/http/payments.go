package http

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/hatynka/storefront/internal/pkg/apperrors"
	"github.com/hatynka/storefront/internal/pkg/constants"
	"github.com/hatynka/storefront/internal/pkg/logger"
	"github.com/hatynka/storefront/internal/pkg/models"
	nrpkg "github.com/hatynka/storefront/internal/pkg/newrelic"
	"github.com/hatynka/storefront/internal/utils"
	"github.com/hatynka/storefront/services/payments"
	"github.com/labstack/echo/v4"
)

// PaymentsHandler handles HTTP requests for payment operations
type PaymentsHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentsHandler creates a new payments HTTP handler
func NewPaymentsHandler(paymentUC payments.PaymentUC) *PaymentsHandler {
	return &PaymentsHandler{
		paymentUC: paymentUC,
	}
}

// callbackResponse is the body the gateway receives from the webhook
type callbackResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func supportedMethod(c echo.Context) bool {
	return strings.EqualFold(c.Param("method"), models.PaymentMethodLiqPay)
}

func unsupportedMethod(c echo.Context) error {
	return utils.BadRequestResponse(c, "Unsupported payment method: "+c.Param("method"))
}

// Initiate starts a payment and returns the signed checkout envelope
func (h *PaymentsHandler) Initiate(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payments.Initiate")

	if !supportedMethod(c) {
		return unsupportedMethod(c)
	}

	var req models.InitiatePaymentRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	req.Method = models.PaymentMethodLiqPay

	if customerID, ok := c.Get(constants.ContextCustomerID).(uuid.UUID); ok {
		req.CustomerID = &customerID
	}

	resp, err := h.paymentUC.InitiatePayment(c.Request().Context(), req)
	if err != nil {
		if apperrors.HTTPStatus(err) >= http.StatusInternalServerError {
			logger.Error("Failed to initiate payment",
				logger.String("client_ip", c.RealIP()),
				logger.String("kind", string(apperrors.KindOf(err))),
				logger.Err(err))
			nrpkg.NoticeTransactionError(txn, err)
		}
		return utils.AppErrorResponse(c, err)
	}

	nrpkg.AddTransactionAttribute(txn, "gateway_order_id", resp.OrderID)
	return c.JSON(http.StatusCreated, resp)
}

// Callback receives the gateway's server-to-server status notification
func (h *PaymentsHandler) Callback(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payments.Callback")

	if !supportedMethod(c) {
		return c.JSON(http.StatusBadRequest, callbackResponse{OK: false})
	}

	var req models.CallbackRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return c.JSON(http.StatusBadRequest, callbackResponse{OK: false})
	}

	err := h.paymentUC.HandleCallback(c.Request().Context(), req)
	if err == nil {
		return c.JSON(http.StatusOK, callbackResponse{OK: true})
	}

	nrpkg.NoticeTransactionError(txn, err)
	if apperrors.IsKind(err, apperrors.KindConfiguration) {
		return c.JSON(http.StatusInternalServerError, callbackResponse{OK: false, Error: "Payment gateway is not configured"})
	}
	return c.JSON(apperrors.HTTPStatus(err), callbackResponse{OK: false})
}

// ConfirmOrder makes sure an order exists for a paid transaction
func (h *PaymentsHandler) ConfirmOrder(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payments.ConfirmOrder")

	if !supportedMethod(c) {
		return unsupportedMethod(c)
	}

	var req models.ConfirmOrderRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	req.Method = models.PaymentMethodLiqPay

	resp, err := h.paymentUC.ConfirmOrder(c.Request().Context(), req)
	if err != nil {
		if apperrors.HTTPStatus(err) >= http.StatusInternalServerError {
			logger.Error("Failed to confirm order",
				logger.String("gateway_order_id", req.AdditionalData.OrderID),
				logger.String("kind", string(apperrors.KindOf(err))),
				logger.Err(err))
			nrpkg.NoticeTransactionError(txn, err)
		}
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// GetTransaction returns a transaction by its gateway order reference.
// Routed through nrpkg.TraceHandler, which names the transaction.
func (h *PaymentsHandler) GetTransaction(c echo.Context) error {
	orderID := c.Param("orderID")
	if orderID == "" {
		return utils.BadRequestResponse(c, "Order ID is required")
	}

	transaction, err := h.paymentUC.GetTransaction(c.Request().Context(), orderID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved successfully", transaction)
}
