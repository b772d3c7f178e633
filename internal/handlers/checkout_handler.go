package handlers

import (
	"errors"
	"net/http"

	"restaurant_storefront/internal/models"
	"restaurant_storefront/internal/repository"
	"restaurant_storefront/internal/services"
	"restaurant_storefront/pkg/razorpay"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutService    services.CheckoutService
	gateway            *razorpay.Gateway
	reconciliationRepo repository.ReconciliationRepository
}

func NewCheckoutHandler(
	checkoutService services.CheckoutService,
	gateway *razorpay.Gateway,
	reconciliationRepo repository.ReconciliationRepository,
) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService:    checkoutService,
		gateway:            gateway,
		reconciliationRepo: reconciliationRepo,
	}
}

// Checkout runs one full checkout attempt for a cart. The request stays
// open while the customer completes the payment form; the browser polls
// GetPendingPayment for the form parameters and posts the result to
// PaymentCallback.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var session models.CheckoutSession
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	confirmation, err := h.checkoutService.Checkout(c.Request.Context(), c.Param("cart_id"), session)
	if err != nil {
		h.writeCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "confirmed",
		"order_id":     confirmation.OrderID,
		"order_number": confirmation.OrderNumber,
	})
}

func (h *CheckoutHandler) writeCheckoutError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var setupErr *services.SetupError
	var paymentErr *services.PaymentFailedError
	var partialErr *services.PartialFailureError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	case errors.Is(err, services.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
	case errors.Is(err, services.ErrCheckoutInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "A checkout is already in progress for this cart"})
	case errors.Is(err, services.ErrPaymentCancelled):
		// Not an error state: nothing was charged, nothing was saved.
		c.JSON(http.StatusOK, gin.H{"status": "cancelled", "message": "Payment cancelled. Your order was not placed."})
	case errors.As(err, &paymentErr):
		c.JSON(http.StatusPaymentRequired, gin.H{"status": "failed", "error": paymentErr.Reason})
	case errors.As(err, &setupErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": setupErr.Error()})
	case errors.As(err, &partialErr):
		// The customer was charged: the payment reference must reach
		// them, never a generic error.
		c.JSON(http.StatusBadGateway, gin.H{
			"status":           "needs_reconciliation",
			"error":            partialErr.Error(),
			"payment_id":       partialErr.PaymentID,
			"gateway_order_id": partialErr.GatewayOrderID,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
	}
}

// GetStatus reports the cart's in-flight checkout state so the UI can
// disable the submit action while an attempt is running.
func (h *CheckoutHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": h.checkoutService.Status(c.Param("cart_id")).String()})
}

// GetPendingPayment returns the payment form parameters for a cart whose
// checkout is awaiting the customer.
func (h *CheckoutHandler) GetPendingPayment(c *gin.Context) {
	pending, ok := h.gateway.PendingForCart(c.Param("cart_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No payment awaiting for this cart"})
		return
	}
	c.JSON(http.StatusOK, pending)
}

// PaymentCallback receives the payment form's terminal outcome from the
// browser and hands it to the waiting checkout attempt.
func (h *CheckoutHandler) PaymentCallback(c *gin.Context) {
	var req struct {
		GatewayOrderID string `json:"gateway_order_id"`
		Status         string `json:"status"`
		PaymentID      string `json:"gateway_payment_id"`
		Signature      string `json:"signature"`
		Reason         string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var outcome razorpay.Outcome
	switch razorpay.OutcomeStatus(req.Status) {
	case razorpay.OutcomeSucceeded:
		outcome = razorpay.Outcome{
			Status: razorpay.OutcomeSucceeded,
			Confirmation: &razorpay.Confirmation{
				GatewayOrderID: req.GatewayOrderID,
				PaymentID:      req.PaymentID,
				Signature:      req.Signature,
			},
		}
	case razorpay.OutcomeFailed:
		outcome = razorpay.Outcome{Status: razorpay.OutcomeFailed, Reason: req.Reason}
	case razorpay.OutcomeCancelled:
		outcome = razorpay.Outcome{Status: razorpay.OutcomeCancelled, Reason: req.Reason}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment status"})
		return
	}

	if err := h.gateway.Resolve(req.GatewayOrderID, outcome); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No checkout awaiting this payment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "accepted"})
}

// GetReconciliations lists charges still waiting for manual
// reconciliation (payment taken, order or verification incomplete).
func (h *CheckoutHandler) GetReconciliations(c *gin.Context) {
	records, err := h.reconciliationRepo.GetUnresolved()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reconciliation records"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}
