package services

import (
	"errors"
	"fmt"

	"restaurant_storefront/internal/models"
)

var (
	// ErrCheckoutInFlight rejects a second checkout attempt for a cart
	// that already has one running.
	ErrCheckoutInFlight = errors.New("a checkout is already in progress for this cart")

	// ErrEmptyCart rejects checking out with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrPaymentCancelled means the customer closed the payment form
	// without completing. Not a failure: the cart and the entered
	// customer details stay intact for a retry.
	ErrPaymentCancelled = errors.New("payment cancelled by customer")

	// ErrItemNotFound means the requested item is in neither the fixed
	// catalog nor the backend listing.
	ErrItemNotFound = errors.New("menu item not found")
)

// ValidationError is a missing or invalid customer field, caught before
// any network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SetupError is a pre-payment failure: the gateway client could not
// load, or the backend rejected the payment intent. The attempt aborts
// cleanly with the cart untouched.
type SetupError struct {
	Stage string
	Err   error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("payment setup failed (%s): %v", e.Stage, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

// PaymentFailedError carries the gateway's reason for a declined
// payment. The attempt aborts cleanly; no durable record was created.
type PaymentFailedError struct {
	Reason string
}

func (e *PaymentFailedError) Error() string {
	return "payment failed: " + e.Reason
}

// PartialFailureError is the severe class: the customer has been
// charged, but order creation or payment verification failed
// afterwards. The payment reference must reach the customer and staff
// for out-of-band reconciliation; there is no auto-refund.
type PartialFailureError struct {
	Stage          models.ReconciliationStage
	GatewayOrderID string
	PaymentID      string
	OrderID        string // set when the order exists but verification failed
	Err            error
}

func (e *PartialFailureError) Error() string {
	switch e.Stage {
	case models.StageVerification:
		return fmt.Sprintf("payment received but could not be verified; quote payment reference %s when contacting the restaurant: %v", e.PaymentID, e.Err)
	default:
		return fmt.Sprintf("payment received but order confirmation failed; quote payment reference %s when contacting the restaurant: %v", e.PaymentID, e.Err)
	}
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}
