package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"restaurant_storefront/internal/cart"
	"restaurant_storefront/internal/models"
	"restaurant_storefront/internal/repository"
	"restaurant_storefront/pkg/razorpay"
	"restaurant_storefront/pkg/restaurantapi"
)

// BackendAPI is the slice of the restaurant backend the checkout flow
// needs.
type BackendAPI interface {
	CreatePaymentIntent(ctx context.Context, req restaurantapi.PaymentIntentRequest) (*restaurantapi.PaymentIntent, error)
	CreateOrder(ctx context.Context, order restaurantapi.CreateOrderRequest) (*restaurantapi.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, req restaurantapi.VerifyPaymentRequest) error
}

// PaymentGateway presents the payment form to the customer and resolves
// into exactly one terminal outcome per attempt.
type PaymentGateway interface {
	Load() error
	Collect(ctx context.Context, req razorpay.CheckoutRequest) razorpay.Outcome
}

type CheckoutService interface {
	// Checkout runs one full attempt: validate, load gateway, create a
	// fresh intent, collect the payment, then create and verify the
	// durable order. The cart is cleared only when every step succeeded.
	Checkout(ctx context.Context, cartID string, session models.CheckoutSession) (*models.OrderConfirmation, error)
	// Status reports where a cart's in-flight attempt is, or StatusIdle.
	Status(cartID string) CheckoutStatus
}

type checkoutService struct {
	backend            BackendAPI
	gateway            PaymentGateway
	carts              cart.Persistence
	attemptRepo        repository.AttemptRepository
	reconciliationRepo repository.ReconciliationRepository
	currency           string

	mu       sync.Mutex
	inFlight map[string]CheckoutStatus
}

func NewCheckoutService(
	backend BackendAPI,
	gateway PaymentGateway,
	carts cart.Persistence,
	attemptRepo repository.AttemptRepository,
	reconciliationRepo repository.ReconciliationRepository,
	currency string,
) CheckoutService {
	return &checkoutService{
		backend:            backend,
		gateway:            gateway,
		carts:              carts,
		attemptRepo:        attemptRepo,
		reconciliationRepo: reconciliationRepo,
		currency:           currency,
		inFlight:           make(map[string]CheckoutStatus),
	}
}

func (s *checkoutService) Checkout(ctx context.Context, cartID string, session models.CheckoutSession) (*models.OrderConfirmation, error) {
	if !s.begin(cartID) {
		return nil, ErrCheckoutInFlight
	}
	defer s.end(cartID)

	// Step 1: validate before touching the network.
	s.setStatus(cartID, StatusValidatingInput)
	if err := validateSession(&session); err != nil {
		return nil, err
	}

	store := cart.NewStore(cartID, s.carts)
	if store.Count() == 0 {
		return nil, ErrEmptyCart
	}

	// Step 2: the gateway client loads once per process and is reused by
	// later attempts.
	s.setStatus(cartID, StatusLoadingGateway)
	if err := s.gateway.Load(); err != nil {
		return nil, &SetupError{Stage: "gateway", Err: err}
	}

	// Step 3: a fresh intent for this attempt only. Retries never reuse
	// an intent reference.
	s.setStatus(cartID, StatusCreatingIntent)
	amount := ToMinorUnits(store.Total())
	attemptRef := fmt.Sprintf("attempt_%d", time.Now().UnixNano())

	intent, err := s.backend.CreatePaymentIntent(ctx, restaurantapi.PaymentIntentRequest{
		Amount:   amount,
		Currency: s.currency,
		OrderID:  attemptRef,
	})
	if err != nil {
		return nil, &SetupError{Stage: "intent", Err: err}
	}

	attempt := &models.CheckoutAttempt{
		CartID:         cartID,
		AttemptRef:     attemptRef,
		GatewayOrderID: intent.GatewayOrderID,
		Amount:         amount,
		Currency:       intent.Currency,
		Status:         string(models.AttemptStarted),
	}
	if err := s.attemptRepo.Create(attempt); err != nil {
		// Audit only; a checkout must not fail because bookkeeping did.
		log.Printf("Warning: failed to record checkout attempt %s: %v", attemptRef, err)
	}

	// Step 4: customer-paced. Collect blocks until the payment form
	// reports success, failure or dismissal.
	s.setStatus(cartID, StatusAwaitingPayment)
	outcome := s.gateway.Collect(ctx, razorpay.CheckoutRequest{
		CartID:         cartID,
		GatewayOrderID: intent.GatewayOrderID,
		Amount:         intent.Amount,
		Currency:       intent.Currency,
		KeyID:          intent.KeyID,
		CustomerName:   session.CustomerName,
		CustomerEmail:  session.CustomerEmail,
		CustomerPhone:  session.CustomerPhone,
	})

	switch outcome.Status {
	case razorpay.OutcomeCancelled:
		s.finishAttempt(attempt, models.AttemptCancelled, outcome.Reason)
		return nil, ErrPaymentCancelled
	case razorpay.OutcomeFailed:
		s.finishAttempt(attempt, models.AttemptFailed, outcome.Reason)
		return nil, &PaymentFailedError{Reason: outcome.Reason}
	}

	confirmation := outcome.Confirmation
	if confirmation == nil {
		s.finishAttempt(attempt, models.AttemptFailed, "gateway returned success without a confirmation")
		return nil, &PaymentFailedError{Reason: "gateway returned success without a confirmation"}
	}

	// Step 5: the durable order is created strictly after the gateway
	// confirmed the charge, from the cart as it stands right now.
	s.setStatus(cartID, StatusCreatingOrder)
	orderResp, err := s.backend.CreateOrder(ctx, buildOrderRequest(store, session))
	if err != nil {
		s.recordReconciliation(models.StageOrderCreation, confirmation, "", amount, err)
		s.finishAttempt(attempt, models.AttemptFailed, "order creation failed after charge")
		return nil, &PartialFailureError{
			Stage:          models.StageOrderCreation,
			GatewayOrderID: confirmation.GatewayOrderID,
			PaymentID:      confirmation.PaymentID,
			Err:            err,
		}
	}

	// Step 6: server-side signature verification; a client-fabricated
	// success message dies here.
	s.setStatus(cartID, StatusVerifyingPayment)
	err = s.backend.VerifyPayment(ctx, restaurantapi.VerifyPaymentRequest{
		GatewayOrderID: confirmation.GatewayOrderID,
		PaymentID:      confirmation.PaymentID,
		Signature:      confirmation.Signature,
	})
	if err != nil {
		s.recordReconciliation(models.StageVerification, confirmation, orderResp.OrderID, amount, err)
		s.finishAttempt(attempt, models.AttemptFailed, "verification failed after charge")
		return nil, &PartialFailureError{
			Stage:          models.StageVerification,
			GatewayOrderID: confirmation.GatewayOrderID,
			PaymentID:      confirmation.PaymentID,
			OrderID:        orderResp.OrderID,
			Err:            err,
		}
	}

	// Step 7: only now may the cart go. A crash anywhere above leaves it
	// intact for a retry.
	s.setStatus(cartID, StatusComplete)
	if err := store.Clear(); err != nil {
		log.Printf("Warning: order %s confirmed but clearing cart %s failed: %v", orderResp.OrderNumber, cartID, err)
	}
	s.finishAttempt(attempt, models.AttemptCompleted, "")

	return &models.OrderConfirmation{
		OrderID:     orderResp.OrderID,
		OrderNumber: orderResp.OrderNumber,
	}, nil
}

func (s *checkoutService) Status(cartID string) CheckoutStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if status, ok := s.inFlight[cartID]; ok {
		return status
	}
	return StatusIdle
}

func (s *checkoutService) begin(cartID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, running := s.inFlight[cartID]; running {
		return false
	}
	s.inFlight[cartID] = StatusValidatingInput
	return true
}

func (s *checkoutService) end(cartID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, cartID)
}

func (s *checkoutService) setStatus(cartID string, status CheckoutStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight[cartID] = status
}

func (s *checkoutService) finishAttempt(attempt *models.CheckoutAttempt, status models.AttemptStatus, reason string) {
	attempt.Status = string(status)
	attempt.FailureReason = reason
	if err := s.attemptRepo.Update(attempt); err != nil {
		log.Printf("Warning: failed to update checkout attempt %s: %v", attempt.AttemptRef, err)
	}
}

// recordReconciliation persists the payment reference of a charge that
// has no confirmed order yet. If even that write fails, the reference
// still lands in the log; it is never silently discarded.
func (s *checkoutService) recordReconciliation(stage models.ReconciliationStage, confirmation *razorpay.Confirmation, orderID string, amount int64, cause error) {
	record := &models.PaymentReconciliation{
		Stage:          string(stage),
		GatewayOrderID: confirmation.GatewayOrderID,
		PaymentID:      confirmation.PaymentID,
		Signature:      confirmation.Signature,
		OrderID:        orderID,
		Amount:         amount,
		Currency:       s.currency,
		Detail:         cause.Error(),
	}
	if err := s.reconciliationRepo.Create(record); err != nil {
		log.Printf("ERROR: failed to record payment reconciliation (stage=%s payment_id=%s gateway_order_id=%s): %v",
			stage, confirmation.PaymentID, confirmation.GatewayOrderID, err)
	}
}

func validateSession(session *models.CheckoutSession) error {
	if strings.TrimSpace(session.CustomerName) == "" {
		return &ValidationError{Field: "customer_name", Message: "please enter your name"}
	}
	if strings.TrimSpace(session.CustomerEmail) == "" {
		return &ValidationError{Field: "customer_email", Message: "please enter your email"}
	}
	if strings.TrimSpace(session.CustomerPhone) == "" {
		return &ValidationError{Field: "customer_phone", Message: "please enter your phone"}
	}
	if session.DeliveryType == "" {
		session.DeliveryType = string(models.DeliveryPickup)
	}
	if session.DeliveryType != string(models.DeliveryPickup) && session.DeliveryType != string(models.DeliveryDelivery) {
		return &ValidationError{Field: "delivery_type", Message: "delivery type must be pickup or delivery"}
	}
	if session.DeliveryType == string(models.DeliveryDelivery) && strings.TrimSpace(session.DeliveryAddress) == "" {
		return &ValidationError{Field: "delivery_address", Message: "please enter your delivery address"}
	}
	return nil
}

func buildOrderRequest(store *cart.Store, session models.CheckoutSession) restaurantapi.CreateOrderRequest {
	lines := store.Lines()
	items := make([]restaurantapi.OrderItem, 0, len(lines))
	for _, line := range lines {
		price := 0.0
		if line.Price != nil {
			price = *line.Price
		}
		items = append(items, restaurantapi.OrderItem{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Price:    price,
			Quantity: line.Quantity,
			Subtotal: line.Subtotal(),
		})
	}

	req := restaurantapi.CreateOrderRequest{
		CustomerName:  session.CustomerName,
		CustomerEmail: session.CustomerEmail,
		CustomerPhone: session.CustomerPhone,
		DeliveryType:  session.DeliveryType,
		Items:         items,
		TotalAmount:   store.Total(),
	}
	if session.DeliveryType == string(models.DeliveryDelivery) {
		address := session.DeliveryAddress
		req.DeliveryAddress = &address
	}
	if session.SpecialInstructions != "" {
		instructions := session.SpecialInstructions
		req.SpecialInstructions = &instructions
	}
	return req
}

// ToMinorUnits converts a currency amount to integer minor units,
// rounding half up. 5.195 becomes 520, never a truncated 519.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Floor(amount*100 + 0.5))
}
