package razorpay

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
)

// Outcome statuses for one checkout presentation. Exactly one of these
// terminates every Collect call.
type OutcomeStatus string

const (
	OutcomeSucceeded OutcomeStatus = "succeeded"
	OutcomeFailed    OutcomeStatus = "failed"
	OutcomeCancelled OutcomeStatus = "cancelled"
)

// Confirmation is the transaction triple the gateway hands back on a
// successful payment. The backend re-verifies the signature server-side;
// the storefront never trusts it on its own.
type Confirmation struct {
	GatewayOrderID string `json:"gateway_order_id"`
	PaymentID      string `json:"gateway_payment_id"`
	Signature      string `json:"signature"`
}

type Outcome struct {
	Status       OutcomeStatus
	Confirmation *Confirmation
	Reason       string
}

// CheckoutRequest describes one hosted checkout presentation: the
// attempt-scoped gateway order, the amount to authorize, and prefill
// fields for the payment form.
type CheckoutRequest struct {
	CartID         string `json:"cart_id"`
	GatewayOrderID string `json:"gateway_order_id"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	KeyID          string `json:"key_id"`
	CustomerName   string `json:"customer_name"`
	CustomerEmail  string `json:"customer_email"`
	CustomerPhone  string `json:"customer_phone"`
}

var ErrNoPendingCheckout = errors.New("no pending checkout for this gateway order")

// Gateway drives the hosted Razorpay checkout. Load prepares the client
// once per process; Collect blocks until the customer's browser reports
// an outcome through Resolve (or the attempt context ends). The customer
// paces the payment step, so Collect carries no deadline of its own.
type Gateway struct {
	keyID string

	mu      sync.Mutex
	loaded  bool
	pending map[string]*pendingCheckout
}

type pendingCheckout struct {
	request CheckoutRequest
	done    chan Outcome
}

func New(keyID string) *Gateway {
	return &Gateway{
		keyID:   keyID,
		pending: make(map[string]*pendingCheckout),
	}
}

// Load makes the gateway client ready. The first successful load is
// reused by every later checkout; a failed load may be retried on the
// next attempt.
func (g *Gateway) Load() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.loaded {
		return nil
	}
	if g.keyID == "" {
		return errors.New("payment gateway unavailable: key not configured")
	}

	g.loaded = true
	log.Println("Payment gateway client loaded")
	return nil
}

// KeyID returns the client-facing key passed to the payment form.
func (g *Gateway) KeyID() string {
	return g.keyID
}

// Collect presents the checkout to the customer and waits for the
// single terminal outcome. An attempt whose context ends before the
// customer finishes resolves as cancelled with no durable effect.
func (g *Gateway) Collect(ctx context.Context, req CheckoutRequest) Outcome {
	done := make(chan Outcome, 1)

	g.mu.Lock()
	g.pending[req.GatewayOrderID] = &pendingCheckout{request: req, done: done}
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		delete(g.pending, req.GatewayOrderID)
		g.mu.Unlock()
	}()

	select {
	case outcome := <-done:
		return outcome
	case <-ctx.Done():
		return Outcome{Status: OutcomeCancelled, Reason: "checkout abandoned"}
	}
}

// Pending returns the checkout presentation the customer's browser
// should open, if one is waiting.
func (g *Gateway) Pending(gatewayOrderID string) (*CheckoutRequest, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.pending[gatewayOrderID]
	if !ok {
		return nil, false
	}
	req := p.request
	return &req, true
}

// PendingForCart finds the waiting checkout for a cart, if any.
func (g *Gateway) PendingForCart(cartID string) (*CheckoutRequest, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, p := range g.pending {
		if p.request.CartID == cartID {
			req := p.request
			return &req, true
		}
	}
	return nil, false
}

// Resolve delivers the customer's outcome to the waiting Collect call.
func (g *Gateway) Resolve(gatewayOrderID string, outcome Outcome) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.pending[gatewayOrderID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoPendingCheckout, gatewayOrderID)
	}

	select {
	case p.done <- outcome:
	default:
		// already resolved; first outcome wins
	}
	delete(g.pending, gatewayOrderID)
	return nil
}
