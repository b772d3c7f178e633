package razorpay

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresKey(t *testing.T) {
	g := New("")
	assert.Error(t, g.Load())

	// A configured gateway loads, and stays loaded.
	g = New("rzp_test_key")
	require.NoError(t, g.Load())
	require.NoError(t, g.Load())
}

func TestCollect_ResolvedByCallback(t *testing.T) {
	g := New("rzp_test_key")
	require.NoError(t, g.Load())

	req := CheckoutRequest{
		CartID:         "cart-1",
		GatewayOrderID: "rzp_order_1",
		Amount:         52000,
		Currency:       "INR",
		KeyID:          "rzp_test_key",
	}

	outcomes := make(chan Outcome, 1)
	go func() {
		outcomes <- g.Collect(context.Background(), req)
	}()

	// The presentation becomes visible to the browser while Collect
	// waits.
	require.Eventually(t, func() bool {
		_, ok := g.Pending("rzp_order_1")
		return ok
	}, time.Second, 5*time.Millisecond)

	pending, ok := g.PendingForCart("cart-1")
	require.True(t, ok)
	assert.Equal(t, int64(52000), pending.Amount)

	err := g.Resolve("rzp_order_1", Outcome{
		Status:       OutcomeSucceeded,
		Confirmation: &Confirmation{GatewayOrderID: "rzp_order_1", PaymentID: "pay_1", Signature: "sig"},
	})
	require.NoError(t, err)

	select {
	case outcome := <-outcomes:
		assert.Equal(t, OutcomeSucceeded, outcome.Status)
		require.NotNil(t, outcome.Confirmation)
		assert.Equal(t, "pay_1", outcome.Confirmation.PaymentID)
	case <-time.After(time.Second):
		t.Fatal("Collect did not return after Resolve")
	}

	// The attempt is gone once resolved.
	_, ok = g.Pending("rzp_order_1")
	assert.False(t, ok)
}

func TestCollect_ContextEndResolvesAsCancelled(t *testing.T) {
	g := New("rzp_test_key")

	ctx, cancel := context.WithCancel(context.Background())
	outcomes := make(chan Outcome, 1)
	go func() {
		outcomes <- g.Collect(ctx, CheckoutRequest{CartID: "cart-1", GatewayOrderID: "rzp_order_1"})
	}()

	require.Eventually(t, func() bool {
		_, ok := g.Pending("rzp_order_1")
		return ok
	}, time.Second, 5*time.Millisecond)

	cancel()

	select {
	case outcome := <-outcomes:
		assert.Equal(t, OutcomeCancelled, outcome.Status)
	case <-time.After(time.Second):
		t.Fatal("Collect did not return after context cancellation")
	}
}

func TestResolve_NoPendingCheckout(t *testing.T) {
	g := New("rzp_test_key")

	err := g.Resolve("unknown", Outcome{Status: OutcomeCancelled})
	assert.ErrorIs(t, err, ErrNoPendingCheckout)
}
