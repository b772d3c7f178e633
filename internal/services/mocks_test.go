package services

import (
	"context"

	"restaurant_storefront/internal/models"
	"restaurant_storefront/pkg/razorpay"
	"restaurant_storefront/pkg/restaurantapi"
)

// mockBackend implements BackendAPI and MenuAPI for testing, recording
// the order of calls made against it.
type mockBackend struct {
	Calls []string

	Intent     *restaurantapi.PaymentIntent
	IntentErr  error
	IntentReqs []restaurantapi.PaymentIntentRequest

	OrderResp *restaurantapi.CreateOrderResponse
	OrderErr  error
	OrderReqs []restaurantapi.CreateOrderRequest

	VerifyErr  error
	VerifyReqs []restaurantapi.VerifyPaymentRequest

	Categories    []restaurantapi.MenuCategory
	CategoriesErr error
}

func (m *mockBackend) CreatePaymentIntent(_ context.Context, req restaurantapi.PaymentIntentRequest) (*restaurantapi.PaymentIntent, error) {
	m.Calls = append(m.Calls, "create_intent")
	m.IntentReqs = append(m.IntentReqs, req)
	if m.IntentErr != nil {
		return nil, m.IntentErr
	}
	if m.Intent != nil {
		return m.Intent, nil
	}
	return &restaurantapi.PaymentIntent{
		GatewayOrderID: "rzp_order_" + req.OrderID,
		Amount:         req.Amount,
		Currency:       req.Currency,
		KeyID:          "rzp_test_key",
	}, nil
}

func (m *mockBackend) CreateOrder(_ context.Context, order restaurantapi.CreateOrderRequest) (*restaurantapi.CreateOrderResponse, error) {
	m.Calls = append(m.Calls, "create_order")
	m.OrderReqs = append(m.OrderReqs, order)
	if m.OrderErr != nil {
		return nil, m.OrderErr
	}
	if m.OrderResp != nil {
		return m.OrderResp, nil
	}
	return &restaurantapi.CreateOrderResponse{OrderID: "order-1", OrderNumber: "ORD20260831120000"}, nil
}

func (m *mockBackend) VerifyPayment(_ context.Context, req restaurantapi.VerifyPaymentRequest) error {
	m.Calls = append(m.Calls, "verify_payment")
	m.VerifyReqs = append(m.VerifyReqs, req)
	return m.VerifyErr
}

func (m *mockBackend) GetMenuCategories(_ context.Context) ([]restaurantapi.MenuCategory, error) {
	m.Calls = append(m.Calls, "get_menu_categories")
	return m.Categories, m.CategoriesErr
}

// mockGateway implements PaymentGateway with a scripted outcome.
type mockGateway struct {
	LoadErr     error
	LoadCalls   int
	Outcome     razorpay.Outcome
	CollectReqs []razorpay.CheckoutRequest

	// Release, when set, blocks Collect until it is closed.
	Collecting chan struct{}
	Release    chan struct{}
}

func (m *mockGateway) Load() error {
	m.LoadCalls++
	return m.LoadErr
}

func (m *mockGateway) Collect(ctx context.Context, req razorpay.CheckoutRequest) razorpay.Outcome {
	m.CollectReqs = append(m.CollectReqs, req)
	if m.Collecting != nil {
		close(m.Collecting)
		m.Collecting = nil
	}
	if m.Release != nil {
		select {
		case <-m.Release:
		case <-ctx.Done():
			return razorpay.Outcome{Status: razorpay.OutcomeCancelled, Reason: "checkout abandoned"}
		}
	}
	return m.Outcome
}

// mock repositories

type attemptRepoMock struct {
	Attempts []*models.CheckoutAttempt
}

func (m *attemptRepoMock) Create(attempt *models.CheckoutAttempt) error {
	m.Attempts = append(m.Attempts, attempt)
	return nil
}

func (m *attemptRepoMock) GetByRef(attemptRef string) (*models.CheckoutAttempt, error) {
	for _, a := range m.Attempts {
		if a.AttemptRef == attemptRef {
			return a, nil
		}
	}
	return nil, nil
}

func (m *attemptRepoMock) GetByCartID(cartID string) ([]models.CheckoutAttempt, error) {
	var out []models.CheckoutAttempt
	for _, a := range m.Attempts {
		if a.CartID == cartID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *attemptRepoMock) Update(*models.CheckoutAttempt) error {
	return nil
}

type reconciliationRepoMock struct {
	Records   []*models.PaymentReconciliation
	CreateErr error
}

func (m *reconciliationRepoMock) Create(record *models.PaymentReconciliation) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Records = append(m.Records, record)
	return nil
}

func (m *reconciliationRepoMock) GetByID(uint) (*models.PaymentReconciliation, error) {
	return nil, nil
}

func (m *reconciliationRepoMock) GetUnresolved() ([]models.PaymentReconciliation, error) {
	var out []models.PaymentReconciliation
	for _, r := range m.Records {
		if !r.Resolved {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *reconciliationRepoMock) MarkResolved(uint) error {
	return nil
}

// memoryPersistence implements cart.Persistence
type memoryPersistence struct {
	data map[string][]byte
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{data: make(map[string][]byte)}
}

func (m *memoryPersistence) SaveCart(cartID string, data []byte) error {
	m.data[cartID] = data
	return nil
}

func (m *memoryPersistence) LoadCart(cartID string) ([]byte, error) {
	return m.data[cartID], nil
}

func (m *memoryPersistence) DeleteCart(cartID string) error {
	delete(m.data, cartID)
	return nil
}
