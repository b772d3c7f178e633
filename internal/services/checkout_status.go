package services

// CheckoutStatus tracks where a checkout attempt is in its strict
// sequence. Steps never run out of order: input is validated before any
// network call, the gateway is loaded before an intent exists, and the
// durable order is created only after the gateway reports success.
type CheckoutStatus string

const (
	StatusIdle             CheckoutStatus = "idle"
	StatusValidatingInput  CheckoutStatus = "validating_input"
	StatusLoadingGateway   CheckoutStatus = "loading_gateway"
	StatusCreatingIntent   CheckoutStatus = "creating_intent"
	StatusAwaitingPayment  CheckoutStatus = "awaiting_payment"
	StatusCreatingOrder    CheckoutStatus = "creating_order"
	StatusVerifyingPayment CheckoutStatus = "verifying_payment"
	StatusComplete         CheckoutStatus = "complete"
)

// String representation (for logging)
func (s CheckoutStatus) String() string {
	return string(s)
}
