package models

// CheckoutSession holds the customer fields for a single checkout
// attempt. It is never persisted; a failed or cancelled attempt keeps
// it so the user can retry without re-entering data.
type CheckoutSession struct {
	CustomerName        string `json:"customer_name"`
	CustomerEmail       string `json:"customer_email"`
	CustomerPhone       string `json:"customer_phone"`
	DeliveryType        string `json:"delivery_type"`
	DeliveryAddress     string `json:"delivery_address"`
	SpecialInstructions string `json:"special_instructions"`
}

type DeliveryType string

const (
	DeliveryPickup   DeliveryType = "pickup"
	DeliveryDelivery DeliveryType = "delivery"
)

// OrderConfirmation is handed to the caller once an order is durably
// created and its payment verified.
type OrderConfirmation struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
}
