package restaurantapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the restaurant Order/Booking backend REST API. The
// backend owns menu pricing, durable orders, bookings and payment
// intents; the storefront only consumes this contract.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

type MenuItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Image        string  `json:"image,omitempty"`
	Category     string  `json:"category"`
	Spicy        string  `json:"spicy"`
	IsVegetarian bool    `json:"is_vegetarian"`
	IsSpicy      bool    `json:"is_spicy"`
	Available    bool    `json:"available"`
}

type MenuCategory struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Items       []MenuItem `json:"items"`
}

type OrderItem struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

type CreateOrderRequest struct {
	CustomerName        string      `json:"customer_name"`
	CustomerEmail       string      `json:"customer_email"`
	CustomerPhone       string      `json:"customer_phone"`
	DeliveryType        string      `json:"delivery_type"`
	DeliveryAddress     *string     `json:"delivery_address"`
	SpecialInstructions *string     `json:"special_instructions"`
	Items               []OrderItem `json:"items"`
	TotalAmount         float64     `json:"total_amount"`
}

type CreateOrderResponse struct {
	Message     string `json:"message"`
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
}

type PaymentIntentRequest struct {
	Amount   int64  `json:"amount"` // minor currency units
	Currency string `json:"currency"`
	OrderID  string `json:"order_id"` // attempt-scoped reference, not the durable order id
}

type PaymentIntent struct {
	GatewayOrderID string `json:"order_id"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	KeyID          string `json:"key_id"`
}

type VerifyPaymentRequest struct {
	GatewayOrderID string `json:"gateway_order_id"`
	PaymentID      string `json:"gateway_payment_id"`
	Signature      string `json:"signature"`
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken replaces the bearer credential attached to outgoing requests.
func (c *Client) SetToken(token string) {
	c.Token = token
}

func (c *Client) GetMenuCategories(ctx context.Context) ([]MenuCategory, error) {
	var categories []MenuCategory
	if err := c.do(ctx, http.MethodGet, "/menu/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, category MenuCategory) error {
	return c.do(ctx, http.MethodPost, "/menu/category", nil, category, nil)
}

// CreateItem creates a menu item under a category. The backend takes
// category_id as a query parameter and rejects it in the body, so the
// item payload must not carry it.
func (c *Client) CreateItem(ctx context.Context, item MenuItem, categoryID string) error {
	query := url.Values{"category_id": {categoryID}}
	return c.do(ctx, http.MethodPost, "/menu/item", query, item, nil)
}

func (c *Client) UpdateItem(ctx context.Context, itemID string, item MenuItem) error {
	return c.do(ctx, http.MethodPut, "/menu/item/"+itemID, nil, item, nil)
}

func (c *Client) DeleteItem(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/menu/item/"+itemID, nil, nil, nil)
}

func (c *Client) CreateOrder(ctx context.Context, order CreateOrderRequest) (*CreateOrderResponse, error) {
	var resp CreateOrderResponse
	if err := c.do(ctx, http.MethodPost, "/orders", nil, order, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateOrderStatus advances an order's status. The backend reads the
// status from the query string, not the body.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	query := url.Values{"status": {status}}
	return c.do(ctx, http.MethodPut, "/orders/"+orderID+"/status", query, nil, nil)
}

func (c *Client) UpdateBookingStatus(ctx context.Context, bookingID, status string) error {
	query := url.Values{"status": {status}}
	return c.do(ctx, http.MethodPut, "/bookings/"+bookingID+"/status", query, nil, nil)
}

func (c *Client) CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntent, error) {
	var intent PaymentIntent
	if err := c.do(ctx, http.MethodPost, "/payment/create-order", nil, req, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

func (c *Client) VerifyPayment(ctx context.Context, req VerifyPaymentRequest) error {
	return c.do(ctx, http.MethodPost, "/payment/verify", nil, req, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	reqURL := c.BaseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Detail:     extractDetail(respBody, resp.StatusCode),
		}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}
