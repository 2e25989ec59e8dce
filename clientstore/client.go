package clientstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Mdken1/storefront-api/models"
)

// Client is a thin JSON client for the storefront API, used by the cart
// store and by headless storefront tooling.
type Client struct {
	BaseURL    string
	AuthToken  string // optional guest JWT
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
	}
}

type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AuthToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &apiError{Status: resp.StatusCode, Message: payload.Error}
	}

	if dest != nil {
		return json.NewDecoder(resp.Body).Decode(dest)
	}
	return nil
}

func (c *Client) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := c.do(ctx, http.MethodGet, "/api/products", nil, &products)
	return products, err
}

func (c *Client) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := c.do(ctx, http.MethodGet, "/api/cart/"+userID, nil, &items)
	return items, err
}

func (c *Client) AddToCart(ctx context.Context, userID, productID string, quantity int) (*models.CartItem, error) {
	body := map[string]interface{}{
		"userId":    userID,
		"productId": productID,
		"quantity":  quantity,
	}
	var item models.CartItem
	if err := c.do(ctx, http.MethodPost, "/api/cart", body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateCartQuantity(ctx context.Context, userID, productID string, quantity int) error {
	body := map[string]interface{}{
		"userId":    userID,
		"productId": productID,
		"quantity":  quantity,
	}
	return c.do(ctx, http.MethodPut, "/api/cart", body, nil)
}

func (c *Client) RemoveFromCart(ctx context.Context, userID, productID string) error {
	return c.do(ctx, http.MethodDelete, "/api/cart/"+userID+"/"+productID, nil, nil)
}

func (c *Client) ClearCart(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/api/cart/"+userID, nil, nil)
}

// OrderItemDraft mirrors the order line items the API expects at checkout.
type OrderItemDraft struct {
	ProductID string         `json:"productId"`
	Quantity  int            `json:"quantity"`
	Price     models.Numeric `json:"price"`
}

type OrderDraft struct {
	UserID          string           `json:"userId"`
	Total           models.Numeric   `json:"total"`
	ShippingAddress string           `json:"shippingAddress"`
	Items           []OrderItemDraft `json:"items"`
}

func (c *Client) CreateOrder(ctx context.Context, draft OrderDraft) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", draft, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

type PaymentIntent struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

func (c *Client) CreatePaymentIntent(ctx context.Context, amount float64, currency, orderID string) (*PaymentIntent, error) {
	body := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"orderId":  orderID,
	}
	var intent PaymentIntent
	if err := c.do(ctx, http.MethodPost, "/api/create-payment-intent", body, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}
