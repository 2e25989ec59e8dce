package stripeControllers

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/Mdken1/storefront-api/models"
	"github.com/Mdken1/storefront-api/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultStripeAPIURL = "https://api.stripe.com"

// stripeIntentResponse is the subset of Stripe's payment_intent object the
// storefront needs.
type stripeIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func getStripeConfig() (secretKey, apiURL string, err error) {
	secretKey = os.Getenv("STRIPE_SECRET_KEY")
	if secretKey == "" {
		return "", "", fmt.Errorf("payment processing is not configured")
	}
	apiURL = os.Getenv("STRIPE_API_URL")
	if apiURL == "" {
		apiURL = defaultStripeAPIURL
	}
	return secretKey, apiURL, nil
}

// CreatePaymentIntent asks Stripe for a payment intent over its form-encoded
// REST API and returns the intent id plus the client secret the browser
// completes the charge with. Amounts are converted to minor units (cents)
// by rounding.
func CreatePaymentIntent(amount float64, currency, orderID string) (*stripeIntentResponse, error) {
	secretKey, apiURL, err := getStripeConfig()
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(int64(math.Round(amount*100)), 10))
	form.Set("currency", currency)
	if orderID != "" {
		form.Set("metadata[orderId]", orderID)
	}

	req, err := http.NewRequest(http.MethodPost, apiURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach Stripe: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var intent stripeIntentResponse
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("failed to parse Stripe response: %v", err)
	}
	if intent.Error != nil {
		return nil, fmt.Errorf("stripe error: %s", intent.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stripe API error (%d): %s", resp.StatusCode, string(body))
	}
	if intent.ClientSecret == "" {
		return nil, fmt.Errorf("stripe returned no client secret")
	}
	return &intent, nil
}

type PaymentIntentRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency"`
	OrderID  string  `json:"orderId"`
}

// POST /api/create-payment-intent
func PaymentIntentHandler(c *gin.Context) {
	var input PaymentIntentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error creating payment intent: " + err.Error()})
		return
	}
	if input.Currency == "" {
		input.Currency = "usd"
	}

	intent, err := CreatePaymentIntent(input.Amount, input.Currency, input.OrderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating payment intent: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clientSecret":    intent.ClientSecret,
		"paymentIntentId": intent.ID,
	})
}

type WebhookRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
	OrderID         string `json:"orderId"`
}

// WebhookHandler records a completed client-side charge: given the intent and
// the order it paid for, the order advances to "processing". Authenticity is
// checked by middleware.StripeWebhookAuth when a webhook secret is set.
// POST /api/webhook/stripe
func WebhookHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WebhookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook error: " + err.Error()})
			return
		}

		if req.OrderID != "" && req.PaymentIntentID != "" {
			if _, err := storage.UpdateOrderStatus(db, req.OrderID, models.OrderStatusProcessing); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook error: " + err.Error()})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}
