package utils

import (
	"camp/config"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
)

// PaymentIntent is the subset of the provider response the API needs.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// CreatePaymentIntent asks the payment provider for a charge intent of
// the given amount in minor units. The caller converts price to minor
// units before calling.
func CreatePaymentIntent(amount int64) (*PaymentIntent, error) {
	client := resty.New()
	resp, err := client.R().
		SetAuthToken(config.AppConfig.PaymentSecretKey).
		SetFormData(map[string]string{
			"amount":                 fmt.Sprintf("%d", amount),
			"currency":               config.AppConfig.PaymentCurrency,
			"payment_method_types[]": "card",
		}).
		Post(config.AppConfig.PaymentApiURL + "/payment_intents")
	if err != nil {
		log.Printf("Failed to reach payment provider: %v", err)
		return nil, err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Payment intent creation failed: %s", resp.String())
		return nil, fmt.Errorf("payment provider returned status %d", resp.StatusCode())
	}

	var intent PaymentIntent
	if err := json.Unmarshal(resp.Body(), &intent); err != nil {
		log.Printf("Failed to parse payment provider response: %v", err)
		return nil, err
	}
	if intent.ClientSecret == "" {
		return nil, fmt.Errorf("payment provider response missing client secret")
	}

	return &intent, nil
}
