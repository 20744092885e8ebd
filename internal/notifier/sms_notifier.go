package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	config "github.com/Keoroanthony/bakery-ledger/configs"
	"github.com/Keoroanthony/bakery-ledger/internal/models"
)

// SMSSender delivers a text message to a phone number.
type SMSSender interface {
	SendSMS(ctx context.Context, toPhoneNumber, message string) error
}

type SMSResponse struct {
	SMSMessageData struct {
		Message    string `json:"Message"`
		Recipients []struct {
			StatusCode int    `json:"statusCode"`
			Number     string `json:"number"`
			Cost       string `json:"cost"`
			Status     string `json:"status"`
			MessageID  string `json:"messageId"`
		} `json:"Recipients"`
	} `json:"SMSMessageData"`
}

// AfricasTalking sends messages through the Africa's Talking messaging API.
type AfricasTalking struct {
	cfg    config.AfricaTalkingConfig
	client *http.Client
}

func NewAfricasTalking(cfg config.AfricaTalkingConfig) *AfricasTalking {
	return &AfricasTalking{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (a *AfricasTalking) SendSMS(ctx context.Context, toPhoneNumber, message string) error {
	data := url.Values{}
	data.Set("username", a.cfg.Username)
	data.Set("to", toPhoneNumber)
	data.Set("message", message)
	data.Set("from", a.cfg.SenderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.SMSURL, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create SMS request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("apikey", a.cfg.APIKey)

	resp, err := a.client.Do(req)
	if err != nil {
		log.Printf("SMS send failed to %s: %v\n", toPhoneNumber, err)
		return fmt.Errorf("SMS send failed: %w", err)
	}
	defer resp.Body.Close()

	var smsResp SMSResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&smsResp)

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		if decodeErr == nil {
			log.Printf("SMS API returned error for %s: Status %d, Message: %s\n", toPhoneNumber, resp.StatusCode, smsResp.SMSMessageData.Message)
		} else {
			log.Printf("SMS API returned non-success status %d for %s and failed to decode response: %v\n", resp.StatusCode, toPhoneNumber, decodeErr)
		}
		return fmt.Errorf("SMS API returned non-success status: %d", resp.StatusCode)
	}

	if decodeErr != nil {
		log.Printf("Failed to decode SMS response for %s: %v\n", toPhoneNumber, decodeErr)
		return fmt.Errorf("failed to decode SMS response: %w", decodeErr)
	}

	log.Printf("SMS sent successfully to %s. Message: %s\n", toPhoneNumber, smsResp.SMSMessageData.Message)
	return nil
}

// ReminderMessage is the text sent to a customer whose orders await delivery.
func ReminderMessage(customerName string, date models.DeliveryDate, total float64) string {
	return fmt.Sprintf("Hello %s, your bakery order for %s is ready. Amount due: %.2f PLN. Thank you!", customerName, date, total)
}
