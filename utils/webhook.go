package utils

import (
	"cybercourse/config"
	"log"

	"github.com/go-resty/resty/v2"
)

// NotifyPayload is what the engine hands to the delivery channel.
type NotifyPayload struct {
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	CourseLink string `json:"courseLink,omitempty"`
}

// PostWebhook forwards a notification payload to the configured webhook,
// if any. Fire and forget: a failed delivery is logged and dropped.
func PostWebhook(payload NotifyPayload) {
	url := config.AppConfig.NotifyWebhookURL
	if url == "" {
		return
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(url)
	if err != nil {
		log.Printf("Error posting notification webhook: %v", err)
		return
	}
	if resp.StatusCode() >= 400 {
		log.Printf("Notification webhook returned %d: %s", resp.StatusCode(), resp.String())
	}
}
