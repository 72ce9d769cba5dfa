// Package telegram delivers the formatted brief to a Telegram chat.
package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"newsbrief/internal/logger"
)

const maxRetries = 3

var client = &http.Client{Timeout: 30 * time.Second}

// SendMessage posts an HTML message with retries and exponential backoff.
func SendMessage(token, chatID, text string) error {
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := sendMessageOnce(token, chatID, text)
		if err == nil {
			logger.Info("message sent to Telegram", "attempt", attempt)
			return nil
		}

		logger.Warn("Telegram send failed", "attempt", attempt, "maxRetries", maxRetries, "error", err)

		if attempt < maxRetries {
			// Exponential backoff: 2^attempt seconds
			time.Sleep(time.Duration(1<<attempt) * time.Second)
		}
	}

	return fmt.Errorf("can't send message after %d tries", maxRetries)
}

func sendMessageOnce(token, chatID, text string) error {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", token)

	payload := map[string]interface{}{
		"chat_id":                  chatID,
		"text":                     text,
		"parse_mode":               "HTML",
		"disable_web_page_preview": true,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	resp, err := client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error: status %d", resp.StatusCode)
	}

	return nil
}
