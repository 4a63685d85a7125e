// Package telegram provides a small client for operator alerts.
//
// The dispatch worker uses it to tell operators about notification jobs that
// exhausted their delivery attempts; it plays no part in user-facing
// notifications.
package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client represents a Telegram client used to send operator alerts.
type Client struct {
	token  string       // bot token for authentication
	chatID string       // operations chat to alert
	client *http.Client // HTTP client used to make requests
}

// NewClient creates a new Telegram Client for the given bot token and chat.
func NewClient(token, chatID string) *Client {
	return &Client{
		token:  token,
		chatID: chatID,
		client: &http.Client{},
	}
}

// sendMessageRequest represents the payload for the Telegram sendMessage API.
type sendMessageRequest struct {
	ChatID string `json:"chat_id"` // chat id to send message to
	Text   string `json:"text"`    // message text
}

// Alert sends a message to the configured operations chat.
//
// It constructs the request payload, sends an HTTP POST to the Telegram Bot
// API, and returns an error if the request fails or the API responds with a
// non-200 status.
func (c *Client) Alert(msg string) error {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", c.token)

	reqBody := sendMessageRequest{
		ChatID: c.chatID,
		Text:   msg,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error: %s", resp.Status)
	}

	return nil
}
