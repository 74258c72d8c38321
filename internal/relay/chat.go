// Copyright (c) 2026 BAR HIK. All rights reserved.

package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// defaultChatUser is the pseudonymous end-user identifier sent to the
// chat API; visitors are not individually tracked.
const defaultChatUser = "user-royal-chord"

// UpstreamError is a non-2xx reply from the chat API. The handler
// mirrors the status code back to the browser.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("chat API error (status %d): %s", e.StatusCode, e.Body)
}

// ChatClient talks to a Dify chat-messages endpoint in blocking mode.
type ChatClient struct {
	apiURL string
	apiKey string
	user   string
	client *http.Client
}

// NewChatClient creates a client for the given Dify endpoint and key.
func NewChatClient(apiURL, apiKey string) *ChatClient {
	return &ChatClient{
		apiURL: apiURL,
		apiKey: apiKey,
		user:   defaultChatUser,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

type chatRequest struct {
	Inputs       map[string]any `json:"inputs"`
	Query        string         `json:"query"`
	ResponseMode string         `json:"response_mode"`
	User         string         `json:"user"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

// Ask sends the visitor's question and returns the assistant's answer.
func (c *ChatClient) Ask(ctx context.Context, question string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Inputs:       map[string]any{},
		Query:        question,
		ResponseMode: "blocking",
		User:         c.user,
	})
	if err != nil {
		return "", fmt.Errorf("chat marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("chat read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("chat unmarshal: %w", err)
	}
	return result.Answer, nil
}
