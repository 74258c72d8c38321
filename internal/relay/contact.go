// Copyright (c) 2026 BAR HIK. All rights reserved.

// Package relay holds thin clients for the third-party APIs the site
// fronts: the Contact Form 7 mail endpoint and the Dify chat API. The
// handlers never expose upstream credentials to the browser; everything
// goes through these clients server-side.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ContactForm is a visitor submission from the contact page.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// RejectedError reports that the mail endpoint accepted the request but
// declined to send, e.g. validation or spam rejection. The message is
// safe to show the visitor.
type RejectedError struct {
	Status  string
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("contact form rejected (%s): %s", e.Status, e.Message)
}

// ContactClient submits forms to a Contact Form 7 REST endpoint
// ({base}/contact-form-7/v1/contact-forms/{id}/feedback).
type ContactClient struct {
	baseURL string
	formID  string
	client  *http.Client
}

// NewContactClient creates a client for the given CF7 base URL and form ID.
func NewContactClient(baseURL, formID string) *ContactClient {
	return &ContactClient{
		baseURL: baseURL,
		formID:  formID,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// cf7Response is the feedback endpoint's reply envelope.
type cf7Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Submit relays the form. A nil error means CF7 reported mail_sent; a
// *RejectedError carries CF7's own refusal; any other error is a
// transport or decoding failure.
func (c *ContactClient) Submit(ctx context.Context, form ContactForm) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"your-name":       form.Name,
		"your-email":      form.Email,
		"your-subject":    form.Subject,
		"your-message":    form.Message,
		"_wpcf7_unit_tag": fmt.Sprintf("wpcf7-f%s-%s", c.formID, uuid.NewString()),
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return fmt.Errorf("contact form encode: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("contact form encode: %w", err)
	}

	url := fmt.Sprintf("%s/%s/feedback", c.baseURL, c.formID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return fmt.Errorf("contact form request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("contact form http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("contact form read body: %w", err)
	}

	// CF7 answers 200 even for validation failures; the status field is
	// the real verdict.
	var result cf7Response
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("contact form decode (status %d): %w", resp.StatusCode, err)
	}
	if result.Status != "mail_sent" {
		return &RejectedError{Status: result.Status, Message: result.Message}
	}
	return nil
}
