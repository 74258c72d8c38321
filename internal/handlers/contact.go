// Copyright (c) 2026 BAR HIK. All rights reserved.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hikichi68/barhik/internal/relay"
)

// contactResponse is the JSON envelope the contact form script expects.
type contactResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Contact relays a form submission to the Contact Form 7 endpoint.
// Validation refusals from CF7 come back as 400 with CF7's own message;
// configuration and transport failures are a 500 with a generic message.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, contactResponse{
				Status: "error", Message: "Could not read the form submission.",
			})
			return
		}
	}

	form := relay.ContactForm{
		Name:    strings.TrimSpace(r.FormValue("name")),
		Email:   strings.TrimSpace(r.FormValue("email")),
		Subject: strings.TrimSpace(r.FormValue("subject")),
		Message: strings.TrimSpace(r.FormValue("message")),
	}
	if form.Name == "" || form.Email == "" || form.Subject == "" || form.Message == "" {
		writeJSON(w, http.StatusBadRequest, contactResponse{
			Status: "validation_failed", Message: "All fields are required.",
		})
		return
	}

	if h.contact == nil {
		slog.Error("contact: relay not configured")
		writeJSON(w, http.StatusInternalServerError, contactResponse{
			Status: "error", Message: "The contact form is temporarily unavailable.",
		})
		return
	}

	err := h.contact.Submit(r.Context(), form)
	if err != nil {
		var rej *relay.RejectedError
		if errors.As(err, &rej) {
			writeJSON(w, http.StatusBadRequest, contactResponse{
				Status: rej.Status, Message: rej.Message,
			})
			return
		}
		slog.Error("contact: relay failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, contactResponse{
			Status: "error", Message: "The contact form is temporarily unavailable.",
		})
		return
	}

	writeJSON(w, http.StatusOK, contactResponse{
		Status: "mail_sent", Message: "Thank you. Your message has been sent.",
	})
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json response", "error", err)
	}
}
