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

type chatAskRequest struct {
	Question string `json:"question"`
}

type chatAskResponse struct {
	Answer string `json:"answer"`
}

type chatErrorResponse struct {
	Error string `json:"error"`
}

// Chat relays a visitor question to the Dify API and returns the answer.
// Upstream failures mirror the upstream status code so the widget can
// distinguish rate limiting from a hard failure.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatAskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, chatErrorResponse{Error: "invalid request body"})
		return
	}
	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		writeJSON(w, http.StatusBadRequest, chatErrorResponse{Error: "question is required"})
		return
	}

	if h.chat == nil {
		slog.Error("chat: relay not configured")
		writeJSON(w, http.StatusInternalServerError, chatErrorResponse{Error: "chat is temporarily unavailable"})
		return
	}

	answer, err := h.chat.Ask(r.Context(), req.Question)
	if err != nil {
		var up *relay.UpstreamError
		if errors.As(err, &up) {
			slog.Error("chat: upstream error", "status", up.StatusCode)
			writeJSON(w, up.StatusCode, chatErrorResponse{Error: "chat is temporarily unavailable"})
			return
		}
		slog.Error("chat: relay failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, chatErrorResponse{Error: "chat is temporarily unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, chatAskResponse{Answer: answer})
}
