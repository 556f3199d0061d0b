package handlers

import (
	"log"
	"net/http"

	"relief-route-service/internal/api/dto"
	"relief-route-service/internal/domain"
	"relief-route-service/internal/ports"
)

// MessageHandler exposes read-only message retrieval endpoints.
type MessageHandler struct {
	Repo ports.MessageRepository
}

// List returns the most recent messages from all nodes.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit, ok := queryInt(r, "limit", 50, 1, 500)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "limit must be an integer between 1 and 500")
		return
	}

	msgs, err := h.Repo.ListRecent(r.Context(), limit)
	if err != nil {
		log.Printf("list messages failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toMessageResponses(msgs))
}

// ListUrgent returns messages filtered by minimum urgency, for triage views.
func (h *MessageHandler) ListUrgent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	minUrgency, ok := queryInt(r, "min_urgency", domain.UrgencyElevated, domain.UrgencyLow, domain.UrgencyCritical)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "min_urgency must be an integer between 1 and 3")
		return
	}
	limit, ok := queryInt(r, "limit", 100, 1, 500)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "limit must be an integer between 1 and 500")
		return
	}

	msgs, err := h.Repo.ListUrgent(r.Context(), minUrgency, limit)
	if err != nil {
		log.Printf("list urgent messages failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toMessageResponses(msgs))
}

func toMessageResponses(msgs []domain.Message) []dto.MessageResponse {
	res := make([]dto.MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		res = append(res, dto.MessageFromDomain(m))
	}
	return res
}
