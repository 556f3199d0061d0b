package handlers

import (
	"log"
	"net/http"

	"relief-route-service/internal/ports"
)

// HealthHandler reports liveness plus basic message store metrics.
type HealthHandler struct {
	Repo ports.MessageRepository
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	stats, err := h.Repo.Stats(r.Context())
	if err != nil {
		log.Printf("health check failed: %v", err)
		writeJSON(w, r, http.StatusOK, map[string]any{
			"status": "degraded",
			"db_ok":  false,
		})
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":                 "ok",
		"db_ok":                  true,
		"total_messages":         stats.TotalMessages,
		"last_message_timestamp": stats.LastMessageTimestamp,
	})
}
