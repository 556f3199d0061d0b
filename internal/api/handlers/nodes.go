package handlers

import (
	"log"
	"net/http"

	"relief-route-service/internal/api/dto"
	"relief-route-service/internal/ports"
)

// NodeHandler exposes the aggregated per-node status view.
type NodeHandler struct {
	Repo ports.MessageRepository
}

func (h *NodeHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	nodes, err := h.Repo.NodeStatuses(r.Context())
	if err != nil {
		log.Printf("list node statuses failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := make([]dto.NodeStatusResponse, 0, len(nodes))
	for _, n := range nodes {
		res = append(res, dto.NodeStatusFromDomain(n))
	}

	writeJSON(w, r, http.StatusOK, res)
}
