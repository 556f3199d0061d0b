package handlers

import "net/http"

// Root serves the API index. The bare mux pattern "/" also catches unknown
// paths, which get a 404 here instead of an index document.
func Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"service": "relief-route-service",
		"status":  "operational",
		"endpoints": map[string]string{
			"messages": "/messages",
			"urgent":   "/messages/urgent",
			"nodes":    "/nodes",
			"routes":   "/routes",
			"generate": "/routes/generate",
			"health":   "/health",
			"metrics":  "/metrics",
		},
	})
}
