package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// queryInt parses an integer query parameter, returning fallback when the
// parameter is absent. The second return is false when the value is present
// but not an integer or outside [min, max].
func queryInt(r *http.Request, name string, fallback, min, max int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < min || v > max {
		return 0, false
	}
	return v, true
}
