package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"relief-route-service/internal/api/dto"
	"relief-route-service/internal/domain"
	"relief-route-service/internal/events"
	"relief-route-service/internal/ports"
	"relief-route-service/internal/services"
)

// RouteDefaults are the server-level fallbacks applied when a generation
// request omits a parameter.
type RouteDefaults struct {
	Depot           domain.Location
	VehicleCapacity int
	SinceHours      int
	UrgencyWeight   float64
	DistanceWeight  float64
}

// RouteHandler exposes route plan generation and retrieval.
type RouteHandler struct {
	Messages  ports.MessageRepository
	Routes    ports.RouteRepository
	Publisher events.Publisher
	Defaults  RouteDefaults
}

// Generate produces the three candidate plans (distance, priority, blended)
// for the currently active demand set, stores them, and returns them.
func (h *RouteHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.GenerateRoutesRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	// An empty body runs entirely on server defaults.
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	} else if err == nil {
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
			return
		}
	}

	svcReq := h.buildRequest(req)
	if svcReq.VehicleCapacity < 1 || svcReq.VehicleCapacity > 10000 {
		writeError(w, r, http.StatusBadRequest, "vehicle_capacity must be between 1 and 10000")
		return
	}
	if svcReq.SinceHours < 1 || svcReq.SinceHours > 720 {
		writeError(w, r, http.StatusBadRequest, "since_hours must be between 1 and 720")
		return
	}

	stored, err := services.GeneratePlans(r.Context(), svcReq, h.Messages, h.Routes, h.Publisher)
	if err != nil {
		log.Printf("generate plans failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toRoutePlanResponses(stored))
}

// List returns recently generated route plans, newest first.
func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit, ok := queryInt(r, "limit", 10, 1, 50)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "limit must be an integer between 1 and 50")
		return
	}

	stored, err := h.Routes.ListRecent(r.Context(), limit)
	if err != nil {
		log.Printf("list routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toRoutePlanResponses(stored))
}

// buildRequest merges request fields with server defaults. The weights are
// deliberately not validated or normalized.
func (h *RouteHandler) buildRequest(req dto.GenerateRoutesRequest) services.GeneratePlansRequest {
	svcReq := services.GeneratePlansRequest{
		Depot:           h.Defaults.Depot,
		VehicleCapacity: h.Defaults.VehicleCapacity,
		SinceHours:      h.Defaults.SinceHours,
		UrgencyWeight:   h.Defaults.UrgencyWeight,
		DistanceWeight:  h.Defaults.DistanceWeight,
	}

	if req.DepotLat != nil {
		svcReq.Depot.Lat = *req.DepotLat
	}
	if req.DepotLon != nil {
		svcReq.Depot.Lon = *req.DepotLon
	}
	if req.VehicleCapacity != 0 {
		svcReq.VehicleCapacity = req.VehicleCapacity
	}
	if req.SinceHours != 0 {
		svcReq.SinceHours = req.SinceHours
	}
	if req.UrgencyWeight != nil {
		svcReq.UrgencyWeight = *req.UrgencyWeight
	}
	if req.DistanceWeight != nil {
		svcReq.DistanceWeight = *req.DistanceWeight
	}

	return svcReq
}

func toRoutePlanResponses(stored []ports.StoredRoutePlan) []dto.RoutePlanResponse {
	res := make([]dto.RoutePlanResponse, 0, len(stored))
	for _, sp := range stored {
		res = append(res, dto.RoutePlanFromStored(sp))
	}
	return res
}
