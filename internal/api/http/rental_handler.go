package http

import (
	"encoding/json"
	"net/http"

	"gamerental-backend/internal/logger"
	"gamerental-backend/internal/service"

	"github.com/gorilla/mux"
)

// RentalHandler exposes the rent/return/search operations over HTTP.
type RentalHandler struct {
	rentalSvc service.RentalService
	gameSvc   service.GameService
}

// NewRentalHandler creates a new rental handler
func NewRentalHandler(rentalSvc service.RentalService, gameSvc service.GameService) *RentalHandler {
	return &RentalHandler{
		rentalSvc: rentalSvc,
		gameSvc:   gameSvc,
	}
}

type rentRequest struct {
	CustomerID string `json:"customer_id"`
	GameID     string `json:"game_id"`
}

type returnRequest struct {
	GameID string `json:"game_id"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// HandleRent handles POST /api/v1/rentals
func (h *RentalHandler) HandleRent(w http.ResponseWriter, r *http.Request) {
	var req rentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.CustomerID == "" || req.GameID == "" {
		http.Error(w, "customer_id and game_id are required", http.StatusBadRequest)
		return
	}

	message, err := h.rentalSvc.Rent(r.Context(), req.CustomerID, req.GameID)
	if err != nil {
		logger.Error("Rent request failed", "customer_id", req.CustomerID, "game_id", req.GameID, "error", err)
		http.Error(w, "Failed to process rental", http.StatusInternalServerError)
		return
	}

	writeJSON(w, messageResponse{Message: message})
}

// HandleReturn handles POST /api/v1/returns
func (h *RentalHandler) HandleReturn(w http.ResponseWriter, r *http.Request) {
	var req returnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.GameID == "" {
		http.Error(w, "game_id is required", http.StatusBadRequest)
		return
	}

	message, err := h.rentalSvc.Return(r.Context(), req.GameID)
	if err != nil {
		logger.Error("Return request failed", "game_id", req.GameID, "error", err)
		http.Error(w, "Failed to process return", http.StatusInternalServerError)
		return
	}

	writeJSON(w, messageResponse{Message: message})
}

// HandleSearch handles GET /api/v1/games/search
func (h *RentalHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	platform := r.URL.Query().Get("platform")
	if title == "" || platform == "" {
		http.Error(w, "title and platform query parameters are required", http.StatusBadRequest)
		return
	}

	results, err := h.gameSvc.SearchAvailable(r.Context(), title, platform)
	if err != nil {
		logger.Error("Game search failed", "title", title, "platform", platform, "error", err)
		http.Error(w, "Failed to search games", http.StatusInternalServerError)
		return
	}

	writeJSON(w, results)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// RegisterRoutes registers the rental endpoints on the router
func RegisterRoutes(router *mux.Router, rentalSvc service.RentalService, gameSvc service.GameService) {
	handler := NewRentalHandler(rentalSvc, gameSvc)
	router.HandleFunc("/api/v1/rentals", handler.HandleRent).Methods("POST")
	router.HandleFunc("/api/v1/returns", handler.HandleReturn).Methods("POST")
	router.HandleFunc("/api/v1/games/search", handler.HandleSearch).Methods("GET")
}
