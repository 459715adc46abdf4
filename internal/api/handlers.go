package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/lvgk/csimpact/internal/model"
	"github.com/lvgk/csimpact/internal/score"
	"github.com/lvgk/csimpact/internal/scout"
	"github.com/lvgk/csimpact/internal/storage"
)

// Handler contains dependencies for HTTP handlers.
type Handler struct {
	db *storage.DB
}

// NewHandler creates a new handler.
func NewHandler(db *storage.DB) *Handler {
	return &Handler{db: db}
}

// rate loads everything from the store and runs the rating pipeline.
// Ratings are population-relative, so they are recomputed per request
// rather than cached against a store that may have grown.
func (h *Handler) rate() (*score.Result, []model.RoundData, error) {
	stats, err := h.db.GetAllPlayerStats()
	if err != nil {
		return nil, nil, err
	}
	rounds, err := h.db.GetAllRounds()
	if err != nil {
		return nil, nil, err
	}
	table, err := h.db.GetAllRoles()
	if err != nil {
		return nil, nil, err
	}
	return score.Rate(stats, table, rounds), rounds, nil
}

// HealthCheck handles health check requests.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "csimpact",
	})
}

// GetPlayers returns all rated players.
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	result, _, err := h.rate()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute ratings", err)
		return
	}
	respondJSON(w, http.StatusOK, result.Players)
}

// GetPlayer returns one rated player by name (case-insensitive).
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	result, _, err := h.rate()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute ratings", err)
		return
	}
	name := mux.Vars(r)["name"]
	if p := findPlayer(result.Players, name); p != nil {
		respondJSON(w, http.StatusOK, p)
		return
	}
	respondError(w, http.StatusNotFound, "Player not found", nil)
}

// GetPlayerScout returns the scout report for one player.
func (h *Handler) GetPlayerScout(w http.ResponseWriter, r *http.Request) {
	result, rounds, err := h.rate()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute ratings", err)
		return
	}
	name := mux.Vars(r)["name"]
	p := findPlayer(result.Players, name)
	if p == nil {
		respondError(w, http.StatusNotFound, "Player not found", nil)
		return
	}
	respondJSON(w, http.StatusOK, scout.Score(p, findTeam(result.Teams, p.Team), result.Players, rounds))
}

// GetTeams returns all teams ranked by TIR.
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	result, _, err := h.rate()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute ratings", err)
		return
	}
	respondJSON(w, http.StatusOK, result.Teams)
}

// GetTeam returns one team by name (case-insensitive).
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	result, _, err := h.rate()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute ratings", err)
		return
	}
	name := mux.Vars(r)["name"]
	if t := findTeam(result.Teams, name); t != nil {
		respondJSON(w, http.StatusOK, t)
		return
	}
	respondError(w, http.StatusNotFound, "Team not found", nil)
}

func findPlayer(players []*model.PlayerWithPIV, name string) *model.PlayerWithPIV {
	for _, p := range players {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

func findTeam(teams []*model.TeamWithTIR, name string) *model.TeamWithTIR {
	for _, t := range teams {
		if strings.EqualFold(t.Name, name) || t.ID == name {
			return t
		}
	}
	return nil
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	json.NewEncoder(w).Encode(response)
}
