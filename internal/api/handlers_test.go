package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/lvgk/csimpact/internal/model"
	"github.com/lvgk/csimpact/internal/roles"
	"github.com/lvgk/csimpact/internal/storage"
)

func testHandler(t *testing.T) *Handler {
	t.Helper()
	db, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	stats := []*model.PlayerRawStats{
		{SteamID: "1", UserName: "alpha", TeamName: "Reds", Kills: 300, Deaths: 250, TotalRoundsWon: 150, TRoundsWon: 75, CTRoundsWon: 75},
		{SteamID: "2", UserName: "bravo", TeamName: "Reds", Kills: 250, Deaths: 260, TotalRoundsWon: 150, TRoundsWon: 75, CTRoundsWon: 75},
		{SteamID: "3", UserName: "charlie", TeamName: "Blues", Kills: 280, Deaths: 240, TotalRoundsWon: 140, TRoundsWon: 70, CTRoundsWon: 70},
	}
	if err := db.InsertPlayerStats(stats); err != nil {
		t.Fatalf("InsertPlayerStats: %v", err)
	}

	table := roles.NewTable()
	table.Add(&model.PlayerRoleInfo{Player: "alpha", Team: "Reds", TRole: model.RoleAWP, CTRole: model.RoleAWP})
	if err := db.InsertRoles(table); err != nil {
		t.Fatalf("InsertRoles: %v", err)
	}

	return NewHandler(db)
}

func TestHealthCheck(t *testing.T) {
	h := testHandler(t)
	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %q", body["status"])
	}
}

func TestGetPlayers(t *testing.T) {
	h := testHandler(t)
	rec := httptest.NewRecorder()
	h.GetPlayers(rec, httptest.NewRequest(http.MethodGet, "/api/v1/players", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var players []*model.PlayerWithPIV
	if err := json.NewDecoder(rec.Body).Decode(&players); err != nil {
		t.Fatal(err)
	}
	if len(players) != 3 {
		t.Fatalf("got %d players, want 3", len(players))
	}
}

func TestGetPlayerByNameCaseInsensitive(t *testing.T) {
	h := testHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/players/ALPHA", nil)
	req = mux.SetURLVars(req, map[string]string{"name": "ALPHA"})
	rec := httptest.NewRecorder()
	h.GetPlayer(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var p model.PlayerWithPIV
	if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
		t.Fatal(err)
	}
	if p.Name != "alpha" || p.Role != model.RoleAWP {
		t.Errorf("unexpected player: %s role %s", p.Name, p.Role)
	}
}

func TestGetPlayerNotFound(t *testing.T) {
	h := testHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/players/nobody", nil)
	req = mux.SetURLVars(req, map[string]string{"name": "nobody"})
	rec := httptest.NewRecorder()
	h.GetPlayer(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetTeamsRankedByTIR(t *testing.T) {
	h := testHandler(t)
	rec := httptest.NewRecorder()
	h.GetTeams(rec, httptest.NewRequest(http.MethodGet, "/api/v1/teams", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var teams []*model.TeamWithTIR
	if err := json.NewDecoder(rec.Body).Decode(&teams); err != nil {
		t.Fatal(err)
	}
	if len(teams) != 2 {
		t.Fatalf("got %d teams, want 2", len(teams))
	}
	if teams[0].TIR < teams[1].TIR {
		t.Errorf("teams not sorted by TIR: %v < %v", teams[0].TIR, teams[1].TIR)
	}
}

func TestGetPlayerScout(t *testing.T) {
	h := testHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/players/alpha/scout", nil)
	req = mux.SetURLVars(req, map[string]string{"name": "alpha"})
	rec := httptest.NewRecorder()
	h.GetPlayerScout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["name"] != "alpha" {
		t.Errorf("scout name = %v", body["name"])
	}
}
