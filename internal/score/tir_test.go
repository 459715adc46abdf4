package score

import (
	"math"
	"testing"

	"github.com/lvgk/csimpact/internal/model"
)

func rosterPlayer(name, team string, role model.Role, piv, kd float64, util int) *model.PlayerWithPIV {
	return &model.PlayerWithPIV{
		Name: name,
		Team: team,
		Role: role,
		PIV:  piv,
		RawStats: &model.PlayerRawStats{
			UserName:           name,
			TeamName:           team,
			KD:                 kd,
			TotalUtilityThrown: util,
		},
	}
}

func TestTeamSynergyComponents(t *testing.T) {
	// Five distinct roles, identical K/D, identical utility: diversity
	// 5/7, cohesion 1, balance 1.
	players := []*model.PlayerWithPIV{
		rosterPlayer("a", "X", model.RoleIGL, 1, 1.0, 100),
		rosterPlayer("b", "X", model.RoleAWP, 1, 1.0, 100),
		rosterPlayer("c", "X", model.RoleSpacetaker, 1, 1.0, 100),
		rosterPlayer("d", "X", model.RoleLurker, 1, 1.0, 100),
		rosterPlayer("e", "X", model.RoleSupport, 1, 1.0, 100),
	}
	want := (5.0/7.0)*SynergyRoleDiversityWeight + 1*SynergyKDVarianceWeight + 1*SynergyUtilityWeight
	if got := TeamSynergy(players); math.Abs(got-want) > 1e-12 {
		t.Errorf("synergy = %v, want %v", got, want)
	}
}

func TestTeamSynergyPenalizesVarianceAndImbalance(t *testing.T) {
	uniform := []*model.PlayerWithPIV{
		rosterPlayer("a", "X", model.RoleAWP, 1, 1.0, 100),
		rosterPlayer("b", "X", model.RoleIGL, 1, 1.0, 100),
	}
	skewed := []*model.PlayerWithPIV{
		rosterPlayer("a", "X", model.RoleAWP, 1, 2.0, 400),
		rosterPlayer("b", "X", model.RoleIGL, 1, 0.5, 10),
	}
	if TeamSynergy(skewed) >= TeamSynergy(uniform) {
		t.Error("skewed roster should score lower synergy")
	}
}

func TestTeamSynergyEmpty(t *testing.T) {
	if got := TeamSynergy(nil); got != 0 {
		t.Errorf("empty roster synergy = %v, want 0", got)
	}
}

func TestComputeTeamsGroupingAndTIR(t *testing.T) {
	players := []*model.PlayerWithPIV{
		rosterPlayer("a1", "Alpha", model.RoleAWP, 1.2, 1.1, 100),
		rosterPlayer("a2", "Alpha", model.RoleIGL, 0.8, 0.9, 100),
		rosterPlayer("b1", "Beta", model.RoleSupport, 0.5, 1.0, 100),
	}
	teams := ComputeTeams(players)
	if len(teams) != 2 {
		t.Fatalf("got %d teams, want 2", len(teams))
	}

	alpha := teams[0]
	if alpha.Name != "Alpha" {
		t.Fatalf("expected Alpha ranked first, got %s", alpha.Name)
	}
	if alpha.ID != "team-alpha" {
		t.Errorf("id = %q, want team-alpha", alpha.ID)
	}
	if alpha.TopPlayerName != "a1" || alpha.TopPlayerPIV != 1.2 {
		t.Errorf("top player = %s/%v", alpha.TopPlayerName, alpha.TopPlayerPIV)
	}
	if math.Abs(alpha.AvgPIV-1.0) > 1e-12 {
		t.Errorf("avg piv = %v, want 1.0", alpha.AvgPIV)
	}

	// Partial roster scales TIR by size/5.
	wantTIR := alpha.AvgPIV * (2.0 / 5.0) * (1 + alpha.Synergy)
	if math.Abs(alpha.TIR-wantTIR) > 1e-12 {
		t.Errorf("tir = %v, want %v", alpha.TIR, wantTIR)
	}
}

func TestComputeTeamsFullRosterNotOverScaled(t *testing.T) {
	var players []*model.PlayerWithPIV
	for _, n := range []string{"p1", "p2", "p3", "p4", "p5", "p6"} {
		players = append(players, rosterPlayer(n, "Six", model.RoleSupport, 1, 1, 100))
	}
	teams := ComputeTeams(players)
	// Size factor caps at 1 for rosters of 5+.
	want := teams[0].AvgPIV * 1 * (1 + teams[0].Synergy)
	if math.Abs(teams[0].TIR-want) > 1e-12 {
		t.Errorf("tir = %v, want %v", teams[0].TIR, want)
	}
}

func TestComputeTeamsTieBreakByName(t *testing.T) {
	players := []*model.PlayerWithPIV{
		rosterPlayer("z", "Zulu", model.RoleSupport, 1, 1, 100),
		rosterPlayer("a", "Alpha", model.RoleSupport, 1, 1, 100),
	}
	teams := ComputeTeams(players)
	if teams[0].TIR != teams[1].TIR {
		t.Fatalf("expected equal TIRs, got %v and %v", teams[0].TIR, teams[1].TIR)
	}
	if teams[0].Name != "Alpha" {
		t.Errorf("tie should order by name: got %s first", teams[0].Name)
	}
}
