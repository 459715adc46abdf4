package scout

import (
	"math"
	"testing"

	"github.com/lvgk/csimpact/internal/model"
)

func scoutPlayer(name, team string, role model.Role, piv float64, roundsWon int) *model.PlayerWithPIV {
	return &model.PlayerWithPIV{
		Name: name,
		Team: team,
		Role: role,
		PIV:  piv,
		RawStats: &model.PlayerRawStats{
			UserName:       name,
			TeamName:       team,
			Kills:          200,
			Deaths:         180,
			TotalRoundsWon: roundsWon,
			TRoundsWon:     roundsWon / 2,
			CTRoundsWon:    roundsWon - roundsWon/2,
		},
	}
}

func TestScoreLowSampleUsesMedianPIV(t *testing.T) {
	// Rounds estimate is 2x rounds won; 40 won -> 80 rounds, under the
	// 200-round threshold.
	p := scoutPlayer("rookie", "Alpha", model.RoleAWP, 0.9, 40)
	all := []*model.PlayerWithPIV{
		p,
		scoutPlayer("a", "Alpha", model.RoleSupport, 0.8, 300),
		scoutPlayer("b", "Alpha", model.RoleLurker, 1.0, 300),
		scoutPlayer("c", "Beta", model.RoleAnchor, 1.2, 300),
	}

	rep := Score(p, nil, all, nil)
	if !rep.LowSample {
		t.Fatal("expected low-sample flag")
	}
	// Median of {0.8, 0.9, 1.0, 1.2} is 0.95, scaled to 95.
	if math.Abs(rep.RoleScore-95) > 1e-9 {
		t.Fatalf("role score = %v, want 95", rep.RoleScore)
	}
}

func TestScoreNormalSample(t *testing.T) {
	p := scoutPlayer("vet", "Alpha", model.RoleAnchor, 1.1, 300)
	all := []*model.PlayerWithPIV{
		p,
		scoutPlayer("other", "Beta", model.RoleAnchor, 0.9, 250),
	}

	rep := Score(p, nil, all, nil)
	if rep.LowSample {
		t.Fatal("unexpected low-sample flag")
	}
	if rep.RoleScore < 0 || rep.RoleScore > 100 {
		t.Fatalf("role score out of range: %v", rep.RoleScore)
	}
	if rep.Overall < 0 || rep.Overall > 100 {
		t.Fatalf("overall out of range: %v", rep.Overall)
	}
}

func TestSynergyUsesRoleComplement(t *testing.T) {
	igl := scoutPlayer("caller", "Alpha", model.RoleIGL, 1.0, 300)
	awp := scoutPlayer("sniper", "Alpha", model.RoleAWP, 1.0, 300)
	lurk := scoutPlayer("ghost", "Alpha", model.RoleLurker, 1.0, 300)

	team := &model.TeamWithTIR{
		Name:    "Alpha",
		Players: []*model.PlayerWithPIV{igl, awp, lurk},
		AvgPIV:  1.0,
	}

	// AWP complements IGL (85) better than Lurker does (70), so the AWP's
	// synergy against this roster should be at least the lurker's.
	sAWP := synergy(awp, team)
	sLurk := synergy(lurk, team)
	if sAWP < sLurk {
		t.Fatalf("awp synergy %v < lurker synergy %v", sAWP, sLurk)
	}
}

func TestRiskDecreasesWithSample(t *testing.T) {
	small := scoutPlayer("s", "A", model.RoleSupport, 1, 50)
	large := scoutPlayer("l", "A", model.RoleSupport, 1, 400)
	if risk(small.RawStats) <= risk(large.RawStats) {
		t.Fatal("risk should shrink as the sample grows")
	}
}

func TestMedianPIVEvenAndOdd(t *testing.T) {
	odd := []*model.PlayerWithPIV{
		{PIV: 3}, {PIV: 1}, {PIV: 2},
	}
	if got := medianPIV(odd); got != 2 {
		t.Fatalf("odd median = %v, want 2", got)
	}
	even := []*model.PlayerWithPIV{
		{PIV: 4}, {PIV: 1}, {PIV: 2}, {PIV: 3},
	}
	if got := medianPIV(even); got != 2.5 {
		t.Fatalf("even median = %v, want 2.5", got)
	}
	if got := medianPIV(nil); got != 0 {
		t.Fatalf("empty median = %v, want 0", got)
	}
}
