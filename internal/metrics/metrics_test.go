package metrics

import (
	"math"
	"testing"

	"github.com/lvgk/csimpact/internal/model"
)

func TestRatioGuardsZeroDenominator(t *testing.T) {
	if got := ratio(5, 0); got != 5 {
		t.Errorf("ratio(5, 0) = %v, want 5", got)
	}
	if got := ratio(0, 0); got != 0 {
		t.Errorf("ratio(0, 0) = %v, want 0", got)
	}
	if got := ratio(3, 6); got != 0.5 {
		t.Errorf("ratio(3, 6) = %v, want 0.5", got)
	}
}

func TestEvaluateTSideMetricsAWP(t *testing.T) {
	stats := &model.PlayerRawStats{
		Kills: 100, AWPKills: 40, ThroughSmoke: 5,
		TFirstKills: 30, TFirstDeaths: 10,
		AssistedFlashes: 8, TotalUtilityThrown: 80,
	}
	m := EvaluateTSideMetrics(stats, model.RoleAWP)

	if got := m["Opening Pick Success Rate"]; got != 0.75 {
		t.Errorf("opening pick rate = %v, want 0.75", got)
	}
	if got := m["Multi Kill Conversion"]; got != 0.4 {
		t.Errorf("awp share = %v, want 0.4", got)
	}
	if got := m["AWPer Flash Assistance"]; got != 0.1 {
		t.Errorf("flash assistance = %v, want 0.1", got)
	}
}

func TestEvaluateMetricsNeverInfOrNaN(t *testing.T) {
	// A player with all-zero stats must still produce finite metrics.
	empty := &model.PlayerRawStats{}
	for _, role := range model.AllRoles {
		for _, side := range []model.Side{model.SideT, model.SideCT} {
			for name, v := range EvaluateSideMetrics(empty, role, side) {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Errorf("%s/%s %q = %v", role, side, name, v)
				}
			}
		}
	}
}

func TestEvaluateSideMetricsDispatch(t *testing.T) {
	stats := &model.PlayerRawStats{Kills: 50, TotalRoundsWon: 20, TRoundsWon: 12, CTRoundsWon: 8}
	tm := EvaluateSideMetrics(stats, model.RoleIGL, model.SideT)
	ctm := EvaluateSideMetrics(stats, model.RoleIGL, model.SideCT)
	if _, ok := tm["T-Side Round Win Rate"]; !ok {
		t.Error("T dispatch missing T-side metric")
	}
	if _, ok := ctm["CT-Side Round Win Rate"]; !ok {
		t.Error("CT dispatch missing CT-side metric")
	}
}

func TestPopulationNormalize(t *testing.T) {
	pop := Population{}
	pop.Add("m", 2)
	pop.Add("m", 4)
	pop.Add("m", 10)

	if got := pop.Normalize("m", 2); got != 0 {
		t.Errorf("min normalizes to %v, want 0", got)
	}
	if got := pop.Normalize("m", 10); got != 1 {
		t.Errorf("max normalizes to %v, want 1", got)
	}
	if got := pop.Normalize("m", 4); got != 0.25 {
		t.Errorf("mid normalizes to %v, want 0.25", got)
	}
}

func TestPopulationNormalizeDegeneratePools(t *testing.T) {
	pop := Population{}
	// Empty pool.
	if got := pop.Normalize("missing", 3); got != 1 {
		t.Errorf("empty pool = %v, want 1", got)
	}
	// All-equal pool.
	pop.Add("flat", 5)
	pop.Add("flat", 5)
	if got := pop.Normalize("flat", 5); got != 1 {
		t.Errorf("flat pool = %v, want 1", got)
	}
	// Single-entry pool.
	pop.Add("solo", 7)
	if got := pop.Normalize("solo", 7); got != 1 {
		t.Errorf("single pool = %v, want 1", got)
	}
}

func TestPopulationPrefixesKeepSidesSeparate(t *testing.T) {
	pop := Population{}
	pop.AddAll("T_", map[string]float64{"rate": 0.2})
	pop.AddAll("T_", map[string]float64{"rate": 0.8})
	pop.AddAll("CT_", map[string]float64{"rate": 0.5})

	norm := pop.NormalizeAll("T_", map[string]float64{"rate": 0.8})
	if norm["rate"] != 1 {
		t.Errorf("T pool max = %v, want 1", norm["rate"])
	}
	// CT pool has one entry, so it normalizes to 1 independently.
	ctNorm := pop.NormalizeAll("CT_", map[string]float64{"rate": 0.5})
	if ctNorm["rate"] != 1 {
		t.Errorf("CT single pool = %v, want 1", ctNorm["rate"])
	}
}
