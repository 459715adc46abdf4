package score

import (
	"github.com/lvgk/csimpact/internal/metrics"
	"github.com/lvgk/csimpact/internal/model"
	"github.com/lvgk/csimpact/internal/roles"
)

// Result is the output contract of an analysis run: all scored players
// and the TIR-ranked teams.
type Result struct {
	Players []*model.PlayerWithPIV `json:"players"`
	Teams   []*model.TeamWithTIR   `json:"teams"`
}

// playerEval carries everything about one player that does not depend on
// OSM, so both passes of the resolution reuse it.
type playerEval struct {
	stats  *model.PlayerRawStats
	role   model.Role
	tRole  model.Role
	ctRole model.Role
	isIGL  bool

	tRaw  map[string]float64
	ctRaw map[string]float64

	tNorm       map[string]float64
	ctNorm      map[string]float64
	overallNorm map[string]float64

	tRCS, ctRCS, overallRCS float64
	icf                     model.ICFMetric
	tSC, ctSC, iglSC        model.SCMetric
	tBasic, ctBasic         float64
	iglBasic                float64
}

// Rate runs the full scoring pipeline over immutable inputs and returns
// freshly built players and teams.
//
// The OSM↔TIR circularity is resolved in two passes: pass 1 scores every
// player with a neutral OSM of 1.0 and ranks the resulting provisional
// teams; pass 2 rescores everyone with the OSM derived from that
// ranking and builds the final teams. Pass 2 is never fed back into the
// ranking — a single two-pass resolution is the contract, not iteration
// to a fixed point.
func Rate(stats []*model.PlayerRawStats, table *roles.Table, roundData []model.RoundData) *Result {
	evals := make([]*playerEval, 0, len(stats))

	// Phase 1: resolve roles and evaluate raw metrics for every player.
	tRoles := make(map[model.Role]bool)
	ctRoles := make(map[model.Role]bool)
	for _, s := range stats {
		e := &playerEval{stats: s}

		if info, ok := table.Resolve(s.UserName); ok {
			e.tRole, e.ctRole, e.isIGL = info.TRole, info.CTRole, info.IsIGL
			e.role = roles.PrimaryRole(e.tRole, e.ctRole, e.isIGL)
		} else {
			e.role = roles.AssignDefaultRole(s)
			e.tRole, e.ctRole = e.role, e.role
		}
		tRoles[e.tRole] = true
		ctRoles[e.ctRole] = true

		e.tRaw = metrics.EvaluateTSideMetrics(s, e.tRole)
		e.ctRaw = metrics.EvaluateCTSideMetrics(s, e.ctRole)

		evals = append(evals, e)
	}

	// Collect the normalization pools. Every player contributes to the
	// pool of every role in use, whether or not it is their own role:
	// a lone AWPer's opening duels are still measured against how the
	// whole population would score as AWPers, not against a pool of one.
	pop := make(metrics.Population)
	for role := range tRoles {
		prefix := poolPrefix(model.SideT, role)
		for _, s := range stats {
			pop.AddAll(prefix, metrics.EvaluateTSideMetrics(s, role))
		}
	}
	for role := range ctRoles {
		prefix := poolPrefix(model.SideCT, role)
		for _, s := range stats {
			pop.AddAll(prefix, metrics.EvaluateCTSideMetrics(s, role))
		}
	}

	// Phase 2: normalize against the full pools and compute every
	// OSM-independent component.
	for _, e := range evals {
		e.tNorm = pop.NormalizeAll(poolPrefix(model.SideT, e.tRole), e.tRaw)
		e.ctNorm = pop.NormalizeAll(poolPrefix(model.SideCT, e.ctRole), e.ctRaw)

		e.overallNorm = make(map[string]float64, len(e.tNorm)+len(e.ctNorm))
		for k, v := range e.tNorm {
			e.overallNorm[k] = v
		}
		for k, v := range e.ctNorm {
			e.overallNorm[k] = v
		}

		e.tRCS = RCS(e.tNorm)
		e.ctRCS = RCS(e.ctNorm)
		e.overallRCS = RCS(e.overallNorm)

		e.icf = ICF(e.stats, e.isIGL)
		e.tSC = SC(e.stats, e.tRole)
		e.ctSC = SC(e.stats, e.ctRole)
		e.tBasic = BasicScore(e.stats, e.tRole, roundData)
		e.ctBasic = BasicScore(e.stats, e.ctRole, roundData)
		if e.isIGL {
			e.iglSC = SC(e.stats, model.RoleIGL)
			e.iglBasic = BasicScore(e.stats, model.RoleIGL, roundData)
		}
	}

	// Pass 1: provisional scores with neutral OSM, provisional ranking.
	provisional := make([]*model.PlayerWithPIV, len(evals))
	for i, e := range evals {
		provisional[i] = buildPlayer(e, MaxOSM)
	}
	osmByTeam := OSMByTeam(ComputeTeams(provisional))

	// Pass 2: real scores with rank-derived OSM, final ranking.
	players := make([]*model.PlayerWithPIV, len(evals))
	for i, e := range evals {
		players[i] = buildPlayer(e, OSMOrDefault(osmByTeam, e.stats.TeamName))
	}

	return &Result{
		Players: players,
		Teams:   ComputeTeams(players),
	}
}

// buildPlayer assembles a PlayerWithPIV for the given OSM. Side PIVs are
// computed independently; the overall PIV blends them 50/50, or
// 50 IGL / 25 CT / 25 T for in-game leaders.
func buildPlayer(e *playerEval, osm float64) *model.PlayerWithPIV {
	tPIV := PIV(e.tRCS, e.icf.Value, e.tSC.Value, osm, e.tBasic, e.tRole)
	ctPIV := PIV(e.ctRCS, e.icf.Value, e.ctSC.Value, osm, e.ctBasic, e.ctRole)

	var piv float64
	var overallSC model.SCMetric
	if e.isIGL {
		iglPIV := PIV(e.overallRCS, e.icf.Value, e.iglSC.Value, osm, e.iglBasic, model.RoleIGL)
		piv = iglPIV*0.5 + ctPIV*0.25 + tPIV*0.25
		overallSC = e.iglSC
	} else {
		piv = ctPIV*0.5 + tPIV*0.5
		switch e.role {
		case e.tRole:
			overallSC = e.tSC
		default:
			overallSC = e.ctSC
		}
	}

	return &model.PlayerWithPIV{
		ID:     e.stats.SteamID,
		Name:   e.stats.UserName,
		Team:   e.stats.TeamName,
		Role:   e.role,
		TRole:  e.tRole,
		CTRole: e.ctRole,
		IsIGL:  e.isIGL,
		KD:     e.stats.KDRatio(),
		PIV:    piv,
		TPIV:   tPIV,
		CTPIV:  ctPIV,

		RawStats: e.stats,
		Metrics: &model.PlayerMetrics{
			Role:              e.role,
			RoleMetrics:       mergeRaw(e.tRaw, e.ctRaw),
			NormalizedMetrics: e.overallNorm,
			RCS:               model.RCSMetric{Value: e.overallRCS, Metrics: e.overallNorm},
			ICF:               e.icf,
			SC:                overallSC,
			OSM:               osm,
			PIV:               piv,
			Side:              model.SideOverall,
		},
		TMetrics: &model.PlayerMetrics{
			Role:              e.tRole,
			RoleMetrics:       e.tRaw,
			NormalizedMetrics: e.tNorm,
			RCS:               model.RCSMetric{Value: e.tRCS, Metrics: e.tNorm},
			ICF:               e.icf,
			SC:                e.tSC,
			OSM:               osm,
			PIV:               tPIV,
			Side:              model.SideT,
		},
		CTMetrics: &model.PlayerMetrics{
			Role:              e.ctRole,
			RoleMetrics:       e.ctRaw,
			NormalizedMetrics: e.ctNorm,
			RCS:               model.RCSMetric{Value: e.ctRCS, Metrics: e.ctNorm},
			ICF:               e.icf,
			SC:                e.ctSC,
			OSM:               osm,
			PIV:               ctPIV,
			Side:              model.SideCT,
		},
	}
}

// poolPrefix keys a normalization pool by side and evaluating role, so
// same-named metrics from different sides or roles never share a pool.
func poolPrefix(side model.Side, role model.Role) string {
	return string(side) + "_" + role.String() + "_"
}

func mergeRaw(t, ct map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(t)+len(ct))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range ct {
		out[k] = v
	}
	return out
}
