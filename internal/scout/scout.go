// Package scout implements the roster-scouting score: a parallel,
// lower-fidelity pipeline over the same player population. It shares
// metric-extraction patterns with the main evaluator but uses its own
// formulas, and several of its inputs are fixed stand-ins pending real
// data.
package scout

import (
	"math"
	"sort"

	"github.com/lvgk/csimpact/internal/model"
	"github.com/lvgk/csimpact/internal/rounds"
)

// Placeholder constants for inputs that are not yet measurable from box
// scores. These are deliberate stand-ins, not estimates; replacing them
// with real computations is pending demo-level data.
const (
	PlaceholderMapFactor  = 50.0 // per-map performance split not available
	PlaceholderMomentum   = 50.0 // recent-form streak data not available
	PlaceholderTiltProxy  = 50.0 // tilt/discipline signal not available
	PlaceholderSaveRate   = 0.4  // save/rebuy discipline not available
	PlaceholderClutchRate = 0.4  // clutch-entry counts not available
)

// MinSampleRounds is the rounds-played estimate below which a computed
// role score is replaced by the population median, suppressing
// small-sample outliers.
const MinSampleRounds = 200

// Component blend weights.
const (
	synergyRoleFitWeight   = 0.45
	synergyMapWeight       = 0.30
	synergyChemistryWeight = 0.15
	synergyMomentumWeight  = 0.10

	riskLowSampleWeight = 0.60
	riskTiltWeight      = 0.40

	overallRoleWeight    = 0.55
	overallSynergyWeight = 0.35
	overallRiskWeight    = 0.10
)

// roleComplement scores how well two roles work together, 0–100.
var roleComplement = map[model.Role]map[model.Role]float64{
	model.RoleIGL: {
		model.RoleAWP: 85, model.RoleSupport: 75, model.RoleSpacetaker: 80,
		model.RoleLurker: 70, model.RoleAnchor: 65, model.RoleRotator: 60,
	},
	model.RoleAWP: {
		model.RoleIGL: 85, model.RoleSupport: 90, model.RoleSpacetaker: 75,
		model.RoleLurker: 60, model.RoleAnchor: 80, model.RoleRotator: 70,
	},
	model.RoleSupport: {
		model.RoleIGL: 75, model.RoleAWP: 90, model.RoleSpacetaker: 95,
		model.RoleLurker: 65, model.RoleAnchor: 60, model.RoleRotator: 65,
	},
	model.RoleSpacetaker: {
		model.RoleIGL: 80, model.RoleAWP: 75, model.RoleSupport: 95,
		model.RoleLurker: 85, model.RoleAnchor: 55, model.RoleRotator: 60,
	},
	model.RoleLurker: {
		model.RoleIGL: 70, model.RoleAWP: 60, model.RoleSupport: 65,
		model.RoleSpacetaker: 85, model.RoleAnchor: 50, model.RoleRotator: 55,
	},
	model.RoleAnchor: {
		model.RoleIGL: 65, model.RoleAWP: 80, model.RoleSupport: 60,
		model.RoleSpacetaker: 55, model.RoleLurker: 50, model.RoleRotator: 90,
	},
	model.RoleRotator: {
		model.RoleIGL: 60, model.RoleAWP: 70, model.RoleSupport: 65,
		model.RoleSpacetaker: 60, model.RoleLurker: 55, model.RoleAnchor: 90,
	},
}

// Report is the scout evaluation of one player, all components 0–100.
type Report struct {
	Name      string  `json:"name"`
	Team      string  `json:"team"`
	Role      string  `json:"role"`
	Overall   float64 `json:"overall"`
	RoleScore float64 `json:"roleScore"`
	Synergy   float64 `json:"synergy"`
	Risk      float64 `json:"risk"`

	// LowSample marks role scores replaced by the population median.
	LowSample bool `json:"lowSample"`
}

// Score evaluates one player against a team context. The role score is
// normalized against the same-role population; players below the sample
// threshold get the population-median PIV (×100) instead.
func Score(player *model.PlayerWithPIV, team *model.TeamWithTIR, all []*model.PlayerWithPIV, roundData []model.RoundData) Report {
	rep := Report{
		Name: player.Name,
		Team: player.Team,
		Role: player.Role.String(),
	}

	if estimatedRounds(player.RawStats) < MinSampleRounds {
		rep.RoleScore = medianPIV(all) * 100
		rep.LowSample = true
	} else {
		rep.RoleScore = normalizedRoleScore(player, all, roundData)
	}

	rep.Synergy = synergy(player, team)
	rep.Risk = risk(player.RawStats)
	rep.Overall = clamp100(rep.RoleScore*overallRoleWeight +
		rep.Synergy*overallSynergyWeight -
		rep.Risk*overallRiskWeight)
	return rep
}

// estimatedRounds approximates rounds played from rounds won, assuming
// an even win rate; box scores do not carry rounds played directly.
func estimatedRounds(stats *model.PlayerRawStats) int {
	return stats.TotalRoundsWon * 2
}

// rawRoleScore is the unnormalized role-fit estimate in [0,1]. Each role
// blends the ratios that proxy its job; unmeasurable terms use the named
// placeholder constants.
func rawRoleScore(stats *model.PlayerRawStats, role model.Role, roundData []model.RoundData) float64 {
	kd := stats.KDRatio()
	team := stats.TeamName

	switch role {
	case model.RoleAWP:
		opening := fr(float64(stats.FirstKills), float64(stats.FirstKills+stats.FirstDeaths))
		awpShare := fr(float64(stats.AWPKills), float64(stats.Kills))
		return opening*0.40 + awpShare*0.35 + PlaceholderSaveRate*0.25

	case model.RoleIGL:
		return rounds.RifleRoundWinRate(roundData, team)*0.45 +
			rounds.EcoForceConversion(roundData, team)*0.30 +
			fr(float64(stats.AssistedFlashes), float64(stats.TotalUtilityThrown))*0.25

	case model.RoleSpacetaker:
		entry := fr(float64(stats.TFirstKills), float64(stats.TFirstKills+stats.TFirstDeaths))
		return entry*0.55 + math.Min(kd, 2)/2*0.45

	case model.RoleLurker:
		solo := fr(float64(stats.Kills-stats.TradeKills), float64(stats.Kills))
		return math.Min(kd, 2)/2*0.40 + solo*0.35 + PlaceholderClutchRate*0.25

	case model.RoleAnchor:
		ctHold := fr(float64(stats.CTRoundsWon), float64(stats.TotalRoundsWon))
		return ctHold*0.55 + math.Min(kd, 2)/2*0.45

	case model.RoleRotator:
		ctHold := fr(float64(stats.CTRoundsWon), float64(stats.TotalRoundsWon))
		assistRate := fr(float64(stats.Assists), float64(stats.Kills+stats.Assists))
		return ctHold*0.45 + assistRate*0.30 + rounds.FiveVFourConversion(roundData, team)*0.25

	case model.RoleSupport:
		flashAssist := fr(float64(stats.AssistedFlashes), float64(stats.TotalUtilityThrown))
		utilPerRound := fr(float64(stats.TotalUtilityThrown), float64(stats.TotalRoundsWon))
		return flashAssist*0.50 + math.Min(utilPerRound/6, 1)*0.30 +
			rounds.EcoForceConversion(roundData, team)*0.20

	default:
		return 0.5
	}
}

// normalizedRoleScore min-max rescales the player's raw role score
// against the population of players sharing the same primary role,
// scaled to 0–100. A one-player (or tied) pool scores 100.
func normalizedRoleScore(player *model.PlayerWithPIV, all []*model.PlayerWithPIV, roundData []model.RoundData) float64 {
	own := rawRoleScore(player.RawStats, player.Role, roundData)

	var pool []float64
	for _, p := range all {
		if p.Role == player.Role {
			pool = append(pool, rawRoleScore(p.RawStats, p.Role, roundData))
		}
	}
	if len(pool) == 0 {
		return own * 100
	}

	min, max := pool[0], pool[0]
	for _, v := range pool[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		return 100
	}
	return (own - min) / (max - min) * 100
}

// synergy blends role fit against the team's roster with the map,
// chemistry, and momentum components.
func synergy(player *model.PlayerWithPIV, team *model.TeamWithTIR) float64 {
	roleFit := 60.0 // neutral default for an empty team context
	chemistry := 50.0

	if team != nil && len(team.Players) > 0 {
		var total float64
		var count int
		for _, mate := range team.Players {
			if mate.Name == player.Name {
				continue
			}
			total += complementScore(player.Role, mate.Role)
			count++
		}
		if count > 0 {
			roleFit = total / float64(count)
		}

		if team.AvgPIV > 0 {
			pivRatio := player.PIV / team.AvgPIV
			chemistry = 50 * math.Min(1.3, math.Max(0.7, pivRatio))
		}
	}

	return clamp100(roleFit*synergyRoleFitWeight +
		PlaceholderMapFactor*synergyMapWeight +
		chemistry*synergyChemistryWeight +
		PlaceholderMomentum*synergyMomentumWeight)
}

// risk blends small-sample risk with the fixed tilt stand-in.
func risk(stats *model.PlayerRawStats) float64 {
	sample := float64(estimatedRounds(stats))
	lowSampleRisk := (1 - math.Min(sample/500, 1)) * 100
	return clamp100(lowSampleRisk*riskLowSampleWeight + PlaceholderTiltProxy*riskTiltWeight)
}

func complementScore(a, b model.Role) float64 {
	if row, ok := roleComplement[a]; ok {
		if v, ok := row[b]; ok {
			return v
		}
	}
	return 50
}

// medianPIV is the median of all players' overall PIVs.
func medianPIV(all []*model.PlayerWithPIV) float64 {
	if len(all) == 0 {
		return 0
	}
	pivs := make([]float64, len(all))
	for i, p := range all {
		pivs[i] = p.PIV
	}
	sort.Float64s(pivs)
	mid := len(pivs) / 2
	if len(pivs)%2 == 0 {
		return (pivs[mid-1] + pivs[mid]) / 2
	}
	return pivs[mid]
}

func clamp100(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func fr(num, den float64) float64 {
	return num / math.Max(den, 1)
}
