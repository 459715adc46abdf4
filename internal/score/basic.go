package score

import (
	"math"

	"github.com/lvgk/csimpact/internal/model"
	"github.com/lvgk/csimpact/internal/rounds"
)

// BasicScore computes the role-specific basic-metrics score: a weighted
// blend of raw per-player ratios and team round aggregates, clamped to
// [0,1]. Distinct from RCS — RCS averages cross-population normalized
// metrics with equal weights, while this blend uses raw ratios with
// hard-coded role weights. Both feed PIV independently.
func BasicScore(stats *model.PlayerRawStats, role model.Role, roundData []model.RoundData) float64 {
	kd := stats.KDRatio()
	team := stats.TeamName
	score := 0.0

	switch role {
	case model.RoleIGL:
		score += rounds.RifleRoundWinRate(roundData, team) * 0.35
		score += fratio(float64(stats.AssistedFlashes), float64(stats.TotalUtilityThrown)) * 0.30
		score += rounds.EcoForceConversion(roundData, team) * 0.21
		score += rounds.FiveVFourConversion(roundData, team) * 0.14

	case model.RoleAWP:
		score += fratio(float64(stats.FirstKills), float64(stats.FirstKills+stats.FirstDeaths)) * 0.26
		score += fratio(float64(stats.AWPKills), float64(stats.Kills)) * 0.19
		score += math.Min(kd, 2) / 2 * 0.15
		weaponSurvival := fratio(float64(stats.Kills-stats.Deaths+stats.Assists), float64(stats.Kills+stats.Assists))
		score += math.Max(0, weaponSurvival) * 0.06
		score += fratio(float64(stats.AssistedFlashes), float64(stats.TotalUtilityThrown)) * 0.12
		score += rounds.FiveVFourConversion(roundData, team) * 0.22

	case model.RoleSpacetaker:
		score += fratio(float64(stats.TFirstKills), float64(stats.TFirstKills+stats.TFirstDeaths)) * 0.35
		score += math.Min(kd, 2) / 2 * 0.25
		score += fratio(float64(stats.TradeKills), float64(stats.Kills)) * 0.20
		score += rounds.FiveVFourConversion(roundData, team) * 0.20

	case model.RoleLurker:
		score += math.Min(kd, 2) / 2 * 0.30
		score += fratio(float64(stats.ThroughSmoke), float64(stats.Kills)) * 0.25
		score += fratio(float64(stats.Kills-stats.TradeKills), float64(stats.Kills)) * 0.25
		score += rounds.EcoForceConversion(roundData, team) * 0.20

	case model.RoleAnchor:
		score += fratio(float64(stats.CTRoundsWon), float64(stats.TotalRoundsWon)) * 0.35
		score += math.Min(kd, 2) / 2 * 0.25
		score += rounds.RifleRoundWinRate(roundData, team) * 0.25
		utilPerRound := fratio(float64(stats.TotalUtilityThrown), float64(stats.TotalRoundsWon))
		score += math.Min(utilPerRound/5, 1) * 0.15

	case model.RoleRotator:
		winRate := fratio(float64(stats.TotalRoundsWon), float64(stats.TotalRoundsWon+(stats.Deaths-stats.TotalRoundsWon)))
		score += winRate * 0.30
		sideBalance := 1 - math.Abs(fratio(float64(stats.CTRoundsWon), float64(stats.TotalRoundsWon))-0.5)*2
		score += sideBalance * 0.25
		score += fratio(float64(stats.Assists), float64(stats.Kills+stats.Assists)) * 0.25
		score += rounds.FiveVFourConversion(roundData, team) * 0.20

	case model.RoleSupport:
		score += fratio(float64(stats.AssistedFlashes), float64(stats.TotalUtilityThrown)) * 0.40
		utilPerRound := fratio(float64(stats.TotalUtilityThrown), float64(stats.TotalRoundsWon))
		score += math.Min(utilPerRound/6, 1) * 0.25
		score += fratio(float64(stats.Assists), float64(stats.Kills+stats.Assists)) * 0.20
		score += rounds.EcoForceConversion(roundData, team) * 0.15

	default:
		score = 0.5
	}

	return math.Max(0, math.Min(1, score))
}
