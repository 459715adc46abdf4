// Package metrics computes role-conditioned ratio metrics from raw box
// scores and normalizes them across the player population.
package metrics

import (
	"math"

	"github.com/lvgk/csimpact/internal/model"
)

// ratio divides with the denominator floored at 1, so a zero denominator
// yields the numerator instead of NaN/Inf. Every ratio metric in the
// pipeline uses this convention; downstream normalization depends on the
// values staying finite.
func ratio(num, den float64) float64 {
	return num / math.Max(den, 1)
}

func iratio(num, den int) float64 {
	return ratio(float64(num), float64(den))
}

// EvaluateSideMetrics computes the named metric set for a role in the
// given side context. Pure function of (stats, role, side).
func EvaluateSideMetrics(stats *model.PlayerRawStats, role model.Role, side model.Side) map[string]float64 {
	if side == model.SideCT {
		return EvaluateCTSideMetrics(stats, role)
	}
	return EvaluateTSideMetrics(stats, role)
}

// EvaluateTSideMetrics computes the T-side metric set for a role. Each
// role yields a fixed set of named metrics.
func EvaluateTSideMetrics(stats *model.PlayerRawStats, role model.Role) map[string]float64 {
	m := make(map[string]float64)

	switch role {
	case model.RoleIGL:
		m["T-Side Round Win Rate"] = iratio(stats.TRoundsWon, stats.TotalRoundsWon)
		m["T-Side Tactical Efficiency"] = iratio(stats.TFirstKills, stats.TFirstKills+stats.TFirstDeaths)
		m["T-Side Utility Coordination"] = iratio(stats.TFlashesThrown, stats.FlashesThrown)

	case model.RoleAWP:
		m["Opening Pick Success Rate"] = iratio(stats.TFirstKills, stats.TFirstKills+stats.TFirstDeaths)
		m["Multi Kill Conversion"] = iratio(stats.AWPKills, stats.Kills)
		m["AWPer Flash Assistance"] = iratio(stats.AssistedFlashes, stats.TotalUtilityThrown)
		m["Utility Punish Rate"] = iratio(stats.ThroughSmoke, stats.Kills)

	case model.RoleSpacetaker:
		m["Entry Success Rate"] = iratio(stats.TFirstKills, stats.TFirstKills+stats.TFirstDeaths)
		m["Trade Setup Efficiency"] = iratio(stats.TradeKills, stats.Kills)
		m["T-Side Impact Rating"] = iratio(stats.TFirstKills*2+stats.Kills, stats.TRoundsWon*5)

	case model.RoleLurker:
		m["Solo Kill Rate"] = iratio(stats.Kills-stats.TradeKills, stats.Kills)
		m["Information Gathering"] = iratio(stats.ThroughSmoke, stats.Kills)
		m["Late Round Impact"] = stats.KDRatio() // proxy for clutch situations

	case model.RoleSupport:
		m["Flash Assistance Rate"] = iratio(stats.AssistedFlashes, stats.TotalUtilityThrown)
		m["Utility Distribution"] = iratio(stats.TFlashesThrown, stats.FlashesThrown)
		m["Team Support Index"] = iratio(stats.Assists, stats.Kills+stats.Assists)

	default: // Anchor, Rotator: primarily CT roles
		m["T-Side Adaptability"] = iratio(stats.TRoundsWon, stats.TotalRoundsWon)
		m["Role Flexibility"] = stats.KDRatio()
	}

	return m
}

// EvaluateCTSideMetrics computes the CT-side metric set for a role.
func EvaluateCTSideMetrics(stats *model.PlayerRawStats, role model.Role) map[string]float64 {
	m := make(map[string]float64)

	switch role {
	case model.RoleIGL:
		m["CT-Side Round Win Rate"] = iratio(stats.CTRoundsWon, stats.TotalRoundsWon)
		m["Defensive Coordination"] = iratio(stats.CTFirstKills, stats.CTFirstKills+stats.CTFirstDeaths)
		m["CT Utility Management"] = iratio(stats.CTFlashesThrown, stats.FlashesThrown)

	case model.RoleAWP:
		m["Site Lockdown Rate"] = iratio(stats.CTRoundsWon, stats.TotalRoundsWon)
		m["Entry Denial Efficiency"] = iratio(stats.CTFirstKills, stats.CTFirstKills+stats.CTFirstDeaths)
		m["Angle Hold Success"] = stats.KDRatio()
		m["Retake Contribution Index"] = iratio(stats.AWPKills, stats.Kills)

	case model.RoleAnchor:
		m["Site Hold Effectiveness"] = iratio(stats.CTRoundsWon, stats.TotalRoundsWon)
		m["Solo Defense Rating"] = iratio(stats.CTFirstKills, stats.FirstKills)
		m["Anchor Consistency"] = 1 - math.Abs(stats.KDRatio()-1)

	case model.RoleRotator:
		m["Rotation Efficiency"] = iratio(stats.CTRoundsWon, stats.TotalRoundsWon)
		m["Multi-Site Impact"] = iratio(stats.Assists, stats.Kills+stats.Assists)
		m["CT Flexibility Index"] = iratio(stats.CTFirstKills, stats.FirstKills)

	case model.RoleSupport:
		m["CT Flash Support"] = iratio(stats.CTFlashesThrown, stats.FlashesThrown)
		m["Defensive Utility Usage"] = iratio(stats.TotalUtilityThrown, stats.CTRoundsWon)
		m["Team Cohesion Factor"] = iratio(stats.AssistedFlashes, stats.TotalUtilityThrown)

	default: // Spacetaker, Lurker: primarily T roles
		m["CT-Side Adaptability"] = iratio(stats.CTRoundsWon, stats.TotalRoundsWon)
		m["Role Flexibility"] = stats.KDRatio()
	}

	return m
}
