package score

import (
	"math"

	"github.com/lvgk/csimpact/internal/model"
)

// SC computes the Synergy Contribution: a role-specific weighted blend
// over raw (non-normalized) stats. The returned label names the blend
// for display; it does not feed any score.
func SC(stats *model.PlayerRawStats, role model.Role) model.SCMetric {
	kd := stats.KDRatio()
	kdFactor := math.Min(kd/2, 0.6)

	switch role {
	case model.RoleAWP:
		openingKills := fratio(float64(stats.FirstKills), float64(stats.TFirstKills+stats.CTFirstKills))
		kdRating := math.Min(kd/1.8, 0.85)
		utilityImpact := fratio(float64(stats.AssistedFlashes), float64(stats.TotalUtilityThrown))
		return model.SCMetric{
			Value:  openingKills*0.35 + kdRating*0.35 + utilityImpact*0.15 + kdFactor*0.15,
			Metric: "AWP Impact Rating",
		}

	case model.RoleIGL:
		return model.SCMetric{
			Value:  fratio(float64(stats.Assists), float64(stats.Kills))*0.4 + kdFactor*0.2,
			Metric: "In-game Impact Rating",
		}

	case model.RoleSpacetaker:
		entrySuccess := fratio(float64(stats.TFirstKills), float64(stats.TFirstKills+stats.TFirstDeaths))
		entryKDRating := math.Min(kd/1.3, 1)
		return model.SCMetric{
			Value:  entrySuccess*0.5 + entryKDRating*0.4 + kdFactor*0.1,
			Metric: "Entry Impact Rating",
		}

	case model.RoleLurker:
		clutchRating := math.Min(kd/1.3, 1)
		smokeImpact := fratio(float64(stats.ThroughSmoke), float64(stats.Kills))
		return model.SCMetric{
			Value:  clutchRating*0.45 + smokeImpact*0.35 + kdFactor*0.2,
			Metric: "Clutch & Information Rating",
		}

	case model.RoleAnchor:
		return model.SCMetric{
			Value:  fratio(float64(stats.CTRoundsWon), float64(stats.TotalRoundsWon))*0.45 + kdFactor*0.25,
			Metric: "Site Hold Effectiveness",
		}

	case model.RoleRotator:
		return model.SCMetric{
			Value:  fratio(float64(stats.CTRoundsWon), float64(stats.TotalRoundsWon))*0.4 + kdFactor*0.25,
			Metric: "Rotation Efficiency",
		}

	case model.RoleSupport:
		return model.SCMetric{
			Value:  fratio(float64(stats.AssistedFlashes), float64(stats.TotalUtilityThrown))*0.65 + kdFactor*0.15,
			Metric: "Utility Contribution Score",
		}

	default:
		return model.SCMetric{Value: DefaultSC, Metric: "General Impact"}
	}
}

// fratio divides with the denominator floored at 1.
func fratio(num, den float64) float64 {
	return num / math.Max(den, 1)
}
