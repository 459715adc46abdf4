package score

import (
	"math"

	"github.com/lvgk/csimpact/internal/model"
)

// RCS computes the Role Core Score: the equal-weighted mean of a
// player's normalized role-side metrics. Weighting is implicitly 1/N;
// per-role weighting happens later in the basic-metrics score, not here.
func RCS(normalized map[string]float64) float64 {
	if len(normalized) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range normalized {
		sum += v
	}
	return sum / float64(len(normalized))
}

// PIV combines the composite sub-scores into the Player Impact Value:
// RCS × ICF × SC × OSM × BasicScore × RoleWeight, floored at 0.
func PIV(rcs, icf, sc, osm, basicScore float64, role model.Role) float64 {
	piv := rcs * icf * sc * osm * basicScore * RoleWeight(role)
	return math.Max(0, piv)
}
