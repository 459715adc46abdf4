// Package score composes normalized metrics and round aggregates into the
// PIV/TIR composite ratings.
package score

import "github.com/lvgk/csimpact/internal/model"

// Role weights applied as the final PIV multiplier.
const (
	RoleWeightAWP        = 1.2
	RoleWeightIGL        = 1.15
	RoleWeightSpacetaker = 1.1
	RoleWeightLurker     = 1.05
	RoleWeightAnchor     = 1.0
	RoleWeightRotator    = 1.0
	RoleWeightSupport    = 0.95
)

// RoleWeight returns the fixed per-role PIV multiplier. Unknown roles
// are weighted neutrally.
func RoleWeight(role model.Role) float64 {
	switch role {
	case model.RoleAWP:
		return RoleWeightAWP
	case model.RoleIGL:
		return RoleWeightIGL
	case model.RoleSpacetaker:
		return RoleWeightSpacetaker
	case model.RoleLurker:
		return RoleWeightLurker
	case model.RoleAnchor:
		return RoleWeightAnchor
	case model.RoleRotator:
		return RoleWeightRotator
	case model.RoleSupport:
		return RoleWeightSupport
	default:
		return 1.0
	}
}

// OSM bounds. With 16 or fewer teams the multiplier interpolates
// linearly from MaxOSM at rank 1 down to MinOSM16 at the bottom rank;
// beyond 16 teams a log curve reaches MinOSMExpanded at rank 50.
const (
	MaxOSM         = 1.0
	MinOSM16       = 0.84
	MinOSMExpanded = 0.1
)

// Team synergy blend weights: role diversity, K/D variance inversion,
// utility balance.
const (
	SynergyRoleDiversityWeight = 0.4
	SynergyKDVarianceWeight    = 0.35
	SynergyUtilityWeight       = 0.25
)

// SC contribution for roles outside the closed set.
const DefaultSC = 0.4
