package score

import (
	"math"

	"github.com/lvgk/csimpact/internal/model"
)

// OSMForRank maps a team's 1-based rank in the TIR ordering to its
// Opponent Strength Multiplier. For fields of 16 or fewer teams the
// multiplier interpolates linearly from 1.0 at rank 1 to 0.84 at the
// bottom. Larger fields use a log curve that reaches 0.1 at rank 50,
// clamped to [0.1, 1.0].
func OSMForRank(rank, totalTeams int) float64 {
	if totalTeams <= 1 || rank < 1 {
		return MaxOSM
	}

	if totalTeams <= 16 {
		return MaxOSM - float64(rank-1)/float64(totalTeams-1)*(MaxOSM-MinOSM16)
	}

	if rank == 1 {
		return MaxOSM
	}
	scale := math.Log(50) / math.Log(float64(rank))
	osm := MinOSMExpanded + 0.9*math.Pow(scale, 1.5)
	return math.Max(MinOSMExpanded, math.Min(MaxOSM, osm))
}

// TeamOSM is a team's rank and multiplier within one TIR ordering.
type TeamOSM struct {
	OSM  float64
	Rank int
	TIR  float64
}

// OSMByTeam derives each team's OSM from an already-ranked team list
// (descending TIR, as produced by ComputeTeams). The ranking must come
// from a prior pass: computing OSM from the same-pass PIVs it feeds
// would collapse the two-pass resolution.
func OSMByTeam(ranked []*model.TeamWithTIR) map[string]TeamOSM {
	out := make(map[string]TeamOSM, len(ranked))
	for i, team := range ranked {
		rank := i + 1
		out[team.Name] = TeamOSM{
			OSM:  OSMForRank(rank, len(ranked)),
			Rank: rank,
			TIR:  team.TIR,
		}
	}
	return out
}

// OSMOrDefault looks up a team's multiplier, defaulting to 1.0 for teams
// absent from the ranking.
func OSMOrDefault(byTeam map[string]TeamOSM, team string) float64 {
	if entry, ok := byTeam[team]; ok {
		return entry.OSM
	}
	return MaxOSM
}
