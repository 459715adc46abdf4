package score

import (
	"math"
	"sort"
	"strings"

	"github.com/lvgk/csimpact/internal/model"
)

// TeamSynergy blends three roster-level signals: role diversity
// (distinct roles out of 7), K/D cohesion (inverse variance), and
// utility balance (inverse mean deviation from the roster's mean
// utility usage).
func TeamSynergy(players []*model.PlayerWithPIV) float64 {
	if len(players) == 0 {
		return 0
	}

	distinct := make(map[model.Role]bool)
	for _, p := range players {
		distinct[p.Role] = true
	}
	roleDiversity := float64(len(distinct)) / float64(len(model.AllRoles))

	var kdSum float64
	for _, p := range players {
		kdSum += p.RawStats.KDRatio()
	}
	kdMean := kdSum / float64(len(players))
	var kdVar float64
	for _, p := range players {
		d := p.RawStats.KDRatio() - kdMean
		kdVar += d * d
	}
	kdVar /= float64(len(players))
	kdCohesion := 1 / (1 + kdVar)

	var utilSum float64
	for _, p := range players {
		utilSum += float64(p.RawStats.TotalUtilityThrown)
	}
	utilMean := utilSum / float64(len(players))
	var utilDev float64
	for _, p := range players {
		utilDev += math.Abs(float64(p.RawStats.TotalUtilityThrown) - utilMean)
	}
	utilDev /= float64(len(players))
	utilityBalance := 1.0
	if utilMean > 0 {
		utilityBalance = 1 / (1 + utilDev/utilMean)
	}

	return roleDiversity*SynergyRoleDiversityWeight +
		kdCohesion*SynergyKDVarianceWeight +
		utilityBalance*SynergyUtilityWeight
}

// ComputeTeams groups players by team name and computes each team's TIR
// from the players' current PIVs. The result is sorted descending by
// TIR; equal-TIR teams are ordered by name so the ranking is
// deterministic.
func ComputeTeams(players []*model.PlayerWithPIV) []*model.TeamWithTIR {
	// Preserve first-appearance order while grouping.
	var names []string
	byTeam := make(map[string][]*model.PlayerWithPIV)
	for _, p := range players {
		if _, ok := byTeam[p.Team]; !ok {
			names = append(names, p.Team)
		}
		byTeam[p.Team] = append(byTeam[p.Team], p)
	}

	teams := make([]*model.TeamWithTIR, 0, len(names))
	for _, name := range names {
		roster := byTeam[name]
		if len(roster) == 0 {
			continue
		}

		var sumPIV float64
		top := roster[0]
		for _, p := range roster {
			sumPIV += p.PIV
			if p.PIV > top.PIV {
				top = p
			}
		}
		avgPIV := sumPIV / float64(len(roster))
		synergy := TeamSynergy(roster)
		sizeFactor := math.Min(float64(len(roster))/5, 1)
		tir := avgPIV * sizeFactor * (1 + synergy)

		teams = append(teams, &model.TeamWithTIR{
			ID:            teamID(name),
			Name:          name,
			Players:       roster,
			TIR:           tir,
			SumPIV:        sumPIV,
			Synergy:       synergy,
			AvgPIV:        avgPIV,
			TopPlayerName: top.Name,
			TopPlayerPIV:  top.PIV,
		})
	}

	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].TIR != teams[j].TIR {
			return teams[i].TIR > teams[j].TIR
		}
		return teams[i].Name < teams[j].Name
	})
	return teams
}

func teamID(name string) string {
	return "team-" + strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
