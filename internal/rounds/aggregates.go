// Package rounds derives team-level conversion rates from round records.
package rounds

import "github.com/lvgk/csimpact/internal/model"

// EcoForceConversion is the team's win rate in rounds it played on a
// reduced buy (Full Eco, Semi-Buy, Semi-Eco). Returns 0 when the team
// played no such rounds.
func EcoForceConversion(rounds []model.RoundData, team string) float64 {
	attempts, wins := 0, 0
	for i := range rounds {
		r := &rounds[i]
		if !r.Involves(team) {
			continue
		}
		switch r.BuyTypeFor(team) {
		case model.BuyFullEco, model.BuySemiBuy, model.BuySemiEco:
			attempts++
			if r.WinnerClanName == team {
				wins++
			}
		}
	}
	if attempts == 0 {
		return 0
	}
	return float64(wins) / float64(attempts)
}

// FiveVFourConversion is the team's win rate in rounds where it held the
// 5v4 opening advantage. Returns 0 when it never held one.
func FiveVFourConversion(rounds []model.RoundData, team string) float64 {
	attempts, wins := 0, 0
	for i := range rounds {
		r := &rounds[i]
		if !r.Involves(team) {
			continue
		}
		isCT := r.CTTeamClanName == team
		held := (isCT && r.Advantage5v4 == "ct") || (!isCT && r.Advantage5v4 == "t")
		if !held {
			continue
		}
		attempts++
		if r.WinnerClanName == team {
			wins++
		}
	}
	if attempts == 0 {
		return 0
	}
	return float64(wins) / float64(attempts)
}

// RifleRoundWinRate is the team's win rate in Full Buy rounds. Returns 0
// when the team played none.
func RifleRoundWinRate(rounds []model.RoundData, team string) float64 {
	attempts, wins := 0, 0
	for i := range rounds {
		r := &rounds[i]
		if !r.Involves(team) {
			continue
		}
		if r.BuyTypeFor(team) != model.BuyFullBuy {
			continue
		}
		attempts++
		if r.WinnerClanName == team {
			wins++
		}
	}
	if attempts == 0 {
		return 0
	}
	return float64(wins) / float64(attempts)
}

// EconomicEfficiency is round wins per 1000 units of equipment value
// spent across the team's rounds. Returns 0 when no equipment value was
// recorded.
func EconomicEfficiency(rounds []model.RoundData, team string) float64 {
	totalEquip, wins := 0, 0
	for i := range rounds {
		r := &rounds[i]
		if !r.Involves(team) {
			continue
		}
		if r.CTTeamClanName == team {
			totalEquip += r.CTTeamCurrentEquipValue
		} else {
			totalEquip += r.TTeamCurrentEquipValue
		}
		if r.WinnerClanName == team {
			wins++
		}
	}
	if totalEquip == 0 {
		return 0
	}
	return float64(wins) / (float64(totalEquip) / 1000)
}
